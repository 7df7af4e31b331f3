package model

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		contact string
		want    ContactKind
	}{
		{"user@example.com", ContactEmail},
		{"a@b.c", ContactEmail},
		{"first.last@sub.example.co.uk", ContactEmail},
		{"+1-555-0100", ContactOther},
		{"555-1234", ContactOther},
		{"not-an-email", ContactOther},
		{"@missing-local.com", ContactOther},
		{"user@nodot", ContactOther},
		{"user@@example.com", ContactOther},
		{"user name@example.com", ContactOther},
		{"", ContactOther},
	}

	for _, tt := range tests {
		t.Run(tt.contact, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.contact))
		})
	}
}

func TestNewDeletionRequest(t *testing.T) {
	r := NewDeletionRequest("  alice@example.com \n")
	assert.True(t, r.Valid())
	assert.Equal(t, "alice@example.com", r.Contact)
	assert.Equal(t, ContactEmail, r.Kind())

	assert.False(t, NewDeletionRequest("   ").Valid())
	assert.False(t, NewDeletionRequest("").Valid())
}
