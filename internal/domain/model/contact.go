package model

import (
	"regexp"
	"strings"
)

// ContactKind is derived from the shape of a contact value and never stored.
type ContactKind string

const (
	ContactEmail ContactKind = "email"
	ContactOther ContactKind = "other" // Phone numbers and anything else that is not email-shaped.
)

// emailShape is a permissive check: local part, '@', domain, '.', suffix, no whitespace.
// It is not RFC 5322 validation.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DeletionRequest is the transient account-deletion request. It lives for one HTTP call.
type DeletionRequest struct {
	Contact string
}

// NewDeletionRequest trims the raw contact value. The result may be blank; see Valid.
func NewDeletionRequest(contact string) DeletionRequest {
	return DeletionRequest{Contact: strings.TrimSpace(contact)}
}

// Valid reports whether the request carries a contact.
func (r DeletionRequest) Valid() bool {
	return r.Contact != ""
}

// Kind classifies the request's contact.
func (r DeletionRequest) Kind() ContactKind {
	return Classify(r.Contact)
}

// Classify returns ContactEmail when contact looks like an email address.
func Classify(contact string) ContactKind {
	if emailShape.MatchString(contact) {
		return ContactEmail
	}
	return ContactOther
}
