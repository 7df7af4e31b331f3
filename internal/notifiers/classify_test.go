package notifiers

import (
	"context"
	"errors"
	"fmt"
	"github.com/iotiq/account-deletion/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"io"
	"net"
	"net/textproto"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"auth rejected", &textproto.Error{Code: 535, Msg: "bad credentials"}, model.ErrAuthFailed},
		{"auth required", &textproto.Error{Code: 530, Msg: "auth required"}, model.ErrAuthFailed},
		{"wrapped auth", fmt.Errorf("dial: %w", &textproto.Error{Code: 534, Msg: "web login required"}), model.ErrAuthFailed},
		{"service closing", &textproto.Error{Code: 421, Msg: "service not available"}, model.ErrConnectionFailed},
		{"mailbox unavailable", &textproto.Error{Code: 550, Msg: "no such user"}, nil},
		{"dial refused", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, model.ErrConnectionFailed},
		{"dns", &net.DNSError{Err: "no such host", Name: "smtp.invalid"}, model.ErrConnectionFailed},
		{"eof", io.EOF, model.ErrConnectionFailed},
		{"unexpected eof", io.ErrUnexpectedEOF, model.ErrConnectionFailed},
		{"deadline exceeded", context.DeadlineExceeded, nil},
		{"wrapped deadline", fmt.Errorf("verify: %w", context.DeadlineExceeded), nil},
		{"cancelled", context.Canceled, nil},
		{"plain auth over cleartext", errors.New("unencrypted connection"), model.ErrAuthFailed},
		{"no auth extension", errors.New("smtp: server doesn't support AUTH"), model.ErrAuthFailed},
		{"other", errors.New("gomail: could not send email 1: 552 message too large"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}
