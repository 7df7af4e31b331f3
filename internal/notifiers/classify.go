package notifiers

import (
	"context"
	"crypto/tls"
	"errors"
	"github.com/iotiq/account-deletion/internal/domain/model"
	"io"
	"net"
	"net/textproto"
	"strings"
)

// authMarkers are net/smtp refusals that happen before any reply code is exchanged.
var authMarkers = []string{
	"unencrypted connection",
	"wrong host name",
	"doesn't support AUTH",
	"unexpected server challenge",
}

// Classify maps a transport error onto model.ErrAuthFailed or model.ErrConnectionFailed.
// It returns nil for failures that fit neither class.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch protoErr.Code {
		case 530, 534, 535, 538:
			return model.ErrAuthFailed
		case 421:
			return model.ErrConnectionFailed
		}
		return nil
	}

	// context.DeadlineExceeded satisfies net.Error; the caller gave up, the server did not.
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return nil
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return model.ErrConnectionFailed
	}

	var recordErr tls.RecordHeaderError
	var certErr *tls.CertificateVerificationError
	if errors.As(err, &recordErr) || errors.As(err, &certErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return model.ErrConnectionFailed
	}

	msg := err.Error()
	for _, marker := range authMarkers {
		if strings.Contains(msg, marker) {
			return model.ErrAuthFailed
		}
	}
	return nil
}
