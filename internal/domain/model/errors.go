package model

import "errors"

var (
	// ErrMissingContact is a client fault: the request carried no contact.
	ErrMissingContact = errors.New("contact information is required")
	// ErrNotConfigured means one or more required email settings are absent.
	ErrNotConfigured = errors.New("email service not properly configured")
	// ErrTransportUnavailable means the mail transport could not be constructed at startup.
	ErrTransportUnavailable = errors.New("email service not configured")
	// ErrAuthFailed means the transport rejected the configured credentials.
	ErrAuthFailed = errors.New("email authentication failed")
	// ErrConnectionFailed means the transport could not reach the mail server.
	ErrConnectionFailed = errors.New("email connection failed")
)

// DispatchError wraps a transport failure together with its classified kind.
// A nil Kind marks an unclassified transport failure.
type DispatchError struct {
	Kind error
	Err  error
}

func (e *DispatchError) Error() string {
	if e.Kind == nil {
		return e.Err.Error()
	}
	return e.Kind.Error() + ": " + e.Err.Error()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *DispatchError) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}
