package model

import (
	"bytes"
	"github.com/google/uuid"
	"html/template"
)

// MessageKind identifies which of the two notifications a message is.
type MessageKind string

const (
	KindAdminNotice      MessageKind = "admin_notice"
	KindUserConfirmation MessageKind = "user_confirmation"
)

const (
	AdminNoticeSubject      = "Account Deletion Request - IOTIQ"
	UserConfirmationSubject = "Account Deletion Request Received - IOTIQ"
)

// Message is a single outbound email. It is built fresh for every request.
// It is transport-agnostic and does not contain any SMTP details.
type Message struct {
	ID       uuid.UUID
	Kind     MessageKind
	From     string
	To       string
	Subject  string
	HTMLBody string
}

// SendOutcome is the result of a successful dispatch.
type SendOutcome struct {
	EmailCount int
}

// The contact is interpolated through html/template, so markup supplied by a
// caller arrives in the admin's inbox as text.
var adminNoticeTmpl = template.Must(template.New("admin_notice").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #11271d;">Account Deletion Request</h2>
    <p>A user has requested account deletion.</p>
    <div style="background-color: #f9fafb; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <strong>Contact Information:</strong> {{.Contact}}
    </div>
    <p>Please process this request according to company policy.</p>
    <hr style="margin: 30px 0;">
    <p style="color: #6b7280; font-size: 12px;">
        This email was sent from the IOTIQ account deletion system.
    </p>
</div>
`))

const userConfirmationBody = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #11271d;">Account Deletion Request Received</h2>
    <p>We have received your request to delete your IOTIQ account.</p>
    <div style="background-color: #fef2f2; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #ef4444;">
        <strong>Important:</strong> This action cannot be undone. All your data will be permanently deleted.
    </div>
    <p>Our support team will contact you within 24-48 hours to confirm and process your request.</p>
    <p>If you did not make this request, please contact us immediately.</p>
    <hr style="margin: 30px 0;">
    <p style="color: #6b7280; font-size: 12px;">
        IOTIQ Support Team<br>
        This is an automated message. Please do not reply to this email.
    </p>
</div>
`

// NewAdminNotice is a factory function for the message always sent to the administrator.
func NewAdminNotice(from, adminEmail, contact string) (*Message, error) {
	var body bytes.Buffer
	if err := adminNoticeTmpl.Execute(&body, struct{ Contact string }{contact}); err != nil {
		return nil, err
	}

	return &Message{
		ID:       uuid.New(),
		Kind:     KindAdminNotice,
		From:     from,
		To:       adminEmail,
		Subject:  AdminNoticeSubject,
		HTMLBody: body.String(),
	}, nil
}

// NewUserConfirmation is a factory function for the confirmation sent back to an email contact.
func NewUserConfirmation(from, contact string) *Message {
	return &Message{
		ID:       uuid.New(),
		Kind:     KindUserConfirmation,
		From:     from,
		To:       contact,
		Subject:  UserConfirmationSubject,
		HTMLBody: userConfirmationBody,
	}
}
