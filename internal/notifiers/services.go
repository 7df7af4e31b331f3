package notifiers

import (
	"errors"
	"fmt"
	"github.com/iotiq/account-deletion/internal/config"
	"strings"
	"unicode"
)

type smtpServer struct {
	host string
	port int
}

// wellKnownServices maps EMAIL_SERVICE names onto SMTP endpoints.
// Port 465 means implicit TLS; the others negotiate STARTTLS.
var wellKnownServices = map[string]smtpServer{
	"gmail":      {"smtp.gmail.com", 465},
	"googlemail": {"smtp.gmail.com", 465},
	"outlook":    {"smtp-mail.outlook.com", 587},
	"hotmail":    {"smtp-mail.outlook.com", 587},
	"outlook365": {"smtp.office365.com", 587},
	"office365":  {"smtp.office365.com", 587},
	"yahoo":      {"smtp.mail.yahoo.com", 465},
	"icloud":     {"smtp.mail.me.com", 587},
	"aol":        {"smtp.aol.com", 587},
	"zoho":       {"smtp.zoho.com", 465},
	"fastmail":   {"smtp.fastmail.com", 465},
	"gmx":        {"mail.gmx.com", 587},
	"yandex":     {"smtp.yandex.ru", 465},
	"sendgrid":   {"smtp.sendgrid.net", 587},
	"mailgun":    {"smtp.mailgun.org", 465},
	"mailjet":    {"in-v3.mailjet.com", 587},
	"postmark":   {"smtp.postmarkapp.com", 2525},
	"ses":        {"email-smtp.us-east-1.amazonaws.com", 465},
}

var errNoServer = errors.New("no SMTP server configured")

// normalizeService lowercases the name and drops everything but letters and digits,
// so "Outlook 365" and "outlook365" resolve to the same entry.
func normalizeService(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, name)
}

// ResolveServer returns the SMTP host and port for the email configuration.
// An explicit host wins over the service name; an explicit port wins over the service default.
func ResolveServer(cfg config.EmailConfig) (string, int, error) {
	host, port := cfg.Host, cfg.Port

	if host == "" {
		if cfg.Service == "" {
			return "", 0, errNoServer
		}
		known, ok := wellKnownServices[normalizeService(cfg.Service)]
		if !ok {
			return "", 0, fmt.Errorf("unknown email service %q", cfg.Service)
		}
		host = known.host
		if port == 0 {
			port = known.port
		}
	}

	if port == 0 {
		port = 587
	}
	return host, port, nil
}
