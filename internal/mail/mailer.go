package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Sender delivers verification emails.
type Sender interface {
	SendVerificationEmail(to, code string) error
}

// SMTPSender sends mail through an SMTP relay with STARTTLS.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender creates a sender authenticated against the given relay.
func NewSMTPSender(host string, port int, username, password string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   username,
	}
}

// SendVerificationEmail mails the raw verification code to the recipient.
func (s *SMTPSender) SendVerificationEmail(to, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Verification Code")
	m.SetBody("text/plain", fmt.Sprintf("Your verification code is: %s", code))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}
	return nil
}
