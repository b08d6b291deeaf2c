package email

import "github.com/wneessen/go-mail"

// Recipient exposes mailbox routing for tests.
func (s *smtpSender) Recipient(scottish bool) string {
	return s.recipient(scottish)
}

// NewSMTPSenderForTest builds a sender without dialing anything.
func NewSMTPSenderForTest(from, to, scottishTo string) *smtpSender {
	return &smtpSender{from: from, to: to, scottishTo: scottishTo}
}

// BuildMessage exposes message construction for tests.
func (s *smtpSender) BuildMessage(uniqueID string, attachments []Attachment, scottish bool) (*mail.Msg, error) {
	return s.buildMessage(uniqueID, attachments, scottish)
}
