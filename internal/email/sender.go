package email

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wneessen/go-mail"

	"sscsrobotics/internal/config"
	"sscsrobotics/internal/logging"
)

// Sender delivers the robotics email for one case.
type Sender interface {
	Send(ctx context.Context, uniqueID string, attachments []Attachment, scottish bool) error
}

// NewSender builds an SMTP sender from configuration. When no SMTP host is
// configured a no-op sender is returned so dry runs work without a mailbox.
func NewSender(cfg *config.Config, logger *slog.Logger) (Sender, error) {
	log := logging.NewComponentLogger(logger, "email")
	if cfg == nil || cfg.Email.Host == "" {
		return noopSender{logger: log}, nil
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Email.Port),
		mail.WithTimeout(time.Duration(cfg.Email.RequestTimeout) * time.Second),
	}
	if cfg.Email.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Email.Username),
			mail.WithPassword(cfg.Email.Password),
		)
	}
	client, err := mail.NewClient(cfg.Email.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("configure smtp client: %w", err)
	}

	return &smtpSender{
		client:     client,
		from:       cfg.Email.From,
		to:         cfg.Email.To,
		scottishTo: cfg.Email.ScottishTo,
		logger:     log,
	}, nil
}

type smtpSender struct {
	client     *mail.Client
	from       string
	to         string
	scottishTo string
	logger     *slog.Logger
}

func (s *smtpSender) Send(ctx context.Context, uniqueID string, attachments []Attachment, scottish bool) error {
	msg, err := s.buildMessage(uniqueID, attachments, scottish)
	if err != nil {
		return err
	}
	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send robotics email: %w", err)
	}
	s.logger.Info("robotics email sent",
		logging.String("unique_id", uniqueID),
		logging.Int("attachments", len(attachments)),
		logging.Bool("scottish", scottish))
	return nil
}

func (s *smtpSender) buildMessage(uniqueID string, attachments []Attachment, scottish bool) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return nil, fmt.Errorf("set sender address: %w", err)
	}
	if err := msg.To(s.recipient(scottish)); err != nil {
		return nil, fmt.Errorf("set recipient address: %w", err)
	}
	msg.Subject("Robotics Data - " + uniqueID)
	msg.SetBodyString(mail.TypeTextPlain, "Robotics data for appeal "+uniqueID+" attached.")
	for _, att := range attachments {
		if err := msg.AttachReader(att.Filename, bytes.NewReader(att.Data),
			mail.WithFileContentType(mail.ContentType(att.ContentType))); err != nil {
			return nil, fmt.Errorf("attach %s: %w", att.Filename, err)
		}
	}
	return msg, nil
}

// recipient routes Scottish cases to their dedicated mailbox when configured.
func (s *smtpSender) recipient(scottish bool) string {
	if scottish && s.scottishTo != "" {
		return s.scottishTo
	}
	return s.to
}

type noopSender struct {
	logger *slog.Logger
}

func (n noopSender) Send(_ context.Context, uniqueID string, attachments []Attachment, scottish bool) error {
	n.logger.Info("email delivery disabled, skipping send",
		logging.String("unique_id", uniqueID),
		logging.Int("attachments", len(attachments)),
		logging.Bool("scottish", scottish))
	return nil
}
