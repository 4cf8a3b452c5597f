package notify

import (
	"fmt"
	"net/smtp"

	"hms-backend/config"

	"github.com/sirupsen/logrus"
)

// EmailSender delivers HTML mail over SMTP. Same fire-and-forget contract
// as the SMS sender.
type EmailSender struct {
	cfg config.NotifyConfig
	log *logrus.Logger
}

func NewEmailSender(cfg config.NotifyConfig, log *logrus.Logger) *EmailSender {
	return &EmailSender{cfg: cfg, log: log}
}

func (s *EmailSender) Send(to, subject, htmlBody string) error {
	if s.cfg.SMTPHost == "" {
		s.log.Warnf("SMTP not configured, dropping email to %s", to)
		return nil
	}

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.cfg.EmailFrom, to, subject, htmlBody,
	)

	addr := s.cfg.SMTPHost + ":" + s.cfg.SMTPPort
	auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPassword, s.cfg.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.cfg.EmailFrom, []string{to}, []byte(msg)); err != nil {
		s.log.Warnf("Failed to deliver email to %s: %+v", to, err)
		return err
	}

	return nil
}
