package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"hms-backend/config"

	"github.com/sirupsen/logrus"
)

// SMSSender posts messages to the hospital's SMS gateway. Delivery is
// fire-and-forget from the caller's point of view: failures are logged and
// returned but never block the surrounding flow.
type SMSSender struct {
	cfg    config.NotifyConfig
	log    *logrus.Logger
	client *http.Client
}

func NewSMSSender(cfg config.NotifyConfig, log *logrus.Logger) *SMSSender {
	return &SMSSender{
		cfg: cfg,
		log: log,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type smsPayload struct {
	To       string `json:"to"`
	Message  string `json:"message"`
	SenderID string `json:"sender_id,omitempty"`
}

func (s *SMSSender) Send(ctx context.Context, phone, message string) error {
	if s.cfg.SMSGatewayURL == "" {
		s.log.Warnf("SMS gateway not configured, dropping message to %s", phone)
		return nil
	}

	body, err := json.Marshal(smsPayload{
		To:       phone,
		Message:  message,
		SenderID: s.cfg.SMSSenderID,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.SMSGatewayURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.SMSAPIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warnf("Failed to deliver SMS to %s: %+v", phone, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		err := fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
		s.log.Warnf("Failed to deliver SMS to %s: %+v", phone, err)
		return err
	}

	return nil
}
