package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	resendEndpoint      = "https://api.resend.com/emails"
	defaultResendSender = "Folio <onboarding@resend.dev>"
	resendTimeout       = 10 * time.Second
	// errorBodyLimit caps how much of a failed response ends up in the error.
	errorBodyLimit = 512
)

// ErrDeliveryFailed wraps a non-2xx answer from the mail provider.
var ErrDeliveryFailed = errors.New("email delivery failed")

var defaultClient = &http.Client{Timeout: resendTimeout}

// LogSender writes emails to the log instead of sending them.
type LogSender struct {
	senderAddress string
}

// Send logs the email.
func (s *LogSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	slog.InfoContext(ctx, "Email logged",
		"from", s.senderAddress,
		"to", to,
		"subject", subject,
		"body", htmlBody,
	)
	return nil
}

// ResendSender posts emails to the Resend HTTP API.
type ResendSender struct {
	apiKey        string
	senderAddress string
	endpoint      string
	client        *http.Client
}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (s *ResendSender) from() string {
	if s.senderAddress != "" {
		return s.senderAddress
	}
	return defaultResendSender
}

// Send implements domain.EmailSender.
func (s *ResendSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	body, err := json.Marshal(resendPayload{From: s.from(), To: []string{to}, Subject: subject, HTML: htmlBody})
	if err != nil {
		return fmt.Errorf("encode resend payload: %w", err)
	}

	endpoint := s.endpoint
	if endpoint == "" {
		endpoint = resendEndpoint
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build resend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := s.client
	if client == nil {
		client = defaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("resend request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return fmt.Errorf("%w: status %d: %s", ErrDeliveryFailed, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	slog.InfoContext(ctx, "Contact notification sent", "to", to, "subject", subject)
	return nil
}
