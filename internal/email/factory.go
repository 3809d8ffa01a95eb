package email

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/domain"
)

// ErrUnknownProvider is returned for an EMAIL_PROVIDER value with no sender.
var ErrUnknownProvider = errors.New("unknown email provider")

type senderFactory func(cfg config.Provider) (domain.EmailSender, error)

var providers = map[string]senderFactory{
	// No notification email; the contact form only hands off to mailto.
	"none": func(config.Provider) (domain.EmailSender, error) { return nil, nil },
	"log": func(cfg config.Provider) (domain.EmailSender, error) {
		return &LogSender{senderAddress: cfg.GetEmailSender()}, nil
	},
	"resend": func(cfg config.Provider) (domain.EmailSender, error) {
		if cfg.GetEmailAPIKey() == "" {
			return nil, errors.New("resend provider needs EMAIL_API_KEY")
		}
		return &ResendSender{apiKey: cfg.GetEmailAPIKey(), senderAddress: cfg.GetEmailSender()}, nil
	},
}

// NewEmailService returns the sender named by EMAIL_PROVIDER, case-insensitively.
// An empty name means "none", which yields a nil sender.
func NewEmailService(cfg config.Provider) (domain.EmailSender, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.GetEmailProvider()))
	if name == "" {
		name = "none"
	}
	factory, ok := providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.GetEmailProvider())
	}
	return factory(cfg)
}
