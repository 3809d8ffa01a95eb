package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/folio/internal/domain"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ErrInvalidForm wraps validation failures of a contact submission.
var ErrInvalidForm = errors.New("invalid contact form")

// Form is a contact-form submission.
type Form struct {
	Name      string `form:"name" json:"name" validate:"required,max=120"`
	Phone     string `form:"phone" json:"phone" validate:"required,max=40"`
	Email     string `form:"email" json:"email" validate:"required,email"`
	Instagram string `form:"instagram" json:"instagram" validate:"max=60"`
}

// Handle is the identity logged for the visitor: the Instagram handle, or the
// name when no handle was given.
func (f Form) Handle() string {
	if f.Instagram != "" {
		return f.Instagram
	}
	return f.Name
}

// Recorder is the part of the portfolio store the service writes to.
type Recorder interface {
	Profile() domain.Profile
	RecordVisitor(ctx context.Context, handle string) (domain.Visitor, error)
}

// Submission is the outcome of a successful Submit.
type Submission struct {
	Visitor   domain.Visitor
	MailtoURL string
}

// Service handles contact-form submissions.
type Service struct {
	recorder Recorder
	sender   domain.EmailSender
	validate *validator.Validate
	clock    domain.Clock
	location *time.Location
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the wall clock.
func WithClock(c domain.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithLocation sets the zone dates are printed in.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.location = loc }
}

// NewService creates a Service. sender may be nil, in which case no
// notification email is sent.
func NewService(recorder Recorder, sender domain.EmailSender, opts ...Option) *Service {
	s := &Service{
		recorder: recorder,
		sender:   sender,
		validate: validator.New(),
		clock:    domain.RealClock{},
		location: time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location is the zone dates are printed in.
func (s *Service) Location() *time.Location {
	return s.location
}

// Submit validates f, logs the visitor and returns the mailto handoff. A
// notification email is attempted when a sender is configured; its failure is
// logged and does not fail the submission.
func (s *Service) Submit(ctx context.Context, f Form) (Submission, error) {
	f = f.trimmed()
	if err := s.validate.StructCtx(ctx, f); err != nil {
		return Submission{}, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}

	v, err := s.recorder.RecordVisitor(ctx, f.Handle())
	if err != nil {
		return Submission{}, fmt.Errorf("record visitor: %w", err)
	}

	now := s.clock.Now().In(s.location)
	to := s.recorder.Profile().Email
	if s.sender != nil && to != "" {
		if err := s.sender.Send(ctx, to, Subject(f.Name), notificationHTML(f, now)); err != nil {
			slog.Warn("Contact notification email failed", "visitor_id", v.ID, "error", err)
		}
	}

	slog.Info("Contact form submitted", "visitor_id", v.ID)
	return Submission{Visitor: v, MailtoURL: MailtoURL(to, f, now)}, nil
}

func (f Form) trimmed() Form {
	return Form{
		Name:      strings.TrimSpace(f.Name),
		Phone:     strings.TrimSpace(f.Phone),
		Email:     strings.TrimSpace(f.Email),
		Instagram: strings.TrimSpace(f.Instagram),
	}
}

// notificationHTML renders the owner notification. gomponents escapes every
// text node.
func notificationHTML(f Form, now time.Time) string {
	var b strings.Builder
	lines := strings.Split(Body(f, now), "\n")
	items := make([]g.Node, 0, len(lines))
	for _, line := range lines {
		items = append(items, h.Li(g.Text(line)))
	}
	node := h.Div(
		h.H2(g.Text(Subject(f.Name))),
		h.Ul(items...),
	)
	if err := node.Render(&b); err != nil {
		return Body(f, now)
	}
	return b.String()
}
