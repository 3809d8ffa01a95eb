package admin

import (
	"errors"
	"fmt"
	"time"
)

const (
	// AuthErrorDuration is how long a rejected passcode stays flagged.
	AuthErrorDuration = 2 * time.Second
	// SaveConfirmDuration is how long the "saved" confirmation is shown
	// before the settings modal closes.
	SaveConfirmDuration = 800 * time.Millisecond
)

// ErrNotAdmin is returned by operations that need an admin session.
var ErrNotAdmin = errors.New("admin session required")

// Modal names one of the page's independent dialogs.
type Modal string

const (
	ModalSettings Modal = "settings"
	ModalContact  Modal = "contact"
	ModalVisitors Modal = "visitors"
	ModalPasscode Modal = "passcode"
)

// ParseModal maps a route segment to a Modal.
func ParseModal(s string) (Modal, error) {
	switch m := Modal(s); m {
	case ModalSettings, ModalContact, ModalVisitors, ModalPasscode:
		return m, nil
	}
	return "", fmt.Errorf("unknown modal %q", s)
}

// gated reports whether the modal may only be shown to an admin.
func (m Modal) gated() bool {
	return m == ModalSettings || m == ModalVisitors
}

// Panel is the per-visitor UI state: the admin flag and the open dialogs.
// Timed flags are stored as deadlines and read against a caller-supplied
// time, so a Panel can be kept in a cookie between requests.
type Panel struct {
	Admin bool

	Settings bool
	Contact  bool
	Visitors bool
	Passcode bool

	AuthErrorUntil time.Time
	SavedUntil     time.Time
}

// Login checks code with g. On success the panel becomes admin, the passcode
// prompt closes and settings opens. On failure the auth error is raised for
// AuthErrorDuration; further attempts are always allowed.
func (p *Panel) Login(g *Gate, code string, now time.Time) bool {
	if !g.AttemptAdminLogin(code) {
		p.AuthErrorUntil = now.Add(AuthErrorDuration)
		return false
	}
	p.Admin = true
	p.Passcode = false
	p.Settings = true
	p.AuthErrorUntil = time.Time{}
	return true
}

// Exit leaves the admin panel.
func (p *Panel) Exit() {
	p.Admin = false
	p.Settings = false
	p.Visitors = false
	p.SavedUntil = time.Time{}
}

// Open shows m and returns the modal actually opened. Admin-only dialogs
// requested by a visitor open the passcode prompt instead.
func (p *Panel) Open(m Modal) Modal {
	if m.gated() && !p.Admin {
		m = ModalPasscode
	}
	p.set(m, true)
	if m == ModalSettings {
		p.SavedUntil = time.Time{}
	}
	return m
}

// Close hides m.
func (p *Panel) Close(m Modal) {
	p.set(m, false)
	if m == ModalPasscode {
		p.AuthErrorUntil = time.Time{}
	}
}

// Publish shows the save confirmation. Once it lapses, settings reads as
// closed.
func (p *Panel) Publish(now time.Time) error {
	if !p.Admin {
		return ErrNotAdmin
	}
	p.SavedUntil = now.Add(SaveConfirmDuration)
	return nil
}

// Settle applies any lapsed timers.
func (p *Panel) Settle(now time.Time) {
	if !p.AuthErrorUntil.IsZero() && !now.Before(p.AuthErrorUntil) {
		p.AuthErrorUntil = time.Time{}
	}
	if !p.SavedUntil.IsZero() && !now.Before(p.SavedUntil) {
		p.SavedUntil = time.Time{}
		p.Settings = false
	}
}

// AuthError reports whether a rejected passcode is still flagged at now.
func (p Panel) AuthError(now time.Time) bool {
	return now.Before(p.AuthErrorUntil)
}

// Saving reports whether the save confirmation is showing at now.
func (p Panel) Saving(now time.Time) bool {
	return now.Before(p.SavedUntil)
}

// IsOpen reports whether m is showing at now.
func (p Panel) IsOpen(m Modal, now time.Time) bool {
	p.Settle(now)
	if m.gated() && !p.Admin {
		return false
	}
	switch m {
	case ModalSettings:
		return p.Settings
	case ModalContact:
		return p.Contact
	case ModalVisitors:
		return p.Visitors
	case ModalPasscode:
		return p.Passcode
	}
	return false
}

func (p *Panel) set(m Modal, open bool) {
	switch m {
	case ModalSettings:
		p.Settings = open
	case ModalContact:
		p.Contact = open
	case ModalVisitors:
		p.Visitors = open
	case ModalPasscode:
		p.Passcode = open
	}
}
