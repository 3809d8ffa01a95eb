package admin

import "log/slog"

// DefaultPasscode is the passcode used when none is configured.
const DefaultPasscode = "120240"

// Gate compares passcode attempts against the configured value. It keeps no
// attempt counter and never locks out.
type Gate struct {
	passcode string
}

// NewGate creates a Gate for the given passcode, falling back to
// DefaultPasscode when it is empty.
func NewGate(passcode string) *Gate {
	if passcode == "" {
		passcode = DefaultPasscode
	}
	return &Gate{passcode: passcode}
}

// AttemptAdminLogin reports whether code matches the passcode exactly.
func (g *Gate) AttemptAdminLogin(code string) bool {
	ok := code == g.passcode
	if !ok {
		slog.Debug("Admin passcode rejected")
	}
	return ok
}
