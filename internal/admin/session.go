package admin

import (
	"encoding/gob"
	"log/slog"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// SessionName is the cookie session holding the panel state.
const SessionName = "folio-admin"

const panelKey = "panel"

func init() {
	gob.Register(Panel{})
}

// LoadPanel reads the panel state from the request's session. A missing or
// undecodable session yields a zero Panel.
func LoadPanel(c echo.Context) Panel {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		slog.Debug("Could not read admin session", "error", err)
		return Panel{}
	}
	p, _ := sess.Values[panelKey].(Panel)
	return p
}

// SavePanel writes p to the response's session cookie.
func SavePanel(c echo.Context, p Panel) error {
	sess, err := session.Get(SessionName, c)
	if err != nil && sess == nil {
		return err
	}
	sess.Options.HttpOnly = true
	sess.Options.Path = "/"
	sess.Values[panelKey] = p
	return sess.Save(c.Request(), c.Response())
}
