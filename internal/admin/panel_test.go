package admin

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

func TestGate(t *testing.T) {
	g := NewGate("")
	assert.True(t, g.AttemptAdminLogin("120240"))
	assert.False(t, g.AttemptAdminLogin("120241"))
	assert.False(t, g.AttemptAdminLogin(" 120240"))
	assert.False(t, g.AttemptAdminLogin(""))

	custom := NewGate("000000")
	assert.True(t, custom.AttemptAdminLogin("000000"))
	assert.False(t, custom.AttemptAdminLogin("120240"))
}

func TestPanel_Login(t *testing.T) {
	g := NewGate("120240")

	t.Run("success opens settings", func(t *testing.T) {
		var p Panel
		assert.Equal(t, ModalPasscode, p.Open(ModalSettings))

		ok := p.Login(g, "120240", t0)

		assert.True(t, ok)
		assert.True(t, p.Admin)
		assert.True(t, p.IsOpen(ModalSettings, t0))
		assert.False(t, p.IsOpen(ModalPasscode, t0))
		assert.False(t, p.AuthError(t0))
	})

	t.Run("failure flags error for two seconds", func(t *testing.T) {
		var p Panel
		p.Open(ModalPasscode)

		ok := p.Login(g, "999999", t0)

		assert.False(t, ok)
		assert.False(t, p.Admin)
		assert.True(t, p.IsOpen(ModalPasscode, t0))
		assert.True(t, p.AuthError(t0))
		assert.True(t, p.AuthError(t0.Add(1999*time.Millisecond)))
		assert.False(t, p.AuthError(t0.Add(AuthErrorDuration)))
	})

	t.Run("no lockout after repeated failures", func(t *testing.T) {
		var p Panel
		for i := 0; i < 20; i++ {
			require.False(t, p.Login(g, "000000", t0))
		}
		assert.True(t, p.Login(g, "120240", t0))
	})
}

func TestPanel_GatedModals(t *testing.T) {
	var p Panel

	assert.Equal(t, ModalPasscode, p.Open(ModalVisitors))
	assert.False(t, p.IsOpen(ModalVisitors, t0))
	assert.Equal(t, ModalContact, p.Open(ModalContact), "contact is open to everyone")
	assert.True(t, p.IsOpen(ModalContact, t0))

	p.Admin = true
	assert.Equal(t, ModalVisitors, p.Open(ModalVisitors))
	assert.True(t, p.IsOpen(ModalVisitors, t0))

	p.Exit()
	assert.False(t, p.Admin)
	assert.False(t, p.IsOpen(ModalSettings, t0))
	assert.False(t, p.IsOpen(ModalVisitors, t0))
	assert.True(t, p.IsOpen(ModalContact, t0))
}

func TestPanel_Publish(t *testing.T) {
	t.Run("requires admin", func(t *testing.T) {
		var p Panel
		assert.ErrorIs(t, p.Publish(t0), ErrNotAdmin)
	})

	t.Run("confirmation lapses and closes settings", func(t *testing.T) {
		p := Panel{Admin: true}
		p.Open(ModalSettings)

		require.NoError(t, p.Publish(t0))

		assert.True(t, p.Saving(t0.Add(799*time.Millisecond)))
		assert.True(t, p.IsOpen(ModalSettings, t0.Add(799*time.Millisecond)))
		assert.False(t, p.Saving(t0.Add(SaveConfirmDuration)))
		assert.False(t, p.IsOpen(ModalSettings, t0.Add(SaveConfirmDuration)))

		p.Settle(t0.Add(time.Second))
		assert.False(t, p.Settings)
		assert.True(t, p.SavedUntil.IsZero())
		assert.True(t, p.Admin, "publishing keeps the admin session")
	})
}

func TestParseModal(t *testing.T) {
	for _, name := range []string{"settings", "contact", "visitors", "passcode"} {
		m, err := ParseModal(name)
		require.NoError(t, err)
		assert.Equal(t, Modal(name), m)
	}
	_, err := ParseModal("admin")
	assert.Error(t, err)
}

func TestPanelSessionRoundTrip(t *testing.T) {
	e := echo.New()
	store := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	mw := session.Middleware(store)

	want := Panel{Admin: true, Settings: true, AuthErrorUntil: t0}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	err := mw(func(c echo.Context) error {
		assert.Equal(t, Panel{}, LoadPanel(c))
		return SavePanel(c, want)
	})(e.NewContext(req, rec))
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, SessionName, cookies[0].Name)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	var got Panel
	err = mw(func(c echo.Context) error {
		got = LoadPanel(c)
		return nil
	})(e.NewContext(req, rec))
	require.NoError(t, err)

	assert.Equal(t, want.Admin, got.Admin)
	assert.Equal(t, want.Settings, got.Settings)
	assert.True(t, want.AuthErrorUntil.Equal(got.AuthErrorUntil))
}
