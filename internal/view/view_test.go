package view_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/nfrund/folio/internal/admin"
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

var now = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func pageData(isAdmin bool) view.PageData {
	return view.PageData{
		Profile:  domain.DefaultProfile(),
		Blocks:   domain.DefaultBlocks(),
		Panel:    admin.Panel{Admin: isAdmin},
		Now:      now,
		Location: time.UTC,
	}
}

func TestPage_Visitor(t *testing.T) {
	out := render(t, view.Page(pageData(false)))

	assert.Contains(t, out, `id="portfolio"`)
	assert.Contains(t, out, "Robinho")
	assert.Contains(t, out, "Minha Missão")
	assert.Contains(t, out, `ws-connect="/ws/live"`)
	assert.Contains(t, out, `hx-get="/modal/passcode"`)
	assert.NotContains(t, out, "/admin/blocks", "visitors get no editing controls")
	assert.Equal(t, 5, strings.Count(out, `id="block-`))
}

func TestPage_Admin(t *testing.T) {
	out := render(t, view.Page(pageData(true)))

	assert.Contains(t, out, `hx-get="/modal/settings"`)
	assert.Contains(t, out, `hx-delete="/admin/blocks/3"`)
	assert.Contains(t, out, `hx-confirm="Deseja remover este bloco?"`)
	assert.Contains(t, out, `hx-post="/admin/blocks/2/move"`)
	assert.Contains(t, out, `hx-post="/admin/blocks/2/resize"`)
	assert.Contains(t, out, `hx-post="/admin/blocks"`)
	assert.Contains(t, out, "Novo Bloco")
}

func TestTile_Spans(t *testing.T) {
	b := domain.ContentBlock{ID: "9", Kind: domain.KindText, ColumnSpan: 3, RowSpan: 2}
	out := render(t, view.Tile(b, domain.DefaultProfile(), false))

	assert.Contains(t, out, "md:col-span-3")
	assert.Contains(t, out, "grid-row: span 2")
}

func TestTile_SocialFallsBackToProfileInstagram(t *testing.T) {
	b := domain.ContentBlock{ID: "9", Kind: domain.KindSocial, Title: "Instagram"}
	out := render(t, view.Tile(b, domain.DefaultProfile(), false))

	assert.Contains(t, out, `href="https://www.instagram.com/rjefferxz/"`)
	assert.Contains(t, out, "@rjefferxz")
}

func TestModalBody(t *testing.T) {
	t.Run("passcode shows lapsing error", func(t *testing.T) {
		d := pageData(false)
		d.Panel.AuthErrorUntil = now.Add(time.Second)
		out := render(t, view.ModalBody(admin.ModalPasscode, d))
		assert.Contains(t, out, "Senha incorreta")
		assert.Contains(t, out, `hx-trigger="load delay:2s"`)

		d.Panel.AuthErrorUntil = time.Time{}
		out = render(t, view.ModalBody(admin.ModalPasscode, d))
		assert.NotContains(t, out, "Senha incorreta")
	})

	t.Run("settings shows save confirmation", func(t *testing.T) {
		d := pageData(true)
		d.Panel.SavedUntil = now.Add(500 * time.Millisecond)
		out := render(t, view.ModalBody(admin.ModalSettings, d))
		assert.Contains(t, out, "Salvo!")
		assert.Contains(t, out, "Sair do Painel")
		assert.Contains(t, out, `value="robsonjeffersonrocha@gmail.com"`)
	})

	t.Run("visitor log", func(t *testing.T) {
		d := pageData(true)
		out := render(t, view.ModalBody(admin.ModalVisitors, d))
		assert.Contains(t, out, "Sem novos registros.")

		d.Visitors = []domain.Visitor{{ID: "1", InstagramHandle: "ana", SubmittedAt: "2025-03-15T09:05:00Z"}}
		out = render(t, view.ModalBody(admin.ModalVisitors, d))
		assert.Contains(t, out, "@ana")
		assert.Contains(t, out, ">A<")
		assert.Contains(t, out, "Sábado, 15/03 · 09:05")
		assert.Contains(t, out, `hx-confirm="Apagar todos os logs?"`)
	})

	t.Run("contact form", func(t *testing.T) {
		out := render(t, view.ModalBody(admin.ModalContact, pageData(false)))
		assert.Contains(t, out, `hx-post="/contact"`)
		assert.Contains(t, out, `name="instagram"`)
	})
}

func TestLiveRefresh(t *testing.T) {
	out := render(t, view.LiveRefresh())

	assert.Contains(t, out, `id="live-signal"`)
	assert.Contains(t, out, `hx-swap-oob="true"`)
	assert.Contains(t, out, `hx-get="/portfolio"`)
}

func TestLayout(t *testing.T) {
	var b strings.Builder
	err := view.Layout("Robinho", view.AdaptGomponentToTempl(view.LiveRefresh())).Render(context.Background(), &b)

	require.NoError(t, err)
	out := b.String()
	assert.True(t, strings.HasPrefix(strings.ToLower(out), "<!doctype html>"))
	assert.Contains(t, out, "<title>Robinho</title>")
	assert.Contains(t, out, `id="live-signal"`)
}
