package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	htmxSrc   = "https://unpkg.com/htmx.org@2.0.4"
	htmxWSSrc = "https://unpkg.com/htmx-ext-ws@2.0.2/ws.js"
	tailwind  = "https://cdn.tailwindcss.com"
)

// Layout wraps content in the HTML document shell.
func Layout(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return h.Doctype(
			h.HTML(h.Lang("pt-BR"),
				h.Head(
					h.Meta(h.Charset("utf-8")),
					h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
					h.TitleEl(g.Text(title)),
					h.Script(h.Src(tailwind)),
					h.Script(h.Src(htmxSrc)),
					h.Script(h.Src(htmxWSSrc)),
				),
				h.Body(h.Class("min-h-screen bg-black text-white pb-32 pt-12 px-4 sm:px-6 selection:bg-[#7e0404]"),
					AdaptTemplToGomponent(ctx, content),
				),
			),
		).Render(w)
	})
}
