package view

import (
	"fmt"
	"strconv"

	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/portfolio"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

var colSpanClass = map[int]string{
	1: "col-span-1",
	2: "col-span-2",
	3: "col-span-2 md:col-span-3",
	4: "col-span-2 md:col-span-4",
}

// editableFields lists the free-text fields the inline editor shows per kind.
var editableFields = map[domain.BlockKind][]domain.BlockField{
	domain.KindSocial: {domain.BlockTitle, domain.BlockSubtitle, domain.BlockURL},
	domain.KindText:   {domain.BlockTitle, domain.BlockContent},
	domain.KindImage:  {domain.BlockImageURL},
	domain.KindLink:   {domain.BlockTitle, domain.BlockSubtitle, domain.BlockURL},
	domain.KindMap:    {domain.BlockTitle, domain.BlockImageURL},
}

// Grid renders the blocks in display order.
func Grid(blocks []domain.ContentBlock, p domain.Profile, isAdmin bool) g.Node {
	tiles := make([]g.Node, 0, len(blocks))
	for _, b := range blocks {
		tiles = append(tiles, Tile(b, p, isAdmin))
	}
	return h.Div(h.ID("grid"),
		h.Class("max-w-4xl mx-auto grid grid-cols-2 md:grid-cols-4 gap-4 px-2 auto-rows-min"),
		g.Group(tiles),
	)
}

// Tile renders one block.
func Tile(b domain.ContentBlock, p domain.Profile, isAdmin bool) g.Node {
	b.Normalize()
	return h.Div(
		h.ID("block-"+b.ID),
		g.Attr("data-kind", string(b.Kind)),
		h.Class("relative rounded-[2.5rem] overflow-hidden bg-neutral-900 min-h-[140px] md:min-h-[180px] "+colSpanClass[b.ColumnSpan]),
		h.Style(fmt.Sprintf("grid-row: span %d", b.RowSpan)),
		tileBody(b, p),
		g.If(isAdmin, tileControls(b)),
	)
}

func tileBody(b domain.ContentBlock, p domain.Profile) g.Node {
	switch b.Kind {
	case domain.KindSocial:
		href := b.URL
		if href == "" {
			href = "https://www.instagram.com/" + p.InstagramHandle + "/"
		}
		return h.Div(h.Class("p-8 h-full flex flex-col justify-between"),
			h.Div(
				h.H3(h.Class("text-2xl font-black tracking-tight"), g.Text(b.Title)),
				h.P(h.Class("text-sm text-white/50"), g.Text("@"+p.InstagramHandle)),
			),
			externalLink(href, "Seguir", "bg-white/10 border border-white/20"),
		)
	case domain.KindText:
		return h.Div(h.Class("p-8 h-full flex flex-col justify-center"),
			g.If(b.Title != "", h.H3(h.Class("text-sm uppercase text-white/50 mb-2"), g.Text(b.Title))),
			h.P(h.Class("text-xl font-bold leading-tight"), g.Text(b.Content)),
		)
	case domain.KindImage:
		return h.Img(h.Src(b.ImageURL), h.Alt(b.Title), g.Attr("loading", "lazy"),
			h.Class("absolute inset-0 w-full h-full object-cover"))
	case domain.KindLink:
		return h.Div(h.Class("p-8 flex flex-col h-full"),
			h.H3(h.Class("text-3xl font-black mb-2 leading-tight"), g.Text(b.Title)),
			h.P(h.Class("text-sm text-white/80 mb-auto"), g.Text(b.Subtitle)),
			externalLink(b.URL, "Acessar Agora", "bg-white text-black"),
		)
	case domain.KindMap:
		return h.Div(h.Class("h-full"),
			h.Img(h.Src(b.ImageURL), h.Alt(b.Title), g.Attr("loading", "lazy"),
				h.Class("absolute inset-0 w-full h-full object-cover opacity-70")),
			h.P(h.Class("absolute bottom-4 left-4 font-black"), g.Text(b.Title)),
		)
	}
	return nil
}

func externalLink(href, label, class string) g.Node {
	return h.A(h.Href(href), h.Target("_blank"), h.Rel("noopener noreferrer"),
		h.Class("mt-6 py-4 rounded-2xl text-center text-sm font-black "+class),
		g.Text(label),
	)
}

// tileControls is the admin overlay: move, resize, delete and the inline editor.
func tileControls(b domain.ContentBlock) g.Node {
	base := "/admin/blocks/" + b.ID
	return h.Div(h.Class("absolute inset-0 z-30 bg-black/70 opacity-0 hover:opacity-100 flex flex-col items-center justify-center gap-2 p-4"),
		h.Div(h.Class("flex gap-2"),
			action(base+"/move", `{"direction":"earlier"}`, "‹"),
			action(base+"/move", `{"direction":"later"}`, "›"),
			h.Button(h.Type("button"), h.Class("p-3 bg-red-600 rounded-xl"),
				hx.Delete(base), hx.Confirm(portfolio.PromptDeleteBlock), hx.Vals(`{"confirm":"yes"}`),
				hx.Target("#"+PortfolioID), hx.Swap("outerHTML"),
				g.Text("Remover"),
			),
		),
		h.Div(h.Class("flex gap-2"),
			action(base+"/resize", `{"axis":"width","action":"shrink"}`, "‹ L"),
			action(base+"/resize", `{"axis":"width","action":"grow"}`, "L ›"),
		),
		h.Div(h.Class("flex gap-2"),
			action(base+"/resize", `{"axis":"height","action":"shrink"}`, "˄ A"),
			action(base+"/resize", `{"axis":"height","action":"grow"}`, "A ˅"),
		),
		fieldEditor(b),
	)
}

func action(url, vals, label string) g.Node {
	return h.Button(h.Type("button"), h.Class("p-2 bg-neutral-800 rounded-lg text-xs font-bold"),
		hx.Post(url), hx.Vals(vals), hx.Target("#"+PortfolioID), hx.Swap("outerHTML"),
		g.Text(label),
	)
}

func fieldEditor(b domain.ContentBlock) g.Node {
	fields := editableFields[b.Kind]
	inputs := make([]g.Node, 0, len(fields))
	for _, f := range fields {
		inputs = append(inputs, h.Input(h.Type("text"), h.Name(string(f)), h.Value(blockValue(b, f)),
			h.Placeholder(string(f)), h.Class("w-full bg-black/50 p-2 rounded-lg text-xs")))
	}
	return h.Form(h.Class("w-full space-y-1"),
		hx.Post("/admin/blocks/"+b.ID+"/fields"), hx.Trigger("change"),
		hx.Target("#"+PortfolioID), hx.Swap("outerHTML"),
		g.Group(inputs),
	)
}

func blockValue(b domain.ContentBlock, f domain.BlockField) string {
	switch f {
	case domain.BlockTitle:
		return b.Title
	case domain.BlockSubtitle:
		return b.Subtitle
	case domain.BlockContent:
		return b.Content
	case domain.BlockURL:
		return b.URL
	case domain.BlockImageURL:
		return b.ImageURL
	}
	return ""
}

func addBlockBar() g.Node {
	buttons := make([]g.Node, 0, len(domain.Kinds))
	for _, k := range domain.Kinds {
		buttons = append(buttons, h.Button(h.Type("button"),
			h.Class("px-4 py-3 bg-neutral-800 rounded-xl text-sm font-black"),
			hx.Post("/admin/blocks"), hx.Vals(`{"kind":"`+string(k)+`"}`),
			hx.Target("#"+PortfolioID), hx.Swap("outerHTML"),
			g.Text("+ "+string(k)),
		))
	}
	return h.Div(h.Class("max-w-4xl mx-auto mt-6 flex flex-wrap gap-2 justify-center"),
		h.Span(h.Class("text-sm text-white/50 self-center"), g.Text("Novo Bloco")),
		g.Group(buttons),
	)
}

// blockCount is shown in the settings dialog.
func blockCount(n int) string {
	return strconv.Itoa(n) + " blocos"
}
