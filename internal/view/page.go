package view

import (
	"time"

	"github.com/nfrund/folio/internal/admin"
	"github.com/nfrund/folio/internal/domain"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Element ids the handlers and live updates target.
const (
	PortfolioID  = "portfolio"
	ModalID      = "modal"
	LiveSignalID = "live-signal"
)

// PageData is everything the page and its fragments render from.
type PageData struct {
	Profile  domain.Profile
	Blocks   []domain.ContentBlock
	Visitors []domain.Visitor
	Panel    admin.Panel
	Now      time.Time
	Location *time.Location
	Flash    FlashData
}

func (d PageData) isAdmin() bool { return d.Panel.Admin }

// Page is the whole visible page.
func Page(d PageData) g.Node {
	return h.Div(
		panelToggle(d),
		Portfolio(d),
		flashes(d.Flash),
		h.Div(h.ID(ModalID), CurrentModal(d)),
		h.Div(hx.Ext("ws"), g.Attr("ws-connect", "/ws/live"),
			h.Div(h.ID(LiveSignalID)),
		),
	)
}

// CurrentModal renders whichever dialog the session has open, admin dialogs
// first. It returns nil when none is open.
func CurrentModal(d PageData) g.Node {
	for _, m := range []admin.Modal{admin.ModalSettings, admin.ModalVisitors, admin.ModalPasscode, admin.ModalContact} {
		if d.Panel.IsOpen(m, d.Now) {
			return ModalBody(m, d)
		}
	}
	return nil
}

func panelToggle(d PageData) g.Node {
	target := "/modal/" + string(admin.ModalPasscode)
	label := "Acesso Admin"
	class := "bg-[#7e0404] text-white"
	if d.isAdmin() {
		target = "/modal/" + string(admin.ModalSettings)
		label = "Configurações"
		class = "bg-white text-black"
	}
	return h.Button(h.Type("button"),
		h.Class("fixed top-6 right-6 z-50 px-5 py-4 rounded-full shadow-2xl font-black "+class),
		h.Title("Painel de Controle"),
		hx.Get(target), hx.Target("#"+ModalID), hx.Swap("innerHTML"),
		g.Text(label),
	)
}

// Portfolio is the profile header, the grid and the contact buttons. Admin
// actions swap it wholesale.
func Portfolio(d PageData) g.Node {
	return h.Section(h.ID(PortfolioID),
		profileHeader(d.Profile),
		Grid(d.Blocks, d.Profile, d.isAdmin()),
		g.If(d.isAdmin(), addBlockBar()),
		contactBar(),
	)
}

func profileHeader(p domain.Profile) g.Node {
	return h.Header(h.Class("flex flex-col items-center mb-16"),
		h.Img(h.Src(p.AvatarURL), h.Alt(p.Name),
			h.Class("w-40 h-40 rounded-full border-4 border-[#7e0404] object-cover bg-neutral-900 mb-8")),
		h.H1(h.Class("text-5xl sm:text-6xl font-black tracking-tighter mb-3"), g.Text(p.Name)),
		h.P(h.Class("text-gray-400 font-bold text-xl text-center"), g.Text(p.Role)),
	)
}

func contactBar() g.Node {
	return h.Footer(h.Class("max-w-4xl mx-auto mt-10 grid grid-cols-2 gap-4"),
		h.Button(h.Type("button"),
			h.Class("bg-white text-black py-5 rounded-2xl font-black"),
			hx.Get("/modal/"+string(admin.ModalContact)), hx.Target("#"+ModalID), hx.Swap("innerHTML"),
			g.Text("Solicitar Orçamento"),
		),
		h.A(h.Href("/whatsapp"), h.Target("_blank"), h.Rel("noopener noreferrer"),
			h.Class("bg-[#25D366] text-black py-5 rounded-2xl font-black text-center"),
			g.Text("WhatsApp"),
		),
	)
}

func flashes(f FlashData) g.Node {
	if len(f.Success) == 0 && len(f.Error) == 0 {
		return nil
	}
	nodes := make([]g.Node, 0, len(f.Success)+len(f.Error))
	for _, msg := range f.Success {
		nodes = append(nodes, h.P(h.Class("bg-green-900/80 p-4 rounded-xl"), g.Text(msg)))
	}
	for _, msg := range f.Error {
		nodes = append(nodes, h.P(h.Class("bg-red-900/80 p-4 rounded-xl"), g.Text(msg)))
	}
	return h.Div(h.Class("fixed bottom-6 left-6 z-50 space-y-2"), g.Group(nodes))
}

// LiveRefresh is pushed over the websocket after a change. htmx swaps it in
// by id and the inner element re-fetches the portfolio with the page's own
// session.
func LiveRefresh() g.Node {
	return h.Div(h.ID(LiveSignalID), hx.SwapOOB("true"),
		h.Div(
			hx.Get("/portfolio"), hx.Trigger("load"),
			hx.Target("#"+PortfolioID), hx.Swap("outerHTML"),
		),
	)
}
