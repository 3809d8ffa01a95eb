package view

import (
	"github.com/nfrund/folio/internal/admin"
	"github.com/nfrund/folio/internal/contact"
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/portfolio"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// ModalBody renders the content of dialog m.
func ModalBody(m admin.Modal, d PageData) g.Node {
	switch m {
	case admin.ModalContact:
		return dialog("Contato Profissional", contactForm())
	case admin.ModalPasscode:
		return dialog("Acesso Admin", passcodeForm(d))
	case admin.ModalSettings:
		return dialog("Configurações", settingsForm(d))
	case admin.ModalVisitors:
		return dialog("Insights de Visitas", visitorLog(d))
	}
	return nil
}

func dialog(title string, body g.Node) g.Node {
	return h.Div(h.Class("fixed inset-0 z-[100] bg-black/90 flex items-center justify-center p-4"),
		h.Div(h.Class("bg-neutral-950 border border-white/10 rounded-[3rem] p-10 w-full max-w-xl max-h-[90vh] overflow-y-auto"),
			h.Div(h.Class("flex justify-between items-center mb-8"),
				h.H2(h.Class("text-3xl font-black tracking-tighter"), g.Text(title)),
				h.Button(h.Type("button"), h.Class("p-3 rounded-full bg-white/5"),
					hx.Get("/modal/close"), hx.Target("#"+ModalID), hx.Swap("innerHTML"),
					g.Text("✕"),
				),
			),
			body,
		),
	)
}

func textInput(name, label, value string, extra ...g.Node) g.Node {
	return input("text", name, label, value, extra...)
}

func input(typ, name, label, value string, extra ...g.Node) g.Node {
	attrs := []g.Node{
		h.ID("f-" + name), h.Type(typ), h.Name(name), h.Value(value),
		h.Class("w-full bg-black/50 border border-white/5 p-5 rounded-[2rem] font-bold outline-none focus:border-[#7e0404]"),
	}
	return h.Div(h.Class("space-y-2"),
		h.Label(h.For("f-"+name), h.Class("text-xs font-black text-gray-500 uppercase tracking-widest"), g.Text(label)),
		h.Input(append(attrs, extra...)...),
	)
}

func contactForm() g.Node {
	return h.Form(h.Class("space-y-6"),
		hx.Post("/contact"),
		textInput("name", "Seu Nome", "", h.Required()),
		textInput("phone", "WhatsApp", "", h.Required(), g.Attr("inputmode", "tel")),
		input("email", "email", "E-mail", "", h.Required()),
		textInput("instagram", "Instagram (Opcional)", ""),
		h.Button(h.Type("submit"), h.Class("w-full bg-[#7e0404] py-6 rounded-[2rem] font-black text-lg"),
			g.Text("Enviar Mensagem"),
		),
	)
}

func passcodeForm(d PageData) g.Node {
	failed := d.Panel.AuthError(d.Now)
	border := "border-white/5"
	if failed {
		border = "border-red-600"
	}
	return h.Form(h.Class("space-y-6"),
		hx.Post("/admin/login"), hx.Target("#"+ModalID), hx.Swap("innerHTML"),
		h.Input(h.Type("password"), h.Name("code"), g.Attr("maxlength", "6"), h.Placeholder("••••••"),
			g.Attr("inputmode", "numeric"), g.Attr("pattern", "[0-9]*"), g.Attr("autofocus"),
			h.Class("w-full bg-black/50 border "+border+" p-6 rounded-[2rem] text-center text-3xl tracking-[0.5em]"),
		),
		g.If(failed, h.Div(
			h.P(h.Class("text-red-500 text-center font-bold"), g.Text("Senha incorreta")),
			// Re-render once the error has lapsed.
			h.Div(hx.Get("/modal"), hx.Trigger("load delay:2s"),
				hx.Target("#"+ModalID), hx.Swap("innerHTML")),
		)),
		h.Button(h.Type("submit"), h.Class("w-full bg-white text-black py-6 rounded-[2rem] font-black"),
			g.Text("Entrar"),
		),
	)
}

func settingsForm(d PageData) g.Node {
	p := d.Profile
	saving := d.Panel.Saving(d.Now)
	fields := []struct {
		field domain.ProfileField
		label string
	}{
		{domain.ProfileName, "Nome"},
		{domain.ProfileRole, "Cargo"},
		{domain.ProfileAvatarURL, "Foto de Perfil (URL)"},
		{domain.ProfileEmail, "E-mail"},
		{domain.ProfileWhatsAppNumber, "WhatsApp"},
		{domain.ProfileInstagramHandle, "Instagram"},
		{domain.ProfileWhatsAppDefaultMessage, "Mensagem do WhatsApp"},
		{domain.ProfilePortfolioLinkURL, "Link do Portfólio"},
	}
	inputs := make([]g.Node, 0, len(fields))
	for _, f := range fields {
		value, _ := p.Get(f.field)
		inputs = append(inputs, textInput(string(f.field), f.label, value))
	}

	saveLabel := "Salvar Alterações"
	if saving {
		saveLabel = "Salvo!"
	}
	return h.Div(h.Class("space-y-8"),
		h.P(h.Class("text-gray-500"), g.Text("Gerencie seu conteúdo em tempo real. "+blockCount(len(d.Blocks)))),
		h.Form(h.Class("space-y-4"),
			hx.Post("/admin/profile"), hx.Trigger("change"),
			hx.Target("#"+PortfolioID), hx.Swap("outerHTML"),
			g.Group(inputs),
		),
		h.Div(h.Class("grid grid-cols-2 gap-4"),
			h.Button(h.Type("button"), h.Class("bg-white/5 py-5 rounded-[2rem] font-black"),
				hx.Get("/modal/visitors"), hx.Target("#"+ModalID), hx.Swap("innerHTML"),
				g.Text("Histórico de visualizações"),
			),
			h.A(h.Href("/admin/export"), h.Class("bg-white/5 py-5 rounded-[2rem] font-black text-center"),
				g.Text("Exportar"),
			),
		),
		h.Button(h.Type("button"), h.Class("w-full bg-[#7e0404] py-6 rounded-[2rem] font-black text-lg"),
			hx.Post("/admin/publish"), hx.Target("#"+ModalID), hx.Swap("innerHTML"),
			g.Text(saveLabel),
		),
		g.If(saving, h.Div(hx.Get("/modal"), hx.Trigger("load delay:800ms"),
			hx.Target("#"+ModalID), hx.Swap("innerHTML"))),
		h.Button(h.Type("button"), h.Class("w-full text-gray-500 font-black py-4"),
			hx.Post("/admin/logout"), hx.Target("body"), hx.Swap("innerHTML"),
			g.Text("Sair do Painel"),
		),
	)
}

func visitorLog(d PageData) g.Node {
	if len(d.Visitors) == 0 {
		return h.P(h.Class("text-gray-500 text-center py-10"), g.Text("Sem novos registros."))
	}
	rows := make([]g.Node, 0, len(d.Visitors))
	for _, v := range d.Visitors {
		when := contact.FormatVisit(v.SubmittedAt, d.Location)
		rows = append(rows, h.Li(h.ID("visitor-"+v.ID), h.Class("flex items-center gap-4 bg-white/5 p-5 rounded-[2rem]"),
			h.Div(h.Class("w-14 h-14 bg-[#7e0404] rounded-[1.5rem] flex items-center justify-center font-black text-2xl"),
				g.Text(contact.Initial(v))),
			h.Div(h.Class("flex-1"),
				h.P(h.Class("font-black"), g.Text(contact.DisplayHandle(v))),
				h.P(h.Class("text-sm text-gray-500"), g.Text(when.DayName+", "+when.Day+" · "+when.Time)),
			),
			h.Button(h.Type("button"), h.Class("p-3 text-red-500"),
				hx.Delete("/admin/visitors/"+v.ID), hx.Target("#"+ModalID), hx.Swap("innerHTML"),
				g.Text("Remover"),
			),
		))
	}
	return h.Div(h.Class("space-y-6"),
		h.Ul(h.Class("space-y-3"), g.Group(rows)),
		h.Button(h.Type("button"), h.Class("w-full text-red-500 font-black py-4"),
			hx.Delete("/admin/visitors"), hx.Confirm(portfolio.PromptClearVisitors), hx.Vals(`{"confirm":"yes"}`),
			hx.Target("#"+ModalID), hx.Swap("innerHTML"),
			g.Text("Limpar Tudo"),
		),
	)
}
