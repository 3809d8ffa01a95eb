package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/admin"
	"github.com/nfrund/folio/internal/contact"
	"github.com/nfrund/folio/internal/middleware"
	"github.com/nfrund/folio/internal/view"
)

// ContactThanks is flashed once a contact submission has been logged.
const ContactThanks = "Obrigado! Seu contato foi registrado."

// ContactHandler serves the contact form and the WhatsApp shortcut.
type ContactHandler struct {
	service *contact.Service
	profile contact.Recorder
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(service *contact.Service, profile contact.Recorder) *ContactHandler {
	return &ContactHandler{service: service, profile: profile}
}

// Submit logs the visitor and hands off to the mail client (POST /contact).
func (h *ContactHandler) Submit(c echo.Context) error {
	var form contact.Form
	if err := c.Bind(&form); err != nil {
		return err
	}

	sub, err := h.service.Submit(c.Request().Context(), form)
	if err != nil {
		if errors.Is(err, contact.ErrInvalidForm) {
			middleware.FromContext(c.Request().Context()).Info("Rejected contact form", "error", err)
			view.SetFlashError(c, "Preencha nome, WhatsApp e um e-mail válido.")
		}
		return httpError(err)
	}

	panel := admin.LoadPanel(c)
	panel.Close(admin.ModalContact)
	if err := admin.SavePanel(c, panel); err != nil {
		return httpError(err)
	}
	view.SetFlashSuccess(c, ContactThanks)

	if middleware.IsHTMX(c) {
		c.Response().Header().Set("HX-Redirect", sub.MailtoURL)
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, sub.MailtoURL)
}

// WhatsApp redirects to the wa.me chat with the profile's default message
// (GET /whatsapp).
func (h *ContactHandler) WhatsApp(c echo.Context) error {
	p := h.profile.Profile()
	return c.Redirect(http.StatusFound, contact.WhatsAppURL(p.WhatsAppNumber, p.WhatsAppDefaultMessage))
}
