package contact

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// brDateTime is how pt-BR browsers print a full local date and time.
const brDateTime = "02/01/2006, 15:04:05"

// notInformed stands in for an omitted Instagram handle.
const notInformed = "Não informado"

// Subject returns the email subject for a contact from name.
func Subject(name string) string {
	return fmt.Sprintf("Novo Contato: %s - Portfólio", name)
}

// Body returns the plain-text email body summarising f, stamped with now.
func Body(f Form, now time.Time) string {
	instagram := f.Instagram
	if instagram == "" {
		instagram = notInformed
	}
	lines := []string{
		"Nome: " + f.Name,
		"WhatsApp: " + f.Phone,
		"E-mail: " + f.Email,
		"Instagram: " + instagram,
		"Data: " + now.Format(brDateTime),
	}
	return strings.Join(lines, "\n")
}

// MailtoURL builds the mail-client handoff addressed to the profile's email.
func MailtoURL(to string, f Form, now time.Time) string {
	return "mailto:" + to +
		"?subject=" + EncodeComponent(Subject(f.Name)) +
		"&body=" + EncodeComponent(Body(f, now))
}

// WhatsAppURL builds the wa.me deep link with a prefilled message.
func WhatsAppURL(number, message string) string {
	return "https://wa.me/" + number + "?text=" + EncodeComponent(message)
}

// componentSafe are the characters QueryEscape escapes but browsers' URI
// component encoding leaves alone.
var componentSafe = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s the way browsers encode a URI component:
// spaces become %20 and !'()* stay literal.
func EncodeComponent(s string) string {
	return componentSafe.Replace(url.QueryEscape(s))
}
