package contact

import (
	"time"

	"github.com/nfrund/folio/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var weekdays = [...]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

var (
	brTitle = cases.Title(language.BrazilianPortuguese)
	brUpper = cases.Upper(language.BrazilianPortuguese)
)

// VisitDate is a visitor timestamp split the way the visitor log shows it.
type VisitDate struct {
	DayName string // e.g. "Sábado"
	Day     string // dd/mm
	Time    string // HH:MM
}

// FormatVisit renders a stored RFC 3339 timestamp in loc. Unparseable
// timestamps come back as the raw string in Day.
func FormatVisit(timestamp string, loc *time.Location) VisitDate {
	t, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		return VisitDate{Day: timestamp}
	}
	if loc != nil {
		t = t.In(loc)
	}
	return VisitDate{
		DayName: brTitle.String(weekdays[t.Weekday()]),
		Day:     t.Format("02/01"),
		Time:    t.Format("15:04"),
	}
}

// Initial is the avatar letter for a visitor entry.
func Initial(v domain.Visitor) string {
	handle := v.InstagramHandle
	if handle == "" {
		handle = "V"
	}
	for _, r := range handle {
		return brUpper.String(string(r))
	}
	return "V"
}

// DisplayHandle prefixes the handle with @.
func DisplayHandle(v domain.Visitor) string {
	return "@" + v.InstagramHandle
}
