package domain

import (
	"encoding/json"
	"fmt"
)

// BlockKind determines which optional fields of a ContentBlock are meaningful
// and how the block renders.
type BlockKind string

const (
	KindSocial BlockKind = "social"
	KindText   BlockKind = "text"
	KindImage  BlockKind = "image"
	KindLink   BlockKind = "link"
	KindMap    BlockKind = "map"
)

// Kinds lists every block kind in display order of the editor menu.
var Kinds = []BlockKind{KindSocial, KindText, KindImage, KindLink, KindMap}

// Valid reports whether k is a known block kind.
func (k BlockKind) Valid() bool {
	switch k {
	case KindSocial, KindText, KindImage, KindLink, KindMap:
		return true
	}
	return false
}

// ParseBlockKind converts user input into a BlockKind.
func ParseBlockKind(s string) (BlockKind, error) {
	k := BlockKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
	return k, nil
}

// Span bounds for grid tiles.
const (
	MinSpan       = 1
	MaxColumnSpan = 4
	MaxRowSpan    = 2
)

// ContentBlock is one tile of the bento grid.
type ContentBlock struct {
	ID         string    `json:"id"`
	Kind       BlockKind `json:"type"`
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle,omitempty"`
	Content    string    `json:"content,omitempty"`
	URL        string    `json:"url,omitempty"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	ColumnSpan int       `json:"colSpan"`
	RowSpan    int       `json:"rowSpan"`
}

// Normalize clamps both spans into range. A zero span (absent in older
// snapshots) becomes the default of 1.
func (b *ContentBlock) Normalize() {
	b.ColumnSpan = clamp(b.ColumnSpan, MinSpan, MaxColumnSpan)
	b.RowSpan = clamp(b.RowSpan, MinSpan, MaxRowSpan)
}

// UnmarshalJSON applies Normalize so every decoded block honours the span bounds.
func (b *ContentBlock) UnmarshalJSON(data []byte) error {
	type raw ContentBlock
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*b = ContentBlock(r)
	b.Normalize()
	return nil
}

// BlockField names one of the free-text fields of a ContentBlock.
type BlockField string

const (
	BlockTitle    BlockField = "title"
	BlockSubtitle BlockField = "subtitle"
	BlockContent  BlockField = "content"
	BlockURL      BlockField = "url"
	BlockImageURL BlockField = "imageUrl"
)

// Set overwrites one free-text field.
func (b *ContentBlock) Set(field BlockField, value string) error {
	switch field {
	case BlockTitle:
		b.Title = value
	case BlockSubtitle:
		b.Subtitle = value
	case BlockContent:
		b.Content = value
	case BlockURL:
		b.URL = value
	case BlockImageURL:
		b.ImageURL = value
	default:
		return fmt.Errorf("%w: block field %q", ErrUnknownField, field)
	}
	return nil
}

// Profile is the singleton owner record shown in the page header.
type Profile struct {
	Name                   string `json:"name"`
	Role                   string `json:"role"`
	AvatarURL              string `json:"avatar"`
	Email                  string `json:"email"`
	InstagramHandle        string `json:"instagram"`
	WhatsAppNumber         string `json:"whatsapp"`
	WhatsAppDefaultMessage string `json:"whatsappMessage"`
	PortfolioLinkURL       string `json:"driveLink"`
}

// ProfileField names one field of the Profile.
type ProfileField string

const (
	ProfileName                   ProfileField = "name"
	ProfileRole                   ProfileField = "role"
	ProfileAvatarURL              ProfileField = "avatarUrl"
	ProfileEmail                  ProfileField = "email"
	ProfileInstagramHandle        ProfileField = "instagramHandle"
	ProfileWhatsAppNumber         ProfileField = "whatsappNumber"
	ProfileWhatsAppDefaultMessage ProfileField = "whatsappDefaultMessage"
	ProfilePortfolioLinkURL       ProfileField = "portfolioLinkUrl"
)

// ProfileFields lists the editable profile fields in settings panel order.
var ProfileFields = []ProfileField{
	ProfileName,
	ProfileRole,
	ProfileAvatarURL,
	ProfileEmail,
	ProfileInstagramHandle,
	ProfileWhatsAppNumber,
	ProfileWhatsAppDefaultMessage,
	ProfilePortfolioLinkURL,
}

// Set overwrites one field. Values are stored as given.
func (p *Profile) Set(field ProfileField, value string) error {
	switch field {
	case ProfileName:
		p.Name = value
	case ProfileRole:
		p.Role = value
	case ProfileAvatarURL:
		p.AvatarURL = value
	case ProfileEmail:
		p.Email = value
	case ProfileInstagramHandle:
		p.InstagramHandle = value
	case ProfileWhatsAppNumber:
		p.WhatsAppNumber = value
	case ProfileWhatsAppDefaultMessage:
		p.WhatsAppDefaultMessage = value
	case ProfilePortfolioLinkURL:
		p.PortfolioLinkURL = value
	default:
		return fmt.Errorf("%w: profile field %q", ErrUnknownField, field)
	}
	return nil
}

// Get returns the current value of one field.
func (p Profile) Get(field ProfileField) (string, error) {
	switch field {
	case ProfileName:
		return p.Name, nil
	case ProfileRole:
		return p.Role, nil
	case ProfileAvatarURL:
		return p.AvatarURL, nil
	case ProfileEmail:
		return p.Email, nil
	case ProfileInstagramHandle:
		return p.InstagramHandle, nil
	case ProfileWhatsAppNumber:
		return p.WhatsAppNumber, nil
	case ProfileWhatsAppDefaultMessage:
		return p.WhatsAppDefaultMessage, nil
	case ProfilePortfolioLinkURL:
		return p.PortfolioLinkURL, nil
	}
	return "", fmt.Errorf("%w: profile field %q", ErrUnknownField, field)
}

// Visitor is the receipt of one contact-form submission.
type Visitor struct {
	ID              string `json:"id"`
	InstagramHandle string `json:"instagram"`
	// SubmittedAt is an RFC 3339 instant in UTC.
	SubmittedAt string `json:"timestamp"`
}

// Document is a full snapshot of the portfolio, used for export.
type Document struct {
	Profile  Profile        `json:"profile"`
	Blocks   []ContentBlock `json:"items"`
	Visitors []Visitor      `json:"visitors"`
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
