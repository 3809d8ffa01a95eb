package portfolio

import (
	"strings"

	"github.com/nfrund/folio/internal/domain"
)

// legacyTitles are placeholder tiles shipped by earlier versions of the page.
var legacyTitles = []string{"filmmaking", "nova foto"}

// dropLegacyBlocks filters out blocks whose title case-insensitively equals a
// legacy placeholder title.
func dropLegacyBlocks(blocks []domain.ContentBlock) ([]domain.ContentBlock, int) {
	kept := make([]domain.ContentBlock, 0, len(blocks))
	for _, b := range blocks {
		if isLegacyTitle(b.Title) {
			continue
		}
		kept = append(kept, b)
	}
	return kept, len(blocks) - len(kept)
}

func isLegacyTitle(title string) bool {
	for _, t := range legacyTitles {
		if strings.EqualFold(title, t) {
			return true
		}
	}
	return false
}
