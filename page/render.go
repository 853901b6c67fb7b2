package page

import (
	"fmt"
	"io"
	"strings"
)

// Render writes the settled page as plain text: the error, a result count
// or a no-results notice, then one block per card.
func Render(w io.Writer, state State) error {
	var b strings.Builder

	switch {
	case state.Loading:
		b.WriteString("Searching ECSS standards...\n")
	case state.Error != "":
		fmt.Fprintf(&b, "! %s\n", state.Error)
	case len(state.Results) == 0:
		if state.Query != "" {
			b.WriteString("No results found\nTry adjusting your search terms or filters\n")
		}
	default:
		fmt.Fprintf(&b, "Found %d %s\n", len(state.Results), plural(len(state.Results), "result"))
	}

	for _, card := range NewCards(state.Results) {
		b.WriteString("\n")
		renderCard(&b, card)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderCard(b *strings.Builder, card Card) {
	fmt.Fprintf(b, "[%s:%s] %s", card.Badge, card.BadgeColor, card.DocumentName)
	if card.Section != "" {
		fmt.Fprintf(b, "  Section %s", card.Section)
	}
	if card.RequirementID != "" {
		fmt.Fprintf(b, "  %s", card.RequirementID)
	}
	fmt.Fprintf(b, "  Relevance %d%%\n", card.Relevance)
	fmt.Fprintf(b, "  %s\n", card.Content)
	if card.PageNumber != "" {
		fmt.Fprintf(b, "  Page %s", card.PageNumber)
	}
	fmt.Fprintf(b, "  Branch %s | Rev %s\n", card.Branch, card.Revision)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
