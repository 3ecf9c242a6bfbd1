package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordmaster/internal/ui/theme"
	"github.com/abhisek/wordmaster/internal/word"
)

// cardWidth is the fixed inner width of a rendered word card.
const cardWidth = 64

// RenderWordCard renders a single word as a bordered card. Position is
// a 1-based "n / total" indicator; pass total 0 to hide it.
func RenderWordCard(w word.Word, position, total int) string {
	var b strings.Builder

	// Headline: word with status markers.
	headline := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(w.Word)
	if w.IsFavorite {
		headline += " " + theme.Favorited.Render("♥")
	}
	if w.IsLearned {
		headline += " " + theme.Learned.Render("✓")
	}
	b.WriteString(headline)
	b.WriteString("\n")

	// Difficulty and category badges.
	b.WriteString(renderBadge(strings.ToUpper(string(w.Difficulty)), difficultyColor(w.Difficulty)))
	b.WriteString(" ")
	b.WriteString(renderBadge(strings.ToUpper(string(w.Category)), theme.Secondary))
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().Foreground(theme.Text).Width(cardWidth)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Width(cardWidth)

	b.WriteString(body.Render(w.Definition))
	b.WriteString("\n")

	if w.Example != "" {
		b.WriteString("\n")
		b.WriteString(dim.Italic(true).Render("“" + w.Example + "”"))
		b.WriteString("\n")
	}

	if len(w.Synonyms) > 0 {
		b.WriteString("\n")
		b.WriteString(dim.Render("Synonyms: " + strings.Join(w.Synonyms, ", ")))
		b.WriteString("\n")
	}
	if len(w.Antonyms) > 0 {
		b.WriteString(dim.Render("Antonyms: " + strings.Join(w.Antonyms, ", ")))
		b.WriteString("\n")
	}

	if w.Etymology != "" {
		b.WriteString("\n")
		b.WriteString(dim.Render("Origin: " + w.Etymology))
		b.WriteString("\n")
	}

	if total > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(cardWidth).
			Align(lipgloss.Right).
			Render(fmt.Sprintf("%d / %d", position, total)))
	}

	return theme.Card.Render(b.String())
}

func renderBadge(label string, c color.Color) string {
	return lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(c).
		Bold(true).
		Padding(0, 1).
		Render(label)
}

func difficultyColor(d word.Difficulty) color.Color {
	switch d {
	case word.DifficultyBeginner:
		return theme.Beginner
	case word.DifficultyAdvanced:
		return theme.Advanced
	default:
		return theme.Intermediate
	}
}
