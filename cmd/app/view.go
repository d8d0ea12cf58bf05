package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mayasahsra/write-verse-online/internal/models"
	"github.com/mayasahsra/write-verse-online/internal/render"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	metaStyle    = lipgloss.NewStyle().Faint(true)
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	topicStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// renderCard is the list-view card: title, tags, excerpt, byline.
func renderCard(p models.Post) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Title))
	b.WriteString("\n")
	if len(p.Tags) > 0 {
		b.WriteString(tagStyle.Render(strings.Join(p.Tags, " / ")))
		b.WriteString("\n")
	}
	b.WriteString(p.Excerpt)
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(fmt.Sprintf("%s | %s | %s | id %s", p.Author, p.ReadTime, p.Date, p.ID)))
	b.WriteString("\n")
	return b.String()
}

// renderPost is the full article view.
func renderPost(p models.Post) string {
	var b strings.Builder
	if p.CoverImage != "" {
		b.WriteString(metaStyle.Render("cover: " + p.CoverImage))
	} else {
		b.WriteString(metaStyle.Render("cover: (none)"))
	}
	b.WriteString("\n\n")
	if len(p.Tags) > 0 {
		b.WriteString(tagStyle.Render(strings.Join(p.Tags, " / ")))
		b.WriteString("\n")
	}
	b.WriteString(titleStyle.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(fmt.Sprintf("%s | %s | %s", p.Author, p.Date, p.ReadTime)))
	b.WriteString("\n\n")
	b.WriteString(renderBlocks(render.Render(p.Body())))
	return b.String()
}

// renderBlocks maps renderer output to terminal lines. The block structure
// is fixed by the renderer; only presentation happens here. Ordered items
// are renumbered from their position in the current run, and any other
// block kind ends the run.
func renderBlocks(blocks []render.Block) string {
	var b strings.Builder
	ordinal := 0
	for _, blk := range blocks {
		switch blk.Kind {
		case render.LineBreak:
			b.WriteString("\n")
			ordinal = 0
		case render.Heading:
			b.WriteString(headingStyle.Render(blk.Text))
			b.WriteString("\n")
			ordinal = 0
		case render.OrderedItem:
			ordinal++
			fmt.Fprintf(&b, "  %d. %s\n", ordinal, blk.Text)
		case render.UnorderedItem:
			b.WriteString("  - " + blk.Text + "\n")
		default:
			b.WriteString(blk.Text + "\n")
			ordinal = 0
		}
	}
	return b.String()
}
