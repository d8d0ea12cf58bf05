// Package render turns raw post text into an ordered sequence of display
// blocks. Each line is classified independently; there is no cross-line
// state, no nesting, and no inline emphasis parsing.
package render

import "strings"

type Kind int

const (
	Paragraph Kind = iota
	Heading
	OrderedItem
	UnorderedItem
	LineBreak
)

// Block is one unit of renderer output. Level is set only for headings.
// Blocks carry no styling; the consumer decides presentation.
type Block struct {
	Kind  Kind
	Level int
	Text  string
}

// Render splits text on line boundaries and classifies every line. It is
// pure and total: unrecognized lines fall through to Paragraph.
func Render(text string) []Block {
	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, classify(line))
	}
	return blocks
}

func classify(line string) Block {
	if strings.TrimSpace(line) == "" {
		return Block{Kind: LineBreak}
	}
	if strings.HasPrefix(line, "## ") {
		return Block{Kind: Heading, Level: 2, Text: line[3:]}
	}
	if strings.HasPrefix(line, "### ") {
		return Block{Kind: Heading, Level: 3, Text: line[4:]}
	}
	if isOrderedMarker(line) {
		return Block{Kind: OrderedItem, Text: line[3:]}
	}
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return Block{Kind: UnorderedItem, Text: line[2:]}
	}
	return Block{Kind: Paragraph, Text: line}
}

// Only the literal markers "1. " through "4. " count as ordered items;
// longer lists fall through to paragraphs.
func isOrderedMarker(line string) bool {
	return len(line) >= 3 && line[0] >= '1' && line[0] <= '4' && line[1] == '.' && line[2] == ' '
}
