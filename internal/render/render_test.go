package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDeterminism(t *testing.T) {
	text := "## Title\n\nA paragraph.\n1. one\n- bullet\n### Sub"
	assert.Equal(t, Render(text), Render(text))
}

func TestRenderHeadingLevel2(t *testing.T) {
	blocks := Render("## Hi")
	require.Len(t, blocks, 1)
	assert.Equal(t, Block{Kind: Heading, Level: 2, Text: "Hi"}, blocks[0])
}

func TestRenderHeadingLevel3(t *testing.T) {
	blocks := Render("### Deep")
	require.Len(t, blocks, 1)
	assert.Equal(t, Block{Kind: Heading, Level: 3, Text: "Deep"}, blocks[0])
}

func TestRenderUnorderedItems(t *testing.T) {
	blocks := Render("- a\n- b")
	require.Len(t, blocks, 2)
	assert.Equal(t, Block{Kind: UnorderedItem, Text: "a"}, blocks[0])
	assert.Equal(t, Block{Kind: UnorderedItem, Text: "b"}, blocks[1])
}

func TestRenderStarBullet(t *testing.T) {
	blocks := Render("* starred")
	require.Len(t, blocks, 1)
	assert.Equal(t, Block{Kind: UnorderedItem, Text: "starred"}, blocks[0])
}

func TestRenderEmptyInput(t *testing.T) {
	blocks := Render("")
	require.Len(t, blocks, 1)
	assert.Equal(t, LineBreak, blocks[0].Kind)
}

func TestRenderWhitespaceLine(t *testing.T) {
	blocks := Render("   \t  ")
	require.Len(t, blocks, 1)
	assert.Equal(t, LineBreak, blocks[0].Kind)
}

func TestRenderOrderedItems(t *testing.T) {
	blocks := Render("1. first\n4. fourth")
	require.Len(t, blocks, 2)
	assert.Equal(t, Block{Kind: OrderedItem, Text: "first"}, blocks[0])
	assert.Equal(t, Block{Kind: OrderedItem, Text: "fourth"}, blocks[1])
}

// Markers beyond "4. " are not list items; they fall through to paragraphs.
func TestRenderOrderedMarkerLimit(t *testing.T) {
	blocks := Render("5. fifth\n10. tenth")
	require.Len(t, blocks, 2)
	assert.Equal(t, Block{Kind: Paragraph, Text: "5. fifth"}, blocks[0])
	assert.Equal(t, Block{Kind: Paragraph, Text: "10. tenth"}, blocks[1])
}

func TestRenderParagraphFallback(t *testing.T) {
	for _, line := range []string{"plain text", "##no space", "-dash", "1.no space", "#single hash"} {
		blocks := Render(line)
		require.Len(t, blocks, 1)
		assert.Equal(t, Block{Kind: Paragraph, Text: line}, blocks[0], "line %q", line)
	}
}

func TestRenderMixedDocument(t *testing.T) {
	blocks := Render("## Intro\n\nSome prose.\n1. step one\n2. step two\n\n- note")
	kinds := make([]Kind, 0, len(blocks))
	for _, b := range blocks {
		kinds = append(kinds, b.Kind)
	}
	assert.Equal(t, []Kind{Heading, LineBreak, Paragraph, OrderedItem, OrderedItem, LineBreak, UnorderedItem}, kinds)
}
