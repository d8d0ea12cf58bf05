package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mayasahsra/write-verse-online/internal/models"
	"github.com/mayasahsra/write-verse-online/internal/render"
)

func TestRenderBlocksOrderedNumbering(t *testing.T) {
	out := renderBlocks(render.Render("1. alpha\n2. beta\nprose\n3. gamma"))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "  1. alpha", lines[0])
	assert.Equal(t, "  2. beta", lines[1])
	// numbering restarts after a paragraph
	assert.Equal(t, "  1. gamma", lines[3])
}

// A blank line ends an ordered run like every other block boundary.
func TestRenderBlocksOrderedNumberingResetsOnBlankLine(t *testing.T) {
	out := renderBlocks(render.Render("1. alpha\n2. beta\n\n3. gamma"))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "  1. alpha", lines[0])
	assert.Equal(t, "  2. beta", lines[1])
	assert.Equal(t, "  1. gamma", lines[3])
}

func TestRenderBlocksKeepsText(t *testing.T) {
	out := renderBlocks(render.Render("## Head\n\nbody line\n- item"))
	assert.Contains(t, out, "Head")
	assert.Contains(t, out, "body line")
	assert.Contains(t, out, "  - item")
}

func TestRenderPostShowsPlaceholderWithoutCover(t *testing.T) {
	out := renderPost(models.Post{ID: "x", Title: "T", Author: "a", Content: "body"})
	assert.Contains(t, out, "cover: (none)")
	assert.Contains(t, out, "body")
}

func TestRenderCardIncludesByline(t *testing.T) {
	out := renderCard(models.Post{ID: "x", Title: "T", Author: "ann", ReadTime: "1 min read", Date: "Apr 1, 2025", Excerpt: "e..."})
	assert.Contains(t, out, "ann")
	assert.Contains(t, out, "1 min read")
	assert.Contains(t, out, "id x")
}

func TestSplitTags(t *testing.T) {
	assert.Nil(t, splitTags(""))
	assert.Equal(t, []string{"a", " b", "c "}, splitTags("a, b,c "))
}
