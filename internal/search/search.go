// Package search implements the in-memory post search: case-insensitive
// substring matching with no tokenization, stemming, or ranking.
package search

import (
	"strings"

	"github.com/mayasahsra/write-verse-online/internal/models"
)

// Search filters corpus by matching query as a substring of the lower-cased
// title, excerpt, or any tag. The query is not trimmed. An empty query
// returns the whole corpus. Matches keep their original relative order and
// the result is never capped.
func Search(query string, corpus []models.Post) []models.Post {
	if query == "" {
		out := make([]models.Post, len(corpus))
		copy(out, corpus)
		return out
	}
	q := strings.ToLower(query)
	out := make([]models.Post, 0, len(corpus))
	for _, p := range corpus {
		if matches(q, p) {
			out = append(out, p)
		}
	}
	return out
}

func matches(q string, p models.Post) bool {
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Excerpt), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
