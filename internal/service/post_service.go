package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/mayasahsra/write-verse-online/internal/cache"
	"github.com/mayasahsra/write-verse-online/internal/config"
	"github.com/mayasahsra/write-verse-online/internal/models"
	"github.com/mayasahsra/write-verse-online/internal/search"
	"github.com/mayasahsra/write-verse-online/internal/seed"
	"github.com/mayasahsra/write-verse-online/internal/storage"
	"github.com/mayasahsra/write-verse-online/internal/store"
)

// ErrNotFound is returned by Resolve when no post matches the id. Callers
// branch on it; it is a distinct outcome, not a crash.
var ErrNotFound = errors.New("blog post not found")

// ValidationError reports a publish-time input problem. Nothing is
// persisted when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

const (
	excerptLength   = 150
	excerptEllipsis = "..."
	wordsPerMinute  = 200
	dateLayout      = "Jan 2, 2006"
)

type PostService struct {
	cfg     *config.Config
	store   *store.Store
	cache   *cache.Cache
	storage *storage.Storage
	now     func() time.Time
}

func NewPostService(cfg *config.Config, st *store.Store, c *cache.Cache, db *storage.Storage) *PostService {
	return &PostService{cfg: cfg, store: st, cache: c, storage: db, now: time.Now}
}

type PublishInput struct {
	Title      string
	Content    string
	CoverImage string
	Tags       []string
	Author     string
}

// Publish validates the draft, derives the display fields, and appends the
// post to the content store. The activity log write is best-effort.
func (s *PostService) Publish(in PublishInput) (models.Post, error) {
	if strings.TrimSpace(in.Title) == "" {
		return models.Post{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if strings.TrimSpace(in.Content) == "" {
		return models.Post{}, &ValidationError{Field: "content", Reason: "must not be empty"}
	}
	now := s.now()
	post := models.Post{
		ID:         strconv.FormatInt(now.UnixMilli(), 10),
		Title:      in.Title,
		Excerpt:    Excerpt(in.Content),
		Author:     in.Author,
		Date:       now.Format(dateLayout),
		ReadTime:   ReadTime(in.Content),
		CoverImage: in.CoverImage,
		Tags:       normalizeTags(in.Tags),
		Content:    in.Content,
	}
	s.store.AddBlog(post)
	if err := s.storage.LogActivity("publish", post.ID); err != nil {
		log.Printf("service: activity log failed: %v", err)
	}
	return post, nil
}

// Resolve looks id up in the seed corpus first, then the content store, so
// seed posts win an id collision. The configured delay models the fetch the
// original client simulated; ctx cancels the wait.
func (s *PostService) Resolve(ctx context.Context, id string) (models.Post, error) {
	if delay := time.Duration(s.cfg.ResolveDelayMS) * time.Millisecond; delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return models.Post{}, ctx.Err()
		}
	}

	key := "post:" + id
	var cached models.Post
	if found, err := s.cache.GetJSON(key, &cached); err == nil && found {
		return cached, nil
	}

	if post, ok := seed.Lookup(id); ok {
		s.fillCache(key, post)
		return post, nil
	}
	for _, post := range s.store.Snapshot() {
		if post.ID == id {
			s.fillCache(key, post)
			return post, nil
		}
	}
	return models.Post{}, ErrNotFound
}

func (s *PostService) fillCache(key string, post models.Post) {
	if err := s.cache.SetJSON(key, post); err != nil {
		log.Printf("service: cache fill failed: %v", err)
	}
}

// SearchAll runs the search engine over the merged corpus: seed posts
// first, then authored posts, each in their original order.
func (s *PostService) SearchAll(query string) []models.Post {
	corpus := append(seed.Listing(), s.store.Snapshot()...)
	return search.Search(query, corpus)
}

// Excerpt derives the list-view summary: the first 150 characters of
// content with the ellipsis marker always appended. The cut lands on a
// rune boundary so multi-byte content stays valid UTF-8.
func Excerpt(content string) string {
	runes := []rune(content)
	if len(runes) > excerptLength {
		content = string(runes[:excerptLength])
	}
	return content + excerptEllipsis
}

// ReadTime estimates reading duration at 200 words per minute, never below
// one minute.
func ReadTime(content string) string {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
