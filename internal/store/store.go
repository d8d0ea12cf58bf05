// Package store holds the single source of truth for author-created posts.
// The container is constructed once by the composition root: posts load
// from durable storage at construction and every append is written back
// synchronously.
package store

import (
	"log"
	"sync"

	"github.com/mayasahsra/write-verse-online/internal/models"
	"github.com/mayasahsra/write-verse-online/internal/search"
	"github.com/mayasahsra/write-verse-online/internal/storage"
)

type Store struct {
	mu          sync.RWMutex
	posts       []models.Post
	storage     *storage.Storage
	subscribers map[int]func()
	nextSub     int
}

func New(st *storage.Storage) *Store {
	return &Store{
		posts:       st.Load(),
		storage:     st,
		subscribers: make(map[int]func()),
	}
}

// AddBlog appends post, persists the full sequence, and notifies
// subscribers before returning, so any already-rendered listing observes
// the new post. Persistence is best-effort: a failed write is logged and
// the in-memory state stands.
func (s *Store) AddBlog(post models.Post) {
	s.mu.Lock()
	s.posts = append(s.posts, post)
	snapshot := clonePosts(s.posts)
	subs := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	if err := s.storage.Save(snapshot); err != nil {
		log.Printf("store: persist failed: %v", err)
	}
	for _, fn := range subs {
		fn()
	}
}

// SearchBlogs filters the store's own posts. Seed posts are merged by the
// caller, not here.
func (s *Store) SearchBlogs(query string) []models.Post {
	return search.Search(query, s.Snapshot())
}

// Snapshot returns a copy of the current post sequence in insertion order.
func (s *Store) Snapshot() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePosts(s.posts)
}

// Subscribe registers fn to run after every append. The returned func
// removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func clonePosts(in []models.Post) []models.Post {
	out := make([]models.Post, len(in))
	copy(out, in)
	return out
}
