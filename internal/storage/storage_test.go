package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayasahsra/write-verse-online/internal/config"
	"github.com/mayasahsra/write-verse-online/internal/models"
	"github.com/mayasahsra/write-verse-online/internal/storage"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DataDir:        t.TempDir(),
		DBFile:         "test.db",
		CacheTTLSec:    300,
		ResolveDelayMS: 0,
	}
}

func open(t *testing.T, cfg *config.Config) *storage.Storage {
	t.Helper()
	st, err := storage.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestLoadEmptyStore(t *testing.T) {
	st := open(t, testConfig(t))
	assert.Empty(t, st.Load())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := testConfig(t)
	st := open(t, cfg)

	posts := []models.Post{
		{ID: "a1", Title: "First", Excerpt: "one...", Author: "ann", Date: "Apr 1, 2025", ReadTime: "1 min read", Tags: []string{"x", "y"}, Content: "one"},
		{ID: "b2", Title: "Second", Excerpt: "two...", Author: "bob", Date: "Apr 2, 2025", ReadTime: "1 min read", Tags: []string{}, Content: "two", CoverImage: "https://example.com/c.png"},
	}
	require.NoError(t, st.Save(posts))

	got := st.Load()
	assert.Equal(t, posts, got)
}

func TestLoadSurvivesReopen(t *testing.T) {
	cfg := testConfig(t)
	st := open(t, cfg)
	require.NoError(t, st.Save([]models.Post{{ID: "a1", Title: "kept", Content: "body"}}))
	require.NoError(t, st.Close())

	st2 := open(t, cfg)
	got := st2.Load()
	require.Len(t, got, 1)
	assert.Equal(t, "kept", got[0].Title)
}

// Likes never enters the persisted form.
func TestLikesNotPersisted(t *testing.T) {
	st := open(t, testConfig(t))
	require.NoError(t, st.Save([]models.Post{{ID: "a1", Title: "t", Likes: 7}}))
	got := st.Load()
	require.Len(t, got, 1)
	assert.Zero(t, got[0].Likes)
}

// An unreadable blob falls back to an empty sequence instead of failing.
func TestCorruptBlobFallsBackToEmpty(t *testing.T) {
	st := open(t, testConfig(t))
	// A JSON string is valid storage but not a valid blog blob.
	require.NoError(t, st.SetValue(storage.BlogsKey, "garbage"))
	assert.Empty(t, st.Load())
}

func TestSessionValueLifecycle(t *testing.T) {
	st := open(t, testConfig(t))

	type sess struct {
		Username string `json:"username"`
	}
	var got sess
	found, err := st.GetValue(storage.SessionKey, &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, st.SetValue(storage.SessionKey, sess{Username: "ada"}))
	found, err = st.GetValue(storage.SessionKey, &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "ada", got.Username)

	require.NoError(t, st.SetValue(storage.SessionKey, sess{Username: "lin"}))
	_, err = st.GetValue(storage.SessionKey, &got)
	require.NoError(t, err)
	assert.Equal(t, "lin", got.Username)

	require.NoError(t, st.DeleteValue(storage.SessionKey))
	found, err = st.GetValue(storage.SessionKey, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestActivityLogNewestFirst(t *testing.T) {
	st := open(t, testConfig(t))
	require.NoError(t, st.LogActivity("login", ""))
	require.NoError(t, st.LogActivity("publish", "123"))

	entries, err := st.RecentActivity(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "publish", entries[0].Action)
	assert.Equal(t, "123", entries[0].PostID)
	assert.Equal(t, "login", entries[1].Action)
}
