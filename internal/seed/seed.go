// Package seed holds the bundled sample posts. They are compiled-in
// constants: always present, never persisted, never mutated. Accessors
// return copies so callers cannot taint the originals.
package seed

import "github.com/mayasahsra/write-verse-online/internal/models"

var featured = models.Post{
	ID:         "1",
	Title:      "The Art of Creative Writing: Finding Your Unique Voice",
	Excerpt:    "Discover how to develop your unique writing style and create content that resonates with your audience.",
	Author:     "Jane Austen",
	Date:       "Apr 20, 2025",
	ReadTime:   "5 min read",
	CoverImage: "https://images.unsplash.com/photo-1455390582262-044cdead277a?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1000&q=80",
	Tags:       []string{"Writing", "Creativity", "Self-Improvement"},
}

var recent = []models.Post{
	{
		ID:         "2",
		Title:      "10 Essential Tips for Blog Writing Success",
		Excerpt:    "Learn the fundamental practices that can elevate your blog writing from amateur to professional.",
		Author:     "Ernest Hemingway",
		Date:       "Apr 18, 2025",
		ReadTime:   "4 min read",
		CoverImage: "https://images.unsplash.com/photo-1499750310107-5fef28a66643?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1000&q=80",
		Tags:       []string{"Blogging", "Tips", "Writing"},
	},
	{
		ID:         "3",
		Title:      "Writing for Digital Platforms: What You Need to Know",
		Excerpt:    "The digital landscape has transformed how we create and consume written content. Here's what writers should focus on.",
		Author:     "Virginia Woolf",
		Date:       "Apr 15, 2025",
		ReadTime:   "6 min read",
		CoverImage: "https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1000&q=80",
		Tags:       []string{"Digital", "Content Strategy", "SEO"},
	},
	{
		ID:         "4",
		Title:      "The Psychology of Storytelling in Modern Media",
		Excerpt:    "Understanding how narratives work can help you create more engaging and impactful content.",
		Author:     "George Orwell",
		Date:       "Apr 12, 2025",
		ReadTime:   "8 min read",
		CoverImage: "https://images.unsplash.com/photo-1516414447565-b14be0adf13e?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1000&q=80",
		Tags:       []string{"Psychology", "Storytelling", "Writing"},
	},
}

var trendingTopics = []string{
	"Writing Tips", "Personal Development", "Technology", "Health & Wellness",
	"Travel", "Food", "Business", "Science", "Arts & Culture", "Environment",
}

// Featured returns the front-page highlight post.
func Featured() models.Post { return clone(featured) }

// Listing returns every seed post in display order, featured first.
func Listing() []models.Post {
	out := make([]models.Post, 0, 1+len(recent))
	out = append(out, clone(featured))
	for _, p := range recent {
		out = append(out, clone(p))
	}
	return out
}

// Lookup resolves id against the detail corpus, the seed posts that carry a
// full body. Listing-only posts ("3", "4") are not resolvable, matching the
// bundled sample data.
func Lookup(id string) (models.Post, bool) {
	body, ok := details[id]
	if !ok {
		return models.Post{}, false
	}
	for _, p := range Listing() {
		if p.ID == id {
			p.FullContent = body
			return p, true
		}
	}
	return models.Post{}, false
}

// Topics returns the trending topic labels.
func Topics() []string {
	out := make([]string, len(trendingTopics))
	copy(out, trendingTopics)
	return out
}

func clone(p models.Post) models.Post {
	tags := make([]string, len(p.Tags))
	copy(tags, p.Tags)
	p.Tags = tags
	return p
}
