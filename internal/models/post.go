package models

// Post is the sole content entity. Seed posts carry their body in
// FullContent, authored posts in Content; exactly one is populated per
// source, so callers read the body through Body.
type Post struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Author      string   `json:"author"`
	Date        string   `json:"date"`
	ReadTime    string   `json:"readTime"`
	CoverImage  string   `json:"coverImage,omitempty"`
	Tags        []string `json:"tags"`
	Content     string   `json:"content,omitempty"`
	FullContent string   `json:"fullContent,omitempty"`

	// Likes is a per-view-session counter. It is excluded from the
	// persisted form and starts at zero on every view.
	Likes int `json:"-"`
}

// Body returns the long-form text regardless of which field the source
// populated.
func (p Post) Body() string {
	if p.FullContent != "" {
		return p.FullContent
	}
	return p.Content
}
