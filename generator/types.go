package generator

import "time"

// Platform labels, matched verbatim against the form's radio choices. The label text
// feeds straight into the prompt so the model knows which search channel to optimize for.
const (
	PlatformNaver   = "네이버(네이버 SEO)"
	PlatformTistory = "티스토리(다음/카카오 SEO)"
	PlatformBlogger = "블로거(구글 SEO)"
)

// Post type labels. Item posts get the full MISHARP product structure and the
// required hashtag set; general posts get the lighter topic template.
const (
	PostTypeItem    = "미샵 패션 아이템 글"
	PostTypeGeneral = "기타 주제 글"
)

// Request carries one form submission. Topic is the only required field; everything
// else is optional material for the prompt.
type Request struct {
	Platform   string `json:"platform"`
	PostType   string `json:"post_type"`
	Topic      string `json:"topic"`
	ProductURL string `json:"product_url"`
	Keywords   string `json:"keywords"` // raw comma-separated text as typed
	Notes      string `json:"notes"`
	SizeSpec   string `json:"size_spec"`
	Reviews    string `json:"reviews"`
}

// Post is the finished, post-processed article.
type Post struct {
	Title       string    `json:"title"`
	Body        string    `json:"body"` // everything after the title line, tag line included
	Text        string    `json:"text"` // full normalized text with the canonical tag line at the end
	Hashtags    []string  `json:"hashtags"`
	GeneratedAt time.Time `json:"generated_at"`
}
