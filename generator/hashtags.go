package generator

import "strings"

// MaxHashtags is the fixed length of the tag line every post ends with.
const MaxHashtags = 30

// requiredItemTags must all appear, in this order, on every MISHARP item post.
var requiredItemTags = []string{
	"#미샵", "#여성의류", "#출근룩", "#데일리룩", "#ootd",
	"#40대여성의류", "#50대여성의류", "#중년여성패션",
}

// fillerTags pads the tag line after required and keyword tags. The pool stays
// comfortably above MaxHashtags so curation always fills the line, even for a
// post with no keywords at all.
var fillerTags = []string{
	"#겨울코디", "#봄코디", "#간절기코디", "#오피스룩", "#하객룩",
	"#학교상담룩", "#체형커버", "#데일리패션", "#중년코디", "#미시룩",
	"#심플룩", "#꾸안꾸", "#스타일링", "#코디추천", "#여성패션",
	"#쇼핑몰추천", "#오늘의코디", "#데일리코디", "#중년여성", "#40대코디",
	"#50대코디", "#여름코디", "#가을코디", "#40대패션", "#50대패션",
	"#모임룩", "#여행룩", "#엄마옷", "#언니옷", "#미시패션",
	"#출근복", "#주말코디",
}

// CurateTags merges required, keyword-derived, and filler tags, in that priority
// order, into at most MaxHashtags hashtags. Every tag gets a single leading "#",
// blanks are dropped, and duplicates are removed case-insensitively with the
// first spelling kept. The cap is checked after every append, so a long required
// list is cut exactly at the limit.
func CurateTags(required, keyword, filler []string) []string {
	seen := make(map[string]bool, MaxHashtags)
	out := make([]string, 0, MaxHashtags)

	add := func(tag string) bool {
		t := strings.TrimSpace(tag)
		if t == "" {
			return len(out) >= MaxHashtags
		}
		if !strings.HasPrefix(t, "#") {
			t = "#" + t
		}
		key := strings.ToLower(t)
		if !seen[key] {
			seen[key] = true
			out = append(out, t)
		}
		return len(out) >= MaxHashtags
	}

	for _, group := range [][]string{required, keyword, filler} {
		for _, t := range group {
			if add(t) {
				return out
			}
		}
	}
	return out
}
