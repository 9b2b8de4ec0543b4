package generator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Label forms the model sometimes emits before the actual title, e.g.
// "제목: ...", "Title: ...", "[제목] ...".
var titleLabelRe = regexp.MustCompile(`(?i)^\s*(?:\[\s*제목\s*\]\s*:?|제목\s*:|title\s*:)\s*`)

const (
	minTitleRunes = 4
	maxTitleRunes = 90
)

// SplitTitle separates the title from the rest of a generated post. The first
// non-blank line is the title candidate; a leading label is stripped, and a
// candidate shorter than 4 or longer than 90 runes is discarded for fallback.
// The body is everything strictly after the title line, trimmed, so the
// candidate line never leaks into the body even when the fallback wins.
func SplitTitle(generated, fallback string) (title, body string) {
	if strings.TrimSpace(generated) == "" {
		return fallback, ""
	}
	lines := strings.Split(generated, "\n")
	idx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fallback, generated
	}

	title = strings.TrimSpace(titleLabelRe.ReplaceAllString(strings.TrimSpace(lines[idx]), ""))
	if n := utf8.RuneCountInString(title); n < minTitleRunes || n > maxTitleRunes {
		title = fallback
	}
	body = strings.TrimSpace(strings.Join(lines[idx+1:], "\n"))
	return title, body
}
