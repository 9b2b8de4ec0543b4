package generator

import (
	"regexp"
	"strings"
	"time"
)

const maxKeywordTags = 25

var (
	// A run of 8 or more hashtags at the end of the text is the model's own tag
	// line; it gets stripped and replaced by the curated one.
	trailingTagsRe = regexp.MustCompile(`(?m)(#\S+\s*){8,}$`)
	tagSpaceRe     = regexp.MustCompile(`\s+`)
)

// PostProcess turns raw model output into a finished Post: normalize the text,
// swap the model's trailing tag run for the curated 30-tag line, then split the
// title from the body. Total over any input, including empty output from the
// model; the topic serves as the fallback title.
func PostProcess(raw string, req Request) Post {
	text := Normalize(raw)

	keywords := SplitKeywords(req.Keywords)
	var required []string
	if req.PostType == PostTypeItem {
		required = requiredItemTags
	}
	keywordTags := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if len(keywordTags) == maxKeywordTags {
			break
		}
		keywordTags = append(keywordTags, "#"+tagSpaceRe.ReplaceAllString(kw, ""))
	}
	tags := CurateTags(required, keywordTags, fillerTags)

	text = strings.TrimRight(trailingTagsRe.ReplaceAllString(text, ""), " \t\r\n")
	if text == "" {
		text = strings.Join(tags, " ")
	} else {
		text = text + "\n\n" + strings.Join(tags, " ")
	}

	title, body := SplitTitle(text, strings.TrimSpace(req.Topic))

	return Post{
		Title:       title,
		Body:        body,
		Text:        text,
		Hashtags:    tags,
		GeneratedAt: time.Now(),
	}
}
