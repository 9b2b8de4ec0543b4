package publisher

import (
	"fmt"
	"regexp"
	"time"
)

// Copyright notices appended to the plain-text download, Korean then English.
const (
	CopyrightKR = "ⓒ 미샵컴퍼니(MISHARP COMPANY). 본 콘텐츠의 저작권은 미샵컴퍼니에 있으며, 무단 복제·배포·전재·2차 가공 및 상업적 이용을 금합니다."
	CopyrightEN = "ⓒ MISHARP COMPANY. All rights reserved. Unauthorized copying, redistribution, republication, modification, or commercial use is strictly prohibited."
)

const (
	slugFallback = "블로그글"
	slugMaxRunes = 10
)

var (
	slugSpaceRe   = regexp.MustCompile(`\s+`)
	slugNonWordRe = regexp.MustCompile(`[^\p{L}\p{N}_]`)
)

// Slug derives the short token used in download file names: whitespace removed,
// everything but letters, digits, and underscores dropped, cut to 10 runes.
// A title with nothing usable falls back to a fixed token.
func Slug(title string) string {
	t := slugSpaceRe.ReplaceAllString(title, "")
	t = slugNonWordRe.ReplaceAllString(t, "")
	if t == "" {
		return slugFallback
	}
	if r := []rune(t); len(r) > slugMaxRunes {
		return string(r[:slugMaxRunes])
	}
	return t
}

// FileName builds the download name: date, underscore, slug, extension.
func FileName(t time.Time, title, ext string) string {
	return fmt.Sprintf("%s_%s.%s", t.Format("20060102"), Slug(title), ext)
}

// Download is one named payload for the download endpoints and the CLI's
// output files.
type Download struct {
	Name        string
	Content     []byte
	ContentType string
}

// TextDownload packages the full generated text with the copyright block
// appended. This is the copy meant for pasting into the blog editor.
func TextDownload(t time.Time, title, text string) Download {
	content := text + "\n\n" + CopyrightKR + "\n" + CopyrightEN
	return Download{
		Name:        FileName(t, title, "txt"),
		Content:     []byte(content),
		ContentType: "text/plain; charset=utf-8",
	}
}

// HTMLDownload packages the standalone HTML document rendered from the body.
func HTMLDownload(t time.Time, title, body string) Download {
	return Download{
		Name:        FileName(t, title, "html"),
		Content:     []byte(WrapHTML(title, body)),
		ContentType: "text/html; charset=utf-8",
	}
}

// MarkdownDownload packages the generated text as-is for markdown editors.
func MarkdownDownload(t time.Time, title, text string) Download {
	return Download{
		Name:        FileName(t, title, "md"),
		Content:     []byte(text),
		ContentType: "text/markdown; charset=utf-8",
	}
}
