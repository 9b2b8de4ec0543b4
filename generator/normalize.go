package generator

import (
	"regexp"
	"strings"
)

var (
	// "단어: 값" rule: a Latin letter, digit, or Hangul syllable before a colon
	// gets exactly one space after the colon and none before it.
	colonSpacingRe  = regexp.MustCompile(`([가-힣A-Za-z0-9])\s*:\s*`)
	trailingSpaceRe = regexp.MustCompile(`[ \t]+\n`)
	blankRunRe      = regexp.MustCompile(`\n{3,}`)
)

// Normalize canonicalizes whitespace and colon spacing in model output: colon
// spacing per the rule above, no trailing spaces before a line break, at most one
// blank line in a row, no surrounding whitespace. Idempotent.
func Normalize(s string) string {
	s = colonSpacingRe.ReplaceAllString(s, "${1}: ")
	s = trailingSpaceRe.ReplaceAllString(s, "\n")
	s = blankRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
