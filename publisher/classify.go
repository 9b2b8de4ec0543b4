package publisher

import (
	"regexp"
	"strings"
)

// lineKind is the shape of one line of generated text. Classification is a
// separate step from rendering so the rules stay testable on their own.
type lineKind int

const (
	lineBlank lineKind = iota
	lineHeading
	lineQuote
	lineBullet
	lineTableRow
	lineTableSep
	lineParagraph
)

// classified is one line after classification. text carries the payload for
// heading/quote/bullet/paragraph lines, cells the payload for table rows;
// both are still unescaped.
type classified struct {
	kind  lineKind
	level int
	text  string
	cells []string
}

var (
	bulletRe  = regexp.MustCompile(`^\s*[-•]\s+`)
	headingRe = regexp.MustCompile(`^(#{1,3})\s+(.*)$`)
	sepCellRe = regexp.MustCompile(`^[-:]*$`)
)

// classifyLine decides what a single line is. Markers must sit at the start of
// the line (bullets may be indented); four or more leading hashes are not a
// heading and fall through to paragraph.
func classifyLine(raw string) classified {
	l := strings.TrimRight(raw, " \t\r")
	if strings.TrimSpace(l) == "" {
		return classified{kind: lineBlank}
	}
	if strings.HasPrefix(l, "|") && strings.Count(l, "|") >= 2 {
		cells := splitCells(l)
		if isSeparatorRow(cells) {
			return classified{kind: lineTableSep}
		}
		return classified{kind: lineTableRow, cells: cells}
	}
	if bulletRe.MatchString(l) {
		return classified{kind: lineBullet, text: strings.TrimSpace(bulletRe.ReplaceAllString(l, ""))}
	}
	if m := headingRe.FindStringSubmatch(l); m != nil {
		return classified{kind: lineHeading, level: len(m[1]), text: strings.TrimSpace(m[2])}
	}
	if strings.HasPrefix(l, ">") {
		return classified{kind: lineQuote, text: strings.TrimSpace(strings.TrimPrefix(l, ">"))}
	}
	return classified{kind: lineParagraph, text: l}
}

func splitCells(row string) []string {
	row = strings.TrimPrefix(row, "|")
	row = strings.TrimSuffix(row, "|")
	parts := strings.Split(row, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// isSeparatorRow reports whether the cells form a markdown alignment row,
// "---" or ":--:" cells with the occasional empty one. At least one cell must
// carry a dash, so a row of blank or colon-only cells is still a data row.
func isSeparatorRow(cells []string) bool {
	dash := false
	for _, c := range cells {
		if !sepCellRe.MatchString(c) {
			return false
		}
		if strings.Contains(c, "-") {
			dash = true
		}
	}
	return dash
}
