package publisher

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// Blog editors keep runs of two <br/> but longer runs read as holes in the
// layout, so anything above two collapses.
var brRunRe = regexp.MustCompile(`(?:<br/>){3,}`)

// WrapHTML renders generated body text into a complete standalone HTML
// document ready for pasting into the blog editor. The body is treated as
// markdown-lite: headings, quotes, bullets, and pipe tables become real
// elements, everything else becomes flat paragraphs the editor will not
// restyle. All content is escaped.
func WrapHTML(title, body string) string {
	var b strings.Builder
	b.WriteString("<!doctype html>\n")
	b.WriteString("<html lang=\"ko\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\"/>\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>\n")
	b.WriteString("<title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title>\n</head>\n<body>\n")
	b.WriteString(renderBody(body))
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

// renderBody converts the body line by line. Consecutive table rows buffer up
// and flush as one <table> whenever a non-table line or the end of input
// arrives; separator rows keep the run alive without adding a row. Each bullet
// becomes its own single-item list, which is what survives pasting best.
func renderBody(body string) string {
	lines := strings.Split(body, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	var out []string
	var table [][]string
	flush := func() {
		if len(table) == 0 {
			return
		}
		out = append(out, renderTable(table))
		table = nil
	}

	for _, raw := range lines {
		c := classifyLine(raw)
		switch c.kind {
		case lineTableRow:
			table = append(table, c.cells)
			continue
		case lineTableSep:
			continue
		}
		flush()
		switch c.kind {
		case lineBlank:
			out = append(out, "<br/>")
		case lineHeading:
			out = append(out, fmt.Sprintf("<h%d>%s</h%d>", c.level, html.EscapeString(c.text), c.level))
		case lineQuote:
			out = append(out, "<blockquote>"+html.EscapeString(c.text)+"</blockquote>")
		case lineBullet:
			out = append(out, "<ul><li>"+html.EscapeString(c.text)+"</li></ul>")
		default:
			out = append(out, "<p>"+html.EscapeString(c.text)+"</p>")
		}
	}
	flush()

	return brRunRe.ReplaceAllString(strings.Join(out, ""), "<br/><br/>")
}

func renderTable(rows [][]string) string {
	var b strings.Builder
	b.WriteString("<table><thead><tr>")
	for _, cell := range rows[0] {
		b.WriteString("<th>")
		b.WriteString(html.EscapeString(cell))
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead><tbody>")
	for _, row := range rows[1:] {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>")
			b.WriteString(html.EscapeString(cell))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}
