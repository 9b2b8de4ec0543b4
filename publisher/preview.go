package publisher

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// The paste renderer above deliberately flattens structure for the blog
// editor; the web UI's preview pane wants real markdown rendering instead,
// pipe tables included.
var previewMD = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// PreviewHTML renders generated text as an HTML fragment for the preview pane.
func PreviewHTML(text string) (string, error) {
	var buf bytes.Buffer
	if err := previewMD.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
