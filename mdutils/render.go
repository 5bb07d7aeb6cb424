package mdutils

import (
	"bytes"

	htmlmd "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var gm = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// MakeHTML renders Markdown to HTML. The rendering itself is delegated to
// goldmark; this module never interprets Markdown structure beyond the
// line-oriented scanners.
func MakeHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := gm.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MakeMD converts an HTML fragment back into Markdown.
func MakeMD(htmlSrc string) (string, error) {
	conv := htmlmd.NewConverter("", true, nil)
	return conv.ConvertString(htmlSrc)
}
