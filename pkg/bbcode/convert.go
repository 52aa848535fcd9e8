// convert.go derives other representations from a translation result.
package bbcode

import (
	"bytes"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"
)

// blockElements start a new line in plain text output.
var blockElements = map[string]bool{
	"div": true,
	"ul":  true,
	"li":  true,
	"br":  true,
}

// Markdown converts the translated HTML to Markdown.
func (r *Result) Markdown() (string, error) {
	if r.HTML == "" {
		return "", nil
	}

	markdown, err := htmltomarkdown.ConvertString(r.HTML)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(markdown), nil
}

// Text returns the visible text of the translated HTML, with block elements on
// their own lines and character references decoded.
func (r *Result) Text() string {
	z := html.NewTokenizer(strings.NewReader(r.HTML))
	var sb strings.Builder
	atLineStart := false

	newline := func() {
		if sb.Len() > 0 && !atLineStart {
			sb.WriteString("\n")
			atLineStart = true
		}
	}

	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF for well-formed input; anything else is truncated input
			return strings.TrimSpace(sb.String())
		case html.TextToken:
			text := z.Text()
			if len(text) == 0 || (atLineStart && len(bytes.TrimSpace(text)) == 0) {
				continue
			}
			sb.Write(text)
			atLineStart = text[len(text)-1] == '\n'
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if blockElements[string(name)] {
				newline()
			}
		}
	}
}

// Document wraps the translated HTML in a minimal standalone HTML page.
func (r *Result) Document(title string) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	sb.WriteString(Escape(title))
	sb.WriteString("</title>\n</head>\n<body>\n")
	sb.WriteString(r.HTML)
	sb.WriteString("\n</body>\n</html>\n")
	return sb.String()
}
