// from_markdown.go converts Markdown to BBCode through the goldmark AST.
package bbcode

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// markdownParser is a goldmark instance that also links bare URLs.
var markdownParser = goldmark.New(
	goldmark.WithExtensions(
		extension.Linkify,
	),
)

// headingSizes maps Markdown heading levels to [size] values.
var headingSizes = map[int]int{
	1: 20,
	2: 16,
	3: 14,
	4: 12,
	5: 11,
	6: 10,
}

// FromMarkdown converts Markdown to BBCode using the tags this package renders.
// Constructs with no BBCode counterpart (raw HTML, tables) are dropped; code
// keeps its text without formatting.
func FromMarkdown(markdown []byte) string {
	if len(markdown) == 0 {
		return ""
	}

	reader := text.NewReader(markdown)
	doc := markdownParser.Parser().Parse(reader)

	w := &bbcodeWriter{source: markdown}
	return strings.Join(w.blocks(doc), "\n\n")
}

// bbcodeWriter holds state during AST conversion.
type bbcodeWriter struct {
	source []byte
}

// blocks converts each block child of n, skipping those that produce nothing.
func (w *bbcodeWriter) blocks(n ast.Node) []string {
	var out []string
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if s := w.block(child); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (w *bbcodeWriter) block(n ast.Node) string {
	switch node := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return strings.TrimSpace(w.inlines(node))
	case *ast.Heading:
		size, ok := headingSizes[node.Level]
		if !ok {
			size = headingSizes[6]
		}
		return "[size=" + strconv.Itoa(size) + "][b]" + w.inlines(node) + "[/b][/size]"
	case *ast.List:
		return w.list(node)
	case *ast.FencedCodeBlock:
		return w.lines(node.Lines())
	case *ast.CodeBlock:
		return w.lines(node.Lines())
	case *ast.Blockquote:
		return strings.Join(w.blocks(node), "\n\n")
	case *ast.ThematicBreak:
		return "----"
	case *ast.HTMLBlock:
		return ""
	default:
		return strings.Join(w.blocks(node), "\n\n")
	}
}

func (w *bbcodeWriter) list(n *ast.List) string {
	var sb strings.Builder
	sb.WriteString("[list]\n")
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		sb.WriteString(listItemMarker)
		sb.WriteString(strings.Join(w.blocks(item), "\n"))
		sb.WriteString("\n")
	}
	sb.WriteString("[/list]")
	return sb.String()
}

func (w *bbcodeWriter) lines(lines *text.Segments) string {
	var code strings.Builder
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		code.Write(line.Value(w.source))
	}
	return strings.TrimSuffix(code.String(), "\n")
}

// inlines converts all inline children of n.
func (w *bbcodeWriter) inlines(n ast.Node) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		sb.WriteString(w.inline(child))
	}
	return sb.String()
}

func (w *bbcodeWriter) inline(n ast.Node) string {
	switch node := n.(type) {
	case *ast.Text:
		s := string(node.Segment.Value(w.source))
		if node.SoftLineBreak() || node.HardLineBreak() {
			s += "\n"
		}
		return s

	case *ast.String:
		return string(node.Value)

	case *ast.Emphasis:
		tag := "i"
		if node.Level == 2 {
			tag = "b"
		}
		return "[" + tag + "]" + w.inlines(node) + "[/" + tag + "]"

	case *ast.CodeSpan:
		return w.inlines(node)

	case *ast.Link:
		return "[url=" + string(node.Destination) + "]" + w.inlines(node) + "[/url]"

	case *ast.AutoLink:
		url := string(node.URL(w.source))
		return "[url=" + url + "]" + string(node.Label(w.source)) + "[/url]"

	case *ast.Image:
		return "[img]" + string(node.Destination) + "[/img]"

	case *ast.RawHTML:
		return ""

	default:
		return w.inlines(node)
	}
}
