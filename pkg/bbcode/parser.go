// parser.go pairs opening and closing tags and renders the token stream to HTML.
package bbcode

import (
	"math"
	"strings"
)

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is zero.
const DefaultMaxDepth = 256

const (
	// DefaultOutputFactor times the input length is the output limit used
	// when Options.MaxOutput is zero.
	DefaultOutputFactor = 32

	// MinOutputLimit is the smallest default output limit.
	MinOutputLimit = 64 << 10
)

// Options configures a translation.
type Options struct {
	// MaxDepth limits how deeply tags may nest before they are emitted as
	// literal text. Zero means DefaultMaxDepth, negative means unlimited.
	MaxDepth int

	// MaxOutput limits the bytes of HTML generated. Once exceeded, the
	// remaining input is emitted as escaped text. Zero means
	// DefaultOutputFactor times the input length, but at least
	// MinOutputLimit. Negative means unlimited.
	MaxOutput int
}

// ToHTML translates BBCode to HTML with default options.
func ToHTML(input string) string {
	return Translate(input, Options{}).HTML
}

// Translate converts BBCode to HTML and reports the irregularities it met.
// It never fails: malformed markup degrades to escaped literal text.
func Translate(input string, opts Options) *Result {
	result := &Result{Warnings: []Warning{}}
	if input == "" {
		return result
	}

	maxDepth := opts.MaxDepth
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}

	maxOutput := opts.MaxOutput
	if maxOutput == 0 {
		maxOutput = max(DefaultOutputFactor*len(input), MinOutputLimit)
	}

	t := &translator{
		tokens:    Tokenize(input),
		result:    result,
		maxDepth:  maxDepth,
		maxOutput: maxOutput,
		seen:      make(map[warningKey]bool),
	}

	out := t.render(0, 0)
	if out.next < len(t.tokens) {
		tok := t.tokens[out.next]
		t.warn(tok.Position, WarnStrayCloseTag, "close tag %s has no open tag; remaining input dropped", tok.Source())
	}
	result.HTML = out.html
	return result
}

// renderResult is the output of one nesting level and the index of the first
// token it did not consume.
type renderResult struct {
	html string
	next int
}

type warningKey struct {
	pos  int
	kind WarningKind
}

// translator holds the per-call state of a translation.
type translator struct {
	tokens    []Token
	result    *Result
	maxDepth  int
	maxOutput int
	seen      map[warningKey]bool

	// written counts bytes produced so far, each counted once even when an
	// enclosing tag copies it.
	written   int
	exhausted bool
}

// warn records a warning once per position and kind. Overlapping tags can make
// the walk visit a token more than once.
func (t *translator) warn(pos int, kind WarningKind, format string, args ...interface{}) {
	key := warningKey{pos: pos, kind: kind}
	if t.seen[key] {
		return
	}
	t.seen[key] = true
	t.result.AddWarning(pos, kind, format, args...)
}

// render walks tokens from start until the end of input or the first closing
// tag, which it leaves unconsumed for the caller.
func (t *translator) render(start, depth int) renderResult {
	var sb strings.Builder
	i := start

	for i < len(t.tokens) {
		if t.exhausted {
			return renderResult{html: sb.String(), next: len(t.tokens)}
		}

		tok := t.tokens[i]
		if tok.IsClose() {
			return renderResult{html: sb.String(), next: i}
		}

		// Past the budget, everything left is literal and every level unwinds.
		if t.maxOutput > 0 && t.written > t.maxOutput {
			t.warn(tok.Position, WarnOutputLimit, "output exceeded %d bytes; remaining input emitted as text", t.maxOutput)
			for _, lit := range t.tokens[i:] {
				t.emit(&sb, Escape(lit.Source()))
			}
			t.exhausted = true
			return renderResult{html: sb.String(), next: len(t.tokens)}
		}

		if tok.Type == TokenText {
			// Only the unterminated remainder can start with '['
			if strings.HasPrefix(tok.Value, "[") {
				t.warn(tok.Position, WarnUnterminatedBracket, "unterminated '[' treated as text")
			}
			t.emit(&sb, Escape(tok.Value))
			i++
			continue
		}

		tag := ParseTag(tok.Value)
		closeIdx := t.findClose(i+1, tag.Name)
		if closeIdx == -1 {
			// Only the exact [*] splits list items; spaced forms stay literal
			// and are worth a warning.
			if tok.Value != "*" {
				t.warn(tok.Position, WarnUnmatchedTag, "no closing tag for %s", tok.Source())
			}
			t.emit(&sb, Escape(tok.Source()))
			i++
			continue
		}

		if t.maxDepth > 0 && depth >= t.maxDepth {
			t.warn(tok.Position, WarnDepthExceeded, "tag %s nested deeper than %d levels", tok.Source(), t.maxDepth)
			for _, lit := range t.tokens[i : closeIdx+1] {
				t.emit(&sb, Escape(lit.Source()))
			}
			i = closeIdx + 1
			continue
		}

		inner := t.render(i+1, depth+1)
		if inner.next < closeIdx {
			stray := t.tokens[inner.next]
			t.warn(stray.Position, WarnStrayCloseTag, "close tag %s ends %s early; content up to [/%s] dropped",
				stray.Source(), tok.Source(), tag.Name)
		}

		if !IsKnownTag(tag.Name) {
			t.warn(tok.Position, WarnUnknownTag, "unknown tag %s passed through", tok.Source())
		}
		if tag.Name == "size" && math.IsNaN(parseFloat(tag.Parameter)) {
			t.warn(tok.Position, WarnInvalidSize, "size %q is not a number", tag.Parameter)
		}

		rendered := RenderTag(tag.Name, tag.Parameter, inner.html)
		sb.WriteString(rendered)
		// inner bytes were counted when produced
		t.written += max(len(rendered)-len(inner.html), 0)
		i = closeIdx + 1
	}

	return renderResult{html: sb.String(), next: i}
}

// emit appends s to sb and counts it against the output limit.
func (t *translator) emit(sb *strings.Builder, s string) {
	sb.WriteString(s)
	t.written += len(s)
}

// findClose returns the index of the first tag token from start whose raw
// content is "/"+name, ignoring case. Intermediate opens of the same name are
// not counted, so nested same-name tags close at the nearest match.
func (t *translator) findClose(start int, name string) int {
	want := "/" + name
	for j := start; j < len(t.tokens); j++ {
		if t.tokens[j].Type == TokenTag && strings.ToLower(t.tokens[j].Value) == want {
			return j
		}
	}
	return -1
}
