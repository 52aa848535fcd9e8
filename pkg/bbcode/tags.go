// tags.go renders resolved tags to HTML.
package bbcode

import (
	"html"
	"math"
	"strconv"
	"strings"
	"unicode"
)

const (
	linkStyle  = "color: #667eea; text-decoration: underline;"
	imageStyle = "max-width: 100%; max-height: 400px; border-radius: 5px; margin: 10px 0;"
	listStyle  = "margin: 10px 0; padding-left: 20px;"

	// listItemMarker separates items inside [list]...[/list].
	listItemMarker = "[*]"

	// sizeOffset maps the editor's size range 1-20 onto 5-24px.
	sizeOffset = 4
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape replaces the HTML-reserved characters &, <, >, " and ' with
// character references.
func Escape(s string) string {
	return escaper.Replace(s)
}

// IsKnownTag reports whether name has a dedicated renderer.
func IsKnownTag(name string) bool {
	switch name {
	case "b", "i", "u", "color", "size", "left", "center", "right", "url", "img", "list":
		return true
	}
	return false
}

// RenderTag maps a resolved tag and its already rendered inner HTML to output
// HTML. Unknown names are passed through as bracketed text without their
// parameter.
func RenderTag(name, param, inner string) string {
	switch name {
	case "b":
		return "<strong>" + inner + "</strong>"
	case "i":
		return "<em>" + inner + "</em>"
	case "u":
		return "<u>" + inner + "</u>"
	case "color":
		return `<span style="color: ` + Escape(param) + `">` + inner + "</span>"
	case "size":
		px := parseFloat(param) + sizeOffset
		return `<span style="font-size: ` + formatNumber(px) + `px">` + inner + "</span>"
	case "left", "center", "right":
		return `<div style="text-align: ` + name + `">` + inner + "</div>"
	case "url":
		return `<a href="` + Escape(param) + `" target="_blank" style="` + linkStyle + `">` + inner + "</a>"
	case "img":
		return `<img src="` + imageSource(param, inner) + `" style="` + imageStyle +
			`" alt="Image" onerror="this.style.display='none'">`
	case "list":
		return `<ul style="` + listStyle + `">` + renderListItems(inner) + "</ul>"
	default:
		safe := Escape(name)
		return "[" + safe + "]" + inner + "[/" + safe + "]"
	}
}

// imageSource returns the escaped image URL for [img=URL] or [img]URL[/img].
// The inner form is already escaped, so it is unescaped first to keep entities
// from being escaped twice.
func imageSource(param, inner string) string {
	if param != "" {
		return Escape(param)
	}
	return Escape(html.UnescapeString(strings.TrimSpace(inner)))
}

// renderListItems splits rendered list content on the item marker. The split
// runs on rendered HTML, so a marker inside a nested tag splits too.
func renderListItems(inner string) string {
	var items []string
	for _, item := range strings.Split(inner, listItemMarker) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		items = append(items, "<li>"+item+"</li>")
	}
	return strings.Join(items, "\n")
}

// parseFloat reads the longest numeric prefix of s after leading whitespace,
// returning NaN when there is none. "10px" is 10, "abc" is NaN.
func parseFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\ufeff'
	})

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	if strings.HasPrefix(s[end:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	digits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
			digits++
		}
	}
	if digits == 0 {
		return math.NaN()
	}

	// Exponent only counts when followed by at least one digit
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		if exp < len(s) && isDigit(s[exp]) {
			for exp < len(s) && isDigit(s[exp]) {
				exp++
			}
			end = exp
		}
	}

	// Out of range values parse to ±Inf, which is what we want
	v, _ := strconv.ParseFloat(s[:end], 64)
	return v
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// formatNumber prints v the way a browser script would: shortest round-trip
// digits, exponent notation outside [1e-6, 1e21), NaN and Infinity spelled out.
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		exp = strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + exp
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
