// Package bbcode translates BBCode markup into HTML.
//
// Translation is a two step process. Tokenize splits the input into text runs
// and bracketed tags; the renderer then pairs each opening tag with the first
// closing tag of the same name that follows it, renders the enclosed tokens
// recursively and maps the tag to HTML. Malformed markup never fails: tags
// that cannot be paired are emitted as text, and all text and parameter values
// are HTML-escaped before they reach the output.
//
//	html := bbcode.ToHTML("[b]Hello[/b] [color=red]world[/color]")
//	// <strong>Hello</strong> <span style="color: red">world</span>
//
// Supported tags are b, i, u, color, size, left, center, right, url, img and
// list (with [*] item markers). Other names are passed through as text.
package bbcode
