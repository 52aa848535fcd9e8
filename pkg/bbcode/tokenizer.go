// tokenizer.go implements scanning of [tag]...[/tag] bracket syntax.
package bbcode

import "strings"

// Tokenize scans input and returns a flat token stream of text runs and tags.
//
// A tag is whatever lies between a '[' and the next ']'. Nothing is validated
// here: closing markers and parameters are left in the raw tag value. A '['
// without a later ']' starts a final text token that runs to the end of input.
//
// Joining Token.Source for every token reconstructs input exactly.
func Tokenize(input string) []Token {
	var tokens []Token
	pos := 0

	for pos < len(input) {
		open := strings.IndexByte(input[pos:], '[')
		if open == -1 {
			tokens = append(tokens, Token{
				Type:     TokenText,
				Value:    input[pos:],
				Position: pos,
			})
			break
		}
		open += pos

		// Emit any text before this bracket
		if open > pos {
			tokens = append(tokens, Token{
				Type:     TokenText,
				Value:    input[pos:open],
				Position: pos,
			})
		}

		end := strings.IndexByte(input[open:], ']')
		if end == -1 {
			// Unterminated bracket - the rest is text
			tokens = append(tokens, Token{
				Type:     TokenText,
				Value:    input[open:],
				Position: open,
			})
			break
		}
		end += open

		tokens = append(tokens, Token{
			Type:     TokenTag,
			Value:    input[open+1 : end],
			Position: open,
		})
		pos = end + 1
	}

	return tokens
}

// ParsedTag is a tag token split into its name and parameter.
type ParsedTag struct {
	Name      string // trimmed and lowercased
	Parameter string // trimmed, may be empty
}

// ParseTag splits raw tag content at the first '='.
func ParseTag(raw string) ParsedTag {
	name, param, found := strings.Cut(raw, "=")
	if !found {
		return ParsedTag{Name: strings.TrimSpace(strings.ToLower(raw))}
	}
	return ParsedTag{
		Name:      strings.TrimSpace(strings.ToLower(name)),
		Parameter: strings.TrimSpace(param),
	}
}
