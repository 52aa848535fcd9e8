// result.go defines the translation result and its diagnostics.
package bbcode

import "fmt"

// WarningKind classifies an irregularity found during translation.
type WarningKind int

const (
	WarnUnterminatedBracket WarningKind = iota // '[' with no later ']'
	WarnUnmatchedTag                           // opening tag with no closing tag ahead
	WarnStrayCloseTag                          // closing tag that ended a level early
	WarnUnknownTag                             // tag name with no renderer
	WarnInvalidSize                            // non-numeric size parameter
	WarnDepthExceeded                          // nesting deeper than Options.MaxDepth
	WarnOutputLimit                            // output larger than Options.MaxOutput
)

var warningKindNames = map[WarningKind]string{
	WarnUnterminatedBracket: "unterminated-bracket",
	WarnUnmatchedTag:        "unmatched-tag",
	WarnStrayCloseTag:       "stray-close-tag",
	WarnUnknownTag:          "unknown-tag",
	WarnInvalidSize:         "invalid-size",
	WarnDepthExceeded:       "depth-exceeded",
	WarnOutputLimit:         "output-limit",
}

// String returns the kebab-case name of the warning kind.
func (k WarningKind) String() string {
	if name, ok := warningKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler so warnings render readably as JSON.
func (k WarningKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Warning describes a non-fatal irregularity in the input.
type Warning struct {
	Kind     WarningKind `json:"kind"`
	Position int         `json:"position"` // byte offset in original input
	Message  string      `json:"message"`
}

// String formats the warning for display.
func (w Warning) String() string {
	return fmt.Sprintf("offset %d: %s", w.Position, w.Message)
}

// Result contains the translated HTML and any warnings generated on the way.
type Result struct {
	HTML     string    `json:"html"`
	Warnings []Warning `json:"warnings"`
}

// AddWarning records a warning in the result.
func (r *Result) AddWarning(pos int, kind WarningKind, format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, Warning{
		Kind:     kind,
		Position: pos,
		Message:  fmt.Sprintf(format, args...),
	})
}

// HasWarnings reports whether translation found any irregularity.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}
