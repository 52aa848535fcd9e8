package bbcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Text(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Tom & Jerry", "Tom & Jerry"},
		{"inline tags", "[b]bold[/b] and [i]it[/i]", "bold and it"},
		{"block", "[center]Title[/center]Body", "Title\nBody"},
		{"list", "[list][*]a\n[*]b[/list]", "a\nb"},
		{"image", "see [img]http://x/y.png[/img]", "see"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Translate(tt.input, Options{}).Text())
		})
	}
}

func TestResult_TextLongList(t *testing.T) {
	input := "[list]" + strings.Repeat("[*]item\n", 2000) + "[/list]"

	lines := strings.Split(Translate(input, Options{}).Text(), "\n")
	assert.Len(t, lines, 2000)
	assert.Equal(t, "item", lines[0])
	assert.Equal(t, "item", lines[1999])
}

func TestResult_Markdown(t *testing.T) {
	md, err := Translate("[b]bold[/b] and [url=https://example.com]site[/url]", Options{}).Markdown()
	require.NoError(t, err)
	assert.Contains(t, md, "**bold**")
	assert.Contains(t, md, "[site](https://example.com)")
}

func TestResult_MarkdownEmpty(t *testing.T) {
	md, err := Translate("", Options{}).Markdown()
	require.NoError(t, err)
	assert.Empty(t, md)
}

func TestResult_Document(t *testing.T) {
	doc := Translate("[b]x[/b]", Options{}).Document("A & B")
	assert.Contains(t, doc, "<!DOCTYPE html>")
	assert.Contains(t, doc, "<title>A &amp; B</title>")
	assert.Contains(t, doc, "<body>\n<strong>x</strong>\n</body>")
}
