package idl

import (
	"strings"
	"unicode"
)

// Identifier is a name split into lower-case words.
type Identifier []string

// FromCamel splits helloPrettyWorld (or HelloPrettyWorld) at every upper-case
// letter.
func FromCamel(s string) Identifier {
	var id Identifier
	start := 0
	runes := []rune(s)
	for i := 1; i < len(runes); i++ {
		if unicode.IsUpper(runes[i]) {
			id = append(id, strings.ToLower(string(runes[start:i])))
			start = i
		}
	}
	if start < len(runes) {
		id = append(id, strings.ToLower(string(runes[start:])))
	}
	return id
}

// FromSnake splits hello_pretty_world at underscores.
func FromSnake(s string) Identifier {
	if s == "" {
		return nil
	}
	return Identifier(strings.Split(s, "_"))
}

// Snake joins the words with underscores.
func (id Identifier) Snake() string {
	return strings.Join(id, "_")
}

// Camel joins the words as UpperCamelCase.
func (id Identifier) Camel() string {
	var b strings.Builder
	for _, w := range id {
		if w == "" {
			continue
		}
		r := []rune(w)
		b.WriteRune(unicode.ToUpper(r[0]))
		b.WriteString(string(r[1:]))
	}
	return b.String()
}

// Append returns id followed by more.
func (id Identifier) Append(more Identifier) Identifier {
	out := make(Identifier, 0, len(id)+len(more))
	out = append(out, id...)
	return append(out, more...)
}
