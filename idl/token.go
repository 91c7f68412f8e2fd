package idl

import (
	"unicode"

	"github.com/wippyai/sides/errors"
)

type tokenType int

const (
	tokIdent tokenType = iota
	tokString
	tokPunct
)

func (t tokenType) String() string {
	switch t {
	case tokIdent:
		return "identifier"
	case tokString:
		return "string"
	case tokPunct:
		return "punctuation"
	}
	return "unknown"
}

type token struct {
	Value string
	Type  tokenType
	Line  int
}

const punctuation = "={}();:,+#"

func tokenize(input string) ([]token, error) {
	var tokens []token
	line := 1
	runes := []rune(input)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '\n' {
			line++
			continue
		}
		if unicode.IsSpace(r) {
			continue
		}

		// Line comment
		if r == '/' && i+1 < len(runes) && runes[i+1] == '/' {
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
			line++
			continue
		}

		if r == '"' {
			start := line
			var value []rune
			i++
			for ; i < len(runes) && runes[i] != '"'; i++ {
				if runes[i] == '\n' {
					line++
				}
				if runes[i] == '\\' && i+1 < len(runes) {
					i++
				}
				value = append(value, runes[i])
			}
			if i >= len(runes) {
				return nil, errors.Syntax(start, "unterminated string")
			}
			tokens = append(tokens, token{string(value), tokString, start})
			continue
		}

		if isIdentStart(r) {
			start := i
			for i < len(runes) && isIdentPart(runes[i]) {
				i++
			}
			tokens = append(tokens, token{string(runes[start:i]), tokIdent, line})
			i--
			continue
		}

		if containsRune(punctuation, r) {
			tokens = append(tokens, token{string(r), tokPunct, line})
			continue
		}

		return nil, errors.Syntax(line, "unexpected character %q", r)
	}

	return tokens, nil
}

func isIdentStart(r rune) bool {
	return r == '_' || (r < unicode.MaxASCII && unicode.IsLetter(r))
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || (r < unicode.MaxASCII && unicode.IsDigit(r))
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}
