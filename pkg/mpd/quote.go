package mpd

import (
	"fmt"
	"strings"
)

// Quote encodes a command argument. A non-empty token containing no
// whitespace, quote or backslash is emitted as a bare word; anything else is
// wrapped in double quotes with `"` and `\` each escaped by a preceding `\`.
// Bytes are treated as opaque, so Unquote(Quote(s)) == s for all strings.
func Quote(s string) string {
	if !needsQuoting(s) {
		return s
	}

	var b strings.Builder

	b.Grow(len(s) + 2)
	b.WriteByte('"')

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}

		b.WriteByte(c)
	}

	b.WriteByte('"')

	return b.String()
}

// Unquote decodes a token as written by Quote. Bare words are returned
// unchanged.
func Unquote(s string) (string, error) {
	if !strings.HasPrefix(s, `"`) {
		return s, nil
	}

	var b strings.Builder

	if len(s) > 2 {
		b.Grow(len(s) - 2)
	}

	i := 1
	for i < len(s) {
		switch c := s[i]; c {
		case '\\':
			if i+1 >= len(s) {
				return "", &ProtocolError{Op: "unquote", Err: fmt.Errorf("unterminated escape in %q", s)}
			}

			b.WriteByte(s[i+1])
			i += 2

		case '"':
			if i != len(s)-1 {
				return "", &ProtocolError{Op: "unquote", Err: fmt.Errorf("trailing data after quote in %q", s)}
			}

			return b.String(), nil

		default:
			b.WriteByte(c)
			i++
		}
	}

	return "", &ProtocolError{Op: "unquote", Err: fmt.Errorf("unterminated quote in %q", s)}
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r', '\'', '"', '\\':
			return true
		}
	}

	return false
}
