package ui

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

const (
	highlightFormatter = "terminal256"
	highlightStyle     = "monokai"
)

// highlightCode colours source for the terminal. Unknown languages fall back
// to chroma's plain lexer; any formatter error reports false.
func highlightCode(source, language string) (string, bool) {
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, source, language, highlightFormatter, highlightStyle); err != nil {
		return "", false
	}
	return strings.TrimRight(buf.String(), "\n"), true
}
