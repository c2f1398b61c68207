package common

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// HighlightJSON colors src for a 256-color terminal using the current theme's
// chroma style. On failure the source is returned unchanged.
func HighlightJSON(src string) string {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, src, "json", "terminal256", currentTheme.Chroma); err != nil {
		return src
	}
	return strings.TrimRight(buf.String(), "\n")
}
