package mdutils

import (
	"bytes"
	"strings"
)

var fmDelim = []byte("---")

// SplitFrontMatter separates an optional leading YAML front matter block
// (delimited by `---` lines) from the Markdown body. hadFM reports whether a
// complete block was found; a dangling opening delimiter is treated as body.
func SplitFrontMatter(raw []byte) (fm []byte, body []byte, hadFM bool) {
	if !bytes.HasPrefix(raw, fmDelim) {
		return nil, raw, false
	}
	lines := strings.SplitAfter(string(raw), "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r\n") != "---" {
		return nil, raw, false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r\n") == "---" {
			fmStr := strings.Join(lines[1:i], "")
			bodyStr := strings.Join(lines[i+1:], "")
			return []byte(fmStr), []byte(bodyStr), true
		}
	}
	return nil, raw, false
}
