package mdutils

import "strings"

type FencedBlock struct {
	Language string
	Content  string
}

// IsFenceLine reports whether a line opens or closes a fenced code block.
func IsFenceLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}

// ExtractFencedBlocks returns the fenced code blocks of a Markdown body in
// source order. The info string up to the first space becomes the language.
func ExtractFencedBlocks(md string) []FencedBlock {
	var blocks []FencedBlock
	var cur *FencedBlock
	var buf strings.Builder
	for _, line := range strings.Split(md, "\n") {
		if IsFenceLine(line) {
			if cur == nil {
				info := strings.TrimLeft(strings.TrimSpace(line), "`~")
				lang := strings.TrimSpace(info)
				if idx := strings.IndexAny(lang, " \t"); idx >= 0 {
					lang = lang[:idx]
				}
				cur = &FencedBlock{Language: lang}
				buf.Reset()
			} else {
				cur.Content = buf.String()
				blocks = append(blocks, *cur)
				cur = nil
			}
			continue
		}
		if cur != nil {
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}
	return blocks
}
