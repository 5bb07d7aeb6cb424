package mdutils

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	reDeclaredCount = regexp2.MustCompile(`\(\s*(?<n>\d+)\s+Questions?\s*\)`, regexp2.IgnoreCase)
	reCountSuffix   = regexp2.MustCompile(`\s*\(\s*\d+\s+Questions?\s*\)\s*$`, regexp2.IgnoreCase)
	reNavLink       = regexp2.MustCompile(`\[(?<label>(next|previous|prev)\b[^\]]*)\]\((?<target>[^)\s]+)\)`, regexp2.IgnoreCase)
	reAnchorStrip   = regexp2.MustCompile(`[^\p{L}\p{N}\s_-]`, 0)
)

// ScanDeclaredCount extracts the N from a "(N Questions)" marker embedded in
// heading or title text. Returns -1 when no marker is present.
func ScanDeclaredCount(s string) int {
	m, err := reDeclaredCount.FindStringMatch(s)
	if err != nil || m == nil {
		return -1
	}
	n, err := strconv.Atoi(m.GroupByName("n").String())
	if err != nil {
		return -1
	}
	return n
}

// StripDeclaredCount removes a trailing "(N Questions)" marker from heading
// text, so derived counts can be re-attached without duplication.
func StripDeclaredCount(s string) string {
	out, err := reCountSuffix.Replace(s, "", -1, -1)
	if err != nil {
		return s
	}
	return strings.TrimSpace(out)
}

// ScanNavLinks finds "Previous"/"Next" style Markdown links and returns the
// slugs of their targets. Only relative .md targets count; external URLs and
// pure-anchor links are ignored.
func ScanNavLinks(md string) (prevSlug, nextSlug string) {
	m, err := reNavLink.FindStringMatch(md)
	for err == nil && m != nil {
		label := strings.ToLower(m.GroupByName("label").String())
		slug := targetToSlug(m.GroupByName("target").String())
		if slug != "" {
			if strings.HasPrefix(label, "next") && nextSlug == "" {
				nextSlug = slug
			} else if (strings.HasPrefix(label, "previous") || strings.HasPrefix(label, "prev")) && prevSlug == "" {
				prevSlug = slug
			}
		}
		m, err = reNavLink.FindNextMatch(m)
	}
	return prevSlug, nextSlug
}

func targetToSlug(target string) string {
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return ""
	}
	if idx := strings.Index(target, "#"); idx >= 0 {
		target = target[:idx]
	}
	target = strings.TrimPrefix(target, "./")
	if !strings.HasSuffix(target, ".md") {
		return ""
	}
	return strings.TrimSuffix(target, ".md")
}

// HeadingAnchor converts heading text into a GitHub-style anchor: lowercase,
// punctuation stripped, every space becomes a dash. GitHub does not collapse
// runs of spaces, so neither do we.
func HeadingAnchor(heading string) string {
	s := strings.TrimSpace(strings.ToLower(heading))
	out, err := reAnchorStrip.Replace(s, "", -1, -1)
	if err != nil {
		out = s
	}
	return strings.ReplaceAll(out, " ", "-")
}
