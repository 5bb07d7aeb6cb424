package jekyll

import (
	"fmt"
	"strings"

	"github.com/androidprep/guideutil/ir"
	"github.com/androidprep/guideutil/mdutils"
)

const IndexFileName = "QUESTIONS_INDEX.md"

// BuildQuestionsIndex renders the aggregated table of contents: one section
// per topic in guide order, question counts always derived from the actual
// entries rather than copied from prose. The output is a pure function of the
// guide contents, so re-running it on unchanged input is byte-identical.
func BuildQuestionsIndex(g ir.Guide) string {
	var b strings.Builder
	b.WriteString("# Questions Index\n")
	b.WriteString("\n")
	b.WriteString("Auto-generated from the guide contents. Do not edit by hand.\n")
	for _, doc := range g.GetDocuments() {
		qs := doc.GetQuestions()
		if len(qs) == 0 {
			continue
		}
		topic := mdutils.StripDeclaredCount(doc.GetTitle())
		b.WriteString(fmt.Sprintf("\n## %s (%s)\n\n", topic, countLabel(len(qs))))
		for i, q := range qs {
			b.WriteString(fmt.Sprintf("%d. [%s](%s.md#%s)\n", i+1, q.GetText(), doc.GetSlug(), q.GetAnchor()))
		}
	}
	return b.String()
}

func countLabel(n int) string {
	if n == 1 {
		return "1 Question"
	}
	return fmt.Sprintf("%d Questions", n)
}
