package jekyll

import (
	"fmt"

	"github.com/androidprep/guideutil/ir"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type Issue struct {
	Severity Severity
	Slug     string
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Slug, i.Message)
}

// VerifyGuide checks the editorial invariants that the source content only
// maintains by hand: navigation link symmetry, declared-vs-actual question
// counts, slug and anchor uniqueness. Issues come back in deterministic
// (guide) order.
func VerifyGuide(g ir.Guide) []Issue {
	var issues []Issue
	docs := g.GetDocuments()
	bySlug := make(map[string]ir.Document, len(docs))
	for _, d := range docs {
		if _, dup := bySlug[d.GetSlug()]; dup {
			issues = append(issues, Issue{SeverityError, d.GetSlug(), "duplicate document slug"})
			continue
		}
		bySlug[d.GetSlug()] = d
	}
	for _, d := range docs {
		for _, w := range d.GetWarnings() {
			issues = append(issues, Issue{SeverityWarning, d.GetSlug(), w})
		}
		if declared := d.GetDeclaredQuestionCount(); declared >= 0 {
			if actual := len(d.GetQuestions()); declared != actual {
				issues = append(issues, Issue{SeverityError, d.GetSlug(),
					fmt.Sprintf("declares %d questions but contains %d", declared, actual)})
			}
		}
		issues = append(issues, verifyNav(d, bySlug)...)
		seen := map[string]bool{}
		for _, q := range d.GetQuestions() {
			if seen[q.GetAnchor()] {
				issues = append(issues, Issue{SeverityError, d.GetSlug(),
					fmt.Sprintf("duplicate question anchor: %s", q.GetAnchor())})
			}
			seen[q.GetAnchor()] = true
		}
	}
	return issues
}

func verifyNav(d ir.Document, bySlug map[string]ir.Document) []Issue {
	var issues []Issue
	if next := d.GetNextSlug(); next != "" {
		target, ok := bySlug[next]
		if !ok {
			issues = append(issues, Issue{SeverityError, d.GetSlug(),
				fmt.Sprintf("next link points at missing document: %s", next)})
		} else if target.GetPrevSlug() != d.GetSlug() {
			issues = append(issues, Issue{SeverityError, d.GetSlug(),
				fmt.Sprintf("next link to %s is not mirrored by a previous link back", next)})
		}
	}
	if prev := d.GetPrevSlug(); prev != "" {
		target, ok := bySlug[prev]
		if !ok {
			issues = append(issues, Issue{SeverityError, d.GetSlug(),
				fmt.Sprintf("previous link points at missing document: %s", prev)})
		} else if target.GetNextSlug() != d.GetSlug() {
			issues = append(issues, Issue{SeverityError, d.GetSlug(),
				fmt.Sprintf("previous link to %s is not mirrored by a next link back", prev)})
		}
	}
	return issues
}

func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}
