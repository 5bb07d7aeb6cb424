package jekyll

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const activityDoc = `---
layout: default
title: Activity Lifecycle (2 Questions)
order: 1
---
# Activity Lifecycle (2 Questions)

Some intro prose.

### Overview

Not a question, the questions section has not started yet.

## Interview Questions & Answers

### What is an Activity?

An Activity is a single screen with a user interface.

### What does onCreate do?

It initializes the screen. For example:

` + "```kotlin\n### not a heading\nval x = 1\n```" + `

Still part of the answer.

---

[Next: Fragments](fragments.md)
`

const fragmentsDoc = `---
layout: default
title: Fragments (1 Question)
order: 2
---
# Fragments (1 Question)

### What is a Fragment?

A reusable portion of UI hosted by an Activity.

[Previous: Activity Lifecycle](activity-lifecycle.md)
`

const setupDoc = `# Setup

Install the toolchain, then run the site generator.
`

func writeFixtureGuide(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"activity-lifecycle.md": activityDoc,
		"fragments.md":          fragmentsDoc,
		"setup.md":              setupDoc,
		"_draft.md":             "# Draft\n",
		"notes.txt":             "not markdown\n",
		IndexFileName:           "# Questions Index\n",
	}
	for name, contents := range files {
		assert.NoError(t, ioutil.WriteFile(filepath.Join(dir, name), []byte(contents), 0644))
	}
	manifest := "title: Android Interview Preparation Guide\nslug: android-interview\nlanguage: en\n"
	assert.NoError(t, ioutil.WriteFile(filepath.Join(dir, "index.yaml"), []byte(manifest), 0644))
	return dir
}

func TestJekyllImport(t *testing.T) {
	dir := writeFixtureGuide(t)
	g, err := NewJekyllFormat().Import(dir)
	assert.NoError(t, err)
	assert.Equal(t, "Android Interview Preparation Guide", g.GetTitle())
	assert.Equal(t, "android-interview", g.GetSlug())

	docs := g.GetDocuments()
	// _draft.md, notes.txt and the generated index are not content.
	assert.Len(t, docs, 3)
	assert.Equal(t, "activity-lifecycle", docs[0].GetSlug())
	assert.Equal(t, "fragments", docs[1].GetSlug())
	assert.Equal(t, "setup", docs[2].GetSlug())
	for i, d := range docs {
		assert.Equal(t, i, d.GetOrder())
	}
}

func TestJekyllImport_QuestionExtraction(t *testing.T) {
	dir := writeFixtureGuide(t)
	g, err := NewJekyllFormat().Import(dir)
	assert.NoError(t, err)

	doc := g.GetDocuments()[0]
	assert.Equal(t, 2, doc.GetDeclaredQuestionCount())
	qs := doc.GetQuestions()
	assert.Len(t, qs, 2)
	assert.Equal(t, "What is an Activity?", qs[0].GetText())
	assert.Equal(t, "what-is-an-activity", qs[0].GetAnchor())
	assert.Equal(t, "An Activity is a single screen with a user interface.", qs[0].GetAnswerMD())
	// The fenced block stays inside the answer, its fake heading is not a question.
	assert.Contains(t, qs[1].GetAnswerMD(), "### not a heading")
	assert.Contains(t, qs[1].GetAnswerMD(), "Still part of the answer.")

	// Overview precedes the questions gate, so it is a section, not a question.
	var sectionNames []string
	for _, s := range doc.GetSections() {
		sectionNames = append(sectionNames, s.GetName())
	}
	assert.Contains(t, sectionNames, "Overview")
	assert.Contains(t, sectionNames, "Interview Questions & Answers")
}

func TestJekyllImport_UngatedQuestions(t *testing.T) {
	dir := writeFixtureGuide(t)
	g, err := NewJekyllFormat().Import(dir)
	assert.NoError(t, err)

	// fragments.md has no level-2 questions section, so every ### heading counts.
	doc := g.GetDocuments()[1]
	qs := doc.GetQuestions()
	assert.Len(t, qs, 1)
	assert.Equal(t, "What is a Fragment?", qs[0].GetText())
	assert.Equal(t, 1, doc.GetDeclaredQuestionCount())
}

func TestJekyllImport_NavLinks(t *testing.T) {
	dir := writeFixtureGuide(t)
	g, err := NewJekyllFormat().Import(dir)
	assert.NoError(t, err)

	docs := g.GetDocuments()
	assert.Equal(t, "fragments", docs[0].GetNextSlug())
	assert.Equal(t, "", docs[0].GetPrevSlug())
	assert.Equal(t, "activity-lifecycle", docs[1].GetPrevSlug())
}

func TestJekyllImport_MissingFrontMatter(t *testing.T) {
	dir := writeFixtureGuide(t)
	g, err := NewJekyllFormat().Import(dir)
	assert.NoError(t, err)

	doc := g.GetDocuments()[2]
	assert.Equal(t, "setup", doc.GetTitle())
	assert.Equal(t, []string{"missing front matter"}, doc.GetWarnings())
	assert.Equal(t, -1, doc.GetDeclaredQuestionCount())
}

func TestJekyllImport_MissingManifestUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "my-guide")
	assert.NoError(t, os.Mkdir(root, 0775))
	g, err := NewJekyllFormat().Import(root)
	assert.NoError(t, err)
	assert.Equal(t, "my-guide", g.GetSlug())
	assert.Equal(t, "my-guide", g.GetTitle())
	assert.Empty(t, g.GetDocuments())
}

func TestNewDocumentFromMarkdown_DuplicateHeadingsGetUniqueAnchors(t *testing.T) {
	raw := []byte("---\ntitle: Dupes\n---\n### Same Question?\n\nA.\n\n### Same Question?\n\nB.\n")
	doc := NewDocumentFromMarkdown("dupes", raw)
	qs := doc.Questions
	assert.Len(t, qs, 2)
	assert.Equal(t, "same-question", qs[0].Anchor)
	assert.Equal(t, "same-question-1", qs[1].Anchor)
}

func TestNewDocumentFromMarkdown_InvalidFrontMatter(t *testing.T) {
	raw := []byte("---\ntitle: [unclosed\n---\n# Body\n")
	doc := NewDocumentFromMarkdown("broken", raw)
	assert.Equal(t, "broken", doc.Title)
	assert.NotEmpty(t, doc.Warnings)
}

func TestSortDocuments(t *testing.T) {
	docs := []*Document{
		{Slug: "zeta"},
		{Slug: "beta", Order: 2, HasExplicitOrder: true},
		{Slug: "alpha"},
		{Slug: "gamma", Order: 1, HasExplicitOrder: true},
	}
	sortDocuments(docs)
	var slugs []string
	for _, d := range docs {
		slugs = append(slugs, d.Slug)
	}
	assert.Equal(t, []string{"gamma", "beta", "alpha", "zeta"}, slugs)
}
