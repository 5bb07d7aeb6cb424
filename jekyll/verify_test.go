package jekyll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyGuide_CleanFixture(t *testing.T) {
	dir := writeFixtureGuide(t)
	g, err := NewJekyllFormat().Import(dir)
	assert.NoError(t, err)

	issues := VerifyGuide(g)
	assert.False(t, HasErrors(issues))
	// setup.md is missing its front matter, which surfaces as a warning.
	assert.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Equal(t, "setup", issues[0].Slug)
}

func TestVerifyGuide_CountDrift(t *testing.T) {
	doc := NewDocumentFromMarkdown("coroutines", []byte("---\ntitle: Coroutines (3 Questions)\n---\n### Only one?\n\nYes.\n"))
	g := &Guide{Slug: "g", Title: "G", Documents: []*Document{doc}}

	issues := VerifyGuide(g)
	assert.True(t, HasErrors(issues))
	assert.Contains(t, issues[0].Message, "declares 3 questions but contains 1")
}

func TestVerifyGuide_MissingNextTarget(t *testing.T) {
	doc := NewDocumentFromMarkdown("intro", []byte("---\ntitle: Intro\n---\n[Next: Gone](gone.md)\n"))
	g := &Guide{Slug: "g", Title: "G", Documents: []*Document{doc}}

	issues := VerifyGuide(g)
	assert.True(t, HasErrors(issues))
	assert.Contains(t, issues[0].Message, "missing document: gone")
}

func TestVerifyGuide_AsymmetricNav(t *testing.T) {
	a := NewDocumentFromMarkdown("a", []byte("---\ntitle: A\n---\n[Next: B](b.md)\n"))
	b := NewDocumentFromMarkdown("b", []byte("---\ntitle: B\n---\nNo link back.\n"))
	g := &Guide{Slug: "g", Title: "G", Documents: []*Document{a, b}}

	issues := VerifyGuide(g)
	assert.True(t, HasErrors(issues))
	assert.Contains(t, issues[0].Message, "not mirrored by a previous link back")
}

func TestVerifyGuide_SymmetricNavPasses(t *testing.T) {
	a := NewDocumentFromMarkdown("a", []byte("---\ntitle: A\n---\n[Next: B](b.md)\n"))
	b := NewDocumentFromMarkdown("b", []byte("---\ntitle: B\n---\n[Previous: A](a.md)\n"))
	g := &Guide{Slug: "g", Title: "G", Documents: []*Document{a, b}}

	assert.False(t, HasErrors(VerifyGuide(g)))
}

func TestVerifyGuide_DuplicateSlug(t *testing.T) {
	a := NewDocumentFromMarkdown("same", []byte("---\ntitle: A\n---\nBody.\n"))
	b := NewDocumentFromMarkdown("same", []byte("---\ntitle: B\n---\nBody.\n"))
	g := &Guide{Slug: "g", Title: "G", Documents: []*Document{a, b}}

	issues := VerifyGuide(g)
	assert.True(t, HasErrors(issues))
	assert.Contains(t, issues[0].Message, "duplicate document slug")
}
