package jekyll

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJekyllExport_RefusesExistingDestination(t *testing.T) {
	dir := writeFixtureGuide(t)
	g, err := NewJekyllFormat().Import(dir)
	assert.NoError(t, err)

	dest := t.TempDir()
	err = NewJekyllFormat().Export(g, dest, false)
	assert.Error(t, err)
}

func TestJekyllExport_RoundTrip(t *testing.T) {
	dir := writeFixtureGuide(t)
	g, err := NewJekyllFormat().Import(dir)
	assert.NoError(t, err)

	dest := filepath.Join(t.TempDir(), "out")
	assert.NoError(t, NewJekyllFormat().Export(g, dest, false))

	// The export carries the generated index alongside the documents.
	_, err = os.Stat(filepath.Join(dest, IndexFileName))
	assert.NoError(t, err)
	raw, err := ioutil.ReadFile(filepath.Join(dest, "activity-lifecycle.md"))
	assert.NoError(t, err)
	assert.Contains(t, string(raw), "title: Activity Lifecycle (2 Questions)")

	g2, err := NewJekyllFormat().Import(dest)
	assert.NoError(t, err)
	docs, docs2 := g.GetDocuments(), g2.GetDocuments()
	assert.Equal(t, len(docs), len(docs2))
	for i := range docs {
		assert.Equal(t, docs[i].GetSlug(), docs2[i].GetSlug())
		assert.Equal(t, docs[i].GetTitle(), docs2[i].GetTitle())
		assert.Equal(t, len(docs[i].GetQuestions()), len(docs2[i].GetQuestions()))
	}
	assert.Equal(t, BuildQuestionsIndex(g), BuildQuestionsIndex(g2))
}
