package snippets

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/androidprep/guideutil/jekyll"
	"github.com/stretchr/testify/assert"
)

func fixtureGuide() *jekyll.Guide {
	return &jekyll.Guide{
		Slug:  "android-interview",
		Title: "Android Interview Preparation Guide",
		Documents: []*jekyll.Document{
			{
				Slug: "coroutines",
				Questions: []*jekyll.Question{
					{
						Text:   "How do you launch a coroutine?",
						Anchor: "how-do-you-launch-a-coroutine",
						AnswerMD: "Use a scope:\n\n```kotlin\nscope.launch { work() }\n```\n\nOr with a manifest entry:\n\n```xml\n<application />\n```\n",
					},
					{
						Text:     "What is a suspend function?",
						Anchor:   "what-is-a-suspend-function",
						AnswerMD: "Prose only, no code.",
					},
				},
			},
			{
				Slug:      "gradle",
				Questions: []*jekyll.Question{},
			},
		},
	}
}

func TestFromGuide(t *testing.T) {
	ws := FromGuide(fixtureGuide())
	assert.Equal(t, "android-interview", ws.Name)
	// Only topics and questions that actually contain code show up.
	assert.Len(t, ws.Files, 1)
	topic := ws.Files["coroutines"]
	assert.NotNil(t, topic)
	assert.True(t, topic.IsDir)
	assert.Len(t, topic.Children, 1)

	qDir := topic.Children["how-do-you-launch-a-coroutine"]
	assert.NotNil(t, qDir)
	assert.Len(t, qDir.Children, 2)
	assert.Equal(t, "scope.launch { work() }\n", qDir.Children["snippet_01.kt"].Contents)
	assert.Equal(t, "kotlin", qDir.Children["snippet_01.kt"].Language)
	assert.Equal(t, "<application />\n", qDir.Children["snippet_02.xml"].Contents)
}

func TestWorkspaceMaterialize(t *testing.T) {
	ws := FromGuide(fixtureGuide())
	root := filepath.Join(t.TempDir(), "snippets")
	assert.NoError(t, ws.Materialize(root))

	raw, err := ioutil.ReadFile(filepath.Join(root, "coroutines", "how-do-you-launch-a-coroutine", "snippet_01.kt"))
	assert.NoError(t, err)
	assert.Equal(t, "scope.launch { work() }\n", string(raw))
}

func TestSnippetFileValidation(t *testing.T) {
	bad := &SnippetFile{Name: "../escape"}
	assert.Equal(t, ErrInvalidSnippetFileName, bad.ValidateNameAndStructure())

	badStructure := &SnippetFile{Name: "file.kt", Children: map[string]*SnippetFile{"x": {Name: "x"}}}
	assert.Equal(t, ErrInvalidSnippetStructure, badStructure.ValidateNameAndStructure())

	ok := &SnippetFile{Name: "snippet_01.kt", Contents: "val x = 1"}
	assert.NoError(t, ok.ValidateNameAndStructure())
}

func TestExtForLanguage(t *testing.T) {
	assert.Equal(t, "kt", extForLanguage("kotlin"))
	assert.Equal(t, "java", extForLanguage("java"))
	assert.Equal(t, "txt", extForLanguage(""))
	assert.Equal(t, "txt", extForLanguage("mystery"))
}
