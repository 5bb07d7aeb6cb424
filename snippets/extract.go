package snippets

import (
	"fmt"

	"github.com/androidprep/guideutil/config"
	"github.com/androidprep/guideutil/ir"
	"github.com/androidprep/guideutil/mdutils"
)

var Log = config.Cfg().GetLogger()

var extByLanguage = map[string]string{
	"kotlin":     "kt",
	"kt":         "kt",
	"java":       "java",
	"xml":        "xml",
	"groovy":     "groovy",
	"gradle":     "gradle",
	"json":       "json",
	"yaml":       "yaml",
	"yml":        "yaml",
	"shell":      "sh",
	"sh":         "sh",
	"bash":       "sh",
	"sql":        "sql",
	"proguard":   "pro",
	"properties": "properties",
}

// FromGuide collects every fenced code block from every answer into a
// workspace tree: <topic-slug>/<question-anchor>/snippet_NN.<ext>.
func FromGuide(g ir.Guide) *Workspace {
	ws := &Workspace{
		Name:  g.GetSlug(),
		Files: map[string]*SnippetFile{},
	}
	for _, doc := range g.GetDocuments() {
		var topicDir *SnippetFile
		for _, q := range doc.GetQuestions() {
			blocks := mdutils.ExtractFencedBlocks(q.GetAnswerMD())
			if len(blocks) == 0 {
				continue
			}
			if topicDir == nil {
				topicDir = &SnippetFile{
					Name:     doc.GetSlug(),
					IsDir:    true,
					Children: map[string]*SnippetFile{},
				}
				ws.Files[doc.GetSlug()] = topicDir
			}
			qDir := &SnippetFile{
				Name:     q.GetAnchor(),
				IsDir:    true,
				Children: map[string]*SnippetFile{},
			}
			topicDir.Children[q.GetAnchor()] = qDir
			for i, blk := range blocks {
				name := fmt.Sprintf("snippet_%02d.%s", i+1, extForLanguage(blk.Language))
				qDir.Children[name] = &SnippetFile{
					Name:     name,
					Language: blk.Language,
					Contents: blk.Content,
				}
			}
			Log.Debugf("Extracted %d snippet(s) for question %s", len(blocks), q.GetAnchor())
		}
	}
	return ws
}

func extForLanguage(lang string) string {
	if ext, ok := extByLanguage[lang]; ok {
		return ext
	}
	return "txt"
}
