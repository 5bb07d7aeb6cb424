package site

import (
	"html/template"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/androidprep/guideutil/config"
	"github.com/androidprep/guideutil/guideuri"
	"github.com/androidprep/guideutil/ir"
	"github.com/androidprep/guideutil/jekyll"
	"github.com/androidprep/guideutil/mdutils"
	"github.com/pkg/errors"
)

var Log = config.Cfg().GetLogger()

func NewSiteFormat() *Site {
	return &Site{}
}

// Site renders the guide into a self-contained static HTML tree: one page per
// document plus an index.html built from the questions index. Export only.
type Site struct {
}

func (s *Site) Import(fromURI string) (toIntermediateRepresentation ir.Guide, err error) {
	return nil, errors.New("site guidefmt does not support import")
}

func (s *Site) Export(fromIntermediateRepresentation ir.Guide, toURI string, forceExport bool) (err error) {
	rootDir, err := guideuri.GetAbsolutePathFromFileURI(toURI)
	if err != nil {
		return err
	}
	if forceExport {
		err = os.RemoveAll(rootDir)
		if err != nil {
			return err
		}
	}
	return exportSite(fromIntermediateRepresentation, rootDir)
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<title>{{.Title}} - {{.GuideTitle}}</title>
</head>
<body>
<article>
{{.Body}}
</article>
<nav>
{{if .PrevSlug}}<a rel="prev" href="{{.PrevSlug}}.html">Previous</a>{{end}}
<a href="index.html">Index</a>
{{if .NextSlug}}<a rel="next" href="{{.NextSlug}}.html">Next</a>{{end}}
</nav>
</body>
</html>
`))

type pageData struct {
	Lang       string
	Title      string
	GuideTitle string
	Body       template.HTML
	PrevSlug   string
	NextSlug   string
}

func exportSite(g ir.Guide, rootDir string) (err error) {
	if _, err := os.Stat(rootDir); err == nil {
		return errors.New("site: specified root site export directory must not exist, in order to ensure that no contents are incidentally overwritten")
	}
	err = os.MkdirAll(rootDir, 0775)
	if err != nil {
		return err
	}
	lang := g.GetLanguage()
	if lang == "" {
		lang = "en"
	}
	for _, doc := range g.GetDocuments() {
		Log.Info("Rendering page: ", doc.GetSlug())
		body, err := mdutils.MakeHTML(doc.GetBodyMD())
		if err != nil {
			return err
		}
		err = writePage(filepath.Join(rootDir, doc.GetSlug()+".html"), pageData{
			Lang:       lang,
			Title:      mdutils.StripDeclaredCount(doc.GetTitle()),
			GuideTitle: g.GetTitle(),
			Body:       template.HTML(body),
			PrevSlug:   doc.GetPrevSlug(),
			NextSlug:   doc.GetNextSlug(),
		})
		if err != nil {
			return err
		}
	}
	return writeSiteIndex(g, rootDir, lang)
}

func writeSiteIndex(g ir.Guide, rootDir, lang string) error {
	indexMD := jekyll.BuildQuestionsIndex(g)
	// Page links in the rendered site point at .html siblings, not the
	// Markdown sources.
	indexMD = strings.ReplaceAll(indexMD, ".md#", ".html#")
	body, err := mdutils.MakeHTML(indexMD)
	if err != nil {
		return err
	}
	return writePage(filepath.Join(rootDir, "index.html"), pageData{
		Lang:       lang,
		Title:      "Questions Index",
		GuideTitle: g.GetTitle(),
		Body:       template.HTML(body),
	})
}

func writePage(path string, data pageData) error {
	var b strings.Builder
	if err := pageTmpl.Execute(&b, data); err != nil {
		return err
	}
	return ioutil.WriteFile(path, []byte(b.String()), 0755)
}
