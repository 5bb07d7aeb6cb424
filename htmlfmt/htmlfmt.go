package htmlfmt

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/androidprep/guideutil/config"
	"github.com/androidprep/guideutil/guideuri"
	"github.com/androidprep/guideutil/ir"
	"github.com/androidprep/guideutil/jekyll"
	"github.com/androidprep/guideutil/mdutils"
	"github.com/pkg/errors"
)

var Log = config.Cfg().GetLogger()

func NewHTMLFormat() *HTML {
	return &HTML{}
}

// HTML imports a directory of rendered pages (e.g. a built _site tree) back
// into the intermediate representation. Import only; exporting HTML is the
// site format's job.
type HTML struct {
}

func (h *HTML) Import(fromURI string) (toIntermediateRepresentation ir.Guide, err error) {
	rootDir, err := guideuri.GetAbsolutePathFromFileURI(fromURI)
	if err != nil {
		return nil, err
	}
	return resolveGuideFromHTML(rootDir)
}

func (h *HTML) Export(fromIntermediateRepresentation ir.Guide, toURI string, forceExport bool) (err error) {
	return errors.New("html guidefmt does not support export")
}

func resolveGuideFromHTML(rootDir string) (*jekyll.Guide, error) {
	entries, err := os.ReadDir(rootDir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".html") || strings.HasSuffix(e.Name(), ".htm") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	g := &jekyll.Guide{
		Slug:  filepath.Base(rootDir),
		Title: filepath.Base(rootDir),
	}
	for _, name := range names {
		doc, err := importPage(rootDir, name)
		if err != nil {
			Log.Warnf("Skipping unparsable page %s: %s", name, err.Error())
			continue
		}
		doc.Order = len(g.Documents)
		g.Documents = append(g.Documents, doc)
	}
	return g, nil
}

func importPage(rootDir, name string) (*jekyll.Document, error) {
	f, err := os.Open(filepath.Join(rootDir, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	page, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, err
	}
	slug := strings.TrimSuffix(strings.TrimSuffix(name, ".html"), ".htm")
	title := strings.TrimSpace(page.Find("h1").First().Text())
	if title == "" {
		title = strings.TrimSpace(page.Find("title").First().Text())
	}
	if title == "" {
		title = slug
	}
	content := page.Find("article").First()
	if content.Length() == 0 {
		content = page.Find("body").First()
	}
	htmlSrc, err := content.Html()
	if err != nil {
		return nil, err
	}
	md, err := mdutils.MakeMD(htmlSrc)
	if err != nil {
		return nil, err
	}
	scan := jekyll.ScanBody(md, config.Cfg().QuestionHeadingLevel)
	doc := &jekyll.Document{
		Slug:          slug,
		FSPath:        filepath.Join(rootDir, name),
		Title:         title,
		BodyMD:        md,
		DeclaredCount: mdutils.ScanDeclaredCount(title),
		PrevSlug:      scan.PrevSlug,
		NextSlug:      scan.NextSlug,
		Sections:      scan.Sections,
		Questions:     scan.Questions,
	}
	if doc.DeclaredCount < 0 {
		doc.DeclaredCount = scan.DeclaredCount
	}
	return doc, nil
}
