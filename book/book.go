package book

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/androidprep/guideutil/config"
	"github.com/androidprep/guideutil/guideuri"
	"github.com/androidprep/guideutil/ir"
	"github.com/androidprep/guideutil/mdutils"
	"github.com/pkg/errors"
)

var Log = config.Cfg().GetLogger()

func NewBookFormat() *Book {
	return &Book{}
}

// Book concatenates the whole guide into a single book.md plus a rendered
// book.html, topics in guide order. Export only.
type Book struct {
}

func (b *Book) Import(fromURI string) (toIntermediateRepresentation ir.Guide, err error) {
	return nil, errors.New("book guidefmt does not support import")
}

func (b *Book) Export(fromIntermediateRepresentation ir.Guide, toURI string, forceExport bool) (err error) {
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
	err = os.MkdirAll(rootDir, 0775)
	if err != nil {
		return err
	}
	return exportBook(fromIntermediateRepresentation, rootDir)
}

func exportBook(g ir.Guide, rootDir string) (err error) {
	bookMD := concatMarkdown(g)
	err = ioutil.WriteFile(filepath.Join(rootDir, "book.md"), []byte(bookMD), 0755)
	if err != nil {
		return err
	}
	bookHTML, err := mdutils.MakeHTML(bookMD)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(filepath.Join(rootDir, "book.html"), []byte(bookHTML), 0755)
}

func concatMarkdown(g ir.Guide) string {
	mdStr := strings.Builder{}
	mdStr.WriteString(fmt.Sprintf("# %s\n", g.GetTitle()))
	for _, doc := range g.GetDocuments() {
		Log.Debug("Appending document to book: ", doc.GetSlug())
		mdStr.WriteString(fmt.Sprintf("\n# %s\n\n", mdutils.StripDeclaredCount(doc.GetTitle())))
		mdStr.WriteString(strings.TrimSpace(doc.GetBodyMD()))
		mdStr.WriteString("\n")
	}
	return mdStr.String()
}
