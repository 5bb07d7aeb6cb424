package jekyll

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/androidprep/guideutil/ir"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

func exportGuide(g ir.Guide, rootDir string) (err error) {
	if _, err := os.Stat(rootDir); err == nil {
		return errors.New("jekyll: specified root guide export directory must not exist, in order to ensure that no contents are incidentally overwritten")
	}
	err = os.MkdirAll(rootDir, 0775)
	if err != nil {
		return err
	}
	manifest := &Guide{
		Title:    g.GetTitle(),
		Slug:     g.GetSlug(),
		Language: g.GetLanguage(),
		RepoURL:  g.GetRepoURL(),
	}
	err = writeIndexYAML(rootDir, manifest)
	if err != nil {
		return err
	}
	for _, doc := range g.GetDocuments() {
		Log.Info("Exporting document: ", doc.GetSlug())
		err = exportDocument(rootDir, doc)
		if err != nil {
			return err
		}
	}
	return ioutil.WriteFile(filepath.Join(rootDir, IndexFileName), []byte(BuildQuestionsIndex(g)), 0755)
}

func exportDocument(rootDir string, doc ir.Document) (err error) {
	order := doc.GetOrder()
	fm := frontMatter{
		Layout: doc.GetLayout(),
		Title:  doc.GetTitle(),
		Order:  &order,
	}
	fmYAML, err := yaml.Marshal(&fm)
	if err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString("---\n")
	b.Write(fmYAML)
	b.WriteString("---\n\n")
	b.WriteString(strings.TrimLeft(doc.GetBodyMD(), "\n"))
	fileName := filepath.Join(rootDir, fmt.Sprintf("%s.md", doc.GetSlug()))
	return ioutil.WriteFile(fileName, []byte(b.String()), 0755)
}
