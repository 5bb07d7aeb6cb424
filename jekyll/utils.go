package jekyll

import (
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

func getIndexYAML(indexDir string) (contents []byte, err error) {
	possiblePaths := []string{
		filepath.Join(indexDir, "index.yaml"),
		filepath.Join(indexDir, "index.yml"),
	}
	for _, path := range possiblePaths {
		contents, err = ioutil.ReadFile(path)
		if contents != nil && err == nil {
			return
		}
	}
	return nil, errors.New("unable to read guide manifest, check that index.yaml exists with at least read permissions")
}

func writeIndexYAML(indexDir string, object interface{}) (err error) {
	outYAML, err := yaml.Marshal(object)
	if err != nil {
		return err
	}
	err = ioutil.WriteFile(filepath.Join(indexDir, "index.yaml"), outYAML, 0755)
	if err != nil {
		return err
	}
	return
}

// isIgnoredName filters out non-content files: generated indexes, hidden and
// underscore-prefixed entries (Jekyll internals) and anything that is not
// Markdown.
func isIgnoredName(name string) bool {
	if name == IndexFileName {
		return true
	}
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return true
	}
	return !strings.HasSuffix(name, ".md")
}
