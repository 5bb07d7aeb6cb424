package snippets

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidSnippetFileName = errors.New("invalid snippet file name")
var ErrSnippetTreeTooDeep = errors.New("snippet file structure is too deep, remove at least one directory level before trying again")
var ErrInvalidSnippetStructure = errors.New("invalid snippet structure, a non-directory may not contain children")

// Workspace is a materializable tree of extracted code snippets, one
// directory per topic and one per question.
type Workspace struct {
	Name  string                  `json:"name"`
	Files map[string]*SnippetFile `json:"files"`
}

type SnippetFile struct {
	Name     string                  `json:"name"`
	IsDir    bool                    `json:"isDir"`
	Language string                  `json:"language,omitempty"`
	Contents string                  `json:"contents,omitempty"`
	Children map[string]*SnippetFile `json:"children,omitempty"`
}

func (w *Workspace) MarshalIndented() ([]byte, error) {
	return json.MarshalIndent(w, "", "  ")
}

// Materialize writes the workspace tree under rootPath, creating it when
// needed.
func (w *Workspace) Materialize(rootPath string) error {
	err := os.MkdirAll(rootPath, 0775)
	if err != nil {
		return err
	}
	for key := range w.Files {
		err := w.Files[key].Initialize(rootPath, key, 0)
		if err != nil {
			return err
		}
	}
	return nil
}

func (sf *SnippetFile) Initialize(rootDir, key string, curDepth int64) error {
	if curDepth > 8 {
		return ErrSnippetTreeTooDeep
	}
	sf.Name = key
	if err := sf.ValidateNameAndStructure(); err != nil {
		return err
	}
	if !sf.IsDir {
		return ioutil.WriteFile(filepath.Join(rootDir, sf.Name), []byte(sf.Contents), 0664)
	}
	curPath := filepath.Join(rootDir, sf.Name)
	err := os.Mkdir(curPath, 0775)
	if err != nil && !os.IsExist(err) {
		return err
	}
	for k, c := range sf.Children {
		err := c.Initialize(curPath, k, curDepth+1)
		if err != nil {
			return err
		}
	}
	return nil
}

func (sf *SnippetFile) ValidateNameAndStructure() error {
	if sf.Name == "" || sf.Name == "." || sf.Name == ".." {
		return ErrInvalidSnippetFileName
	}
	if strings.ContainsAny(sf.Name, "/\\") {
		return ErrInvalidSnippetFileName
	}
	if !sf.IsDir && len(sf.Children) > 0 {
		return ErrInvalidSnippetStructure
	}
	return nil
}
