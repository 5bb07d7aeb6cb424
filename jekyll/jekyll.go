package jekyll

import (
	"os"

	"github.com/androidprep/guideutil/config"
	"github.com/androidprep/guideutil/guideuri"
	"github.com/androidprep/guideutil/ir"
)

var Log = config.Cfg().GetLogger()

func NewJekyllFormat() *Jekyll {
	return &Jekyll{}
}

// Jekyll reads and writes a guide laid out as a flat directory of Markdown
// documents with YAML front matter, the layout consumed by the static-site
// generator. It is the canonical source format.
type Jekyll struct {
}

func (j *Jekyll) Import(fromURI string) (toIntermediateRepresentation ir.Guide, err error) {
	rootDir, err := guideuri.GetAbsolutePathFromFileURI(fromURI)
	if err != nil {
		return nil, err
	}
	return resolveGuide(rootDir)
}

func (j *Jekyll) Export(fromIntermediateRepresentation ir.Guide, toURI string, forceExport bool) (err error) {
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
	return exportGuide(fromIntermediateRepresentation, rootDir)
}
