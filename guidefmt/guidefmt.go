package guidefmt

import "github.com/androidprep/guideutil/ir"

type ExtFmt interface {
	Import(fromURI string) (toIntermediateRepresentation ir.Guide, err error)
	Export(fromIntermediateRepresentation ir.Guide, toURI string, forceExport bool) (err error)
}
