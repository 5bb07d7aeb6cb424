package guidefmt

import (
	"testing"

	"github.com/androidprep/guideutil/ir"
	"github.com/stretchr/testify/assert"
)

type noopFmt struct{}

func (n *noopFmt) Import(fromURI string) (ir.Guide, error) {
	return nil, nil
}

func (n *noopFmt) Export(g ir.Guide, toURI string, forceExport bool) error {
	return nil
}

func TestRegistry(t *testing.T) {
	impl := &noopFmt{}
	RegisterExtFmt("noop", impl)
	assert.Equal(t, ExtFmt(impl), GetImplementation("noop"))
	assert.Nil(t, GetImplementation("unknown"))
}

func TestRegistry_DuplicateKeyPanics(t *testing.T) {
	RegisterExtFmt("dup", &noopFmt{})
	assert.Panics(t, func() {
		RegisterExtFmt("dup", &noopFmt{})
	})
}

func TestRegistry_EmptyKeyPanics(t *testing.T) {
	assert.Panics(t, func() {
		RegisterExtFmt("", &noopFmt{})
	})
}
