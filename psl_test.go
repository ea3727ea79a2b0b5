package urlkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPSL_swap(t *testing.T) {
	WithPSL([]byte("uk"), func() {
		assert.Equal(t, "co.uk", payLevelDomain("foo.co.uk"))
		assert.Equal(t, "uk", topLevelDomain("foo.co.uk"))
	})

	WithPSL([]byte("co.uk"), func() {
		assert.Equal(t, "foo.co.uk", payLevelDomain("foo.co.uk"))
		assert.Equal(t, "co.uk", topLevelDomain("foo.co.uk"))
	})
}

func TestPSL_wildcardAndException(t *testing.T) {
	rules := []byte("// comment\n\n*.uk\n!co.uk\n")
	WithPSL(rules, func() {
		assert.Equal(t, "uk", publicSuffix("co.uk"), "exception removes the wildcard match")
		assert.Equal(t, "bar.uk", publicSuffix("foo.bar.uk"))
		assert.Equal(t, "foo.bar.uk", payLevelDomain("baz.foo.bar.uk"))
	})
}

func TestPSL_unlistedTLDFallsBackToLastLabel(t *testing.T) {
	WithPSL([]byte("uk"), func() {
		assert.Equal(t, "zz", publicSuffix("example.zz"))
		assert.Equal(t, "example.zz", payLevelDomain("example.zz"))
	})
}

func TestPSL_restoreAfterSet(t *testing.T) {
	handle := SetPSL([]byte("uk"))
	assert.Equal(t, "uk", publicSuffix("foo.uk"))

	SetPSL([]byte("co.uk"))
	assert.Equal(t, "co.uk", publicSuffix("foo.co.uk"))

	RestorePSL(handle)
	assert.Equal(t, "uk", publicSuffix("foo.uk"))
}

func TestPLD_emptyWhenHostIsBareSuffix(t *testing.T) {
	WithPSL([]byte("uk"), func() {
		assert.Equal(t, "", payLevelDomain("uk"))
		assert.Equal(t, "", payLevelDomain(""))
	})
}
