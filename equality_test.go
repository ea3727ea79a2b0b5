package urlkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual_nullVsEmptyUserinfo(t *testing.T) {
	a, err := Parse("http://foo.com/")
	require.NoError(t, err)
	b, err := Parse("http://@foo.com/")
	require.NoError(t, err)

	assert.True(t, b.hasUserinfo)
	assert.False(t, a.hasUserinfo)
	assert.False(t, a.Equal(b), "absent userinfo must differ from present-but-empty userinfo")
}

func TestEquiv_reflexive(t *testing.T) {
	a, err := Parse("http://foo.com/a?b=1")
	require.NoError(t, err)
	assert.True(t, a.Copy().Equiv(a.Copy()))
}

func TestEquiv_defaultPortBothSidesUnset(t *testing.T) {
	a, err := Parse("http://foo.com/")
	require.NoError(t, err)
	b, err := Parse("http://foo.com/")
	require.NoError(t, err)
	assert.True(t, a.Equiv(b))
}
