package urlkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInput_basic(t *testing.T) {
	c, err := parseInput("http://user@testing.com:8080/a/b;p=1?q=1#frag")
	require.NoError(t, err)

	assert.Equal(t, "http", c.scheme)
	assert.True(t, c.hasUserinfo)
	assert.Equal(t, "user", c.userinfo)
	assert.Equal(t, "testing.com", c.host)
	assert.True(t, c.hasPort)
	assert.Equal(t, uint32(8080), c.port)
	assert.Equal(t, "/a/b", c.path)
	assert.Equal(t, "p=1", c.params)
	assert.Equal(t, "q=1", c.query)
	assert.True(t, c.hasFragment)
	assert.Equal(t, "frag", c.fragment)
}

func TestParseInput_unknownSchemeStillSplits(t *testing.T) {
	c, err := parseInput("unknown:0108202201")
	require.NoError(t, err)
	// "unknown" is a valid scheme token (all ALPHA), so this one DOES split;
	// the parser never validates the token against a scheme registry.
	assert.Equal(t, "unknown", c.scheme)
	assert.Equal(t, "0108202201", c.path)
}

func TestParseInput_schemeLikeTokenStartingWithDigitFoldsIntoPath(t *testing.T) {
	c, err := parseInput("3com:0108202201")
	require.NoError(t, err)
	assert.Equal(t, "", c.scheme)
	assert.Equal(t, "3com:0108202201", c.path)
}

func TestParseInput_opaqueScheme(t *testing.T) {
	c, err := parseInput(`javascript:console.log("hello")`)
	require.NoError(t, err)
	assert.Equal(t, "javascript", c.scheme)
	assert.Equal(t, `console.log("hello")`, c.path)
}

func TestParseInput_telScheme(t *testing.T) {
	c, err := parseInput("tel:123456")
	require.NoError(t, err)
	assert.Equal(t, "tel", c.scheme)
	assert.Equal(t, "123456", c.path)
}

func TestParseInput_emptyAuthority(t *testing.T) {
	c, err := parseInput("http:///path")
	require.NoError(t, err)
	assert.Equal(t, "http", c.scheme)
	assert.Equal(t, "", c.host)
	assert.Equal(t, "/path", c.path)
}

func TestParseInput_ipv6Authority(t *testing.T) {
	c, err := parseInput("http://[::1]:8080/x")
	require.NoError(t, err)
	assert.Equal(t, "[::1]", c.host)
	assert.True(t, c.hasPort)
	assert.Equal(t, uint32(8080), c.port)
	assert.Equal(t, "/x", c.path)
}

func TestParseInput_authorityNoPathDefaultsToSlash(t *testing.T) {
	c, err := parseInput("http://testing.com")
	require.NoError(t, err)
	assert.Equal(t, "/", c.path)
}

func TestParsePort_rejectsOutOfRange(t *testing.T) {
	_, err := parsePort("65536")
	assert.ErrorIs(t, err, InvalidPort)
}

func TestParsePort_rejectsNonDigits(t *testing.T) {
	_, err := parsePort("-1")
	assert.ErrorIs(t, err, InvalidPort)
}

func TestNormalizeSeparators(t *testing.T) {
	assert.Equal(t, "a=1;b=2", normalizeSeparators(";a=1;;;;;;b=2", ';'))
	assert.Equal(t, "a=1", normalizeSeparators("??a=1", '?'))
	assert.Equal(t, "", normalizeSeparators("", '&'))
}
