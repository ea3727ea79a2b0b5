package urlkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentUnescape(t *testing.T) {
	assert.Equal(t, "danny's pub", percentUnescape("danny's%20pub"))
	assert.Equal(t, "%zz", percentUnescape("%zz"), "malformed escape passes through")
	assert.Equal(t, "100%", percentUnescape("100%"), "trailing %% passes through")
}

func TestPercentEscapeNonStrict(t *testing.T) {
	assert.Equal(t, "danny's%20pub", percentEscapeNonStrict("danny's pub", pathSafe))
	assert.Equal(t, "%3F%23%5B%5D", percentEscapeNonStrict("%3f%23%5b%5d", pathSafe))
}

func TestPercentEscapeStrict(t *testing.T) {
	// ',' is a sub-delim (reserved), so an encoded %2C must stay encoded.
	assert.Equal(t, "%2C", percentEscapeStrict("%2C", pathSafe))
	// 'a' is unreserved, so %61 decodes to the literal.
	assert.Equal(t, "a", percentEscapeStrict("%61", pathSafe))
}

func TestPercentEscape_idempotent(t *testing.T) {
	for _, in := range []string{"danny's pub", "%3f%23%5b%5d", "a/b;c?d", "%252C"} {
		nonStrictOnce := percentEscapeNonStrict(in, pathSafe)
		nonStrictTwice := percentEscapeNonStrict(nonStrictOnce, pathSafe)
		assert.Equal(t, nonStrictOnce, nonStrictTwice)

		strictOnce := percentEscapeStrict(in, pathSafe)
		strictTwice := percentEscapeStrict(strictOnce, pathSafe)
		assert.Equal(t, strictOnce, strictTwice)
	}
}

func TestPercentEscapeNonStrict_doesNotReinterpretDecodedPercent(t *testing.T) {
	// "%252C" unescapes once to the literal 3-byte string "%2C" (a
	// percent sign followed by "2C"); the re-encode pass must quote that
	// literal '%' as "%25" rather than treating "%2C" as a fresh escape
	// and decoding it to ",". Otherwise a second call would produce "," and
	// break escape().escape() == escape().
	once := percentEscapeNonStrict("%252C", pathSafe)
	twice := percentEscapeNonStrict(once, pathSafe)
	assert.Equal(t, once, twice)
}
