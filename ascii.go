package urlkit

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// isASCII reports whether s contains only bytes in [0, 0x7F].
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// declaredEncodings maps the small set of source encodings this package
// accepts (mirroring the codecs the original url.py looked up: utf-8,
// ascii, windows-1252) to their golang.org/x/text transcoders. Anything
// else is rejected with InvalidEncoding rather than silently guessed at.
var declaredEncodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8,
	"utf8":         unicode.UTF8,
	"ascii":        charmap.Windows1252, // ASCII is a subset; validated separately below.
	"us-ascii":     charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
}

// transcodeToUTF8 decodes raw under the declared source encoding and
// returns the UTF-8 bytes, or an InvalidEncoding error if raw is not
// valid under that encoding (or the encoding name is unrecognized).
func transcodeToUTF8(raw []byte, declared string) ([]byte, error) {
	name := strings.ToLower(strings.TrimSpace(declared))
	if name == "" {
		name = "utf-8"
	}

	if name == "utf-8" || name == "utf8" {
		if !utf8.Valid(raw) {
			return nil, newError(InvalidEncoding, string(raw), errInvalidUTF8)
		}
		return raw, nil
	}

	enc, ok := declaredEncodings[name]
	if !ok {
		return nil, newError(InvalidEncoding, declared, errUnknownEncoding)
	}

	if (name == "ascii" || name == "us-ascii") && !isASCII(string(raw)) {
		return nil, newError(InvalidEncoding, string(raw), errInvalidUTF8)
	}

	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, newError(InvalidEncoding, string(raw), err)
	}
	return out, nil
}
