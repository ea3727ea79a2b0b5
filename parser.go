package urlkit

import (
	"strconv"
	"strings"
)

// components is the intermediate result of splitting raw input, before it
// is normalized into a *URL. Field names mirror the grammar in spec.md
// §3/§4.1.
type components struct {
	scheme      string
	hasUserinfo bool
	userinfo    string
	host        string
	hasPort     bool
	port        uint32
	path        string
	params      string
	query       string
	hasFragment bool
	fragment    string
}

// isSchemeChar reports whether c may appear after the first character of
// a scheme: ALPHA / DIGIT / "+" / "-" / ".".
func isSchemeChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '+' || c == '-' || c == '.'
}

func isAlpha(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// splitScheme finds the longest prefix of s matching
// ALPHA (ALPHA|DIGIT|"+"|"-"|".")* followed immediately by ":", per
// spec.md §4.1. If no such prefix exists (including a scheme-like token
// with invalid characters before any ":"), scheme is empty and rest is
// all of s — the parser's leniency described in SPEC_FULL.md §4.6.2.
func splitScheme(s string) (scheme, rest string) {
	if s == "" || !isAlpha(s[0]) {
		return "", s
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if c == ':' {
			return s[:i], s[i+1:]
		}
		if !isSchemeChar(c) {
			return "", s
		}
	}
	return "", s
}

// parseInput splits raw (already-decoded UTF-8 text) into components
// following spec.md §4.1.
func parseInput(raw string) (components, error) {
	var c components

	scheme, rest := splitScheme(raw)
	c.scheme = strings.ToLower(scheme)

	var authority string
	hasAuthority := strings.HasPrefix(rest, "//")
	if hasAuthority {
		rest = rest[2:]
		end := strings.IndexAny(rest, "/?#")
		if end < 0 {
			authority, rest = rest, ""
		} else {
			authority, rest = rest[:end], rest[end:]
		}
	}

	if hasAuthority {
		if err := parseAuthority(&c, authority); err != nil {
			return components{}, err
		}
	}

	// Path ends at first '?' or '#'.
	pathAndParams := rest
	var query, fragment string
	hasFragment := false
	if i := strings.IndexByte(pathAndParams, '#'); i >= 0 {
		fragment = pathAndParams[i+1:]
		hasFragment = true
		pathAndParams = pathAndParams[:i]
	}
	if i := strings.IndexByte(pathAndParams, '?'); i >= 0 {
		query = pathAndParams[i+1:]
		pathAndParams = pathAndParams[:i]
	}

	// Within the path segment, split on the first ';' into path+params.
	path := pathAndParams
	params := ""
	if i := strings.IndexByte(pathAndParams, ';'); i >= 0 {
		path = pathAndParams[:i]
		params = pathAndParams[i+1:]
	}

	if path == "" {
		if hasAuthority {
			path = "/"
		}
	}

	c.path = path
	c.params = normalizeSeparators(params, ';')
	c.query = normalizeSeparators(strings.TrimLeft(query, "?"), '&')
	c.hasFragment = hasFragment
	c.fragment = fragment

	return c, nil
}

// parseAuthority splits "[userinfo@]host[:port]" per spec.md §4.1:
// split on the last '@' for userinfo, then on the last ':' outside of
// "[ ]" for port.
func parseAuthority(c *components, authority string) error {
	hostport := authority
	if i := strings.LastIndexByte(authority, '@'); i >= 0 {
		c.hasUserinfo = true
		c.userinfo = authority[:i]
		hostport = authority[i+1:]
	}

	host := hostport
	portStr := ""
	hasPort := false

	if strings.HasPrefix(hostport, "[") {
		if end := strings.IndexByte(hostport, ']'); end >= 0 {
			host = hostport[:end+1]
			rest := hostport[end+1:]
			if strings.HasPrefix(rest, ":") {
				hasPort = true
				portStr = rest[1:]
			}
		}
	} else if i := strings.LastIndexByte(hostport, ':'); i >= 0 {
		host = hostport[:i]
		hasPort = true
		portStr = hostport[i+1:]
	}

	c.host = strings.ToLower(host)

	if hasPort && portStr != "" {
		port, err := parsePort(portStr)
		if err != nil {
			return err
		}
		c.hasPort = true
		c.port = port
	}

	return nil
}

// parsePort implements spec.md §4.1 port parsing: decimal digits only,
// value in [0, 65535].
func parsePort(s string) (uint32, error) {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, newError(InvalidPort, s, nil)
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n > 65535 {
		return 0, newError(InvalidPort, s, err)
	}
	return uint32(n), nil
}

// normalizeSeparators collapses runs of sep into one and trims a leading
// or trailing sep, per spec.md §4.1 (applies to both "?..." query and
// ";..." params, and to any leading run of the separator character
// itself, e.g. "??a=1" -> "a=1").
func normalizeSeparators(s string, sep byte) string {
	if s == "" {
		return s
	}
	parts := strings.Split(s, string(sep))
	kept := parts[:0]
	for _, p := range parts {
		if p == "" {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, string(sep))
}
