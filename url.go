package urlkit

import (
	"sort"
	"strings"
)

// URL is the mutable record described by the data model: eight
// components, transformed in place by the chainable methods below.
type URL struct {
	scheme string

	hasUserinfo bool
	userinfo    string

	host string

	hasPort bool
	port    uint32

	path   string
	params string
	query  string

	hasFragment bool
	fragment    string
}

// Parse decodes input as UTF-8 and builds a *URL per spec.md §4.1.
func Parse(input string) (*URL, error) {
	return ParseEncoding([]byte(input), "utf-8")
}

// ParseBytes is Parse for already-framed bytes, assumed UTF-8.
func ParseBytes(raw []byte) (*URL, error) {
	return ParseEncoding(raw, "utf-8")
}

// ParseEncoding builds a *URL from raw bytes declared to be in encoding
// (e.g. "utf-8", "windows-1252", "us-ascii"); see SPEC_FULL.md §4.2.1.
func ParseEncoding(raw []byte, declaredEncoding string) (*URL, error) {
	utf8Bytes, err := transcodeToUTF8(raw, declaredEncoding)
	if err != nil {
		return nil, err
	}

	c, err := parseInput(string(utf8Bytes))
	if err != nil {
		return nil, err
	}

	return &URL{
		scheme:      c.scheme,
		hasUserinfo: c.hasUserinfo,
		userinfo:    c.userinfo,
		host:        c.host,
		hasPort:     c.hasPort,
		port:        c.port,
		path:        c.path,
		params:      c.params,
		query:       c.query,
		hasFragment: c.hasFragment,
		fragment:    c.fragment,
	}, nil
}

// Copy returns a deep clone; every *URL field is a value type (string,
// bool, uint32) so a struct copy already owns its own storage.
func (u *URL) Copy() *URL {
	cp := *u
	return &cp
}

// --- accessors ---

func (u *URL) Scheme() string { return u.scheme }

// Userinfo reports the userinfo component and whether it is present at
// all (null vs. "present but empty" per spec.md §3).
func (u *URL) Userinfo() (string, bool) { return u.userinfo, u.hasUserinfo }

func (u *URL) Host() string { return u.host }

// Port reports the port and whether it was explicitly set.
func (u *URL) Port() (uint32, bool) { return u.port, u.hasPort }

func (u *URL) Path() string   { return u.path }
func (u *URL) Params() string { return u.params }
func (u *URL) Query() string  { return u.query }

// Fragment reports the fragment and whether a "#" was present at all.
func (u *URL) Fragment() (string, bool) { return u.fragment, u.hasFragment }

// Hostname is an alias of Host kept for API symmetry with the other
// dotted accessors (hostname, pld, tld) of spec.md §6.
func (u *URL) Hostname() string { return u.host }

func (u *URL) PLD() string { return payLevelDomain(u.host) }
func (u *URL) TLD() string { return topLevelDomain(u.host) }

// Absolute reports whether the URL carries a non-empty host.
func (u *URL) Absolute() bool { return u.host != "" }

// --- transforms ---

// Canonical sorts query segments (split on "&") and params segments
// (split on ";") lexicographically by byte, then reassembles each.
func (u *URL) Canonical() *URL {
	u.query = sortSegments(u.query, '&')
	u.params = sortSegments(u.params, ';')
	return u
}

func sortSegments(s string, sep byte) string {
	if s == "" {
		return s
	}
	parts := strings.Split(s, string(sep))
	sort.Slice(parts, func(i, j int) bool { return parts[i] < parts[j] })
	return strings.Join(parts, string(sep))
}

// Defrag sets fragment to null.
func (u *URL) Defrag() *URL {
	u.hasFragment = false
	u.fragment = ""
	return u
}

// Deparam removes, from both query and params, every "k=v" or bare "k"
// pair whose key case-insensitively equals one of names.
func (u *URL) Deparam(names []string) *URL {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[strings.ToLower(n)] = true
	}
	keep := func(k, _ string) bool { return !drop[strings.ToLower(k)] }
	u.query = filterPairs(u.query, '&', keep)
	u.params = filterPairs(u.params, ';', keep)
	return u
}

// FilterParams drops, from query, every "k=v" (or bare "k", treated as
// v="") pair for which f(k, v) holds.
func (u *URL) FilterParams(f func(key, value string) bool) *URL {
	keep := func(k, v string) bool { return !f(k, v) }
	u.query = filterPairs(u.query, '&', keep)
	return u
}

// filterPairs splits s on sep into "k=v"/"k" pairs and keeps only those
// for which keep(k, v) returns true, preserving order.
func filterPairs(s string, sep byte, keep func(key, value string) bool) string {
	if s == "" {
		return s
	}
	parts := strings.Split(s, string(sep))
	kept := parts[:0]
	for _, p := range parts {
		k, v := splitPair(p)
		if keep(k, v) {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, string(sep))
}

func splitPair(p string) (key, value string) {
	if i := strings.IndexByte(p, '='); i >= 0 {
		return p[:i], p[i+1:]
	}
	return p, ""
}

// Deuserinfo sets userinfo to null.
func (u *URL) Deuserinfo() *URL {
	u.hasUserinfo = false
	u.userinfo = ""
	return u
}

// AbsPath implements spec.md §4.5 abspath on the path component.
func (u *URL) AbsPath() *URL {
	u.path = absPath(u.path)
	return u
}

// Escape percent-normalizes path, query, params, and userinfo (when
// present). strict selects between the two modes of spec.md §4.2.
func (u *URL) Escape(strict bool) *URL {
	escape := percentEscapeNonStrict
	if strict {
		escape = percentEscapeStrict
	}
	u.path = escape(u.path, pathSafe)
	u.query = escape(u.query, querySafe)
	u.params = escape(u.params, querySafe)
	if u.hasUserinfo {
		u.userinfo = escape(u.userinfo, userinfoSafe)
	}
	return u
}

// Unescape decodes every %HH in path unconditionally.
func (u *URL) Unescape() *URL {
	u.path = percentUnescape(u.path)
	return u
}

// RemoveDefaultPort clears port when it equals the default for scheme.
func (u *URL) RemoveDefaultPort() *URL {
	if def, ok := defaultPorts[u.scheme]; ok && u.hasPort && u.port == def {
		u.hasPort = false
		u.port = 0
	}
	return u
}

// Punycode IDNA-encodes host. Fails with RelativeURL when host is
// empty, per spec.md §4.6.
func (u *URL) Punycode() error {
	if u.host == "" {
		return newError(RelativeURL, "", nil)
	}
	encoded, err := punycodeHost(u.host)
	if err != nil {
		return err
	}
	u.host = encoded
	return nil
}

// UnPunycode IDNA-decodes host. Fails with RelativeURL when host is
// empty.
func (u *URL) UnPunycode() error {
	if u.host == "" {
		return newError(RelativeURL, "", nil)
	}
	decoded, err := unpunycodeHost(u.host)
	if err != nil {
		return err
	}
	u.host = decoded
	return nil
}

// Sanitize applies AbsPath then a non-strict Escape. Per SPEC_FULL.md
// §9 Open Question (b), it does not lowercase host — that already
// happened once, at parse time.
func (u *URL) Sanitize() *URL {
	return u.AbsPath().Escape(false)
}

// Relative implements spec.md §4.5 relative(base, ref): resolves ref
// against u (the base) and returns a freshly parsed URL, leaving u
// unmodified.
func (u *URL) Relative(ref string) (*URL, error) {
	r, err := Parse(ref)
	if err != nil {
		return nil, err
	}

	if r.scheme != "" {
		return r, nil
	}

	result := &URL{scheme: u.scheme}

	if r.host != "" || r.hasUserinfo || r.hasPort {
		result.host = r.host
		result.hasUserinfo, result.userinfo = r.hasUserinfo, r.userinfo
		result.hasPort, result.port = r.hasPort, r.port
		result.path = absPath(r.path)
		result.params = r.params
		result.query = r.query
	} else {
		result.host = u.host
		result.hasUserinfo, result.userinfo = u.hasUserinfo, u.userinfo
		result.hasPort, result.port = u.hasPort, u.port

		if r.path == "" {
			result.path = u.path
			if r.query != "" {
				result.params = r.params
				result.query = r.query
			} else {
				result.params = u.params
				result.query = u.query
			}
		} else {
			baseHasAuthority := u.host != "" || u.hasUserinfo || u.hasPort
			merged := r.path
			if !strings.HasPrefix(r.path, "/") {
				merged = mergePaths(baseHasAuthority, u.path, r.path)
			}
			result.path = absPath(merged)
			result.params = r.params
			result.query = r.query
		}
	}

	result.hasFragment, result.fragment = r.hasFragment, r.fragment

	if result.path == "" && (result.host != "" || result.hasUserinfo || result.hasPort) {
		result.path = "/"
	}

	return result, nil
}

// String serializes u per spec.md §4.6: "scheme:" when scheme is
// non-empty, "//" + authority when host/userinfo/port is present, then
// path, ";params", "?query", "#fragment".
func (u *URL) String() string {
	var b strings.Builder

	if u.scheme != "" {
		b.WriteString(u.scheme)
		b.WriteByte(':')
	}

	hasAuthority := u.host != "" || u.hasUserinfo || u.hasPort
	if hasAuthority {
		b.WriteString("//")
		if u.hasUserinfo {
			b.WriteString(u.userinfo)
			b.WriteByte('@')
		}
		b.WriteString(u.host)
		if u.hasPort {
			b.WriteByte(':')
			b.WriteString(formatPort(u.port))
		}
	}

	b.WriteString(u.path)
	if u.params != "" {
		b.WriteByte(';')
		b.WriteString(u.params)
	}
	if u.query != "" {
		b.WriteByte('?')
		b.WriteString(u.query)
	}
	if u.hasFragment {
		b.WriteByte('#')
		b.WriteString(u.fragment)
	}

	return b.String()
}

// Bytes is the byte-sequence serialization of u (spec.md §6 "utf8").
func (u *URL) Bytes() []byte { return []byte(u.String()) }

func formatPort(p uint32) string {
	if p == 0 {
		return "0"
	}
	var digits [10]byte
	i := len(digits)
	for p > 0 {
		i--
		digits[i] = byte('0' + p%10)
		p /= 10
	}
	return string(digits[i:])
}
