package urlkit

// defaultPorts maps a scheme to its default port, per spec.md §4.6
// remove_default_port.
var defaultPorts = map[string]uint32{
	"http":  80,
	"https": 443,
}

// Equal implements spec.md §4.7 strict equality: componentwise byte
// equality of all eight fields. Port is compared as an integer; a null
// userinfo/fragment is distinct from the empty string.
func (u *URL) Equal(other *URL) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.scheme == other.scheme &&
		u.host == other.host &&
		u.path == other.path &&
		u.params == other.params &&
		u.query == other.query &&
		u.hasPort == other.hasPort && u.port == other.port &&
		u.hasFragment == other.hasFragment && u.fragment == other.fragment &&
		u.hasUserinfo == other.hasUserinfo && u.userinfo == other.userinfo
}

// Equiv implements spec.md §4.7 equivalence: copy both sides, normalize
// via Canonical().Defrag().AbsPath().Escape().Punycode(), then compare
// scheme/host/path/params/query, collapse default ports, and ignore
// userinfo and fragment entirely. Reflexive and symmetric; not required
// to be transitive.
func (u *URL) Equiv(other *URL) bool {
	if u == nil || other == nil {
		return u == other
	}

	a := u.Copy()
	b := other.Copy()
	normalizeForEquiv(a)
	normalizeForEquiv(b)

	if a.scheme != b.scheme || a.host != b.host || a.path != b.path ||
		a.params != b.params || a.query != b.query {
		return false
	}

	switch {
	case a.hasPort && b.hasPort:
		return a.port == b.port
	case a.hasPort && !b.hasPort:
		def, ok := defaultPorts[a.scheme]
		return ok && a.port == def
	case !a.hasPort && b.hasPort:
		def, ok := defaultPorts[b.scheme]
		return ok && b.port == def
	default:
		return true
	}
}

func normalizeForEquiv(u *URL) {
	u.Canonical().Defrag().AbsPath().Escape(false)
	if u.host != "" {
		_ = u.Punycode()
	}
}
