package urlkit

// TextView and ByteView are read-only windows onto a *URL's components,
// per SPEC_FULL.md §4.6.1: neither type copies component storage, and
// the component accessor simply returns the stored string as text or as
// bytes — there is no "which flavor is canonical" branch in the core.

// TextView exposes u's components as text (Go string).
type TextView struct{ u *URL }

// Text returns a TextView over u.
func (u *URL) Text() TextView { return TextView{u: u} }

func (v TextView) Scheme() string           { return v.u.scheme }
func (v TextView) Host() string             { return v.u.host }
func (v TextView) Path() string             { return v.u.path }
func (v TextView) Params() string           { return v.u.params }
func (v TextView) Query() string            { return v.u.query }
func (v TextView) Userinfo() (string, bool) { return v.u.Userinfo() }
func (v TextView) Fragment() (string, bool) { return v.u.Fragment() }
func (v TextView) String() string           { return v.u.String() }

// ByteView exposes u's components as byte sequences.
type ByteView struct{ u *URL }

// BytesView returns a ByteView over u.
func (u *URL) BytesView() ByteView { return ByteView{u: u} }

func (v ByteView) Scheme() []byte { return []byte(v.u.scheme) }
func (v ByteView) Host() []byte   { return []byte(v.u.host) }
func (v ByteView) Path() []byte   { return []byte(v.u.path) }
func (v ByteView) Params() []byte { return []byte(v.u.params) }
func (v ByteView) Query() []byte  { return []byte(v.u.query) }

func (v ByteView) Userinfo() ([]byte, bool) {
	s, ok := v.u.Userinfo()
	return []byte(s), ok
}

func (v ByteView) Fragment() ([]byte, bool) {
	s, ok := v.u.Fragment()
	return []byte(s), ok
}

func (v ByteView) Bytes() []byte { return v.u.Bytes() }
