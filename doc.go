// Package urlkit parses, normalizes, and compares URLs under the grammar of
// RFC 3986, with Punycode/IDNA2003 host handling (RFC 3492) and Public
// Suffix List lookups layered on top.
//
// A URL is produced by Parse or ParseBytes and then rewritten through a
// chain of transforms (Canonical, Defrag, Escape, AbsPath, ...); each
// transform mutates the receiver and returns it, so calls compose left to
// right: u.Canonical().Defrag().AbsPath(). Punycode and UnPunycode also
// mutate the receiver but return only an error, so they end a chain.
//
// RFC reference: https://www.ietf.org/rfc/rfc3986.html
package urlkit
