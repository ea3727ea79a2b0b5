package urlkit

import "strings"

// absPath implements spec.md §4.5 abspath: collapse runs of "/", then
// walk segments left to right, popping on "..", skipping ".", keeping
// everything else. Per SPEC_FULL.md §9 Open Question (a), a ".." pop
// always succeeds (even against an empty retained segment), so
// "/../foo" normalizes to "foo", not "/foo". Runs of "/" are collapsed
// first, so "////foo" normalizes to "/foo".
func absPath(path string) string {
	collapsed := collapseSlashes(path)

	var kept []string
	directory := false
	for _, part := range strings.Split(collapsed, "/") {
		switch part {
		case "..":
			if len(kept) > 0 {
				kept = kept[:len(kept)-1]
			}
			directory = true
		case ".":
			directory = true
		default:
			kept = append(kept, part)
			directory = false
		}
	}

	result := strings.Join(kept, "/")
	if directory {
		result += "/"
	}
	return result
}

func collapseSlashes(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	prevSlash := false
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			if prevSlash {
				continue
			}
			prevSlash = true
		} else {
			prevSlash = false
		}
		out.WriteByte(s[i])
	}
	return out.String()
}

// mergePaths implements the RFC 3986 §5.2.3 path merge used by
// URL.Relative: when the base has an authority and an empty path, the
// result is "/" + ref; otherwise it's base's path up to (and including)
// its last "/", with ref appended.
func mergePaths(baseHasAuthority bool, basePath, refPath string) string {
	if baseHasAuthority && basePath == "" {
		return "/" + refPath
	}
	if i := strings.LastIndexByte(basePath, '/'); i >= 0 {
		return basePath[:i+1] + refPath
	}
	return refPath
}
