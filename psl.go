package urlkit

import (
	"strings"
	"sync/atomic"
)

// pslNode is one label of the reversed-label trie described in
// SPEC_FULL.md §4.4.1 (grounded on the same shape as
// elliotwutingfeng/go-fasttld's tldTrie, built from a plain map instead
// of an external trie package since the engine never owns a backing
// file — only the bytes passed to SetPSL).
type pslNode struct {
	children  map[string]*pslNode
	isRule    bool
	isWild    bool
	exception bool
}

// wildcardKey is a reserved trie key for a rule's "*" position; it can
// never collide with a real DNS label (labels cannot consist solely of
// an asterisk).
const wildcardKey = "*"

func newPSLNode() *pslNode {
	return &pslNode{children: make(map[string]*pslNode)}
}

// pslRuleSet is the immutable, process-wide PSL state. A new ruleset is
// built in full by parsePSL and then swapped in atomically by SetPSL.
type pslRuleSet struct {
	root *pslNode
}

var pslCurrent atomic.Pointer[pslRuleSet]

func init() {
	pslCurrent.Store(&pslRuleSet{root: newPSLNode()})
}

// PSLHandle is an opaque reference to a previously installed ruleset,
// returned by SetPSL so callers (tests, in particular) can restore it.
type PSLHandle struct {
	rules *pslRuleSet
}

// SetPSL replaces the global Public Suffix List ruleset with the rules
// parsed from data (the PSL text format: blank lines and "//" comments
// ignored, "*.label" wildcard rules, "!label" exception rules). It
// returns a handle to the ruleset that was in effect before the call, so
// that a test (or any caller) can restore it later via RestorePSL.
func SetPSL(data []byte) PSLHandle {
	next := parsePSL(data)
	prev := pslCurrent.Swap(next)
	return PSLHandle{rules: prev}
}

// RestorePSL reinstalls a ruleset previously returned by SetPSL.
func RestorePSL(h PSLHandle) {
	if h.rules == nil {
		h.rules = &pslRuleSet{root: newPSLNode()}
	}
	pslCurrent.Store(h.rules)
}

// WithPSL installs data as the active PSL ruleset for the duration of fn,
// restoring whatever was active beforehand when fn returns.
func WithPSL(data []byte, fn func()) {
	prev := SetPSL(data)
	defer RestorePSL(prev)
	fn()
}

// parsePSL builds a pslRuleSet from the PSL text format.
func parsePSL(data []byte) *pslRuleSet {
	root := newPSLNode()
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		exception := false
		rule := line
		if strings.HasPrefix(rule, "!") {
			exception = true
			rule = rule[1:]
		}

		labels := strings.Split(strings.ToLower(rule), ".")
		wildcard := labels[0] == "*"

		node := root
		// Insert labels in reverse order (TLD-first) so suffix lookup
		// walks the host's labels from the end. The leftmost label (the
		// one closest to the registrable name) becomes the terminal
		// node; for a wildcard rule that label is the literal "*" and is
		// stored as a dedicated wildcard child instead of a concrete
		// label, so it can match any single label at that position.
		stop := 0
		if wildcard {
			stop = 1
		}
		for i := len(labels) - 1; i >= stop; i-- {
			label := labels[i]
			child, ok := node.children[label]
			if !ok {
				child = newPSLNode()
				node.children[label] = child
			}
			node = child
		}
		if wildcard {
			child, ok := node.children[wildcardKey]
			if !ok {
				child = newPSLNode()
				node.children[wildcardKey] = child
			}
			node = child
		}
		node.isRule = true
		node.isWild = wildcard
		node.exception = exception
	}
	return &pslRuleSet{root: root}
}

// publicSuffix returns the longest public suffix of host under the
// active ruleset, per spec.md §4.4. An unmatched host (no rule applies,
// which per the PSL algorithm's implicit "*" default rule means every
// unlisted TLD is its own public suffix) returns its last label.
func publicSuffix(host string) string {
	if host == "" {
		return ""
	}
	rules := pslCurrent.Load()
	labels := strings.Split(strings.ToLower(host), ".")

	best := labels[len(labels)-1] // implicit "*" rule
	node := rules.root
	matchedDepth := 0
	depth := 0
	for i := len(labels) - 1; i >= 0; i-- {
		child, ok := node.children[labels[i]]
		if !ok {
			child, ok = node.children[wildcardKey]
		}
		if !ok {
			break
		}
		node = child
		depth++
		if node.isRule {
			if node.exception {
				// An exception rule removes the leftmost label from the
				// match: "!co.uk" under "*.uk" means "co.uk" is NOT a
				// suffix, only "uk" is.
				matchedDepth = depth - 1
			} else {
				matchedDepth = depth
			}
		}
	}
	if matchedDepth > 0 {
		best = strings.Join(labels[len(labels)-matchedDepth:], ".")
	}
	return best
}

// payLevelDomain returns the "pld": one label above the public suffix,
// plus the suffix, per spec.md §4.4. It is empty when host has no label
// beyond its suffix, or host is empty.
func payLevelDomain(host string) string {
	if host == "" {
		return ""
	}
	suffix := publicSuffix(host)
	hostLabels := strings.Split(strings.ToLower(host), ".")
	suffixLabels := strings.Split(suffix, ".")
	if len(hostLabels) <= len(suffixLabels) {
		return ""
	}
	extra := hostLabels[len(hostLabels)-len(suffixLabels)-1:]
	return strings.Join(extra, ".")
}

// topLevelDomain returns payLevelDomain(host) with its first label
// removed, i.e. the public suffix itself.
func topLevelDomain(host string) string {
	pld := payLevelDomain(host)
	if pld == "" {
		return ""
	}
	parts := strings.Split(pld, ".")
	return strings.Join(parts[1:], ".")
}
