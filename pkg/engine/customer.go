package engine

import (
	"regexp"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"ost/pkg/contacts"
)

// MatchTier is one precedence level in customer-name resolution.
type MatchTier string

const (
	TierExact      MatchTier = "exact"
	TierNormalized MatchTier = "normalized"
	TierContains   MatchTier = "contains"
	TierNone       MatchTier = "none"
)

// CustomerMatch is the outcome of resolving one order's customer name.
// Annotation is the human-readable note carried into the output's rep notes.
// Suggestion is the nearest registry name, filled only when nothing matched —
// it never changes the outcome, it just makes the summary actionable.
type CustomerMatch struct {
	ID         string
	Tier       MatchTier
	IsCompany  bool
	Annotation string
	Suggestion string
}

var (
	punctRe = regexp.MustCompile(`[^\w\s]`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// normalizeName lowercases, strips punctuation, and collapses whitespace.
func normalizeName(s string) string {
	s = strings.ToLower(s)
	s = punctRe.ReplaceAllString(s, "")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Matcher resolves free-text customer names against the registry. Build it
// once; it precomputes normalized names and is read-only afterwards.
type Matcher struct {
	contacts   []contacts.Contact
	normalized []string
}

// NewMatcher prepares a Matcher over the registry, preserving registry order
// for deterministic tie-breaking.
func NewMatcher(list []contacts.Contact) *Matcher {
	m := &Matcher{
		contacts:   list,
		normalized: make([]string, len(list)),
	}
	for i, c := range list {
		m.normalized[i] = normalizeName(c.Name)
	}
	return m
}

// Match attempts the tiers in strict priority order and stops at the first
// tier with at least one candidate: exact (case-sensitive), normalized,
// contains (normalized substring, either direction). Within a tier,
// company-flagged contacts beat individuals; remaining ties go to the first
// contact in registry order.
func (m *Matcher) Match(name string) CustomerMatch {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return CustomerMatch{Tier: TierNone, Annotation: "[No name]"}
	}

	if i := m.pick(func(i int) bool { return m.contacts[i].Name == trimmed }); i >= 0 {
		return m.result(i, TierExact)
	}

	norm := normalizeName(trimmed)
	if norm != "" {
		if i := m.pick(func(i int) bool { return m.normalized[i] == norm }); i >= 0 {
			return m.result(i, TierNormalized)
		}
		if i := m.pick(func(i int) bool {
			n := m.normalized[i]
			return n != "" && (strings.Contains(n, norm) || strings.Contains(norm, n))
		}); i >= 0 {
			return m.result(i, TierContains)
		}
	}

	return CustomerMatch{
		Tier:       TierNone,
		Annotation: "[No match]",
		Suggestion: m.nearest(norm),
	}
}

// pick scans the registry, returning the first company-flagged candidate, or
// the first candidate overall if no company qualifies, or -1.
func (m *Matcher) pick(pred func(int) bool) int {
	first := -1
	for i := range m.contacts {
		if !pred(i) {
			continue
		}
		if m.contacts[i].IsCompany {
			return i
		}
		if first < 0 {
			first = i
		}
	}
	return first
}

var tierLabels = map[MatchTier]string{
	TierExact:      "Exact match",
	TierNormalized: "Normalized match",
	TierContains:   "Contains match",
}

func (m *Matcher) result(i int, tier MatchTier) CustomerMatch {
	c := m.contacts[i]
	annotation := "[" + tierLabels[tier]
	if c.IsCompany {
		annotation += ", company"
	}
	annotation += "]"
	return CustomerMatch{
		ID:         c.ID,
		Tier:       tier,
		IsCompany:  c.IsCompany,
		Annotation: annotation,
	}
}

// nearest returns the registry name with the smallest edit distance to the
// normalized input, ties going to registry order.
func (m *Matcher) nearest(norm string) string {
	if norm == "" || len(m.contacts) == 0 {
		return ""
	}
	best, bestDist := -1, 0
	for i, n := range m.normalized {
		if n == "" {
			continue
		}
		d := levenshtein.DistanceForStrings([]rune(norm), []rune(n), levenshtein.DefaultOptions)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return ""
	}
	return m.contacts[best].Name
}
