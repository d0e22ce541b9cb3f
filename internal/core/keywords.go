package core

import (
	"regexp"
	"strings"
)

// KeywordSet is a compiled list of keyword patterns shared by both views.
// Matching is case-insensitive and conjunctive: a title matches only when
// every pattern in the set matches it somewhere. An empty set matches
// every title, so "no keywords supplied" means "no filtering".
//
// Each keyword is interpreted as a regex fragment against the lower-cased
// title; the fixed menu choices rely on this for anchored patterns like
// " r | r$". A keyword that does not compile as a regex degrades to a
// plain substring match instead of failing the whole query.
type KeywordSet struct {
	patterns []keywordPattern
}

type keywordPattern struct {
	raw string
	re  *regexp.Regexp // nil when raw is not a valid regex
}

// NewKeywordSet lower-cases, trims, and compiles the given keywords.
// Blank entries are dropped.
func NewKeywordSet(keywords []string) KeywordSet {
	var set KeywordSet
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		p := keywordPattern{raw: kw}
		if re, err := regexp.Compile(kw); err == nil {
			p.re = re
		}
		set.patterns = append(set.patterns, p)
	}
	return set
}

// Empty reports whether the set holds no patterns.
func (s KeywordSet) Empty() bool {
	return len(s.patterns) == 0
}

// Match reports whether every pattern in the set matches the title.
func (s KeywordSet) Match(title string) bool {
	if len(s.patterns) == 0 {
		return true
	}
	title = strings.ToLower(title)
	for _, p := range s.patterns {
		if p.re != nil {
			if !p.re.MatchString(title) {
				return false
			}
		} else if !strings.Contains(title, p.raw) {
			return false
		}
	}
	return true
}

// Mask evaluates the set against every title and returns a boolean mask
// aligned by position. Callers combine the mask with other predicates via
// logical AND.
func (s KeywordSet) Mask(titles []string) []bool {
	mask := make([]bool, len(titles))
	for i, t := range titles {
		mask[i] = s.Match(t)
	}
	return mask
}

// SplitKeywords splits a comma-separated keyword string into trimmed,
// non-empty entries. An all-blank input yields nil, which downstream
// means "no constraint".
func SplitKeywords(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
