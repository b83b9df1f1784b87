/*
Package keyword provides whole-word phrase recognition used by every free-text extractor.
*/
package keyword

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Matcher recognizes any one of a fixed set of phrases as a whole word (or run of whole words) within a string.
// A Matcher is immutable and safe for concurrent use.
type Matcher struct {
	phrases []string
	pattern *regexp.Regexp
}

// New returns a case-sensitive Matcher for the given phrases.
func New(phrases ...string) *Matcher {
	return newMatcher(false, phrases)
}

// NewCaseInsensitive returns a Matcher that ignores letter case.
func NewCaseInsensitive(phrases ...string) *Matcher {
	return newMatcher(true, phrases)
}

func newMatcher(foldCase bool, phrases []string) *Matcher {
	m := &Matcher{}
	for _, p := range phrases {
		if strings.TrimSpace(p) == "" {
			continue
		}
		m.phrases = append(m.phrases, p)
	}
	if len(m.phrases) == 0 {
		return m
	}

	// longer alternatives first so that Find reports the most specific phrase at a given position
	alternatives := make([]string, len(m.phrases))
	copy(alternatives, m.phrases)
	sort.SliceStable(alternatives, func(i, j int) bool {
		return len(alternatives[i]) > len(alternatives[j])
	})
	for i, a := range alternatives {
		alternatives[i] = regexp.QuoteMeta(a)
	}

	flags := ""
	if foldCase {
		flags = "(?i)"
	}
	m.pattern = regexp.MustCompile(fmt.Sprintf(`%s\b(%s)\b`, flags, strings.Join(alternatives, "|")))
	return m
}

// Match reports whether any phrase occurs in s as a whole word.
func (m *Matcher) Match(s string) bool {
	if m == nil || m.pattern == nil {
		return false
	}
	return m.pattern.MatchString(s)
}

// Find returns the leftmost phrase occurrence in s, as written in s.
func (m *Matcher) Find(s string) (string, bool) {
	if m == nil || m.pattern == nil {
		return "", false
	}
	match := m.pattern.FindStringSubmatch(s)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// Phrases returns the phrases this matcher was built with, in the order given.
func (m *Matcher) Phrases() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.phrases))
	copy(out, m.phrases)
	return out
}
