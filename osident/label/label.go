/*
Package label decides whether an identifier string is a structured (dash separated) label or free text, and exposes
the positional token view of structured labels.
*/
package label

import "strings"

// Kind is the classification of an identifier string.
type Kind string

const (
	Structured Kind = "structured"
	FreeText   Kind = "free-text"
)

const separator = "-"

// any of these characters forces free-text classification
const freeTextMarkers = " _,;./\\:|+"

// Label is an immutable, classified identifier string.
type Label struct {
	raw    string
	kind   Kind
	tokens []string
}

// Classify returns the kind of the given string without building a full Label.
func Classify(s string) Kind {
	if s == "" || strings.ContainsAny(s, freeTextMarkers) {
		return FreeText
	}
	if len(strings.Split(s, separator)) > 1 {
		return Structured
	}
	return FreeText
}

// Parse classifies the given string. Parsing never fails: every string is either structured or free text.
func Parse(s string) Label {
	l := Label{
		raw:  s,
		kind: Classify(s),
	}
	if l.kind == Structured {
		l.tokens = strings.Split(s, separator)
	}
	return l
}

func (l Label) Kind() Kind {
	return l.kind
}

func (l Label) IsStructured() bool {
	return l.kind == Structured
}

// Raw returns the string as given.
func (l Label) Raw() string {
	return l.raw
}

// Len is the number of positional tokens (zero for free text).
func (l Label) Len() int {
	return len(l.tokens)
}

// Token returns the token at position i, if present.
func (l Label) Token(i int) (string, bool) {
	if i < 0 || i >= len(l.tokens) {
		return "", false
	}
	return l.tokens[i], true
}

// Tokens returns a copy of the positional tokens.
func (l Label) Tokens() []string {
	if l.tokens == nil {
		return nil
	}
	out := make([]string, len(l.tokens))
	copy(out, l.tokens)
	return out
}

func (l Label) String() string {
	return l.raw
}
