package keyword

// Rule associates a value with the phrases that select it.
type Rule struct {
	Value   string
	matcher *Matcher
}

// NewRule creates a case-sensitive rule selecting value when any of the phrases is present.
func NewRule(value string, phrases ...string) Rule {
	return Rule{
		Value:   value,
		matcher: New(phrases...),
	}
}

// Rules is an ordered rule list: the first rule whose phrases match wins, so more specific phrases go first.
type Rules []Rule

// First returns the value of the first matching rule.
func (r Rules) First(s string) (string, bool) {
	for _, rule := range r {
		if rule.matcher.Match(s) {
			return rule.Value, true
		}
	}
	return "", false
}
