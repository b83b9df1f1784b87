/*
Package stringutil holds small string helpers shared by the library and the CLI.
*/
package stringutil

import (
	"regexp"
	"strings"
	"text/template"
)

// MatchCaptureGroups returns the named capture groups of the first match of regEx in str. Groups that did not
// participate in the match map to "". The map is empty when nothing matches.
func MatchCaptureGroups(regEx *regexp.Regexp, str string) map[string]string {
	results := make(map[string]string)
	match := regEx.FindStringSubmatch(str)
	if match == nil {
		return results
	}
	for i, name := range regEx.SubexpNames() {
		if name == "" || i >= len(match) {
			continue
		}
		results[name] = match[i]
	}
	return results
}

// Tprintf renders a string from a given template string and field values. A broken template renders as "".
func Tprintf(tmpl string, data map[string]interface{}) string {
	t, err := template.New("").Parse(tmpl)
	if err != nil {
		return ""
	}
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return ""
	}
	return sb.String()
}
