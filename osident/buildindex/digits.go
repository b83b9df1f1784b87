package buildindex

import "regexp"

var digitRun = regexp.MustCompile(`[0-9]+`)

// FindBuild returns the first maximal run of digits in s that is exactly BuildDigits long. Runs that are shorter or
// longer (a year, an architecture width, a revision) are skipped rather than truncated.
func FindBuild(s string) (string, bool) {
	for _, run := range digitRun.FindAllString(s, -1) {
		if len(run) == BuildDigits {
			return run, true
		}
	}
	return "", false
}
