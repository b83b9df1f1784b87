/*
Package buildindex maps Windows build numbers back to the release labels that shipped them, and recognizes the release
labels of a family within free text.
*/
package buildindex

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/scylladb/go-set/strset"

	"github.com/anchore/osident/osident/keyword"
	"github.com/anchore/osident/osident/osierr"
)

// BuildDigits is the length of a build number as it appears in free text.
const BuildDigits = 5

var buildPattern = regexp.MustCompile(`^[0-9]{5}$`)

// Entry is one row of a forward correspondence table: a release and every build number it shipped with.
type Entry struct {
	Release string   `yaml:"release" json:"release"`
	Builds  []string `yaml:"builds" json:"builds"`
}

// Index is the read-only reverse view of a correspondence table. Releases of a build are kept in insertion order so
// that the first inserted release wins when a build is ambiguous.
type Index struct {
	family     string
	entries    []Entry
	byBuild    map[string][]string
	vocabulary *keyword.Matcher
}

// New validates the forward table and builds the reverse mapping.
func New(family string, entries []Entry) (*Index, error) {
	if err := Validate(family, entries); err != nil {
		return nil, err
	}

	idx := &Index{
		family:  family,
		byBuild: make(map[string][]string),
	}

	releases := make([]string, 0, len(entries))
	for _, e := range entries {
		release := strings.ToUpper(e.Release)
		builds := make([]string, len(e.Builds))
		copy(builds, e.Builds)
		idx.entries = append(idx.entries, Entry{Release: release, Builds: builds})
		releases = append(releases, release)

		for _, b := range builds {
			existing := strset.New(idx.byBuild[b]...)
			if existing.Has(release) {
				continue
			}
			idx.byBuild[b] = append(idx.byBuild[b], release)
		}
	}
	idx.vocabulary = keyword.NewCaseInsensitive(releases...)

	return idx, nil
}

// Validate reports every problem with a forward table: missing release labels, duplicate releases, releases without
// builds, and builds that are not five digit numbers.
func Validate(family string, entries []Entry) error {
	var errs error
	if family == "" {
		errs = multierror.Append(errs, fmt.Errorf("table has no family name"))
	}
	if len(entries) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("table %q has no releases", family))
	}

	seen := strset.New()
	for i, e := range entries {
		release := strings.ToUpper(strings.TrimSpace(e.Release))
		if release == "" {
			errs = multierror.Append(errs, fmt.Errorf("table %q: entry %d has no release label", family, i))
			continue
		}
		if seen.Has(release) {
			errs = multierror.Append(errs, fmt.Errorf("table %q: duplicate release %q", family, release))
		}
		seen.Add(release)

		if len(e.Builds) == 0 {
			errs = multierror.Append(errs, fmt.Errorf("table %q: release %q has no builds", family, release))
		}
		for _, b := range e.Builds {
			if !buildPattern.MatchString(b) {
				errs = multierror.Append(errs, fmt.Errorf("table %q: release %q has invalid build %q", family, release, b))
			}
		}
	}
	return errs
}

func (i *Index) Family() string {
	return i.family
}

// Lookup returns every release that shipped with the given build, first inserted first. A build absent from the
// table is a KindUnknownBuild error; a successful lookup is never empty.
func (i *Index) Lookup(build string) ([]string, error) {
	releases, ok := i.byBuild[build]
	if !ok || len(releases) == 0 {
		return nil, osierr.UnknownBuild(i.family, "", build)
	}
	out := make([]string, len(releases))
	copy(out, releases)
	return out, nil
}

// Resolve returns the first inserted release for the given build.
func (i *Index) Resolve(build string) (string, error) {
	releases, err := i.Lookup(build)
	if err != nil {
		return "", err
	}
	return releases[0], nil
}

// Releases returns the release labels in table order.
func (i *Index) Releases() []string {
	out := make([]string, 0, len(i.entries))
	for _, e := range i.entries {
		out = append(out, e.Release)
	}
	return out
}

// Builds returns every known build, sorted.
func (i *Index) Builds() []string {
	out := make([]string, 0, len(i.byBuild))
	for b := range i.byBuild {
		out = append(out, b)
	}
	sort.Strings(out)
	return out
}

// Entries returns a copy of the forward table, upper-cased release labels in table order.
func (i *Index) Entries() []Entry {
	out := make([]Entry, 0, len(i.entries))
	for _, e := range i.entries {
		builds := make([]string, len(e.Builds))
		copy(builds, e.Builds)
		out = append(out, Entry{Release: e.Release, Builds: builds})
	}
	return out
}

// MatchRelease finds the leftmost release label of this family mentioned in the text as a whole word, ignoring case.
// The canonical (upper-cased) label is returned.
func (i *Index) MatchRelease(text string) (string, bool) {
	found, ok := i.vocabulary.Find(text)
	if !ok {
		return "", false
	}
	return strings.ToUpper(found), true
}
