/*
Package tables loads the release to build correspondence data that backs free-text build resolution. The data ships
embedded in the binary and may be overridden per family from a directory of YAML documents.
*/
package tables

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/scylladb/go-set/strset"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"

	"github.com/anchore/osident/internal/log"
	"github.com/anchore/osident/osident/buildindex"
)

const (
	dataDir = "data"
	// tableFilePattern selects the override documents within a tables directory.
	tableFilePattern = "*.{yaml,yml}"
)

//go:embed data/*.yaml
var embedded embed.FS

// Document is one correspondence table: a family and its releases in insertion order.
type Document struct {
	Family   string             `yaml:"family"`
	Releases []buildindex.Entry `yaml:"releases"`
}

// Set is a read-only collection of build indexes, one per family.
type Set struct {
	order   []string
	indexes map[string]*buildindex.Index
}

var (
	defaultOnce sync.Once
	defaultSet  *Set
	defaultErr  error
)

// Default returns the embedded tables. They are parsed once; later calls share the same set.
func Default() (*Set, error) {
	defaultOnce.Do(func() {
		defaultSet, defaultErr = loadEmbedded()
	})
	return defaultSet, defaultErr
}

func loadEmbedded() (*Set, error) {
	entries, err := embedded.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("unable to list embedded tables: %w", err)
	}

	var docs []Document
	for _, e := range entries {
		if e.IsDir() || !isTableFile(e.Name()) {
			continue
		}
		contents, err := embedded.ReadFile(path.Join(dataDir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("unable to read embedded table %q: %w", e.Name(), err)
		}
		doc, err := Parse(bytes.NewReader(contents))
		if err != nil {
			return nil, fmt.Errorf("unable to parse embedded table %q: %w", e.Name(), err)
		}
		docs = append(docs, *doc)
	}
	return NewSet(docs...)
}

// Load returns the embedded tables with every family defined in the YAML files of dir replacing (or adding to) the
// embedded family of the same name.
func Load(fs afero.Fs, dir string) (*Set, error) {
	base, err := Default()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return base, nil
	}

	overrides, err := readDir(fs, dir)
	if err != nil {
		return nil, err
	}
	return base.With(overrides...)
}

func readDir(fs afero.Fs, dir string) ([]Document, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("unable to read tables directory %q: %w", dir, err)
	}

	var docs []Document
	var errs error
	for _, info := range infos {
		if info.IsDir() || !isTableFile(info.Name()) {
			continue
		}
		location := filepath.Join(dir, info.Name())
		doc, err := readFile(fs, location)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		log.Debugf("loaded %d releases for %q from %s", len(doc.Releases), doc.Family, location)
		docs = append(docs, *doc)
	}
	if errs != nil {
		return nil, errs
	}
	return docs, nil
}

func readFile(fs afero.Fs, location string) (*Document, error) {
	f, err := fs.Open(location)
	if err != nil {
		return nil, fmt.Errorf("unable to open table %q: %w", location, err)
	}
	defer log.CloseAndLogError(f, location)

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("unable to parse table %q: %w", location, err)
	}
	return doc, nil
}

// Parse decodes a single YAML table document.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	doc.Family = strings.TrimSpace(doc.Family)
	return &doc, nil
}

// NewSet validates every document and builds its index. Family names must be unique.
func NewSet(docs ...Document) (*Set, error) {
	s := &Set{indexes: make(map[string]*buildindex.Index)}
	seen := strset.New()

	var errs error
	for _, doc := range docs {
		if seen.Has(doc.Family) {
			errs = multierror.Append(errs, fmt.Errorf("duplicate table for family %q", doc.Family))
			continue
		}
		seen.Add(doc.Family)

		idx, err := buildindex.New(doc.Family, doc.Releases)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		s.order = append(s.order, doc.Family)
		s.indexes[doc.Family] = idx
	}
	if errs != nil {
		return nil, errs
	}
	sort.Strings(s.order)
	return s, nil
}

// With returns a new set where the given documents replace the families of the same name.
func (s *Set) With(docs ...Document) (*Set, error) {
	replaced := strset.New()
	for _, d := range docs {
		replaced.Add(d.Family)
	}

	merged := make([]Document, 0, len(s.order)+len(docs))
	for _, family := range s.order {
		if replaced.Has(family) {
			log.Infof("build table for %q overridden", family)
			continue
		}
		merged = append(merged, Document{Family: family, Releases: s.indexes[family].Entries()})
	}
	merged = append(merged, docs...)
	return NewSet(merged...)
}

// Index returns the index of the family, or nil when the set has no table for it.
func (s *Set) Index(family string) *buildindex.Index {
	if s == nil {
		return nil
	}
	return s.indexes[family]
}

// Families returns the family names of every table, sorted.
func (s *Set) Families() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func isTableFile(name string) bool {
	matches, err := doublestar.Match(tableFilePattern, strings.ToLower(name))
	return err == nil && matches
}
