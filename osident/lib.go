/*
Package osident resolves operating system identifier strings, such as release tags ("11-24h2-e") or build descriptions
scraped from inventory tools ("Windows 11 Enterprise (Build 26100)"), into canonical product names.
*/
package osident

import (
	"strconv"
	"strings"
	"sync"

	"github.com/scylladb/go-set/strset"
	"github.com/wagoodman/go-partybus"

	"github.com/anchore/osident/internal/bus"
	"github.com/anchore/osident/internal/log"
	"github.com/anchore/osident/osident/event"
	"github.com/anchore/osident/osident/logger"
	"github.com/anchore/osident/osident/record"
	"github.com/anchore/osident/osident/tables"
	"github.com/anchore/osident/osident/windows"
)

var (
	defaultIdentifier     *Identifier
	defaultIdentifierErr  error
	defaultIdentifierOnce sync.Once
)

// Result is the outcome of resolving a single label.
type Result struct {
	Input          string
	Identification *windows.Identification
	Err            error
}

// Resolved reports whether the label resolved to a canonical record.
func (r Result) Resolved() bool {
	return r.Err == nil && r.Identification != nil
}

// Identifier resolves labels against a fixed set of correspondence tables. It is safe for concurrent use.
type Identifier struct {
	dispatcher *windows.Dispatcher
}

// NewIdentifier creates an identifier over the given tables. A nil set behaves as a set without any tables: structured
// labels still resolve, free text with a build number does not.
func NewIdentifier(set *tables.Set) *Identifier {
	return &Identifier{
		dispatcher: windows.NewDispatcher(WindowsTables(set)),
	}
}

// WindowsTables selects the tables of the build resolving Windows families from the set.
func WindowsTables(set *tables.Set) windows.Tables {
	t := windows.Tables{
		Windows11: set.Index(string(windows.Windows11)),
		Windows10: set.Index(string(windows.Windows10)),
		Server:    set.Index(string(windows.Server2019Plus)),
	}
	for _, f := range windows.BuildResolving {
		if t.Index(f) == nil {
			log.Debugf("no build table for %s: free text with a build number will not resolve", f)
		}
	}
	return t
}

// DefaultIdentifier returns the shared identifier over the embedded tables.
func DefaultIdentifier() (*Identifier, error) {
	defaultIdentifierOnce.Do(func() {
		set, err := tables.Default()
		if err != nil {
			defaultIdentifierErr = err
			return
		}
		defaultIdentifier = NewIdentifier(set)
	})
	return defaultIdentifier, defaultIdentifierErr
}

// Families lists the families tried, in precedence order.
func (i *Identifier) Families() []windows.Family {
	return i.dispatcher.Families()
}

// Identify resolves a single label, publishing the outcome on the event bus.
func (i *Identifier) Identify(input string) (*windows.Identification, error) {
	id, err := i.dispatcher.Identify(input)
	if err != nil {
		bus.Publish(partybus.Event{
			Type:   event.LabelUnresolved,
			Source: input,
			Value:  err,
		})
		return nil, err
	}

	bus.Publish(partybus.Event{
		Type:   event.LabelResolved,
		Source: input,
		Value:  *id,
	})
	return id, nil
}

// IdentifyAll resolves every label in order. Surrounding whitespace is trimmed, blank labels are skipped and a label
// seen earlier in the batch is not resolved again. A summary is published once the batch is done.
func (i *Identifier) IdentifyAll(inputs []string) []Result {
	results := make([]Result, 0, len(inputs))
	seen := make(map[string]Result)

	for _, raw := range inputs {
		input := strings.TrimSpace(raw)
		if input == "" {
			continue
		}
		if r, ok := seen[input]; ok {
			results = append(results, r)
			continue
		}

		id, err := i.Identify(input)
		r := Result{Input: input, Identification: id, Err: err}
		seen[input] = r
		results = append(results, r)
	}

	bus.Publish(partybus.Event{
		Type:  event.BatchFinished,
		Value: Summarize(results),
	})
	return results
}

// Summarize tallies a batch of results.
func Summarize(results []Result) event.Summary {
	summary := event.Summary{Total: len(results)}
	for _, r := range results {
		if r.Resolved() {
			summary.Resolved++
		} else {
			summary.Unresolved++
		}
	}
	summary.Distinct = len(Distinct(onlyResolved(results)))
	return summary
}

// Distinct drops every resolved result whose canonical record was already produced by an earlier result. Unresolved
// results are kept.
func Distinct(results []Result) []Result {
	seen := strset.New()
	out := make([]Result, 0, len(results))
	for _, r := range results {
		if !r.Resolved() {
			out = append(out, r)
			continue
		}
		fp, err := r.Identification.Record.Fingerprint()
		if err != nil {
			log.Warnf("unable to fingerprint %q: %+v", r.Input, err)
			out = append(out, r)
			continue
		}
		key := strconv.FormatUint(fp, 16)
		if seen.Has(key) {
			continue
		}
		seen.Add(key)
		out = append(out, r)
	}
	return out
}

func onlyResolved(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Resolved() {
			out = append(out, r)
		}
	}
	return out
}

// Identify resolves a single label against the embedded tables.
func Identify(input string) (*windows.Identification, error) {
	i, err := DefaultIdentifier()
	if err != nil {
		return nil, err
	}
	return i.Identify(input)
}

// Resolve returns the canonical record of a single label, resolved against the embedded tables.
func Resolve(input string) (record.Record, error) {
	id, err := Identify(input)
	if err != nil {
		return record.Record{}, err
	}
	return id.Record, nil
}

// IdentifyAll resolves a batch of labels against the embedded tables.
func IdentifyAll(inputs []string) ([]Result, error) {
	i, err := DefaultIdentifier()
	if err != nil {
		return nil, err
	}
	return i.IdentifyAll(inputs), nil
}

func SetLogger(l logger.Logger) {
	log.Set(l)
}

func SetBus(b *partybus.Bus) {
	bus.SetPublisher(b)
}
