package windows

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/anchore/osident/internal/log"
	"github.com/anchore/osident/osident/label"
	"github.com/anchore/osident/osident/osierr"
	"github.com/anchore/osident/osident/record"
)

// Identification pairs a resolved record with the family that produced it.
type Identification struct {
	Input  string
	Family Family
	Record record.Record
}

// Dispatcher tries an ordered list of recognizers and returns the first success. It holds no mutable state and is
// safe for concurrent use.
type Dispatcher struct {
	recognizers []Recognizer
}

// NewDispatcher creates a dispatcher over every family, in Precedence order, using the given build tables.
func NewDispatcher(tables Tables) *Dispatcher {
	byFamily := Recognizers(tables)
	ordered := make([]Recognizer, 0, len(Precedence))
	for _, f := range Precedence {
		r, ok := byFamily[f]
		if !ok {
			panic(fmt.Sprintf("no recognizer registered for family %q", f))
		}
		ordered = append(ordered, r)
	}
	return NewDispatcherFrom(ordered...)
}

// NewDispatcherFrom creates a dispatcher over the given recognizers, tried in the order given.
func NewDispatcherFrom(recognizers ...Recognizer) *Dispatcher {
	rs := make([]Recognizer, len(recognizers))
	copy(rs, recognizers)
	return &Dispatcher{recognizers: rs}
}

// Families returns the families this dispatcher tries, in order.
func (d *Dispatcher) Families() []Family {
	out := make([]Family, 0, len(d.recognizers))
	for _, r := range d.recognizers {
		out = append(out, r.Family())
	}
	return out
}

// Identify resolves the input to a canonical record. When no family accepts it, the error is a KindUnrecognizedOS
// error carrying every per-family failure.
func (d *Dispatcher) Identify(input string) (*Identification, error) {
	l := label.Parse(input)
	log.Debugf("identifying %q as %s label", input, l.Kind())

	var errs error
	for _, r := range d.recognizers {
		rec, err := r.Recognize(l)
		if err != nil {
			log.Debugf("  %s: %v", r.Family(), err)
			errs = multierror.Append(errs, err)
			continue
		}
		log.Debugf("  %s: resolved %q", r.Family(), input)
		return &Identification{
			Input:  input,
			Family: r.Family(),
			Record: rec,
		}, nil
	}

	return nil, osierr.UnrecognizedOS(input, errs)
}

// Resolve is Identify without the family.
func (d *Dispatcher) Resolve(input string) (record.Record, error) {
	id, err := d.Identify(input)
	if err != nil {
		return record.Record{}, err
	}
	return id.Record, nil
}
