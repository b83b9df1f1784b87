package text

import (
	"fmt"
	"io"

	"github.com/anchore/osident/osident"
)

// Presenter writes one canonical name per line. Unresolved labels are left out of the report.
type Presenter struct {
	results []osident.Result
}

// NewPresenter is a *Presenter constructor
func NewPresenter(results []osident.Result) *Presenter {
	return &Presenter{
		results: results,
	}
}

// Present writes the canonical names of every resolved label.
func (p *Presenter) Present(output io.Writer) error {
	for _, r := range p.results {
		if !r.Resolved() {
			continue
		}
		for _, line := range r.Identification.Record.Lines() {
			if _, err := fmt.Fprintln(output, line); err != nil {
				return err
			}
		}
	}
	return nil
}
