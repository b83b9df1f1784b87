package json

import (
	"encoding/json"
	"io"

	"github.com/anchore/osident/osident"
	"github.com/anchore/osident/osident/presenter/models"
)

// Presenter is a generic struct for holding fields needed for reporting
type Presenter struct {
	results    []osident.Result
	descriptor models.Descriptor
}

// NewPresenter creates a new JSON presenter
func NewPresenter(results []osident.Result, descriptor models.Descriptor) *Presenter {
	return &Presenter{
		results:    results,
		descriptor: descriptor,
	}
}

// Present creates a JSON-based reporting
func (p *Presenter) Present(output io.Writer) error {
	doc := models.NewDocument(p.results, p.descriptor)

	enc := json.NewEncoder(output)
	// prevent > and < from being escaped in the payload
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	return enc.Encode(&doc)
}
