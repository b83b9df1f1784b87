package models

import (
	"github.com/anchore/osident/osident"
	"github.com/anchore/osident/osident/record"
)

// Document represents the report of a batch of resolved labels. It is the JSON payload and the template data.
type Document struct {
	Results    []Result   `json:"results"`
	Descriptor Descriptor `json:"descriptor"`
}

// Descriptor describes what created the document as well as surrounding metadata
type Descriptor struct {
	Name          string      `json:"name"`
	Version       string      `json:"version"`
	Configuration interface{} `json:"configuration,omitempty"`
}

// Result is the outcome of a single label. Unresolved labels only carry the input and the error.
type Result struct {
	Input    string          `json:"input"`
	Family   string          `json:"family,omitempty"`
	Vendor   string          `json:"vendor,omitempty"`
	Product  string          `json:"product,omitempty"`
	Release  string          `json:"release,omitempty"`
	Editions []string        `json:"editions,omitempty"`
	Channel  *record.Channel `json:"channel,omitempty"`
	Lines    []string        `json:"lines,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// NewDocument creates a new Document object to be used for reporting.
func NewDocument(results []osident.Result, descriptor Descriptor) Document {
	doc := Document{
		Results:    make([]Result, 0, len(results)),
		Descriptor: descriptor,
	}
	for _, r := range results {
		doc.Results = append(doc.Results, NewResult(r))
	}
	return doc
}

func NewResult(r osident.Result) Result {
	if !r.Resolved() {
		out := Result{Input: r.Input}
		if r.Err != nil {
			out.Error = r.Err.Error()
		}
		return out
	}

	rec := r.Identification.Record
	channel := rec.Channel
	var editions []string
	for _, e := range rec.Editions() {
		editions = append(editions, string(e))
	}

	return Result{
		Input:    r.Input,
		Family:   string(r.Identification.Family),
		Vendor:   rec.Vendor,
		Product:  rec.Product,
		Release:  rec.Release,
		Editions: editions,
		Channel:  &channel,
		Lines:    rec.Lines(),
	}
}
