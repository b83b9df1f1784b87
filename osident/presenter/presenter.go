package presenter

import (
	"io"

	"github.com/anchore/osident/osident"
	"github.com/anchore/osident/osident/presenter/json"
	"github.com/anchore/osident/osident/presenter/models"
	"github.com/anchore/osident/osident/presenter/table"
	"github.com/anchore/osident/osident/presenter/template"
	"github.com/anchore/osident/osident/presenter/text"
)

// Presenter is the main interface other Presenters need to implement
type Presenter interface {
	Present(io.Writer) error
}

// GetPresenter retrieves a Presenter that matches a CLI option
func GetPresenter(c Config, results []osident.Result, descriptor models.Descriptor) Presenter {
	if c.distinct {
		results = osident.Distinct(results)
	}

	switch c.format {
	case jsonFormat:
		return json.NewPresenter(results, descriptor)
	case tableFormat:
		return table.NewPresenter(results)
	case templateFormat:
		return template.NewPresenter(results, descriptor, c.templateFilePath)
	default:
		return text.NewPresenter(results)
	}
}
