package presenter

import (
	"errors"
	"fmt"
	"os"
	"text/template"

	"github.com/mitchellh/go-homedir"

	presenterTemplate "github.com/anchore/osident/osident/presenter/template"
)

// Config is the presenter domain's configuration data structure.
type Config struct {
	format           format
	templateFilePath string
	distinct         bool
}

// ValidatedConfig returns a new, validated presenter.Config. If a valid Config cannot be created using the given input,
// an error is returned.
func ValidatedConfig(output string, outputTemplateFile string, distinct bool) (Config, error) {
	f := parse(output)

	if f == unknownFormat {
		return Config{}, fmt.Errorf("unsupported output format %q, supported formats are: %+v", output,
			AvailableFormats)
	}

	if f == templateFormat {
		if outputTemplateFile == "" {
			return Config{}, fmt.Errorf("must specify path to template file when using %q output format",
				templateFormat)
		}

		path, err := homedir.Expand(outputTemplateFile)
		if err != nil {
			return Config{}, fmt.Errorf("unable to expand path %q: %w", outputTemplateFile, err)
		}

		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("template file %q does not exist", outputTemplateFile)
		}

		if _, err := template.New("").Funcs(presenterTemplate.FuncMap).ParseFiles(path); err != nil {
			return Config{}, fmt.Errorf("unable to parse template: %w", err)
		}
	} else if outputTemplateFile != "" {
		return Config{}, fmt.Errorf("specified template file %q, but "+
			"%q output format must be selected in order to use a template file",
			outputTemplateFile, templateFormat)
	}

	return Config{
		format:           f,
		templateFilePath: outputTemplateFile,
		distinct:         distinct,
	}, nil
}
