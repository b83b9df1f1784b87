package presenter

import (
	"strings"
)

const (
	unknownFormat  format = "unknown"
	textFormat     format = "text"
	tableFormat    format = "table"
	jsonFormat     format = "json"
	templateFormat format = "template"
)

// format is a dedicated type to represent a specific kind of presenter output format.
type format string

func (f format) String() string {
	return string(f)
}

// parse returns the presenter.format specified by the given user input.
func parse(userInput string) format {
	switch strings.ToLower(strings.TrimSpace(userInput)) {
	case "":
		return textFormat
	case textFormat.String():
		return textFormat
	case tableFormat.String():
		return tableFormat
	case jsonFormat.String():
		return jsonFormat
	case templateFormat.String():
		return templateFormat
	default:
		return unknownFormat
	}
}

// AvailableFormats is a list of presenter format options available to users.
var AvailableFormats = []format{
	textFormat,
	tableFormat,
	jsonFormat,
	templateFormat,
}
