package table

import (
	"io"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"github.com/anchore/osident/osident"
)

const unresolved = "(unrecognized)"

// Presenter renders every label against its canonical names, one row per edition.
type Presenter struct {
	results []osident.Result
}

// NewPresenter is a *Presenter constructor
func NewPresenter(results []osident.Result) *Presenter {
	return &Presenter{
		results: results,
	}
}

// Present creates a table-based report
func (p *Presenter) Present(output io.Writer) error {
	rows := p.rows()

	if len(rows) == 0 {
		_, err := io.WriteString(output, "No labels given\n")
		return err
	}

	table := tablewriter.NewWriter(output)
	table.SetHeader([]string{"Input", "Family", "Name"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	table.AppendBulk(rows)
	table.Render()

	return nil
}

func (p *Presenter) rows() [][]string {
	var rows [][]string
	for _, r := range p.results {
		if !r.Resolved() {
			rows = append(rows, []string{r.Input, "", color.Red.Sprint(unresolved)})
			continue
		}
		family := string(r.Identification.Family)
		for _, line := range r.Identification.Record.Lines() {
			rows = append(rows, []string{r.Input, family, line})
		}
	}
	return rows
}
