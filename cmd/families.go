package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/anchore/osident/internal/bus"
	"github.com/anchore/osident/internal/ui"
	"github.com/anchore/osident/osident"
	"github.com/anchore/osident/osident/tables"
	"github.com/anchore/osident/osident/windows"
)

var familiesOutputFormat string

var familiesCmd = &cobra.Command{
	Use:   "families [FAMILY...]",
	Short: "list the product families in the order labels are tried, with their table coverage",
	Args:  validateFamiliesArgs,
	RunE: func(_ *cobra.Command, args []string) error {
		reporter, closer, err := reportWriter()
		defer func() {
			_ = closer()
		}()
		if err != nil {
			return err
		}

		return eventLoop(
			startFamiliesWorker(args),
			setupSignals(),
			eventSubscription,
			func() {},
			ui.Select(isVerbose(), appConfig.Quiet, reporter)...,
		)
	},
}

func init() {
	familiesCmd.Flags().StringVarP(&familiesOutputFormat, "output", "o", "text", "format to show the families (available=[text, json])")

	rootCmd.AddCommand(familiesCmd)
}

func validateFamiliesArgs(_ *cobra.Command, args []string) error {
	for _, name := range args {
		if _, ok := windows.ParseFamily(name); !ok {
			return fmt.Errorf("unknown family %q (run 'families' for the full list)", name)
		}
	}
	return nil
}

// selectFamilies keeps the named families, in precedence order. No names keeps all of them.
func selectFamilies(all []familyCoverage, names []string) []familyCoverage {
	if len(names) == 0 {
		return all
	}
	wanted := make(map[windows.Family]bool, len(names))
	for _, name := range names {
		if f, ok := windows.ParseFamily(name); ok {
			wanted[f] = true
		}
	}
	var out []familyCoverage
	for _, c := range all {
		if wanted[windows.Family(c.Family)] {
			out = append(out, c)
		}
	}
	return out
}

// familyCoverage describes one family and the correspondence table backing its build numbers.
type familyCoverage struct {
	Precedence int    `json:"precedence"`
	Family     string `json:"family"`
	Product    string `json:"product"`
	Table      string `json:"table,omitempty"`
	Releases   int    `json:"releases"`
	Builds     int    `json:"builds"`
}

func startFamiliesWorker(names []string) <-chan error {
	errs := make(chan error)
	go func() {
		defer close(errs)

		set, err := tables.Load(afero.NewOsFs(), appConfig.Tables.Dir)
		if err != nil {
			errs <- fmt.Errorf("failed to load correspondence tables: %w", err)
			return
		}

		buf := &bytes.Buffer{}
		if err := writeFamilies(buf, familiesOutputFormat, selectFamilies(coverage(set), names)); err != nil {
			errs <- err
			return
		}

		bus.NonRootCommandFinished(buf.String())
	}()
	return errs
}

func coverage(set *tables.Set) []familyCoverage {
	tbl := osident.WindowsTables(set)

	var out []familyCoverage
	for idx, f := range windows.Precedence {
		c := familyCoverage{
			Precedence: idx + 1,
			Family:     f.String(),
			Product:    f.ProductName(),
		}
		if index := tbl.Index(f); index != nil {
			c.Table = index.Family()
			c.Releases = len(index.Releases())
			c.Builds = len(index.Builds())
		}
		out = append(out, c)
	}
	return out
}

func writeFamilies(w io.Writer, format string, families []familyCoverage) error {
	switch format {
	case "text":
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"#", "Family", "Product", "Table", "Releases", "Builds"})
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

		for _, f := range families {
			table.Append([]string{
				strconv.Itoa(f.Precedence),
				f.Family,
				f.Product,
				f.Table,
				countOrBlank(f.Table, f.Releases),
				countOrBlank(f.Table, f.Builds),
			})
		}
		table.Render()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", " ")
		if err := enc.Encode(families); err != nil {
			return fmt.Errorf("failed to show families: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	return nil
}

func countOrBlank(table string, n int) string {
	if table == "" {
		return ""
	}
	return strconv.Itoa(n)
}
