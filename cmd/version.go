package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/anchore/osident/internal"
	"github.com/anchore/osident/internal/version"
	"github.com/anchore/osident/osident/windows"
)

var versionOutputFormat string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "show the version",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return printVersion(os.Stdout, versionOutputFormat)
	},
}

func init() {
	versionCmd.Flags().StringVarP(&versionOutputFormat, "output", "o", "text", "format to show version information (available=[text, json])")

	rootCmd.AddCommand(versionCmd)
}

func printVersion(w io.Writer, format string) error {
	versionInfo := version.FromBuild()
	switch format {
	case "text":
		rows := append([]version.Field{{Name: "Application", Value: internal.ApplicationName}}, versionInfo.Fields()...)
		rows = append(rows, version.Field{Name: "Supported Families", Value: strconv.Itoa(len(windows.Precedence))})
		for _, row := range rows {
			if _, err := fmt.Fprintf(w, "%-21s %s\n", row.Name+":", row.Value); err != nil {
				return fmt.Errorf("failed to show version information: %w", err)
			}
		}
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", " ")
		err := enc.Encode(&struct {
			version.Version
			Application       string `json:"application"`
			SupportedFamilies int    `json:"supportedFamilies"`
		}{
			Version:           versionInfo,
			Application:       internal.ApplicationName,
			SupportedFamilies: len(windows.Precedence),
		})
		if err != nil {
			return fmt.Errorf("failed to show version information: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	return nil
}
