package ui

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/gookit/color"
	"github.com/wagoodman/go-partybus"

	"github.com/anchore/osident/internal"
	"github.com/anchore/osident/internal/version"
	"github.com/anchore/osident/osident/event"
	"github.com/anchore/osident/osident/event/parsers"
)

func handleReportReady(e partybus.Event, reportOutput io.Writer) error {
	pres, err := parsers.ParseReportReady(e)
	if err != nil {
		return fmt.Errorf("bad %s event: %w", e.Type, err)
	}

	if err := pres.Present(reportOutput); err != nil {
		return fmt.Errorf("unable to show report: %w", err)
	}
	return nil
}

func handleNonRootCommandFinished(e partybus.Event, reportOutput io.Writer) error {
	result, err := parsers.ParseNonRootCommandFinished(e)
	if err != nil {
		return fmt.Errorf("bad %s event: %w", e.Type, err)
	}

	if _, err := reportOutput.Write([]byte(*result)); err != nil {
		return fmt.Errorf("unable to show %s output: %w", e.Type, err)
	}
	return nil
}

func updateAvailableMessage(e partybus.Event) (string, error) {
	newVersion, err := parsers.ParseAppUpdateAvailable(e)
	if err != nil {
		return "", fmt.Errorf("bad %s event: %w", e.Type, err)
	}
	return fmt.Sprintf("You're currently running %s version %s and a new version is available: %s", internal.ApplicationName, version.FromBuild().Version, newVersion), nil
}

func summaryMessage(s event.Summary, colorize bool) string {
	resolved := fmt.Sprintf("%s resolved", humanize.Comma(int64(s.Resolved)))
	unresolved := fmt.Sprintf("%s unrecognized", humanize.Comma(int64(s.Unresolved)))
	if colorize {
		resolved = color.Green.Sprint(resolved)
		if s.Unresolved > 0 {
			unresolved = color.Red.Sprint(unresolved)
		}
	}
	return fmt.Sprintf("%s %s: %s, %s (%s distinct)",
		humanize.Comma(int64(s.Total)),
		pluralize(s.Total, "label", "labels"),
		resolved,
		unresolved,
		humanize.Comma(int64(s.Distinct)),
	)
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
