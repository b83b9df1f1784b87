package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/profile"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/wagoodman/go-partybus"

	"github.com/anchore/osident/internal"
	"github.com/anchore/osident/internal/bus"
	"github.com/anchore/osident/internal/log"
	"github.com/anchore/osident/internal/stringutil"
	"github.com/anchore/osident/internal/ui"
	"github.com/anchore/osident/internal/version"
	"github.com/anchore/osident/osident"
	"github.com/anchore/osident/osident/event"
	"github.com/anchore/osident/osident/osierr"
	"github.com/anchore/osident/osident/presenter"
	"github.com/anchore/osident/osident/presenter/models"
	"github.com/anchore/osident/osident/tables"
)

var rootCmd = &cobra.Command{
	Use:   fmt.Sprintf("%s [LABEL...]", internal.ApplicationName),
	Short: "Resolve operating system labels into canonical Windows product names",
	Long: stringutil.Tprintf(`Resolve release tags and build descriptions into canonical Windows product names:
    {{.appName}} 11-24h2-e                                       a structured release tag
    {{.appName}} "Windows Server 2022 Standard (Build 20348)"    free text from an inventory tool
    {{.appName}} 2008-r2-sp1 7-sp1 10-1809-e-lts                 several labels at once
    cat labels.txt | {{.appName}}                                one label per line on stdin
`, map[string]interface{}{
		"appName": internal.ApplicationName,
	}),
	Args:          validateRootArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if appConfig.Dev.ProfileCPU {
			defer profile.Start(profile.CPUProfile).Stop()
		} else if appConfig.Dev.ProfileMem {
			defer profile.Start(profile.MemProfile).Stop()
		}

		return runDefaultCmd(cmd, args)
	},
}

func init() {
	setGlobalCliOptions()
	setRootFlags(rootCmd.Flags())
}

func setGlobalCliOptions() {
	rootCmd.PersistentFlags().StringVarP(&cliOpts.ConfigPath, "config", "c", "", "application config file")
	rootCmd.PersistentFlags().CountVarP(&cliOpts.Verbosity, "verbose", "v", "increase verbosity (-v = info, -vv = debug)")

	flag := "quiet"
	rootCmd.PersistentFlags().BoolP(flag, "q", false, "suppress all logging output")
	if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}
}

func setRootFlags(flags *pflag.FlagSet) {
	flags.StringP(
		"output", "o", "text",
		fmt.Sprintf("report output formatter, formats=%v", presenter.AvailableFormats),
	)

	flags.StringP(
		"template", "t", "",
		"specify the path to a Go template file (requires 'template' output to be selected)",
	)

	flags.StringP(
		"file", "", "",
		"file to write the report output to (default is STDOUT)",
	)

	flags.StringP(
		"tables-dir", "", "",
		"directory of YAML correspondence tables overriding the embedded ones",
	)

	flags.BoolP(
		"fail-on-unrecognized", "", false,
		"set the return code to 1 if any label is not recognized",
	)

	flags.BoolP(
		"distinct", "", false,
		"report each canonical name once, keeping the first label that produced it",
	)
}

// rootConfigKeys maps each root flag onto the application config key it sets.
var rootConfigKeys = map[string]string{
	"output":               "output",
	"template":             "output-template-file",
	"file":                 "file",
	"tables-dir":           "tables.dir",
	"fail-on-unrecognized": "fail-on-unrecognized",
	"distinct":             "distinct",
}

func bindRootConfigOptions(flags *pflag.FlagSet) error {
	for flag, key := range rootConfigKeys {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("unable to bind flag '%s': %w", flag, err)
		}
	}
	return nil
}

func validateRootArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !stdinPiped() {
		// in the case that no arguments are given we want to show the help text and return with a non-0 return code.
		if err := cmd.Help(); err != nil {
			return fmt.Errorf("unable to display help: %w", err)
		}
		return fmt.Errorf("at least one operating system label is required")
	}

	return cobra.ArbitraryArgs(cmd, args)
}

func runDefaultCmd(_ *cobra.Command, args []string) error {
	reporter, closer, err := reportWriter()
	defer func() {
		if err := closer(); err != nil {
			log.Warnf("unable to write to report destination: %+v", err)
		}
	}()

	if err != nil {
		return err
	}

	return eventLoop(
		startWorker(args, os.Stdin),
		setupSignals(),
		eventSubscription,
		func() {},
		ui.Select(isVerbose(), appConfig.Quiet, reporter)...,
	)
}

func isVerbose() bool {
	return appConfig.CliOptions.Verbosity > 0
}

func stdinPiped() bool {
	piped, err := internal.IsPipedInput()
	if err != nil {
		log.Debugf("unable to inspect stdin: %+v", err)
		return false
	}
	return piped
}

func startWorker(args []string, stdin io.Reader) <-chan error {
	errs := make(chan error)
	go func() {
		defer close(errs)

		checkForApplicationUpdate()

		presenterConfig, err := presenter.ValidatedConfig(appConfig.Output, appConfig.OutputTemplateFile, appConfig.Distinct)
		if err != nil {
			errs <- err
			return
		}

		labels := args
		if len(labels) == 0 {
			if labels, err = readLabels(stdin); err != nil {
				errs <- err
				return
			}
		}

		set, err := tables.Load(afero.NewOsFs(), appConfig.Tables.Dir)
		if err != nil {
			errs <- fmt.Errorf("failed to load correspondence tables: %w", err)
			return
		}

		results := osident.NewIdentifier(set).IdentifyAll(labels)

		bus.Publish(partybus.Event{
			Type:  event.ReportReady,
			Value: presenter.GetPresenter(presenterConfig, results, descriptor()),
		})

		if appConfig.FailOnUnrecognized {
			if err := unrecognizedErr(results); err != nil {
				errs <- err
			}
		}
	}()
	return errs
}

// readLabels reads one label per line; blank lines are dropped later on.
func readLabels(r io.Reader) ([]string, error) {
	var labels []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		labels = append(labels, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read labels: %w", err)
	}
	return labels, nil
}

func unrecognizedErr(results []osident.Result) error {
	summary := osident.Summarize(results)
	if summary.Unresolved == 0 {
		return nil
	}

	var inputs []string
	for _, r := range results {
		if !r.Resolved() {
			inputs = append(inputs, fmt.Sprintf("%q", r.Input))
		}
	}
	return osierr.NewExpectedErr("discovered %d unrecognized %s: %s", summary.Unresolved, pluralize(summary.Unresolved, "label", "labels"), strings.Join(inputs, ", "))
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

func descriptor() models.Descriptor {
	return models.Descriptor{
		Name:          internal.ApplicationName,
		Version:       version.FromBuild().Version,
		Configuration: appConfig,
	}
}

func checkForApplicationUpdate() {
	if !appConfig.CheckForAppUpdate {
		return
	}

	isAvailable, newVersion, err := version.IsUpdateAvailable(context.Background())
	if err != nil {
		// this should never stop the application
		log.Errorf("unable to check for an application update: %+v", err)
	}
	if isAvailable {
		log.Infof("new version of %s is available: %s", internal.ApplicationName, newVersion)

		bus.Publish(partybus.Event{
			Type:  event.AppUpdateAvailable,
			Value: newVersion,
		})
	} else {
		log.Debugf("no new %s update available", internal.ApplicationName)
	}
}
