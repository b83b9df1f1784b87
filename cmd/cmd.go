package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wagoodman/go-partybus"

	"github.com/anchore/osident/internal"
	"github.com/anchore/osident/internal/config"
	"github.com/anchore/osident/internal/log"
	"github.com/anchore/osident/internal/logger"
	"github.com/anchore/osident/internal/version"
	"github.com/anchore/osident/osident"
	"github.com/anchore/osident/osident/osierr"
)

var (
	appConfig         *config.Application
	eventBus          *partybus.Bus
	eventSubscription *partybus.Subscription
	cliOpts           = config.CliOnlyOptions{}
)

func init() {
	cobra.OnInitialize(
		initRootCmdConfigOptions,
		initAppConfig,
		initLogging,
		logAppConfig,
		logAppVersion,
		initEventBus,
	)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var expected osierr.ExpectedErr
		if !errors.As(err, &expected) {
			log.Errorf("run failed: %+v", err)
		}
		_ = stderrPrintLnf("%s", err.Error())
		os.Exit(1)
	}
}

func initRootCmdConfigOptions() {
	if err := bindRootConfigOptions(rootCmd.Flags()); err != nil {
		panic(err)
	}
}

func initAppConfig() {
	cfg, err := config.LoadApplicationConfig(viper.GetViper(), cliOpts)
	if err != nil {
		fmt.Printf("failed to load application config: \n\t%+v\n", err)
		os.Exit(1)
	}
	appConfig = cfg
}

func initLogging() {
	cfg := logger.LogrusConfig{
		EnableConsole: (appConfig.Log.FileLocation == "" || appConfig.CliOptions.Verbosity > 0) && !appConfig.Quiet,
		EnableFile:    appConfig.Log.FileLocation != "",
		Level:         appConfig.Log.LevelOpt,
		Structured:    appConfig.Log.Structured,
		FileLocation:  appConfig.Log.FileLocation,
	}

	logWrapper, err := logger.NewLogrusLogger(cfg)
	if err != nil {
		_ = stderrPrintLnf("unable to setup logging: %+v", err)
		os.Exit(1)
	}

	osident.SetLogger(logWrapper.Run())
}

func logAppConfig() {
	log.Debugf("application config:\n%+v", color.Magenta.Sprint(appConfig.String()))
}

func logAppVersion() {
	versionInfo := version.FromBuild()
	log.Infof("%s version: %s", internal.ApplicationName, versionInfo.Version)

	for _, line := range versionTree(versionInfo) {
		log.Debugf("  %s", line)
	}
}

// versionTree renders version details as the branches of a tree.
func versionTree(v version.Version) []string {
	fields := v.Fields()
	lines := make([]string, 0, len(fields))
	for idx, f := range fields {
		branch := "├──"
		if idx == len(fields)-1 {
			branch = "└──"
		}
		lines = append(lines, fmt.Sprintf("%s %s: %s", branch, f.Name, f.Value))
	}
	return lines
}

func initEventBus() {
	eventBus = partybus.NewBus()
	eventSubscription = eventBus.Subscribe()

	osident.SetBus(eventBus)
}

func stderrPrintLnf(message string, args ...interface{}) error {
	if !strings.HasSuffix(message, "\n") {
		message += "\n"
	}
	_, err := fmt.Fprintf(os.Stderr, message, args...)
	return err
}
