package config

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/anchore/osident/internal"
)

var ErrApplicationConfigNotFound = fmt.Errorf("application config not found")

type defaultValueLoader interface {
	loadDefaultValues(*viper.Viper)
}

type parser interface {
	parseConfigValues() error
}

// Application is the full set of options, read from flags, env vars and the config file.
type Application struct {
	ConfigPath         string         `yaml:",omitempty" json:"configPath"`                                                          // the location where the application config was read from (either from -c or discovered while loading)
	Output             string         `yaml:"output" json:"output" mapstructure:"output"`                                           // -o, the Presenter hint string to use for report formatting
	File               string         `yaml:"file" json:"file" mapstructure:"file"`                                                 // --file, the file to write report output to
	OutputTemplateFile string         `yaml:"output-template-file" json:"output-template-file" mapstructure:"output-template-file"` // -t, the template file to use for formatting the final report
	Quiet              bool           `yaml:"quiet" json:"quiet" mapstructure:"quiet"`                                              // -q, indicates to not show any status output to stderr
	FailOnUnrecognized bool           `yaml:"fail-on-unrecognized" json:"fail-on-unrecognized" mapstructure:"fail-on-unrecognized"` // --fail-on-unrecognized, fail the run when any label does not resolve
	Distinct           bool           `yaml:"distinct" json:"distinct" mapstructure:"distinct"`                                     // --distinct, report each canonical name once
	CheckForAppUpdate  bool           `yaml:"check-for-app-update" json:"check-for-app-update" mapstructure:"check-for-app-update"` // whether to check for an application update on start up or not
	CliOptions         CliOnlyOptions `yaml:"-" json:"-"`
	Log                logging        `yaml:"log" json:"log" mapstructure:"log"`
	Tables             tables         `yaml:"tables" json:"tables" mapstructure:"tables"`
	Dev                development    `yaml:"dev" json:"dev" mapstructure:"dev"`
}

func newApplicationConfig(v *viper.Viper, cliOpts CliOnlyOptions) *Application {
	config := &Application{
		CliOptions: cliOpts,
	}
	config.loadDefaultValues(v)

	return config
}

func LoadApplicationConfig(v *viper.Viper, cliOpts CliOnlyOptions) (*Application, error) {
	// a missing config is fine: defaults and flags still apply
	config := newApplicationConfig(v, cliOpts)

	if err := readConfig(v, cliOpts.ConfigPath); err != nil && !errors.Is(err, ErrApplicationConfigNotFound) {
		return nil, err
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	config.ConfigPath = v.ConfigFileUsed()

	if err := config.parseConfigValues(); err != nil {
		return nil, fmt.Errorf("invalid application config: %w", err)
	}

	return config, nil
}

// loadDefaultValues registers defaults for top level keys and for every section that has its own.
func (cfg Application) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("output", "text")
	v.SetDefault("fail-on-unrecognized", false)
	v.SetDefault("distinct", false)
	v.SetDefault("check-for-app-update", true)

	value := reflect.ValueOf(cfg)
	for i := 0; i < value.NumField(); i++ {
		if section, ok := value.Field(i).Interface().(defaultValueLoader); ok {
			section.loadDefaultValues(v)
		}
	}
}

// parseConfigValues resolves derived values once everything has been read. Sections implement parser on a pointer
// receiver, so fields are visited by address.
func (cfg *Application) parseConfigValues() error {
	if err := cfg.parseLogLevelOption(); err != nil {
		return err
	}

	value := reflect.ValueOf(cfg).Elem()
	for i := 0; i < value.NumField(); i++ {
		section, ok := value.Field(i).Addr().Interface().(parser)
		if !ok {
			continue
		}
		if err := section.parseConfigValues(); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *Application) parseLogLevelOption() error {
	return cfg.Log.resolveLevel(cfg.Quiet, cfg.CliOptions.Verbosity)
}

func (cfg Application) String() string {
	out, err := yaml.Marshal(&cfg)
	if err != nil {
		return err.Error()
	}
	return string(out)
}

// configLocation is a directory and file name (without extension) where a config may be found.
type configLocation struct {
	dirs []string
	name string
}

// configSearchPath lists where a config is looked for when none is given explicitly, most specific first.
func configSearchPath() []configLocation {
	dotName := "." + internal.ApplicationName
	locations := []configLocation{
		{dirs: []string{"."}, name: dotName},
		{dirs: []string{dotName}, name: "config"},
	}

	if home, err := homedir.Dir(); err == nil {
		locations = append(locations, configLocation{dirs: []string{home}, name: dotName})
	}

	xdgDirs := []string{path.Join(xdg.ConfigHome, internal.ApplicationName)}
	for _, dir := range xdg.ConfigDirs {
		xdgDirs = append(xdgDirs, path.Join(dir, internal.ApplicationName))
	}
	return append(locations, configLocation{dirs: xdgDirs, name: "config"})
}

// readConfig reads the given config file, or the first config found on the search path.
func readConfig(v *viper.Viper, configPath string) error {
	v.AutomaticEnv()
	v.SetEnvPrefix(internal.ApplicationName)
	// nested keys map to env vars, e.g. log.level -> OSIDENT_LOG_LEVEL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("unable to read application config=%q : %w", configPath, err)
		}
		return nil
	}

	for _, loc := range configSearchPath() {
		for _, dir := range loc.dirs {
			v.AddConfigPath(dir)
		}
		v.SetConfigName(loc.name)

		err := v.ReadInConfig()
		if err == nil {
			return nil
		}
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("unable to parse config=%q: %w", v.ConfigFileUsed(), err)
		}
	}

	return ErrApplicationConfigNotFound
}
