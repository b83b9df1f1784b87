package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// logging configures how verbose the application is and where log entries are written.
type logging struct {
	Structured   bool         `yaml:"structured" json:"structured" mapstructure:"structured"` // emit entries as JSON objects
	LevelOpt     logrus.Level `yaml:"-" json:"-"`                                             // effective level, resolved after loading
	Level        string       `yaml:"level" json:"level" mapstructure:"level"`                // explicit level, cannot be combined with -v
	FileLocation string       `yaml:"file" json:"file" mapstructure:"file"`                   // also write entries to this file
}

func (cfg logging) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("log.level", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.structured", false)
}

// resolveLevel sets LevelOpt from the quiet flag, an explicit level or the -v count, in that order.
func (cfg *logging) resolveLevel(quiet bool, verbosity int) error {
	switch {
	case quiet:
		// nothing below panic is emitted, including to a log file
		cfg.LevelOpt = logrus.PanicLevel

	case cfg.Level != "":
		if verbosity > 0 {
			return fmt.Errorf("cannot explicitly set log level (cfg file or env var) and use -v flag together")
		}
		lvl, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return fmt.Errorf("bad log level configured (%q): %w", cfg.Level, err)
		}
		cfg.LevelOpt = lvl

	case verbosity == 1:
		cfg.LevelOpt = logrus.InfoLevel

	case verbosity >= 2:
		cfg.LevelOpt = logrus.DebugLevel

	default:
		cfg.LevelOpt = logrus.WarnLevel
	}

	if cfg.Level == "" {
		cfg.Level = cfg.LevelOpt.String()
	}
	return nil
}
