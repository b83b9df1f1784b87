package config

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// tables configures where the build correspondence tables are read from.
type tables struct {
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"` // --tables-dir, a directory of table overrides; the embedded tables are used when empty
}

func (cfg tables) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("tables.dir", "")
}

func (cfg *tables) parseConfigValues() error {
	if cfg.Dir == "" {
		return nil
	}
	dir, err := homedir.Expand(cfg.Dir)
	if err != nil {
		return fmt.Errorf("unable to expand tables directory %q: %w", cfg.Dir, err)
	}
	cfg.Dir = dir
	return nil
}
