package config

import (
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadApplicationConfig_FromFile(t *testing.T) {
	cfg, err := LoadApplicationConfig(viper.New(), CliOnlyOptions{ConfigPath: "test-fixtures/config.yaml"})
	require.NoError(t, err)

	home, err := homedir.Dir()
	require.NoError(t, err)

	assert.Equal(t, "test-fixtures/config.yaml", cfg.ConfigPath)
	assert.Equal(t, "json", cfg.Output)
	assert.True(t, cfg.Distinct)
	assert.True(t, cfg.FailOnUnrecognized)
	assert.True(t, cfg.CheckForAppUpdate)
	assert.Equal(t, filepath.Join(home, "osident-tables"), cfg.Tables.Dir)
	assert.Equal(t, logrus.DebugLevel, cfg.Log.LevelOpt)
}

func TestLoadApplicationConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cliOpts CliOnlyOptions
	}{
		{
			name:    "missing explicit config",
			cliOpts: CliOnlyOptions{ConfigPath: "test-fixtures/does-not-exist.yaml"},
		},
		{
			name:    "malformed config",
			cliOpts: CliOnlyOptions{ConfigPath: "test-fixtures/bad.yaml"},
		},
		{
			name:    "both profilers",
			cliOpts: CliOnlyOptions{ConfigPath: "test-fixtures/profile-both.yaml"},
		},
		{
			name:    "log level with verbosity",
			cliOpts: CliOnlyOptions{ConfigPath: "test-fixtures/config.yaml", Verbosity: 1},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadApplicationConfig(viper.New(), test.cliOpts)
			assert.Error(t, err)
		})
	}
}

func TestParseLogLevelOption(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Application
		expected logrus.Level
		wantErr  require.ErrorAssertionFunc
	}{
		{
			name:     "default",
			expected: logrus.WarnLevel,
			wantErr:  require.NoError,
		},
		{
			name:     "single verbose",
			cfg:      Application{CliOptions: CliOnlyOptions{Verbosity: 1}},
			expected: logrus.InfoLevel,
			wantErr:  require.NoError,
		},
		{
			name:     "very verbose",
			cfg:      Application{CliOptions: CliOnlyOptions{Verbosity: 3}},
			expected: logrus.DebugLevel,
			wantErr:  require.NoError,
		},
		{
			name:     "quiet wins",
			cfg:      Application{Quiet: true, CliOptions: CliOnlyOptions{Verbosity: 2}},
			expected: logrus.PanicLevel,
			wantErr:  require.NoError,
		},
		{
			name:     "explicit level",
			cfg:      Application{Log: logging{Level: "ERROR"}},
			expected: logrus.ErrorLevel,
			wantErr:  require.NoError,
		},
		{
			name:    "bad level",
			cfg:     Application{Log: logging{Level: "chatty"}},
			wantErr: require.Error,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.cfg.parseLogLevelOption()
			test.wantErr(t, err)
			if err != nil {
				return
			}
			assert.Equal(t, test.expected, test.cfg.Log.LevelOpt)
			assert.NotEmpty(t, test.cfg.Log.Level)
		})
	}
}

func TestApplication_String(t *testing.T) {
	cfg := Application{Output: "table", Tables: tables{Dir: "/etc/osident"}}
	s := cfg.String()
	assert.Contains(t, s, "output: table")
	assert.Contains(t, s, "dir: /etc/osident")
}
