package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anchore/osident/osident"
	"github.com/anchore/osident/osident/osierr"
)

func TestReadLabels(t *testing.T) {
	labels, err := readLabels(strings.NewReader("11-24h2-e\n\n  2008-r2 \r\nWindows 11 Pro (Build 22631)"))
	require.NoError(t, err)
	assert.Equal(t, []string{"11-24h2-e", "", "  2008-r2 ", "Windows 11 Pro (Build 22631)"}, labels)
}

func TestUnrecognizedErr(t *testing.T) {
	tests := []struct {
		name     string
		results  []osident.Result
		expected string
	}{
		{
			name:    "everything resolved",
			results: []osident.Result{},
		},
		{
			name: "one unrecognized",
			results: []osident.Result{
				{Input: "eol-1", Err: osierr.UnrecognizedOS("eol-1", nil)},
			},
			expected: `discovered 1 unrecognized label: "eol-1"`,
		},
		{
			name: "several unrecognized",
			results: []osident.Result{
				{Input: "eol-1", Err: osierr.UnrecognizedOS("eol-1", nil)},
				{Input: "12-25h2", Err: osierr.UnrecognizedOS("12-25h2", nil)},
			},
			expected: `discovered 2 unrecognized labels: "eol-1", "12-25h2"`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := unrecognizedErr(test.results)
			if test.expected == "" {
				assert.NoError(t, err)
				return
			}
			var expected osierr.ExpectedErr
			require.True(t, errors.As(err, &expected))
			assert.Equal(t, test.expected, err.Error())
		})
	}
}

func TestSetRootFlags_EveryFlagIsBound(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	setRootFlags(flags)

	var names []string
	flags.VisitAll(func(f *pflag.Flag) {
		names = append(names, f.Name)
	})

	require.Len(t, rootConfigKeys, len(names))
	for _, name := range names {
		assert.Contains(t, rootConfigKeys, name)
	}
}
