package stringutil

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchCaptureGroups(t *testing.T) {
	pattern := regexp.MustCompile(`^(?P<year>[0-9]{2})(?:(?P<month>[0-9]{2})|[hH](?P<half>[12]))$`)

	tests := []struct {
		name     string
		input    string
		expected map[string]string
	}{
		{
			name:     "year and month",
			input:    "1809",
			expected: map[string]string{"year": "18", "month": "09", "half": ""},
		},
		{
			name:     "year and half",
			input:    "20H2",
			expected: map[string]string{"year": "20", "month": "", "half": "2"},
		},
		{
			name:     "no match",
			input:    "sac",
			expected: map[string]string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, MatchCaptureGroups(pattern, test.input))
		})
	}
}

func TestMatchCaptureGroups_SkipsUnnamedGroups(t *testing.T) {
	pattern := regexp.MustCompile(`(Windows)\s+(?P<product>[0-9]+)`)
	assert.Equal(t, map[string]string{"product": "11"}, MatchCaptureGroups(pattern, "Windows 11 Pro"))
}

func TestTprintf(t *testing.T) {
	assert.Equal(t, "osident 11-24h2-e", Tprintf("{{.app}} {{.label}}", map[string]interface{}{"app": "osident", "label": "11-24h2-e"}))
	assert.Equal(t, "", Tprintf("{{.app", nil))
}
