package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcher_Match(t *testing.T) {
	tests := []struct {
		name     string
		phrases  []string
		input    string
		expected bool
	}{
		{
			name:     "whole word",
			phrases:  []string{"Pro"},
			input:    "Microsoft Windows 10 Pro 17763",
			expected: true,
		},
		{
			name:     "prefix of a longer word is not a match",
			phrases:  []string{"Pro"},
			input:    "Windows 11 Professional Edition",
			expected: false,
		},
		{
			name:     "multi word phrase",
			phrases:  []string{"Pro for Workstations"},
			input:    "Windows 11 Pro for Workstations 23H2",
			expected: true,
		},
		{
			name:     "case sensitive",
			phrases:  []string{"Enterprise"},
			input:    "windows 11 enterprise",
			expected: false,
		},
		{
			name:     "phrase with hyphen",
			phrases:  []string{"Enterprise multi-session"},
			input:    "Windows 11 Enterprise multi-session 22H2",
			expected: true,
		},
		{
			name:     "bounded by punctuation",
			phrases:  []string{"GA"},
			input:    "(Build 26100) GA (General Availability)",
			expected: true,
		},
		{
			name:     "no phrases",
			phrases:  nil,
			input:    "anything",
			expected: false,
		},
		{
			name:     "blank phrases are ignored",
			phrases:  []string{"", "  "},
			input:    "anything at all",
			expected: false,
		},
		{
			name:     "regex metacharacters are literal",
			phrases:  []string{"8.1"},
			input:    "Windows 801",
			expected: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, New(test.phrases...).Match(test.input))
		})
	}
}

func TestMatcher_Find(t *testing.T) {
	m := New("Pro", "Pro Education", "Professional")

	found, ok := m.Find("Windows 11 Pro Education 22H2")
	assert.True(t, ok)
	assert.Equal(t, "Pro Education", found)

	found, ok = m.Find("Windows 10 Professional Edition")
	assert.True(t, ok)
	assert.Equal(t, "Professional", found)

	_, ok = m.Find("Windows 10 Home")
	assert.False(t, ok)
}

func TestNewCaseInsensitive(t *testing.T) {
	m := NewCaseInsensitive("21H2", "22H2")

	found, ok := m.Find("Microsoft Windows 11 Enterprise 21h2")
	assert.True(t, ok)
	assert.Equal(t, "21h2", found)

	assert.False(t, m.Match("Microsoft Windows 11 Enterprise 121H2"))
}

func TestMatcher_Phrases(t *testing.T) {
	m := New("b", "a", "")
	assert.Equal(t, []string{"b", "a"}, m.Phrases())

	var nilMatcher *Matcher
	assert.Nil(t, nilMatcher.Phrases())
	assert.False(t, nilMatcher.Match("a"))
}
