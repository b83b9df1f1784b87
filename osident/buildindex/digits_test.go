package buildindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindBuild(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		found    bool
	}{
		{input: "Windows 11 Professional Edition (Build 26100) (64 Bit)", expected: "26100", found: true},
		{input: "Microsoft Windows 11 Enterprise 22000.1219", expected: "22000", found: true},
		{input: "Microsoft Windows 10 Pro 17763", expected: "17763", found: true},
		{input: "Windows 10 123456 and 19045", expected: "19045", found: true},
		{input: "Windows 10 1234", found: false},
		{input: "Microsoft Windows 11 Enterprise 21H2", found: false},
		{input: "", found: false},
		{input: "12345", expected: "12345", found: true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			actual, found := FindBuild(test.input)
			assert.Equal(t, test.found, found)
			assert.Equal(t, test.expected, actual)
		})
	}
}
