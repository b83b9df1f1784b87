package osierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		target   error
		expected bool
	}{
		{
			name:     "same kind matches sentinel",
			err:      UnknownBuild("windows-11", "Windows 11 Pro 99999", "99999"),
			target:   ErrUnknownBuild,
			expected: true,
		},
		{
			name:     "different kind does not match",
			err:      UnknownBuild("windows-11", "Windows 11 Pro 99999", "99999"),
			target:   ErrMalformedLabel,
			expected: false,
		},
		{
			name:     "wrapped error matches",
			err:      fmt.Errorf("resolving: %w", MalformedLabel("windows-10", "10-1-2-3-4", 5)),
			target:   ErrMalformedLabel,
			expected: true,
		},
		{
			name: "aggregate exposes its causes",
			err: UnrecognizedOS("Windows 11 (Build 12345)", multierror.Append(nil,
				DiscriminatorMismatch("windows-10", "Windows 11 (Build 12345)"),
				UnknownBuild("windows-11", "Windows 11 (Build 12345)", "12345"),
			)),
			target:   ErrUnknownBuild,
			expected: true,
		},
		{
			name:     "aggregate matches its own kind",
			err:      UnrecognizedOS("eol-1", nil),
			target:   ErrUnrecognizedOS,
			expected: true,
		},
		{
			name:     "non osierr target",
			err:      UnrecognizedOS("eol-1", nil),
			target:   errors.New("unrecognized operating system"),
			expected: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, errors.Is(test.err, test.target))
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{
			err:      UnrecognizedOS("eol-1", nil),
			expected: `unrecognized operating system: "eol-1"`,
		},
		{
			err:      UnrecognizedField("windows-11", "11-24h2-x", "editions", "x"),
			expected: `unrecognized field (family="windows-11" field="editions" value="x"): "11-24h2-x"`,
		},
		{
			err:      UnknownBuild("windows-10", "Windows 10 Pro 12345", "12345"),
			expected: `unknown build (family="windows-10" field="release" value="12345"): "Windows 10 Pro 12345"`,
		},
		{
			err:      UnknownBuild("windows-10", "", "12345"),
			expected: `unknown build (family="windows-10" field="release" value="12345")`,
		},
		{
			err:      DiscriminatorMismatch("windows-7", "8"),
			expected: `discriminator mismatch (family="windows-7"): "8"`,
		},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			assert.Equal(t, test.expected, test.err.Error())
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "malformed label", KindMalformedLabel.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}

func TestExpectedErr(t *testing.T) {
	err := NewExpectedErr("discovered %d unrecognized label: %w", 1, UnrecognizedOS("eol-1", nil))

	assert.Equal(t, `discovered 1 unrecognized label: unrecognized operating system: "eol-1"`, err.Error())
	assert.True(t, errors.Is(err, ErrUnrecognizedOS))

	var expected ExpectedErr
	assert.True(t, errors.As(fmt.Errorf("run: %w", err), &expected))
}
