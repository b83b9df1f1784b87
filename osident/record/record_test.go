package record

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	gac  = Channel{Name: "GAC", IsDefault: true}
	ltsc = Channel{Name: "LTSC", IsLongTerm: true}
)

func TestRecord_Lines(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		expected []string
	}{
		{
			name:   "one line per edition",
			record: New("Windows 11", "24h2", gac, "Education", "Enterprise"),
			expected: []string{
				"Microsoft Windows 11 Education 24H2",
				"Microsoft Windows 11 Enterprise 24H2",
			},
		},
		{
			name:   "non default channel is rendered",
			record: New("Windows 10", "1809", ltsc, "Enterprise"),
			expected: []string{
				"Microsoft Windows 10 Enterprise 1809 LTSC",
			},
		},
		{
			name:   "no editions renders a single line",
			record: New("Windows 10 IoT Core", "1507", gac),
			expected: []string{
				"Microsoft Windows 10 IoT Core 1507",
			},
		},
		{
			name:   "no release",
			record: New("Windows 8.1", "", Channel{Name: "GA", IsDefault: true}, "Professional"),
			expected: []string{
				"Microsoft Windows 8.1 Professional",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if d := cmp.Diff(test.expected, test.record.Lines()); d != "" {
				t.Errorf("unexpected lines (-want +got):\n%s", d)
			}
		})
	}
}

func TestRecord_LineCountMatchesEditions(t *testing.T) {
	editions := []Edition{"Home", "Pro", "Pro Education", "Pro for Workstations"}
	r := New("Windows 11", "23h2", gac, editions...)

	lines := r.Lines()
	require.Len(t, lines, len(editions))
	for _, l := range lines {
		assert.Contains(t, l, "23H2")
		assert.Contains(t, l, Vendor)
	}
}

func TestRecord_EditionsAreCopied(t *testing.T) {
	given := []Edition{"Home", "Pro"}
	r := New("Windows 10", "22h2", gac, given...)

	given[0] = "mutated"
	assert.Equal(t, []Edition{"Home", "Pro"}, r.Editions())

	got := r.Editions()
	got[1] = "mutated"
	assert.Equal(t, []Edition{"Home", "Pro"}, r.Editions())
}

func TestRecord_Fingerprint(t *testing.T) {
	a := New("Windows 10", "22h2", gac, "Home")
	b := New("Windows 10", "22H2", gac, "Home")
	c := New("Windows 10", "22H2", gac, "Pro")

	fa, err := a.Fingerprint()
	require.NoError(t, err)
	fb, err := b.Fingerprint()
	require.NoError(t, err)
	fc, err := c.Fingerprint()
	require.NoError(t, err)

	assert.Equal(t, fa, fb)
	assert.NotEqual(t, fa, fc)
}

func TestRecord_String(t *testing.T) {
	r := New("Windows Server 2016", "", Channel{Name: "LTSB", IsDefault: true, IsLongTerm: true}, "Datacenter", "Standard")
	assert.Equal(t, "Microsoft Windows Server 2016 Datacenter\nMicrosoft Windows Server 2016 Standard", r.String())
}

func TestNew_UpperCasesRelease(t *testing.T) {
	r := New("Windows XP", "sp1a", Channel{Name: "GA", IsDefault: true}, "Home")
	assert.Equal(t, "SP1A", r.Release)
	assert.Equal(t, []string{"Microsoft Windows XP Home SP1A"}, r.Lines())
}
