package windows

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anchore/osident/osident/label"
	"github.com/anchore/osident/osident/osierr"
	"github.com/anchore/osident/osident/record"
)

func TestPrecedence_EveryFamilyRegisteredOnce(t *testing.T) {
	registered := Recognizers(Tables{})

	seen := make(map[Family]int)
	for _, f := range Precedence {
		seen[f]++
	}

	assert.Len(t, registered, len(Precedence))
	for f, r := range registered {
		assert.Equal(t, 1, seen[f], "family %q must appear exactly once in the precedence list", f)
		assert.Equal(t, f, r.Family())
		assert.NotEmpty(t, f.ProductName(), "family %q has no product name", f)
	}
}

func TestNewDispatcher_FollowsPrecedence(t *testing.T) {
	assert.Equal(t, Precedence, NewDispatcher(Tables{}).Families())
}

func TestDispatcher_FirstSuccessWins(t *testing.T) {
	var tried []Family
	fake := func(f Family, accept bool) Recognizer {
		return NewRecognizer(f, func(l label.Label) (record.Record, error) {
			tried = append(tried, f)
			if !accept {
				return record.Record{}, osierr.DiscriminatorMismatch(string(f), l.Raw())
			}
			return record.New(f.ProductName(), "", ChannelGA), nil
		})
	}

	d := NewDispatcherFrom(
		fake(Windows11, false),
		fake(Server2008R2, true),
		fake(Server2008, true),
	)

	id, err := d.Identify("anything")
	require.NoError(t, err)
	assert.Equal(t, Server2008R2, id.Family)
	assert.Equal(t, []Family{Windows11, Server2008R2}, tried)
}

func TestDispatcher_CollectsEveryFailure(t *testing.T) {
	d := NewDispatcherFrom(
		NewRecognizer(Windows11, func(l label.Label) (record.Record, error) {
			return record.Record{}, osierr.UnknownBuild(string(Windows11), l.Raw(), "12345")
		}),
		NewRecognizer(Windows10, func(l label.Label) (record.Record, error) {
			return record.Record{}, osierr.DiscriminatorMismatch(string(Windows10), l.Raw())
		}),
	)

	_, err := d.Identify("Windows 11 (Build 12345)")
	require.Error(t, err)
	assert.True(t, errors.Is(err, osierr.ErrUnrecognizedOS))
	assert.True(t, errors.Is(err, osierr.ErrUnknownBuild))
	assert.True(t, errors.Is(err, osierr.ErrDiscriminatorMismatch))

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 2)
}

func TestDispatcher_NoRecognizers(t *testing.T) {
	_, err := NewDispatcherFrom().Identify("11-24h2-e")
	require.Error(t, err)
	assert.True(t, errors.Is(err, osierr.ErrUnrecognizedOS))
}

func TestR2LabelsAreAcceptedByBothFamilies(t *testing.T) {
	recognizers := Recognizers(Tables{})

	tests := []struct {
		input string
		r2    Family
		base  Family
	}{
		{input: "2008-r2", r2: Server2008R2, base: Server2008},
		{input: "2012-r2", r2: Server2012R2, base: Server2012},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			l := label.Parse(test.input)

			r2, err := recognizers[test.r2].Recognize(l)
			require.NoError(t, err)
			assert.Equal(t, "", r2.Release)

			base, err := recognizers[test.base].Recognize(l)
			require.NoError(t, err)
			assert.Equal(t, "R2", base.Release)

			// the newer family is earlier in the precedence list, so it wins
			id, err := NewDispatcher(Tables{}).Identify(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.r2, id.Family)
		})
	}
}

func TestParseFamily(t *testing.T) {
	f, ok := ParseFamily("windows-server-2008-r2")
	assert.True(t, ok)
	assert.Equal(t, Server2008R2, f)

	_, ok = ParseFamily("windows-12")
	assert.False(t, ok)
}
