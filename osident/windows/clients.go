package windows

import (
	"strings"

	"github.com/scylladb/go-set/strset"

	"github.com/anchore/osident/osident/label"
	"github.com/anchore/osident/osident/osierr"
	"github.com/anchore/osident/osident/record"
)

// servicePackRecognizer handles products identified by a discriminator and an optional service pack, e.g. "7-sp1"
// or "5-sp1a". The bare discriminator selects the original release.
type servicePackRecognizer struct {
	family        Family
	discriminator string
	editions      []record.Edition
	releases      *strset.Set
}

func newServicePackRecognizer(f Family, discriminator string, editions []record.Edition, releases ...string) *servicePackRecognizer {
	r := &servicePackRecognizer{
		family:        f,
		discriminator: discriminator,
		editions:      editions,
		releases:      strset.New(),
	}
	for _, rel := range releases {
		r.releases.Add(strings.ToUpper(rel))
	}
	return r
}

func (r *servicePackRecognizer) Family() Family {
	return r.family
}

func (r *servicePackRecognizer) Recognize(l label.Label) (record.Record, error) {
	bare, err := matchDiscriminator(r.family, l, r.discriminator)
	if err != nil {
		return record.Record{}, err
	}
	if bare {
		return record.New(r.family.ProductName(), "", ChannelGA, r.editions...), nil
	}
	if err := checkTokens(r.family, l, 2, 2); err != nil {
		return record.Record{}, err
	}

	token, _ := l.Token(1)
	if !r.releases.Has(strings.ToUpper(token)) {
		return record.Record{}, osierr.UnrecognizedField(string(r.family), l.Raw(), "release", token)
	}
	return record.New(r.family.ProductName(), token, ChannelGA, r.editions...), nil
}

// Windows 8 has no structured form: only the bare "8" and "8.1" discriminators are recognized.
func recognizeWindows8(l label.Label) (record.Record, error) {
	if l.IsStructured() {
		if first, _ := l.Token(0); first == "8" {
			return record.Record{}, osierr.MalformedLabel(string(Windows8), l.Raw(), l.Len())
		}
		return record.Record{}, osierr.DiscriminatorMismatch(string(Windows8), l.Raw())
	}

	switch l.Raw() {
	case "8":
		return record.New(Windows8.ProductName(), "", ChannelGA, windows8Editions...), nil
	case "8.1":
		return record.New("Windows 8.1", "", ChannelGA, windows8Editions...), nil
	}
	return record.Record{}, osierr.DiscriminatorMismatch(string(Windows8), l.Raw())
}
