package windows

import (
	"strings"

	"github.com/anchore/osident/osident/buildindex"
	"github.com/anchore/osident/osident/label"
	"github.com/anchore/osident/osident/osierr"
	"github.com/anchore/osident/osident/record"
)

var windows11Channels = map[string]record.Channel{
	"lts":  ChannelLTSC,
	"ltsc": ChannelLTSC,
	"gac":  ChannelGAC,
	"ga":   ChannelGAC,
}

type windows11Recognizer struct {
	index *buildindex.Index
}

func (r *windows11Recognizer) Family() Family {
	return Windows11
}

// Recognize accepts "11-<release>[-<e|iot|w>[-<lts|ltsc|gac|ga>]]" labels and free-text descriptions of a
// Windows 11 installation.
func (r *windows11Recognizer) Recognize(l label.Label) (record.Record, error) {
	if !l.IsStructured() {
		return r.recognizeFreeText(l.Raw())
	}

	if _, err := matchDiscriminator(Windows11, l, "11"); err != nil {
		return record.Record{}, err
	}
	if err := checkTokens(Windows11, l, 2, 4); err != nil {
		return record.Record{}, err
	}

	release, _ := l.Token(1)
	if release == "" {
		return record.Record{}, osierr.UnrecognizedField(string(Windows11), l.Raw(), "release", release)
	}

	code, present := l.Token(2)
	editions, err := windows11Editions.editionsOrAll(l.Raw(), code, present)
	if err != nil {
		return record.Record{}, err
	}

	channel := channelOrDefault(release, ChannelGAC, ChannelGAC, ChannelLTSC)
	if selector, ok := l.Token(3); ok {
		s, known := windows11Channels[strings.ToLower(selector)]
		if !known {
			return record.Record{}, osierr.UnrecognizedField(string(Windows11), l.Raw(), "channel", selector)
		}
		channel = s
	}

	return record.New(Windows11.ProductName(), release, channel, editions...), nil
}

func (r *windows11Recognizer) recognizeFreeText(text string) (record.Record, error) {
	if err := guardProduct(Windows11, text, "11"); err != nil {
		return record.Record{}, err
	}

	edition, err := extractEdition(Windows11, windows11EditionRules, text)
	if err != nil {
		return record.Record{}, err
	}

	release, err := extractRelease(Windows11, r.index, text)
	if err != nil {
		return record.Record{}, err
	}

	channel, ok := extractChannel(text)
	if !ok {
		channel = ChannelGAC
	}

	return record.New(Windows11.ProductName(), release, channel, edition), nil
}
