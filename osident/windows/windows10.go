package windows

import (
	"github.com/anchore/osident/osident/buildindex"
	"github.com/anchore/osident/osident/label"
	"github.com/anchore/osident/osident/osierr"
	"github.com/anchore/osident/osident/record"
)

const (
	windows10IoTCore     = "Windows 10 IoT Core"
	windows10IoTSelector = "iot"
)

type windows10Recognizer struct {
	index *buildindex.Index
}

func (r *windows10Recognizer) Family() Family {
	return Windows10
}

// Recognize accepts "10-<release>[-<e|w|iot>[-<lts|ltsc|ltsb|gac|ga|sac>]]" labels and free-text descriptions of a
// Windows 10 installation.
func (r *windows10Recognizer) Recognize(l label.Label) (record.Record, error) {
	if !l.IsStructured() {
		return r.recognizeFreeText(l.Raw())
	}

	if _, err := matchDiscriminator(Windows10, l, "10"); err != nil {
		return record.Record{}, err
	}
	if err := checkTokens(Windows10, l, 2, 4); err != nil {
		return record.Record{}, err
	}

	release, _ := l.Token(1)
	if release == "" {
		return record.Record{}, osierr.UnrecognizedField(string(Windows10), l.Raw(), "release", release)
	}

	product := Windows10.ProductName()
	var editions []record.Edition
	code, present := l.Token(2)
	if present && code == windows10IoTSelector {
		product = windows10IoTCore
	} else {
		var err error
		editions, err = windows10Editions.editionsOrAll(l.Raw(), code, present)
		if err != nil {
			return record.Record{}, err
		}
	}

	channel := channelOrDefault(release, ChannelGAC, ChannelSAC)
	if selector, ok := l.Token(3); ok {
		requested, known := selectedChannel(selector)
		if !known {
			return record.Record{}, osierr.UnrecognizedField(string(Windows10), l.Raw(), "channel", selector)
		}
		channel = ReconcileChannel(release, requested)
	}

	return record.New(product, release, channel, editions...), nil
}

func (r *windows10Recognizer) recognizeFreeText(text string) (record.Record, error) {
	if err := guardProduct(Windows10, text, "10"); err != nil {
		return record.Record{}, err
	}

	edition, err := extractEdition(Windows10, windows10EditionRules, text)
	if err != nil {
		return record.Record{}, err
	}

	release, err := extractRelease(Windows10, r.index, text)
	if err != nil {
		return record.Record{}, err
	}

	channel, ok := extractChannel(text)
	if !ok {
		channel = ChannelGAC
	}

	return record.New(Windows10.ProductName(), release, channel, edition), nil
}
