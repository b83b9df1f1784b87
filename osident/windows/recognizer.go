package windows

import (
	"github.com/anchore/osident/osident/buildindex"
	"github.com/anchore/osident/osident/label"
	"github.com/anchore/osident/osident/osierr"
	"github.com/anchore/osident/osident/record"
)

// Recognizer accepts or rejects a classified label for a single product family.
type Recognizer interface {
	Family() Family
	Recognize(l label.Label) (record.Record, error)
}

// Tables holds the build correspondence indexes of the families that resolve builds from free text.
type Tables struct {
	Windows11 *buildindex.Index
	Windows10 *buildindex.Index
	Server    *buildindex.Index
}

// Index returns the table of a build resolving family.
func (t Tables) Index(f Family) *buildindex.Index {
	switch f {
	case Windows11:
		return t.Windows11
	case Windows10:
		return t.Windows10
	case Server2019Plus:
		return t.Server
	}
	return nil
}

type recognizerFunc struct {
	family Family
	fn     func(label.Label) (record.Record, error)
}

func (r recognizerFunc) Family() Family {
	return r.family
}

func (r recognizerFunc) Recognize(l label.Label) (record.Record, error) {
	return r.fn(l)
}

// NewRecognizer adapts a function into a Recognizer.
func NewRecognizer(f Family, fn func(label.Label) (record.Record, error)) Recognizer {
	return recognizerFunc{family: f, fn: fn}
}

// Recognizers returns the recognizer of every family, keyed by family.
func Recognizers(tables Tables) map[Family]Recognizer {
	return map[Family]Recognizer{
		Windows11:        &windows11Recognizer{index: tables.Windows11},
		Windows10:        &windows10Recognizer{index: tables.Windows10},
		Windows8:         NewRecognizer(Windows8, recognizeWindows8),
		Windows7:         newServicePackRecognizer(Windows7, "7", windows7Editions, "SP1", "ESU1", "ESU2", "ESU3"),
		WindowsVista:     newServicePackRecognizer(WindowsVista, "6", windowsVistaEditions, "SP1", "SP2"),
		WindowsXP:        newServicePackRecognizer(WindowsXP, "5", windowsXPEditions, "SP1", "SP1a", "SP2", "SP3"),
		Server2019Plus:   &server2019PlusRecognizer{index: tables.Server},
		ServerSemiAnnual: NewRecognizer(ServerSemiAnnual, recognizeServerSemiAnnual),
		Server2016:       newServerRecognizer(Server2016, "2016", server2016Editions, ChannelServerLTSB),
		Server2012R2:     newServerR2Recognizer(Server2012R2, "2012", server2012Editions),
		Server2012:       newServerRecognizer(Server2012, "2012", server2012Editions, ChannelServerLTSC),
		Server2008R2:     newServerR2Recognizer(Server2008R2, "2008", server2008R2Editions),
		Server2008:       newServerRecognizer(Server2008, "2008", server2008Editions, ChannelServerLTSC),
		Server2003:       NewRecognizer(Server2003, recognizeServer2003),
		Windows2000:      newServicePackRecognizer(Windows2000, "2000", windows2000Editions, "SP1", "SP2", "SP3", "SP4"),
	}
}

// matchDiscriminator rejects free-text labels that are not exactly the family discriminator, and structured labels
// that do not start with it. It reports whether the label is the bare discriminator.
func matchDiscriminator(f Family, l label.Label, discriminator string) (bare bool, err error) {
	if !l.IsStructured() {
		if l.Raw() == discriminator {
			return true, nil
		}
		return false, osierr.DiscriminatorMismatch(string(f), l.Raw())
	}
	if first, _ := l.Token(0); first != discriminator {
		return false, osierr.DiscriminatorMismatch(string(f), l.Raw())
	}
	return false, nil
}

// checkTokens enforces the token count of a structured label.
func checkTokens(f Family, l label.Label, min, max int) error {
	if l.Len() < min || l.Len() > max {
		return osierr.MalformedLabel(string(f), l.Raw(), l.Len())
	}
	return nil
}
