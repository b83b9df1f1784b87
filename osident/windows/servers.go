package windows

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hashicorp/go-version"

	"github.com/anchore/osident/internal/stringutil"
	"github.com/anchore/osident/osident/buildindex"
	"github.com/anchore/osident/osident/label"
	"github.com/anchore/osident/osident/osierr"
	"github.com/anchore/osident/osident/record"
)

const r2Selector = "r2"

var (
	yearPattern            = regexp.MustCompile(`^[0-9]{4}$`)
	firstLongTermYear      = version.Must(version.NewVersion("2019"))
	semiAnnualPattern      = regexp.MustCompile(`^(?P<year>[0-9]{2})(?:(?P<month>[0-9]{2})|[hH](?P<half>[12]))$`)
	firstSemiAnnual        = version.Must(version.NewVersion("1709"))
	serverChannelSelectors = map[string]record.Channel{
		"sac": ChannelServerSAC,
		"ac":  ChannelServerAC,
	}
)

// longTermServerYear reports whether the token is a four digit year of a long-term server release (2019 onwards).
func longTermServerYear(token string) bool {
	if !yearPattern.MatchString(token) {
		return false
	}
	v, err := version.NewVersion(token)
	if err != nil {
		return false
	}
	return v.Compare(firstLongTermYear) >= 0
}

// semiAnnualServerRelease reports whether the token names a semi-annual server release: YYMM from 1709 on, or YYH1/YYH2.
func semiAnnualServerRelease(token string) bool {
	groups := stringutil.MatchCaptureGroups(semiAnnualPattern, token)
	if groups["year"] == "" {
		return false
	}
	if groups["half"] != "" {
		return true
	}
	month, err := strconv.Atoi(groups["month"])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	v, err := version.NewVersion(token)
	if err != nil {
		return false
	}
	return v.Compare(firstSemiAnnual) >= 0
}

func serverProduct(year string) string {
	return fmt.Sprintf("%s %s", Server2019Plus.ProductName(), year)
}

type server2019PlusRecognizer struct {
	index *buildindex.Index
}

func (r *server2019PlusRecognizer) Family() Family {
	return Server2019Plus
}

// Recognize accepts "<year>[-<release>]" labels for years 2019 onwards, the bare year, and free-text descriptions
// naming "Server".
func (r *server2019PlusRecognizer) Recognize(l label.Label) (record.Record, error) {
	if !l.IsStructured() {
		if longTermServerYear(l.Raw()) {
			return record.New(serverProduct(l.Raw()), "", ChannelServerLTSC, server2019PlusEditions...), nil
		}
		return r.recognizeFreeText(l.Raw())
	}

	year, _ := l.Token(0)
	if !longTermServerYear(year) {
		return record.Record{}, osierr.DiscriminatorMismatch(string(Server2019Plus), l.Raw())
	}
	if err := checkTokens(Server2019Plus, l, 1, 2); err != nil {
		return record.Record{}, err
	}

	release, _ := l.Token(1)
	if _, semiAnnual := serverChannelSelectors[strings.ToLower(release)]; semiAnnual {
		// a semi-annual channel selector means this is not a long-term release
		return record.Record{}, osierr.DiscriminatorMismatch(string(Server2019Plus), l.Raw())
	}
	if release == "" {
		return record.Record{}, osierr.UnrecognizedField(string(Server2019Plus), l.Raw(), "release", release)
	}

	return record.New(serverProduct(year), release, ChannelServerLTSC, server2019PlusEditions...), nil
}

func (r *server2019PlusRecognizer) recognizeFreeText(text string) (record.Record, error) {
	if err := guardProduct(Server2019Plus, text, "Server"); err != nil {
		return record.Record{}, err
	}
	if !serverWords.Match(text) {
		return record.Record{}, osierr.DiscriminatorMismatch(string(Server2019Plus), text)
	}

	edition, err := extractEdition(Server2019Plus, serverEditionRules, text)
	if err != nil {
		return record.Record{}, err
	}

	year, err := extractRelease(Server2019Plus, r.index, text)
	if err != nil {
		return record.Record{}, err
	}

	return record.New(serverProduct(year), "", ChannelServerLTSC, edition), nil
}

// recognizeServerSemiAnnual accepts "<release>-<sac|ac>" labels; the channel decides the editions.
func recognizeServerSemiAnnual(l label.Label) (record.Record, error) {
	if !l.IsStructured() {
		return record.Record{}, osierr.DiscriminatorMismatch(string(ServerSemiAnnual), l.Raw())
	}
	release, _ := l.Token(0)
	if !semiAnnualServerRelease(release) {
		return record.Record{}, osierr.DiscriminatorMismatch(string(ServerSemiAnnual), l.Raw())
	}
	if err := checkTokens(ServerSemiAnnual, l, 2, 2); err != nil {
		return record.Record{}, err
	}

	selector, _ := l.Token(1)
	channel, ok := serverChannelSelectors[strings.ToLower(selector)]
	if !ok {
		return record.Record{}, osierr.UnrecognizedField(string(ServerSemiAnnual), l.Raw(), "channel", selector)
	}

	editions := server2019PlusEditions
	if channel == ChannelServerAC {
		editions = []record.Edition{Datacenter}
	}
	return record.New(ServerSemiAnnual.ProductName(), release, channel, editions...), nil
}

// serverRecognizer handles "<year>[-<release>]" server labels, e.g. "2016" or "2008-sp2".
type serverRecognizer struct {
	family        Family
	discriminator string
	editions      []record.Edition
	channel       record.Channel
}

func newServerRecognizer(f Family, discriminator string, editions []record.Edition, channel record.Channel) *serverRecognizer {
	return &serverRecognizer{family: f, discriminator: discriminator, editions: editions, channel: channel}
}

func (r *serverRecognizer) Family() Family {
	return r.family
}

func (r *serverRecognizer) Recognize(l label.Label) (record.Record, error) {
	bare, err := matchDiscriminator(r.family, l, r.discriminator)
	if err != nil {
		return record.Record{}, err
	}
	if bare {
		return record.New(r.family.ProductName(), "", r.channel, r.editions...), nil
	}
	if err := checkTokens(r.family, l, 1, 2); err != nil {
		return record.Record{}, err
	}
	release, _ := l.Token(1)
	if release == "" {
		return record.Record{}, osierr.UnrecognizedField(string(r.family), l.Raw(), "release", release)
	}
	return record.New(r.family.ProductName(), release, r.channel, r.editions...), nil
}

// serverR2Recognizer handles "<year>-r2[-<release>]" server labels.
type serverR2Recognizer struct {
	family        Family
	discriminator string
	editions      []record.Edition
}

func newServerR2Recognizer(f Family, discriminator string, editions []record.Edition) *serverR2Recognizer {
	return &serverR2Recognizer{family: f, discriminator: discriminator, editions: editions}
}

func (r *serverR2Recognizer) Family() Family {
	return r.family
}

func (r *serverR2Recognizer) Recognize(l label.Label) (record.Record, error) {
	if !l.IsStructured() {
		return record.Record{}, osierr.DiscriminatorMismatch(string(r.family), l.Raw())
	}
	first, _ := l.Token(0)
	second, _ := l.Token(1)
	if first != r.discriminator || strings.ToLower(second) != r2Selector {
		return record.Record{}, osierr.DiscriminatorMismatch(string(r.family), l.Raw())
	}
	if err := checkTokens(r.family, l, 2, 3); err != nil {
		return record.Record{}, err
	}

	release, present := l.Token(2)
	if present && release == "" {
		return record.Record{}, osierr.UnrecognizedField(string(r.family), l.Raw(), "release", release)
	}
	return record.New(r.family.ProductName(), release, ChannelServerLTSC, r.editions...), nil
}

// recognizeServer2003 accepts "2003", "2003-<release>", "2003-r2" and "2003-r2-<release>".
func recognizeServer2003(l label.Label) (record.Record, error) {
	bare, err := matchDiscriminator(Server2003, l, "2003")
	if err != nil {
		return record.Record{}, err
	}
	product := Server2003.ProductName()
	if bare {
		return record.New(product, "", ChannelGA, server2003Editions...), nil
	}
	if err := checkTokens(Server2003, l, 2, 3); err != nil {
		return record.Record{}, err
	}

	next := 1
	if second, _ := l.Token(1); strings.ToLower(second) == r2Selector {
		product += " R2"
		next = 2
	} else if l.Len() == 3 {
		return record.Record{}, osierr.UnrecognizedField(string(Server2003), l.Raw(), "variant", second)
	}

	release, present := l.Token(next)
	if present && release == "" {
		return record.Record{}, osierr.UnrecognizedField(string(Server2003), l.Raw(), "release", release)
	}
	return record.New(product, release, ChannelGA, server2003Editions...), nil
}
