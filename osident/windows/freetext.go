package windows

import (
	"regexp"
	"strings"

	"github.com/anchore/osident/internal/stringutil"
	"github.com/anchore/osident/osident/buildindex"
	"github.com/anchore/osident/osident/keyword"
	"github.com/anchore/osident/osident/osierr"
	"github.com/anchore/osident/osident/record"
)

var productPattern = regexp.MustCompile(`(?i)\bWindows\s+(?P<product>Server|XP|Vista|[0-9]+(?:\.[0-9]+)*)\b`)

// the only dotted number that names a product; any other dotted number is a kernel version such as "10.0.19045"
const windows81 = "8.1"

// namedProduct returns the Windows product named in free text ("11", "10", "Server", "XP" ...), if any. A kernel
// version after "Windows" names no product.
func namedProduct(text string) (string, bool) {
	groups := stringutil.MatchCaptureGroups(productPattern, text)
	product := strings.ToLower(groups["product"])
	if product == "" {
		return "", false
	}
	if strings.Contains(product, ".") && product != windows81 {
		return "", false
	}
	return product, true
}

// guardProduct rejects text that names a Windows product other than the expected one. Text naming no product at all
// is accepted.
func guardProduct(f Family, text, expected string) error {
	product, ok := namedProduct(text)
	if ok && product != strings.ToLower(expected) {
		return osierr.DiscriminatorMismatch(string(f), text)
	}
	return nil
}

// free-text edition rules, most specific phrase first
var (
	windows11EditionRules = keyword.Rules{
		keyword.NewRule(string(ProForWorkstations), "Pro for Workstations"),
		keyword.NewRule(string(ProEducation), "Pro Education"),
		keyword.NewRule(string(EnterpriseMultiSession), "Enterprise multi-session"),
		keyword.NewRule(string(IoTEnterprise), "IoT Enterprise"),
		keyword.NewRule(string(Education), "Education Edition", "Education"),
		keyword.NewRule(string(Enterprise), "Enterprise Edition", "Enterprise"),
		keyword.NewRule(string(Home), "Home Edition", "Home"),
		keyword.NewRule(string(Pro), "Professional Edition", "Professional", "Pro"),
	}

	windows10EditionRules = keyword.Rules{
		keyword.NewRule(string(ProForWorkstations), "Pro for Workstations"),
		keyword.NewRule(string(ProEducation), "Pro Education"),
		keyword.NewRule(string(EnterpriseIoT), "Enterprise IoT", "IoT Enterprise"),
		keyword.NewRule(string(Education), "Education Edition", "Education"),
		keyword.NewRule(string(Enterprise), "Enterprise Edition", "Enterprise"),
		keyword.NewRule(string(Home), "Home Edition", "Home"),
		keyword.NewRule(string(Pro), "Professional Edition", "Professional", "Pro"),
	}

	serverEditionRules = keyword.Rules{
		keyword.NewRule(string(Datacenter), "Datacenter Edition", "Datacenter"),
		keyword.NewRule(string(Standard), "Standard Edition", "Standard"),
	}
)

// free-text channel rules
var (
	generalAvailabilityWords = keyword.New("General Availability", "GA")
	longTermWords            = keyword.New("LTSC")
	serverWords              = keyword.New("Server")
)

// extractEdition applies the ordered edition rules; failing to find an edition is fatal for the recognizer.
func extractEdition(f Family, rules keyword.Rules, text string) (record.Edition, error) {
	value, ok := rules.First(text)
	if !ok {
		return "", osierr.UnresolvableField(string(f), "edition", text)
	}
	return record.Edition(value), nil
}

// extractRelease resolves the first five digit build through the index, or else looks for a release label of the
// family. Failing both is fatal for the recognizer.
func extractRelease(f Family, idx *buildindex.Index, text string) (string, error) {
	if build, ok := buildindex.FindBuild(text); ok {
		if idx == nil {
			return "", osierr.UnknownBuild(string(f), text, build)
		}
		release, err := idx.Resolve(build)
		if err != nil {
			return "", osierr.UnknownBuild(string(f), text, build)
		}
		return release, nil
	}
	if idx != nil {
		if release, ok := idx.MatchRelease(text); ok {
			return release, nil
		}
	}
	return "", osierr.UnresolvableField(string(f), "release", text)
}

// extractChannel finds an explicit channel phrase; ok is false when none is present and the caller falls back to the
// family default.
func extractChannel(text string) (record.Channel, bool) {
	switch {
	case generalAvailabilityWords.Match(text):
		return ChannelGAC, true
	case longTermWords.Match(text):
		return ChannelLTSC, true
	}
	return record.Channel{}, false
}
