package windows

import (
	"strings"

	"github.com/anchore/osident/osident/record"
)

// Client channels. The general availability and semi-annual channels are implied by a client product and are not
// rendered; long-term servicing channels are.
var (
	ChannelGAC  = record.Channel{Name: "GAC", IsDefault: true}
	ChannelSAC  = record.Channel{Name: "SAC", IsDefault: true}
	ChannelLTSB = record.Channel{Name: "LTSB", IsLongTerm: true}
	ChannelLTSC = record.Channel{Name: "LTSC", IsLongTerm: true}
)

// Server channels. Each server family has exactly one servicing model, so none of them is rendered.
var (
	ChannelServerLTSC = record.Channel{Name: "LTSC", IsDefault: true, IsLongTerm: true}
	ChannelServerLTSB = record.Channel{Name: "LTSB", IsDefault: true, IsLongTerm: true}
	ChannelServerSAC  = record.Channel{Name: "SAC", IsDefault: true}
	ChannelServerAC   = record.Channel{Name: "AC", IsDefault: true}
)

// ChannelGA is the single channel of products that predate servicing channels.
var ChannelGA = record.Channel{Name: "GA", IsDefault: true}

// releases up to and including this one shipped long-term servicing as LTSB
const longTermBranchCutoff = "1607"

// channel selectors accepted in the fourth position of a structured client label
var (
	longTermSelectors   = map[string]bool{"lts": true, "ltsc": true, "ltsb": true}
	generalSelectors    = map[string]bool{"gac": true, "ga": true}
	semiAnnualSelectors = map[string]bool{"sac": true}
)

// isSemiAnnual reports whether the release is a first-half-of-year feature update (e.g. "21H1").
func isSemiAnnual(release string) bool {
	return strings.HasSuffix(strings.ToUpper(release), "H1")
}

// InferChannel derives the channel from the release label alone. Only semi-annual releases carry enough information;
// for everything else ok is false and the caller falls back to the family default.
func InferChannel(release string) (record.Channel, bool) {
	if isSemiAnnual(release) {
		return ChannelSAC, true
	}
	return record.Channel{}, false
}

// ReconcileChannel combines a release with an explicitly requested channel. A semi-annual release is always SAC;
// a long-term request on a release up to 1607 is LTSB; anything else is LTSC. It never fails.
func ReconcileChannel(release string, requested record.Channel) record.Channel {
	switch {
	case isSemiAnnual(release):
		return ChannelSAC
	case strings.ToUpper(release) <= longTermBranchCutoff && requested.IsLongTerm:
		return ChannelLTSB
	default:
		return ChannelLTSC
	}
}

// channelOrDefault applies inference and falls back to the given default. An inferred channel outside of the
// family's channel set is ignored.
func channelOrDefault(release string, fallback record.Channel, allowed ...record.Channel) record.Channel {
	inferred, ok := InferChannel(release)
	if !ok {
		return fallback
	}
	for _, a := range allowed {
		if a == inferred {
			return inferred
		}
	}
	return fallback
}

// selectedChannel maps a structured channel selector to a client channel.
func selectedChannel(selector string) (record.Channel, bool) {
	s := strings.ToLower(selector)
	switch {
	case longTermSelectors[s]:
		return ChannelLTSC, true
	case generalSelectors[s]:
		return ChannelGAC, true
	case semiAnnualSelectors[s]:
		return ChannelSAC, true
	}
	return record.Channel{}, false
}
