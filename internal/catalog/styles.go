package catalog

// DefaultStyleKey names the style used when none is requested.
const DefaultStyleKey = "aztec"

// Multipliers carries one effort multiplier per audit track.
type Multipliers struct {
	Protocol       float64 `json:"protocol" yaml:"protocol"`
	Circuits       float64 `json:"circuits" yaml:"circuits"`
	Implementation float64 `json:"implementation" yaml:"implementation"`
	Infra          float64 `json:"infra" yaml:"infra"`
	Governance     float64 `json:"governance" yaml:"governance"`
}

// StyleProfile approximates a family of real-world project architectures.
type StyleProfile struct {
	Key         string      `json:"key" yaml:"key"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Multipliers Multipliers `json:"multipliers" yaml:"multipliers"`
}

// Multiplier returns the style multiplier for a track key. Keys outside the
// track catalog are neutral.
func (profile StyleProfile) Multiplier(trackKey string) float64 {
	switch trackKey {
	case TrackProtocol:
		return profile.Multipliers.Protocol
	case TrackCircuits:
		return profile.Multipliers.Circuits
	case TrackImplementation:
		return profile.Multipliers.Implementation
	case TrackInfra:
		return profile.Multipliers.Infra
	case TrackGovernance:
		return profile.Multipliers.Governance
	default:
		return 1.0
	}
}

var styleProfiles = []StyleProfile{
	{
		Key:         DefaultStyleKey,
		Name:        "Aztec-style privacy rollup",
		Description: "Privacy-first zk rollup with encrypted state and complex circuits.",
		Multipliers: Multipliers{Protocol: 1.2, Circuits: 1.5, Implementation: 1.15, Infra: 1.1, Governance: 1.0},
	},
	{
		Key:         "zama",
		Name:        "Zama-style FHE compute stack",
		Description: "FHE-heavy stack where on-chain code interacts with encrypted compute.",
		Multipliers: Multipliers{Protocol: 1.15, Circuits: 1.6, Implementation: 1.1, Infra: 1.15, Governance: 1.0},
	},
	{
		Key:         "soundness",
		Name:        "Soundness-first research lab",
		Description: "Specification-driven protocols with an emphasis on formal soundness.",
		Multipliers: Multipliers{Protocol: 1.4, Circuits: 1.2, Implementation: 1.1, Infra: 1.0, Governance: 1.1},
	},
}

// Styles returns every style profile; the first entry is the default.
func Styles() []StyleProfile {
	return append([]StyleProfile(nil), styleProfiles...)
}

// StyleKeys returns the registered style keys in catalog order.
func StyleKeys() []string {
	keys := make([]string, 0, len(styleProfiles))
	for _, profile := range styleProfiles {
		keys = append(keys, profile.Key)
	}
	return keys
}

// LookupStyle returns the style profile registered under key.
func LookupStyle(key string) (StyleProfile, error) {
	for _, profile := range styleProfiles {
		if profile.Key == key {
			return profile, nil
		}
	}
	return StyleProfile{}, &NotFoundError{Kind: recordKindStyleConstant, Key: key}
}
