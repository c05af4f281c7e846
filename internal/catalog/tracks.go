package catalog

// Track keys in canonical audit order.
const (
	TrackProtocol       = "protocol"
	TrackCircuits       = "circuits"
	TrackImplementation = "implementation"
	TrackInfra          = "infra"
	TrackGovernance     = "governance"
)

// AuditTrack is one category of security review with its nominal effort.
type AuditTrack struct {
	Key         string  `json:"key" yaml:"key"`
	Name        string  `json:"name" yaml:"name"`
	BaseDays    float64 `json:"baseDays" yaml:"baseDays"`
	Description string  `json:"description" yaml:"description"`
}

var auditTracks = []AuditTrack{
	{
		Key:         TrackProtocol,
		Name:        "Protocol & Soundness Review",
		BaseDays:    10.0,
		Description: "Core protocol logic, liveness & safety properties, invariants.",
	},
	{
		Key:         TrackCircuits,
		Name:        "Circuits / Crypto Review",
		BaseDays:    12.0,
		Description: "ZK/FHE circuits, gadgets, and cryptographic assumptions.",
	},
	{
		Key:         TrackImplementation,
		Name:        "Implementation Review",
		BaseDays:    14.0,
		Description: "Smart contracts, on-chain logic, and critical off-chain components.",
	},
	{
		Key:         TrackInfra,
		Name:        "Infrastructure & DevOps Review",
		BaseDays:    6.0,
		Description: "RPC, sequencers, key management, monitoring, and ops runbooks.",
	},
	{
		Key:         TrackGovernance,
		Name:        "Governance & Upgradeability Review",
		BaseDays:    4.0,
		Description: "Admin keys, upgrade paths, governance contracts and voting logic.",
	},
}

// Tracks returns every audit track in canonical order.
func Tracks() []AuditTrack {
	return append([]AuditTrack(nil), auditTracks...)
}

// TrackKeys returns the canonical track key sequence.
func TrackKeys() []string {
	keys := make([]string, 0, len(auditTracks))
	for _, track := range auditTracks {
		keys = append(keys, track.Key)
	}
	return keys
}

// LookupTrack returns the track registered under key.
func LookupTrack(key string) (AuditTrack, error) {
	for _, track := range auditTracks {
		if track.Key == key {
			return track, nil
		}
	}
	return AuditTrack{}, &NotFoundError{Kind: recordKindTrackConstant, Key: key}
}
