package planner

import "github.com/temirov/scopeplanner/internal/catalog"

const (
	smallTeamUpperBoundConstant  = 3
	mediumTeamUpperBoundConstant = 8
	smallTeamFactorConstant      = 0.9
	mediumTeamFactorConstant     = 1.0
	largeTeamFactorConstant      = 1.1
)

// featureAdjustment scales one track when a project feature is enabled.
type featureAdjustment struct {
	enabled  func(ProjectAttributes) bool
	trackKey string
	factor   float64
}

// Adjustments are applied in slice order; zk and fhe both target circuits and
// compound.
var featureAdjustments = []featureAdjustment{
	{enabled: usesZK, trackKey: catalog.TrackCircuits, factor: 1.25},
	{enabled: usesFHE, trackKey: catalog.TrackCircuits, factor: 1.25},
	{enabled: usesFHE, trackKey: catalog.TrackInfra, factor: 1.15},
	{enabled: hasBridge, trackKey: catalog.TrackProtocol, factor: 1.20},
	{enabled: hasBridge, trackKey: catalog.TrackImplementation, factor: 1.15},
	{enabled: multiChain, trackKey: catalog.TrackInfra, factor: 1.20},
	{enabled: multiChain, trackKey: catalog.TrackProtocol, factor: 1.10},
	{enabled: hasGovernance, trackKey: catalog.TrackGovernance, factor: 1.5},
}

func usesZK(attributes ProjectAttributes) bool        { return attributes.UsesZK }
func usesFHE(attributes ProjectAttributes) bool       { return attributes.UsesFHE }
func hasBridge(attributes ProjectAttributes) bool     { return attributes.HasBridge }
func multiChain(attributes ProjectAttributes) bool    { return attributes.MultiChain }
func hasGovernance(attributes ProjectAttributes) bool { return attributes.HasGovernance }

// TeamFactor models coordination overhead: small teams move faster through an
// audit, large teams slower. It is applied uniformly across tracks.
func TeamFactor(teamSize int) float64 {
	switch {
	case teamSize <= smallTeamUpperBoundConstant:
		return smallTeamFactorConstant
	case teamSize <= mediumTeamUpperBoundConstant:
		return mediumTeamFactorConstant
	default:
		return largeTeamFactorConstant
	}
}
