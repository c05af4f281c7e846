package planner

import (
	"sort"
	"strconv"

	"github.com/temirov/scopeplanner/internal/catalog"
)

const (
	roundingPrecisionConstant = 1
	floatFormatConstant       = 'f'
	floatBitSizeConstant      = 64
)

// ComputePlan resolves an audit plan for the given attributes. It never fails:
// attribute validation belongs to the caller.
func ComputePlan(attributes ProjectAttributes) AuditPlan {
	tracks := catalog.Tracks()

	rawDays := make(map[string]float64, len(tracks))
	for _, track := range tracks {
		rawDays[track.Key] = track.BaseDays * attributes.Style.Multiplier(track.Key)
	}

	for _, adjustment := range featureAdjustments {
		if adjustment.enabled(attributes) {
			rawDays[adjustment.trackKey] *= adjustment.factor
		}
	}

	globalFactors := []float64{attributes.Maturity.Factor(), TeamFactor(attributes.TeamSize)}
	for _, factor := range globalFactors {
		for trackKey := range rawDays {
			rawDays[trackKey] *= factor
		}
	}

	estimates := make([]TrackEstimate, 0, len(tracks))
	totalDays := 0.0
	for _, track := range tracks {
		roundedDays := RoundTenth(rawDays[track.Key])
		totalDays += roundedDays
		estimates = append(estimates, TrackEstimate{
			Key:           track.Key,
			Name:          track.Name,
			Description:   track.Description,
			EstimatedDays: roundedDays,
		})
	}

	sort.SliceStable(estimates, func(leftIndex int, rightIndex int) bool {
		return estimates[leftIndex].EstimatedDays > estimates[rightIndex].EstimatedDays
	})

	return AuditPlan{
		Style:              attributes.Style.Key,
		StyleName:          attributes.Style.Name,
		StyleDescription:   attributes.Style.Description,
		UsesZK:             attributes.UsesZK,
		UsesFHE:            attributes.UsesFHE,
		HasBridge:          attributes.HasBridge,
		HasGovernance:      attributes.HasGovernance,
		MultiChain:         attributes.MultiChain,
		TeamSize:           attributes.TeamSize,
		Maturity:           attributes.Maturity,
		Tracks:             estimates,
		TotalEstimatedDays: RoundTenth(totalDays),
		SuggestedOrder:     suggestedOrder(estimates),
	}
}

// RoundTenth rounds value to one decimal place using the shortest correctly
// rounded decimal form, so exact binary ties go to the even digit.
func RoundTenth(value float64) float64 {
	formatted := strconv.FormatFloat(value, floatFormatConstant, roundingPrecisionConstant, floatBitSizeConstant)
	rounded, parseError := strconv.ParseFloat(formatted, floatBitSizeConstant)
	if parseError != nil {
		return value
	}
	return rounded
}

// suggestedOrder ignores effort: audits always run in canonical track order.
func suggestedOrder(estimates []TrackEstimate) []string {
	present := make(map[string]struct{}, len(estimates))
	for _, estimate := range estimates {
		present[estimate.Key] = struct{}{}
	}

	order := make([]string, 0, len(estimates))
	for _, trackKey := range catalog.TrackKeys() {
		if _, found := present[trackKey]; found {
			order = append(order, trackKey)
		}
	}
	return order
}
