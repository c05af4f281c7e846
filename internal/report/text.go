package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/temirov/scopeplanner/internal/planner"
)

const (
	textHeaderConstant              = "🧮 audit-scope-planner\n"
	textStyleTemplateConstant       = "Base style     : %s (%s)\n"
	textDescriptionTemplateConstant = "Description    : %s\n"
	textFlagsHeaderConstant         = "Project flags:\n"
	textFlagTemplateConstant        = "  %-22s: %s\n"
	textTeamSizeTemplateConstant    = "  %-22s: %d\n"
	textTotalTemplateConstant       = "Total estimated audit effort: %.1f person-days\n"
	textTracksHeaderConstant        = "Tracks (descending effort):\n"
	textTrackTemplateConstant       = "  - %s (%s): %.1f days\n"
	textTrackDescriptionTemplate    = "    %s\n"
	textOrderHeaderConstant         = "Suggested order of audits:\n"
	textOrderTemplateConstant       = "  %d. %s (%s)\n"
	textYesConstant                 = "yes"
	textNoConstant                  = "no"
	textUsesZKLabelConstant         = "Uses zk-proofs"
	textUsesFHELabelConstant        = "Uses FHE"
	textHasBridgeLabelConstant      = "Has bridge"
	textHasGovernanceLabelConstant  = "Has governance"
	textMultiChainLabelConstant     = "Multi-chain"
	textTeamSizeLabelConstant       = "Team size"
	textMaturityLabelConstant       = "Maturity"
	textSectionSeparatorConstant    = "\n"
)

// TextRenderer prints the multi-section console summary.
type TextRenderer struct{}

// Render writes the summary. Output is buffered so nothing is written when
// rendering fails.
func (TextRenderer) Render(destination io.Writer, plan planner.AuditPlan) error {
	buffer := &bytes.Buffer{}

	buffer.WriteString(textHeaderConstant)
	fmt.Fprintf(buffer, textStyleTemplateConstant, plan.StyleName, plan.Style)
	fmt.Fprintf(buffer, textDescriptionTemplateConstant, plan.StyleDescription)
	buffer.WriteString(textSectionSeparatorConstant)

	buffer.WriteString(textFlagsHeaderConstant)
	fmt.Fprintf(buffer, textFlagTemplateConstant, textUsesZKLabelConstant, yesNo(plan.UsesZK))
	fmt.Fprintf(buffer, textFlagTemplateConstant, textUsesFHELabelConstant, yesNo(plan.UsesFHE))
	fmt.Fprintf(buffer, textFlagTemplateConstant, textHasBridgeLabelConstant, yesNo(plan.HasBridge))
	fmt.Fprintf(buffer, textFlagTemplateConstant, textHasGovernanceLabelConstant, yesNo(plan.HasGovernance))
	fmt.Fprintf(buffer, textFlagTemplateConstant, textMultiChainLabelConstant, yesNo(plan.MultiChain))
	fmt.Fprintf(buffer, textTeamSizeTemplateConstant, textTeamSizeLabelConstant, plan.TeamSize)
	fmt.Fprintf(buffer, textFlagTemplateConstant, textMaturityLabelConstant, string(plan.Maturity))
	buffer.WriteString(textSectionSeparatorConstant)

	fmt.Fprintf(buffer, textTotalTemplateConstant, plan.TotalEstimatedDays)
	buffer.WriteString(textSectionSeparatorConstant)

	buffer.WriteString(textTracksHeaderConstant)
	for _, estimate := range plan.Tracks {
		fmt.Fprintf(buffer, textTrackTemplateConstant, estimate.Name, estimate.Key, estimate.EstimatedDays)
		fmt.Fprintf(buffer, textTrackDescriptionTemplate, estimate.Description)
	}
	buffer.WriteString(textSectionSeparatorConstant)

	buffer.WriteString(textOrderHeaderConstant)
	orderIndex := 0
	for _, trackKey := range plan.SuggestedOrder {
		estimate, found := plan.Track(trackKey)
		if !found {
			continue
		}
		orderIndex++
		fmt.Fprintf(buffer, textOrderTemplateConstant, orderIndex, estimate.Name, estimate.Key)
	}

	_, writeError := buffer.WriteTo(destination)
	return writeError
}

func yesNo(value bool) string {
	if value {
		return textYesConstant
	}
	return textNoConstant
}
