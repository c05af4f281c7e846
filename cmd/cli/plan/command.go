package plan

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/scopeplanner/internal/catalog"
	"github.com/temirov/scopeplanner/internal/planner"
	"github.com/temirov/scopeplanner/internal/report"
	"github.com/temirov/scopeplanner/internal/utils/flags"
)

const (
	commandUseConstant                 = "audit-scope-planner"
	commandShortDescriptionConstant    = "Estimate audit tracks and effort for a Web3 project"
	commandLongDescriptionConstant     = "audit-scope-planner estimates audit effort in person-days for a Web3 project inspired by Aztec-style zk rollups, Zama-style FHE systems, and soundness-focused protocol labs."
	styleFlagNameConstant              = "style"
	styleFlagDescriptionConstant       = "Base design style."
	zkFlagNameConstant                 = "zk"
	zkFlagDescriptionConstant          = "Project uses zk-proofs for core logic or privacy."
	fheFlagNameConstant                = "fhe"
	fheFlagDescriptionConstant         = "Project uses fully homomorphic encryption (FHE)."
	bridgeFlagNameConstant             = "bridge"
	bridgeFlagDescriptionConstant      = "Project includes a bridge or cross-chain messaging."
	governanceFlagNameConstant         = "governance"
	governanceFlagDescriptionConstant  = "Project includes governance or upgradeability logic."
	multiChainFlagNameConstant         = "multi-chain"
	multiChainFlagDescriptionConstant  = "Project targets multiple chains or rollups."
	teamSizeFlagNameConstant           = "team-size"
	teamSizeFlagDescriptionConstant    = "Approximate number of engineers working on the core system."
	maturityFlagNameConstant           = "maturity"
	maturityFlagDescriptionConstant    = "Stage of the project."
	jsonFlagNameConstant               = "json"
	jsonFlagDescriptionConstant        = "Print JSON instead of the human-readable summary."
	formatFlagNameConstant             = "format"
	formatFlagDescriptionConstant      = "Output format; --json is shorthand for json."
	defaultTeamSizeConstant            = 5
	styleLookupErrorTemplateConstant   = "unable to resolve style: %w"
	maturityParseErrorTemplateConstant = "unable to resolve maturity: %w"
	formatParseErrorTemplateConstant   = "unable to resolve output format: %w"
	renderErrorTemplateConstant        = "unable to render audit plan: %w"
	planComputedMessageConstant        = "audit plan computed"
	logFieldStyleConstant              = "style"
	logFieldMaturityConstant           = "maturity"
	logFieldTeamSizeConstant           = "team_size"
	logFieldFormatConstant             = "format"
	logFieldTotalEstimatedDaysConstant = "total_estimated_days"
	logFieldLargestTrackConstant       = "largest_track"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the planner command.
type CommandBuilder struct {
	LoggerProvider LoggerProvider
}

type commandFlagValues struct {
	styleKey      string
	usesZK        bool
	usesFHE       bool
	hasBridge     bool
	hasGovernance bool
	multiChain    bool
	teamSize      int
	maturity      string
	jsonOutput    bool
	format        string
}

// Build constructs the planner command. It takes no positional arguments.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	values := &commandFlagValues{}

	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.run(command, *values)
		},
	}

	flagSet := command.Flags()
	flags.AddChoiceFlag(flagSet, &values.styleKey, styleFlagNameConstant, catalog.DefaultStyleKey, catalog.StyleKeys(), styleFlagDescriptionConstant)
	flags.AddToggleFlag(flagSet, &values.usesZK, zkFlagNameConstant, "", false, zkFlagDescriptionConstant)
	flags.AddToggleFlag(flagSet, &values.usesFHE, fheFlagNameConstant, "", false, fheFlagDescriptionConstant)
	flags.AddToggleFlag(flagSet, &values.hasBridge, bridgeFlagNameConstant, "", false, bridgeFlagDescriptionConstant)
	flags.AddToggleFlag(flagSet, &values.hasGovernance, governanceFlagNameConstant, "", false, governanceFlagDescriptionConstant)
	flags.AddToggleFlag(flagSet, &values.multiChain, multiChainFlagNameConstant, "", false, multiChainFlagDescriptionConstant)
	flagSet.IntVar(&values.teamSize, teamSizeFlagNameConstant, defaultTeamSizeConstant, teamSizeFlagDescriptionConstant)
	flags.AddChoiceFlag(flagSet, &values.maturity, maturityFlagNameConstant, string(planner.DefaultMaturity), planner.MaturityNames(), maturityFlagDescriptionConstant)
	flagSet.BoolVar(&values.jsonOutput, jsonFlagNameConstant, false, jsonFlagDescriptionConstant)
	flags.AddChoiceFlag(flagSet, &values.format, formatFlagNameConstant, string(report.FormatText), report.FormatNames(), formatFlagDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, values commandFlagValues) error {
	attributes, attributesError := values.projectAttributes()
	if attributesError != nil {
		return attributesError
	}

	format, formatError := resolveFormat(values.jsonOutput, values.format)
	if formatError != nil {
		return formatError
	}

	renderer, rendererError := report.NewRenderer(format)
	if rendererError != nil {
		return fmt.Errorf(formatParseErrorTemplateConstant, rendererError)
	}

	auditPlan := planner.ComputePlan(attributes)

	logger := resolveLogger(builder.LoggerProvider)
	logFields := []zap.Field{
		zap.String(logFieldStyleConstant, auditPlan.Style),
		zap.String(logFieldMaturityConstant, string(auditPlan.Maturity)),
		zap.Int(logFieldTeamSizeConstant, auditPlan.TeamSize),
		zap.String(logFieldFormatConstant, string(format)),
		zap.Float64(logFieldTotalEstimatedDaysConstant, auditPlan.TotalEstimatedDays),
	}
	if len(auditPlan.Tracks) > 0 {
		logFields = append(logFields, zap.String(logFieldLargestTrackConstant, auditPlan.Tracks[0].Key))
	}
	logger.Debug(planComputedMessageConstant, logFields...)

	if renderError := renderer.Render(command.OutOrStdout(), auditPlan); renderError != nil {
		return fmt.Errorf(renderErrorTemplateConstant, renderError)
	}
	return nil
}

func (values commandFlagValues) projectAttributes() (planner.ProjectAttributes, error) {
	style, styleError := catalog.LookupStyle(values.styleKey)
	if styleError != nil {
		return planner.ProjectAttributes{}, fmt.Errorf(styleLookupErrorTemplateConstant, styleError)
	}

	maturity, maturityError := planner.ParseMaturity(values.maturity)
	if maturityError != nil {
		return planner.ProjectAttributes{}, fmt.Errorf(maturityParseErrorTemplateConstant, maturityError)
	}

	return planner.ProjectAttributes{
		Style:         style,
		UsesZK:        values.usesZK,
		UsesFHE:       values.usesFHE,
		HasBridge:     values.hasBridge,
		HasGovernance: values.hasGovernance,
		MultiChain:    values.multiChain,
		TeamSize:      values.teamSize,
		Maturity:      maturity,
	}, nil
}

func resolveFormat(jsonOutput bool, rawFormat string) (report.Format, error) {
	if jsonOutput {
		return report.FormatJSON, nil
	}
	format, parseError := report.ParseFormat(rawFormat)
	if parseError != nil {
		return "", fmt.Errorf(formatParseErrorTemplateConstant, parseError)
	}
	return format, nil
}

func resolveLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	logger := provider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
