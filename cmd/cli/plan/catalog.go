package plan

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/scopeplanner/internal/report"
)

const (
	catalogCommandUseConstant              = "catalog"
	catalogCommandShortDescriptionConstant = "List audit tracks and style profiles"
	catalogCommandLongDescriptionConstant  = "catalog prints the audit tracks with their base effort and the style profiles with their per-track multipliers."
	catalogRenderErrorTemplateConstant     = "unable to render catalog: %w"
	catalogListedMessageConstant           = "catalog listed"
	logFieldTrackCountConstant             = "track_count"
	logFieldStyleCountConstant             = "style_count"
)

// CatalogCommandBuilder assembles the catalog listing command.
type CatalogCommandBuilder struct {
	LoggerProvider LoggerProvider
}

// Build constructs the catalog command.
func (builder *CatalogCommandBuilder) Build() (*cobra.Command, error) {
	var jsonOutput bool

	command := &cobra.Command{
		Use:   catalogCommandUseConstant,
		Short: catalogCommandShortDescriptionConstant,
		Long:  catalogCommandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			format := report.FormatText
			if jsonOutput {
				format = report.FormatJSON
			}

			listing := report.NewCatalogListing()
			resolveLogger(builder.LoggerProvider).Debug(
				catalogListedMessageConstant,
				zap.Int(logFieldTrackCountConstant, len(listing.Tracks)),
				zap.Int(logFieldStyleCountConstant, len(listing.Styles)),
				zap.String(logFieldFormatConstant, string(format)),
			)

			if renderError := report.RenderCatalog(command.OutOrStdout(), listing, format); renderError != nil {
				return fmt.Errorf(catalogRenderErrorTemplateConstant, renderError)
			}
			return nil
		},
	}

	command.Flags().BoolVar(&jsonOutput, jsonFlagNameConstant, false, jsonFlagDescriptionConstant)

	return command, nil
}
