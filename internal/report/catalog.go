package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gowebpki/jcs"
	"gopkg.in/yaml.v3"

	"github.com/temirov/scopeplanner/internal/catalog"
)

const (
	catalogTracksHeaderConstant        = "Audit tracks:\n"
	catalogStylesHeaderConstant        = "Style profiles:\n"
	catalogTrackTemplateConstant       = "  - %s: %s (%.1f base days)\n"
	catalogStyleTemplateConstant       = "  - %s: %s%s\n"
	catalogDescriptionTemplateConstant = "    %s\n"
	catalogMultipliersTemplateConstant = "    multipliers: %s\n"
	catalogMultiplierTemplateConstant  = "%s %.2f"
	catalogMultiplierSeparatorConstant = ", "
	catalogDefaultMarkerConstant       = " (default)"
	catalogEncodeErrorTemplateConstant = "unable to encode catalog: %w"
	catalogSectionSeparatorConstant    = "\n"
)

// CatalogListing is the structured form of the reference tables.
type CatalogListing struct {
	Tracks []catalog.AuditTrack   `json:"tracks" yaml:"tracks"`
	Styles []catalog.StyleProfile `json:"styles" yaml:"styles"`
}

// NewCatalogListing snapshots the catalog tables.
func NewCatalogListing() CatalogListing {
	return CatalogListing{Tracks: catalog.Tracks(), Styles: catalog.Styles()}
}

// RenderCatalog writes listing in the requested format.
func RenderCatalog(destination io.Writer, listing CatalogListing, format Format) error {
	buffer := &bytes.Buffer{}

	switch format {
	case FormatText:
		writeCatalogText(buffer, listing)
	case FormatJSON:
		encoded, encodeError := json.Marshal(listing)
		if encodeError != nil {
			return fmt.Errorf(catalogEncodeErrorTemplateConstant, encodeError)
		}
		canonical, canonicalError := jcs.Transform(encoded)
		if canonicalError != nil {
			return fmt.Errorf(catalogEncodeErrorTemplateConstant, canonicalError)
		}
		if indentError := json.Indent(buffer, canonical, "", jsonIndentConstant); indentError != nil {
			return fmt.Errorf(catalogEncodeErrorTemplateConstant, indentError)
		}
		buffer.WriteByte('\n')
	case FormatYAML:
		encoder := yaml.NewEncoder(buffer)
		encoder.SetIndent(yamlIndentConstant)
		if encodeError := encoder.Encode(listing); encodeError != nil {
			return fmt.Errorf(catalogEncodeErrorTemplateConstant, encodeError)
		}
		if closeError := encoder.Close(); closeError != nil {
			return fmt.Errorf(catalogEncodeErrorTemplateConstant, closeError)
		}
	default:
		return fmt.Errorf(unsupportedFormatErrorTemplateConstant, ErrUnsupportedFormat, string(format))
	}

	_, writeError := buffer.WriteTo(destination)
	return writeError
}

func writeCatalogText(buffer *bytes.Buffer, listing CatalogListing) {
	buffer.WriteString(catalogTracksHeaderConstant)
	for _, track := range listing.Tracks {
		fmt.Fprintf(buffer, catalogTrackTemplateConstant, track.Key, track.Name, track.BaseDays)
		fmt.Fprintf(buffer, catalogDescriptionTemplateConstant, track.Description)
	}
	buffer.WriteString(catalogSectionSeparatorConstant)

	buffer.WriteString(catalogStylesHeaderConstant)
	for _, profile := range listing.Styles {
		defaultMarker := ""
		if profile.Key == catalog.DefaultStyleKey {
			defaultMarker = catalogDefaultMarkerConstant
		}
		fmt.Fprintf(buffer, catalogStyleTemplateConstant, profile.Key, profile.Name, defaultMarker)
		fmt.Fprintf(buffer, catalogDescriptionTemplateConstant, profile.Description)

		multipliers := make([]string, 0, len(listing.Tracks))
		for _, track := range listing.Tracks {
			multipliers = append(multipliers, fmt.Sprintf(catalogMultiplierTemplateConstant, track.Key, profile.Multiplier(track.Key)))
		}
		fmt.Fprintf(buffer, catalogMultipliersTemplateConstant, strings.Join(multipliers, catalogMultiplierSeparatorConstant))
	}
}
