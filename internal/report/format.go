package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/temirov/scopeplanner/internal/planner"
)

const (
	formatTextConstant                     = "text"
	formatJSONConstant                     = "json"
	formatYAMLConstant                     = "yaml"
	unsupportedFormatErrorTemplateConstant = "%w: %q"
)

// Format selects an output encoding.
type Format string

// Supported output formats.
const (
	FormatText Format = Format(formatTextConstant)
	FormatJSON Format = Format(formatJSONConstant)
	FormatYAML Format = Format(formatYAMLConstant)
)

// ErrUnsupportedFormat is returned for output formats without a renderer.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Renderer writes an audit plan to a destination.
type Renderer interface {
	Render(destination io.Writer, plan planner.AuditPlan) error
}

// FormatNames lists every supported format, text first.
func FormatNames() []string {
	return []string{formatTextConstant, formatJSONConstant, formatYAMLConstant}
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(rawValue string) (Format, error) {
	candidate := Format(strings.ToLower(strings.TrimSpace(rawValue)))
	switch candidate {
	case FormatText, FormatJSON, FormatYAML:
		return candidate, nil
	default:
		return "", fmt.Errorf(unsupportedFormatErrorTemplateConstant, ErrUnsupportedFormat, rawValue)
	}
}

// NewRenderer returns the renderer for format.
func NewRenderer(format Format) (Renderer, error) {
	switch format {
	case FormatText:
		return TextRenderer{}, nil
	case FormatJSON:
		return JSONRenderer{}, nil
	case FormatYAML:
		return YAMLRenderer{}, nil
	default:
		return nil, fmt.Errorf(unsupportedFormatErrorTemplateConstant, ErrUnsupportedFormat, string(format))
	}
}
