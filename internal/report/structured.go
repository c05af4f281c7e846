package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gowebpki/jcs"
	"gopkg.in/yaml.v3"

	"github.com/temirov/scopeplanner/internal/planner"
)

const (
	jsonIndentConstant                 = "  "
	yamlIndentConstant                 = 2
	jsonEncodeErrorTemplateConstant    = "unable to encode plan as JSON: %w"
	jsonCanonicalErrorTemplateConstant = "unable to canonicalize plan JSON: %w"
	yamlEncodeErrorTemplateConstant    = "unable to encode plan as YAML: %w"
)

// JSONRenderer emits the plan as indented JSON with lexicographically sorted
// keys, so repeated runs diff cleanly.
type JSONRenderer struct{}

// Render writes the JSON document followed by a newline.
func (JSONRenderer) Render(destination io.Writer, plan planner.AuditPlan) error {
	encoded, encodeError := json.Marshal(normalizePlan(plan))
	if encodeError != nil {
		return fmt.Errorf(jsonEncodeErrorTemplateConstant, encodeError)
	}

	canonical, canonicalError := jcs.Transform(encoded)
	if canonicalError != nil {
		return fmt.Errorf(jsonCanonicalErrorTemplateConstant, canonicalError)
	}

	buffer := &bytes.Buffer{}
	if indentError := json.Indent(buffer, canonical, "", jsonIndentConstant); indentError != nil {
		return fmt.Errorf(jsonCanonicalErrorTemplateConstant, indentError)
	}
	buffer.WriteByte('\n')

	_, writeError := buffer.WriteTo(destination)
	return writeError
}

// YAMLRenderer emits the plan as a YAML document using the JSON field names.
type YAMLRenderer struct{}

// Render writes the YAML document.
func (YAMLRenderer) Render(destination io.Writer, plan planner.AuditPlan) error {
	buffer := &bytes.Buffer{}
	encoder := yaml.NewEncoder(buffer)
	encoder.SetIndent(yamlIndentConstant)
	if encodeError := encoder.Encode(normalizePlan(plan)); encodeError != nil {
		return fmt.Errorf(yamlEncodeErrorTemplateConstant, encodeError)
	}
	if closeError := encoder.Close(); closeError != nil {
		return fmt.Errorf(yamlEncodeErrorTemplateConstant, closeError)
	}

	_, writeError := buffer.WriteTo(destination)
	return writeError
}

// normalizePlan replaces nil slices so structured output always carries arrays.
func normalizePlan(plan planner.AuditPlan) planner.AuditPlan {
	normalized := plan
	if normalized.Tracks == nil {
		normalized.Tracks = []planner.TrackEstimate{}
	}
	if normalized.SuggestedOrder == nil {
		normalized.SuggestedOrder = []string{}
	}
	return normalized
}
