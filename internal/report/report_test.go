package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/scopeplanner/internal/catalog"
	"github.com/temirov/scopeplanner/internal/planner"
	"github.com/temirov/scopeplanner/internal/report"
)

const expectedDefaultTextReportConstant = `🧮 audit-scope-planner
Base style     : Aztec-style privacy rollup (aztec)
Description    : Privacy-first zk rollup with encrypted state and complex circuits.

Project flags:
  Uses zk-proofs        : no
  Uses FHE              : no
  Has bridge            : no
  Has governance        : no
  Multi-chain           : no
  Team size             : 5
  Maturity              : prototype

Total estimated audit effort: 56.7 person-days

Tracks (descending effort):
  - Circuits / Crypto Review (circuits): 18.0 days
    ZK/FHE circuits, gadgets, and cryptographic assumptions.
  - Implementation Review (implementation): 16.1 days
    Smart contracts, on-chain logic, and critical off-chain components.
  - Protocol & Soundness Review (protocol): 12.0 days
    Core protocol logic, liveness & safety properties, invariants.
  - Infrastructure & DevOps Review (infra): 6.6 days
    RPC, sequencers, key management, monitoring, and ops runbooks.
  - Governance & Upgradeability Review (governance): 4.0 days
    Admin keys, upgrade paths, governance contracts and voting logic.

Suggested order of audits:
  1. Protocol & Soundness Review (protocol)
  2. Circuits / Crypto Review (circuits)
  3. Implementation Review (implementation)
  4. Infrastructure & DevOps Review (infra)
  5. Governance & Upgradeability Review (governance)
`

var expectedStructuredFieldNames = []string{
	"hasBridge",
	"hasGovernance",
	"maturity",
	"multiChain",
	"style",
	"styleDescription",
	"styleName",
	"suggestedOrder",
	"teamSize",
	"totalEstimatedDays",
	"tracks",
	"usesFhe",
	"usesZk",
}

func samplePlan(testInstance *testing.T, mutate func(*planner.ProjectAttributes)) planner.AuditPlan {
	testInstance.Helper()
	style, lookupError := catalog.LookupStyle(catalog.DefaultStyleKey)
	require.NoError(testInstance, lookupError)

	attributes := planner.ProjectAttributes{
		Style:    style,
		TeamSize: 5,
		Maturity: planner.DefaultMaturity,
	}
	if mutate != nil {
		mutate(&attributes)
	}
	return planner.ComputePlan(attributes)
}

func TestTextRendererDefaultPlan(testInstance *testing.T) {
	outputBuffer := &bytes.Buffer{}
	renderError := report.TextRenderer{}.Render(outputBuffer, samplePlan(testInstance, nil))
	require.NoError(testInstance, renderError)
	require.Equal(testInstance, expectedDefaultTextReportConstant, outputBuffer.String())
}

func TestTextRendererEchoesEnabledFlags(testInstance *testing.T) {
	plan := samplePlan(testInstance, func(attributes *planner.ProjectAttributes) {
		attributes.UsesZK = true
		attributes.MultiChain = true
		attributes.TeamSize = 12
		attributes.Maturity = planner.MaturityMainnet
	})

	outputBuffer := &bytes.Buffer{}
	require.NoError(testInstance, report.TextRenderer{}.Render(outputBuffer, plan))

	output := outputBuffer.String()
	require.Contains(testInstance, output, "  Uses zk-proofs        : yes\n")
	require.Contains(testInstance, output, "  Uses FHE              : no\n")
	require.Contains(testInstance, output, "  Multi-chain           : yes\n")
	require.Contains(testInstance, output, "  Team size             : 12\n")
	require.Contains(testInstance, output, "  Maturity              : mainnet\n")
}

func TestJSONRendererUsesSortedContractFields(testInstance *testing.T) {
	outputBuffer := &bytes.Buffer{}
	require.NoError(testInstance, report.JSONRenderer{}.Render(outputBuffer, samplePlan(testInstance, nil)))

	output := outputBuffer.String()
	require.True(testInstance, strings.HasSuffix(output, "}\n"))

	topLevelKeys := make([]string, 0)
	decoder := json.NewDecoder(strings.NewReader(output))
	_, openError := decoder.Token()
	require.NoError(testInstance, openError)
	for decoder.More() {
		keyToken, keyError := decoder.Token()
		require.NoError(testInstance, keyError)
		topLevelKeys = append(topLevelKeys, keyToken.(string))
		var skipped json.RawMessage
		require.NoError(testInstance, decoder.Decode(&skipped))
	}

	require.Equal(testInstance, expectedStructuredFieldNames, topLevelKeys)
	require.True(testInstance, sort.StringsAreSorted(topLevelKeys))
	require.Contains(testInstance, output, "\n  \"hasBridge\": false,")
}

func TestJSONRendererIsDeterministic(testInstance *testing.T) {
	plan := samplePlan(testInstance, func(attributes *planner.ProjectAttributes) { attributes.UsesFHE = true })

	firstBuffer := &bytes.Buffer{}
	secondBuffer := &bytes.Buffer{}
	require.NoError(testInstance, report.JSONRenderer{}.Render(firstBuffer, plan))
	require.NoError(testInstance, report.JSONRenderer{}.Render(secondBuffer, plan))
	require.Equal(testInstance, firstBuffer.String(), secondBuffer.String())
}

func TestJSONRendererRoundTrips(testInstance *testing.T) {
	plan := samplePlan(testInstance, func(attributes *planner.ProjectAttributes) {
		attributes.UsesZK = true
		attributes.UsesFHE = true
		attributes.HasBridge = true
		attributes.HasGovernance = true
		attributes.Maturity = planner.MaturityIdea
		attributes.TeamSize = 2
	})

	outputBuffer := &bytes.Buffer{}
	require.NoError(testInstance, report.JSONRenderer{}.Render(outputBuffer, plan))

	var generic map[string]any
	require.NoError(testInstance, json.Unmarshal(outputBuffer.Bytes(), &generic))

	var decoded planner.AuditPlan
	require.NoError(testInstance, mapstructure.Decode(generic, &decoded))

	if difference := cmp.Diff(plan, decoded); difference != "" {
		testInstance.Fatalf("round trip mismatch (-want +got):\n%s", difference)
	}
}

func TestYAMLRendererRoundTrips(testInstance *testing.T) {
	plan := samplePlan(testInstance, func(attributes *planner.ProjectAttributes) { attributes.MultiChain = true })

	outputBuffer := &bytes.Buffer{}
	require.NoError(testInstance, report.YAMLRenderer{}.Render(outputBuffer, plan))
	require.Contains(testInstance, outputBuffer.String(), "totalEstimatedDays:")
	require.Contains(testInstance, outputBuffer.String(), "suggestedOrder:")

	var decoded planner.AuditPlan
	require.NoError(testInstance, yaml.Unmarshal(outputBuffer.Bytes(), &decoded))

	if difference := cmp.Diff(plan, decoded); difference != "" {
		testInstance.Fatalf("round trip mismatch (-want +got):\n%s", difference)
	}
}

func TestParseFormat(testInstance *testing.T) {
	testCases := []struct {
		rawValue       string
		expectedFormat report.Format
		expectError    bool
	}{
		{rawValue: "text", expectedFormat: report.FormatText},
		{rawValue: "JSON", expectedFormat: report.FormatJSON},
		{rawValue: " yaml ", expectedFormat: report.FormatYAML},
		{rawValue: "csv", expectError: true},
	}

	for _, testCase := range testCases {
		format, parseError := report.ParseFormat(testCase.rawValue)
		if testCase.expectError {
			require.ErrorIs(testInstance, parseError, report.ErrUnsupportedFormat)
			continue
		}
		require.NoError(testInstance, parseError)
		require.Equal(testInstance, testCase.expectedFormat, format)
	}
}

func TestNewRenderer(testInstance *testing.T) {
	for _, formatName := range report.FormatNames() {
		renderer, rendererError := report.NewRenderer(report.Format(formatName))
		require.NoError(testInstance, rendererError)
		require.NotNil(testInstance, renderer)
	}

	_, unsupportedError := report.NewRenderer(report.Format("xml"))
	require.ErrorIs(testInstance, unsupportedError, report.ErrUnsupportedFormat)
}

type failingWriter struct{}

var errWriteFailed = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

func TestRenderersPropagateWriteErrors(testInstance *testing.T) {
	plan := samplePlan(testInstance, nil)
	for _, formatName := range report.FormatNames() {
		renderer, rendererError := report.NewRenderer(report.Format(formatName))
		require.NoError(testInstance, rendererError)
		require.ErrorIs(testInstance, renderer.Render(failingWriter{}, plan), errWriteFailed, formatName)
	}
}
