package planner

import "github.com/temirov/scopeplanner/internal/catalog"

// ProjectAttributes captures everything the user states about a project.
type ProjectAttributes struct {
	Style         catalog.StyleProfile
	UsesZK        bool
	UsesFHE       bool
	HasBridge     bool
	HasGovernance bool
	MultiChain    bool
	TeamSize      int
	Maturity      Maturity
}

// TrackEstimate is the resolved effort for a single audit track.
type TrackEstimate struct {
	Key           string  `json:"key" yaml:"key" mapstructure:"key"`
	Name          string  `json:"name" yaml:"name" mapstructure:"name"`
	Description   string  `json:"description" yaml:"description" mapstructure:"description"`
	EstimatedDays float64 `json:"estimatedDays" yaml:"estimatedDays" mapstructure:"estimatedDays"`
}

// AuditPlan is the full result of a planning run. Field names are part of the
// structured output contract.
type AuditPlan struct {
	Style              string          `json:"style" yaml:"style" mapstructure:"style"`
	StyleName          string          `json:"styleName" yaml:"styleName" mapstructure:"styleName"`
	StyleDescription   string          `json:"styleDescription" yaml:"styleDescription" mapstructure:"styleDescription"`
	UsesZK             bool            `json:"usesZk" yaml:"usesZk" mapstructure:"usesZk"`
	UsesFHE            bool            `json:"usesFhe" yaml:"usesFhe" mapstructure:"usesFhe"`
	HasBridge          bool            `json:"hasBridge" yaml:"hasBridge" mapstructure:"hasBridge"`
	HasGovernance      bool            `json:"hasGovernance" yaml:"hasGovernance" mapstructure:"hasGovernance"`
	MultiChain         bool            `json:"multiChain" yaml:"multiChain" mapstructure:"multiChain"`
	TeamSize           int             `json:"teamSize" yaml:"teamSize" mapstructure:"teamSize"`
	Maturity           Maturity        `json:"maturity" yaml:"maturity" mapstructure:"maturity"`
	Tracks             []TrackEstimate `json:"tracks" yaml:"tracks" mapstructure:"tracks"`
	TotalEstimatedDays float64         `json:"totalEstimatedDays" yaml:"totalEstimatedDays" mapstructure:"totalEstimatedDays"`
	SuggestedOrder     []string        `json:"suggestedOrder" yaml:"suggestedOrder" mapstructure:"suggestedOrder"`
}

// Track returns the estimate for key, if present.
func (plan AuditPlan) Track(key string) (TrackEstimate, bool) {
	for _, estimate := range plan.Tracks {
		if estimate.Key == key {
			return estimate, true
		}
	}
	return TrackEstimate{}, false
}
