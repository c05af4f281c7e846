// Package flags provides pflag value types for enumerated choices and yes/no
// toggles, plus usage formatting shared by every command.
package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	choicePlaceholderPrefix    = "<"
	choicePlaceholderSuffix    = ">"
	choiceSeparatorLiteral     = "|"
	choiceUsageEmptyTemplate   = "`%s`"
	choiceUsageFullTemplate    = "`%s` %s"
	choiceInvalidValueTemplate = "invalid value %q (allowed: %s)"
	choiceAllowedListSeparator = ", "
	choiceValueTypeName        = "string"
)

// FormatChoiceUsage builds a usage string where the default option is capitalized inside a placeholder.
func FormatChoiceUsage(defaultChoice string, choices []string, description string) string {
	placeholder := buildChoicePlaceholder(defaultChoice, choices)
	if len(strings.TrimSpace(description)) == 0 {
		return fmt.Sprintf(choiceUsageEmptyTemplate, placeholder)
	}
	return fmt.Sprintf(choiceUsageFullTemplate, placeholder, description)
}

// AddChoiceFlag registers a string flag restricted to choices. Unknown values
// fail during flag parsing, before any command logic runs. Matching ignores
// case and surrounding whitespace; target receives the canonical choice.
func AddChoiceFlag(flagSet *pflag.FlagSet, target *string, name string, defaultChoice string, choices []string, description string) {
	if flagSet == nil || target == nil || len(name) == 0 {
		return
	}

	choiceValue := &choiceFlagValue{target: target, choices: normalizeChoices(choices)}
	*target = defaultChoice
	flagSet.Var(choiceValue, name, FormatChoiceUsage(defaultChoice, choices, description))
}

type choiceFlagValue struct {
	target  *string
	choices []string
}

func (value *choiceFlagValue) Set(rawValue string) error {
	normalizedValue := strings.ToLower(strings.TrimSpace(rawValue))
	for _, choice := range value.choices {
		if strings.ToLower(choice) == normalizedValue {
			*value.target = choice
			return nil
		}
	}
	return fmt.Errorf(choiceInvalidValueTemplate, rawValue, strings.Join(value.choices, choiceAllowedListSeparator))
}

func (value *choiceFlagValue) String() string {
	if value == nil || value.target == nil {
		return ""
	}
	return *value.target
}

func (value *choiceFlagValue) Type() string {
	return choiceValueTypeName
}

func buildChoicePlaceholder(defaultChoice string, choices []string) string {
	highlightedChoices := highlightDefaultChoice(defaultChoice, choices)
	return choicePlaceholderPrefix + strings.Join(highlightedChoices, choiceSeparatorLiteral) + choicePlaceholderSuffix
}

func normalizeChoices(choices []string) []string {
	normalized := make([]string, 0, len(choices))
	seen := make(map[string]struct{}, len(choices))
	for _, choice := range choices {
		trimmedChoice := strings.TrimSpace(choice)
		if len(trimmedChoice) == 0 {
			continue
		}
		lowered := strings.ToLower(trimmedChoice)
		if _, exists := seen[lowered]; exists {
			continue
		}
		seen[lowered] = struct{}{}
		normalized = append(normalized, trimmedChoice)
	}
	return normalized
}

func highlightDefaultChoice(defaultChoice string, choices []string) []string {
	normalizedDefault := strings.ToLower(strings.TrimSpace(defaultChoice))
	uniqueChoices := normalizeChoices(choices)
	highlighted := make([]string, 0, len(uniqueChoices))

	for _, choice := range uniqueChoices {
		displayValue := choice
		if strings.ToLower(choice) == normalizedDefault && len(normalizedDefault) > 0 {
			displayValue = strings.ToUpper(choice)
		}
		highlighted = append(highlighted, displayValue)
	}

	return highlighted
}
