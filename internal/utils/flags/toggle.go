package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	toggleTrueCanonicalValue               = "true"
	toggleFalseCanonicalValue              = "false"
	toggleParseErrorTemplate               = "invalid toggle value %q"
	toggleArgumentTruePlaceholderConstant  = "<YES|no>"
	toggleArgumentFalsePlaceholderConstant = "<yes|NO>"
	toggleValueTypeName                    = "bool"
	longFlagPrefix                         = "--"
	shortFlagPrefix                        = "-"
	flagValueSeparator                     = "="
)

var (
	trueLiteralSet = map[string]struct{}{
		toggleTrueCanonicalValue: {}, "yes": {}, "on": {}, "1": {}, "t": {}, "y": {},
	}
	falseLiteralSet = map[string]struct{}{
		toggleFalseCanonicalValue: {}, "no": {}, "off": {}, "0": {}, "f": {}, "n": {},
	}
)

// AddToggleFlag registers a boolean flag that is true when present and also
// accepts yes/no style values.
func AddToggleFlag(flagSet *pflag.FlagSet, target *bool, name string, shorthand string, defaultValue bool, usage string) {
	if flagSet == nil || target == nil || len(name) == 0 {
		return
	}

	toggleValue := &toggleFlagValue{target: target}
	*target = defaultValue
	flagSet.VarP(toggleValue, name, shorthand, usage)

	flag := flagSet.Lookup(name)
	if flag == nil {
		return
	}
	flag.NoOptDefVal = toggleTrueCanonicalValue
	flag.Usage = formatToggleUsage(usage, defaultValue)
}

// NormalizeToggleArguments rewrites "--flag value" into "--flag=value" for the
// toggle flags registered on flagSet, so pflag does not treat the literal as
// a positional argument. Only recognised yes/no literals are joined.
func NormalizeToggleArguments(flagSet *pflag.FlagSet, arguments []string) []string {
	if len(arguments) == 0 {
		return nil
	}

	normalized := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		current := arguments[index]
		if current == longFlagPrefix {
			normalized = append(normalized, arguments[index:]...)
			break
		}

		if index+1 < len(arguments) && isBareToggle(flagSet, current) && isToggleLiteral(arguments[index+1]) {
			normalized = append(normalized, current+flagValueSeparator+arguments[index+1])
			index++
			continue
		}

		normalized = append(normalized, current)
	}

	return normalized
}

type toggleFlagValue struct {
	target *bool
}

func (value *toggleFlagValue) Set(rawValue string) error {
	parsedValue, parseError := parseToggleValue(rawValue)
	if parseError != nil {
		return parseError
	}
	*value.target = parsedValue
	return nil
}

func (value *toggleFlagValue) String() string {
	if value == nil || value.target == nil || !*value.target {
		return toggleFalseCanonicalValue
	}
	return toggleTrueCanonicalValue
}

func (value *toggleFlagValue) Type() string {
	return toggleValueTypeName
}

func formatToggleUsage(description string, defaultValue bool) string {
	placeholder := toggleArgumentFalsePlaceholderConstant
	if defaultValue {
		placeholder = toggleArgumentTruePlaceholderConstant
	}
	trimmed := strings.TrimSpace(description)
	if len(trimmed) == 0 {
		return fmt.Sprintf("`%s`", placeholder)
	}
	return fmt.Sprintf("`%s` %s", placeholder, trimmed)
}

func parseToggleValue(rawValue string) (bool, error) {
	normalizedValue := strings.ToLower(strings.TrimSpace(rawValue))
	if len(normalizedValue) == 0 {
		return true, nil
	}
	if _, isTrue := trueLiteralSet[normalizedValue]; isTrue {
		return true, nil
	}
	if _, isFalse := falseLiteralSet[normalizedValue]; isFalse {
		return false, nil
	}
	return false, fmt.Errorf(toggleParseErrorTemplate, rawValue)
}

func isToggleLiteral(candidate string) bool {
	normalizedValue := strings.ToLower(strings.TrimSpace(candidate))
	_, isTrue := trueLiteralSet[normalizedValue]
	_, isFalse := falseLiteralSet[normalizedValue]
	return isTrue || isFalse
}

// isBareToggle reports whether argument names a toggle flag without an
// attached "=value".
func isBareToggle(flagSet *pflag.FlagSet, argument string) bool {
	if flagSet == nil || strings.Contains(argument, flagValueSeparator) {
		return false
	}

	var flag *pflag.Flag
	switch {
	case strings.HasPrefix(argument, longFlagPrefix):
		flag = flagSet.Lookup(strings.TrimPrefix(argument, longFlagPrefix))
	case strings.HasPrefix(argument, shortFlagPrefix) && len(argument) == 2:
		flag = flagSet.ShorthandLookup(strings.TrimPrefix(argument, shortFlagPrefix))
	}
	if flag == nil {
		return false
	}
	_, isToggle := flag.Value.(*toggleFlagValue)
	return isToggle
}
