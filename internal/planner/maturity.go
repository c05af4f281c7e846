package planner

import (
	"errors"
	"fmt"
	"strings"
)

const (
	maturityIdeaConstant                 = "idea"
	maturityPrototypeConstant            = "prototype"
	maturityMainnetConstant              = "mainnet"
	unknownMaturityErrorTemplateConstant = "%w: %q (expected one of %s)"
	maturityListSeparatorConstant        = ", "
)

// Maturity is the lifecycle stage of the audited project.
type Maturity string

// Supported maturity stages.
const (
	MaturityIdea      Maturity = Maturity(maturityIdeaConstant)
	MaturityPrototype Maturity = Maturity(maturityPrototypeConstant)
	MaturityMainnet   Maturity = Maturity(maturityMainnetConstant)
)

// DefaultMaturity is used when no stage is requested.
const DefaultMaturity = MaturityPrototype

// ErrUnknownMaturity is returned by ParseMaturity for unsupported stages.
var ErrUnknownMaturity = errors.New("unknown maturity")

var maturityFactors = map[Maturity]float64{
	MaturityIdea:      0.7,
	MaturityPrototype: 1.0,
	MaturityMainnet:   1.2,
}

var orderedMaturities = []Maturity{MaturityIdea, MaturityPrototype, MaturityMainnet}

// Maturities lists the supported stages from earliest to latest.
func Maturities() []Maturity {
	return append([]Maturity(nil), orderedMaturities...)
}

// MaturityNames lists the supported stages as plain strings.
func MaturityNames() []string {
	names := make([]string, 0, len(orderedMaturities))
	for _, maturity := range orderedMaturities {
		names = append(names, string(maturity))
	}
	return names
}

// ParseMaturity validates a user-supplied stage.
func ParseMaturity(rawValue string) (Maturity, error) {
	candidate := Maturity(strings.ToLower(strings.TrimSpace(rawValue)))
	if _, known := maturityFactors[candidate]; !known {
		return "", fmt.Errorf(unknownMaturityErrorTemplateConstant, ErrUnknownMaturity, rawValue, strings.Join(MaturityNames(), maturityListSeparatorConstant))
	}
	return candidate, nil
}

// Factor returns the global effort scaling for the stage. Stages that never
// passed ParseMaturity scale by 1.0.
func (maturity Maturity) Factor() float64 {
	factor, known := maturityFactors[maturity]
	if !known {
		return 1.0
	}
	return factor
}
