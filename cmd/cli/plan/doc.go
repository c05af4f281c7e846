// Package plan wires the audit planner and the catalog listing into Cobra
// commands. Flag values are validated during parsing so an invalid style,
// maturity, team size, or format fails before any plan is computed.
package plan
