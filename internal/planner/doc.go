// Package planner turns project attributes into an audit effort plan.
//
// ComputePlan is a pure function over the catalog tables: it applies style
// multipliers, feature adjustments, maturity and team throughput factors, then
// rounds each track to a tenth of a day before totalling.
package planner
