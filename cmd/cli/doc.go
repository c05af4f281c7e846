// Package cli constructs the audit-scope-planner command-line interface,
// wiring the Cobra command hierarchy, configuration loader, and structured
// logging. The planner command is the root; catalog is its only subcommand.
package cli
