// Package report renders audit plans as a human-readable summary or as
// structured JSON/YAML documents with stable field names.
package report
