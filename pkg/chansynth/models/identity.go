// Package models defines data structures for channel lineup reports.
package models

// ReportIdentity stamps a generated report with its provider and year.
type ReportIdentity struct {
	// Provider is the display name of the provider (e.g. "Voo"), empty if unknown.
	Provider string `json:"provider"`
	// Year is the first four-digit run found in the source filename, empty if none.
	Year string `json:"year"`
}

// Complete reports whether both provider and year were resolved.
func (id ReportIdentity) Complete() bool {
	return id.Provider != "" && id.Year != ""
}
