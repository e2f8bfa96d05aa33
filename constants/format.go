package constants

import "strings"

// ExportFormat is the canonical tabular export format for saved projects.
type ExportFormat string

const (
	ExportCSV  ExportFormat = "CSV"
	ExportXLSX ExportFormat = "XLSX"
)

// ParseExportFormat normalizes a user-supplied format name.
func ParseExportFormat(s string) (ExportFormat, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CSV":
		return ExportCSV, true
	case "XLSX", "EXCEL":
		return ExportXLSX, true
	}
	return "", false
}
