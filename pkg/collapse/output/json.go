// Package output serializes collapse reports.
package output

import (
	"encoding/json"

	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/models"
)

// ReportToJSON serializes a report to JSON.
func ReportToJSON(r *models.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}

// Failure is the JSON shape of a failed run.
type Failure struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// FailureToJSON serializes a failed run.
func FailureToJSON(f Failure, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(f, "", "  ")
	}
	return json.Marshal(f)
}
