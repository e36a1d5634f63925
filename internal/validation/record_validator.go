package validation

import (
	"strings"

	"t2c/internal/domain"
	"t2c/internal/errors"
)

// RecordValidator validates source records before import
type RecordValidator struct{}

// NewRecordValidator creates a new record validator instance
func NewRecordValidator() *RecordValidator {
	return &RecordValidator{}
}

// ValidateForImport checks that a source record carries every field the
// import pipeline depends on. A failure here is fatal to this record only.
func (v *RecordValidator) ValidateForImport(record domain.SourceRecord) error {
	// The project title is required; there is no default to substitute
	if strings.TrimSpace(record.Project.Title) == "" {
		return errors.NewMissingFieldError("project.title")
	}

	// The first element of the title chain becomes the client name
	if _, ok := record.ClientName(); !ok {
		return errors.NewMissingFieldError("project.title_chain")
	}

	if record.Start.IsZero() {
		return errors.NewMissingFieldError("start_date")
	}
	if record.End.IsZero() {
		return errors.NewMissingFieldError("end_date")
	}
	if record.End.Before(record.Start) {
		return errors.NewInvalidInputError("end_date", record.End, "end precedes start")
	}

	return nil
}
