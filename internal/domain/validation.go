package domain

import (
	"fmt"
	"strings"
)

// FailureCode classifies a single field-level validation failure.
type FailureCode string

const (
	RequiredFieldMissing FailureCode = "required_field_missing"
	InvalidFormat        FailureCode = "invalid_format"
	InvalidTimestamp     FailureCode = "invalid_timestamp"
	EndBeforeStart       FailureCode = "end_before_start"
	InvalidNumber        FailureCode = "invalid_number"
	OutOfRange           FailureCode = "out_of_range"
	InvalidCategory      FailureCode = "invalid_category"
)

// FieldFailure ties a failure code to the offending draft field
// ("title", "location.lat", ...).
type FieldFailure struct {
	Field string      `json:"field"`
	Code  FailureCode `json:"code"`
}

// ValidationFailures is the complete set of failures for one draft. It is
// data, not control flow: the normalizer evaluates every rule and returns all
// failures at once so a form can highlight every problem together.
type ValidationFailures []FieldFailure

func (v ValidationFailures) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Code)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Has reports whether the set contains the exact field/code pair.
func (v ValidationFailures) Has(field string, code FailureCode) bool {
	for _, f := range v {
		if f.Field == field && f.Code == code {
			return true
		}
	}
	return false
}
