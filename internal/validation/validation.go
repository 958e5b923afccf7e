// Package validation holds the pure field validators every store-bound or
// model-bound value passes through. No I/O, no side effects.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/strokesecure/stroke-records/internal/models"
)

// Validation rule identifiers
const (
	RuleInvalidUsername = "invalid_username"
	RuleWeakPassword    = "weak_password"
	RuleInvalidName     = "invalid_name"
	RuleInvalidAge      = "invalid_age"
	RuleInvalidCategory = "invalid_category"
	RuleInvalidNumeric  = "invalid_numeric"
	RuleInvalidID       = "invalid_id"
)

// FieldError reports which field failed validation and which rule it broke.
type FieldError struct {
	Field string
	Rule  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("validation failed: field %q violates rule %q", e.Field, e.Rule)
}

var (
	usernameRe  = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)
	nameRe      = regexp.MustCompile(`^[A-Za-z][A-Za-z '\-]*$`)
	patientIDRe = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
)

// Closed category domains. Encoding order in the classifier package depends
// on these slices staying aligned with its tables.
var (
	Genders         = []string{models.GenderFemale, models.GenderMale, models.GenderOther}
	WorkTypes       = []string{models.WorkPrivate, models.WorkSelfEmployed, models.WorkGovtJob, models.WorkChildren, models.WorkNeverWorked}
	ResidenceTypes  = []string{models.ResidenceRural, models.ResidenceUrban}
	SmokingStatuses = []string{models.SmokingNever, models.SmokingUnknown, models.SmokingFormerly, models.SmokingSmokes}
)

// Username checks length 3-20 and the alphanumeric/underscore alphabet.
func Username(raw string) (string, error) {
	if !usernameRe.MatchString(raw) {
		return "", &FieldError{Field: "username", Rule: RuleInvalidUsername}
	}
	return raw, nil
}

// Password enforces the minimum length policy. The upper bound guards
// against absurd inputs reaching bcrypt.
func Password(raw string) error {
	if len(raw) < 6 || len(raw) > 100 {
		return &FieldError{Field: "password", Rule: RuleWeakPassword}
	}
	return nil
}

// PatientName trims and checks the letters/spaces/hyphen/apostrophe pattern.
func PatientName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" || len(name) > 100 || !nameRe.MatchString(name) {
		return "", &FieldError{Field: "name", Rule: RuleInvalidName}
	}
	return name, nil
}

// Age accepts finite values in [0,150].
func Age(age float64) (float64, error) {
	if math.IsNaN(age) || math.IsInf(age, 0) || age < 0 || age > 150 {
		return 0, &FieldError{Field: "age", Rule: RuleInvalidAge}
	}
	return age, nil
}

// Category checks that value belongs to the field's closed domain.
func Category(field, value string, domain []string) (string, error) {
	for _, v := range domain {
		if value == v {
			return value, nil
		}
	}
	return "", &FieldError{Field: field, Rule: RuleInvalidCategory}
}

func Gender(raw string) (string, error) {
	return Category("gender", raw, Genders)
}

func WorkType(raw string) (string, error) {
	return Category("work_type", raw, WorkTypes)
}

func ResidenceType(raw string) (string, error) {
	return Category("residence_type", raw, ResidenceTypes)
}

func SmokingStatus(raw string) (string, error) {
	return Category("smoking_status", raw, SmokingStatuses)
}

// Numeric checks a clinical measurement is finite and within [0, max].
func Numeric(field string, value, max float64) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 || value > max {
		return 0, &FieldError{Field: field, Rule: RuleInvalidNumeric}
	}
	return value, nil
}

// Glucose validates the average glucose level (mg/dL, sanity cap 500).
func Glucose(value float64) (float64, error) {
	return Numeric("avg_glucose_level", value, 500)
}

// BMI validates the body mass index (sanity cap 100).
func BMI(value float64) (float64, error) {
	return Numeric("bmi", value, 100)
}

// PatientID checks the store identifier syntax (24 hex chars) before any
// backend lookup is attempted, so malformed ids never reach the driver.
func PatientID(raw string) (string, error) {
	if !patientIDRe.MatchString(raw) {
		return "", &FieldError{Field: "id", Rule: RuleInvalidID}
	}
	return raw, nil
}
