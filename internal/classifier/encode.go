package classifier

import (
	"github.com/strokesecure/stroke-records/internal/models"
	"github.com/strokesecure/stroke-records/internal/validation"
)

// Encode tables: each categorical value maps to its integer index. The
// classifier was trained against exactly these indices; any value outside
// a table fails before it can reach the scoring function.
var (
	genderIndex = map[string]float64{
		models.GenderFemale: 0,
		models.GenderMale:   1,
		models.GenderOther:  2,
	}
	workTypeIndex = map[string]float64{
		models.WorkPrivate:      0,
		models.WorkSelfEmployed: 1,
		models.WorkGovtJob:      2,
		models.WorkChildren:     3,
		models.WorkNeverWorked:  4,
	}
	residenceIndex = map[string]float64{
		models.ResidenceRural: 0,
		models.ResidenceUrban: 1,
	}
	smokingIndex = map[string]float64{
		models.SmokingNever:    0,
		models.SmokingUnknown:  1,
		models.SmokingFormerly: 2,
		models.SmokingSmokes:   3,
	}
)

// Encode derives the ordered feature vector from a patient record:
// gender, age, hypertension, ever_married, work_type, residence_type,
// avg_glucose_level, bmi, smoking_status.
func Encode(p *models.PatientDB) ([FeatureCount]float64, error) {
	var f [FeatureCount]float64

	gender, ok := genderIndex[p.Gender]
	if !ok {
		return f, &validation.FieldError{Field: "gender", Rule: validation.RuleInvalidCategory}
	}
	work, ok := workTypeIndex[p.WorkType]
	if !ok {
		return f, &validation.FieldError{Field: "work_type", Rule: validation.RuleInvalidCategory}
	}
	residence, ok := residenceIndex[p.ResidenceType]
	if !ok {
		return f, &validation.FieldError{Field: "residence_type", Rule: validation.RuleInvalidCategory}
	}
	smoking, ok := smokingIndex[p.SmokingStatus]
	if !ok {
		return f, &validation.FieldError{Field: "smoking_status", Rule: validation.RuleInvalidCategory}
	}

	age, err := validation.Age(p.Age)
	if err != nil {
		return f, err
	}
	glucose, err := validation.Glucose(p.AvgGlucoseLevel)
	if err != nil {
		return f, err
	}
	bmi, err := validation.BMI(p.BMI)
	if err != nil {
		return f, err
	}

	f[0] = gender
	f[1] = age
	f[2] = boolToFloat(p.Hypertension)
	f[3] = boolToFloat(p.EverMarried)
	f[4] = work
	f[5] = residence
	f[6] = glucose
	f[7] = bmi
	f[8] = smoking
	return f, nil
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
