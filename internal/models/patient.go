package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender values
const (
	GenderFemale = "Female"
	GenderMale   = "Male"
	GenderOther  = "Other"
)

// Work type values
const (
	WorkPrivate      = "Private"
	WorkSelfEmployed = "Self-employed"
	WorkGovtJob      = "Govt_job"
	WorkChildren     = "Children"
	WorkNeverWorked  = "Never_worked"
)

// Residence type values
const (
	ResidenceRural = "Rural"
	ResidenceUrban = "Urban"
)

// Smoking status values
const (
	SmokingNever    = "Never"
	SmokingUnknown  = "Unknown"
	SmokingFormerly = "Formerly"
	SmokingSmokes   = "Smokes"
)

// PatientDB represents a patient document in the patient store.
// The _id is assigned by the store on insert and is immutable afterwards.
type PatientDB struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	Age             float64            `json:"age" bson:"age"`
	Gender          string             `json:"gender" bson:"gender"`
	Hypertension    bool               `json:"hypertension" bson:"hypertension"`
	EverMarried     bool               `json:"ever_married" bson:"ever_married"`
	WorkType        string             `json:"work_type" bson:"work_type"`
	ResidenceType   string             `json:"residence_type" bson:"residence_type"`
	AvgGlucoseLevel float64            `json:"avg_glucose_level" bson:"avg_glucose_level"`
	BMI             float64            `json:"bmi" bson:"bmi"`
	SmokingStatus   string             `json:"smoking_status" bson:"smoking_status"`
	LastPrediction  *Prediction        `json:"last_prediction,omitempty" bson:"last_prediction,omitempty"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

// Prediction is the stored outcome of the most recent risk assessment
// for a patient. It is cleared on every record update and only written
// back by an explicit predict call.
type Prediction struct {
	Label       bool      `json:"label" bson:"label"`
	Probability float64   `json:"probability" bson:"probability"`
	At          time.Time `json:"at" bson:"at"`
}

// PatientPatch carries a partial update of a patient record. Nil fields
// are left untouched; set fields are validated and merged in place.
type PatientPatch struct {
	Name            *string  `json:"name,omitempty" bson:"name,omitempty"`
	Age             *float64 `json:"age,omitempty" bson:"age,omitempty"`
	Gender          *string  `json:"gender,omitempty" bson:"gender,omitempty"`
	Hypertension    *bool    `json:"hypertension,omitempty" bson:"hypertension,omitempty"`
	EverMarried     *bool    `json:"ever_married,omitempty" bson:"ever_married,omitempty"`
	WorkType        *string  `json:"work_type,omitempty" bson:"work_type,omitempty"`
	ResidenceType   *string  `json:"residence_type,omitempty" bson:"residence_type,omitempty"`
	AvgGlucoseLevel *float64 `json:"avg_glucose_level,omitempty" bson:"avg_glucose_level,omitempty"`
	BMI             *float64 `json:"bmi,omitempty" bson:"bmi,omitempty"`
	SmokingStatus   *string  `json:"smoking_status,omitempty" bson:"smoking_status,omitempty"`
}
