package models

// AssessmentEvent represents a completed risk assessment, published to the
// audit topic after every successful prediction.
type AssessmentEvent struct {
	AssessmentID string  `json:"assessment_id"` // AssessmentID is a unique identifier for the assessment.
	PatientID    string  `json:"patient_id"`    // PatientID is the hex identifier of the assessed patient.
	Label        bool    `json:"label"`         // Label is true when the probability reached the decision threshold.
	Probability  float64 `json:"probability"`   // Probability of the positive (stroke) class.
	Timestamp    int64   `json:"timestamp"`     // Unix timestamp (in seconds) when the assessment completed.
}
