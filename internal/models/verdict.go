package models

// RiskVerdict is the result of scoring a patient against the stroke
// classifier: the probability of the positive class and the label derived
// from the fixed decision threshold.
type RiskVerdict struct {
	Label       bool    `json:"label"`
	Probability float64 `json:"probability"`
}
