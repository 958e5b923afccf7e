package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/strokesecure/stroke-records/internal/logger"
	"github.com/strokesecure/stroke-records/internal/models"
)

// PatientCreator defines the interface that the service must implement.
type PatientCreator interface {
	Create(ctx context.Context, patient *models.PatientDB) (string, error)
}

// PatientRequest represents the JSON body for creating a patient record
// swagger:model PatientRequest
type PatientRequest struct {
	Name            string  `json:"name"`
	Age             float64 `json:"age"`
	Gender          string  `json:"gender"`
	Hypertension    bool    `json:"hypertension"`
	EverMarried     bool    `json:"ever_married"`
	WorkType        string  `json:"work_type"`
	ResidenceType   string  `json:"residence_type"`
	AvgGlucoseLevel float64 `json:"avg_glucose_level"`
	BMI             float64 `json:"bmi"`
	SmokingStatus   string  `json:"smoking_status"`
}

// PatientCreateResponse represents a successful patient creation response
// swagger:model PatientCreateResponse
type PatientCreateResponse struct {
	// Store-assigned patient identifier
	ID string `json:"id"`

	// Success message
	// default: Patient added successfully
	Message string `json:"message"`
}

// NewPatientCreateHandler returns an HTTP handler for adding a patient.
// @Summary Add a patient record
// @Description Validates all clinical fields and persists a new patient document.
// @Tags patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param patientRequest body handlers.PatientRequest true "Patient record"
// @Success 201 {object} handlers.PatientCreateResponse "Patient created"
// @Failure 400 {object} handlers.ErrorResponse "A field failed validation"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /patients [post]
func NewPatientCreateHandler(svc PatientCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PatientRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		patient := &models.PatientDB{
			Name:            req.Name,
			Age:             req.Age,
			Gender:          req.Gender,
			Hypertension:    req.Hypertension,
			EverMarried:     req.EverMarried,
			WorkType:        req.WorkType,
			ResidenceType:   req.ResidenceType,
			AvgGlucoseLevel: req.AvgGlucoseLevel,
			BMI:             req.BMI,
			SmokingStatus:   req.SmokingStatus,
		}

		id, err := svc.Create(r.Context(), patient)
		if err != nil {
			if fieldErr, ok := asFieldError(err); ok {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: fieldErrorMessage(fieldErr),
				})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(PatientCreateResponse{
			ID:      id,
			Message: "Patient added successfully",
		})
	}
}
