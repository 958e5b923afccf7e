package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/strokesecure/stroke-records/internal/logger"
	"github.com/strokesecure/stroke-records/internal/models"
)

// PatientLister defines the interface that the service must implement.
type PatientLister interface {
	List(ctx context.Context) ([]models.PatientDB, error)
}

// PatientListResponse represents the full patient listing
// swagger:model PatientListResponse
type PatientListResponse struct {
	// Patient records, unordered
	Patients []models.PatientDB `json:"patients"`
}

// NewPatientListHandler returns an HTTP handler listing all patients.
// @Summary List patient records
// @Description Returns every patient record. Order is not guaranteed.
// @Tags patients
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.PatientListResponse "All patient records"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /patients [get]
func NewPatientListHandler(svc PatientLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patients, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PatientListResponse{
			Patients: patients,
		})
	}
}
