package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PatientDeleter defines the interface that the service must implement.
type PatientDeleter interface {
	Delete(ctx context.Context, id string) error
}

// PatientDeleteResponse represents a successful deletion response
// swagger:model PatientDeleteResponse
type PatientDeleteResponse struct {
	// Success message
	// default: Patient deleted successfully
	Message string `json:"message"`
}

// NewPatientDeleteHandler returns an HTTP handler for removing a patient.
// @Summary Delete a patient record
// @Description Removes a patient. The identifier is permanently retired.
// @Tags patients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Patient ID (24 hex chars)"
// @Success 200 {object} handlers.PatientDeleteResponse "Patient deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid patient ID format"
// @Failure 404 {object} handlers.ErrorResponse "Patient not found"
// @Router /patients/{id} [delete]
func NewPatientDeleteHandler(svc PatientDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := svc.Delete(r.Context(), id); err != nil {
			writePatientError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PatientDeleteResponse{
			Message: "Patient deleted successfully",
		})
	}
}
