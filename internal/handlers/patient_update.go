package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/strokesecure/stroke-records/internal/models"
)

// PatientUpdater defines the interface that the service must implement.
type PatientUpdater interface {
	Update(ctx context.Context, id string, patch *models.PatientPatch) (*models.PatientDB, error)
}

// NewPatientUpdateHandler returns an HTTP handler for editing a patient.
// Only fields present in the body are validated and changed; any stored
// prediction is cleared by the update.
// @Summary Update a patient record
// @Description Merges the provided fields into an existing record. Clears the stored prediction.
// @Tags patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Patient ID (24 hex chars)"
// @Param patch body models.PatientPatch true "Fields to change"
// @Success 200 {object} models.PatientDB "Updated patient record"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id or field value"
// @Failure 404 {object} handlers.ErrorResponse "Patient not found"
// @Router /patients/{id} [put]
func NewPatientUpdateHandler(svc PatientUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var patch models.PatientPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		updated, err := svc.Update(r.Context(), id, &patch)
		if err != nil {
			writePatientError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(updated)
	}
}
