package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/strokesecure/stroke-records/internal/logger"
	"github.com/strokesecure/stroke-records/internal/models"
	"github.com/strokesecure/stroke-records/internal/services"
)

// PatientGetter defines the interface that the service must implement.
type PatientGetter interface {
	Get(ctx context.Context, id string) (*models.PatientDB, error)
}

// NewPatientGetHandler returns an HTTP handler for fetching one patient.
// @Summary Get a patient record
// @Description Returns a single patient by id. Malformed ids are rejected before the store is queried.
// @Tags patients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Patient ID (24 hex chars)"
// @Success 200 {object} models.PatientDB "Patient record"
// @Failure 400 {object} handlers.ErrorResponse "Invalid patient ID format"
// @Failure 404 {object} handlers.ErrorResponse "Patient not found"
// @Router /patients/{id} [get]
func NewPatientGetHandler(svc PatientGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		patient, err := svc.Get(r.Context(), id)
		if err != nil {
			writePatientError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(patient)
	}
}

// writePatientError maps patient service errors onto HTTP statuses.
func writePatientError(w http.ResponseWriter, err error) {
	if fieldErr, ok := asFieldError(err); ok {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error: fieldErrorMessage(fieldErr),
		})
		return
	}
	switch {
	case errors.Is(err, services.ErrPatientNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error: "Patient not found",
		})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error: "Internal server error",
		})
	}
}
