package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/strokesecure/stroke-records/internal/models"
	"github.com/strokesecure/stroke-records/internal/services"
)

// Predictor defines the interface that the risk service must implement.
type Predictor interface {
	Predict(ctx context.Context, id string) (*models.RiskVerdict, error)
}

// NewPredictHandler returns an HTTP handler running the risk assessment
// pipeline for one patient. A broken model artifact degrades only this
// endpoint; record CRUD keeps working.
// @Summary Assess stroke risk for a patient
// @Description Encodes the stored record, scores it against the classifier, and returns the verdict.
// @Tags patients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Patient ID (24 hex chars)"
// @Success 200 {object} models.RiskVerdict "Risk verdict"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id or record fields outside their domain"
// @Failure 404 {object} handlers.ErrorResponse "Patient not found"
// @Failure 503 {object} handlers.ErrorResponse "Risk model unavailable"
// @Router /patients/{id}/predict [post]
func NewPredictHandler(svc Predictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		verdict, err := svc.Predict(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrModelUnavailable) {
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Risk assessment is temporarily unavailable",
				})
				return
			}
			writePatientError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(verdict)
	}
}
