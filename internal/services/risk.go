package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/strokesecure/stroke-records/internal/classifier"
	"github.com/strokesecure/stroke-records/internal/logger"
	"github.com/strokesecure/stroke-records/internal/models"
	"github.com/strokesecure/stroke-records/internal/validation"
)

// ErrModelUnavailable is returned when the classifier artifact could not be
// loaded. Patient CRUD stays fully usable; only prediction degrades.
var ErrModelUnavailable = errors.New("risk model unavailable")

// Scorer scores an encoded feature vector, loading the artifact on first use.
type Scorer interface {
	Score(features [classifier.FeatureCount]float64) (float64, error)
}

// PredictionWriter persists the outcome of an assessment on the record.
type PredictionWriter interface {
	SavePrediction(ctx context.Context, id string, prediction *models.Prediction) error
}

// VerdictCache caches verdicts between record mutations.
type VerdictCache interface {
	Get(ctx context.Context, patientID string) (*models.RiskVerdict, error)
	Set(ctx context.Context, patientID string, verdict *models.RiskVerdict) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// RiskService runs the assessment pipeline: encode the stored record,
// score it, persist and cache the verdict, and publish an audit event.
type RiskService struct {
	patients    PatientReader
	scorer      Scorer
	predictions PredictionWriter
	cache       VerdictCache
	kafkaWriter KafkaWriter
}

// NewRiskService creates a new RiskService.
func NewRiskService(
	patients PatientReader,
	scorer Scorer,
	predictions PredictionWriter,
	cache VerdictCache,
	kafkaWriter KafkaWriter,
) *RiskService {
	return &RiskService{
		patients:    patients,
		scorer:      scorer,
		predictions: predictions,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// publishAssessment publishes an assessment event to Kafka.
func (s *RiskService) publishAssessment(ctx context.Context, event models.AssessmentEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "assessment_id", event.AssessmentID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal assessment for Kafka", "assessment_id", event.AssessmentID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.PatientID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish assessment to Kafka", "assessment_id", event.AssessmentID, "error", err)
	} else {
		logger.Log.Infow("Assessment published to Kafka", "assessment_id", event.AssessmentID, "patient_id", event.PatientID)
	}
}

// Predict runs the risk pipeline for one patient. A cached verdict is
// returned as-is; cache entries only exist for records unchanged since the
// verdict was computed, because every mutation invalidates them.
func (s *RiskService) Predict(ctx context.Context, id string) (*models.RiskVerdict, error) {
	id, err := validation.PatientID(id)
	if err != nil {
		return nil, err
	}

	cached, err := s.cache.Get(ctx, id)
	if err != nil {
		logger.Log.Warnw("verdict cache unavailable, scoring directly", "patient_id", id, "err", err)
	}
	if cached != nil {
		return cached, nil
	}

	patient, err := s.patients.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get patient for prediction", "patient_id", id, "err", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	features, err := classifier.Encode(patient)
	if err != nil {
		logger.Log.Errorw("failed to encode patient features", "patient_id", id, "err", err)
		return nil, err
	}

	probability, err := s.scorer.Score(features)
	if err != nil {
		logger.Log.Errorw("scoring failed", "patient_id", id, "err", err)
		switch {
		case errors.Is(err, classifier.ErrArtifactMissing),
			errors.Is(err, classifier.ErrArtifactCorrupt),
			errors.Is(err, classifier.ErrNotLoaded):
			return nil, ErrModelUnavailable
		}
		return nil, err
	}

	verdict := &models.RiskVerdict{
		Label:       classifier.Label(probability),
		Probability: probability,
	}

	now := time.Now().UTC()
	if err := s.predictions.SavePrediction(ctx, id, &models.Prediction{
		Label:       verdict.Label,
		Probability: verdict.Probability,
		At:          now,
	}); err != nil {
		logger.Log.Errorw("failed to persist prediction", "patient_id", id, "err", err)
		return nil, err
	}

	if err := s.cache.Set(ctx, id, verdict); err != nil {
		logger.Log.Warnw("failed to cache verdict", "patient_id", id, "err", err)
	}

	s.publishAssessment(ctx, models.AssessmentEvent{
		AssessmentID: uuid.NewString(),
		PatientID:    id,
		Label:        verdict.Label,
		Probability:  verdict.Probability,
		Timestamp:    now.Unix(),
	})

	return verdict, nil
}
