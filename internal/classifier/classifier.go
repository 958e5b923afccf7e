// Package classifier loads the trained stroke model artifact and scores
// encoded patient feature vectors against it.
package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/strokesecure/stroke-records/internal/logger"
)

// Threshold is the fixed decision cutoff: probabilities at or above it are
// labeled high-risk. Clinical policy constant, not configurable per call.
const Threshold = 0.75

// FeatureCount is the length of the encoded feature vector.
const FeatureCount = 9

// Error variables
var (
	ErrArtifactMissing = errors.New("model artifact missing")
	ErrArtifactCorrupt = errors.New("model artifact corrupt")
	ErrNotLoaded       = errors.New("model not loaded")
)

// Artifact is the serialized classifier: a standardized logistic-regression
// head over the fixed 9-feature vector. Mean and Scale standardize each
// feature, Coef and Intercept form the linear term.
type Artifact struct {
	Mean      []float64 `json:"mean"`
	Scale     []float64 `json:"scale"`
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
}

// Model owns the artifact for the lifetime of the process. The first Load
// (or Score) deserializes it exactly once; a failed load is sticky until
// the process restarts.
type Model struct {
	path string

	once      sync.Once
	artifact  *Artifact
	loadErr   error
	loadCount int
}

// New creates a Model bound to an artifact path. Nothing is read until the
// first Load or Score call.
func New(path string) *Model {
	return &Model{path: path}
}

// Load deserializes the artifact from disk. Subsequent calls are no-ops and
// return the outcome of the first attempt.
func (m *Model) Load() error {
	m.once.Do(func() {
		m.loadCount++

		data, err := os.ReadFile(m.path)
		if err != nil {
			if os.IsNotExist(err) {
				m.loadErr = fmt.Errorf("%w: %s", ErrArtifactMissing, m.path)
			} else {
				m.loadErr = fmt.Errorf("%w: %v", ErrArtifactCorrupt, err)
			}
			logger.Log.Errorw("failed to load model artifact", "path", m.path, "error", m.loadErr)
			return
		}

		var art Artifact
		if err := json.Unmarshal(data, &art); err != nil {
			m.loadErr = fmt.Errorf("%w: %v", ErrArtifactCorrupt, err)
			logger.Log.Errorw("failed to decode model artifact", "path", m.path, "error", err)
			return
		}

		if len(art.Mean) != FeatureCount || len(art.Scale) != FeatureCount || len(art.Coef) != FeatureCount {
			m.loadErr = fmt.Errorf("%w: expected %d-feature vectors", ErrArtifactCorrupt, FeatureCount)
			logger.Log.Errorw("model artifact has wrong shape", "path", m.path,
				"mean", len(art.Mean), "scale", len(art.Scale), "coef", len(art.Coef))
			return
		}
		for i, s := range art.Scale {
			if s == 0 || math.IsNaN(s) {
				m.loadErr = fmt.Errorf("%w: zero scale at position %d", ErrArtifactCorrupt, i)
				return
			}
		}

		m.artifact = &art
		logger.Log.Infow("model artifact loaded", "path", m.path)
	})
	return m.loadErr
}

// Score returns the probability of the positive class for an encoded
// feature vector, loading the artifact on first use.
func (m *Model) Score(features [FeatureCount]float64) (float64, error) {
	if err := m.Load(); err != nil {
		return 0, err
	}

	art := m.artifact
	z := art.Intercept
	for i, x := range features {
		z += art.Coef[i] * (x - art.Mean[i]) / art.Scale[i]
	}
	return 1 / (1 + math.Exp(-z)), nil
}

// Label applies the fixed decision threshold to a probability.
func Label(probability float64) bool {
	return probability >= Threshold
}
