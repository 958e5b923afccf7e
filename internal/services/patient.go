package services

import (
	"context"
	"errors"

	"github.com/strokesecure/stroke-records/internal/logger"
	"github.com/strokesecure/stroke-records/internal/models"
	"github.com/strokesecure/stroke-records/internal/validation"
)

// ErrPatientNotFound is returned when no record exists for a well-formed id.
var ErrPatientNotFound = errors.New("patient not found")

// PatientReader defines read operations on the patient store.
type PatientReader interface {
	GetByID(ctx context.Context, id string) (*models.PatientDB, error)
	List(ctx context.Context) ([]models.PatientDB, error)
}

// PatientWriter defines write operations on the patient store.
type PatientWriter interface {
	Save(ctx context.Context, patient *models.PatientDB) (string, error)
	Update(ctx context.Context, id string, patch *models.PatientPatch) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// VerdictInvalidator drops cached verdicts for a patient.
type VerdictInvalidator interface {
	Delete(ctx context.Context, patientID string) error
}

// PatientService orchestrates patient record CRUD: every field is validated
// before the store sees it, and any mutation invalidates the cached verdict
// so a stale assessment can never be served for changed data.
type PatientService struct {
	reader PatientReader
	writer PatientWriter
	cache  VerdictInvalidator
}

// NewPatientService creates a new PatientService.
func NewPatientService(reader PatientReader, writer PatientWriter, cache VerdictInvalidator) *PatientService {
	return &PatientService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// Create validates every field, then persists a new record and returns the
// store-assigned id.
func (s *PatientService) Create(ctx context.Context, patient *models.PatientDB) (string, error) {
	name, err := validation.PatientName(patient.Name)
	if err != nil {
		return "", err
	}
	patient.Name = name

	if _, err := validation.Age(patient.Age); err != nil {
		return "", err
	}
	if _, err := validation.Gender(patient.Gender); err != nil {
		return "", err
	}
	if _, err := validation.WorkType(patient.WorkType); err != nil {
		return "", err
	}
	if _, err := validation.ResidenceType(patient.ResidenceType); err != nil {
		return "", err
	}
	if _, err := validation.SmokingStatus(patient.SmokingStatus); err != nil {
		return "", err
	}
	if _, err := validation.Glucose(patient.AvgGlucoseLevel); err != nil {
		return "", err
	}
	if _, err := validation.BMI(patient.BMI); err != nil {
		return "", err
	}

	// New records carry no prediction until one is explicitly computed
	patient.LastPrediction = nil

	id, err := s.writer.Save(ctx, patient)
	if err != nil {
		logger.Log.Errorw("failed to save patient", "err", err)
		return "", err
	}

	return id, nil
}

// Get returns one record by id. The id syntax is checked before the store
// is consulted.
func (s *PatientService) Get(ctx context.Context, id string) (*models.PatientDB, error) {
	id, err := validation.PatientID(id)
	if err != nil {
		return nil, err
	}

	patient, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get patient", "patient_id", id, "err", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return patient, nil
}

// List returns all records, unordered.
func (s *PatientService) List(ctx context.Context) ([]models.PatientDB, error) {
	patients, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list patients", "err", err)
		return nil, err
	}
	return patients, nil
}

// Update validates only the fields present in the patch, merges them into
// the stored record, and returns the updated record. The stored prediction
// is cleared by the store and its cache entry is invalidated first, so no
// stale verdict survives the mutation.
func (s *PatientService) Update(ctx context.Context, id string, patch *models.PatientPatch) (*models.PatientDB, error) {
	id, err := validation.PatientID(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name, err := validation.PatientName(*patch.Name)
		if err != nil {
			return nil, err
		}
		patch.Name = &name
	}
	if patch.Age != nil {
		if _, err := validation.Age(*patch.Age); err != nil {
			return nil, err
		}
	}
	if patch.Gender != nil {
		if _, err := validation.Gender(*patch.Gender); err != nil {
			return nil, err
		}
	}
	if patch.WorkType != nil {
		if _, err := validation.WorkType(*patch.WorkType); err != nil {
			return nil, err
		}
	}
	if patch.ResidenceType != nil {
		if _, err := validation.ResidenceType(*patch.ResidenceType); err != nil {
			return nil, err
		}
	}
	if patch.SmokingStatus != nil {
		if _, err := validation.SmokingStatus(*patch.SmokingStatus); err != nil {
			return nil, err
		}
	}
	if patch.AvgGlucoseLevel != nil {
		if _, err := validation.Glucose(*patch.AvgGlucoseLevel); err != nil {
			return nil, err
		}
	}
	if patch.BMI != nil {
		if _, err := validation.BMI(*patch.BMI); err != nil {
			return nil, err
		}
	}

	// Invalidate before mutating: if the cache is unreachable the update
	// aborts rather than leaving a stale verdict behind
	if err := s.cache.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to invalidate verdict cache", "patient_id", id, "err", err)
		return nil, err
	}

	matched, err := s.writer.Update(ctx, id, patch)
	if err != nil {
		logger.Log.Errorw("failed to update patient", "patient_id", id, "err", err)
		return nil, err
	}
	if !matched {
		return nil, ErrPatientNotFound
	}

	updated, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrPatientNotFound
	}
	return updated, nil
}

// Delete removes a record. The id is permanently retired by the store.
func (s *PatientService) Delete(ctx context.Context, id string) error {
	id, err := validation.PatientID(id)
	if err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to invalidate verdict cache", "patient_id", id, "err", err)
		return err
	}

	deleted, err := s.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete patient", "patient_id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrPatientNotFound
	}

	return nil
}
