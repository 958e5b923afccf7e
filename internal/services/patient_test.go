package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/strokesecure/stroke-records/internal/models"
	"github.com/strokesecure/stroke-records/internal/services"
	"github.com/strokesecure/stroke-records/internal/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testPatientID = "64f1a2b3c4d5e6f7a8b9c0d1"

func validPatient() *models.PatientDB {
	return &models.PatientDB{
		Name:            "Maria Santos",
		Age:             67,
		Gender:          models.GenderFemale,
		Hypertension:    true,
		EverMarried:     true,
		WorkType:        models.WorkPrivate,
		ResidenceType:   models.ResidenceUrban,
		AvgGlucoseLevel: 228.69,
		BMI:             36.6,
		SmokingStatus:   models.SmokingFormerly,
	}
}

func TestPatientService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockPatientReader(ctrl)
	mockWriter := services.NewMockPatientWriter(ctrl)
	mockCache := services.NewMockVerdictInvalidator(ctrl)

	svc := services.NewPatientService(mockReader, mockWriter, mockCache)

	t.Run("successful create", func(t *testing.T) {
		patient := validPatient()
		patient.Name = "  Maria Santos  "
		patient.LastPrediction = &models.Prediction{Probability: 0.9}

		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *models.PatientDB) (string, error) {
				assert.Equal(t, "Maria Santos", p.Name)
				assert.Nil(t, p.LastPrediction)
				return testPatientID, nil
			})

		id, err := svc.Create(context.Background(), patient)
		assert.NoError(t, err)
		assert.Equal(t, testPatientID, id)
	})

	t.Run("validation failures never reach the store", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(p *models.PatientDB)
			field  string
			rule   string
		}{
			{"empty name", func(p *models.PatientDB) { p.Name = "   " }, "name", validation.RuleInvalidName},
			{"name with digits", func(p *models.PatientDB) { p.Name = "R2D2" }, "name", validation.RuleInvalidName},
			{"negative age", func(p *models.PatientDB) { p.Age = -1 }, "age", validation.RuleInvalidAge},
			{"age above cap", func(p *models.PatientDB) { p.Age = 151 }, "age", validation.RuleInvalidAge},
			{"unknown gender", func(p *models.PatientDB) { p.Gender = "Robot" }, "gender", validation.RuleInvalidCategory},
			{"unknown work type", func(p *models.PatientDB) { p.WorkType = "Freelance" }, "work_type", validation.RuleInvalidCategory},
			{"unknown residence", func(p *models.PatientDB) { p.ResidenceType = "Suburban" }, "residence_type", validation.RuleInvalidCategory},
			{"unknown smoking status", func(p *models.PatientDB) { p.SmokingStatus = "Vapes" }, "smoking_status", validation.RuleInvalidCategory},
			{"glucose above cap", func(p *models.PatientDB) { p.AvgGlucoseLevel = 501 }, "avg_glucose_level", validation.RuleInvalidNumeric},
			{"bmi above cap", func(p *models.PatientDB) { p.BMI = 101 }, "bmi", validation.RuleInvalidNumeric},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				patient := validPatient()
				tt.mutate(patient)

				_, err := svc.Create(context.Background(), patient)

				var fieldErr *validation.FieldError
				assert.ErrorAs(t, err, &fieldErr)
				assert.Equal(t, tt.field, fieldErr.Field)
				assert.Equal(t, tt.rule, fieldErr.Rule)
			})
		}
	})

	t.Run("store error propagates", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return("", errors.New("insert failed"))

		_, err := svc.Create(context.Background(), validPatient())
		assert.EqualError(t, err, "insert failed")
	})
}

func TestPatientService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockPatientReader(ctrl)
	mockWriter := services.NewMockPatientWriter(ctrl)
	mockCache := services.NewMockVerdictInvalidator(ctrl)

	svc := services.NewPatientService(mockReader, mockWriter, mockCache)

	t.Run("found", func(t *testing.T) {
		oid, _ := primitive.ObjectIDFromHex(testPatientID)
		stored := validPatient()
		stored.ID = oid

		mockReader.EXPECT().
			GetByID(gomock.Any(), testPatientID).
			Return(stored, nil)

		got, err := svc.Get(context.Background(), testPatientID)
		assert.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), testPatientID).
			Return(nil, nil)

		_, err := svc.Get(context.Background(), testPatientID)
		assert.ErrorIs(t, err, services.ErrPatientNotFound)
	})

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		for _, id := range []string{"", "abc", "zzzzzzzzzzzzzzzzzzzzzzzz", testPatientID + "0"} {
			_, err := svc.Get(context.Background(), id)

			var fieldErr *validation.FieldError
			assert.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, validation.RuleInvalidID, fieldErr.Rule)
		}
	})
}

func TestPatientService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockPatientReader(ctrl)
	mockWriter := services.NewMockPatientWriter(ctrl)
	mockCache := services.NewMockVerdictInvalidator(ctrl)

	svc := services.NewPatientService(mockReader, mockWriter, mockCache)

	t.Run("returns all records", func(t *testing.T) {
		stored := []models.PatientDB{*validPatient(), *validPatient()}
		mockReader.EXPECT().List(gomock.Any()).Return(stored, nil)

		got, err := svc.List(context.Background())
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("store error propagates", func(t *testing.T) {
		mockReader.EXPECT().List(gomock.Any()).Return(nil, errors.New("cursor error"))

		_, err := svc.List(context.Background())
		assert.EqualError(t, err, "cursor error")
	})
}

func TestPatientService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockPatientReader(ctrl)
	mockWriter := services.NewMockPatientWriter(ctrl)
	mockCache := services.NewMockVerdictInvalidator(ctrl)

	svc := services.NewPatientService(mockReader, mockWriter, mockCache)

	newBMI := 28.4

	t.Run("cache invalidated before the store is touched", func(t *testing.T) {
		updated := validPatient()
		updated.BMI = newBMI

		gomock.InOrder(
			mockCache.EXPECT().Delete(gomock.Any(), testPatientID).Return(nil),
			mockWriter.EXPECT().Update(gomock.Any(), testPatientID, &models.PatientPatch{BMI: &newBMI}).Return(true, nil),
			mockReader.EXPECT().GetByID(gomock.Any(), testPatientID).Return(updated, nil),
		)

		got, err := svc.Update(context.Background(), testPatientID, &models.PatientPatch{BMI: &newBMI})
		assert.NoError(t, err)
		assert.Equal(t, newBMI, got.BMI)
	})

	t.Run("cache failure aborts the update", func(t *testing.T) {
		mockCache.EXPECT().Delete(gomock.Any(), testPatientID).Return(errors.New("redis down"))

		_, err := svc.Update(context.Background(), testPatientID, &models.PatientPatch{BMI: &newBMI})
		assert.EqualError(t, err, "redis down")
	})

	t.Run("unmatched id maps to not found", func(t *testing.T) {
		mockCache.EXPECT().Delete(gomock.Any(), testPatientID).Return(nil)
		mockWriter.EXPECT().Update(gomock.Any(), testPatientID, gomock.Any()).Return(false, nil)

		_, err := svc.Update(context.Background(), testPatientID, &models.PatientPatch{BMI: &newBMI})
		assert.ErrorIs(t, err, services.ErrPatientNotFound)
	})

	t.Run("invalid patch field rejected before cache or store", func(t *testing.T) {
		badAge := 200.0
		_, err := svc.Update(context.Background(), testPatientID, &models.PatientPatch{Age: &badAge})

		var fieldErr *validation.FieldError
		assert.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, validation.RuleInvalidAge, fieldErr.Rule)
	})

	t.Run("patch name is trimmed", func(t *testing.T) {
		rawName := "  John Doe "
		updated := validPatient()
		updated.Name = "John Doe"

		mockCache.EXPECT().Delete(gomock.Any(), testPatientID).Return(nil)
		mockWriter.EXPECT().
			Update(gomock.Any(), testPatientID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, patch *models.PatientPatch) (bool, error) {
				assert.Equal(t, "John Doe", *patch.Name)
				return true, nil
			})
		mockReader.EXPECT().GetByID(gomock.Any(), testPatientID).Return(updated, nil)

		got, err := svc.Update(context.Background(), testPatientID, &models.PatientPatch{Name: &rawName})
		assert.NoError(t, err)
		assert.Equal(t, "John Doe", got.Name)
	})
}

func TestPatientService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockPatientReader(ctrl)
	mockWriter := services.NewMockPatientWriter(ctrl)
	mockCache := services.NewMockVerdictInvalidator(ctrl)

	svc := services.NewPatientService(mockReader, mockWriter, mockCache)

	t.Run("successful delete invalidates cache first", func(t *testing.T) {
		gomock.InOrder(
			mockCache.EXPECT().Delete(gomock.Any(), testPatientID).Return(nil),
			mockWriter.EXPECT().Delete(gomock.Any(), testPatientID).Return(true, nil),
		)

		assert.NoError(t, svc.Delete(context.Background(), testPatientID))
	})

	t.Run("missing record maps to not found", func(t *testing.T) {
		mockCache.EXPECT().Delete(gomock.Any(), testPatientID).Return(nil)
		mockWriter.EXPECT().Delete(gomock.Any(), testPatientID).Return(false, nil)

		err := svc.Delete(context.Background(), testPatientID)
		assert.ErrorIs(t, err, services.ErrPatientNotFound)
	})

	t.Run("cache failure aborts the delete", func(t *testing.T) {
		mockCache.EXPECT().Delete(gomock.Any(), testPatientID).Return(errors.New("redis down"))

		err := svc.Delete(context.Background(), testPatientID)
		assert.EqualError(t, err, "redis down")
	})

	t.Run("malformed id rejected without touching cache or store", func(t *testing.T) {
		err := svc.Delete(context.Background(), "not-an-id")

		var fieldErr *validation.FieldError
		assert.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, validation.RuleInvalidID, fieldErr.Rule)
	})
}
