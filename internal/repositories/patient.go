package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/strokesecure/stroke-records/internal/logger"
	"github.com/strokesecure/stroke-records/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PatientRepository persists patient documents in MongoDB. Callers pass
// hex ids that have already cleared the identifier validator; the repo
// converts them to ObjectIDs.
type PatientRepository struct {
	collection *mongo.Collection
}

func NewPatientRepository(db *mongo.Database) *PatientRepository {
	return &PatientRepository{collection: db.Collection("patients")}
}

// Save inserts a new patient document and returns the store-generated id.
func (r *PatientRepository) Save(ctx context.Context, patient *models.PatientDB) (string, error) {
	now := time.Now().UTC()
	patient.ID = primitive.NewObjectID()
	patient.CreatedAt = now
	patient.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, patient)

	logger.Log.Infow("patient insert",
		"patient_id", patient.ID.Hex(),
		"error", err,
	)

	if err != nil {
		return "", err
	}
	return patient.ID.Hex(), nil
}

// GetByID fetches one patient document. Returns (nil, nil) when absent.
func (r *PatientRepository) GetByID(ctx context.Context, id string) (*models.PatientDB, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var patient models.PatientDB
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&patient)

	logger.Log.Infow("patient lookup",
		"patient_id", id,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &patient, nil
}

// List returns every patient document. Order is whatever the store yields.
func (r *PatientRepository) List(ctx context.Context) ([]models.PatientDB, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		logger.Log.Errorw("patient list failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	patients := make([]models.PatientDB, 0)
	if err := cursor.All(ctx, &patients); err != nil {
		logger.Log.Errorw("patient list decode failed", "error", err)
		return nil, err
	}

	logger.Log.Infow("patient list", "count", len(patients))

	return patients, nil
}

// Update merges the set fields of the patch into an existing document and
// drops any stored prediction, which is only valid for the pre-update
// record. Returns (false, nil) when no document matched.
func (r *PatientRepository) Update(ctx context.Context, id string, patch *models.PatientPatch) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Age != nil {
		set["age"] = *patch.Age
	}
	if patch.Gender != nil {
		set["gender"] = *patch.Gender
	}
	if patch.Hypertension != nil {
		set["hypertension"] = *patch.Hypertension
	}
	if patch.EverMarried != nil {
		set["ever_married"] = *patch.EverMarried
	}
	if patch.WorkType != nil {
		set["work_type"] = *patch.WorkType
	}
	if patch.ResidenceType != nil {
		set["residence_type"] = *patch.ResidenceType
	}
	if patch.AvgGlucoseLevel != nil {
		set["avg_glucose_level"] = *patch.AvgGlucoseLevel
	}
	if patch.BMI != nil {
		set["bmi"] = *patch.BMI
	}
	if patch.SmokingStatus != nil {
		set["smoking_status"] = *patch.SmokingStatus
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set":   set,
		"$unset": bson.M{"last_prediction": ""},
	})

	logger.Log.Infow("patient update",
		"patient_id", id,
		"matched", res != nil && res.MatchedCount > 0,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// SavePrediction sets the last_prediction block after a successful risk
// assessment.
func (r *PatientRepository) SavePrediction(ctx context.Context, id string, prediction *models.Prediction) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"last_prediction": prediction},
	})

	logger.Log.Infow("patient prediction saved",
		"patient_id", id,
		"label", prediction.Label,
		"error", err,
	)

	return err
}

// Delete removes a patient document. ObjectIDs are never reused, so the id
// is permanently retired. Returns (false, nil) when no document matched.
func (r *PatientRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, err
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})

	logger.Log.Infow("patient delete",
		"patient_id", id,
		"deleted", res != nil && res.DeletedCount > 0,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
