package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/strokesecure/stroke-records/internal/logger"
	"github.com/strokesecure/stroke-records/internal/models"
)

// VerdictCacheRepository caches risk verdicts in Redis so repeated predict
// calls for an unchanged record skip the scoring path. Entries expire on
// TTL and are invalidated whenever the record mutates.
type VerdictCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached verdicts
}

// NewVerdictCacheRepository creates a new repository instance with optional TTL
func NewVerdictCacheRepository(client *redis.Client, expiration time.Duration) *VerdictCacheRepository {
	return &VerdictCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func verdictKey(patientID string) string {
	return fmt.Sprintf("risk_verdict:%s", patientID)
}

// Get fetches a cached verdict for a patient. Returns (nil, nil) on a miss.
func (r *VerdictCacheRepository) Get(ctx context.Context, patientID string) (*models.RiskVerdict, error) {
	key := verdictKey(patientID)

	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Log.Infow("verdict cache miss", "key", key)
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("verdict cache get failed", "key", key, "error", err)
		return nil, err
	}

	var verdict models.RiskVerdict
	if err := json.Unmarshal([]byte(val), &verdict); err != nil {
		logger.Log.Errorw("verdict cache decode failed", "key", key, "value", val, "error", err)
		return nil, err
	}

	logger.Log.Infow("verdict cache hit", "key", key, "label", verdict.Label)

	return &verdict, nil
}

// Set caches a verdict with the configured expiration.
func (r *VerdictCacheRepository) Set(ctx context.Context, patientID string, verdict *models.RiskVerdict) error {
	key := verdictKey(patientID)

	data, err := json.Marshal(verdict)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("verdict cache set", "key", key, "error", err)

	return err
}

// Delete drops a cached verdict. Called on record update and delete.
func (r *VerdictCacheRepository) Delete(ctx context.Context, patientID string) error {
	key := verdictKey(patientID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("verdict cache invalidate", "key", key, "error", err)

	return err
}
