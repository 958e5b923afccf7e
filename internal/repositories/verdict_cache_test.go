package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/strokesecure/stroke-records/internal/models"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestVerdictCacheRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewVerdictCacheRepository(rdb, 2*time.Second)
	patientID := "64f1a2b3c4d5e6f7a8b9c0d1"

	t.Run("Set and Get verdict", func(t *testing.T) {
		verdict := &models.RiskVerdict{Label: true, Probability: 0.81}

		assert.NoError(t, repo.Set(ctx, patientID, verdict))

		got, err := repo.Get(ctx, patientID)
		assert.NoError(t, err)
		assert.Equal(t, verdict, got)
	})

	t.Run("Miss returns nil without error", func(t *testing.T) {
		got, err := repo.Get(ctx, "aaaaaaaaaaaaaaaaaaaaaaaa")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Delete invalidates", func(t *testing.T) {
		verdict := &models.RiskVerdict{Label: false, Probability: 0.2}
		assert.NoError(t, repo.Set(ctx, patientID, verdict))

		assert.NoError(t, repo.Delete(ctx, patientID))

		got, err := repo.Get(ctx, patientID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Entry expires after TTL", func(t *testing.T) {
		verdict := &models.RiskVerdict{Label: true, Probability: 0.9}
		assert.NoError(t, repo.Set(ctx, patientID, verdict))

		time.Sleep(3 * time.Second)

		got, err := repo.Get(ctx, patientID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
