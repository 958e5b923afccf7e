package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/strokesecure/stroke-records/internal/logger"
	"github.com/strokesecure/stroke-records/internal/middlewares"
	"github.com/strokesecure/stroke-records/internal/models"
)

// ErrDuplicateUsername is returned when an insert hits the unique username index.
var ErrDuplicateUsername = errors.New("username already taken")

const pgUniqueViolation = "23505"

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername looks a user up by exact, case-sensitive username.
// Returns (nil, nil) when no such user exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, password_hash, created_at
		FROM users
		WHERE username = $1
		LIMIT 1
	`

	var user models.UserDB
	var err error
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		err = tx.GetContext(ctx, &user, query, username)
	} else {
		err = r.db.GetContext(ctx, &user, query, username)
	}

	// Log with query in single line; the user struct never carries the hash into logs
	logger.Log.Infow("user lookup",
		"query", strings.Join(strings.Fields(query), " "),
		"username", username,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Bootstrap idempotently creates the users table. Safe to call on every
// process start.
func (r *UserWriteRepository) Bootstrap(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS users (
			user_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username VARCHAR(20) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`
	_, err := r.db.ExecContext(ctx, schema)

	logger.Log.Infow("users table bootstrap", "error", err)

	return err
}

// Save inserts a new user row and returns the generated key. A concurrent
// insert of the same username surfaces as ErrDuplicateUsername.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash string) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING user_id
	`

	var userID uuid.UUID
	var err error
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		err = tx.GetContext(ctx, &userID, query, username, passwordHash)
	} else {
		err = r.db.GetContext(ctx, &userID, query, username, passwordHash)
	}

	logger.Log.Infow("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"username", username,
		"result", userID,
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return uuid.Nil, ErrDuplicateUsername
	}
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}
