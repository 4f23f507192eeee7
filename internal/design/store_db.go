package design

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
	pgUniqueCode = "23505"
)

// ErrDuplicateID means the store already holds the generated identifier.
var ErrDuplicateID = errors.New("duplicate design id")

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresStore) Create(ctx context.Context, d Design) (string, error) {
	id := "d_" + uuid.NewString()

	layers, err := json.Marshal(d.Layers)
	if err != nil {
		return "", err
	}

	err = withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO designs (id, user_id, sneaker_id, name, layers, preview_url, is_public)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, id, nullIfEmpty(d.UserID), d.SneakerID, d.Name, layers, nullIfEmpty(d.PreviewURL), d.IsPublic)
		return err
	})

	if isUniqueViolation(err) {
		return "", fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueCode
}

func (s *PostgresStore) List(ctx context.Context, userID string) ([]Design, error) {
	query := `
		SELECT id, COALESCE(user_id, ''), sneaker_id, name, layers, COALESCE(preview_url, ''), is_public
		FROM designs
	`
	args := []any{}
	if userID != "" {
		query += ` WHERE user_id = $1`
		args = append(args, userID)
	}
	query += ` ORDER BY id ASC`

	var out []Design
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Design, 0, 16)
		for rows.Next() {
			var (
				d      Design
				layers []byte
			)
			if err := rows.Scan(&d.ID, &d.UserID, &d.SneakerID, &d.Name, &layers, &d.PreviewURL, &d.IsPublic); err != nil {
				return err
			}
			if err := json.Unmarshal(layers, &d.Layers); err != nil {
				return err
			}
			out = append(out, d)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
