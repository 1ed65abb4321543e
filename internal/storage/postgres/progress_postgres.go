package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProgressPostgres keeps the whole progress record as one jsonb row per
// record key, mirroring the single-key layout of the client-side store. Saves
// replace the full payload.
type ProgressPostgres struct {
	db        *pgxpool.Pool
	recordKey string
}

func NewProgressPostgres(db *pgxpool.Pool, recordKey string) *ProgressPostgres {
	return &ProgressPostgres{db: db, recordKey: recordKey}
}

func (r *ProgressPostgres) LoadRecord(ctx context.Context) (models.ProgressRecord, error) {
	query := `
        SELECT payload FROM progress_records WHERE record_key = $1
    `
	var payload []byte
	err := r.db.QueryRow(ctx, query, r.recordKey).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ProgressRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load progress record: %w", err)
	}

	var rec models.ProgressRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode progress record: %w", err)
	}
	return rec, nil
}

func (r *ProgressPostgres) SaveRecord(ctx context.Context, rec models.ProgressRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode progress record: %w", err)
	}

	query := `
        INSERT INTO progress_records (record_key, payload, updated_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (record_key) DO UPDATE SET payload = $2, updated_at = $3
    `
	if _, err := r.db.Exec(ctx, query, r.recordKey, payload, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save progress record: %w", err)
	}
	return nil
}
