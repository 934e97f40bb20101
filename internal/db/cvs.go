package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// CreateCV stores a new CV document and returns its ID.
func (db *DB) CreateCV(ctx context.Context, title, language, theme string, content any) (uuid.UUID, error) {
	contentJSON, err := json.Marshal(content)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal CV content: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO cvs (title, language, theme, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		title, language, theme, contentJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create CV: %w", err)
	}
	return id, nil
}

// GetCV loads a CV document by ID.
func (db *DB) GetCV(ctx context.Context, id uuid.UUID) (*CVRecord, error) {
	var rec CVRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, language, theme, content, created_at, updated_at
		 FROM cvs WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.Title, &rec.Language, &rec.Theme, &rec.Content, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get CV: %w", err)
	}
	return &rec, nil
}

// ListCVs returns stored CVs, newest first.
func (db *DB) ListCVs(ctx context.Context, limit, offset int) ([]CVRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, language, theme, content, created_at, updated_at
		 FROM cvs ORDER BY updated_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list CVs: %w", err)
	}
	defer rows.Close()

	var out []CVRecord
	for rows.Next() {
		var rec CVRecord
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Language, &rec.Theme, &rec.Content, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan CV row: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// UpdateCV replaces a CV's title, language, theme and content.
func (db *DB) UpdateCV(ctx context.Context, id uuid.UUID, title, language, theme string, content any) error {
	contentJSON, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal CV content: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE cvs SET title = $1, language = $2, theme = $3, content = $4, updated_at = NOW()
		 WHERE id = $5`,
		title, language, theme, contentJSON, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update CV: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCV removes a CV document.
func (db *DB) DeleteCV(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM cvs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete CV: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
