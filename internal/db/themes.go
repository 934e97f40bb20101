package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// GetTheme loads a stored theme override by name.
func (db *DB) GetTheme(ctx context.Context, name string) (*ThemeRecord, error) {
	var rec ThemeRecord
	err := db.pool.QueryRow(ctx,
		`SELECT name, config, created_at, updated_at FROM themes WHERE name = $1`,
		name,
	).Scan(&rec.Name, &rec.Config, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get theme: %w", err)
	}
	return &rec, nil
}

// ListThemes returns all stored theme overrides.
func (db *DB) ListThemes(ctx context.Context) ([]ThemeRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT name, config, created_at, updated_at FROM themes ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}
	defer rows.Close()

	var out []ThemeRecord
	for rows.Next() {
		var rec ThemeRecord
		if err := rows.Scan(&rec.Name, &rec.Config, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan theme row: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// UpsertTheme stores or replaces a theme override.
func (db *DB) UpsertTheme(ctx context.Context, name string, config any) error {
	configJSON, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal theme config: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO themes (name, config)
		 VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET config = $2, updated_at = NOW()`,
		name, configJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert theme: %w", err)
	}
	return nil
}

// DeleteTheme removes a stored theme override.
func (db *DB) DeleteTheme(ctx context.Context, name string) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM themes WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete theme: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
