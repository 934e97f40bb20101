package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CVRecord is a stored CV document. Content holds the full document tree
// as JSON; the layout engine normalizes it at render time, so the stored
// shape may lag behind the canonical one.
type CVRecord struct {
	ID        uuid.UUID       `json:"id"`
	Title     string          `json:"title"`
	Language  string          `json:"language"`
	Theme     string          `json:"theme"`
	Content   json.RawMessage `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ThemeRecord is a stored theme override. Config carries the theme value
// object as JSON; built-in themes need no record.
type ThemeRecord struct {
	Name      string          `json:"name"`
	Config    json.RawMessage `json:"config"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
