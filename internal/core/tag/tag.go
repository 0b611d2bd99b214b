package tag

import "time"

// Tag is a free-form label used to categorize translations for filtering
// and export.
//
// Tags are append-only: created lazily on first reference by a translation
// write, never updated or deleted here.
type Tag struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
}

// Field identifiers used in validation errors.
const (
	FieldName = "tag"
)
