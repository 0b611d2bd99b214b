package locale

import "time"

// Locale represents a language/region code under which translation keys are scoped.
//
// Locales are append-only: they are created lazily the first time a
// translation references their code and are never updated or deleted here.
type Locale struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"-"`
}

// Field identifiers used in validation errors.
const (
	FieldCode = "locale"
)
