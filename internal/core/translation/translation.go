package translation

import "time"

// Translation is a single localized text entry, identified by its key within
// a locale. The (key, locale_id) pair is unique; the same key may exist once
// per locale.
//
// Tags is the full associated tag set. The write path currently syncs exactly
// one tag per create/update (mirroring the association semantics this API has
// always had), while reads return every tag the association table holds.
type Translation struct {
	ID        int64     `json:"id"`
	Key       string    `json:"key"`
	Locale    string    `json:"locale"`
	LocaleID  int64     `json:"-"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExportRow is the lightweight key/content pair emitted by the export
// pipeline. Everything else (ids, timestamps, tags) is deliberately dropped
// to keep the payload small at 100k+ rows.
type ExportRow struct {
	Key     string `json:"key"`
	Content string `json:"content"`
}

// Filter holds the optional, composable listing predicates.
//
// Locale is effectively mandatory for predictable latency at scale: omitting
// it is correct but scans every locale. Content is a substring match using
// ILIKE, so it is case-insensitive by construction.
type Filter struct {
	Locale  string
	Key     string
	Tag     string
	Content string
}

// WriteInput is the validated payload for create and update operations.
type WriteInput struct {
	Key     string
	Locale  string
	Content string
	Tag     string
}

// Field identifiers used in validation errors.
const (
	FieldKey     = "key"
	FieldLocale  = "locale"
	FieldContent = "content"
	FieldTag     = "tag"
	FieldQuery   = "query"
)

// MaxKeyLength bounds translation keys so the (locale_id, key) index stays
// within btree limits.
const MaxKeyLength = 255
