package translation

import "context"

// Repository defines the data access contract for translations.
//
// All write methods are transactional: a failed tag association never leaves
// an orphan translation row behind.
type Repository interface {
	// List applies the filter predicates and returns one page of
	// translations plus the total match count.
	List(context context.Context, filter Filter, limit, offset int) ([]*Translation, int, error)

	// GetByID returns the translation with its locale code and full tag set,
	// or NotFound.
	GetByID(context context.Context, id int64) (*Translation, error)

	// Create inserts the translation row and associates it with exactly the
	// one given tag. A (key, locale_id) duplicate surfaces as a conflict.
	Create(context context.Context, t *Translation, tagID int64) error

	// Update rewrites key, locale, and content, and REPLACES the whole tag
	// set with the one given tag. NotFound if the id does not exist;
	// conflict if the new (key, locale_id) collides with another row.
	Update(context context.Context, t *Translation, tagID int64) error

	// Delete hard-deletes the row; association rows cascade.
	Delete(context context.Context, id int64) error

	// Search returns every translation whose key or content contains the
	// term, case-insensitively. No pagination is applied.
	Search(context context.Context, term string) ([]*Translation, error)

	// ExportBatches streams all rows for a locale (optionally restricted to
	// a tag) through emit, reading at most batchSize rows per query. It
	// stops issuing reads once the context is cancelled, and any batch error
	// aborts the whole export.
	ExportBatches(context context.Context, localeID int64, tagID *int64, batchSize int, emit func(ExportRow) error) error
}
