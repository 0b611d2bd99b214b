package locale

import "context"

// Repository defines the data access contract.
type Repository interface {
	// GetOrCreate returns the locale with the given code, inserting it first
	// if absent. It is race-safe: concurrent callers for the same new code
	// always observe a single row.
	GetOrCreate(context context.Context, code string) (*Locale, error)

	// GetByCode returns the locale with the given code, or NotFound.
	GetByCode(context context.Context, code string) (*Locale, error)

	ListLocales(context context.Context) ([]*Locale, error)
}
