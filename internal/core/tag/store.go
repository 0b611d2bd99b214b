package tag

import "context"

// Repository defines the data access contract.
type Repository interface {
	// GetOrCreate returns the tag with the given name, inserting it first if
	// absent. Race-safe: concurrent callers for the same new name always
	// observe a single row.
	GetOrCreate(context context.Context, name string) (*Tag, error)

	// GetByName returns the tag with the given name, or NotFound.
	GetByName(context context.Context, name string) (*Tag, error)

	ListTags(context context.Context) ([]*Tag, error)
}
