package tag

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lingohq/lingo/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Resolve returns the tag with the given name, creating it on first
// reference. Names are trimmed but otherwise stored verbatim; tags are
// free-form labels.
func (service *Service) Resolve(context context.Context, name string) (*Tag, error) {
	name = strings.TrimSpace(name)

	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, 100)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.repo.GetOrCreate(context, name)
}

// Find returns the tag with the given name without creating it.
func (service *Service) Find(context context.Context, name string) (*Tag, error) {
	return service.repo.GetByName(context, strings.TrimSpace(name))
}

func (service *Service) ListTags(context context.Context) ([]*Tag, error) {
	return service.repo.ListTags(context)
}
