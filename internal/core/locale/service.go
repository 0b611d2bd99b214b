package locale

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/text/language"

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

// Normalize canonicalizes a locale code ("EN", " fr ") to its lowercase
// BCP-47 form ("en", "fr"). It fails with a validation error for codes that
// do not parse as a language tag.
func Normalize(code string) (string, error) {
	code = strings.TrimSpace(code)

	validator := &validate.Validator{}
	validator.Required(FieldCode, code)
	if err := validator.Err(); err != nil {
		return "", err
	}

	tag, err := language.Parse(code)
	if err != nil {
		return "", validate.RequiredError(FieldCode, "Must be a valid locale code (e.g. \"en\", \"pt-BR\")")
	}

	return strings.ToLower(tag.String()), nil
}

// Resolve returns the locale for the given code, creating it on first
// reference. Creation is idempotent under concurrency.
func (service *Service) Resolve(context context.Context, code string) (*Locale, error) {
	normalized, err := Normalize(code)
	if err != nil {
		return nil, err
	}

	return service.repo.GetOrCreate(context, normalized)
}

// Find returns the locale for the given code without creating it.
func (service *Service) Find(context context.Context, code string) (*Locale, error) {
	normalized, err := Normalize(code)
	if err != nil {
		return nil, err
	}

	return service.repo.GetByCode(context, normalized)
}

func (service *Service) ListLocales(context context.Context) ([]*Locale, error) {
	return service.repo.ListLocales(context)
}
