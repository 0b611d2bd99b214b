package translation

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/lingohq/lingo/internal/core/locale"
	"github.com/lingohq/lingo/internal/core/tag"
	"github.com/lingohq/lingo/internal/platform/apperr"
	"github.com/lingohq/lingo/internal/platform/constants"
	"github.com/lingohq/lingo/internal/platform/dberr"
	"github.com/lingohq/lingo/internal/platform/validate"
)

// LocaleResolver is the slice of the locale service this package needs.
//
// Resolve creates the locale on first reference (write path); Find never
// creates (read/export path).
type LocaleResolver interface {
	Resolve(context context.Context, code string) (*locale.Locale, error)
	Find(context context.Context, code string) (*locale.Locale, error)
}

// TagResolver is the slice of the tag service this package needs.
type TagResolver interface {
	Resolve(context context.Context, name string) (*tag.Tag, error)
	Find(context context.Context, name string) (*tag.Tag, error)
}

// Service orchestrates all translation read and write operations. Entities
// are plain records; every query lives behind [Repository].
type Service struct {
	repo    Repository
	locales LocaleResolver
	tags    TagResolver
	logger  *slog.Logger
}

func NewService(repo Repository, locales LocaleResolver, tags TagResolver, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		locales: locales,
		tags:    tags,
		logger:  logger,
	}
}

func validateWrite(input WriteInput) error {
	validator := &validate.Validator{}
	validator.Required(FieldKey, input.Key).
		MaxLen(FieldKey, input.Key, MaxKeyLength).
		Required(FieldLocale, input.Locale).
		Required(FieldContent, input.Content).
		Required(FieldTag, input.Tag)
	return validator.Err()
}

// Create inserts a new translation. Locale and tag are resolved with
// get-or-create semantics before the transactional row insert, so a failed
// write never leaves an orphan translation (spare locale/tag rows are
// harmless and append-only).
func (service *Service) Create(context context.Context, input WriteInput) (*Translation, error) {
	if err := validateWrite(input); err != nil {
		return nil, err
	}

	loc, err := service.locales.Resolve(context, input.Locale)
	if err != nil {
		return nil, err
	}

	tg, err := service.tags.Resolve(context, input.Tag)
	if err != nil {
		return nil, err
	}

	t := &Translation{
		Key:      strings.TrimSpace(input.Key),
		Locale:   loc.Code,
		LocaleID: loc.ID,
		Content:  input.Content,
		Tags:     []string{tg.Name},
	}

	if err := service.repo.Create(context, t, tg.ID); err != nil {
		if dberr.IsConflict(err) {
			return nil, apperr.Conflict("Translation already exists for this key and locale")
		}
		return nil, err
	}

	service.logger.Info("translation_created",
		slog.Int64("translation_id", t.ID),
		slog.String("locale", t.Locale),
		slog.String("key", t.Key),
	)
	return t, nil
}

// Update rewrites an existing translation, re-resolving locale and tag. The
// tag association is replaced wholesale with the one new tag, never merged.
func (service *Service) Update(context context.Context, id int64, input WriteInput) (*Translation, error) {
	if err := validateWrite(input); err != nil {
		return nil, err
	}

	loc, err := service.locales.Resolve(context, input.Locale)
	if err != nil {
		return nil, err
	}

	tg, err := service.tags.Resolve(context, input.Tag)
	if err != nil {
		return nil, err
	}

	t := &Translation{
		ID:       id,
		Key:      strings.TrimSpace(input.Key),
		Locale:   loc.Code,
		LocaleID: loc.ID,
		Content:  input.Content,
		Tags:     []string{tg.Name},
	}

	if err := service.repo.Update(context, t, tg.ID); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Translation")
		}
		if dberr.IsConflict(err) {
			return nil, apperr.Conflict("Translation already exists for this key and locale")
		}
		return nil, err
	}

	service.logger.Info("translation_updated", slog.Int64("translation_id", id))
	return t, nil
}

func (service *Service) GetByID(context context.Context, id int64) (*Translation, error) {
	t, err := service.repo.GetByID(context, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Translation")
		}
		return nil, err
	}
	return t, nil
}

func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Translation")
		}
		return err
	}

	service.logger.Warn("translation_deleted", slog.Int64("translation_id", id))
	return nil
}

// List returns one page of translations matching the filter, plus the total
// match count. A set locale filter is normalized to its canonical code first
// so "EN" and "en" select the same rows.
func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]*Translation, int, error) {
	if filter.Locale != "" {
		normalized, err := locale.Normalize(filter.Locale)
		if err != nil {
			return nil, 0, err
		}
		filter.Locale = normalized
	}

	return service.repo.List(context, filter, limit, offset)
}

// Search performs a case-insensitive substring match against key OR content.
// An empty query is rejected; everything else is passed through verbatim.
func (service *Service) Search(context context.Context, query string) ([]*Translation, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, validate.RequiredError(FieldQuery, "Query parameter is required")
	}

	return service.repo.Search(context, query)
}

// Export streams every translation for the locale (optionally restricted to
// the tag) through emit, in bounded batches. An unknown locale or tag simply
// yields an empty export: no rows can match it.
func (service *Service) Export(context context.Context, localeCode, tagName string, emit func(ExportRow) error) error {
	loc, err := service.locales.Find(context, localeCode)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil
		}
		return err
	}

	var tagID *int64
	if tagName != "" {
		tg, err := service.tags.Find(context, tagName)
		if err != nil {
			if errors.Is(err, dberr.ErrNotFound) {
				return nil
			}
			return err
		}
		tagID = &tg.ID
	}

	return service.repo.ExportBatches(context, loc.ID, tagID, constants.ExportBatchSize, emit)
}
