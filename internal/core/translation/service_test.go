package translation_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingohq/lingo/internal/core/locale"
	"github.com/lingohq/lingo/internal/core/tag"
	"github.com/lingohq/lingo/internal/core/translation"
	"github.com/lingohq/lingo/internal/platform/apperr"
	"github.com/lingohq/lingo/internal/platform/constants"
	"github.com/lingohq/lingo/internal/platform/dberr"
)

// # Test Fakes

type fakeRepo struct {
	createErr error
	updateErr error
	deleteErr error
	getErr    error

	gotFilter translation.Filter
	gotTagID  int64
	listed    []*translation.Translation
	total     int

	searchTerm string
	searched   []*translation.Translation

	exportCalled    bool
	exportLocaleID  int64
	exportTagID     *int64
	exportBatchSize int
	exportRows      []translation.ExportRow
	exportErr       error
}

func (f *fakeRepo) List(_ context.Context, filter translation.Filter, limit, offset int) ([]*translation.Translation, int, error) {
	f.gotFilter = filter
	return f.listed, f.total, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*translation.Translation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &translation.Translation{ID: id}, nil
}

func (f *fakeRepo) Create(_ context.Context, t *translation.Translation, tagID int64) error {
	f.gotTagID = tagID
	if f.createErr != nil {
		return f.createErr
	}
	t.ID = 42
	return nil
}

func (f *fakeRepo) Update(_ context.Context, t *translation.Translation, tagID int64) error {
	f.gotTagID = tagID
	return f.updateErr
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	return f.deleteErr
}

func (f *fakeRepo) Search(_ context.Context, term string) ([]*translation.Translation, error) {
	f.searchTerm = term
	return f.searched, nil
}

func (f *fakeRepo) ExportBatches(_ context.Context, localeID int64, tagID *int64, batchSize int, emit func(translation.ExportRow) error) error {
	f.exportCalled = true
	f.exportLocaleID = localeID
	f.exportTagID = tagID
	f.exportBatchSize = batchSize
	if f.exportErr != nil {
		return f.exportErr
	}
	for _, row := range f.exportRows {
		if err := emit(row); err != nil {
			return err
		}
	}
	return nil
}

type fakeLocales struct {
	locale  *locale.Locale
	findErr error
}

func (f *fakeLocales) Resolve(_ context.Context, code string) (*locale.Locale, error) {
	normalized, err := locale.Normalize(code)
	if err != nil {
		return nil, err
	}
	return &locale.Locale{ID: f.locale.ID, Code: normalized}, nil
}

func (f *fakeLocales) Find(_ context.Context, code string) (*locale.Locale, error) {
	if _, err := locale.Normalize(code); err != nil {
		return nil, err
	}
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.locale, nil
}

type fakeTags struct {
	tag     *tag.Tag
	findErr error
}

func (f *fakeTags) Resolve(_ context.Context, name string) (*tag.Tag, error) {
	return f.tag, nil
}

func (f *fakeTags) Find(_ context.Context, name string) (*tag.Tag, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.tag, nil
}

func newTestService(repo *fakeRepo, locales *fakeLocales, tags *fakeTags) *translation.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return translation.NewService(repo, locales, tags, logger)
}

func defaultFixtures() (*fakeRepo, *fakeLocales, *fakeTags) {
	repo := &fakeRepo{}
	locales := &fakeLocales{locale: &locale.Locale{ID: 1, Code: "en"}}
	tags := &fakeTags{tag: &tag.Tag{ID: 7, Name: "reports"}}
	return repo, locales, tags
}

func uniqueViolation() error {
	return dberr.Wrap(&pgconn.PgError{Code: pgerrcode.UniqueViolation}, "create_translation")
}

// # Write Path

func TestService_Create(t *testing.T) {
	repo, locales, tags := defaultFixtures()
	service := newTestService(repo, locales, tags)

	created, err := service.Create(context.Background(), translation.WriteInput{
		Key:     "  dashboard.title  ",
		Locale:  "EN",
		Content: "Dashboard",
		Tag:     "reports",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "dashboard.title", created.Key, "key must be trimmed")
	assert.Equal(t, "en", created.Locale, "locale must be normalized")
	assert.Equal(t, []string{"reports"}, created.Tags)
	assert.Equal(t, int64(7), repo.gotTagID)
}

func TestService_Create_ValidationFailure(t *testing.T) {
	repo, locales, tags := defaultFixtures()
	service := newTestService(repo, locales, tags)

	tests := []struct {
		name  string
		input translation.WriteInput
		field string
	}{
		{"missing_key", translation.WriteInput{Locale: "en", Content: "x", Tag: "t"}, "key"},
		{"missing_locale", translation.WriteInput{Key: "k", Content: "x", Tag: "t"}, "locale"},
		{"missing_content", translation.WriteInput{Key: "k", Locale: "en", Tag: "t"}, "content"},
		{"missing_tag", translation.WriteInput{Key: "k", Locale: "en", Content: "x"}, "tag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), tt.input)

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			require.NotEmpty(t, ae.Details)
			assert.Equal(t, tt.field, ae.Details[0].Field)
		})
	}
}

func TestService_Create_DuplicateKeyLocale(t *testing.T) {
	repo, locales, tags := defaultFixtures()
	repo.createErr = uniqueViolation()
	service := newTestService(repo, locales, tags)

	_, err := service.Create(context.Background(), translation.WriteInput{
		Key: "dup", Locale: "en", Content: "x", Tag: "t",
	})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Equal(t, "Translation already exists for this key and locale", ae.Message)
}

func TestService_Update_ReplacesTagAssociation(t *testing.T) {
	repo, locales, tags := defaultFixtures()
	tags.tag = &tag.Tag{ID: 9, Name: "mobile"}
	service := newTestService(repo, locales, tags)

	updated, err := service.Update(context.Background(), 42, translation.WriteInput{
		Key: "dashboard.title", Locale: "en", Content: "Dash", Tag: "mobile",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"mobile"}, updated.Tags, "tag set is replaced, never merged")
	assert.Equal(t, int64(9), repo.gotTagID)
}

func TestService_Update_NotFound(t *testing.T) {
	repo, locales, tags := defaultFixtures()
	repo.updateErr = dberr.ErrNotFound
	service := newTestService(repo, locales, tags)

	_, err := service.Update(context.Background(), 999, translation.WriteInput{
		Key: "k", Locale: "en", Content: "x", Tag: "t",
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo, locales, tags := defaultFixtures()
	repo.deleteErr = dberr.ErrNotFound
	service := newTestService(repo, locales, tags)

	err := service.Delete(context.Background(), 999)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

// # Read Path

func TestService_List_NormalizesLocaleFilter(t *testing.T) {
	repo, locales, tags := defaultFixtures()
	service := newTestService(repo, locales, tags)

	_, _, err := service.List(context.Background(), translation.Filter{Locale: "EN", Tag: "web"}, 50, 0)

	require.NoError(t, err)
	assert.Equal(t, "en", repo.gotFilter.Locale)
	assert.Equal(t, "web", repo.gotFilter.Tag)
}

func TestService_Search(t *testing.T) {
	repo, locales, tags := defaultFixtures()
	repo.searched = []*translation.Translation{{ID: 1}}
	service := newTestService(repo, locales, tags)

	results, err := service.Search(context.Background(), "  welcome  ")

	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "welcome", repo.searchTerm, "term must be trimmed")
}

func TestService_Search_EmptyQuery(t *testing.T) {
	repo, locales, tags := defaultFixtures()
	service := newTestService(repo, locales, tags)

	_, err := service.Search(context.Background(), "   ")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

// # Export Path

func TestService_Export_UsesBoundedBatches(t *testing.T) {
	repo, locales, tags := defaultFixtures()
	repo.exportRows = []translation.ExportRow{
		{Key: "a", Content: "A"},
		{Key: "b", Content: "B"},
	}
	service := newTestService(repo, locales, tags)

	var emitted []translation.ExportRow
	err := service.Export(context.Background(), "en", "", func(row translation.ExportRow) error {
		emitted = append(emitted, row)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, repo.exportRows, emitted)
	assert.Equal(t, int64(1), repo.exportLocaleID)
	assert.Nil(t, repo.exportTagID)
	assert.Equal(t, constants.ExportBatchSize, repo.exportBatchSize)
}

func TestService_Export_TagRestriction(t *testing.T) {
	repo, locales, tags := defaultFixtures()
	service := newTestService(repo, locales, tags)

	err := service.Export(context.Background(), "en", "reports", func(translation.ExportRow) error {
		return nil
	})

	require.NoError(t, err)
	require.NotNil(t, repo.exportTagID)
	assert.Equal(t, int64(7), *repo.exportTagID)
}

func TestService_Export_UnknownLocaleIsEmpty(t *testing.T) {
	repo, locales, tags := defaultFixtures()
	locales.findErr = dberr.ErrNotFound
	service := newTestService(repo, locales, tags)

	err := service.Export(context.Background(), "de", "", func(translation.ExportRow) error {
		t.Fatal("emit must not be called for an unknown locale")
		return nil
	})

	require.NoError(t, err, "unknown locale exports an empty set, not an error")
	assert.False(t, repo.exportCalled)
}

func TestService_Export_UnknownTagIsEmpty(t *testing.T) {
	repo, locales, tags := defaultFixtures()
	tags.findErr = dberr.ErrNotFound
	service := newTestService(repo, locales, tags)

	err := service.Export(context.Background(), "en", "ghost", func(translation.ExportRow) error {
		t.Fatal("emit must not be called for an unknown tag")
		return nil
	})

	require.NoError(t, err)
	assert.False(t, repo.exportCalled)
}
