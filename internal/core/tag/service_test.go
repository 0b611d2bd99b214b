package tag_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingohq/lingo/internal/core/tag"
	"github.com/lingohq/lingo/internal/platform/apperr"
)

type fakeRepository struct {
	gotName string
	tag     *tag.Tag
	err     error
}

func (f *fakeRepository) GetOrCreate(_ context.Context, name string) (*tag.Tag, error) {
	f.gotName = name
	return f.tag, f.err
}

func (f *fakeRepository) GetByName(_ context.Context, name string) (*tag.Tag, error) {
	f.gotName = name
	return f.tag, f.err
}

func (f *fakeRepository) ListTags(_ context.Context) ([]*tag.Tag, error) {
	return []*tag.Tag{f.tag}, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_Resolve_TrimsName(t *testing.T) {
	repo := &fakeRepository{tag: &tag.Tag{ID: 1, Name: "reports"}}
	service := tag.NewService(repo, testLogger())

	resolved, err := service.Resolve(context.Background(), "  reports  ")

	require.NoError(t, err)
	assert.Equal(t, "reports", repo.gotName)
	assert.Equal(t, int64(1), resolved.ID)
}

func TestService_Resolve_Validation(t *testing.T) {
	repo := &fakeRepository{}
	service := tag.NewService(repo, testLogger())

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace_only", "   "},
		{"over_max_length", strings.Repeat("x", 101)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Resolve(context.Background(), tt.input)

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Empty(t, repo.gotName, "storage must not be reached for invalid names")
		})
	}
}

func TestService_Find_TrimsName(t *testing.T) {
	repo := &fakeRepository{tag: &tag.Tag{ID: 2, Name: "mobile"}}
	service := tag.NewService(repo, testLogger())

	found, err := service.Find(context.Background(), " mobile ")

	require.NoError(t, err)
	assert.Equal(t, "mobile", repo.gotName)
	assert.Equal(t, "mobile", found.Name)
}
