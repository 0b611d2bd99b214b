// Copyright (c) 2026 Lingo Project. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingohq/lingo/pkg/pagination"
)

/*
TestNewMeta_PageNavigation verifies the derived page references across a
three-page result set (120 rows, 50 per page).
*/
func TestNewMeta_PageNavigation(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		wantNext *int
		wantPrev *int
	}{
		{"first_page", 1, intPtr(2), nil},
		{"middle_page", 2, intPtr(3), intPtr(1)},
		{"last_page", 3, nil, intPtr(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(tt.page, 50, 120)

			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, 50, meta.Limit)
			assert.Equal(t, 120, meta.Total)
			assert.Equal(t, 3, meta.TotalPages)
			assert.Equal(t, 1, meta.FirstPage)
			assert.Equal(t, 3, meta.LastPage)
			assert.Equal(t, tt.wantNext, meta.NextPage)
			assert.Equal(t, tt.wantPrev, meta.PrevPage)
		})
	}
}

/*
TestNewMeta_EmptyResult verifies metadata for a zero-row result set.
*/
func TestNewMeta_EmptyResult(t *testing.T) {
	meta := pagination.NewMeta(1, 50, 0)

	assert.Equal(t, 0, meta.Total)
	assert.Equal(t, 0, meta.TotalPages)
	assert.Equal(t, 1, meta.FirstPage)
	assert.Equal(t, 1, meta.LastPage)
	assert.Nil(t, meta.NextPage)
	assert.Nil(t, meta.PrevPage)
}

/*
TestNewMeta_PartialLastPage checks the ceiling division of total pages.
*/
func TestNewMeta_PartialLastPage(t *testing.T) {
	meta := pagination.NewMeta(1, 50, 101)
	assert.Equal(t, 3, meta.TotalPages)
}

/*
TestFromRequest_Clamping verifies that malformed or abusive query values
fall back to safe defaults.
*/
func TestFromRequest_Clamping(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, pagination.DefaultLimit},
		{"explicit", "page=2&limit=25", 2, 25},
		{"negative_page", "page=-1", 1, pagination.DefaultLimit},
		{"zero_limit", "limit=0", 1, pagination.DefaultLimit},
		{"limit_over_max", "limit=5000", 1, pagination.DefaultLimit},
		{"not_a_number", "page=abc&limit=xyz", 1, pagination.DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/api/translations?"+tt.query, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestParams_Offset verifies the SQL offset derivation.
*/
func TestParams_Offset(t *testing.T) {
	require.Equal(t, 0, pagination.Params{Page: 1, Limit: 50}.Offset())
	require.Equal(t, 50, pagination.Params{Page: 2, Limit: 50}.Offset())
	require.Equal(t, 100, pagination.Params{Page: 3, Limit: 50}.Offset())
	require.Equal(t, 0, pagination.Params{Page: 0, Limit: 50}.Offset())
}

func intPtr(n int) *int { return &n }
