// Copyright (c) 2026 Lingo Project. All rights reserved.

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting metadata is delivered in the API response envelope.
//
// # Scaling Note
//
// Offset-based pagination is acceptable at the current scale (hundreds of
// thousands of rows) but degrades linearly with large offsets. Keyset
// pagination (seek by last-seen id) is the designated upgrade path should
// offset cost become dominant; see the export pipeline for the keyset idiom.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 50
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET value derived from [Page] and [Limit].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination metadata included in API list responses.
//
// NextPage and PrevPage are nil at the respective edges so that clients can
// detect the last page without arithmetic.
type Meta struct {
	Page       int  `json:"current_page"`
	Limit      int  `json:"per_page"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	FirstPage  int  `json:"first_page"`
	LastPage   int  `json:"last_page"`
	NextPage   *int `json:"next_page"`
	PrevPage   *int `json:"prev_page"`
}

// NewMeta constructs pagination metadata for a response.
//
// It calculates TotalPages from the total count and limit, and derives the
// first/last/next/prev page references.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	meta := Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		FirstPage:  DefaultPage,
		LastPage:   totalPages,
	}
	if meta.LastPage < DefaultPage {
		meta.LastPage = DefaultPage
	}

	if page > 1 {
		prev := page - 1
		meta.PrevPage = &prev
	}
	if page < totalPages {
		next := page + 1
		meta.NextPage = &next
	}

	return meta
}

// FromRequest parses "page" and "limit" query parameters from an HTTP request.
//
// # Clamping
//
// Invalid, negative, or excessive values are automatically clamped to
// [DefaultPage], [DefaultLimit], or [MaxLimit].
func FromRequest(r *http.Request) Params {
	page := parseIntParam(r, "page", DefaultPage)
	limit := parseIntParam(r, "limit", DefaultLimit)

	if page < 1 {
		page = DefaultPage
	}

	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return Params{Page: page, Limit: limit}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
