// Copyright (c) 2026 Lingo Project. All rights reserved.

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// Every response (success or error) across the entire application follows one
// strict JSON envelope:
//
//	{"success": bool, "message": string, "data": object|array|null}
//
// Paginated listings carry their items and page metadata inside "data".
// This consistency lets API consumers parse responses without per-endpoint
// special cases.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lingohq/lingo/internal/platform/apperr"
	"github.com/lingohq/lingo/internal/platform/ctxkey"
	"github.com/lingohq/lingo/pkg/pagination"
)

// Envelope is the uniform JSON envelope for all API responses.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Details interface{} `json:"details,omitempty"`
}

// PageData is the "data" payload for paginated list responses.
//
// The embedded [pagination.Meta] fields marshal inline next to Items.
type PageData struct {
	Items interface{} `json:"items"`
	pagination.Meta
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with data wrapped in the standard envelope.
func OK(writer http.ResponseWriter, message string, data interface{}) {
	JSON(writer, http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Created writes a 201 Created response with data wrapped in the standard envelope.
func Created(writer http.ResponseWriter, message string, data interface{}) {
	JSON(writer, http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// Paginated writes a 200 OK response with items and page metadata inside "data".
func Paginated(writer http.ResponseWriter, message string, items interface{}, metadata pagination.Meta) {
	JSON(writer, http.StatusOK, Envelope{
		Success: true,
		Message: message,
		Data:    PageData{Items: items, Meta: metadata},
	})
}

// NoContent writes a 204 No Content response.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// Error converts any Go error into a standardized JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client for security.
		logger := getLoggerFromContext(request)
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", getRequestIDFromContext(request)),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := getLoggerFromContext(request)
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", getRequestIDFromContext(request)),
			slog.Any("cause", appError.Cause),
		)
	}

	envelope := Envelope{
		Success: false,
		Message: appError.Message,
		Data:    nil,
	}
	if len(appError.Details) > 0 {
		envelope.Details = appError.Details
	}

	JSON(writer, appError.HTTPStatus, envelope)
}

// getLoggerFromContext extracts the per-request logger.
func getLoggerFromContext(request *http.Request) *slog.Logger {
	if logger, ok := request.Context().Value(ctxkey.KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// getRequestIDFromContext extracts the X-Request-ID for log correlation.
func getRequestIDFromContext(request *http.Request) string {
	if id, ok := request.Context().Value(ctxkey.KeyRequestID).(string); ok {
		return id
	}
	return ""
}
