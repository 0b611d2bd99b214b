package translation

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lingohq/lingo/internal/platform/apperr"
	"github.com/lingohq/lingo/internal/platform/ctxutil"
	requestutil "github.com/lingohq/lingo/internal/platform/request"
	"github.com/lingohq/lingo/internal/platform/respond"
	"github.com/lingohq/lingo/internal/platform/validate"
	"github.com/lingohq/lingo/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/search", handler.search)
	router.Get("/export/{locale}", handler.export)
	router.Get("/export/{locale}/{tag}", handler.export)
	router.Get("/{id}", handler.show)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.destroy)
}

type writeRequest struct {
	Key     string `json:"key"`
	Locale  string `json:"locale"`
	Content string `json:"content"`
	Tag     string `json:"tag"`
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	queryParams := request.URL.Query()
	filter := Filter{
		Locale:  queryParams.Get("locale"),
		Key:     queryParams.Get("key"),
		Tag:     queryParams.Get("tag"),
		Content: queryParams.Get("content"),
	}

	params := pagination.FromRequest(request)

	translations, total, err := handler.service.List(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, "Translations retrieved successfully.", translations,
		pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input writeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	t, err := handler.service.Create(request.Context(), WriteInput{
		Key:     input.Key,
		Locale:  input.Locale,
		Content: input.Content,
		Tag:     input.Tag,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Translation created successfully.", t)
}

func (handler *Handler) show(writer http.ResponseWriter, request *http.Request) {
	id, err := translationID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	t, err := handler.service.GetByID(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Translation retrieved successfully.", t)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id, err := translationID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input writeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	t, err := handler.service.Update(request.Context(), id, WriteInput{
		Key:     input.Key,
		Locale:  input.Locale,
		Content: input.Content,
		Tag:     input.Tag,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Translation updated successfully.", t)
}

func (handler *Handler) destroy(writer http.ResponseWriter, request *http.Request) {
	id, err := translationID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Translation deleted successfully.", nil)
}

func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	translations, err := handler.service.Search(request.Context(), request.URL.Query().Get("query"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Translations retrieved successfully.", translations)
}

// export streams the result set as it is read: the envelope head is written
// on the first row, then each {key, content} pair goes straight to the wire.
// No more than one storage batch is ever resident in memory.
func (handler *Handler) export(writer http.ResponseWriter, request *http.Request) {
	localeCode := chi.URLParam(request, "locale")
	tagName := chi.URLParam(request, "tag")

	headWritten := false
	firstRow := true

	writeHead := func() {
		writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		writer.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(writer, `{"success":true,"message":"Translations exported successfully.","data":[`)
		headWritten = true
	}

	err := handler.service.Export(request.Context(), localeCode, tagName, func(row ExportRow) error {
		if !headWritten {
			writeHead()
		}
		if !firstRow {
			if _, err := writer.Write([]byte{','}); err != nil {
				return err
			}
		}
		firstRow = false

		encoded, err := json.Marshal(row)
		if err != nil {
			return err
		}
		_, err = writer.Write(encoded)
		return err
	})

	if err != nil {
		if !headWritten {
			respond.Error(writer, request, err)
			return
		}
		// The envelope is already on the wire, so the status cannot change.
		// Leaving the JSON array unterminated makes the failure visible to
		// the client: a partial export must never parse as a complete one.
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "export_aborted",
			slog.String("locale", localeCode),
			slog.String("tag", tagName),
			slog.Any("error", err),
		)
		return
	}

	if !headWritten {
		writeHead()
	}
	_, _ = io.WriteString(writer, `]}`)
}

// translationID parses the {id} route parameter. Anything non-numeric cannot
// name an existing translation, so it maps to NotFound rather than a 500.
func translationID(request *http.Request) (int64, error) {
	raw := requestutil.ID(request, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.NotFound("Translation")
	}
	return id, nil
}
