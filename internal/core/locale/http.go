package locale

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lingohq/lingo/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listLocales)
	router.Get("/{code}", handler.getLocale)
}

func (handler *Handler) listLocales(writer http.ResponseWriter, request *http.Request) {
	locales, err := handler.service.ListLocales(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Locales retrieved successfully.", locales)
}

func (handler *Handler) getLocale(writer http.ResponseWriter, request *http.Request) {
	code := chi.URLParam(request, "code")

	loc, err := handler.service.Find(request.Context(), code)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Locale retrieved successfully.", loc)
}
