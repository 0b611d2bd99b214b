package tag

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
	router.Get("/", handler.listTags)
	router.Get("/{name}", handler.getTag)
}

func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	tags, err := handler.service.ListTags(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Tags retrieved successfully.", tags)
}

func (handler *Handler) getTag(writer http.ResponseWriter, request *http.Request) {
	name := chi.URLParam(request, "name")

	t, err := handler.service.Find(request.Context(), name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Tag retrieved successfully.", t)
}
