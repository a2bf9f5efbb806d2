package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gamereview/internal/platform/constants"
	"github.com/taibuivan/gamereview/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listCategories)
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, constants.KeyCategories, categories)
}
