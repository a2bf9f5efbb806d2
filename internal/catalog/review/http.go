package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gamereview/internal/platform/constants"
	requestutil "github.com/taibuivan/gamereview/internal/platform/request"
	"github.com/taibuivan/gamereview/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the review endpoints. Comment sub-resources are
// registered by the comment handler on the same router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listReviews)
	router.Get("/{review_id}", handler.getReview)
	router.Patch("/{review_id}", handler.updateVotes)
}

func (handler *Handler) listReviews(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()
	filter := Filter{
		Category: query.Get("category"),
		SortBy:   query.Get("sort_by"),
		Order:    query.Get("order"),
	}

	reviews, err := handler.service.ListReviews(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, constants.KeyReviews, reviews)
}

func (handler *Handler) getReview(writer http.ResponseWriter, request *http.Request) {
	review, err := handler.service.GetReview(request.Context(), requestutil.Param(request, "review_id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, constants.KeyReview, review)
}

func (handler *Handler) updateVotes(writer http.ResponseWriter, request *http.Request) {
	var patch VotesPatch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.service.UpdateVotes(request.Context(), requestutil.Param(request, "review_id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, constants.KeyUpdatedReview, review)
}
