package comment

import (
	"encoding/json"
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

// RegisterReviewRoutes mounts the comment endpoints nested under a review.
func (handler *Handler) RegisterReviewRoutes(router chi.Router) {
	router.Get("/{review_id}/comments", handler.listComments)
	router.Post("/{review_id}/comments", handler.createComment)
}

// RegisterRoutes mounts the endpoints addressed by comment id.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Delete("/{comment_id}", handler.deleteComment)
}

func (handler *Handler) listComments(writer http.ResponseWriter, request *http.Request) {
	comments, err := handler.service.ListComments(request.Context(), requestutil.Param(request, "review_id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, constants.KeyComments, comments)
}

func (handler *Handler) createComment(writer http.ResponseWriter, request *http.Request) {
	var payload map[string]json.RawMessage
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.CreateComment(request.Context(), requestutil.Param(request, "review_id"), payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, constants.KeyCreatedComment, comment)
}

func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteComment(request.Context(), requestutil.Param(request, "comment_id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
