// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/taibuivan/gamereview/internal/platform/existence"
	"github.com/taibuivan/gamereview/internal/platform/validate"
)

// MsgInvalidComment is returned for any payload that is not exactly
// {username, body} with both values set.
const MsgInvalidComment = "Invalid comment received - must only include the keys: username & body"

// ExistenceChecker confirms a referenced row exists.
type ExistenceChecker interface {
	Exists(ctx context.Context, resource existence.Resource, value any) error
}

// Service implements the comment use cases.
type Service struct {
	repo    Repository
	checker ExistenceChecker
	logger  *slog.Logger
}

// NewService constructs a [Service].
func NewService(repo Repository, checker ExistenceChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		checker: checker,
		logger:  logger,
	}
}

/*
ListComments returns the comments of a review, newest first.

An empty result is ambiguous, so it is followed by an existence check on the
review: a missing review is 404, an existing one yields an empty slice.
*/
func (service *Service) ListComments(ctx context.Context, rawReviewID string) ([]*Comment, error) {
	reviewID, err := validate.ID(rawReviewID)
	if err != nil {
		return nil, err
	}

	comments, err := service.repo.ListByReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if len(comments) == 0 {
		if err := service.checker.Exists(ctx, existence.Review, reviewID); err != nil {
			return nil, err
		}
	}
	return comments, nil
}

// CreateComment validates payload and stores it against the review.
//
// The review is not pre-checked; an unknown review fails the foreign key and
// is translated to 404 downstream.
func (service *Service) CreateComment(ctx context.Context, rawReviewID string, payload map[string]json.RawMessage) (*Comment, error) {
	input, err := ParsePayload(payload)
	if err != nil {
		return nil, err
	}

	reviewID, err := validate.ID(rawReviewID)
	if err != nil {
		return nil, err
	}

	comment, err := service.repo.Insert(ctx, reviewID, input)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "comment_created",
		slog.Int("comment_id", comment.ID),
		slog.Int("review_id", comment.ReviewID),
		slog.String("author", comment.Author),
	)
	return comment, nil
}

// DeleteComment removes a comment after confirming it exists, so deleting an
// absent comment is a 404 rather than a silent success.
func (service *Service) DeleteComment(ctx context.Context, rawID string) error {
	id, err := validate.ID(rawID)
	if err != nil {
		return err
	}

	if err := service.checker.Exists(ctx, existence.Comment, id); err != nil {
		return err
	}

	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "comment_deleted", slog.Int("comment_id", id))
	return nil
}

// ParsePayload enforces the strict comment shape: exactly the keys username
// and body, both non-blank strings. Every failure carries [MsgInvalidComment].
func ParsePayload(payload map[string]json.RawMessage) (NewComment, error) {
	var input NewComment

	if err := new(validate.Validator).
		ExactKeys(payload, "username", "body").
		ErrWithMessage(MsgInvalidComment); err != nil {
		return input, err
	}

	if err := new(validate.Validator).
		Custom("username", json.Unmarshal(payload["username"], &input.Username) != nil, "Must be a string").
		Custom("body", json.Unmarshal(payload["body"], &input.Body) != nil, "Must be a string").
		ErrWithMessage(MsgInvalidComment); err != nil {
		return input, err
	}

	// Blank values fail here; the struct tags run only once both are set
	validator := new(validate.Validator).
		Required("username", input.Username).
		Required("body", input.Body)
	if !validator.HasErrors() {
		validator.Struct(input)
	}
	if err := validator.ErrWithMessage(MsgInvalidComment); err != nil {
		return input, err
	}
	return input, nil
}
