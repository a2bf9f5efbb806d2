// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"context"
	"log/slog"

	"github.com/taibuivan/gamereview/internal/platform/apperr"
	"github.com/taibuivan/gamereview/internal/platform/dberr"
	"github.com/taibuivan/gamereview/internal/platform/existence"
	"github.com/taibuivan/gamereview/internal/platform/validate"
)

// Error messages specific to reviews.
const (
	MsgReviewNotFound   = "The requested review does not exist"
	MsgVotesNotProvided = "Value to increment votes by was not provided"
)

// ExistenceChecker confirms a referenced row exists.
type ExistenceChecker interface {
	Exists(ctx context.Context, resource existence.Resource, value any) error
}

// Service implements the review use cases.
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

// GetReview returns the review with rawID and its comment count.
func (service *Service) GetReview(ctx context.Context, rawID string) (*Review, error) {
	id, err := validate.ID(rawID)
	if err != nil {
		return nil, err
	}

	review, err := service.repo.GetByID(ctx, id)
	if err != nil {
		if dberr.IsNoRows(err) {
			return nil, apperr.NotFound(MsgReviewNotFound)
		}
		return nil, err
	}
	return review, nil
}

// ListReviews returns reviews matching filter, ordered as requested.
//
// A category filter must name an existing category; an existing category with
// no reviews yields an empty slice.
func (service *Service) ListReviews(ctx context.Context, filter Filter) ([]*Review, error) {
	// Reject bad sort parameters before any storage round-trip
	if _, _, err := ParseSort(filter.SortBy, filter.Order); err != nil {
		return nil, err
	}

	if filter.Category != "" {
		if err := service.checker.Exists(ctx, existence.Category, filter.Category); err != nil {
			return nil, err
		}
	}

	return service.repo.List(ctx, filter)
}

// UpdateVotes adds patch.IncVotes to the review's votes.
//
// Presence of the increment is checked before anything else; whether it is
// an integer is left to storage.
func (service *Service) UpdateVotes(ctx context.Context, rawID string, patch VotesPatch) (*Review, error) {
	if err := new(validate.Validator).
		Present("inc_votes", patch.Provided()).
		ErrWithMessage(MsgVotesNotProvided); err != nil {
		return nil, err
	}

	id, err := validate.ID(rawID)
	if err != nil {
		return nil, err
	}

	if err := service.checker.Exists(ctx, existence.Review, id); err != nil {
		return nil, err
	}

	review, err := service.repo.UpdateVotes(ctx, id, patch.Delta())
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "review_votes_updated",
		slog.Int("review_id", review.ID),
		slog.String("inc_votes", patch.Delta()),
		slog.Int("votes", review.Votes),
	)
	return review, nil
}
