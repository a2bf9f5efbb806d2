// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gamereview/internal/catalog/review"
	"github.com/taibuivan/gamereview/internal/platform/apperr"
	"github.com/taibuivan/gamereview/internal/platform/existence"
)

// # Fakes

type fakeRepository struct {
	reviews     map[int]*review.Review
	listFilter  *review.Filter
	updateDelta string
	calls       int
}

func (f *fakeRepository) GetByID(ctx context.Context, id int) (*review.Review, error) {
	f.calls++
	if r, ok := f.reviews[id]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("postgres: get_review_by_id: %w", pgx.ErrNoRows)
}

func (f *fakeRepository) List(ctx context.Context, filter review.Filter) ([]*review.Review, error) {
	f.calls++
	f.listFilter = &filter
	return []*review.Review{}, nil
}

func (f *fakeRepository) UpdateVotes(ctx context.Context, id int, delta string) (*review.Review, error) {
	f.calls++
	f.updateDelta = delta
	// Mirrors $1::text::integer
	n, err := strconv.Atoi(delta)
	if err != nil {
		return nil, fmt.Errorf("postgres: update_review_votes: %w", &pgconn.PgError{Code: "22P02"})
	}
	r := *f.reviews[id]
	r.Votes += n
	return &r, nil
}

type fakeChecker struct {
	present map[existence.Resource][]any
	checked []existence.Resource
}

func (f *fakeChecker) Exists(ctx context.Context, resource existence.Resource, value any) error {
	f.checked = append(f.checked, resource)
	for _, v := range f.present[resource] {
		if v == value {
			return nil
		}
	}
	return apperr.ResourceNotFound()
}

func newService() (*review.Service, *fakeRepository, *fakeChecker) {
	repo := &fakeRepository{reviews: map[int]*review.Review{
		1: {ID: 1, Title: "Agricola", Votes: 1, Category: "euro game"},
	}}
	checker := &fakeChecker{present: map[existence.Resource][]any{
		existence.Review:   {1},
		existence.Category: {"euro game", "children's games"},
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return review.NewService(repo, checker, logger), repo, checker
}

func number(s string) json.RawMessage {
	return json.RawMessage(s)
}

// # Tests

/*
TestService_GetReview covers found, missing and malformed identifiers.
*/
func TestService_GetReview(t *testing.T) {
	service, repo, _ := newService()
	ctx := context.Background()

	got, err := service.GetReview(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Agricola", got.Title)

	_, err = service.GetReview(ctx, "9999")
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusNotFound, appError.HTTPStatus)
	assert.Equal(t, review.MsgReviewNotFound, appError.Message)

	calls := repo.calls
	_, err = service.GetReview(ctx, "not-a-number")
	assert.ErrorIs(t, err, apperr.TypeMismatch())
	assert.Equal(t, calls, repo.calls, "malformed id must not reach storage")
}

/*
TestService_ListReviews covers the category pre-check.
*/
func TestService_ListReviews(t *testing.T) {
	ctx := context.Background()

	t.Run("existing category without reviews is empty", func(t *testing.T) {
		service, repo, checker := newService()

		reviews, err := service.ListReviews(ctx, review.Filter{Category: "children's games"})
		require.NoError(t, err)
		assert.Empty(t, reviews)
		assert.Equal(t, []existence.Resource{existence.Category}, checker.checked)
		require.NotNil(t, repo.listFilter)
		assert.Equal(t, "children's games", repo.listFilter.Category)
	})

	t.Run("unknown category is not found", func(t *testing.T) {
		service, repo, _ := newService()

		_, err := service.ListReviews(ctx, review.Filter{Category: "space opera"})
		assert.ErrorIs(t, err, apperr.ResourceNotFound())
		assert.Zero(t, repo.calls)
	})

	t.Run("no category skips the check", func(t *testing.T) {
		service, _, checker := newService()

		_, err := service.ListReviews(ctx, review.Filter{SortBy: "votes"})
		require.NoError(t, err)
		assert.Empty(t, checker.checked)
	})

	t.Run("invalid sort is rejected before the category check", func(t *testing.T) {
		service, repo, checker := newService()

		_, err := service.ListReviews(ctx, review.Filter{Category: "space opera", SortBy: "nope"})
		assert.ErrorIs(t, err, apperr.BadRequest(review.MsgInvalidSortBy))
		assert.Empty(t, checker.checked)
		assert.Zero(t, repo.calls)
	})
}

/*
TestService_UpdateVotes covers presence, identifiers and existence ordering.
*/
func TestService_UpdateVotes(t *testing.T) {
	ctx := context.Background()

	t.Run("positive and negative deltas", func(t *testing.T) {
		service, _, _ := newService()

		up, err := service.UpdateVotes(ctx, "1", review.VotesPatch{IncVotes: number("5")})
		require.NoError(t, err)
		assert.Equal(t, 6, up.Votes)

		down, err := service.UpdateVotes(ctx, "1", review.VotesPatch{IncVotes: number("-2")})
		require.NoError(t, err)
		assert.Equal(t, -1, down.Votes)
	})

	t.Run("zero is a valid increment", func(t *testing.T) {
		service, repo, _ := newService()

		_, err := service.UpdateVotes(ctx, "1", review.VotesPatch{IncVotes: number("0")})
		require.NoError(t, err)
		assert.Equal(t, "0", repo.updateDelta)
	})

	t.Run("fractional value is passed through to storage", func(t *testing.T) {
		service, repo, _ := newService()

		_, _ = service.UpdateVotes(ctx, "1", review.VotesPatch{IncVotes: number("1.5")})
		assert.Equal(t, "1.5", repo.updateDelta)
	})

	t.Run("non-integer values are passed through to storage", func(t *testing.T) {
		tests := []struct {
			body  string
			delta string
		}{
			{`"cat"`, "cat"},
			{`true`, "true"},
			{`"5"`, "5"},
		}

		for _, tt := range tests {
			service, repo, _ := newService()

			_, _ = service.UpdateVotes(ctx, "1", review.VotesPatch{IncVotes: number(tt.body)})
			assert.Equal(t, tt.delta, repo.updateDelta)
		}
	})

	t.Run("null counts as not provided", func(t *testing.T) {
		service, repo, _ := newService()

		_, err := service.UpdateVotes(ctx, "1", review.VotesPatch{IncVotes: number("null")})
		assert.ErrorContains(t, err, review.MsgVotesNotProvided)
		assert.Zero(t, repo.calls)
	})

	t.Run("missing increment is rejected before anything else", func(t *testing.T) {
		service, repo, checker := newService()

		_, err := service.UpdateVotes(ctx, "not-a-number", review.VotesPatch{})
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, http.StatusBadRequest, appError.HTTPStatus)
		assert.Equal(t, review.MsgVotesNotProvided, appError.Message)
		assert.Empty(t, checker.checked)
		assert.Zero(t, repo.calls)
	})

	t.Run("malformed id is a type mismatch", func(t *testing.T) {
		service, _, checker := newService()

		_, err := service.UpdateVotes(ctx, "banana", review.VotesPatch{IncVotes: number("1")})
		assert.ErrorIs(t, err, apperr.TypeMismatch())
		assert.Empty(t, checker.checked)
	})

	t.Run("unknown review is not found", func(t *testing.T) {
		service, repo, _ := newService()

		_, err := service.UpdateVotes(ctx, "9999", review.VotesPatch{IncVotes: number("1")})
		assert.ErrorIs(t, err, apperr.ResourceNotFound())
		assert.Zero(t, repo.calls)
	})
}
