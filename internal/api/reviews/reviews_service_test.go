package reviews

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/robinroyhansen/maler-christensen-api/internal/types"
)

type MockReviewsRepo struct {
	mock.Mock
}

var _ Repository = (*MockReviewsRepo)(nil)

func (m *MockReviewsRepo) List(ctx context.Context, publishedOnly bool) ([]types.Review, error) {
	args := m.Called(ctx, publishedOnly)
	if rv := args.Get(0); rv != nil {
		return rv.([]types.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReviewsRepo) Create(ctx context.Context, params types.UpsertReviewParams) (*types.Review, error) {
	args := m.Called(ctx, params)
	if rv := args.Get(0); rv != nil {
		return rv.(*types.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReviewsRepo) Update(ctx context.Context, id uuid.UUID, params types.UpsertReviewParams) (*types.Review, error) {
	args := m.Called(ctx, id, params)
	if rv := args.Get(0); rv != nil {
		return rv.(*types.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReviewsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestReviewsService(repo Repository) *ServiceImpl {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewReviewsService(repo, logger)
}

func validReviewParams() types.UpsertReviewParams {
	return types.UpsertReviewParams{
		Author:     "Lone fra Korsør",
		City:       "Korsør",
		Rating:     5,
		Body:       "Flot arbejde og ryddeligt efterladt.",
		Published:  true,
		ReviewedAt: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestReviewsService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockReviewsRepo)
		service := newTestReviewsService(mockRepo)

		params := validReviewParams()
		created := &types.Review{ID: uuid.New(), Author: params.Author, Rating: params.Rating, Body: params.Body}
		mockRepo.On("Create", mock.Anything, params).Return(created, nil).Once()

		rv, err := service.Create(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, created, rv)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing author fails validation", func(t *testing.T) {
		mockRepo := new(MockReviewsRepo)
		service := newTestReviewsService(mockRepo)

		params := validReviewParams()
		params.Author = ""

		_, err := service.Create(ctx, params)
		assert.ErrorIs(t, err, types.ErrValidation)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing body fails validation", func(t *testing.T) {
		mockRepo := new(MockReviewsRepo)
		service := newTestReviewsService(mockRepo)

		params := validReviewParams()
		params.Body = ""

		_, err := service.Create(ctx, params)
		assert.ErrorIs(t, err, types.ErrValidation)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rating out of range fails validation", func(t *testing.T) {
		mockRepo := new(MockReviewsRepo)
		service := newTestReviewsService(mockRepo)

		for _, rating := range []int{0, 6, -1} {
			params := validReviewParams()
			params.Rating = rating

			_, err := service.Create(ctx, params)
			assert.ErrorIs(t, err, types.ErrValidation, "rating %d", rating)
		}
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockReviewsRepo)
		service := newTestReviewsService(mockRepo)

		dbErr := errors.New("insert failed")
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil, dbErr).Once()

		_, err := service.Create(ctx, validReviewParams())
		assert.ErrorIs(t, err, dbErr)
		mockRepo.AssertExpectations(t)
	})
}

func TestReviewsService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockReviewsRepo)
		service := newTestReviewsService(mockRepo)

		params := validReviewParams()
		params.Published = false
		updated := &types.Review{ID: id, Author: params.Author, Published: false}
		mockRepo.On("Update", mock.Anything, id, params).Return(updated, nil).Once()

		rv, err := service.Update(ctx, id, params)
		require.NoError(t, err)
		assert.False(t, rv.Published)
		mockRepo.AssertExpectations(t)
	})

	t.Run("validation runs before the repository", func(t *testing.T) {
		mockRepo := new(MockReviewsRepo)
		service := newTestReviewsService(mockRepo)

		params := validReviewParams()
		params.Rating = 7

		_, err := service.Update(ctx, id, params)
		assert.ErrorIs(t, err, types.ErrValidation)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not found passes through", func(t *testing.T) {
		mockRepo := new(MockReviewsRepo)
		service := newTestReviewsService(mockRepo)

		mockRepo.On("Update", mock.Anything, id, mock.Anything).Return(nil, types.ErrNotFound).Once()

		_, err := service.Update(ctx, id, validReviewParams())
		assert.ErrorIs(t, err, types.ErrNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestReviewsService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("published only for the public list", func(t *testing.T) {
		mockRepo := new(MockReviewsRepo)
		service := newTestReviewsService(mockRepo)

		rows := []types.Review{{ID: uuid.New(), Author: "Per", Rating: 4, Published: true}}
		mockRepo.On("List", mock.Anything, true).Return(rows, nil).Once()

		out, err := service.ListPublished(ctx)
		require.NoError(t, err)
		assert.Len(t, out, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("admin list includes unpublished", func(t *testing.T) {
		mockRepo := new(MockReviewsRepo)
		service := newTestReviewsService(mockRepo)

		rows := []types.Review{
			{ID: uuid.New(), Author: "Per", Published: true},
			{ID: uuid.New(), Author: "Bente", Published: false},
		}
		mockRepo.On("List", mock.Anything, false).Return(rows, nil).Once()

		out, err := service.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, out, 2)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockReviewsRepo)
		service := newTestReviewsService(mockRepo)

		mockRepo.On("List", mock.Anything, true).Return(nil, errors.New("connection reset")).Once()

		_, err := service.ListPublished(ctx)
		assert.Error(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestReviewsService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockReviewsRepo)
		service := newTestReviewsService(mockRepo)

		mockRepo.On("Delete", mock.Anything, id).Return(nil).Once()

		require.NoError(t, service.Delete(ctx, id))
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found passes through", func(t *testing.T) {
		mockRepo := new(MockReviewsRepo)
		service := newTestReviewsService(mockRepo)

		mockRepo.On("Delete", mock.Anything, id).Return(types.ErrNotFound).Once()

		assert.ErrorIs(t, service.Delete(ctx, id), types.ErrNotFound)
		mockRepo.AssertExpectations(t)
	})
}
