package leads

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/robinroyhansen/maler-christensen-api/internal/types"
)

// MockLeadsRepo is a mock implementation of Repository
type MockLeadsRepo struct {
	mock.Mock
}

func (m *MockLeadsRepo) Create(ctx context.Context, params types.CreateLeadParams) (*types.Lead, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Lead), args.Error(1)
}

func (m *MockLeadsRepo) List(ctx context.Context, status *types.LeadStatus) ([]types.Lead, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Lead), args.Error(1)
}

func (m *MockLeadsRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status types.LeadStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockLeadsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupLeadsServiceTest() (*ServiceImpl, *MockLeadsRepo) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockRepo := new(MockLeadsRepo)
	service := NewLeadsService(mockRepo, logger)
	return service, mockRepo
}

func TestSubmitLead(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		service, mockRepo := setupLeadsServiceTest()
		params := types.CreateLeadParams{
			Name:       "Hanne Jensen",
			Phone:      "12345678",
			Message:    "Vi skal have malet stuen",
			SourcePage: "/maler-soroe",
		}
		expected := &types.Lead{ID: uuid.New(), Name: "Hanne Jensen", Phone: "12345678", Status: types.LeadStatusNew}
		mockRepo.On("Create", mock.Anything, params).Return(expected, nil).Once()

		lead, err := service.Submit(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, expected, lead)
		mockRepo.AssertExpectations(t)
	})

	t.Run("trims whitespace before validating", func(t *testing.T) {
		service, mockRepo := setupLeadsServiceTest()
		params := types.CreateLeadParams{Name: "  Hanne Jensen  ", Email: " hanne@example.dk "}
		trimmed := types.CreateLeadParams{Name: "Hanne Jensen", Email: "hanne@example.dk"}
		mockRepo.On("Create", mock.Anything, trimmed).Return(&types.Lead{ID: uuid.New()}, nil).Once()

		_, err := service.Submit(ctx, params)
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing name", func(t *testing.T) {
		service, mockRepo := setupLeadsServiceTest()
		params := types.CreateLeadParams{Phone: "12345678"}

		_, err := service.Submit(ctx, params)
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrValidation))
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing both phone and email", func(t *testing.T) {
		service, mockRepo := setupLeadsServiceTest()
		params := types.CreateLeadParams{Name: "Hanne Jensen", Message: "Ring til mig"}

		_, err := service.Submit(ctx, params)
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrValidation))
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("repository error", func(t *testing.T) {
		service, mockRepo := setupLeadsServiceTest()
		params := types.CreateLeadParams{Name: "Hanne Jensen", Phone: "12345678"}
		repoErr := errors.New("insert failed")
		mockRepo.On("Create", mock.Anything, params).Return(nil, repoErr).Once()

		_, err := service.Submit(ctx, params)
		require.Error(t, err)
		assert.True(t, errors.Is(err, repoErr))
		mockRepo.AssertExpectations(t)
	})
}

func TestListLeads(t *testing.T) {
	ctx := context.Background()
	service, mockRepo := setupLeadsServiceTest()

	status := types.LeadStatusNew
	expected := []types.Lead{{ID: uuid.New(), Name: "Hanne Jensen", Status: status}}
	mockRepo.On("List", mock.Anything, &status).Return(expected, nil).Once()

	out, err := service.List(ctx, &status)
	require.NoError(t, err)
	assert.Equal(t, expected, out)
	mockRepo.AssertExpectations(t)
}

func TestSetLeadStatus(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("valid transition", func(t *testing.T) {
		service, mockRepo := setupLeadsServiceTest()
		mockRepo.On("UpdateStatus", mock.Anything, id, types.LeadStatusContacted).Return(nil).Once()

		err := service.SetStatus(ctx, id, types.LeadStatusContacted)
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown status", func(t *testing.T) {
		service, mockRepo := setupLeadsServiceTest()

		err := service.SetStatus(ctx, id, types.LeadStatus("pending"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrValidation))
		mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing lead", func(t *testing.T) {
		service, mockRepo := setupLeadsServiceTest()
		mockRepo.On("UpdateStatus", mock.Anything, id, types.LeadStatusClosed).Return(types.ErrNotFound).Once()

		err := service.SetStatus(ctx, id, types.LeadStatusClosed)
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrNotFound))
		mockRepo.AssertExpectations(t)
	})
}

func TestDeleteLead(t *testing.T) {
	ctx := context.Background()
	service, mockRepo := setupLeadsServiceTest()
	id := uuid.New()
	mockRepo.On("Delete", mock.Anything, id).Return(nil).Once()

	err := service.Delete(ctx, id)
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
