package overrides

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/robinroyhansen/maler-christensen-api/internal/registry"
	"github.com/robinroyhansen/maler-christensen-api/internal/types"
)

// MockOverridesRepo is a mock implementation of Repository
type MockOverridesRepo struct {
	mock.Mock
}

func (m *MockOverridesRepo) GetBySlug(ctx context.Context, kind types.OverrideKind, slug string) (*types.ContentOverrideRecord, error) {
	args := m.Called(ctx, kind, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ContentOverrideRecord), args.Error(1)
}

func (m *MockOverridesRepo) ListByKind(ctx context.Context, kind types.OverrideKind) ([]types.ContentOverrideRecord, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.ContentOverrideRecord), args.Error(1)
}

func (m *MockOverridesRepo) Upsert(ctx context.Context, rec types.ContentOverrideRecord) (*types.ContentOverrideRecord, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ContentOverrideRecord), args.Error(1)
}

func (m *MockOverridesRepo) Delete(ctx context.Context, kind types.OverrideKind, slug string) error {
	args := m.Called(ctx, kind, slug)
	return args.Error(0)
}

// MockInvalidator is a mock implementation of Invalidator
type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) Invalidate(kind types.OverrideKind, slug string) {
	m.Called(kind, slug)
}

var testCompany = types.CompanyProfile{
	Name:            "Maler Christensen",
	Phone:           "+45 58 52 00 00",
	BaseCity:        "Slagelse",
	TrustpilotScore: 4.8,
}

func setupOverridesServiceTest() (*ServiceImpl, *MockOverridesRepo, *MockInvalidator) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockRepo := new(MockOverridesRepo)
	mockInv := new(MockInvalidator)
	service := NewOverridesService(mockRepo, testCompany, mockInv, logger)
	return service, mockRepo, mockInv
}

func strPtr(s string) *string { return &s }

func TestListAdminCities(t *testing.T) {
	ctx := context.Background()

	t.Run("merges registry with override rows", func(t *testing.T) {
		service, mockRepo, _ := setupOverridesServiceTest()
		rows := []types.ContentOverrideRecord{
			{Kind: types.OverrideKindCity, Slug: "maler-soroe", MetaTitle: strPtr("Egen titel"), Visible: true},
		}
		mockRepo.On("ListByKind", mock.Anything, types.OverrideKindCity).Return(rows, nil).Once()

		views, err := service.ListAdminCities(ctx)
		require.NoError(t, err)
		require.Len(t, views, len(registry.Cities()))

		var soroe *types.CityPageView
		for i := range views {
			if views[i].Slug == "maler-soroe" {
				soroe = &views[i]
			}
		}
		require.NotNil(t, soroe)
		assert.Equal(t, "Egen titel", soroe.MetaTitle)
		assert.True(t, soroe.HasDBOverride)
		assert.Equal(t, types.SourceBoth, soroe.Source)
		mockRepo.AssertExpectations(t)
	})

	t.Run("includes admin-created cities", func(t *testing.T) {
		service, mockRepo, _ := setupOverridesServiceTest()
		distance := 45.0
		rows := []types.ContentOverrideRecord{
			{Kind: types.OverrideKindCity, Slug: "maler-nyby", Name: strPtr("Nyby"), Distance: &distance, Visible: true},
		}
		mockRepo.On("ListByKind", mock.Anything, types.OverrideKindCity).Return(rows, nil).Once()

		views, err := service.ListAdminCities(ctx)
		require.NoError(t, err)
		require.Len(t, views, len(registry.Cities())+1)

		last := views[len(views)-1]
		assert.Equal(t, "maler-nyby", last.Slug)
		assert.Equal(t, "Nyby", last.Name)
		assert.Equal(t, types.SourceOverrideOnly, last.Source)
		mockRepo.AssertExpectations(t)
	})

	t.Run("hidden cities stay listed for the admin", func(t *testing.T) {
		service, mockRepo, _ := setupOverridesServiceTest()
		rows := []types.ContentOverrideRecord{
			{Kind: types.OverrideKindCity, Slug: "maler-soroe", Visible: false},
		}
		mockRepo.On("ListByKind", mock.Anything, types.OverrideKindCity).Return(rows, nil).Once()

		views, err := service.ListAdminCities(ctx)
		require.NoError(t, err)
		assert.Len(t, views, len(registry.Cities()))
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		service, mockRepo, _ := setupOverridesServiceTest()
		repoErr := errors.New("connection refused")
		mockRepo.On("ListByKind", mock.Anything, types.OverrideKindCity).Return(nil, repoErr).Once()

		_, err := service.ListAdminCities(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, repoErr))
		mockRepo.AssertExpectations(t)
	})
}

func TestListAdminServices(t *testing.T) {
	ctx := context.Background()
	service, mockRepo, _ := setupOverridesServiceTest()
	rows := []types.ContentOverrideRecord{
		{Kind: types.OverrideKindService, Slug: "tapetsering", HeroTitle: strPtr("Egen overskrift"), Visible: true},
	}
	mockRepo.On("ListByKind", mock.Anything, types.OverrideKindService).Return(rows, nil).Once()

	views, err := service.ListAdminServices(ctx)
	require.NoError(t, err)
	require.Len(t, views, len(registry.Services()))

	for _, v := range views {
		if v.Slug == "tapetsering" {
			assert.Equal(t, "Egen overskrift", v.HeroHeading)
			assert.True(t, v.HasDBOverride)
		}
	}
	mockRepo.AssertExpectations(t)
}

func TestSaveOverride(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates the page cache", func(t *testing.T) {
		service, mockRepo, mockInv := setupOverridesServiceTest()
		rec := types.ContentOverrideRecord{Kind: types.OverrideKindCity, Slug: "maler-soroe", Visible: true}
		mockRepo.On("Upsert", mock.Anything, rec).Return(&rec, nil).Once()
		mockInv.On("Invalidate", types.OverrideKindCity, "maler-soroe").Once()

		saved, err := service.Save(ctx, rec)
		require.NoError(t, err)
		assert.Equal(t, "maler-soroe", saved.Slug)
		mockRepo.AssertExpectations(t)
		mockInv.AssertExpectations(t)
	})

	t.Run("city without slug derives one from the name", func(t *testing.T) {
		service, mockRepo, mockInv := setupOverridesServiceTest()
		rec := types.ContentOverrideRecord{Kind: types.OverrideKindCity, Name: strPtr("Store Heddinge"), Visible: true}
		expected := rec
		expected.Slug = "maler-store-heddinge"
		mockRepo.On("Upsert", mock.Anything, expected).Return(&expected, nil).Once()
		mockInv.On("Invalidate", types.OverrideKindCity, "maler-store-heddinge").Once()

		saved, err := service.Save(ctx, rec)
		require.NoError(t, err)
		assert.Equal(t, "maler-store-heddinge", saved.Slug)
		mockRepo.AssertExpectations(t)
	})

	t.Run("service without slug is a validation error", func(t *testing.T) {
		service, _, _ := setupOverridesServiceTest()
		rec := types.ContentOverrideRecord{Kind: types.OverrideKindService, Name: strPtr("Noget")}

		_, err := service.Save(ctx, rec)
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrValidation))
	})

	t.Run("city without slug or name is a validation error", func(t *testing.T) {
		service, _, _ := setupOverridesServiceTest()
		rec := types.ContentOverrideRecord{Kind: types.OverrideKindCity, Name: strPtr("   ")}

		_, err := service.Save(ctx, rec)
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrValidation))
	})

	t.Run("repository error", func(t *testing.T) {
		service, mockRepo, mockInv := setupOverridesServiceTest()
		rec := types.ContentOverrideRecord{Kind: types.OverrideKindCity, Slug: "maler-soroe"}
		repoErr := errors.New("write failed")
		mockRepo.On("Upsert", mock.Anything, rec).Return(nil, repoErr).Once()

		_, err := service.Save(ctx, rec)
		require.Error(t, err)
		assert.True(t, errors.Is(err, repoErr))
		mockInv.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})
}

func TestDeleteOverride(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates the page cache", func(t *testing.T) {
		service, mockRepo, mockInv := setupOverridesServiceTest()
		mockRepo.On("Delete", mock.Anything, types.OverrideKindCity, "maler-soroe").Return(nil).Once()
		mockInv.On("Invalidate", types.OverrideKindCity, "maler-soroe").Once()

		err := service.Delete(ctx, types.OverrideKindCity, "maler-soroe")
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockInv.AssertExpectations(t)
	})

	t.Run("missing row", func(t *testing.T) {
		service, mockRepo, mockInv := setupOverridesServiceTest()
		mockRepo.On("Delete", mock.Anything, types.OverrideKindCity, "maler-soroe").Return(types.ErrNotFound).Once()

		err := service.Delete(ctx, types.OverrideKindCity, "maler-soroe")
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrNotFound))
		mockInv.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})
}
