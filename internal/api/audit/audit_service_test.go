package audit

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

// MockContentLister is a mock implementation of ContentLister
type MockContentLister struct {
	mock.Mock
}

func (m *MockContentLister) ListAdminCities(ctx context.Context) ([]types.CityPageView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.CityPageView), args.Error(1)
}

func (m *MockContentLister) ListAdminServices(ctx context.Context) ([]types.ServicePageView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.ServicePageView), args.Error(1)
}

// MockBlogLister is a mock implementation of BlogLister
type MockBlogLister struct {
	mock.Mock
}

func (m *MockBlogLister) List(ctx context.Context, publishedOnly bool) ([]types.BlogPost, error) {
	args := m.Called(ctx, publishedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.BlogPost), args.Error(1)
}

// MockGalleryLister is a mock implementation of GalleryLister
type MockGalleryLister struct {
	mock.Mock
}

func (m *MockGalleryLister) List(ctx context.Context) ([]types.GalleryImage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.GalleryImage), args.Error(1)
}

var testCompany = types.CompanyProfile{
	Name:            "Maler Christensen",
	Phone:           "+45 58 52 00 00",
	BaseCity:        "Slagelse",
	TrustpilotScore: 4.8,
}

func setupAuditServiceTest() (*ServiceImpl, *MockContentLister, *MockBlogLister, *MockGalleryLister) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pages := new(MockContentLister)
	blog := new(MockBlogLister)
	gallery := new(MockGalleryLister)
	service := NewAuditService(pages, blog, gallery, testCompany, logger)
	return service, pages, blog, gallery
}

func findCategory(t *testing.T, cats []types.SEOCheckCategory, id string) types.SEOCheckCategory {
	t.Helper()
	for _, c := range cats {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("category %q not found", id)
	return types.SEOCheckCategory{}
}

func TestAuditRun(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path audits every source", func(t *testing.T) {
		service, pages, blog, gallery := setupAuditServiceTest()
		pages.On("ListAdminCities", mock.Anything).Return([]types.CityPageView{}, nil).Once()
		pages.On("ListAdminServices", mock.Anything).Return([]types.ServicePageView{}, nil).Once()
		blog.On("List", mock.Anything, false).Return([]types.BlogPost{}, nil).Once()
		gallery.On("List", mock.Anything).Return([]types.GalleryImage{}, nil).Once()

		cats, err := service.Run(ctx)
		require.NoError(t, err)
		require.Len(t, cats, 6)
		for _, c := range cats {
			assert.True(t, c.DataComplete, c.ID)
		}
		pages.AssertExpectations(t)
		blog.AssertExpectations(t)
		gallery.AssertExpectations(t)
	})

	t.Run("blog failure degrades instead of aborting", func(t *testing.T) {
		service, pages, blog, gallery := setupAuditServiceTest()
		pages.On("ListAdminCities", mock.Anything).Return([]types.CityPageView{}, nil).Once()
		pages.On("ListAdminServices", mock.Anything).Return([]types.ServicePageView{}, nil).Once()
		blog.On("List", mock.Anything, false).Return(nil, errors.New("connection refused")).Once()
		gallery.On("List", mock.Anything).Return([]types.GalleryImage{}, nil).Once()

		cats, err := service.Run(ctx)
		require.NoError(t, err)
		assert.False(t, findCategory(t, cats, "duplicate-titles").DataComplete)
		assert.False(t, findCategory(t, cats, "title-length").DataComplete)
		assert.True(t, findCategory(t, cats, "missing-alt").DataComplete)
	})

	t.Run("gallery failure only marks the alt category", func(t *testing.T) {
		service, pages, blog, gallery := setupAuditServiceTest()
		pages.On("ListAdminCities", mock.Anything).Return([]types.CityPageView{}, nil).Once()
		pages.On("ListAdminServices", mock.Anything).Return([]types.ServicePageView{}, nil).Once()
		blog.On("List", mock.Anything, false).Return([]types.BlogPost{}, nil).Once()
		gallery.On("List", mock.Anything).Return(nil, errors.New("connection refused")).Once()

		cats, err := service.Run(ctx)
		require.NoError(t, err)
		assert.False(t, findCategory(t, cats, "missing-alt").DataComplete)
		assert.True(t, findCategory(t, cats, "title-length").DataComplete)
	})

	t.Run("page store failure falls back to generated defaults", func(t *testing.T) {
		service, pages, blog, gallery := setupAuditServiceTest()
		pages.On("ListAdminCities", mock.Anything).Return(nil, errors.New("connection refused")).Once()
		pages.On("ListAdminServices", mock.Anything).Return(nil, errors.New("connection refused")).Once()
		blog.On("List", mock.Anything, false).Return([]types.BlogPost{}, nil).Once()
		gallery.On("List", mock.Anything).Return([]types.GalleryImage{}, nil).Once()

		cats, err := service.Run(ctx)
		require.NoError(t, err)

		// Generated defaults cover the whole registry, so the H1 rule still
		// sees every page and comes back clean.
		h1 := findCategory(t, cats, "missing-h1")
		assert.Equal(t, types.SeverityPass, h1.Status)
		assert.Empty(t, h1.Issues)
	})

	t.Run("finds real issues in page data", func(t *testing.T) {
		service, pages, blog, gallery := setupAuditServiceTest()
		svc := types.ServicePageView{
			Name: registry.Services()[0].Name, Slug: registry.Services()[0].Slug,
			HeroHeading: "Overskrift",
		}
		pages.On("ListAdminCities", mock.Anything).Return([]types.CityPageView{}, nil).Once()
		pages.On("ListAdminServices", mock.Anything).Return([]types.ServicePageView{svc}, nil).Once()
		blog.On("List", mock.Anything, false).Return([]types.BlogPost{}, nil).Once()
		gallery.On("List", mock.Anything).Return([]types.GalleryImage{}, nil).Once()

		cats, err := service.Run(ctx)
		require.NoError(t, err)

		missing := findCategory(t, cats, "missing-meta")
		assert.Equal(t, types.SeverityError, missing.Status)
		require.Len(t, missing.Issues, 2) // empty title and description
	})
}
