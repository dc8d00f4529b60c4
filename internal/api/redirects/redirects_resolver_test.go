package redirects

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/robinroyhansen/maler-christensen-api/internal/types"
)

type MockRedirectsRepo struct {
	mock.Mock
}

var _ Repository = (*MockRedirectsRepo)(nil)

func (m *MockRedirectsRepo) List(ctx context.Context) ([]types.Redirect, error) {
	args := m.Called(ctx)
	if rv := args.Get(0); rv != nil {
		return rv.([]types.Redirect), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRedirectsRepo) Create(ctx context.Context, params types.UpsertRedirectParams) (*types.Redirect, error) {
	args := m.Called(ctx, params)
	if rv := args.Get(0); rv != nil {
		return rv.(*types.Redirect), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRedirectsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestResolver(repo Repository) *Resolver {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewResolver(repo, logger)
}

func serve(t *testing.T, rs *Resolver, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	passthrough := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	rs.Middleware(passthrough).ServeHTTP(rec, req)
	return rec
}

func TestResolverMiddleware(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockRedirectsRepo)
	mockRepo.On("List", mock.Anything).Return([]types.Redirect{
		{FromPath: "/maler-soroe-gammel", ToPath: "/byer/maler-soroe", StatusCode: http.StatusMovedPermanently},
		{FromPath: "/kampagne", ToPath: "/kontakt", StatusCode: http.StatusFound},
	}, nil).Once()

	rs := newTestResolver(mockRepo)
	require.NoError(t, rs.Reload(ctx))

	t.Run("matching GET redirects", func(t *testing.T) {
		rec := serve(t, rs, http.MethodGet, "/maler-soroe-gammel")
		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/byer/maler-soroe", rec.Header().Get("Location"))
	})

	t.Run("temporary redirect keeps its status code", func(t *testing.T) {
		rec := serve(t, rs, http.MethodGet, "/kampagne")
		assert.Equal(t, http.StatusFound, rec.Code)
	})

	t.Run("unmatched path passes through", func(t *testing.T) {
		rec := serve(t, rs, http.MethodGet, "/byer/maler-korsoer")
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("non-GET passes through even on a match", func(t *testing.T) {
		rec := serve(t, rs, http.MethodPost, "/kampagne")
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})
}

func TestResolverReload(t *testing.T) {
	ctx := context.Background()

	t.Run("unsupported status codes fall back to 301", func(t *testing.T) {
		mockRepo := new(MockRedirectsRepo)
		mockRepo.On("List", mock.Anything).Return([]types.Redirect{
			{FromPath: "/gammel", ToPath: "/ny", StatusCode: 307},
			{FromPath: "/nul", ToPath: "/ny", StatusCode: 0},
		}, nil).Once()

		rs := newTestResolver(mockRepo)
		require.NoError(t, rs.Reload(ctx))

		for _, path := range []string{"/gammel", "/nul"} {
			rec := serve(t, rs, http.MethodGet, path)
			assert.Equal(t, http.StatusMovedPermanently, rec.Code, path)
		}
	})

	t.Run("trailing slash in a stored path still matches", func(t *testing.T) {
		// StripSlashes normalizes incoming request paths before the resolver
		// runs, so stored paths get the same treatment.
		mockRepo := new(MockRedirectsRepo)
		mockRepo.On("List", mock.Anything).Return([]types.Redirect{
			{FromPath: "/gammel-side/", ToPath: "/byer/maler-slagelse", StatusCode: http.StatusMovedPermanently},
		}, nil).Once()

		rs := newTestResolver(mockRepo)
		require.NoError(t, rs.Reload(ctx))

		rec := serve(t, rs, http.MethodGet, "/gammel-side")
		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/byer/maler-slagelse", rec.Header().Get("Location"))
	})

	t.Run("failed reload keeps the previous snapshot", func(t *testing.T) {
		mockRepo := new(MockRedirectsRepo)
		mockRepo.On("List", mock.Anything).Return([]types.Redirect{
			{FromPath: "/gammel", ToPath: "/ny", StatusCode: http.StatusMovedPermanently},
		}, nil).Once()
		mockRepo.On("List", mock.Anything).Return(nil, errors.New("connection refused")).Once()

		rs := newTestResolver(mockRepo)
		require.NoError(t, rs.Reload(ctx))
		assert.Error(t, rs.Reload(ctx))

		rec := serve(t, rs, http.MethodGet, "/gammel")
		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("successful reload replaces the snapshot", func(t *testing.T) {
		mockRepo := new(MockRedirectsRepo)
		mockRepo.On("List", mock.Anything).Return([]types.Redirect{
			{FromPath: "/foerste", ToPath: "/ny", StatusCode: http.StatusMovedPermanently},
		}, nil).Once()
		mockRepo.On("List", mock.Anything).Return([]types.Redirect{}, nil).Once()

		rs := newTestResolver(mockRepo)
		require.NoError(t, rs.Reload(ctx))
		require.NoError(t, rs.Reload(ctx))

		rec := serve(t, rs, http.MethodGet, "/foerste")
		assert.Equal(t, http.StatusTeapot, rec.Code)
		mockRepo.AssertExpectations(t)
	})
}
