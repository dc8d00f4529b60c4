package redirects

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
)

// Resolver keeps an in-memory snapshot of the redirect table and serves it
// as middleware. The snapshot is loaded at startup and reloaded after admin
// writes; a stale snapshot between writes is acceptable.
type Resolver struct {
	logger *slog.Logger
	repo   Repository

	mu    sync.RWMutex
	rules map[string]rule
}

type rule struct {
	toPath     string
	statusCode int
}

func NewResolver(repo Repository, logger *slog.Logger) *Resolver {
	return &Resolver{
		logger: logger,
		repo:   repo,
		rules:  map[string]rule{},
	}
}

// Reload replaces the snapshot with the current table contents. On failure
// the previous snapshot stays in place.
func (rs *Resolver) Reload(ctx context.Context) error {
	rows, err := rs.repo.List(ctx)
	if err != nil {
		rs.logger.ErrorContext(ctx, "Failed to reload redirects, keeping previous snapshot", slog.Any("error", err))
		return err
	}
	next := make(map[string]rule, len(rows))
	for _, r := range rows {
		code := r.StatusCode
		if code != http.StatusMovedPermanently && code != http.StatusFound {
			code = http.StatusMovedPermanently
		}
		next[normalizePath(r.FromPath)] = rule{toPath: r.ToPath, statusCode: code}
	}
	rs.mu.Lock()
	rs.rules = next
	rs.mu.Unlock()
	rs.logger.InfoContext(ctx, "Redirect snapshot reloaded", slog.Int("rules", len(next)))
	return nil
}

// normalizePath strips a trailing slash the same way StripSlashes does for
// incoming requests, so admin-stored paths like "/gammel-side/" still match.
func normalizePath(p string) string {
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		return strings.TrimSuffix(p, "/")
	}
	return p
}

// Middleware answers matching request paths with the configured redirect and
// passes everything else through.
func (rs *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.mu.RLock()
		target, ok := rs.rules[r.URL.Path]
		rs.mu.RUnlock()
		if ok && r.Method == http.MethodGet {
			http.Redirect(w, r, target.toPath, target.statusCode)
			return
		}
		next.ServeHTTP(w, r)
	})
}
