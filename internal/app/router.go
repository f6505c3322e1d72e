package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/memoboard/internal/config"
	"github.com/heartmarshall/memoboard/internal/transport/middleware"
	"github.com/heartmarshall/memoboard/internal/transport/rest"
)

// RouterDeps are the handlers and settings the router is assembled from.
type RouterDeps struct {
	Logger *slog.Logger
	CORS   config.CORSConfig
	Memos  *rest.MemoHandler
	Health *rest.HealthHandler
	Static http.Handler
	// WriteLimit wraps every mutating memo route. Nil means unlimited.
	WriteLimit middleware.Middleware
}

// NewRouter registers all routes and wraps them in the middleware chain.
func NewRouter(d RouterDeps) http.Handler {
	write := middleware.Chain(d.WriteLimit)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)

	mux.HandleFunc("GET /api/memos", d.Memos.List)
	mux.HandleFunc("GET /api/memos/{id}", d.Memos.Get)
	mux.Handle("POST /api/memos", write(http.HandlerFunc(d.Memos.Create)))
	mux.Handle("PUT /api/memos/{id}", write(http.HandlerFunc(d.Memos.Edit)))
	mux.Handle("DELETE /api/memos/{id}", write(http.HandlerFunc(d.Memos.Delete)))
	mux.Handle("PATCH /api/memos/{id}/toggle/{itemId}", write(http.HandlerFunc(d.Memos.ToggleItem)))
	mux.Handle("PATCH /api/memos/{id}/color", write(http.HandlerFunc(d.Memos.SetColor)))
	mux.Handle("PATCH /api/memos/{id}/pin", write(http.HandlerFunc(d.Memos.TogglePin)))

	if d.Static != nil {
		mux.Handle("GET /", d.Static)
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
	)(mux)
}
