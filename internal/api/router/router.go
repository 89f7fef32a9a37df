package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/wolfman30/mgagency-site/internal/http/middleware"
	"github.com/wolfman30/mgagency-site/internal/quote"
	"github.com/wolfman30/mgagency-site/internal/site"
	"github.com/wolfman30/mgagency-site/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	Site               *site.Renderer
	Quote              *quote.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
	// CompressLevel is the gzip level, 5 when unset.
	CompressLevel int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	level := cfg.CompressLevel
	if level == 0 {
		level = 5
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(level))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	if cfg.Site != nil {
		r.Get("/", cfg.Site.Page)
		r.Handle("/static/*", http.StripPrefix("/static", cfg.Site.Static()))
	}

	if cfg.Quote != nil {
		r.Mount("/api/quote", cfg.Quote.Routes())
		r.Post("/quote", cfg.Quote.SubmitForm)
	}

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
