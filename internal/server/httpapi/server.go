// Package httpapi exposes the PromptEase core over an HTTP JSON API and
// serves the embedded single-page UI. It is the view-facing surface: it
// dispatches login, signup, submit and logout into the services below and
// never holds business logic of its own.
package httpapi

import (
	"context"
	"embed"
	"net/http"
	"time"

	"github.com/mkravets/promptease/internal/logging"
	"github.com/mkravets/promptease/internal/prompt"
	"github.com/mkravets/promptease/internal/server/services"
	"github.com/mkravets/promptease/internal/server/session"
)

//go:embed static
var staticFS embed.FS

type Server struct {
	address       string
	logger        logging.Logger
	users         *services.UserService
	sessions      *session.Registry
	gateway       *prompt.Gateway
	jwtSecret     []byte
	tokenValidity time.Duration
	staticAPIKey  string
}

func NewServer(
	address string,
	l logging.Logger,
	us *services.UserService,
	sessions *session.Registry,
	gateway *prompt.Gateway,
	secretKey string,
	tokenValidity time.Duration,
	staticAPIKey string,
) *Server {
	return &Server{
		address:       address,
		logger:        l.With("module", "httpapi"),
		users:         us,
		sessions:      sessions,
		gateway:       gateway,
		jwtSecret:     []byte(secretKey),
		tokenValidity: tokenValidity,
		staticAPIKey:  staticAPIKey,
	}
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/signup", s.handleSignup)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/logout", s.withSession(s.handleLogout))
	mux.HandleFunc("POST /api/submit", s.withSession(s.handleSubmit))
	mux.HandleFunc("GET /api/messages", s.withSession(s.handleMessages))
	mux.HandleFunc("GET /api/models", s.handleModels)

	mux.Handle("GET /", s.staticHandler())

	return mux
}

func (s *Server) staticHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		page, err := staticFS.ReadFile("static/index.html")
		if err != nil {
			http.Error(w, "page unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	})
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
