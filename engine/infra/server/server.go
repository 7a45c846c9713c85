package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	infrapostgres "github.com/todoman/todoman/engine/infra/postgres"
	"github.com/todoman/todoman/engine/infra/store"
	todopostgres "github.com/todoman/todoman/engine/todo/infra/postgres"
	todorouter "github.com/todoman/todoman/engine/todo/router"
	"github.com/todoman/todoman/pkg/config"
	"github.com/todoman/todoman/pkg/logger"
)

// Server hosts the todo HTTP API.
type Server struct {
	cfg *config.Config
	db  *store.DB
}

// New creates a server from the given configuration.
func New(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Run connects to the database, applies migrations, and serves HTTP
// until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := infrapostgres.ApplyMigrations(ctx, s.cfg.Database.DSN()); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	db, err := store.NewDB(ctx, &s.cfg.Database)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	s.db = db
	defer db.Close(ctx)

	srv := &http.Server{
		Addr:              s.cfg.Server.Addr(),
		Handler:           s.buildRouter(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

func (s *Server) buildRouter(ctx context.Context) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(logger.FromContext(ctx)))
	r.Use(CORSMiddleware(s.cfg.Server.CORSAllowedOrigins))
	r.GET("/health", healthHandler(s.db))
	todorouter.Register(r, todopostgres.NewRepository(s.db))
	return r
}
