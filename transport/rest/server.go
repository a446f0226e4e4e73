package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

type Server struct {
	logger  *slog.Logger
	handler http.Handler
}

func New(logger *slog.Logger, games gameUseCase) *Server {
	log := logger.With("component", "rest")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", NewPingHandler().PingHandler)

	gameHandlers := NewGameHandlers(log, games)
	mux.HandleFunc("POST /game/start", gameHandlers.StartGame)
	mux.HandleFunc("POST /game/{id}/move", gameHandlers.MakeMove)
	mux.HandleFunc("GET /game/state/{id}", gameHandlers.GetGameState)
	mux.HandleFunc("GET /game/ids", gameHandlers.ListGameIDs)

	return &Server{
		logger:  log,
		handler: logRequests(log, mux),
	}
}

func (that *Server) Handler() http.Handler {
	return that.handler
}

// Start - serves HTTP until ctx is canceled, then shuts down within shutdownTimeout.
func (that *Server) Start(ctx context.Context, port string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	that.logger.Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
