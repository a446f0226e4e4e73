package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

const maxBodyBytes = 1 << 10

type gameUseCase interface {
	CreateGame(ctx context.Context) (*entity.GameState, error)
	GetGame(ctx context.Context, gameID string) (*entity.GameState, error)
	MakeMove(ctx context.Context, gameID string, space int) (*entity.GameState, error)
	ListGameIDs(ctx context.Context) []string
}

type GameHandlers interface {
	StartGame(w http.ResponseWriter, r *http.Request)
	MakeMove(w http.ResponseWriter, r *http.Request)
	GetGameState(w http.ResponseWriter, r *http.Request)
	ListGameIDs(w http.ResponseWriter, r *http.Request)
}

// MoveRequest is the body of a move. Space is a pointer so a missing field is rejected.
type MoveRequest struct {
	Space *int `json:"space"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type gameHandlers struct {
	logger *slog.Logger
	games  gameUseCase
}

func NewGameHandlers(logger *slog.Logger, games gameUseCase) GameHandlers {
	return &gameHandlers{
		logger: logger,
		games:  games,
	}
}

func (that *gameHandlers) StartGame(w http.ResponseWriter, r *http.Request) {
	state, err := that.games.CreateGame(r.Context())
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, state)
}

func (that *gameHandlers) MakeMove(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(&req); err != nil || req.Space == nil {
		that.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid move request"})
		return
	}

	state, err := that.games.MakeMove(r.Context(), r.PathValue("id"), *req.Space)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, state)
}

func (that *gameHandlers) GetGameState(w http.ResponseWriter, r *http.Request) {
	state, err := that.games.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, state)
}

func (that *gameHandlers) ListGameIDs(w http.ResponseWriter, r *http.Request) {
	that.writeJSON(w, http.StatusOK, that.games.ListGameIDs(r.Context()))
}

// writeError - maps core errors to distinct statuses and messages.
func (that *gameHandlers) writeError(w http.ResponseWriter, err error) {
	var (
		status  int
		message string
	)

	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		status, message = http.StatusNotFound, apperror.ErrGameNotFound.Error()
	case errors.Is(err, apperror.ErrInvalidSpace):
		status, message = http.StatusBadRequest, apperror.ErrInvalidSpace.Error()
	case errors.Is(err, apperror.ErrHistoryFull):
		status, message = http.StatusConflict, apperror.ErrHistoryFull.Error()
	case errors.Is(err, apperror.ErrInvalidMove):
		status, message = http.StatusConflict, apperror.ErrInvalidMove.Error()
	default:
		that.logger.Error("unexpected error", "error", err)
		status, message = http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}

	that.writeJSON(w, status, ErrorResponse{Error: message})
}

func (that *gameHandlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
