package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/showdown-games/showdown/pkg/api/middleware"
	"github.com/showdown-games/showdown/pkg/commitment"
	"github.com/showdown-games/showdown/pkg/game"
	gametypes "github.com/showdown-games/showdown/pkg/game/types"
	"github.com/showdown-games/showdown/pkg/log"
	"github.com/showdown-games/showdown/pkg/repositories"
)

type CreateGameRequest struct {
	Commitment string `json:"commitment"`
	Stake      int64  `json:"stake"`
}

type CreateGameResponse struct {
	GameID int64 `json:"game_id"`
}

type JoinGameRequest struct {
	Commitment string `json:"commitment"`
	Stake      int64  `json:"stake"`
}

type RevealRequest struct {
	Choice string `json:"choice"`
	Secret string `json:"secret"`
}

type ComputeCommitmentRequest struct {
	Choice string `json:"choice"`
	Secret string `json:"secret"`
}

type ComputeCommitmentResponse struct {
	Commitment string `json:"commitment"`
}

func HandleCreateGame(manager *game.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := middleware.Caller(r.Context())
		if !ok {
			log.Error("failed to get caller from context")
			http.Error(w, "Failed to get caller from context", http.StatusInternalServerError)
			return
		}

		req := &CreateGameRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			http.Error(w, "Failed to decode request body", http.StatusBadRequest)
			return
		}

		gameID, err := manager.CreateGame(r.Context(), caller, req.Commitment, req.Stake)
		if err != nil {
			writeGameError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(&CreateGameResponse{GameID: gameID}); err != nil {
			log.Error("failed to encode response: %v", err)
		}
	}
}

func HandleJoinGame(manager *game.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := middleware.Caller(r.Context())
		if !ok {
			log.Error("failed to get caller from context")
			http.Error(w, "Failed to get caller from context", http.StatusInternalServerError)
			return
		}

		gameID, err := parseGameID(r)
		if err != nil {
			http.Error(w, "Failed to parse gameID", http.StatusBadRequest)
			return
		}

		req := &JoinGameRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			http.Error(w, "Failed to decode request body", http.StatusBadRequest)
			return
		}

		if err := manager.JoinGame(r.Context(), caller, gameID, req.Commitment, req.Stake); err != nil {
			writeGameError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func HandleRevealMove(manager *game.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := middleware.Caller(r.Context())
		if !ok {
			log.Error("failed to get caller from context")
			http.Error(w, "Failed to get caller from context", http.StatusInternalServerError)
			return
		}

		gameID, err := parseGameID(r)
		if err != nil {
			http.Error(w, "Failed to parse gameID", http.StatusBadRequest)
			return
		}

		req := &RevealRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			http.Error(w, "Failed to decode request body", http.StatusBadRequest)
			return
		}

		choice, err := gametypes.ParseChoice(req.Choice)
		if err != nil {
			http.Error(w, "Invalid choice", http.StatusBadRequest)
			return
		}

		if err := manager.Reveal(r.Context(), caller, gameID, choice, req.Secret); err != nil {
			writeGameError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func HandleGetGame(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, err := parseGameID(r)
		if err != nil {
			http.Error(w, "Failed to parse gameID", http.StatusBadRequest)
			return
		}

		game, err := repository.GetGame(r.Context(), gameID)
		if err != nil {
			if repositories.IsNotFound(err) {
				http.Error(w, "Game not found", http.StatusNotFound)
				return
			}
			log.Error("failed to get game: %v", err)
			http.Error(w, "Failed to get game", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(game); err != nil {
			log.Error("failed to encode game: %v", err)
		}
	}
}

func HandleListGames(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := repository.ListGames(r.Context())
		if err != nil {
			log.Error("failed to list games: %v", err)
			http.Error(w, "Failed to list games", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(games); err != nil {
			log.Error("failed to encode games: %v", err)
		}
	}
}

// HandleComputeCommitment computes a commitment digest for a choice
// and secret. It is a pure helper for parties preparing a commitment;
// nothing is stored and the secret never leaves the request scope.
func HandleComputeCommitment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &ComputeCommitmentRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			http.Error(w, "Failed to decode request body", http.StatusBadRequest)
			return
		}

		choice, err := gametypes.ParseChoice(req.Choice)
		if err != nil {
			http.Error(w, "Invalid choice", http.StatusBadRequest)
			return
		}
		if req.Secret == "" {
			http.Error(w, "Secret must not be empty", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		resp := &ComputeCommitmentResponse{Commitment: commitment.Compute(choice, req.Secret)}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Error("failed to encode commitment: %v", err)
		}
	}
}

func parseGameID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["gameID"], 10, 64)
}

func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case repositories.IsNotFound(err):
		http.Error(w, "Game not found", http.StatusNotFound)
	case game.IsInvalidInput(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case game.IsInvalidPhase(err):
		http.Error(w, err.Error(), http.StatusConflict)
	case game.IsUnauthorized(err):
		http.Error(w, err.Error(), http.StatusForbidden)
	case game.IsAlreadyRevealed(err):
		http.Error(w, err.Error(), http.StatusConflict)
	case game.IsCommitmentMismatch(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Error("unexpected game operation error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
