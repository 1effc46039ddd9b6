package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/showdown-games/showdown/pkg/api/middleware"
	authproviders "github.com/showdown-games/showdown/pkg/auth/providers"
	"github.com/showdown-games/showdown/pkg/commitment"
	"github.com/showdown-games/showdown/pkg/escrow"
	"github.com/showdown-games/showdown/pkg/events"
	"github.com/showdown-games/showdown/pkg/game"
	gametypes "github.com/showdown-games/showdown/pkg/game/types"
	"github.com/showdown-games/showdown/pkg/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	repository := repositories.NewInMemoryRepository()
	manager := game.NewManager(game.NewManagerOptions{
		Repository:   repository,
		Escrow:       escrow.NewInMemoryLedger(),
		EventManager: events.NewEventManager(),
	})

	authMiddleware := middleware.NewAuthMiddleware(authproviders.NewInsecureAuthProvider())
	router := mux.NewRouter()
	router.Handle("/games", authMiddleware(HandleCreateGame(manager))).Methods(http.MethodPost)
	router.Handle("/games", authMiddleware(HandleListGames(repository))).Methods(http.MethodGet)
	router.Handle("/games/{gameID}", authMiddleware(HandleGetGame(repository))).Methods(http.MethodGet)
	router.Handle("/games/{gameID}/join", authMiddleware(HandleJoinGame(manager))).Methods(http.MethodPost)
	router.Handle("/games/{gameID}/reveal", authMiddleware(HandleRevealMove(manager))).Methods(http.MethodPost)
	router.Handle("/commitments", HandleComputeCommitment()).Methods(http.MethodPost)
	return router
}

func doRequest(t *testing.T, router *mux.Router, method, path, caller string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if caller != "" {
		req.Header.Set("Authorization", "Bearer "+caller)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandlers_FullGame(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/games", "alice", &CreateGameRequest{
		Commitment: commitment.Compute(gametypes.ChoiceRock, "s1"),
		Stake:      10,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	created := &CreateGameResponse{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(created))
	assert.Equal(t, int64(1), created.GameID)

	gamePath := fmt.Sprintf("/games/%d", created.GameID)

	w = doRequest(t, router, http.MethodPost, gamePath+"/join", "bob", &JoinGameRequest{
		Commitment: commitment.Compute(gametypes.ChoiceScissors, "s2"),
		Stake:      10,
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodPost, gamePath+"/reveal", "alice", &RevealRequest{
		Choice: "rock",
		Secret: "s1",
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodPost, gamePath+"/reveal", "bob", &RevealRequest{
		Choice: "scissors",
		Secret: "s2",
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodGet, gamePath, "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := &gametypes.Game{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(got))
	assert.Equal(t, gametypes.PhaseFinished, got.Phase)
	assert.Equal(t, gametypes.ChoiceRock, got.FirstChoice)
	assert.Equal(t, gametypes.ChoiceScissors, got.SecondChoice)
}

func TestHandlers_ErrorMapping(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/games", "alice", &CreateGameRequest{
		Commitment: commitment.Compute(gametypes.ChoiceRock, "s1"),
		Stake:      10,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("missing token", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/games", "", &CreateGameRequest{})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("zero stake", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/games", "alice", &CreateGameRequest{
			Commitment: commitment.Compute(gametypes.ChoiceRock, "s1"),
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("stake mismatch", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/games/1/join", "bob", &JoinGameRequest{
			Commitment: commitment.Compute(gametypes.ChoiceScissors, "s2"),
			Stake:      5,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("self play", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/games/1/join", "alice", &JoinGameRequest{
			Commitment: commitment.Compute(gametypes.ChoiceScissors, "s2"),
			Stake:      10,
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("reveal before join", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/games/1/reveal", "alice", &RevealRequest{
			Choice: "rock",
			Secret: "s1",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown game", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/games/42", "alice", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad game id", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/games/nope", "alice", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid choice", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/games/1/reveal", "alice", &RevealRequest{
			Choice: "dynamite",
			Secret: "s1",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleComputeCommitment(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/commitments", "", &ComputeCommitmentRequest{
		Choice: "lizard",
		Secret: "s1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := &ComputeCommitmentResponse{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(resp))
	assert.Equal(t, commitment.Compute(gametypes.ChoiceLizard, "s1"), resp.Commitment)

	t.Run("empty secret", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/commitments", "", &ComputeCommitmentRequest{
			Choice: "lizard",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
