package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/showdown-games/showdown/pkg/api/handlers"
	"github.com/showdown-games/showdown/pkg/api/middleware"
	authproviders "github.com/showdown-games/showdown/pkg/auth/providers"
	"github.com/showdown-games/showdown/pkg/events"
	"github.com/showdown-games/showdown/pkg/game"
	"github.com/showdown-games/showdown/pkg/log"
	"github.com/showdown-games/showdown/pkg/repositories"
)

type APIServer struct {
	server      *http.Server
	tls         *TLSConfig
	subscribers *eventSubscribers
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port         int
	TLS          *TLSConfig
	AuthProvider authproviders.AuthProvider
	GameManager  *game.Manager
	Repository   repositories.Repository
	EventManager *events.EventManager
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	authMiddleware := middleware.NewAuthMiddleware(opts.AuthProvider)
	subscribers := newEventSubscribers()
	opts.EventManager.RegisterHandler(subscribers.broadcast)

	router := mux.NewRouter()
	router.Handle("/games", authMiddleware(handlers.HandleCreateGame(opts.GameManager))).Methods(http.MethodPost)
	router.Handle("/games", authMiddleware(handlers.HandleListGames(opts.Repository))).Methods(http.MethodGet)
	router.Handle("/games/{gameID}", authMiddleware(handlers.HandleGetGame(opts.Repository))).Methods(http.MethodGet)
	router.Handle("/games/{gameID}/join", authMiddleware(handlers.HandleJoinGame(opts.GameManager))).Methods(http.MethodPost)
	router.Handle("/games/{gameID}/reveal", authMiddleware(handlers.HandleRevealMove(opts.GameManager))).Methods(http.MethodPost)
	router.Handle("/commitments", handlers.HandleComputeCommitment()).Methods(http.MethodPost)
	router.Handle("/events", handleEvents(subscribers)).Methods(http.MethodGet)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: router,
	}
	return &APIServer{
		server:      server,
		tls:         opts.TLS,
		subscribers: subscribers,
	}
}

// Start starts the APIServer
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
