package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/showdown-games/showdown/pkg/api"
	"github.com/showdown-games/showdown/pkg/archive"
	authproviders "github.com/showdown-games/showdown/pkg/auth/providers"
	"github.com/showdown-games/showdown/pkg/escrow"
	"github.com/showdown-games/showdown/pkg/events"
	"github.com/showdown-games/showdown/pkg/game"
	"github.com/showdown-games/showdown/pkg/log"
	"github.com/showdown-games/showdown/pkg/repositories"
	"github.com/showdown-games/showdown/pkg/version"
	"github.com/showdown-games/showdown/pkg/workers"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	logLevel := flag.String("log-level", "info", "Log level")
	sqlitePath := flag.String("sqlite-path", "", "Path to a sqlite database file (default in-memory store)")
	archivePath := flag.String("archive-path", "games.archive", "Path to the finished game audit archive")
	firebaseProjectID := flag.String("firebase-project-id", "", "Firebase project ID for token verification")
	firebaseAPIKey := flag.String("firebase-api-key", "", "Firebase API key for token verification")
	certFile := flag.String("cert-file", "", "Path to a TLS certificate file")
	keyFile := flag.String("key-file", "", "Path to a TLS key file")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting server version %s", version.Get())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var repository repositories.Repository
	switch {
	case os.Getenv("DATABASE_URL") != "":
		repository, err = repositories.NewPostgresRepository(ctx, os.Getenv("DATABASE_URL"))
		if err != nil {
			panic(fmt.Sprintf("Failed to create postgres repository: %v", err))
		}
	case *sqlitePath != "":
		repository, err = repositories.NewSQLiteRepository(ctx, *sqlitePath)
		if err != nil {
			panic(fmt.Sprintf("Failed to create sqlite repository: %v", err))
		}
	default:
		log.Warn("No database configured, games will not survive a restart")
		repository = repositories.NewInMemoryRepository()
	}
	defer repository.Close(ctx)

	var authProvider authproviders.AuthProvider
	if *firebaseProjectID != "" {
		authProvider, err = authproviders.NewFirebaseAuthProvider(ctx, *firebaseProjectID, *firebaseAPIKey)
		if err != nil {
			panic(fmt.Sprintf("Failed to create firebase auth provider: %v", err))
		}
	} else {
		log.Warn("No auth provider configured, using insecure token identities")
		authProvider = authproviders.NewInsecureAuthProvider()
	}

	archiveWriter, err := archive.NewWriter(*archivePath)
	if err != nil {
		panic(fmt.Sprintf("Failed to create archive writer: %v", err))
	}
	defer archiveWriter.Close()

	eventManager := events.NewEventManager()
	finishedGameChan := make(chan int64, 100)

	archiveWorker := workers.NewArchiveGameWorker(workers.NewArchiveGameWorkerOptions{
		Repository:       repository,
		FinishedGameChan: finishedGameChan,
		Writer:           archiveWriter,
	})
	go archiveWorker.Start(ctx)

	gameManager := game.NewManager(game.NewManagerOptions{
		Repository:       repository,
		Escrow:           escrow.NewInMemoryLedger(),
		EventManager:     eventManager,
		FinishedGameChan: finishedGameChan,
	})

	var tlsConfig *api.TLSConfig
	if *certFile != "" && *keyFile != "" {
		tlsConfig = &api.TLSConfig{
			CertFile: *certFile,
			KeyFile:  *keyFile,
		}
	}

	apiServer := api.NewAPIServer(api.NewAPIServerOptions{
		Port:         *port,
		TLS:          tlsConfig,
		AuthProvider: authProvider,
		GameManager:  gameManager,
		Repository:   repository,
		EventManager: eventManager,
	})
	go apiServer.Start()

	<-ctx.Done()
	log.Info("Shutting down")
	if err := apiServer.Stop(context.Background()); err != nil {
		log.Error("Failed to stop API server: %v", err)
	}
}
