package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/paia-notes/backend/internal/api"
	"github.com/paia-notes/backend/internal/clipper"
	"github.com/paia-notes/backend/internal/config"
	"github.com/paia-notes/backend/internal/notes"
	"github.com/paia-notes/backend/internal/service"
)

func main() {
	// Setup Logging
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := logger.WithField("service", "notes-api")

	// A .env file is optional; deployments usually set the environment directly
	if err := godotenv.Load(); err == nil {
		entry.Info("Loaded environment from .env")
	}

	entry.Info("Starting PAIA Notes API Service")

	// 1. Config
	cfg := config.Load()

	// 2. Store (append-only JSONL log)
	store := notes.NewStore(cfg.Store.NotesPath, entry)

	existing, err := store.All()
	if err != nil {
		entry.Fatalf("Failed to read notes log: %v", err)
	}
	entry.Infof("Notes log at %s holds %d notes", cfg.Store.NotesPath, len(existing))

	// 3. Clipper
	clip := clipper.New(cfg.Clipper.RequestTimeout, cfg.Clipper.UserAgent)

	// 4. Service
	svc := service.New(store, clip, entry)

	// 5. API Server
	server := api.NewServer(svc, entry)

	entry.Infof("Notes API ready on %s", cfg.Server.Addr())
	if err := server.Start(cfg.Server.Addr()); err != nil {
		entry.Fatal(err)
	}
}
