package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"qmstracker/internal/config"
	"qmstracker/internal/db"
	"qmstracker/internal/handler"
	"qmstracker/internal/kv"
	"qmstracker/internal/model"
	"qmstracker/internal/repository"
	"qmstracker/internal/service"
)

// seedFile optionally overrides the built-in samples with a JSON file
// of the form {"qmsEntries": [...], "sourcingEntries": [...]}.
type seedFile struct {
	Assignment []model.Entry `json:"qmsEntries"`
	Sourcing   []model.Entry `json:"sourcingEntries"`
}

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	log.Printf("Storage backend: %s", cfg.StorageBackend)

	assignment, sourcing := handler.SampleEntries()
	if path := os.Getenv("SEED_FILE"); path != "" {
		log.Printf("Loading seed data from: %s", path)
		assignment, sourcing, err = loadSeedFile(path)
		if err != nil {
			log.Fatalf("Failed to load seed file: %v", err)
		}
	}

	ctx := context.Background()
	entryRepo := repository.NewEntryRepository(store)

	if err := entryRepo.SaveCollection(ctx, model.SourceAssignment, assignment); err != nil {
		log.Fatalf("Failed to seed assignment entries: %v", err)
	}
	if err := entryRepo.SaveCollection(ctx, model.SourceSourcing, sourcing); err != nil {
		log.Fatalf("Failed to seed sourcing entries: %v", err)
	}

	// Seed the default profile alongside the collections.
	userRepo := repository.NewUserRepository(store)
	tokenRepo := repository.NewTokenRepository(store)
	users := service.NewUserService(userRepo, tokenRepo, 0)
	user, err := users.EnsureDefault(ctx)
	if err != nil {
		log.Fatalf("Failed to seed default user: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Assignment entries: %d", len(assignment))
	log.Printf("  - Sourcing entries: %d", len(sourcing))
	log.Printf("  - Current user: %s", user.Username)
}

func loadSeedFile(path string) ([]model.Entry, []model.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read seed file: %w", err)
	}
	var parsed seedFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, nil, fmt.Errorf("parse seed file: %w", err)
	}
	return parsed.Assignment, parsed.Sourcing, nil
}

// newStore builds the persistence adapter selected by configuration.
func newStore(cfg *config.Config) (kv.Store, error) {
	switch cfg.StorageBackend {
	case "memory":
		return kv.NewMemoryStore(), nil
	case "mysql":
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		return kv.NewMySQLStore(gormDB)
	case "redis":
		return kv.NewRedisStore(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB), nil
	default:
		return kv.NewFileStore(cfg.DataDir)
	}
}
