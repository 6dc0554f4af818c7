package cmd

import (
	"context"
	"fmt"

	"github.com/chrisdamba/foodadmin/internal/database"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/repositories"
	"github.com/chrisdamba/foodadmin/internal/repositories/memory"
	"github.com/chrisdamba/foodadmin/internal/repositories/postgres"
	log "github.com/sirupsen/logrus"
)

// openStore returns the configured store and a function releasing it.
func openStore(ctx context.Context, cfg *models.Config) (*repositories.Store, func(), error) {
	if cfg.Server.InMemory {
		log.Warn("using in-memory store, data is lost on exit")
		return memory.NewStore(), func() {}, nil
	}

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(cfg.Database.URL, "up"); err != nil {
			return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewStore(pool), pool.Close, nil
}
