package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/aurabeat/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup creates the configuration file and prepares the session database
// when the sqlite store is configured.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := shared.CreateConfigFile(configPath); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		r.writePlain("✓ Created config file at %s\n", configPath)
		r.writePlainln("  Edit it (or set SPOTIFY_CLIENT_ID / SPOTIFY_CLIENT_SECRET / SESSION_SECRET) before running other commands.")
	} else {
		r.writePlain("✓ Config file already exists at %s\n", configPath)
	}

	config := r.loadConfig(cmd)

	if config.Session.Store != "sqlite" {
		r.writePlainln("✓ Cookie session store configured, no database needed")
		return nil
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if cmd.Bool("rollback") {
		if err := shared.RollbackMigration(db); err != nil {
			return fmt.Errorf("rollback failed: %w", err)
		}
		r.writePlainln("✓ Rolled back the most recent migration")
		return nil
	}

	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	r.writePlain("✓ Database ready at %s\n", config.Database.Path)
	return nil
}
