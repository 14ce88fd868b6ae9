package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/ledgerview/internal/config"
	"github.com/cleared-dev/ledgerview/internal/logger"
	"github.com/cleared-dev/ledgerview/internal/store"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	envFile    string
}

// load reads the dotenv file, the config file (defaults when missing) and
// the environment overrides, in that order.
func (o *globalOptions) load() (*config.Config, zerolog.Logger, error) {
	if err := config.LoadEnvFile(o.envFile); err != nil {
		return nil, zerolog.Nop(), err
	}
	cfg, err := config.LoadOrDefault(o.configPath)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, logger.New(cfg.Log.Level), nil
}

// openStore opens the configured payload store. The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pg, err := store.OpenPostgres(ctx, cfg.Store.DSN)
		if err != nil {
			return nil, nil, err
		}
		return pg, pg.Close, nil
	case config.DriverMemory:
		return store.NewMemory(cfg.Store.TTL), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
