package main

import (
	"context"
	"fmt"

	"github.com/vancomm/minesweeper-term/internal/config"
	"github.com/vancomm/minesweeper-term/internal/records"
	"github.com/vancomm/minesweeper-term/internal/repository"
)

func openStore(ctx context.Context) (records.Store, error) {
	switch cfg.Records.Backend {
	case config.RecordsLocal:
		return records.OpenLocal(cfg.Records.Path)
	case config.RecordsPostgres:
		return repository.Open(ctx, cfg.DatabaseURL())
	case config.RecordsNone:
		return records.Nop{}, nil
	default:
		return nil, fmt.Errorf("unknown records backend %q", cfg.Records.Backend)
	}
}

// openStoreOrNop keeps the game playable when the leaderboard is not.
func openStoreOrNop(ctx context.Context) records.Store {
	store, err := openStore(ctx)
	if err != nil {
		log.WithError(err).Warn("records disabled")
		return records.Nop{}
	}
	return store
}

func closeStore(store records.Store) {
	if err := store.Close(); err != nil {
		log.WithError(err).Error("unable to close records store")
	}
}
