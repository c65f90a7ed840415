package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-term/internal/database"
	"github.com/vancomm/minesweeper-term/internal/handlers"
	"github.com/vancomm/minesweeper-term/internal/middleware"
)

func runServe(ctx context.Context, args []string) error {
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore(store)

	h := handlers.New(log, store)
	server := &http.Server{
		Addr:         cfg.Records.Addr,
		Handler:      middleware.Wrap(h.ServeMux(), middleware.Logging(log), middleware.Cors()),
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	log.Infof("ready to serve @ %s", cfg.Records.Addr)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), cfg.Records.ShutdownTimeout.Duration)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}

func runMigrate(ctx context.Context, args []string) error {
	migrator, err := database.Migrate(cfg.DatabaseURL(), database.Migrations)
	if err != nil {
		return err
	}
	defer migrator.Close()

	version, dirty, err := migrator.Version()
	if err != nil {
		return err
	}
	log.WithFields(map[string]any{"version": version, "dirty": dirty}).Info("migration successful")
	return nil
}
