package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-term/internal/config"
	"github.com/vancomm/minesweeper-term/internal/logging"
	"github.com/vancomm/minesweeper-term/internal/mines"
	"github.com/vancomm/minesweeper-term/internal/records"
)

var (
	log = logrus.New()

	configPath string
	cfg        *config.Config
)

func init() {
	const (
		defaultConfigPath = "minesweeper.yaml"
		usage             = "config file path"
	)
	flag.StringVar(&configPath, "config", defaultConfigPath, usage)
	flag.StringVar(&configPath, "c", defaultConfigPath, usage+" (shorthand)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-c config] [command] [args]\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "commands:")
		for _, c := range commands {
			fmt.Fprintf(flag.CommandLine.Output(), "  %-10s %s\n", c.name, c.usage)
		}
		fmt.Fprintln(flag.CommandLine.Output())
		flag.PrintDefaults()
	}
}

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, args []string) error
}

var commands = []command{
	{"play", "line based game in the terminal (default)", runPlay},
	{"tui", "full screen game, -size N", runTUI},
	{"export", "write a generated map to the export dir, -size N", runExport},
	{"view", "print an exported map, view FILE", runView},
	{"records", "print the leaderboard, -size N -player NAME -limit N", runRecords},
	{"serve", "serve the leaderboard over HTTP", runServe},
	{"migrate", "apply postgres migrations", runMigrate},
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	var err error
	if cfg, err = config.Read(configPath); err != nil {
		log.Fatal(err)
	}
	if err := logging.Setup(log, cfg); err != nil {
		log.Fatal(err)
	}
	mines.Log = log
	records.Log = log

	name, args := "play", flag.Args()
	if len(args) > 0 {
		name, args = args[0], args[1:]
	}

	for _, c := range commands {
		if c.name != name {
			continue
		}
		if name != "serve" && cfg.Log.Path == "" {
			// stdout and stderr belong to the board
			log.SetOutput(io.Discard)
		}
		log.WithField("command", name).Info("starting up, mode = ", cfg.Mode)
		log.WithFields(cfg.Fields()).Debug("config")

		if err := c.run(mainCtx, args); err != nil && mainCtx.Err() == nil {
			log.WithError(err).Error("exit reason")
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	fmt.Fprintf(os.Stderr, "unknown command %q\n", name)
	flag.Usage()
	os.Exit(2)
}
