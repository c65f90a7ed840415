package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/minesweeper-term/internal/console"
	"github.com/vancomm/minesweeper-term/internal/mines"
	"github.com/vancomm/minesweeper-term/internal/records"
	"github.com/vancomm/minesweeper-term/internal/tui"
)

func newConsole(opts ...console.Option) *console.Console {
	opts = append([]console.Option{
		console.WithLogger(log),
		console.WithPlayer(cfg.Player),
		console.WithExportDir(cfg.ExportDir),
	}, opts...)
	return console.New(os.Stdin, os.Stdout, opts...)
}

func runPlay(ctx context.Context, args []string) error {
	store := openStoreOrNop(ctx)
	defer closeStore(store)
	return newConsole(console.WithStore(store)).Run(ctx)
}

func sizeFlag(name string, args []string) (int, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	size := fs.Int("size", 10, "board size")
	if err := fs.Parse(args); err != nil {
		return 0, err
	}
	if *size < console.MinSize {
		return 0, fmt.Errorf("size must be at least %d", console.MinSize)
	}
	return *size, nil
}

func runExport(ctx context.Context, args []string) error {
	size, err := sizeFlag("export", args)
	if err != nil {
		return err
	}
	return newConsole().Export(size)
}

func runView(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: view FILE")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	return newConsole().View(f)
}

func newSound() tui.Sound {
	if !cfg.Sound {
		return tui.Silent{}
	}
	s, err := tui.NewSpeaker()
	if err != nil {
		// non-fatal, the game can run without sound
		log.WithError(err).Warn("audio initialization failed")
		return tui.Silent{}
	}
	return s
}

func runTUI(ctx context.Context, args []string) error {
	size, err := sizeFlag("tui", args)
	if err != nil {
		return err
	}
	session, err := mines.NewSession(size)
	if err != nil {
		return err
	}

	store := openStoreOrNop(ctx)
	defer closeStore(store)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	sound := newSound()
	if s, ok := sound.(*tui.Speaker); ok {
		defer s.Close()
	}

	runErr := tui.New(screen, session, sound).Run(ctx)
	screen.Fini()

	if rec, ok := records.FromSession(cfg.Player, session); ok {
		if err := store.Save(context.WithoutCancel(ctx), &rec); err != nil {
			log.WithError(err).Error("unable to save game record")
		}
	}
	if session.Started() {
		fmt.Printf("%s\n\n%s\n", session.View().Stats(), session.View().RenderFullyRevealed())
	}
	return runErr
}
