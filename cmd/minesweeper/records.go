package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/vancomm/minesweeper-term/internal/records"
)

func runRecords(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("records", flag.ContinueOnError)
	size := fs.Int("size", 0, "only boards of this size")
	player := fs.String("player", "", "only games of this player")
	limit := fs.Int("limit", 10, "number of records")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := records.Filter{Limit: *limit}
	if *size > 0 {
		filter.Size = size
	}
	if *player != "" {
		filter.Player = player
	}

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore(store)

	rs, err := store.Highscores(ctx, filter)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tPLAYER\tSIZE\tMINES\tTURNS\tTIME\tDATE")
	for i, r := range rs {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%s\t%s\n",
			i+1, r.Player, r.Size, r.MineCount, r.Turns,
			r.Playtime().Round(time.Millisecond), r.EndedAt.Format(time.DateTime))
	}
	return w.Flush()
}
