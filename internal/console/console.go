package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-term/internal/mines"
	"github.com/vancomm/minesweeper-term/internal/records"
)

const MinSize = 3

const (
	optionPlay   = "1"
	optionExport = "2"
	optionHowTo  = "3"
	optionAbout  = "4"
	optionExit   = "5"
)

// Console is the line based front-end: a menu, a play loop reading moves
// such as "r 1 2", and map export.
type Console struct {
	in        *bufio.Scanner
	out       io.Writer
	log       logrus.FieldLogger
	store     records.Store
	player    string
	exportDir string
	opts      []mines.Option
	now       func() time.Time
}

type Option func(*Console)

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Console) { c.log = log }
}

func WithStore(store records.Store) Option {
	return func(c *Console) { c.store = store }
}

func WithPlayer(player string) Option {
	return func(c *Console) { c.player = player }
}

func WithExportDir(dir string) Option {
	return func(c *Console) { c.exportDir = dir }
}

func WithEngineOptions(opts ...mines.Option) Option {
	return func(c *Console) { c.opts = opts }
}

func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:        bufio.NewScanner(in),
		out:       out,
		log:       logrus.StandardLogger(),
		store:     records.Nop{},
		player:    "anonymous",
		exportDir: ".",
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// readLine prompts and reads one line. ok is false once input is exhausted.
func (c *Console) readLine(prompt string) (line string, ok bool) {
	c.printf("%s", prompt)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// Run shows the menu until the player exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	c.println(welcome)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, ok := c.chooseOption()
		if !ok {
			return nil
		}
		if choice == optionExit {
			break
		}
		switch choice {
		case optionPlay, optionExport:
			size, ok := c.getSize()
			if !ok {
				return nil
			}
			if choice == optionPlay {
				if _, err := c.Play(ctx, size); err != nil {
					return err
				}
			} else if err := c.Export(size); err != nil {
				c.log.WithError(err).Error("export failed")
				c.println("Could not export the map:", err)
			}
		case optionHowTo:
			c.printInstructions()
		case optionAbout:
			c.println(about)
		}
		if !c.goBackToMenu() {
			return nil
		}
	}
	c.println("THANK YOU for playing!")
	return nil
}

func (c *Console) chooseOption() (string, bool) {
	for {
		c.println(menu)
		choice, ok := c.readLine("Choose option: ")
		if !ok {
			return "", false
		}
		switch choice {
		case optionPlay, optionExport, optionHowTo, optionAbout, optionExit:
			return choice, true
		}
		c.println("Please choose from valid options")
	}
}

func (c *Console) getSize() (int, bool) {
	prompt := fmt.Sprintf("Choose size of the Minesweeper Grid (>= %d): ", MinSize)
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return 0, false
		}
		if size, err := strconv.Atoi(line); err == nil && size >= MinSize {
			return size, true
		}
		c.printf("Please choose valid size (>= %d)\n", MinSize)
	}
}

func (c *Console) goBackToMenu() bool {
	_, ok := c.readLine("Press enter to go back to the menu...")
	c.println()
	return ok
}

func (c *Console) printInstructions() {
	for _, section := range instructions {
		c.println(section.header)
		c.println(section.body)
		c.println()
	}
}

func (c *Console) printBoard(view mines.View) {
	c.println(view.Stats())
	c.println()
	c.println(view.RenderGrid())
}

// Play runs one game of the given size until it is won, lost or quit.
// Running out of input quits the game.
func (c *Console) Play(ctx context.Context, size int) (mines.Outcome, error) {
	session, err := mines.NewSession(size, c.opts...)
	if err != nil {
		return mines.Playing, err
	}
	log := c.log.WithFields(logrus.Fields{"size": size, "player": c.player})
	log.Info("game started")

	for !session.Over() {
		var move mines.Move
		line, ok := c.readLine(":")
		if !ok || ctx.Err() != nil {
			move = mines.QuitMove()
		} else if move, err = mines.ParseMove(line, size); err != nil {
			log.WithError(err).WithField("input", line).Debug("invalid move")
			c.println("Please enter valid input")
			continue
		}

		ev, err := session.Apply(move)
		if errors.Is(err, mines.ErrAlreadyRevealed) {
			c.println("Invalid location: Already revealed")
			continue
		} else if err != nil {
			return session.Outcome(), err
		}

		if ev.LifeLost {
			c.println("1 life lost!")
		}
		if move.Op != mines.OpQuit {
			c.printBoard(session.View())
		}
	}

	switch session.Outcome() {
	case mines.Won:
		c.println("Congrats!")
	case mines.Lost:
		c.println("Better luck next time!")
	default:
		c.println("Be back soon!")
	}
	if session.Outcome() != mines.Won && session.Started() {
		c.println("Solution: ")
		c.println(session.View().RenderFullyRevealed())
	}

	log.WithFields(logrus.Fields{
		"outcome": session.Outcome().String(),
		"turns":   session.View().Turns(),
	}).Info("game ended")
	c.saveRecord(ctx, session)

	return session.Outcome(), nil
}

func (c *Console) saveRecord(ctx context.Context, session *mines.Session) {
	rec, ok := records.FromSession(c.player, session)
	if !ok {
		return
	}
	if err := c.store.Save(ctx, &rec); err != nil {
		c.log.WithError(err).Error("unable to save game record")
	}
}

// Export writes a freshly generated map to <unix ms>.txt in the export
// directory.
func (c *Console) Export(size int) error {
	e, err := mines.NewExportMap(size, c.opts...)
	if err != nil {
		return err
	}
	path := filepath.Join(c.exportDir, fmt.Sprintf("%d.txt", c.now().UnixMilli()))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := mines.WriteExport(f, e); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	c.log.WithFields(logrus.Fields{"path": path, "size": size}).Info("map exported")
	c.println("Map exported to", path)
	c.println(exportHelp)
	return nil
}

// View prints an exported map.
func (c *Console) View(r io.Reader) error {
	e, err := mines.ReadExport(r)
	if err != nil {
		return err
	}
	c.printf("Size: %d\tNumber of Mines: %d\n\n", e.Size(), e.MineCount())
	c.println(e.RenderFullyRevealed())
	return nil
}
