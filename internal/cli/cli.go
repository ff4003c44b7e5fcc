package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"cluedo-dealer/internal/cards"
	"cluedo-dealer/internal/config"
	"cluedo-dealer/internal/game"
	"cluedo-dealer/internal/stats"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// CLI manages all command-line interactions.
type CLI struct {
	log  *logrus.Logger
	out  io.Writer
	line *liner.State
}

// NewCLI creates a new command-line interface manager writing to out.
func NewCLI(log *logrus.Logger, out io.Writer) *CLI {
	return &CLI{
		log: log,
		out: out,
	}
}

// seatsOrDefault prefers seats given on the command line over the config file.
func seatsOrDefault(cfg *config.GameConfig, seats []string) []string {
	if len(seats) > 0 {
		return seats
	}
	return cfg.ActiveSeats
}

func (c *CLI) newBuilder(cfg *config.GameConfig, seats []string, rand *rand.Rand) (*game.GameBuilder, error) {
	universe, err := cfg.Universe()
	if err != nil {
		return nil, err
	}
	builder := game.NewBuilder(universe, c.log, rand).WithActiveSeats(seats...)
	if cfg.CaseInsensitiveSeats {
		builder.WithCaseInsensitiveSeats()
	}
	if cfg.StrictSeats {
		builder.WithStrictSeats()
	}
	builder.EventManager().Subscribe(NewDealRenderer(c.out))
	return builder, nil
}

// RunDeal deals one game and prints how many cards each seat holds.
// With reveal set every hand and the solution are shown as well.
func (c *CLI) RunDeal(cfg *config.GameConfig, seats []string, rand *rand.Rand, reveal bool) error {
	C.Header.Fprintln(c.out, "--- Dealing a new game ---")
	builder, err := c.newBuilder(cfg, seatsOrDefault(cfg, seats), rand)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	g, err := builder.Build()
	if err != nil {
		return fmt.Errorf("failed to build game: %w", err)
	}

	fmt.Fprintln(c.out)
	RenderHandCounts(c.out, g.HandCounts(), g.Seats())
	if reveal {
		fmt.Fprintln(c.out)
		RenderHands(c.out, g.Players)
		g.End()
	}
	return nil
}

// RunStats deals many games concurrently and prints how evenly cards were spread.
func (c *CLI) RunStats(ctx context.Context, cfg *config.GameConfig, seats []string, opts stats.Options) error {
	C.Header.Fprintf(c.out, "--- Dealing %d games ---\n", opts.Games)
	survey, err := stats.Run(ctx, cfg, seatsOrDefault(cfg, seats), opts, c.log)
	if err != nil {
		return fmt.Errorf("survey failed: %w", err)
	}
	RenderSurvey(c.out, survey)
	return nil
}

// RunTable seats the players interactively and lets the viewer inspect the game.
func (c *CLI) RunTable(cfg *config.GameConfig, rand *rand.Rand) error {
	c.line = liner.NewLiner()
	c.line.SetCtrlCAborts(true)
	defer c.line.Close()

	C.Info.Fprintln(c.out, "\n--- Setting up the table ---")
	def := strings.Join(cfg.ActiveSeats, " ")
	input, err := c.promptWithDefault("Which seats are playing? ", def)
	if err != nil {
		return nil
	}
	seats := strings.FieldsFunc(input, func(r rune) bool { return r == ',' || r == ' ' })

	builder, err := c.newBuilder(cfg, seats, rand)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Resolve the viewer before the deal so only their hand is revealed.
	var options []string
	for _, s := range cards.CanonicalSeats() {
		options = append(options, s.String())
	}
	viewerName, err := c.promptForSelection("Which seat are you?", options)
	if err != nil {
		return nil
	}
	viewer, _ := cards.LookupSeat(viewerName, false)

	g, err := builder.WithViewer(viewer).Build()
	if err != nil {
		return fmt.Errorf("failed to build game: %w", err)
	}
	if _, ok := g.Player(viewer); !ok {
		C.Warn.Fprintf(c.out, "%s is not playing; you are watching.\n", viewer)
	}
	c.printTableHelp()

	for {
		input, err := c.line.Prompt("(table) ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				C.Info.Fprintln(c.out, "\nGoodbye!")
				return nil
			}
			return fmt.Errorf("error reading line: %w", err)
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		c.line.AppendHistory(input)
		if quit := c.handleTableCommand(g, viewer, input); quit {
			return nil
		}
	}
}

var errUnknownCommand = errors.New("unknown command")

// handleTableCommand runs one table command and reports whether to leave the table.
func (c *CLI) handleTableCommand(g *game.Game, viewer cards.Seat, input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])

	switch cmd {
	case "hand", "ha":
		c.handleHandCommand(g, viewer)
	case "counts", "c":
		RenderHandCounts(c.out, g.HandCounts(), g.Seats())
	case "turn", "t":
		C.Info.Fprintf(c.out, "It is %s's turn.\n", ColorizeSeat(g.CurrentSeat()))
	case "next", "n":
		if _, err := g.Advance(); err != nil {
			C.Warn.Fprintln(c.out, "The game is over.")
		}
	case "has":
		if len(parts) < 2 {
			C.Warn.Fprintln(c.out, "Usage: has <card>")
			break
		}
		c.handleHasCommand(g, viewer, strings.Join(parts[1:], " "))
	case "reveal", "r":
		g.End()
		RenderHands(c.out, g.Players)
	case "help", "h":
		c.printTableHelp()
	case "quit", "q":
		C.Info.Fprintln(c.out, "Leaving the table.")
		return true
	default:
		C.Warn.Fprintf(c.out, "%v '%s'. Type 'help' for a list of commands.\n", errUnknownCommand, cmd)
	}
	return false
}

func (c *CLI) handleHandCommand(g *game.Game, viewer cards.Seat) {
	p, ok := g.Player(viewer)
	if !ok {
		C.Warn.Fprintln(c.out, "You are not holding any cards.")
		return
	}
	C.Header.Fprintln(c.out, "\n--- Your Hand ---")
	for _, card := range p.Hand() {
		C.Info.Fprintf(c.out, " - %s (%s)\n", card.Name, card.Category)
	}
}

func (c *CLI) handleHasCommand(g *game.Game, viewer cards.Seat, name string) {
	card, ok := g.Universe().Lookup(name)
	if !ok {
		C.Warn.Fprintf(c.out, "Error: Card '%s' not found.\n", name)
		return
	}
	p, ok := g.Player(viewer)
	if ok && p.HasCard(card.Name) {
		C.Yes.Fprintf(c.out, "You hold %s.\n", card.Name)
		return
	}
	C.No.Fprintf(c.out, "You do not hold %s.\n", card.Name)
}
