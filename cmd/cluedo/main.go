package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"cluedo-dealer/internal/cli"
	"cluedo-dealer/internal/config"
	"cluedo-dealer/internal/stats"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

// Globals are shared by every command.
type Globals struct {
	LogLevel string `name:"loglevel" default:"info" help:"Set logging level (debug, info, warn, error)"`
	Config   string `short:"c" default:"default_config.json" type:"path" help:"Game configuration file (.json or .hcl)"`
	Seed     int64  `help:"Random seed; 0 picks one from the clock"`
}

// CLI is the command tree.
type CLI struct {
	Globals

	Deal  DealCmd  `cmd:"" help:"Deal one game and show the hand sizes"`
	Table TableCmd `cmd:"" help:"Seat the players interactively and inspect the deal from one seat"`
	Stats StatsCmd `cmd:"" help:"Deal many games and report how evenly the cards were spread"`
}

// env is the set of top-level dependencies handed to each command.
type env struct {
	log  *logrus.Logger
	cfg  *config.GameConfig
	rand *rand.Rand
	seed int64
}

func (g *Globals) setup() (*env, error) {
	log := logrus.New()
	level, err := logrus.ParseLevel(g.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})

	cfg, err := config.Load(g.Config)
	if err != nil {
		log.Errorf("Failed to load configuration: %v", err)
		return nil, err
	}

	seed := g.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debugf("Using seed %d", seed)
	return &env{log: log, cfg: cfg, rand: rand.New(rand.NewSource(seed)), seed: seed}, nil
}

type DealCmd struct {
	Seats  []string `arg:"" optional:"" help:"Seats playing this game (defaults to active_seats in the config)"`
	Reveal bool     `short:"r" help:"Show every hand and the solution"`
}

func (c *DealCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}
	return cli.NewCLI(e.log, os.Stdout).RunDeal(e.cfg, c.Seats, e.rand, c.Reveal)
}

type TableCmd struct{}

func (c *TableCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}
	return cli.NewCLI(e.log, os.Stdout).RunTable(e.cfg, e.rand)
}

type StatsCmd struct {
	Seats   []string `arg:"" optional:"" help:"Seats playing (defaults to active_seats in the config)"`
	Games   int      `short:"n" default:"10000" help:"Number of games to deal"`
	Workers int      `short:"w" default:"0" help:"Parallel workers (0 = number of CPUs)"`
}

func (c *StatsCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	opts := stats.Options{Games: c.Games, Workers: c.Workers, Seed: e.seed}
	return cli.NewCLI(e.log, os.Stdout).RunStats(ctx, e.cfg, c.Seats, opts)
}

func main() {
	var root CLI
	ctx := kong.Parse(&root,
		kong.Name("cluedo"),
		kong.Description("Deal the secret solution and the hands for a game of Cluedo"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(&root.Globals)
	ctx.FatalIfErrorf(err)
}
