// Package main provides the dice roller simulation CLI. It rolls NdS dice
// repeatedly and prints face and sum histograms with a mean comparison.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dicesim/internal/config"
	"github.com/cory-johannsen/dicesim/internal/dice"
	"github.com/cory-johannsen/dicesim/internal/observability"
	"github.com/cory-johannsen/dicesim/internal/prompt"
	"github.com/cory-johannsen/dicesim/internal/report"
	"github.com/cory-johannsen/dicesim/internal/sim"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dicesim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to configuration file (optional)")
	notation := fs.String("dice", "", "dice notation such as 2d6; overrides -n and -sides")
	sides := fs.Int("sides", 0, "number of sides on each die")
	count := fs.Int("n", 0, "number of dice per roll")
	rolls := fs.Int64("rolls", 0, "number of rolls to simulate")
	seed := fs.Uint64("seed", 0, "seed for a reproducible run (0 = crypto/rand)")
	interactive := fs.Bool("interactive", true, "prompt for sides, dice and rolls")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "loading config: %v\n", err)
		return 1
	}

	// Explicit flags win over the file and environment.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sides":
			cfg.Simulation.Sides = *sides
		case "n":
			cfg.Simulation.Dice = *count
		case "rolls":
			cfg.Simulation.Rolls = *rolls
		case "seed":
			cfg.Simulation.Seed = *seed
		case "interactive":
			cfg.Simulation.Interactive = *interactive
		}
	})
	if *notation != "" {
		n, err := dice.Parse(*notation)
		if err != nil {
			fmt.Fprintf(stderr, "invalid -dice: %v\n", err)
			return 1
		}
		cfg.Simulation.Sides = n.Sides
		cfg.Simulation.Dice = n.Count
	}

	logger, err := observability.NewLogger(cfg.Logging, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "initializing logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	params := cfg.Simulation.Params()
	if cfg.Simulation.Interactive {
		params = ask(prompt.New(stdin, stdout), stdout, params)
	}

	if err := params.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid input values: %v. Please ensure sides >= 2, dice >= 1, and rolls > 0.\n", err)
		return 1
	}

	src := dice.NewCryptoSource()
	if cfg.Simulation.Seed != 0 {
		src = dice.NewSeededSource(cfg.Simulation.Seed)
		logger.Info("using seeded source", zap.Uint64("seed", cfg.Simulation.Seed))
	}

	result, err := sim.NewSimulator(src, logger).Run(params)
	if err != nil {
		fmt.Fprintf(stderr, "simulation failed: %v\n", err)
		return 1
	}

	if err := report.Write(stdout, params, result); err != nil {
		logger.Error("writing report", zap.Error(err))
		return 1
	}
	return 0
}

// ask prompts for each parameter, offering defaults as the fallback answer.
func ask(p *prompt.Prompter, out io.Writer, defaults sim.Params) sim.Params {
	fmt.Fprintln(out, "=== Dice Roller Simulation ===")
	params := sim.Params{
		Sides: p.Int(fmt.Sprintf("Enter number of sides on the die (default %d): ", defaults.Sides), defaults.Sides),
		Dice:  p.Int(fmt.Sprintf("Number of dice per roll (default %d): ", defaults.Dice), defaults.Dice),
		Rolls: p.Int64(fmt.Sprintf("Number of rolls to simulate (default %d): ", defaults.Rolls), defaults.Rolls),
	}
	fmt.Fprintln(out)
	return params
}
