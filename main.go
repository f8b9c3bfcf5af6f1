// Command go-life drives a Game of Life simulation from the terminal.
//
// It has three commands:
//  1. "run" renders generations until the grid settles, the generation limit is reached, or
//     the process is interrupted
//  2. "advance" loads a grid file, steps it headlessly, and saves the result
//  3. "seed" writes a random grid file
//
// Flags may also come from LIFE_* environment variables, which are read from a .env file
// when one exists.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/sheikhrachel/go-life/life"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "go-life"
)

func gridFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "JSON configuration file",
			Sources: cli.EnvVars("LIFE_CONFIG"),
		},
		&cli.IntFlag{
			Name:    "rows",
			Usage:   "grid height",
			Value:   utils.DefaultConfig().Rows,
			Sources: cli.EnvVars("LIFE_ROWS"),
		},
		&cli.IntFlag{
			Name:    "cols",
			Usage:   "grid width",
			Value:   utils.DefaultConfig().Cols,
			Sources: cli.EnvVars("LIFE_COLS"),
		},
		&cli.Uint64Flag{
			Name:    "seed",
			Usage:   "random seed for the initial grid (0 seeds from the runtime)",
			Sources: cli.EnvVars("LIFE_SEED"),
		},
		&cli.IntFlag{
			Name:    "max-generations",
			Usage:   "stop once this generation is reached (0 is unbounded)",
			Sources: cli.EnvVars("LIFE_MAX_GENERATIONS"),
		},
		&cli.IntFlag{
			Name:    "workers",
			Usage:   "goroutines used to compute each generation",
			Value:   utils.DefaultConfig().Workers,
			Sources: cli.EnvVars("LIFE_WORKERS"),
		},
	}
}

func newRunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "render the simulation until it settles",
		Flags: append(gridFlags(),
			&cli.StringFlag{Name: "load", Usage: "start from a grid file instead of a random grid"},
			&cli.StringFlag{Name: "save", Usage: "write the final grid to this file"},
			&cli.BoolFlag{Name: "blank", Usage: "start from an all-dead grid"},
			&cli.BoolFlag{Name: "quiet", Usage: "do not draw the board"},
			&cli.DurationFlag{
				Name:    "frame-rate",
				Usage:   "delay between generations",
				Value:   utils.DefaultConfig().FrameRate,
				Sources: cli.EnvVars("LIFE_FRAME_RATE"),
			},
			&cli.IntFlag{
				Name:  "history-depth",
				Usage: "generations remembered for cycle detection",
				Value: utils.DefaultConfig().HistoryDepth,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			config, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			game, err := newGame(cmd.String("load"), config)
			if err != nil {
				return err
			}

			out := cmd.Root().Writer
			displayGameInfo(out, game)

			reason, stats, err := runGame(ctx, game, config, &model.TerminalRenderer{Out: out}, cmd.Bool("quiet"))
			if err != nil {
				return err
			}
			displaySummary(out, game, reason, stats)

			if path := cmd.String("save"); path != "" {
				if err := game.Save(path); err != nil {
					return err
				}
				log.Printf("Saved generation %d to %s", game.Generation(), path)
			}
			return nil
		},
	}
}

func newAdvanceCommand() *cli.Command {
	return &cli.Command{
		Name:      "advance",
		Usage:     "step a grid file headlessly and save the result",
		ArgsUsage: "INPUT OUTPUT",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "generations", Aliases: []string{"n"}, Value: 1, Usage: "number of steps"},
			&cli.IntFlag{Name: "workers", Value: 1, Usage: "goroutines used to compute each generation"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				return cli.Exit("advance needs INPUT and OUTPUT paths", 2)
			}
			in, out := cmd.Args().Get(0), cmd.Args().Get(1)

			game, err := life.Load(in, life.WithWorkers(cmd.Int("workers")))
			if err != nil {
				return err
			}
			steps := advanceGame(ctx, game, cmd.Int("generations"))

			if err := game.Save(out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.Root().Writer, "Advanced %s by %d generations (population %d) -> %s\n",
				in, steps, game.Population(), out)
			return nil
		},
	}
}

func newSeedCommand() *cli.Command {
	return &cli.Command{
		Name:      "seed",
		Usage:     "write a random grid file",
		ArgsUsage: "OUTPUT",
		Flags:     gridFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return cli.Exit("seed needs an OUTPUT path", 2)
			}
			config, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			config.Randomize = true

			game, err := newGame("", config)
			if err != nil {
				return err
			}
			path := cmd.Args().First()
			if err := game.Save(path); err != nil {
				return err
			}
			rows, cols := game.Dimensions()
			fmt.Fprintf(cmd.Root().Writer, "Wrote %dx%d grid with %d living cells to %s\n",
				rows, cols, game.Population(), path)
			return nil
		},
	}
}

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := &cli.Command{
		Name:    AppName,
		Usage:   "Conway's Game of Life on a bounded grid",
		Version: Version,
		Commands: []*cli.Command{
			newRunCommand(),
			newAdvanceCommand(),
			newSeedCommand(),
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatalf("%s: %v", AppName, err)
	}
}
