package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/sheikhrachel/go-life/life"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

type stopReason string

const (
	stopLimit       stopReason = "generation limit reached"
	stopExtinct     stopReason = "extinction"
	stopStable      stopReason = "still life"
	stopCycle       stopReason = "oscillation"
	stopInterrupted stopReason = "interrupted"
)

// resolveConfig layers defaults, an optional JSON file, then flags and LIFE_* variables
func resolveConfig(cmd *cli.Command) (utils.Config, error) {
	config := utils.DefaultConfig()
	if path := cmd.String("config"); path != "" {
		var err error
		if config, err = utils.LoadConfig(path); err != nil {
			return config, err
		}
	}

	if cmd.IsSet("rows") {
		config.Rows = cmd.Int("rows")
	}
	if cmd.IsSet("cols") {
		config.Cols = cmd.Int("cols")
	}
	if cmd.IsSet("seed") {
		config.Seed = cmd.Uint64("seed")
	}
	if cmd.IsSet("max-generations") {
		config.MaxGenerations = cmd.Int("max-generations")
	}
	if cmd.IsSet("workers") {
		config.Workers = cmd.Int("workers")
	}
	if cmd.IsSet("frame-rate") {
		config.FrameRate = cmd.Duration("frame-rate")
	}
	if cmd.IsSet("history-depth") {
		config.HistoryDepth = cmd.Int("history-depth")
	}
	if cmd.Bool("blank") {
		config.Randomize = false
	}

	return config, config.Validate()
}

// gameOptions translates a run configuration into engine options
func gameOptions(config utils.Config) []life.Option {
	opts := []life.Option{life.WithWorkers(config.Workers)}
	if config.Seed != 0 {
		opts = append(opts, life.WithSeed(config.Seed))
	}
	if config.MaxGenerations > 0 {
		opts = append(opts, life.WithMaxGenerations(config.MaxGenerations))
	}
	return opts
}

// newGame loads the grid at loadPath, or builds a fresh one when loadPath is empty
func newGame(loadPath string, config utils.Config) (*life.Game, error) {
	if loadPath != "" {
		return life.Load(loadPath, gameOptions(config)...)
	}
	return life.New(config.Rows, config.Cols, config.Randomize, gameOptions(config)...)
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, game *life.Game) {
	rows, cols := game.Dimensions()
	limit := "unbounded"
	if n, ok := game.MaxGenerations(); ok {
		limit = fmt.Sprint(n)
	}
	fmt.Fprintf(out, "Grid: %dx%d | Initial living cells: %d | Generation limit: %s\n",
		rows, cols, game.Population(), limit)
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, game *life.Game, stats *utils.Stats) {
	rows, cols := game.Dimensions()
	population := game.Population()
	density := float64(population) / float64(rows*cols) * 100

	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%%\n", game.Generation(), population, density)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Elapsed().Seconds())
}

// displaySummary shows why the run ended and the final stats
func displaySummary(out io.Writer, game *life.Game, reason stopReason, stats *utils.Stats) {
	fmt.Fprintf(out, "\nStopped at generation %d: %s\n", game.Generation(), reason)
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds, %.1f avg population, %d peak\n",
		stats.TotalGenerations, stats.Elapsed().Seconds(), stats.AveragePopulation, stats.PeakPopulation)
}

// checkStopConditions determines if the run should end at the current generation
func checkStopConditions(game *life.Game, history *model.History, current *model.Grid) (stopReason, bool) {
	switch {
	case game.IsMaxGenerationsExceeded():
		return stopLimit, true
	case game.Population() == 0:
		return stopExtinct, true
	case game.Generation() > 1 && !game.IsChanging():
		return stopStable, true
	case history.Repeats(current):
		return stopReason(fmt.Sprintf("%s (period %d)", stopCycle, history.Period(current))), true
	}
	return "", false
}

// runGame drives game until a stop condition holds or ctx is cancelled
func runGame(
	ctx context.Context,
	game *life.Game,
	config utils.Config,
	renderer *model.TerminalRenderer,
	quiet bool,
) (stopReason, *utils.Stats, error) {
	var (
		history       = model.NewHistory(config.HistoryDepth)
		stats         = utils.NewStats()
		lastFrameTime = time.Now()
	)

	for {
		if ctx.Err() != nil {
			return stopInterrupted, stats, nil
		}

		frameStart := time.Now()
		stats.Update(game.Generation(), game.Population(), frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if !quiet {
			if err := renderer.Clear(); err != nil {
				return "", stats, err
			}
			displayGameStatus(renderer.Out, game, stats)
			if err := renderer.Display(game); err != nil {
				return "", stats, err
			}
		}

		current := game.Snapshot()
		if reason, stop := checkStopConditions(game, history, current); stop {
			return reason, stats, nil
		}
		history.Record(current)

		game.Step()

		select {
		case <-ctx.Done():
			return stopInterrupted, stats, nil
		case <-time.After(config.FrameRate):
		}
	}
}

// advanceGame steps game up to n times, stopping early once it stops changing or ctx is
// cancelled, and returns the number of steps taken
func advanceGame(ctx context.Context, game *life.Game, n int) int {
	steps := 0
	for steps < n && ctx.Err() == nil {
		game.Step()
		steps++
		if !game.IsChanging() {
			break
		}
	}
	return steps
}
