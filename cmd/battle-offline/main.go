package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/montplusa/quixo-battle-game/pkg/ai/factory"
	"github.com/montplusa/quixo-battle-game/pkg/ai/neural"
	"github.com/montplusa/quixo-battle-game/pkg/game"
)

// nextSequence returns the first unused <prefix>_NNNNN.json number in dir.
// Numbering starts at 1 and continues after the highest existing file, so
// repeated runs with one prefix never overwrite each other.
func nextSequence(dir, prefix string) (int, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}

	next := 1
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		digits, ok := strings.CutPrefix(e.Name(), prefix+"_")
		if !ok {
			continue
		}
		digits, ok = strings.CutSuffix(digits, ".json")
		if !ok || len(digits) != 5 || strings.Trim(digits, "0123456789") != "" {
			continue
		}
		seq, _ := strconv.Atoi(digits)
		next = max(next, seq+1)
	}
	return next, nil
}

// queueTasks numbers games from first and returns them on a closed channel.
func queueTasks(games, first int) <-chan battleTask {
	tasks := make(chan battleTask, games)
	for i := 0; i < games; i++ {
		tasks <- battleTask{gameIndex: i, seqNum: first + i}
	}
	close(tasks)
	return tasks
}

type battleTask struct {
	gameIndex int
	seqNum    int
}

type battleResult struct {
	gameIndex int
	// seat of the -p0 agent in this game; seats swap every other game
	seat   int
	result game.BattleResult
}

type battleConfig struct {
	agents     [2]factory.Spec
	maxTurns   int
	outputDir  string
	prefix     string
	noOutput   bool
	swapSeats  bool
	printBoard bool
}

func runBattle(ctx context.Context, cfg battleConfig, task battleTask) (battleResult, error) {
	specs := cfg.agents
	seat := 0
	if cfg.swapSeats && task.gameIndex%2 == 1 {
		specs[0], specs[1] = specs[1], specs[0]
		seat = 1
	}
	var agents [2]game.AI
	for i, spec := range specs {
		if spec.Seed != 0 {
			spec.Seed += int64(task.gameIndex)
		}
		a, err := factory.New(spec)
		if err != nil {
			return battleResult{}, err
		}
		agents[i] = a
	}

	gr := game.NewGameRunner(agents[0], agents[1])
	gr.MaxTurns = cfg.maxTurns
	result := gr.Run(ctx)
	if result.Reason == game.ReasonCanceled {
		// an interrupted game is not a draw; leave no result file behind
		return battleResult{}, fmt.Errorf("game %d: %w", task.gameIndex, ctx.Err())
	}

	if cfg.printBoard {
		fmt.Printf("game %d: %s vs %s, winner %d (%s)\n", task.gameIndex, result.Players[0], result.Players[1], result.Winner, result.Reason)
		if err := game.Fprint(os.Stdout, result.FinalState.Board, true); err != nil {
			return battleResult{}, err
		}
	}

	if !cfg.noOutput {
		data, err := json.Marshal(result)
		if err != nil {
			return battleResult{}, fmt.Errorf("encode game %d: %w", task.gameIndex, err)
		}
		filename := filepath.Join(cfg.outputDir, fmt.Sprintf("%s_%05d.json", cfg.prefix, task.seqNum))
		if err := os.WriteFile(filename, data, 0o644); err != nil {
			return battleResult{}, fmt.Errorf("write game %d: %w", task.gameIndex, err)
		}
	}

	return battleResult{gameIndex: task.gameIndex, seat: seat, result: result}, nil
}

func main() {
	outputDir := flag.String("output", "output", "output directory")
	outputPrefix := flag.String("output-prefix", "", "prefix of result file names")
	noOutput := flag.Bool("no-output", false, "do not write result files")
	games := flag.Int("games", 1, "number of games to play")
	numWorkers := flag.Int("workers", runtime.NumCPU(), "number of concurrent games")
	p0 := flag.String("p0", factory.Minimax, "first agent: minimax, random or neural")
	p1 := flag.String("p1", factory.Random, "second agent: minimax, random or neural")
	depth := flag.Int("depth", 2, "search depth of minimax and neural agents")
	weights := flag.String("weights", "", "network config JSON for neural agents")
	seed := flag.Int64("seed", 0, "seed for random agents (0 = nondeterministic)")
	maxTurns := flag.Int("max-turns", game.DefaultMaxTurns, "moves before a game is declared a draw")
	swap := flag.Bool("swap", true, "swap seats every other game")
	chart := flag.String("chart", "", "write a win-rate chart (HTML) to this file")
	printBoard := flag.Bool("print", false, "print the final board of each game")
	verbose := flag.Bool("verbose", false, "debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if !*noOutput && *outputPrefix == "" {
		fmt.Fprintln(os.Stderr, "error: --output-prefix is required")
		flag.Usage()
		os.Exit(1)
	}
	if *numWorkers < 1 {
		*numWorkers = 1
	}

	var network *neural.NetworkConfig
	if *weights != "" {
		nc, err := neural.LoadConfig(*weights)
		if err != nil {
			log.Fatal().Err(err).Msg("load-weights")
		}
		network = &nc
	}
	cfg := battleConfig{
		agents: [2]factory.Spec{
			{Kind: *p0, Depth: *depth, Network: network, Seed: *seed},
			{Kind: *p1, Depth: *depth, Network: network, Seed: *seed * 31},
		},
		maxTurns:   *maxTurns,
		outputDir:  *outputDir,
		prefix:     *outputPrefix,
		noOutput:   *noOutput,
		swapSeats:  *swap,
		printBoard: *printBoard,
	}
	// fail fast on bad agent flags
	for _, spec := range cfg.agents {
		if _, err := factory.New(spec); err != nil {
			log.Fatal().Err(err).Msg("agent")
		}
	}

	if !*noOutput {
		if err := os.MkdirAll(*outputDir, 0o755); err != nil {
			log.Fatal().Err(err).Str("dir", *outputDir).Msg("create-output-dir")
		}
	}

	startSeq, err := nextSequence(*outputDir, *outputPrefix)
	if err != nil {
		log.Warn().Err(err).Msg("scan-existing-results")
		startSeq = 1
	}

	log.Info().
		Int("games", *games).
		Int("workers", *numWorkers).
		Str("p0", *p0).
		Str("p1", *p1).
		Int("depth", *depth).
		Int("first_seq", startSeq).
		Msg("battle-start")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tasks := queueTasks(*games, startSeq)
	results := make(chan battleResult, *games)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < *numWorkers; w++ {
		w := w
		g.Go(func() error {
			for task := range tasks {
				if err := gctx.Err(); err != nil {
					return err
				}
				res, err := runBattle(gctx, cfg, task)
				if err != nil {
					return err
				}
				results <- res
				log.Debug().Int("game", task.gameIndex).Int("worker", w).Int("winner", res.result.Winner).Msg("game-done")
			}
			return nil
		})
	}
	if err := g.Wait(); errors.Is(err, context.Canceled) {
		log.Warn().Msg("battle-interrupted")
	} else if err != nil {
		log.Error().Err(err).Msg("battle")
	}
	close(results)

	collected := make([]battleResult, 0, *games)
	for res := range results {
		collected = append(collected, res)
	}
	tally := summarize(collected)

	log.Info().
		Int("played", len(collected)).
		Int("p0_wins", tally.wins[0]).
		Int("p1_wins", tally.wins[1]).
		Int("draws", tally.draws).
		Int("forfeits", tally.forfeits).
		Msg("battle-done")

	if *chart != "" {
		if err := writeChart(*chart, [2]string{*p0, *p1}, tally); err != nil {
			log.Fatal().Err(err).Msg("chart")
		}
		log.Info().Str("path", *chart).Msg("chart-written")
	}
}
