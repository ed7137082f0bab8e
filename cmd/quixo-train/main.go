package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/montplusa/quixo-battle-game/pkg/ai/factory"
	"github.com/montplusa/quixo-battle-game/pkg/ai/neural"
)

func parseLayers(s string) ([]int, error) {
	var layers []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		layers = append(layers, n)
	}
	return layers, nil
}

func main() {
	episodes := flag.Int("episodes", 1000, "number of self-play games")
	batchSize := flag.Int("batch", 256, "positions per training update")
	saveInterval := flag.Int("save", 50, "checkpoint every N episodes")
	reportInterval := flag.Int("report", 10, "report progress every N episodes")
	name := flag.String("name", "sample", "network name")
	output := flag.String("output", "", "checkpoint path (default <name>.json)")
	initPath := flag.String("init", "", "start from this network config instead of random weights")
	hidden := flag.String("hidden", "64,32", "hidden layer sizes")
	learningRate := flag.Float64("lr", 0.01, "SGD learning rate")
	depth := flag.Int("depth", 1, "search depth of the learning agent")
	opening := flag.Int("opening", 2, "random plies at the start of each game")
	maxTurns := flag.Int("max-turns", 200, "moves before a game is declared a draw")
	opponent := flag.String("opponent", factory.Random, "sparring agent: random or minimax")
	opponentDepth := flag.Int("opponent-depth", 1, "search depth of a minimax opponent")
	verbose := flag.Bool("verbose", false, "debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	network := neural.DefaultNetworkConfig()
	if *initPath != "" {
		nc, err := neural.LoadConfig(*initPath)
		if err != nil {
			log.Fatal().Err(err).Msg("load-init")
		}
		network = nc
	} else {
		layers, err := parseLayers(*hidden)
		if err != nil {
			log.Fatal().Err(err).Str("hidden", *hidden).Msg("parse-hidden")
		}
		network.HiddenLayers = layers
	}
	network.Name = *name
	network.LearningRate = *learningRate

	opp, err := factory.New(factory.Spec{Kind: *opponent, Depth: *opponentDepth})
	if err != nil {
		log.Fatal().Err(err).Msg("opponent")
	}

	path := *output
	if path == "" {
		path = *name + ".json"
	}
	config := neural.TrainingConfig{
		Episodes:       *episodes,
		BatchSize:      *batchSize,
		ReportInterval: *reportInterval,
		SaveInterval:   *saveInterval,
		Output:         path,
		Depth:          *depth,
		RandomOpening:  *opening,
		MaxTurns:       *maxTurns,
		Network:        network,
		Opponent:       opp,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, stats, err := neural.Train(ctx, config)
	if errors.Is(err, context.Canceled) {
		log.Warn().Int("games", stats.Wins+stats.Losses+stats.Draws).Msg("training-interrupted")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("training")
	}
	log.Info().
		Float64("win_rate", stats.WinRate()).
		Int("updates", stats.Updates).
		Dur("elapsed", time.Since(stats.StartTime).Round(time.Second)).
		Str("path", path).
		Msg("training-complete")
}
