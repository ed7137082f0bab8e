package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/montplusa/quixo-battle-game/pkg/game"
)

// tally aggregates results per flag agent (-p0 / -p1), independent of the
// seat each one had in a given game.
type tally struct {
	wins     [2]int
	draws    int
	forfeits int
	// cumulative win rate of each flag agent after every game, in game order
	rates [2][]float64
}

func summarize(results []battleResult) tally {
	sort.Slice(results, func(i, j int) bool { return results[i].gameIndex < results[j].gameIndex })

	var t tally
	for i, r := range results {
		if r.result.Reason == game.ReasonForfeit {
			t.forfeits++
		}
		switch w := r.result.Winner; {
		case w < 0:
			t.draws++
		case w == r.seat:
			t.wins[0]++
		default:
			t.wins[1]++
		}
		played := float64(i + 1)
		t.rates[0] = append(t.rates[0], float64(t.wins[0])/played)
		t.rates[1] = append(t.rates[1], float64(t.wins[1])/played)
	}
	return t
}

func writeChart(path string, names [2]string, t tally) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "cumulative win rate",
			Subtitle: fmt.Sprintf("%s vs %s", names[0], names[1]),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	games := make([]string, len(t.rates[0]))
	for i := range games {
		games[i] = fmt.Sprintf("%d", i+1)
	}
	line = line.SetXAxis(games)
	for i, name := range names {
		items := make([]opts.LineData, 0, len(t.rates[i]))
		for _, r := range t.rates[i] {
			items = append(items, opts.LineData{Value: r})
		}
		line.AddSeries(fmt.Sprintf("p%d %s", i, name), items)
	}

	page := components.NewPage()
	page.AddCharts(line)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
