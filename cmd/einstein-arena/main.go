// Command einstein-arena drives the battle harness: a single game, a
// parallel batch, or a round-robin tournament, reporting to the console
// as it goes (spec §4.5). Training-sample extraction is available via
// -samples.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/leo-luoson/einstein-pmcts/board"
	"github.com/leo-luoson/einstein-pmcts/pkg/harness"
	"github.com/leo-luoson/einstein-pmcts/pkg/training"
)

func main() {
	mode := flag.String("mode", "batch", "single | batch | tournament")
	games := flag.Int("games", 20, "games to play (batch: total; tournament: games per match)")
	workers := flag.Int("workers", 4, "worker pool size for parallel batches")
	parallel := flag.Bool("parallel", true, "run batch games across a worker pool")
	redSims := flag.Int("red-sims", 1000, "Red's simulation budget")
	blueSims := flag.Int("blue-sims", 1000, "Blue's simulation budget")
	seed := flag.Int64("seed", 1, "base RNG seed")
	samplesPath := flag.String("samples", "", "if set, write extracted training samples to this path")
	flag.Parse()

	reporter := harness.NewConsoleReporter(os.Stdout)

	red := harness.NewSearcherConfig("Red", board.Red, *redSims)
	blue := harness.NewSearcherConfig("Blue", board.Blue, *blueSims)

	switch *mode {
	case "single":
		result := harness.SingleBattle(red, blue, nil, harness.DefaultPlyCap, *seed)
		reporter.OnBatchSummary([]harness.GameResult{result})
		maybeWriteSamples(*samplesPath, []harness.GameResult{result})

	case "batch":
		results := harness.BatchBattle(red, blue, *games, *parallel, *workers, reporter.OnProgress, reporter.OnFailure, *seed)
		reporter.OnBatchSummary(results)
		maybeWriteSamples(*samplesPath, results)

	case "tournament":
		configs := []harness.SearcherConfig{red, blue}
		result := harness.Tournament(configs, *games, *seed)
		for _, m := range result.Matches {
			reporter.OnMatch(m)
		}
		reporter.OnTournament(result)

	default:
		fmt.Fprintf(os.Stderr, "unknown -mode %q (want single, batch, or tournament)\n", *mode)
		os.Exit(2)
	}
}

func maybeWriteSamples(path string, results []harness.GameResult) {
	if path == "" {
		return
	}
	samples := training.ExtractBatch(results)
	if err := training.WriteFile(path, samples); err != nil {
		fmt.Fprintf(os.Stderr, "einstein-arena: failed writing training samples: %v\n", err)
	}
}
