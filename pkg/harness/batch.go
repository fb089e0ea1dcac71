package harness

import (
	"sync"
	"sync/atomic"

	"github.com/leo-luoson/einstein-pmcts/rules"
)

// ProgressFunc is called once per completed game with the running count of
// games finished so far and the batch total (spec §4.5 "Progress callbacks
// fire on every completed game").
type ProgressFunc func(completed, total int)

// BatchBattle implements spec §4.5 batch_battle: runs numGames independent
// games between configRed and configBlue. When parallel is true, games are
// distributed across a worker pool of maxWorkers fixed size; each worker
// owns its own PMCTS instance, game engine, and RNG (a distinct seed
// derived from baseSeed, the game index and the id of the worker that
// runs the game), matching the "no locks on any
// hot path" constraint (spec §5). A worker panic is recovered, logged via
// onFailure, and the game is omitted from the returned slice — the batch
// continues (spec §7 WorkerFailure).
func BatchBattle(
	configRed, configBlue SearcherConfig,
	numGames int,
	parallel bool,
	maxWorkers int,
	onProgress ProgressFunc,
	onFailure func(gameIdx int, reason any),
	baseSeed int64,
) []GameResult {
	if numGames <= 0 {
		return nil
	}
	if !parallel {
		maxWorkers = 1
	}
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	results := make([]*GameResult, numGames)
	var completed int32
	var mu sync.Mutex // guards onProgress/onFailure call ordering only

	jobs := make(chan int, numGames)
	for i := 0; i < numGames; i++ {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(maxWorkers)
	for w := 0; w < maxWorkers; w++ {
		go func(workerID int) {
			defer wg.Done()
			for idx := range jobs {
				runGameSafely(results, idx, configRed, configBlue, baseSeed, workerID, onFailure, &mu)
				n := atomic.AddInt32(&completed, 1)
				if onProgress != nil {
					mu.Lock()
					onProgress(int(n), numGames)
					mu.Unlock()
				}
			}
		}(w)
	}
	wg.Wait()

	out := make([]GameResult, 0, numGames)
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

func runGameSafely(
	results []*GameResult,
	idx int,
	configRed, configBlue SearcherConfig,
	baseSeed int64,
	workerID int,
	onFailure func(gameIdx int, reason any),
	mu *sync.Mutex,
) {
	defer func() {
		if r := recover(); r != nil {
			if onFailure != nil {
				mu.Lock()
				onFailure(idx, r)
				mu.Unlock()
			}
		}
	}()

	seed := baseSeed ^ (int64(idx) << 20) ^ (int64(workerID) << 40)
	result := SingleBattle(configRed, configBlue, nil, DefaultPlyCap, seed)
	results[idx] = &result
}

// WinRateImbalance reports |blueWins-redWins| / total across results — the
// sanity statistic spec §8 scenario 5 checks against a tolerance.
func WinRateImbalance(results []GameResult) float64 {
	var redWins, blueWins, total int
	for _, r := range results {
		total++
		switch r.Winner {
		case rules.RedWins:
			redWins++
		case rules.BlueWins:
			blueWins++
		}
	}
	if total == 0 {
		return 0
	}
	diff := redWins - blueWins
	if diff < 0 {
		diff = -diff
	}
	return float64(diff) / float64(total)
}

// CountOutcomes tallies how many games in results Red won, Blue won, and
// ended in any other outcome (counted as draws).
func CountOutcomes(results []GameResult) (redWins, blueWins, draws int) {
	for _, r := range results {
		switch r.Winner {
		case rules.RedWins:
			redWins++
		case rules.BlueWins:
			blueWins++
		default:
			draws++
		}
	}
	return
}
