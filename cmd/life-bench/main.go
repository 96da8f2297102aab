package main

import (
	"flag"
	"fmt"
	"runtime"
	"slices"
	"sort"
	"sync"
	"time"

	"mad-life/pkg/core"
	"mad-life/pkg/sims/life"
)

type scenario struct {
	seed    int64
	n       int
	density float64
	steps   int
}

type scenarioResult struct {
	scenario
	dense       time.Duration
	serial      time.Duration
	sparse      time.Duration
	population  int
	divergedAt  int
	divergedIn  string
	initialLive int
}

func (r scenarioResult) ok() bool { return r.divergedAt < 0 }

func main() {
	steps := flag.Int("steps", 200, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of scenario worker goroutines")
	n := flag.Int("n", 256, "interior edge length")
	density := flag.Float64("density", 0.3, "initial live cell probability")
	seeds := flag.Int("seeds", 8, "number of random soups to compare")
	flag.Parse()

	var scenarios []scenario
	for i := 0; i < *seeds; i++ {
		scenarios = append(scenarios, scenario{seed: int64(i + 1), n: *n, density: *density, steps: *steps})
	}

	fmt.Printf("Comparing %d soups of %d×%d (%d workers, %d steps)\n", len(scenarios), *n, *n, *workers, *steps)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < max(*workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(sc)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range scenarios {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
		if !res.ok() {
			fmt.Printf("seed %d: %s board diverged at generation %d\n", res.seed, res.divergedIn, res.divergedAt)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })
	elapsed := time.Since(start)

	fmt.Printf("\n%6s %8s %8s %12s %12s %12s %s\n", "seed", "start", "end", "dense", "serial", "sparse", "match")
	failed := 0
	for _, res := range all {
		match := "yes"
		if !res.ok() {
			match = "NO"
			failed++
		}
		fmt.Printf("%6d %8d %8d %12s %12s %12s %s\n", res.seed, res.initialLive, res.population,
			res.dense.Round(time.Microsecond), res.serial.Round(time.Microsecond), res.sparse.Round(time.Microsecond), match)
	}
	fmt.Printf("\n%d/%d soups matched (elapsed %s)\n", len(all)-failed, len(all), elapsed.Round(time.Millisecond))
}

// runScenario steps a parallel dense board, a serial dense board and a
// sparse board in lockstep and records the first generation they disagree.
func runScenario(sc scenario) scenarioResult {
	cells := life.Random(sc.n, sc.seed, sc.density)
	dense := life.NewDenseWithConfig(life.Config{Size: sc.n, Workers: runtime.NumCPU()})
	serial := life.NewDenseWithConfig(life.Config{Size: sc.n, Workers: 1})
	sparse := life.NewSparse(sc.n)
	for _, b := range []core.Board{dense, serial, sparse} {
		b.Reset(cells)
	}

	res := scenarioResult{scenario: sc, divergedAt: -1, initialLive: len(cells)}
	for gen := 1; gen <= sc.steps; gen++ {
		res.dense += timed(dense.Step)
		res.serial += timed(serial.Step)
		res.sparse += timed(sparse.Step)

		want := serial.Cells()
		if !slices.Equal(dense.Cells(), want) {
			res.divergedAt, res.divergedIn = gen, dense.Name()
			break
		}
		if !slices.Equal(sparse.Cells(), want) {
			res.divergedAt, res.divergedIn = gen, sparse.Name()
			break
		}
	}
	res.population = serial.Population()
	return res
}

func timed(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}
