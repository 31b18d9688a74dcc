package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"
)

func main() {
	steps := flag.Int("steps", 600, "ticks to simulate per scenario")
	pour := flag.Int("pour", 120, "ticks the brush pours material")
	size := flag.Int("size", 128, "world size in cells")
	seeds := flag.Int("seeds", 4, "seeds per material")
	materials := flag.String("materials", "qwertyu", "material keys to sweep")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	var sets []scenario
	for _, m := range *materials {
		for s := 1; s <= *seeds; s++ {
			sets = append(sets, scenario{seed: int64(s), material: m, size: *size, steps: *steps, pour: *pour})
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps)\n", len(sets), *workers, *steps)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
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
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].activeRatio() > all[j].activeRatio() })
	elapsed := time.Since(start)

	fmt.Printf("\nBusiest scenarios first (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i, res := range all {
		fmt.Printf("%2d) %s\n", i+1, res.summary())
	}
}
