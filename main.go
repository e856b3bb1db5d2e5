package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"gonum.org/v1/gonum/stat"
)

func main() {
	var (
		mode       = flag.String("profile", "", "enable profiling mode, one of [cpu, mem, mutex, block, trace]")
		strategy   = flag.String("search", "serial", "search strategy, one of [serial, channel, mutex]")
		maxNumber  = flag.Int("max-number", 9, "largest operand value, operands range over 1..max-number")
		maxSize    = flag.Int("max-size", 3, "largest expression size (operand count) to search")
		operations = flag.String("operations", "+,-,*,/", "comma separated list of operations, from [+,-,*,/]")
		emit       = flag.Int("emit", 0, "progress emit cadence (0 for no progress output)")
		iter       = flag.Int("iter", 1, "number of search iterations (for performance evaluation)")
	)
	flag.Parse()

	const profilePath = "."
	switch *mode {
	case "cpu":
		defer profile.Start(profile.ProfilePath(profilePath), profile.CPUProfile).Stop()
	case "mem":
		defer profile.Start(profile.ProfilePath(profilePath), profile.MemProfile).Stop()
	case "mutex":
		defer profile.Start(profile.ProfilePath(profilePath), profile.MutexProfile).Stop()
	case "block":
		defer profile.Start(profile.ProfilePath(profilePath), profile.BlockProfile).Stop()
	case "trace":
		defer profile.Start(profile.ProfilePath(profilePath), profile.TraceProfile).Stop()
	default:
		// don't profile
	}

	if err := validateConfig(*maxNumber, *maxSize); err != nil {
		log.Fatal(err)
	}
	set, err := parseOperations(*operations)
	if err != nil {
		log.Fatal(err)
	}
	params := searchParams{maxNumber: *maxNumber, maxSize: *maxSize, set: set, emit: *emit}

	var run func(searchParams) *resultTable
	switch *strategy {
	case "serial":
		run = searchSerial
	case "channel":
		run = searchChannel
	case "mutex":
		run = searchMutex
	default:
		log.Fatalf("invalid search strategy: %s", *strategy)
	}

	fmt.Printf("Number of CPUs: %d\n", runtime.NumCPU())
	fmt.Printf("Number of expressions to evaluate: %d\n", params.totalEvaluations())
	for size := 1; size <= params.maxSize; size++ {
		fmt.Printf("size %d: %d shapes, %d assignments\n", size, numShapes(size), params.numAssignments(size))
	}

	if *iter > 1 {
		fmt.Printf("Running %d search iterations\n", *iter)
		durations := make([]float64, *iter)
		for i := 0; i < *iter; i++ {
			now := time.Now()
			run(params)
			durations[i] = time.Since(now).Seconds()
		}
		mean, stdDev := stat.MeanStdDev(durations, nil)
		fmt.Printf("\nSearch performance: mean: %fs, std dev: %fs\n", mean, stdDev)
		return
	}

	now := time.Now()
	table := run(params)
	fmt.Printf("Search finished after: %v\n\n", time.Since(now))
	table.report(os.Stdout)
}
