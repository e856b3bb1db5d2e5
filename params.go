package main

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat/combin"
)

// searchParams bundles the configuration of one exhaustive search.
type searchParams struct {
	maxNumber int
	maxSize   int
	set       opSet
	emit      int
}

func validateConfig(maxNumber, maxSize int) error {
	if maxNumber <= 0 {
		return fmt.Errorf("max-number must be > 0, was %d", maxNumber)
	}
	if maxSize < 0 {
		return fmt.Errorf("max-size must be >= 0, was %d", maxSize)
	}
	return nil
}

// catalan returns the n-th Catalan number, the count of full binary tree
// shapes over n+1 ordered leaves.
func catalan(n int) int64 {
	if n <= 0 {
		return 1
	}
	return int64(combin.Binomial(2*n, n) / (n + 1))
}

// numShapes returns the number of parenthesisations over size operands.
func numShapes(size int) int64 {
	return catalan(size - 1)
}

// numAssignments returns how many operand and operation assignments the
// odometers visit at the given size.
func (p searchParams) numAssignments(size int) int64 {
	return pow64(int64(p.maxNumber), size) * pow64(int64(p.set.len()), size-1)
}

// numEvaluations returns how many expression evaluations the given size
// costs: every shape is evaluated once per assignment.
func (p searchParams) numEvaluations(size int) int64 {
	return p.numAssignments(size) * numShapes(size)
}

func (p searchParams) totalEvaluations() int64 {
	var total int64
	for size := 1; size <= p.maxSize; size++ {
		total += p.numEvaluations(size)
	}
	return total
}

func pow64(base int64, exp int) int64 {
	result := int64(1)
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

// emitCadence returns the number of evaluations between progress lines.
// If emit is 0, progress output is disabled.
func emitCadence(emit int, total int64) int64 {
	if emit == 0 {
		return 0
	}
	if c := total / int64(emit); c > 0 {
		return c
	}
	return 1
}

// progress tracks evaluations against the expected total for one size.
type progress struct {
	size    int
	total   int64
	done    int64
	cadence int64
	mark    time.Time
}

func newProgress(size int, total int64, emit int) *progress {
	return &progress{
		size:    size,
		total:   total,
		cadence: emitCadence(emit, total),
		mark:    time.Now(),
	}
}

// tick counts one evaluation and logs the rate and the estimated time to
// finish every cadence evaluations.
func (pr *progress) tick() {
	pr.done++
	if pr.cadence == 0 || pr.done%pr.cadence != 0 {
		return
	}
	rate := float64(pr.cadence) / time.Since(pr.mark).Seconds()
	remaining := pr.total - pr.done
	eta := time.Duration(float64(remaining)/rate) * time.Second
	printf("size %d: evaluated %d expressions, %d remain, %.0f exprs/sec, estimated time to finish %v\n",
		pr.size, pr.done, remaining, rate, eta)
	pr.mark = time.Now()
}

var benchmarking bool

func printf(format string, args ...interface{}) {
	if benchmarking {
		return
	}
	fmt.Printf(format, args...)
}
