package main

import (
	"sync"
)

// searchSerial visits the sizes in increasing order and every assignment
// within a size exactly once, in odometer order.
func searchSerial(p searchParams) *resultTable {
	table := newResultTable()
	for size := 1; size <= p.maxSize; size++ {
		space := newExprSpace(size)
		searchSpace(p, size, space, space.opSlots, func(v int, render func() string) {
			table.add(v, size, render)
		})
	}
	return table
}

// searchChannel partitions each size on the value of its last operation
// slot, one goroutine per operation, each filling its own table. The
// tables are merged in operation order, so the result is identical to the
// serial search.
func searchChannel(p searchParams) *resultTable {
	table := newResultTable()
	for size := 1; size <= p.maxSize; size++ {
		if size == 1 {
			// No operation slot to partition on.
			space := newExprSpace(size)
			searchSpace(p, size, space, space.opSlots, func(v int, render func() string) {
				table.add(v, size, render)
			})
			continue
		}
		type workerResult struct {
			worker int
			table  *resultTable
		}
		results := make(chan workerResult, p.set.len())
		for w := 0; w < p.set.len(); w++ {
			w := w
			go func() {
				part := newResultTable()
				space := newExprSpace(size)
				last := len(space.opSlots) - 1
				space.opSlots[last] = p.set.at(w)
				searchSpace(p, size, space, space.opSlots[:last], func(v int, render func() string) {
					part.add(v, size, render)
				})
				results <- workerResult{worker: w, table: part}
			}()
		}
		parts := make([]*resultTable, p.set.len())
		for i := 0; i < p.set.len(); i++ {
			r := <-results
			parts[r.worker] = r.table
		}
		for _, part := range parts {
			table.merge(part)
		}
	}
	return table
}

// searchMutex runs one goroutine per size against a shared table guarded by
// a mutex. The table keeps the smaller size on a collision, which makes the
// final table independent of how the sizes interleave.
func searchMutex(p searchParams) *resultTable {
	table := newResultTable()
	var mutex sync.Mutex
	var wg sync.WaitGroup
	for size := 1; size <= p.maxSize; size++ {
		size := size
		wg.Add(1)
		go func() {
			defer wg.Done()
			space := newExprSpace(size)
			searchSpace(p, size, space, space.opSlots, func(v int, render func() string) {
				mutex.Lock()
				table.add(v, size, render)
				mutex.Unlock()
			})
		}()
	}
	wg.Wait()
	return table
}

// searchSpace drives the operation and operand odometers over the space,
// evaluating every shape for every assignment. free is the prefix of the
// operation slots the odometer may step; slots beyond it stay pinned.
// Every defined result is handed to add together with a deferred renderer.
func searchSpace(p searchParams, size int, space *exprSpace, free []operation, add func(v int, render func() string)) {
	ops := opOdometer{slots: free, set: p.set}
	ops.reset()
	operands := odometer{digits: space.operands, lo: 1, hi: p.maxNumber}
	total := pow64(int64(p.maxNumber), size) * pow64(int64(p.set.len()), len(free)) * numShapes(size)
	pr := newProgress(size, total, p.emit)
	for {
		operands.reset()
		for {
			for _, root := range space.shapes {
				if v, ok := space.eval(root); ok {
					add(v, func() string { return space.render(root) })
				}
				pr.tick()
			}
			if !operands.next() {
				break
			}
		}
		if !ops.next() {
			break
		}
	}
}
