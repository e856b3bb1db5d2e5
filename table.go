package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// resultTable maps every achieved value to the minimal expression size that
// produced it and the distinct expressions of that size, in discovery
// order. It also tracks the largest value seen so the report knows its
// range.
type resultTable struct {
	entries  map[int]*tableEntry
	maxValue int
}

type tableEntry struct {
	size  int
	exprs []string
	seen  map[string]struct{}
}

func newResultTable() *resultTable {
	return &resultTable{entries: make(map[int]*tableEntry), maxValue: 1}
}

// add records that an expression of the given size produced v. render is
// only invoked when the expression is at the minimal size for v, so callers
// can defer the string building.
func (t *resultTable) add(v, size int, render func() string) {
	if v > t.maxValue {
		t.maxValue = v
	}
	e := t.entries[v]
	switch {
	case e == nil:
		e = &tableEntry{size: size, seen: make(map[string]struct{})}
		t.entries[v] = e
	case size > e.size:
		return
	case size < e.size:
		// Sizes are searched in increasing order, so this only happens when
		// sizes run concurrently; the smaller size wins either way.
		e.size = size
		e.exprs = e.exprs[:0]
		clear(e.seen)
	}
	expr := render()
	if _, dup := e.seen[expr]; dup {
		return
	}
	e.seen[expr] = struct{}{}
	e.exprs = append(e.exprs, expr)
}

// merge folds other into t under the same minimal-size-wins rule as add.
// Merging worker tables in enumeration order keeps the expression lists
// identical to a serial search. t takes ownership of other's entries.
func (t *resultTable) merge(other *resultTable) {
	if other.maxValue > t.maxValue {
		t.maxValue = other.maxValue
	}
	for v, oe := range other.entries {
		e := t.entries[v]
		switch {
		case e == nil || oe.size < e.size:
			t.entries[v] = oe
		case oe.size == e.size:
			for _, expr := range oe.exprs {
				if _, dup := e.seen[expr]; dup {
					continue
				}
				e.seen[expr] = struct{}{}
				e.exprs = append(e.exprs, expr)
			}
		}
	}
}

// report writes one line per value from 1 to the largest value seen, either
// the minimal size with its expressions or None when the value was never
// produced.
func (t *resultTable) report(w io.Writer) {
	for v := 1; v <= t.maxValue; v++ {
		e := t.entries[v]
		if e == nil {
			fmt.Fprintf(w, "%d -> None\n", v)
			continue
		}
		fmt.Fprintf(w, "%d -> (%d) %s\n", v, e.size, quoted(e.exprs))
	}
}

func quoted(exprs []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, expr := range exprs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(expr))
	}
	b.WriteByte(']')
	return b.String()
}
