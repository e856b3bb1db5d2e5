package main

import (
	"fmt"
	"strings"
)

// operation is one of the binary operations an expression may combine
// operands with.
type operation int8

const (
	opAdd operation = iota
	opSub
	opMul
	opDiv
)

func (o operation) String() string {
	switch o {
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "*"
	case opDiv:
		return "/"
	}
	return "?"
}

// opSet is an ordered set of operations. The order drives the enumeration:
// the first operation is the odometer reset value and the last one triggers
// the carry.
type opSet struct {
	ops     []operation
	indexes map[operation]int
}

// parseOperations builds an opSet from a comma separated list of operation
// symbols, e.g. "+,*". An unknown symbol is a configuration error.
func parseOperations(s string) (opSet, error) {
	tokens := strings.Split(s, ",")
	set := opSet{indexes: make(map[operation]int, len(tokens))}
	for _, token := range tokens {
		var op operation
		switch token {
		case "+":
			op = opAdd
		case "-":
			op = opSub
		case "*":
			op = opMul
		case "/":
			op = opDiv
		default:
			return opSet{}, fmt.Errorf("unrecognised operations found, allowed=[+,-,*,/], provided=%q", tokens)
		}
		set.ops = append(set.ops, op)
		set.indexes[op] = len(set.ops) - 1
	}
	return set, nil
}

func (s opSet) len() int {
	return len(s.ops)
}

func (s opSet) at(i int) operation {
	return s.ops[i]
}

func (s opSet) indexOf(op operation) int {
	return s.indexes[op]
}

// last returns the operation that triggers an odometer carry.
func (s opSet) last() operation {
	return s.ops[len(s.ops)-1]
}
