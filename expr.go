package main

import (
	"strconv"
	"strings"
)

// exprSpace holds every parenthesisation shape for one expression size
// together with the operand and operation slots the shapes read from.
// Shapes share subtree nodes, and mutating a slot is visible to every
// shape referencing it, so the odometers can step the slots in place
// without rebuilding any tree.
type exprSpace struct {
	operands []int       // one slot per leaf, stepped by the operand odometer
	opSlots  []operation // one slot per operation position, stepped by the operation odometer
	nodes    []exprNode
	shapes   []int // arena ids of the shape roots
}

// exprNode is one node in the shared arena. A leaf has left < 0 and slot
// indexing into operands; a binary node has slot indexing into opSlots.
type exprNode struct {
	left  int
	right int
	slot  int
}

// newExprSpace builds the slots and all catalan(size-1) shapes for the
// given size. size must be at least 1. The first size arena entries are
// the leaves, in leaf order.
func newExprSpace(size int) *exprSpace {
	s := &exprSpace{
		operands: make([]int, size),
		opSlots:  make([]operation, size-1),
		nodes:    make([]exprNode, 0, 2*size),
	}
	for i := 0; i < size; i++ {
		s.addNode(exprNode{left: -1, right: -1, slot: i})
	}
	s.shapes = s.parenthesisations(0, size)
	return s
}

func (s *exprSpace) addNode(n exprNode) int {
	s.nodes = append(s.nodes, n)
	return len(s.nodes) - 1
}

// parenthesisations returns the roots of every full parenthesisation over
// the half-open leaf range [left, right). A split at point i pairs every
// left shape over [left, i) with every right shape over [i, right) under
// the operation slot immediately preceding the split, so each of the
// size-1 slots is bound exactly once per full shape.
func (s *exprSpace) parenthesisations(left, right int) []int {
	if left+1 == right {
		return []int{left}
	}
	if left+2 == right {
		return []int{s.addNode(exprNode{left: left, right: left + 1, slot: left})}
	}
	var roots []int
	for i := left + 1; i < right; i++ {
		lefts := s.parenthesisations(left, i)
		rights := s.parenthesisations(i, right)
		for _, l := range lefts {
			for _, r := range rights {
				roots = append(roots, s.addNode(exprNode{left: l, right: r, slot: i - 1}))
			}
		}
	}
	return roots
}

// eval evaluates the node against the current slot values. ok is false when
// the node is undefined, that is when any subexpression divides by zero.
// Arithmetic is native int with wraparound on overflow; division truncates
// toward zero.
func (s *exprSpace) eval(id int) (value int, ok bool) {
	n := s.nodes[id]
	if n.left < 0 {
		return s.operands[n.slot], true
	}
	l, ok := s.eval(n.left)
	if !ok {
		return 0, false
	}
	r, ok := s.eval(n.right)
	if !ok {
		return 0, false
	}
	switch s.opSlots[n.slot] {
	case opAdd:
		return l + r, true
	case opSub:
		return l - r, true
	case opMul:
		return l * r, true
	default: // opDiv
		if r == 0 {
			return 0, false
		}
		return l / r, true
	}
}

// render returns the fully parenthesised infix form of the node, e.g.
// ((1+2)*3).
func (s *exprSpace) render(id int) string {
	var b strings.Builder
	s.renderNode(&b, id)
	return b.String()
}

func (s *exprSpace) renderNode(b *strings.Builder, id int) {
	n := s.nodes[id]
	if n.left < 0 {
		b.WriteString(strconv.Itoa(s.operands[n.slot]))
		return
	}
	b.WriteByte('(')
	s.renderNode(b, n.left)
	b.WriteString(s.opSlots[n.slot].String())
	s.renderNode(b, n.right)
	b.WriteByte(')')
}
