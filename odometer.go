package main

// odometer is a mixed-radix counter over a digit slice, each digit ranging
// over [lo, hi]. The slice is aliased with the operand slots of an
// exprSpace, so stepping the counter is visible to every shape.
type odometer struct {
	digits []int
	lo, hi int
}

func (o odometer) reset() {
	for i := range o.digits {
		o.digits[i] = o.lo
	}
}

// next advances the digits to the next combination, carrying left to right.
// It returns false once every combination has been visited.
func (o odometer) next() bool {
	i := 0
	for i < len(o.digits) && o.digits[i] == o.hi {
		o.digits[i] = o.lo
		i++
	}
	if i == len(o.digits) {
		return false
	}
	o.digits[i]++
	return true
}

// opOdometer steps operation slots through every assignment from an ordered
// operation set, using the same carry scheme as odometer with the set's
// last operation as the carry sentinel.
type opOdometer struct {
	slots []operation
	set   opSet
}

func (o opOdometer) reset() {
	for i := range o.slots {
		o.slots[i] = o.set.at(0)
	}
}

func (o opOdometer) next() bool {
	i := 0
	for i < len(o.slots) && o.slots[i] == o.set.last() {
		o.slots[i] = o.set.at(0)
		i++
	}
	if i == len(o.slots) {
		return false
	}
	o.slots[i] = o.set.at(o.set.indexOf(o.slots[i]) + 1)
	return true
}
