package main

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func collectDigits(o odometer) [][]int {
	o.reset()
	var out [][]int
	for {
		out = append(out, slices.Clone(o.digits))
		if !o.next() {
			break
		}
	}
	return out
}

func TestOdometerSequence(t *testing.T) {
	o := odometer{digits: make([]int, 2), lo: 1, hi: 2}
	want := [][]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}}
	if diff := cmp.Diff(want, collectDigits(o)); diff != "" {
		t.Errorf("odometer sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestOdometerCounts(t *testing.T) {
	tests := []struct {
		name   string
		digits int
		lo, hi int
		want   int
	}{
		{name: "one digit", digits: 1, lo: 1, hi: 5, want: 5},
		{name: "three digits", digits: 3, lo: 1, hi: 2, want: 8},
		{name: "single value", digits: 2, lo: 1, hi: 1, want: 1},
		{name: "no digits", digits: 0, lo: 1, hi: 9, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := odometer{digits: make([]int, tt.digits), lo: tt.lo, hi: tt.hi}
			combinations := collectDigits(o)
			if len(combinations) != tt.want {
				t.Errorf("visited %d combinations; want %d", len(combinations), tt.want)
			}
			seen := make(map[string]struct{}, len(combinations))
			for _, c := range combinations {
				key := ""
				for _, d := range c {
					key += string(rune('0'+d)) + ","
				}
				if _, dup := seen[key]; dup {
					t.Errorf("combination %v visited twice", c)
				}
				seen[key] = struct{}{}
			}
		})
	}
}

func TestOpOdometerSequence(t *testing.T) {
	set, err := parseOperations("+,*")
	if err != nil {
		t.Fatal(err)
	}
	o := opOdometer{slots: make([]operation, 2), set: set}
	o.reset()
	var got [][]operation
	for {
		got = append(got, slices.Clone(o.slots))
		if !o.next() {
			break
		}
	}
	want := [][]operation{
		{opAdd, opAdd},
		{opMul, opAdd},
		{opAdd, opMul},
		{opMul, opMul},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("operation odometer sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestOpOdometerSingleOperation(t *testing.T) {
	set, err := parseOperations("/")
	if err != nil {
		t.Fatal(err)
	}
	o := opOdometer{slots: make([]operation, 3), set: set}
	o.reset()
	count := 0
	for {
		count++
		if !o.next() {
			break
		}
	}
	if count != 1 {
		t.Errorf("visited %d assignments; want 1", count)
	}
	if !slices.Equal(o.slots, []operation{opDiv, opDiv, opDiv}) {
		t.Errorf("slots = %v; want all /", o.slots)
	}
}
