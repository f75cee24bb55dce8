package page

import "fmt"

// Range is an inclusive byte range: [Start, End].
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by r.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// Contains reports whether p lies within r.
func (r Range) Contains(p int) bool {
	return p >= r.Start && p <= r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Start, r.End)
}

// Geometry is the raw page geometry reported by the layout. Either value may
// be 0 before the first layout pass; Model clamps both to at least 1 when
// addressing.
type Geometry struct {
	Cells int // cells per row
	Rows  int // rows per page
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ceilDiv returns ceil(a/b) for a >= 0 and b >= 1.
func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
