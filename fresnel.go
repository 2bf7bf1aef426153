package clothoid

import (
	"fmt"
	"math"
	"sync"
)

// FresnelTableSize is the number of samples in a [FresnelTable]. Larger
// tables trade memory for interpolation accuracy.
const FresnelTableSize = 1000

// FresnelTable is a precomputed table of the normalized Fresnel integrals
//
//	C(s) = ∫₀ˢ cos(π/2·x²) dx
//	S(s) = ∫₀ˢ sin(π/2·x²) dx
//
// sampled at FresnelTableSize evenly spaced values of s ∈ [0, 1]. A table is
// immutable once built and is safe for concurrent use.
type FresnelTable struct {
	entries [FresnelTableSize]Vec2
}

var defaultFresnelTable = sync.OnceValue(NewFresnelTable)

// DefaultFresnelTable returns the process-wide table shared by all curves
// that weren't given a table of their own. The table is built on first use.
func DefaultFresnelTable() *FresnelTable {
	return defaultFresnelTable()
}

// NewFresnelTable builds a new table. The result depends only on
// [FresnelTableSize], so every table built by this function holds identical
// values.
func NewFresnelTable() *FresnelTable {
	var tbl FresnelTable
	integrand := func(x float64) Vec2 {
		return VecFromAngle(math.Pi / 2 * x * x)
	}
	i := 0
	for v := range MovingIntegralSeq(integrand, 0, 1, FresnelTableSize-1, Vec2{}) {
		tbl.entries[i] = v
		i++
	}
	return &tbl
}

// Len returns the number of entries in the table.
func (tbl *FresnelTable) Len() int {
	return len(tbl.entries)
}

// At returns the i-th entry, which holds (C, S) at s = i/(Len()-1).
func (tbl *FresnelTable) At(i int) Vec2 {
	return tbl.entries[i]
}

// Vec returns (C(s), S(s)), linearly interpolated between the two entries
// that bracket s. It panics if s is outside of [0, 1].
func (tbl *FresnelTable) Vec(s float64) Vec2 {
	if !(s >= 0 && s <= 1) {
		panic(fmt.Sprintf("Fresnel integral argument %v outside of [0, 1]", s))
	}
	x := s * float64(len(tbl.entries)-1)
	i := int(x)
	if i >= len(tbl.entries)-1 {
		return tbl.entries[len(tbl.entries)-1]
	}
	return tbl.entries[i].Lerp(tbl.entries[i+1], x-float64(i))
}

// C returns the interpolated Fresnel cosine integral at s.
func (tbl *FresnelTable) C(s float64) float64 {
	return tbl.Vec(s).X
}

// S returns the interpolated Fresnel sine integral at s.
func (tbl *FresnelTable) S(s float64) float64 {
	return tbl.Vec(s).Y
}

// Fresnel returns (C(s), S(s)) from the default table.
func Fresnel(s float64) Vec2 {
	return DefaultFresnelTable().Vec(s)
}

// FresnelC returns C(s) from the default table.
func FresnelC(s float64) float64 {
	return DefaultFresnelTable().C(s)
}

// FresnelS returns S(s) from the default table.
func FresnelS(s float64) float64 {
	return DefaultFresnelTable().S(s)
}

func orDefault(tbl *FresnelTable) *FresnelTable {
	if tbl == nil {
		return DefaultFresnelTable()
	}
	return tbl
}
