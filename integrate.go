package clothoid

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// SnapTolerance is the smallest remainder, in parameter units, that the
// spaced samplers emit as a separate final step. Shorter remainders are
// absorbed into the last regular step so that sampling doesn't produce a
// near-duplicate trailing sample.
const SnapTolerance = 1e-3

// Summable describes values that form a vector space over float64, which is
// all that Simpson's rule needs of an integrand's output.
type Summable[T any] interface {
	Add(T) T
	Mul(float64) T
}

// Scalar is a float64 that satisfies [Summable], for integrating scalar
// functions.
type Scalar float64

func (s Scalar) Add(o Scalar) Scalar  { return s + o }
func (s Scalar) Mul(f float64) Scalar { return s * Scalar(f) }

// ScalarFunc adapts a plain float64 function for use with the integrators.
func ScalarFunc(f func(float64) float64) func(float64) Scalar {
	return func(x float64) Scalar { return Scalar(f(x)) }
}

// Lerp linearly interpolates between a and b.
func Lerp[T Summable[T]](a, b T, t float64) T {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// Integral approximates the definite integral of f over [a, b] using the
// composite Simpson's rule with 2·steps sub-intervals.
//
// Accuracy improves with steps. Very small values of steps are permitted but
// may be inaccurate.
func Integral[T Summable[T]](f func(float64) T, a, b float64, steps int) T {
	if steps < 1 {
		panic(fmt.Sprintf("Integral: steps must be at least 1, got %d", steps))
	}
	n := 2 * steps
	dx := (b - a) / float64(n)
	sum := f(a)
	for i := 1; i < n; i += 2 {
		sum = sum.Add(f(a + float64(i)*dx).Mul(4))
		if i+1 < n {
			sum = sum.Add(f(a + float64(i+1)*dx).Mul(2))
		}
	}
	sum = sum.Add(f(b))
	return sum.Mul(dx / 3)
}

// simpsonPanel returns the Simpson estimate of the integral over one panel of
// width h, given the values at its start, midpoint and end.
func simpsonPanel[T Summable[T]](y0, ym, y1 T, h float64) T {
	return y0.Add(ym.Mul(4)).Add(y1).Mul(h / 6)
}

// MovingIntegralSeq returns the running integrals of f over [a, a], [a, a+h],
// [a, a+2h], …, [a, b], with h = (b-a)/steps, each offset by start. The
// sequence has steps+1 values.
//
// The integrals are computed in a single pass: every panel reuses the value of
// f at the end of the previous panel, so f is evaluated 2·steps+1 times in
// total.
func MovingIntegralSeq[T Summable[T]](f func(float64) T, a, b float64, steps int, start T) iter.Seq[T] {
	if steps < 1 {
		panic(fmt.Sprintf("MovingIntegral: steps must be at least 1, got %d", steps))
	}
	return func(yield func(T) bool) {
		if !yield(start) {
			return
		}
		h := (b - a) / float64(steps)
		sum := start
		prev := f(a)
		for k := 1; k <= steps; k++ {
			x1 := a + float64(k)*h
			if k == steps {
				x1 = b
			}
			mid := f(a + (float64(k)-0.5)*h)
			next := f(x1)
			sum = sum.Add(simpsonPanel(prev, mid, next, h))
			if !yield(sum) {
				return
			}
			prev = next
		}
	}
}

// MovingIntegral collects [MovingIntegralSeq] into a new slice.
func MovingIntegral[T Summable[T]](f func(float64) T, a, b float64, steps int, start T) []T {
	return AppendMovingIntegral(make([]T, 0, steps+1), f, a, b, steps, start)
}

// AppendMovingIntegral appends the values of [MovingIntegralSeq] to dst and
// returns the extended slice.
func AppendMovingIntegral[T Summable[T]](dst []T, f func(float64) T, a, b float64, steps int, start T) []T {
	return slices.AppendSeq(dst, MovingIntegralSeq(f, a, b, steps, start))
}

// spacing describes how an interval [a, b] is cut into steps of fixed width.
type spacing struct {
	// signed step width
	h float64
	// number of full steps
	n int
	// whether a shorter final step ending at b follows the full steps
	tail bool
}

func checkSpacing(dx float64) {
	if dx == 0 || math.IsNaN(dx) || math.IsInf(dx, 0) {
		panic(fmt.Sprintf("spacing must be finite and non-zero, got %v", dx))
	}
}

// spacedCap returns a slice capacity for sampling a length every dx, plus
// extra. It panics on the same spacings as the spaced samplers.
func spacedCap(length, dx float64, extra int) int {
	checkSpacing(dx)
	return int(math.Abs(length/dx)) + extra
}

func newSpacing(a, b, dx float64) spacing {
	checkSpacing(dx)
	span := math.Abs(b - a)
	step := math.Abs(dx)
	n := int(span / step)
	rem := span - float64(n)*step
	sp := spacing{h: math.Copysign(step, b-a), n: n}
	// b == a has no steps at all. A span shorter than one step but
	// otherwise negligible still gets a single step, so the final value
	// always corresponds to b.
	if rem >= SnapTolerance || (n == 0 && span > 0) {
		sp.tail = true
	}
	return sp
}

// at returns the end of the k-th full step, snapping the last one to b when
// there is no tail.
func (sp spacing) at(a, b float64, k int) float64 {
	if k == sp.n && !sp.tail {
		return b
	}
	return a + float64(k)*sp.h
}

func (sp spacing) count() int {
	n := sp.n + 1
	if sp.tail {
		n++
	}
	return n
}

// MovingIntegralSpacedSeq is like [MovingIntegralSeq], but advances by the
// fixed width |dx| instead of a fixed number of steps. If b-a isn't a multiple
// of dx, a final, shorter step lands exactly on b, unless the remainder is
// smaller than [SnapTolerance], in which case the last full step is stretched
// to b instead.
func MovingIntegralSpacedSeq[T Summable[T]](f func(float64) T, a, b, dx float64, start T) iter.Seq[T] {
	sp := newSpacing(a, b, dx)
	return func(yield func(T) bool) {
		if !yield(start) {
			return
		}
		sum := start
		x0 := a
		prev := f(a)
		step := func(x1 float64) bool {
			h := x1 - x0
			next := f(x1)
			sum = sum.Add(simpsonPanel(prev, f(x0+h/2), next, h))
			x0, prev = x1, next
			return yield(sum)
		}
		for k := 1; k <= sp.n; k++ {
			if !step(sp.at(a, b, k)) {
				return
			}
		}
		if sp.tail {
			step(b)
		}
	}
}

// MovingIntegralSpaced collects [MovingIntegralSpacedSeq] into a new slice.
func MovingIntegralSpaced[T Summable[T]](f func(float64) T, a, b, dx float64, start T) []T {
	return AppendMovingIntegralSpaced(make([]T, 0, newSpacing(a, b, dx).count()), f, a, b, dx, start)
}

// AppendMovingIntegralSpaced appends the values of [MovingIntegralSpacedSeq]
// to dst and returns the extended slice.
func AppendMovingIntegralSpaced[T Summable[T]](dst []T, f func(float64) T, a, b, dx float64, start T) []T {
	return slices.AppendSeq(dst, MovingIntegralSpacedSeq(f, a, b, dx, start))
}

// MapIntervalSeq evaluates f at steps evenly spaced values from a to b, both
// inclusive. With steps == 1, only a is evaluated.
func MapIntervalSeq[T any](f func(float64) T, a, b float64, steps int) iter.Seq[T] {
	if steps < 1 {
		panic(fmt.Sprintf("MapInterval: steps must be at least 1, got %d", steps))
	}
	return func(yield func(T) bool) {
		if steps == 1 {
			yield(f(a))
			return
		}
		dx := (b - a) / float64(steps-1)
		for i := range steps - 1 {
			if !yield(f(a + float64(i)*dx)) {
				return
			}
		}
		yield(f(b))
	}
}

// MapInterval collects [MapIntervalSeq] into a new slice.
func MapInterval[T any](f func(float64) T, a, b float64, steps int) []T {
	return AppendMapInterval(make([]T, 0, steps), f, a, b, steps)
}

// AppendMapInterval appends the values of [MapIntervalSeq] to dst and returns
// the extended slice.
func AppendMapInterval[T any](dst []T, f func(float64) T, a, b float64, steps int) []T {
	return slices.AppendSeq(dst, MapIntervalSeq(f, a, b, steps))
}

// MapIntervalSpacedSeq evaluates f at a, a+dx, a+2dx, … up to and including b,
// moving toward b regardless of the sign of dx. The end snapping rules are
// those of [MovingIntegralSpacedSeq].
func MapIntervalSpacedSeq[T any](f func(float64) T, a, b, dx float64) iter.Seq[T] {
	sp := newSpacing(a, b, dx)
	return func(yield func(T) bool) {
		if !yield(f(a)) {
			return
		}
		for k := 1; k <= sp.n; k++ {
			if !yield(f(sp.at(a, b, k))) {
				return
			}
		}
		if sp.tail {
			yield(f(b))
		}
	}
}

// MapIntervalSpaced collects [MapIntervalSpacedSeq] into a new slice.
func MapIntervalSpaced[T any](f func(float64) T, a, b, dx float64) []T {
	return AppendMapIntervalSpaced(make([]T, 0, newSpacing(a, b, dx).count()), f, a, b, dx)
}

// AppendMapIntervalSpaced appends the values of [MapIntervalSpacedSeq] to dst
// and returns the extended slice.
func AppendMapIntervalSpaced[T any](dst []T, f func(float64) T, a, b, dx float64) []T {
	return slices.AppendSeq(dst, MapIntervalSpacedSeq(f, a, b, dx))
}
