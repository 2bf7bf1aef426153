package clothoid

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func constant(c float64) func(float64) Scalar {
	return ScalarFunc(func(float64) float64 { return c })
}

func identity(x float64) float64 { return x }

// floats converts scalars for comparison with cmpopts.EquateApprox, which
// only applies to float32 and float64.
func floats(s []Scalar) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}

func TestIntegralExactForCubics(t *testing.T) {
	f := ScalarFunc(func(x float64) float64 { return x*x*x - 2*x + 1 })
	// ∫₀² x³ - 2x + 1 dx = 4 - 4 + 2
	got := Integral(f, 0, 2, 1)
	if math.Abs(float64(got)-2) > 1e-12 {
		t.Errorf("got %v, want 2", got)
	}
}

func TestIntegralConverges(t *testing.T) {
	got := Integral(ScalarFunc(math.Cos), 0, math.Pi/2, 50)
	if math.Abs(float64(got)-1) > 1e-8 {
		t.Errorf("got %v, want 1", got)
	}

	v := Integral(VecFromAngle, 0, math.Pi, 200)
	diff(t, Vec(0, 2), v, cmpopts.EquateApprox(0, 1e-8))

	// Reversed bounds negate the result.
	back := Integral(ScalarFunc(math.Cos), math.Pi/2, 0, 50)
	if math.Abs(float64(back)+1) > 1e-8 {
		t.Errorf("got %v, want -1", back)
	}
}

func TestIntegralPanicsWithoutSteps(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Integral(ScalarFunc(identity), 0, 1, 0)
}

func TestMovingIntegral(t *testing.T) {
	f := ScalarFunc(func(x float64) float64 { return 2 * x })
	got := MovingIntegral(f, 0, 1, 4, 1)
	want := []float64{1, 1 + 1.0/16, 1 + 1.0/4, 1 + 9.0/16, 2}
	diff(t, want, floats(got), cmpopts.EquateApprox(0, 1e-12))
}

func TestMovingIntegralMatchesIntegral(t *testing.T) {
	const steps = 40
	sums := MovingIntegral(ScalarFunc(math.Cos), 0, 3, steps, 0)
	if len(sums) != steps+1 {
		t.Fatalf("got %d values, want %d", len(sums), steps+1)
	}
	whole := Integral(ScalarFunc(math.Cos), 0, 3, steps)
	if d := math.Abs(float64(sums[steps] - whole)); d > 1e-12 {
		t.Errorf("last running integral %v differs from %v by %g", sums[steps], whole, d)
	}
	for k, v := range sums {
		x := 3 * float64(k) / steps
		if d := math.Abs(float64(v) - math.Sin(x)); d > 1e-6 {
			t.Errorf("sums[%d] = %v, want %v", k, v, math.Sin(x))
		}
	}
}

func TestMovingIntegralSpaced(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	tests := []struct {
		name string
		b    float64
		dx   float64
		want []float64
	}{
		{"remainder", 1, 0.3, []float64{0, 0.3, 0.6, 0.9, 1}},
		{"snapped remainder", 0.9004, 0.3, []float64{0, 0.3, 0.6, 0.9004}},
		{"exact multiple", 1, 0.25, []float64{0, 0.25, 0.5, 0.75, 1}},
		{"shorter than one step", 0.0005, 0.1, []float64{0, 0.0005}},
		{"empty", 0, 0.1, []float64{0}},
		{"negative spacing", 1, -0.5, []float64{0, 0.5, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MovingIntegralSpaced(constant(1), 0, tt.b, tt.dx, 0)
			diff(t, tt.want, floats(got), approx)
		})
	}
}

func TestMovingIntegralSpacedAccuracy(t *testing.T) {
	got := MovingIntegralSpaced(ScalarFunc(math.Cos), 0, 2, 0.15, 0)
	for i, v := range got[:len(got)-1] {
		x := 0.15 * float64(i)
		if d := math.Abs(float64(v) - math.Sin(x)); d > 1e-6 {
			t.Errorf("got[%d] = %v, want %v", i, v, math.Sin(x))
		}
	}
	if last := got[len(got)-1]; math.Abs(float64(last)-math.Sin(2)) > 1e-6 {
		t.Errorf("got last value %v, want %v", last, math.Sin(2))
	}
}

func TestMapInterval(t *testing.T) {
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, MapInterval(identity, 0, 1, 5))
	diff(t, []float64{3}, MapInterval(identity, 3, 5, 1))
	diff(t, []float64{5, 4, 3}, MapInterval(identity, 5, 3, 3))
}

func TestMapIntervalSpaced(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, []float64{1, 0.75, 0.5, 0.25, 0}, MapIntervalSpaced(identity, 1, 0, 0.25), approx)
	diff(t, []float64{0, 0.4, 0.8, 1}, MapIntervalSpaced(identity, 0, 1, 0.4), approx)
	diff(t, []float64{0, 0.4, 0.8004}, MapIntervalSpaced(identity, 0, 0.8004, 0.4), approx)
	diff(t, []float64{2}, MapIntervalSpaced(identity, 2, 2, 0.4))
}

func TestSpacedPanicsOnZeroSpacing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MapIntervalSpaced(identity, 0, 1, 0)
}

func TestAppendMatchesReturn(t *testing.T) {
	prefix := []Vec2{{7, 7}, {8, 8}}
	f := VecFromAngle

	check := func(name string, appended, fresh []Vec2) {
		t.Helper()
		if !slices.Equal(appended[:len(prefix)], prefix) {
			t.Errorf("%s: prefix was modified: %v", name, appended[:len(prefix)])
		}
		diff(t, fresh, appended[len(prefix):])
	}

	check("MovingIntegral",
		AppendMovingIntegral(slices.Clone(prefix), f, 0, 2, 7, Vec(1, 1)),
		MovingIntegral(f, 0, 2, 7, Vec(1, 1)))
	check("MovingIntegralSpaced",
		AppendMovingIntegralSpaced(slices.Clone(prefix), f, 0, 2, 0.3, Vec(1, 1)),
		MovingIntegralSpaced(f, 0, 2, 0.3, Vec(1, 1)))
	check("MapInterval",
		AppendMapInterval(slices.Clone(prefix), f, 0, 2, 7),
		MapInterval(f, 0, 2, 7))
	check("MapIntervalSpaced",
		AppendMapIntervalSpaced(slices.Clone(prefix), f, 0, 2, 0.3),
		MapIntervalSpaced(f, 0, 2, 0.3))
}

func TestSeqStopsEarly(t *testing.T) {
	calls := 0
	f := ScalarFunc(func(x float64) float64 {
		calls++
		return x
	})
	var got []Scalar
	for v := range MovingIntegralSeq(f, 0, 1, 1000, 0) {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	if len(got) != 2 {
		t.Fatalf("got %d values, want 2", len(got))
	}
	// f(a), then one midpoint and one end point.
	if calls != 3 {
		t.Errorf("integrand was called %d times, want 3", calls)
	}
}

func TestLerp(t *testing.T) {
	diff(t, Vec(2, 3), Lerp(Vec(0, 1), Vec(4, 5), 0.5))
	diff(t, Scalar(7.5), Lerp[Scalar](5, 10, 0.5))
}
