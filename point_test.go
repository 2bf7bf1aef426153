package clothoid

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Vec(3, -2), Pt(4, 1).Sub(Pt(1, 3)))
	diff(t, Pt(2, 3), Pt(0, 2).Lerp(Pt(4, 4), 0.5))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestVecRotate(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, Vec(0, 1), Vec(1, 0).Rotate(math.Pi/2), approx)
	diff(t, Vec(-1, 0), Vec(0, 1).Rotate(math.Pi/2), approx)
	diff(t, Vec(1, 0), Vec(1, 0).Rotate(2*math.Pi), approx)
	diff(t, VecFromAngle(1.25), Vec(1, 0).Rotate(1.25), approx)
}

func TestVecOrientedAngle(t *testing.T) {
	tests := []struct {
		a, b Vec2
		want float64
	}{
		{Vec(1, 0), Vec(0, 1), math.Pi / 2},
		{Vec(1, 0), Vec(0, -1), -math.Pi / 2},
		{Vec(0, -1), Vec(-2, 1), -(math.Pi - math.Atan(2))},
		{Vec(1, 0), Vec(-1, 0), math.Pi},
		{Vec(1, 1), Vec(2, 2), 0},
	}
	for _, tt := range tests {
		got := tt.a.OrientedAngle(tt.b)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%v.OrientedAngle(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if ab := tt.a.AngleBetween(tt.b); math.Abs(ab-math.Abs(tt.want)) > 1e-12 {
			t.Errorf("%v.AngleBetween(%v) = %v, want %v", tt.a, tt.b, ab, math.Abs(tt.want))
		}
	}
}

func TestVecProjections(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	v := Vec(3, 4)
	dir := Vec(2, 0)
	diff(t, 3.0, v.Component(dir), approx)
	diff(t, Vec(3, 0), v.Project(dir), approx)
	diff(t, 4.0, v.OrthogonalComponent(dir), approx)
	diff(t, -4.0, v.OrthogonalComponent(dir.Negate()), approx)
	diff(t, Vec(3, -4), v.Reflect(Vec(0, 1)), approx)
	diff(t, 1.0, v.Normalize().Hypot(), approx)
	diff(t, Vec(6, 2), v.MulVec(Vec(2, 0.5)))
	diff(t, Vec(1.5, 8), v.DivVec(Vec(2, 0.5)))
	if c := Vec(1, 0).Cross(Vec(0, 1)); c != 1 {
		t.Errorf("got cross product %v, want 1", c)
	}
}

func TestLatex(t *testing.T) {
	if got, want := Pt(1.5, -2).Latex(), `\left(1.5,-2\right)`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
