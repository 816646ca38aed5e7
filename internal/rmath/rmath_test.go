package rmath

import (
	"math"
	"testing"
)

func TestMin32NaN(t *testing.T) {
	nan := float32(math.NaN())
	if got := Min32(nan, 3); got != 3 {
		t.Errorf("Min32(NaN, 3) = %v, want 3", got)
	}
	if got := Min32(3, nan); got != 3 {
		t.Errorf("Min32(3, NaN) = %v, want 3", got)
	}
}

func TestMax32NaN(t *testing.T) {
	nan := float32(math.NaN())
	if got := Max32(nan, 3); got != 3 {
		t.Errorf("Max32(NaN, 3) = %v, want 3", got)
	}
}

func TestSignum32(t *testing.T) {
	cases := []struct {
		in, want float32
	}{
		{1, 1}, {-1, -1}, {0, 0}, {float32(math.Copysign(0, -1)), 0},
	}
	for _, c := range cases {
		if got := Signum32(c.in); got != c.want {
			t.Errorf("Signum32(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestClamp32(t *testing.T) {
	if got := Clamp32(5, 0, 1); got != 1 {
		t.Errorf("Clamp32(5,0,1) = %v, want 1", got)
	}
	if got := Clamp32(-5, 0, 1); got != 0 {
		t.Errorf("Clamp32(-5,0,1) = %v, want 0", got)
	}
	if got := Clamp32(0.5, 0, 1); got != 0.5 {
		t.Errorf("Clamp32(0.5,0,1) = %v, want 0.5", got)
	}
}

func TestVec2(t *testing.T) {
	a := Vec2{3, 4}
	if got := a.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	b := Vec2{1, 1}
	if got := a.Add(b); got != (Vec2{4, 5}) {
		t.Errorf("Add() = %v, want {4 5}", got)
	}
	if got := a.Sub(b); got != (Vec2{2, 3}) {
		t.Errorf("Sub() = %v, want {2 3}", got)
	}
}
