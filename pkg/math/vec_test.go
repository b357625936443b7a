package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Scale(t *testing.T) {
	v := Vec2{2, -3}.Scale(2)
	if v != (Vec2{4, -6}) {
		t.Errorf("Vec2.Scale() = %v, want {4 -6}", v)
	}
	if z := v.Scale(0); z != (Vec2{}) {
		t.Errorf("Vec2.Scale(0) = %v, want zero", z)
	}
}

func TestFromAngle(t *testing.T) {
	tests := []struct {
		angle float64
		want  Vec2
	}{
		{0, Vec2{1, 0}},
		{math.Pi / 2, Vec2{0, 1}},
		{math.Pi, Vec2{-1, 0}},
	}

	for _, tt := range tests {
		got := FromAngle(tt.angle)
		if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
			t.Errorf("FromAngle(%v) = %v, want %v", tt.angle, got, tt.want)
		}
		if l := math.Hypot(got.X, got.Y); math.Abs(l-1) > 1e-12 {
			t.Errorf("FromAngle(%v) has length %v, want 1", tt.angle, l)
		}
	}
}
