package geom

import (
	"math"
	"testing"
)

func TestNormalizeOrZero(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"zero stays zero", Zero, Zero},
		{"unit x", NewVec2(-1, 0), NewVec2(-1, 0)},
		{"long y", NewVec2(0, 5), NewVec2(0, 1)},
		{"diagonal", NewVec2(1, 1), NewVec2(math.Sqrt2/2, math.Sqrt2/2)},
		{"infinite", NewVec2(math.Inf(1), 0), Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.NormalizeOrZero()
			if !got.ApproxEqual(tt.want, 1e-12) {
				t.Errorf("NormalizeOrZero(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestArithmetic(t *testing.T) {
	a := NewVec2(3, 4)
	if a.Length() != 5 {
		t.Errorf("Expected length 5, got %v", a.Length())
	}
	if got := a.Add(NewVec2(1, -1)); got != NewVec2(4, 3) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(NewVec2(1, 1)); got != NewVec2(2, 3) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(0.5); got != NewVec2(1.5, 2) {
		t.Errorf("Scale: got %v", got)
	}
}
