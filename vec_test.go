package warp

import (
	"math"
	"testing"
)

func TestV2(t *testing.T) {
	v := V2(3, 4)
	if v.X != 3 || v.Y != 4 {
		t.Errorf("V2(3, 4) = %v", v)
	}
}

func TestVec2Add(t *testing.T) {
	got := V2(1, 2).Add(V2(3, -5))
	if got != (Vec2{4, -3}) {
		t.Errorf("Add = %v, want {4 -3}", got)
	}
}

func TestVec2Mul(t *testing.T) {
	got := V2(1.5, -2).Mul(2)
	if got != (Vec2{3, -4}) {
		t.Errorf("Mul = %v, want {3 -4}", got)
	}
}

func TestVec2Length(t *testing.T) {
	tests := []struct {
		v    Vec2
		want float64
	}{
		{V2(3, 4), 5},
		{V2(0, 0), 0},
		{V2(-1, 0), 1},
		{V2(1, 1), math.Sqrt2},
	}
	for _, tt := range tests {
		if got := tt.v.Length(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Length(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
