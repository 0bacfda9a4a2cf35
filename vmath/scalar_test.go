package vmath

import (
	"math"
	"testing"
)

func TestWrapToroidal(t *testing.T) {
	tests := []struct {
		name  string
		v     float64
		bound float64
		want  float64
	}{
		{"inside", 12.5, 600, 12.5},
		{"on positive edge", 600, 600, 600},
		{"on negative edge", -600, 600, -600},
		{"past positive", 600.01, 600, -600},
		{"past negative", -900, 600, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapToroidal(tt.v, tt.bound); got != tt.want {
				t.Errorf("WrapToroidal(%v, %v) = %v, want %v", tt.v, tt.bound, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if Clamp01(-0.5) != 0 || Clamp01(1.5) != 1 || Clamp01(0.25) != 0.25 {
		t.Error("Clamp01 bounds violated")
	}
	if Clamp(math.NaN(), 0, 1) != 0 {
		t.Error("NaN must clamp to the lower bound")
	}
}

func TestLerpConverges(t *testing.T) {
	v := 0.0
	for i := 0; i < 500; i++ {
		v = Lerp(v, 1, 0.07)
	}
	if math.Abs(v-1) > 1e-9 {
		t.Errorf("expected convergence to 1, got %v", v)
	}
	if Lerp(2, 4, 0.5) != 3 {
		t.Error("Lerp midpoint wrong")
	}
}

func TestV3F(t *testing.T) {
	v := V3FAdd(Vec3F{1, 2, 3}, V3FScale(Vec3F{1, 1, 1}, 2))
	if v != (Vec3F{3, 4, 5}) {
		t.Errorf("add/scale = %+v", v)
	}
	if got := V3FMag(V3FSub(v, Vec3F{0, 4, 1})); got != 5 {
		t.Errorf("magnitude = %v, want 5", got)
	}
	if V3FFinite(Vec3F{X: math.Inf(1)}) || V3FFinite(Vec3F{Z: math.NaN()}) {
		t.Error("non-finite component not detected")
	}
	if !V3FFinite(v) {
		t.Error("finite vector rejected")
	}
}
