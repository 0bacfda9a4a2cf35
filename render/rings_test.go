package render

import (
	"math"
	"testing"
)

func TestGradientRings(t *testing.T) {
	inner := WithAlpha(RGB{0, 242, 255}, 0.6)
	rings := GradientRings(150, inner, Transparent, 12)
	if len(rings) != 12 {
		t.Fatalf("rings = %d, want 12", len(rings))
	}
	if rings[0].Radius != 150 {
		t.Errorf("outer radius = %v", rings[0].Radius)
	}
	for i := 1; i < len(rings); i++ {
		if rings[i].Radius >= rings[i-1].Radius {
			t.Fatalf("ring %d radius %v not inside ring %d", i, rings[i].Radius, i-1)
		}
	}

	covered := 0.0
	for _, r := range rings {
		a := r.Color.Alpha()
		covered += a * (1 - covered)
	}
	want := 0.6 * (1 - 0.5/12)
	if math.Abs(covered-want) > 0.03 {
		t.Errorf("center composite alpha = %v, want about %v", covered, want)
	}
}

func TestGradientRingsDegenerate(t *testing.T) {
	if GradientRings(0, Transparent, Transparent, 8) != nil {
		t.Error("zero radius produced rings")
	}
	if GradientRings(10, Transparent, Transparent, 0) != nil {
		t.Error("zero count produced rings")
	}
	for _, r := range GradientRings(10, Transparent, Transparent, 4) {
		if r.Color.A != 0 {
			t.Errorf("transparent gradient ring alpha = %d", r.Color.A)
		}
	}
}
