package render

// Ring is one disc of a gradient approximation
type Ring struct {
	Radius float64
	Color  RGBA
}

// GradientRings approximates a radial gradient with n nested discs, outermost first
// Each disc's alpha is chosen so the source-over composite inside band k matches
// the gradient alpha at the band's midpoint; bands where the gradient gets more
// transparent toward the center are left to the outer discs
func GradientRings(radius float64, inner, outer RGBA, n int) []Ring {
	if n <= 0 || !(radius > 0) {
		return nil
	}
	rings := make([]Ring, 0, n)
	ia, oa := inner.Alpha(), outer.Alpha()
	covered := 0.0 // composite alpha of the discs drawn so far

	for k := range n {
		t := (float64(n-k) - 0.5) / float64(n)
		target := ia + (oa-ia)*t

		alpha := 0.0
		if target > covered && covered < 1 {
			alpha = 1 - (1-target)/(1-covered)
		}
		covered = covered + alpha*(1-covered)

		rings = append(rings, Ring{
			Radius: radius * float64(n-k) / float64(n),
			Color:  WithAlpha(MixLab(inner.RGB, outer.RGB, t), alpha),
		})
	}
	return rings
}
