// Package terminal hosts the visualization in a tcell screen.
//
// Each screen cell stands in for a CellPixelWidth x CellPixelHeight block of
// virtual pixels. Frames are composited into a render.RenderBuffer and copied
// to the screen with true-color styles; tcell handles palette downgrading on
// terminals without 24-bit color.
//
// Mouse motion is reported as an offset from the viewport center in virtual
// pixels, matching the pointer model of the engine.
package terminal
