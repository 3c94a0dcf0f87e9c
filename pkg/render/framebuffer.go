// Package render drives per-pixel Monte-Carlo sampling in parallel and
// accumulates a linear RGB framebuffer.
package render

import "github.com/rngbrew/pathtracer/pkg/vecmath"

// Framebuffer is a row-major buffer of linear RGB pixels. Each pixel is
// written exactly once by the worker that owns its row, so no locking is
// required during rendering.
type Framebuffer struct {
	Width, Height int
	Pixels        []vecmath.Vec3
}

// NewFramebuffer allocates a zeroed framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{Width: width, Height: height, Pixels: make([]vecmath.Vec3, width*height)}
}

// Set writes the color for pixel (x, y).
func (f *Framebuffer) Set(x, y int, c vecmath.Vec3) {
	f.Pixels[y*f.Width+x] = c
}

// At returns the color at pixel (x, y).
func (f *Framebuffer) At(x, y int) vecmath.Vec3 {
	return f.Pixels[y*f.Width+x]
}
