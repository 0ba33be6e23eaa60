package render

import (
	"github.com/taigrr/vek/pkg/math3d"
	"github.com/taigrr/vek/pkg/mathutil"
)

// Plotter projects world-space vectors through a camera into a framebuffer.
type Plotter struct {
	camera *Camera
	fb     *Framebuffer

	// Near and Far colors shade points by depth. If Far is zero, points are
	// drawn in the color passed to Plot.
	Near, Far Color
}

// NewPlotter creates a plotter. The camera's aspect ratio is set to match
// the framebuffer.
func NewPlotter(camera *Camera, fb *Framebuffer) *Plotter {
	camera.SetAspectRatio(fb.Aspect())
	return &Plotter{camera: camera, fb: fb}
}

// Camera returns the camera the plotter projects through.
func (p *Plotter) Camera() *Camera { return p.camera }

// Plot draws one point, depth tested. It reports whether a pixel was written.
func (p *Plotter) Plot(point *math3d.Vector3, c Color) bool {
	x, y, depth, ok := p.camera.WorldToScreen(point, p.fb.Width, p.fb.Height)
	if !ok {
		return false
	}
	if p.Far != (Color{}) {
		c = LerpColor(p.Near, p.Far, mathutil.InverseLerp(-1, 1, depth))
	}
	return p.fb.SetPixelDepth(int(x), int(y), depth, c)
}

// PlotAll draws every point and returns how many pixels were written.
func (p *Plotter) PlotAll(points []*math3d.Vector3, c Color) int {
	n := 0
	for _, pt := range points {
		if p.Plot(pt, c) {
			n++
		}
	}
	return n
}

// DrawLine3D draws a line in 3D space.
func (p *Plotter) DrawLine3D(a, b *math3d.Vector3, c Color) {
	x1, y1, _, vis1 := p.camera.WorldToScreen(a, p.fb.Width, p.fb.Height)
	x2, y2, _, vis2 := p.camera.WorldToScreen(b, p.fb.Width, p.fb.Height)

	// Both endpoints must project; proper clipping would split the segment.
	if !vis1 || !vis2 {
		return
	}
	p.fb.DrawLine(int(x1), int(y1), int(x2), int(y2), c)
}

// DrawAxes draws the coordinate axes at the origin.
func (p *Plotter) DrawAxes(length float64) {
	origin := math3d.Zero3()
	p.DrawLine3D(origin, math3d.Right().MultiplyScalar(length), ColorRed)
	p.DrawLine3D(origin, math3d.Up().MultiplyScalar(length), ColorGreen)
	p.DrawLine3D(origin, math3d.V3(0, 0, length), ColorBlue)
}

// DrawBox draws the 12 edges of box, unless it lies outside the view.
func (p *Plotter) DrawBox(box AABB, c Color) bool {
	if box.IsEmpty() || !p.camera.Frustum().IntersectAABB(box) {
		return false
	}
	corners := box.Corners()
	// Corner i has bit 0 = x, bit 1 = y, bit 2 = z; edges differ in one bit.
	for i := range corners {
		for bit := 1; bit < 8; bit <<= 1 {
			if j := i | bit; j != i {
				p.DrawLine3D(corners[i], corners[j], c)
			}
		}
	}
	return true
}

// DrawGrid draws a grid on the XZ plane at y=0.
func (p *Plotter) DrawGrid(size, step float64, c Color) {
	half := size / 2
	for x := -half; x <= half; x += step {
		p.DrawLine3D(math3d.V3(x, 0, -half), math3d.V3(x, 0, half), c)
	}
	for z := -half; z <= half; z += step {
		p.DrawLine3D(math3d.V3(-half, 0, z), math3d.V3(half, 0, z), c)
	}
}
