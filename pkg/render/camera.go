package render

import (
	"math"

	"github.com/taigrr/vek/pkg/math3d"
	"github.com/taigrr/vek/pkg/mathutil"
)

// Camera is a perspective camera. It implements math3d.Camera, so vectors
// can Project into and Unproject out of it.
type Camera struct {
	// Position in world space. The camera observes it: any mutation through
	// its methods marks the view matrix stale. Replace it with SetPosition.
	Position *math3d.Vector3

	// Orientation (Euler angles in radians)
	Pitch float64 // Rotation around X axis (look up/down)
	Yaw   float64 // Rotation around Y axis (look left/right)
	Roll  float64 // Rotation around Z axis (tilt)

	// Projection parameters
	FOV         float64 // Vertical field of view in radians
	AspectRatio float64 // Width / Height
	Near        float64 // Near clipping plane
	Far         float64 // Far clipping plane

	view      matPair
	proj      matPair
	viewDirty bool
	projDirty bool
}

// matPair caches a matrix together with its inverse.
type matPair struct {
	m, inv math3d.Mat4
}

// NewCamera creates a new camera with default settings.
func NewCamera() *Camera {
	c := &Camera{
		FOV:         math.Pi / 3, // 60 degrees
		AspectRatio: 16.0 / 9.0,
		Near:        0.1,
		Far:         1000,
		projDirty:   true,
	}
	c.SetPosition(math3d.V3(0, 10, 0))
	return c
}

// SetPosition makes pos the camera position and starts observing it.
// Any observer previously set on pos is replaced.
func (c *Camera) SetPosition(pos *math3d.Vector3) {
	pos.OnChange = func(*math3d.Vector3) { c.viewDirty = true }
	c.Position = pos
	c.viewDirty = true
}

// SetRotation sets the camera rotation (pitch, yaw, roll in radians).
func (c *Camera) SetRotation(pitch, yaw, roll float64) {
	c.Pitch = pitch
	c.Yaw = yaw
	c.Roll = roll
	c.viewDirty = true
}

// SetFOV sets the field of view (in radians).
func (c *Camera) SetFOV(fov float64) {
	c.FOV = fov
	c.projDirty = true
}

// SetAspectRatio sets the aspect ratio.
func (c *Camera) SetAspectRatio(aspect float64) {
	c.AspectRatio = aspect
	c.projDirty = true
}

// SetClipPlanes sets the near and far clipping planes.
func (c *Camera) SetClipPlanes(near, far float64) {
	c.Near = near
	c.Far = far
	c.projDirty = true
}

// Forward returns the forward direction vector.
func (c *Camera) Forward() *math3d.Vector3 {
	// Forward is -Z in camera space, rotated by yaw and pitch
	return math3d.V3(
		-math.Sin(c.Yaw)*math.Cos(c.Pitch),
		math.Sin(c.Pitch),
		-math.Cos(c.Yaw)*math.Cos(c.Pitch),
	)
}

// Right returns the right direction vector.
func (c *Camera) Right() *math3d.Vector3 {
	return math3d.V3(math.Cos(c.Yaw), 0, -math.Sin(c.Yaw))
}

// Up returns the up direction vector.
func (c *Camera) Up() *math3d.Vector3 {
	return c.Right().Cross(c.Forward())
}

// ViewMatrix returns the view matrix.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	c.updateView()
	return c.view.m
}

// MatrixWorldInverse is the view matrix.
func (c *Camera) MatrixWorldInverse() math3d.Mat4 {
	return c.ViewMatrix()
}

// MatrixWorld returns the camera's placement in the world, the inverse of
// the view matrix.
func (c *Camera) MatrixWorld() math3d.Mat4 {
	c.updateView()
	return c.view.inv
}

// ProjectionMatrix returns the projection matrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	c.updateProjection()
	return c.proj.m
}

// ProjectionMatrixInverse returns the inverse projection matrix.
func (c *Camera) ProjectionMatrixInverse() math3d.Mat4 {
	c.updateProjection()
	return c.proj.inv
}

// ViewProjectionMatrix returns the combined view-projection matrix.
func (c *Camera) ViewProjectionMatrix() math3d.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

func (c *Camera) updateView() {
	if !c.viewDirty {
		return
	}
	// View = Rotation * Translation(-position)
	rot := math3d.RotateZ(-c.Roll).Mul(
		math3d.RotateX(-c.Pitch)).Mul(
		math3d.RotateY(-c.Yaw))
	p := c.Position
	trans := math3d.Translate(-p.X(), -p.Y(), -p.Z())

	c.view.m = rot.Mul(trans)
	c.view.inv = c.view.m.Inverse()
	c.viewDirty = false
	p.ClearDirty()
}

func (c *Camera) updateProjection() {
	if !c.projDirty {
		return
	}
	c.proj.m = math3d.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
	c.proj.inv = c.proj.m.Inverse()
	c.projDirty = false
}

// MoveForward moves the camera forward (or backward if negative).
func (c *Camera) MoveForward(distance float64) {
	c.Position.AddScaledVector(c.Forward(), distance)
}

// MoveRight moves the camera right (or left if negative).
func (c *Camera) MoveRight(distance float64) {
	c.Position.AddScaledVector(c.Right(), distance)
}

// MoveUp moves the camera up (or down if negative).
func (c *Camera) MoveUp(distance float64) {
	c.Position.AddScaledVector(math3d.Up(), distance)
}

// Rotate rotates the camera by the given angles (in radians).
func (c *Camera) Rotate(deltaPitch, deltaYaw, deltaRoll float64) {
	// Clamp pitch to avoid gimbal lock issues
	const maxPitch = math.Pi/2 - 0.01
	c.Pitch = mathutil.Clamp(c.Pitch+deltaPitch, -maxPitch, maxPitch)
	c.Yaw += deltaYaw
	c.Roll += deltaRoll
	c.viewDirty = true
}

// LookAt makes the camera look at a target point.
func (c *Camera) LookAt(target *math3d.Vector3) {
	dir := target.Clone().Sub(c.Position).Normalize()

	c.Pitch = math.Asin(mathutil.Clamp(dir.Y(), -1, 1))
	c.Yaw = math.Atan2(-dir.X(), -dir.Z())
	c.Roll = 0

	c.viewDirty = true
}

// Orbit places the camera on a sphere of the given coordinates around
// target and points it at target.
func (c *Camera) Orbit(target *math3d.Vector3, s math3d.Spherical) {
	c.Position.SetFromSpherical(s.MakeSafe()).Add(target)
	c.LookAt(target)
}

// WorldToScreen transforms a world point to screen coordinates.
// Returns (screenX, screenY, depth, visible). worldPos is not modified.
func (c *Camera) WorldToScreen(worldPos *math3d.Vector3, screenWidth, screenHeight int) (x, y, depth float64, visible bool) {
	// Behind the near plane the perspective divide flips signs.
	if worldPos.Clone().ApplyMatrix4(c.ViewMatrix()).Z() > -c.Near {
		return 0, 0, 0, false
	}

	ndc := worldPos.Clone().Project(c)
	if ndc.X() < -1 || ndc.X() > 1 || ndc.Y() < -1 || ndc.Y() > 1 || ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, 0, false
	}

	x = (ndc.X() + 1) * 0.5 * float64(screenWidth)
	y = (1 - ndc.Y()) * 0.5 * float64(screenHeight) // Y is flipped
	return x, y, ndc.Z(), true
}

// ScreenToWorld maps screen coordinates and an NDC depth in [-1, 1] back
// to a new world-space point.
func (c *Camera) ScreenToWorld(x, y, depth float64, screenWidth, screenHeight int) *math3d.Vector3 {
	ndc := math3d.V3(
		x/float64(screenWidth)*2-1,
		1-y/float64(screenHeight)*2,
		depth,
	)
	return ndc.Unproject(c)
}
