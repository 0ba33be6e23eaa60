// Package anim moves vectors over time. Every driver writes through the
// vector's public mutators, once per step, so observers see each frame.
package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/vek/pkg/math3d"
	"github.com/taigrr/vek/pkg/mathutil"
)

// Spring3 pulls a Vector3 toward Target with one damped spring per axis.
type Spring3 struct {
	Target *math3d.Vector3

	v      *math3d.Vector3
	spring harmonica.Spring
	vel    [3]float64
}

// NewSpring3 animates v at the given frame rate. A damping ratio of 1 is
// critically damped (no overshoot); below 1 oscillates.
func NewSpring3(v *math3d.Vector3, fps int, frequency, damping float64) *Spring3 {
	return &Spring3{
		Target: v.Clone(),
		v:      v,
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Vector returns the animated vector.
func (s *Spring3) Vector() *math3d.Vector3 { return s.v }

// Velocity returns a copy of the current per-axis velocity.
func (s *Spring3) Velocity() *math3d.Vector3 {
	return math3d.V3(s.vel[0], s.vel[1], s.vel[2])
}

// Update advances one frame.
func (s *Spring3) Update() {
	cur := [3]float64{s.v.X(), s.v.Y(), s.v.Z()}
	goal := [3]float64{s.Target.X(), s.Target.Y(), s.Target.Z()}
	var next [3]float64
	for i := range next {
		next[i], s.vel[i] = s.spring.Update(cur[i], s.vel[i], goal[i])
	}
	s.v.Set(next[0], next[1], next[2])
}

// Settled reports whether the vector is within eps of Target and nearly at
// rest.
func (s *Spring3) Settled(eps float64) bool {
	return s.v.DistanceTo(s.Target) <= eps && s.Velocity().Length() <= eps
}

// Ballistic moves a Vector3 under constant acceleration.
type Ballistic struct {
	v *math3d.Vector3
	p *harmonica.Projectile
}

// NewBallistic launches v with the given velocity and acceleration. Use
// Gravity for a Y-up world.
func NewBallistic(v *math3d.Vector3, fps int, velocity, acceleration *math3d.Vector3) *Ballistic {
	return &Ballistic{
		v: v,
		p: harmonica.NewProjectile(
			harmonica.FPS(fps),
			harmonica.Point{X: v.X(), Y: v.Y(), Z: v.Z()},
			harmonica.Vector{X: velocity.X(), Y: velocity.Y(), Z: velocity.Z()},
			harmonica.Vector{X: acceleration.X(), Y: acceleration.Y(), Z: acceleration.Z()},
		),
	}
}

// Gravity returns standard gravity pointing down -Y.
func Gravity() *math3d.Vector3 {
	g := harmonica.Gravity
	return math3d.V3(g.X, g.Y, g.Z)
}

// Vector returns the animated vector.
func (b *Ballistic) Vector() *math3d.Vector3 { return b.v }

// Velocity returns the current velocity.
func (b *Ballistic) Velocity() *math3d.Vector3 {
	vel := b.p.Velocity()
	return math3d.V3(vel.X, vel.Y, vel.Z)
}

// Update advances one frame.
func (b *Ballistic) Update() {
	p := b.p.Update()
	b.v.Set(p.X, p.Y, p.Z)
}

// DampTo moves v toward target by a frame-rate independent fraction:
// lambda is the rate, dt the elapsed time. It returns v.
func DampTo(v, target *math3d.Vector3, lambda, dt float64) *math3d.Vector3 {
	return v.Set(
		mathutil.Damp(v.X(), target.X(), lambda, dt),
		mathutil.Damp(v.Y(), target.Y(), lambda, dt),
		mathutil.Damp(v.Z(), target.Z(), lambda, dt),
	)
}

// SpinAxis tracks an angle and its velocity. The velocity decays toward 0
// with a spring.
type SpinAxis struct {
	Angle    float64
	Velocity float64

	spring harmonica.Spring
	accel  float64
}

func newSpinAxis(fps int) SpinAxis {
	// Frequency 4.0 = moderate speed, damping 1.0 = critically damped.
	return SpinAxis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

func (a *SpinAxis) update() {
	a.Angle += a.Velocity
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
}

// Spin is an Euler rotation driven by impulses that die out.
type Spin struct {
	Pitch, Yaw, Roll SpinAxis
	fps              int
}

// NewSpin creates a Spin at rest.
func NewSpin(fps int) *Spin {
	s := &Spin{fps: fps}
	s.Reset()
	return s
}

// ApplyImpulse adds angular velocity, in radians per frame.
func (s *Spin) ApplyImpulse(pitch, yaw, roll float64) {
	s.Pitch.Velocity += pitch
	s.Yaw.Velocity += yaw
	s.Roll.Velocity += roll
}

// Update advances one frame.
func (s *Spin) Update() {
	s.Pitch.update()
	s.Yaw.update()
	s.Roll.update()
}

// Reset stops the spin and zeroes every angle.
func (s *Spin) Reset() {
	s.Pitch = newSpinAxis(s.fps)
	s.Yaw = newSpinAxis(s.fps)
	s.Roll = newSpinAxis(s.fps)
}

// Euler returns the current angles, wrapped to [0, 2π).
func (s *Spin) Euler() math3d.Euler {
	wrap := func(a float64) float64 { return mathutil.EuclideanModulo(a, 2*math.Pi) }
	return math3d.Euler{X: wrap(s.Pitch.Angle), Y: wrap(s.Yaw.Angle), Z: wrap(s.Roll.Angle), Order: math3d.OrderXYZ}
}

// Apply rotates v by the current angles. It returns v.
func (s *Spin) Apply(v *math3d.Vector3) *math3d.Vector3 {
	return v.ApplyEuler(s.Euler())
}
