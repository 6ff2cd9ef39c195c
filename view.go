package pointviz

import "cogentcore.org/core/math32"

// Camera is a turntable camera orbiting a target point. Angles are in
// radians; FOV is the vertical field of view in degrees.
type Camera struct {
	Target   math32.Vector3
	Yaw      float32
	Pitch    float32
	Distance float32
	FOV      float32
	Near     float32
	Far      float32
}

// maxPitch keeps the camera just short of the poles so the up vector
// never degenerates.
const maxPitch = 1.55

// NewCamera returns a camera at the home view, framing a unit-scale scene.
func NewCamera() *Camera {
	c := &Camera{}
	c.Reset()
	return c
}

// Reset restores the home view.
func (c *Camera) Reset() {
	c.Target = math32.Vector3{}
	c.Yaw = 0.6
	c.Pitch = 0.4
	c.Distance = 3.5
	c.FOV = 45
	c.Near = 0.01
	c.Far = 100
}

// Eye returns the camera position in world space.
func (c *Camera) Eye() math32.Vector3 {
	cp := math32.Cos(c.Pitch)
	dir := math32.Vec3(
		cp*math32.Sin(c.Yaw),
		math32.Sin(c.Pitch),
		cp*math32.Cos(c.Yaw),
	)
	return c.Target.Add(dir.MulScalar(c.Distance))
}

// Orbit rotates the camera around the target.
func (c *Camera) Orbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch = math32.Clamp(c.Pitch+dPitch, -maxPitch, maxPitch)
}

// Zoom moves the camera toward (positive steps) or away from the target.
func (c *Camera) Zoom(steps float32) {
	c.Distance = math32.Clamp(c.Distance*math32.Pow(0.9, steps), c.Near*4, c.Far*0.5)
}

// Pan shifts the target in the view plane. dx and dy are in normalized
// screen units (a full-window drag pans about one view height).
func (c *Camera) Pan(dx, dy float32) {
	fwd := c.Target.Sub(c.Eye()).Normal()
	right := fwd.Cross(math32.Vec3(0, 1, 0)).Normal()
	up := right.Cross(fwd)
	c.Target = c.Target.
		Add(right.MulScalar(-dx * c.Distance)).
		Add(up.MulScalar(dy * c.Distance))
}

// ViewMatrix builds the world-to-camera matrix: look rotation at the
// target, camera transform inverted.
func (c *Camera) ViewMatrix() *math32.Matrix4 {
	eye := c.Eye()
	var lookq math32.Quat
	lookq.SetFromRotationMatrix(math32.NewLookAt(eye, c.Target, math32.Vec3(0, 1, 0)))
	var cam math32.Matrix4
	cam.SetTransform(eye, lookq, math32.Vec3(1, 1, 1))
	view, _ := cam.Inverse()
	return view
}

// ProjectionMatrix builds the perspective projection for the given aspect
// ratio (width / height).
func (c *Camera) ProjectionMatrix(aspect float32) *math32.Matrix4 {
	var proj math32.Matrix4
	proj.SetPerspective(c.FOV, aspect, c.Near, c.Far)
	return &proj
}

// ViewProjection returns projection * view for the given aspect ratio.
func (c *Camera) ViewProjection(aspect float32) *math32.Matrix4 {
	var vp math32.Matrix4
	vp.MulMatrices(c.ProjectionMatrix(aspect), c.ViewMatrix())
	return &vp
}

// ProjectPoint maps a world-space point through a combined view-projection
// matrix into window coordinates (origin top-left, y down, matching the
// UI). depth is the clip-space w, the distance along the view axis:
// smaller is closer. ok is false for points at or behind the camera
// plane.
func ProjectPoint(vp *math32.Matrix4, p math32.Vector3, w, h float32) (x, y, depth float32, ok bool) {
	clip := math32.Vector4FromVector3(p, 1).MulMatrix4(vp)
	if clip.W <= 0 {
		return 0, 0, 0, false
	}
	x = (clip.X/clip.W*0.5 + 0.5) * w
	y = (1 - (clip.Y/clip.W*0.5 + 0.5)) * h
	return x, y, clip.W, true
}
