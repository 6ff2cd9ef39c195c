// Example renders a demo point cloud with scalar overlays.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example creates a GLFW window, registers a torus-shaped point cloud
// with three scalar overlays (height, winding, distance) plus a flat
// scatter cloud, and runs the viewer loop. Left-drag orbits, right-drag
// pans, the wheel zooms, a click picks a point, Tab toggles the controls
// panel and R resets the camera.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"runtime"

	"cogentcore.org/core/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/pointviz"
	"github.com/go-theft-auto/pointviz/backend/opengl"
)

const (
	windowWidth  = 1024
	windowHeight = 720
	windowTitle  = "pointviz example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()
	pointviz.SetVerbose(*verbose)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// Create the UI renderer, the scene engine and the input adapter.
	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("ui renderer: %w", err)
	}
	defer renderer.Delete()

	engine := opengl.NewSceneEngine(windowWidth, windowHeight)
	inputAdapter := opengl.NewGLFWInputAdapter(window)

	viewer := pointviz.New(renderer, engine, pointviz.WithStyle(pointviz.SlateStyle()))

	registerDemoScene(viewer)
	viewer.Toasts().ToastInfo("Tab toggles controls, R resets the camera")

	// Main loop.
	lastW, lastH := windowWidth, windowHeight
	for !window.ShouldClose() {
		glfw.PollEvents()
		input := inputAdapter.Update()

		w, h := window.GetFramebufferSize()
		if w != lastW || h != lastH {
			viewer.Resize(w, h)
			engine.Resize(w, h)
			lastW, lastH = w, h
		}
		gl.Viewport(0, 0, int32(w), int32(h))

		// Route input before the frame starts: hotkeys and panels first,
		// then camera and picking with whatever the UI did not capture.
		viewer.HandleUIInput(input)
		viewer.HandleSceneInput(input, float32(w), float32(h))

		gl.ClearColor(0.09, 0.10, 0.12, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		aspect := float32(1)
		if h > 0 {
			aspect = float32(w) / float32(h)
		}
		viewer.DrawScene(aspect)

		displaySize := pointviz.Vec2{X: float32(w), Y: float32(h)}
		viewer.Begin(input, displaySize, 1.0/60.0)
		viewer.DrawUI()
		if err := viewer.End(); err != nil {
			return fmt.Errorf("ui render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

// registerDemoScene fills the viewer with a torus cloud carrying one
// overlay of each data kind, and a small flat-colored scatter cloud.
func registerDemoScene(v *pointviz.Viewer) {
	rng := rand.New(rand.NewSource(7))

	positions := torusPoints(8000, rng)
	torus := v.RegisterPointCloud("torus", positions)

	height := make([]float64, len(positions))
	winding := make([]float64, len(positions))
	distance := make([]float64, len(positions))
	for i, p := range positions {
		height[i] = float64(p.Y)
		winding[i] = math.Sin(3 * math.Atan2(float64(p.Z), float64(p.X)))
		distance[i] = float64(p.Length())
	}

	if q := addScalar(v, torus, "height", height, pointviz.DataStandard); q != nil {
		q.SetEnabled(true)
	}
	addScalar(v, torus, "winding", winding, pointviz.DataSymmetric)
	addScalar(v, torus, "distance", distance, pointviz.DataMagnitude)

	scatter := v.RegisterPointCloud("scatter", gaussianPoints(1500, 0.35, rng))
	scatter.SetBaseColor(pointviz.RGBA(120, 180, 240, 255))
}

// addScalar attaches a scalar overlay, reporting instead of failing when
// the values do not match the cloud.
func addScalar(v *pointviz.Viewer, pc *pointviz.PointCloud, name string, values []float64, kind pointviz.DataKind) *pointviz.ScalarQuantity {
	q, err := pc.AddScalarQuantity(name, values, kind)
	if err != nil {
		v.ReportError(err)
	}
	return q
}

// torusPoints samples n points uniformly in angle over a torus surface.
func torusPoints(n int, rng *rand.Rand) []math32.Vector3 {
	const major, minor = 0.7, 0.25
	pts := make([]math32.Vector3, n)
	for i := range pts {
		u := rng.Float32() * 2 * math.Pi
		t := rng.Float32() * 2 * math.Pi
		ring := major + minor*math32.Cos(t)
		pts[i] = math32.Vec3(
			ring*math32.Cos(u),
			minor*math32.Sin(t),
			ring*math32.Sin(u),
		)
	}
	return pts
}

// gaussianPoints samples n points from an isotropic gaussian above the
// torus.
func gaussianPoints(n int, sigma float32, rng *rand.Rand) []math32.Vector3 {
	pts := make([]math32.Vector3, n)
	for i := range pts {
		pts[i] = math32.Vec3(
			float32(rng.NormFloat64())*sigma,
			float32(rng.NormFloat64())*sigma+0.9,
			float32(rng.NormFloat64())*sigma,
		)
	}
	return pts
}
