// Command gen renders every widget with sample data, captures framebuffer pixels,
// and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"cogentcore.org/core/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/pointviz"
	"github.com/go-theft-auto/pointviz/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string                      // filename without extension
	width  int                         // viewport width
	height int                         // viewport height
	draw   func(ctx *pointviz.Context) // widget drawing function
	frames int                         // extra frames to render (0 = default 2)
	mouse  pointviz.Vec2               // simulated mouse position (popup anchors)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("ui renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots(renderer)

	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only update the renderer projection — do NOT call window.SetSize because
	// GLFW processes resizes asynchronously, causing framebuffer/scissor mismatches.
	// The hidden window stays at 800×600 (larger than every screenshot).
	renderer.Resize(s.width, s.height)

	// Fresh viewer per screenshot to avoid widget state leaking between captures.
	viewer := pointviz.New(renderer, nil, pointviz.WithStyle(pointviz.SlateStyle()))

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	for i := 0; i < frames; i++ {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.09, 0.10, 0.12, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		input := &pointviz.InputState{MouseX: s.mouse.X, MouseY: s.mouse.Y}
		displaySize := pointviz.Vec2{X: float32(s.width), Y: float32(s.height)}
		ctx := viewer.Begin(input, displaySize, 1.0/60.0)
		s.draw(ctx)
		if err := viewer.End(); err != nil {
			return err
		}
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	// Create image
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	// Encode JPEG
	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of all widget screenshots to generate.
// The renderer seeds a throwaway viewer whose cloud and quantities back the
// domain screenshots; their widgets draw into each capture's own context.
func buildScreenshots(renderer *opengl.Renderer) []screenshot {
	// Shared state for widgets that need pointers.
	var (
		checked     = true
		unchecked   = false
		radioIdx    = 1
		radioHIdx   = 0
		sliderFloat = float32(0.65)
		sliderInt   = 7
		comboIdx    = 1
		rangeLo     = -0.42
		rangeHi     = 1.37
		sectionOpen = true
	)

	cloud, quantity := demoQuantity(renderer)

	cmapNames := pointviz.ColorMapNames()
	if len(cmapNames) > 6 {
		cmapNames = cmapNames[:6]
	}
	previews := make([]*pointviz.ColorTable, len(cmapNames))
	for i, name := range cmapNames {
		previews[i], _ = pointviz.BakeColorMap(name)
	}

	return []screenshot{
		{
			name: "text", width: 400, height: 180,
			draw: func(ctx *pointviz.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.VStack(pointviz.Gap(6))(func() {
					ctx.Text("Plain text")
					ctx.TextColored("Colored text (yellow)", pointviz.ColorYellow)
					ctx.TextDisabled("Disabled text")
					ctx.TextWrapped("This is wrapped text that will break across lines when it reaches the edge of the available width.", 380)
					ctx.LabelText("position", "(0.61, -0.12, 0.43)")
				})
			},
		},
		{
			name: "button", width: 400, height: 120,
			draw: func(ctx *pointviz.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.VStack(pointviz.Gap(8))(func() {
					ctx.Button("Standard Button")
					ctx.HStack(pointviz.Gap(8))(func() {
						ctx.SmallButton("Options")
						ctx.SmallButton("Reset")
						ctx.SmallButton("Clear")
					})
				})
			},
		},
		{
			name: "checkbox", width: 300, height: 80,
			draw: func(ctx *pointviz.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.VStack(pointviz.Gap(6))(func() {
					ctx.Checkbox("Enabled overlay", &checked)
					ctx.Checkbox("Disabled overlay", &unchecked)
				})
			},
		},
		{
			name: "radio_button", width: 300, height: 120,
			draw: func(ctx *pointviz.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.RadioGroup("Data kind", &radioIdx, []string{"Standard", "Symmetric", "Magnitude"})
			},
		},
		{
			name: "radio_group_horizontal", width: 450, height: 80,
			draw: func(ctx *pointviz.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.RadioGroupHorizontal("Kind", &radioHIdx, []string{"Standard", "Symmetric", "Magnitude"})
			},
		},
		{
			name: "slider", width: 400, height: 100,
			draw: func(ctx *pointviz.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.VStack(pointviz.Gap(6))(func() {
					ctx.SliderFloat("Radius", &sliderFloat, 0, 1)
					ctx.SliderInt("Level", &sliderInt, 0, 10)
				})
			},
		},
		{
			name: "range_slider", width: 420, height: 80,
			draw: func(ctx *pointviz.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.RangeSliderFloat("demo_range", &rangeLo, &rangeHi, -2, 2)
			},
		},
		{
			name: "combobox", width: 420, height: 80,
			draw: func(ctx *pointviz.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.ComboBox("Colormap", &comboIdx, cmapNames,
					pointviz.WithColorPreviews(previews))
			},
		},
		{
			name: "scalar_quantity", width: 360, height: 260, frames: 3,
			draw: func(ctx *pointviz.Context) {
				ctx.SetCursorPos(12, 12)
				quantity.BuildUI(ctx)
			},
		},
		{
			name: "pick_readout", width: 360, height: 160,
			draw: func(ctx *pointviz.Context) {
				ctx.Panel("Selection", pointviz.Width(330))(func() {
					cloud.BuildPickUI(ctx, 17)
				})
			},
		},
		{
			name: "section", width: 400, height: 200, frames: 3,
			draw: func(ctx *pointviz.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.VStack(pointviz.Gap(4))(func() {
					ctx.Section("Point cloud", pointviz.Open(&sectionOpen))(func() {
						ctx.Text("8000 points")
						ctx.Text("3 overlays")
					})
					ctx.Section("Camera")(func() {
						ctx.Text("Hidden by default")
					})
				})
			},
		},
		{
			name: "panel", width: 350, height: 250,
			draw: func(ctx *pointviz.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.Panel("Controls", pointviz.Width(320), pointviz.Padding(12))(func() {
					ctx.Text("Registered structures")
					ctx.Separator()
					ctx.LabelText("clouds", "2")
					ctx.LabelText("overlays", "3")
					ctx.Button("Reset camera")
				})
			},
		},
		{
			name: "popup", width: 420, height: 220, frames: 3,
			mouse: pointviz.Vec2{X: 180, Y: 60},
			draw: func(ctx *pointviz.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.Panel("height (scalar)", pointviz.Width(390))(func() {
					ctx.Row(func() {
						ctx.Checkbox("height (scalar)", &checked)
						ctx.SmallButton("Options")
					})
				})
				if !ctx.IsPopupOpen("shot_options") {
					ctx.OpenPopup("shot_options")
				}
				ctx.PopupMenu("shot_options", []string{"Reset colormap range"})
			},
		},
		{
			name: "collapsing_header", width: 400, height: 150,
			draw: func(ctx *pointviz.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.VStack(pointviz.Gap(4))(func() {
					if ctx.CollapsingHeader("Open Header") {
						ctx.Text("  Visible content inside header")
					}
					ctx.CollapsingHeader("Closed Header")
				})
			},
		},
		{
			name: "toast", width: 500, height: 250,
			draw: func(ctx *pointviz.Context) {
				ts := &pointviz.ToastState{
					Toasts: []pointviz.ToastNotification{
						{Message: "Cloud registered", Type: pointviz.ToastTypeInfo, Duration: 3.0, Elapsed: 0.3},
						{Message: "Colormap range reset", Type: pointviz.ToastTypeSuccess, Duration: 3.0, Elapsed: 0.3},
						{Message: "values length 999 does not match 1000 points", Type: pointviz.ToastTypeWarning, Duration: 3.0, Elapsed: 0.3},
						{Message: "point shader: compilation failed", Type: pointviz.ToastTypeError, Duration: 3.0, Elapsed: 0.3},
					},
				}
				ctx.DrawToasts(ts)
			},
		},
		{
			name: "hint_footer", width: 500, height: 60,
			draw: func(ctx *pointviz.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.HintFooter(
					pointviz.Hint(pointviz.HintKeyUpDown, "Navigate"),
					pointviz.Hint(pointviz.HintKeyEnter, "Select"),
					pointviz.Hint(pointviz.HintKeyEscape, "Close"),
				)
			},
		},
		{
			name: "separator", width: 400, height: 80,
			draw: func(ctx *pointviz.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.VStack(pointviz.Gap(4))(func() {
					ctx.Text("Above separator")
					ctx.Separator()
					ctx.Text("Below separator")
				})
			},
		},
		{
			name: "layout", width: 500, height: 200,
			draw: func(ctx *pointviz.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.VStack(pointviz.Gap(8))(func() {
					ctx.Text("VStack + HStack demo:")
					ctx.HStack(pointviz.Gap(8))(func() {
						ctx.Button("Left")
						ctx.Button("Center")
						ctx.Button("Right")
					})
					ctx.Row(func() {
						ctx.Text("Row A")
						ctx.Text("Row B")
						ctx.Text("Row C")
					})
				})
			},
		},
	}
}

// demoQuantity builds a small cloud with an enabled scalar overlay for the
// domain screenshots. The seed viewer never draws a frame; it only owns
// the registries.
func demoQuantity(renderer *opengl.Renderer) (*pointviz.PointCloud, *pointviz.ScalarQuantity) {
	seed := pointviz.New(renderer, nil, pointviz.WithStyle(pointviz.SlateStyle()))

	n := 2000
	positions := make([]math32.Vector3, n)
	values := make([]float64, n)
	for i := range positions {
		t := float64(i) / float64(n)
		a := t * 2 * math.Pi
		positions[i] = math32.Vec3(
			float32(math.Cos(a*3))*0.8,
			float32(math.Sin(a*5))*0.4,
			float32(math.Sin(a*2))*0.8,
		)
		values[i] = math.Sin(a*5) * 0.4
	}

	cloud := seed.RegisterPointCloud("demo", positions)
	q, err := cloud.AddScalarQuantity("height", values, pointviz.DataStandard)
	if err != nil {
		panic(err)
	}
	q.SetEnabled(true)
	return cloud, q
}
