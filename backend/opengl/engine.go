package opengl

import (
	"fmt"
	"unsafe"

	"cogentcore.org/core/math32"
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/pointviz"
)

// SceneEngine builds point cloud draw programs. It implements
// pointviz.Engine on top of the same shader helpers the UI renderer uses.
type SceneEngine struct {
	width  int
	height int
}

// Point vertex shader source.
// gl_PointSize projects the world-space radius to pixels: the projection's
// [1][1] element is cot(fov/2), so radius * proj[1][1] * viewportHeight
// spans the point at w=1 and shrinks with clip-space w.
const pointVertexShaderSource = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in float aValue;

out float vValue;

uniform mat4 view;
uniform mat4 projection;
uniform float pointRadius;
uniform float viewportHeight;

void main() {
    gl_Position = projection * view * vec4(aPos, 1.0);
    gl_PointSize = pointRadius * projection[1][1] * viewportHeight / max(gl_Position.w, 1e-6);
    vValue = aValue;
}
` + "\x00"

// Point fragment shader source.
// Points are drawn as circular sprites (square corners discard). Color is
// either the flat uniform or the colormap sampled at the value's position
// in [rangeLow, rangeHigh]. A zero-width range samples texel 0.
const pointFragmentShaderSource = `
#version 410 core
in float vValue;

out vec4 FragColor;

uniform sampler2D colormap;
uniform float rangeLow;
uniform float rangeHigh;
uniform vec4 flatColor;
uniform bool useFlat;

void main() {
    vec2 d = gl_PointCoord * 2.0 - 1.0;
    if (dot(d, d) > 1.0) {
        discard;
    }
    if (useFlat) {
        FragColor = flatColor;
        return;
    }
    float span = rangeHigh - rangeLow;
    float t = 0.0;
    if (span != 0.0) {
        t = clamp((vValue - rangeLow) / span, 0.0, 1.0);
    }
    FragColor = texture(colormap, vec2(t, 0.5));
}
` + "\x00"

// NewSceneEngine creates a scene engine for the given viewport size.
func NewSceneEngine(width, height int) *SceneEngine {
	return &SceneEngine{width: width, height: height}
}

// Resize updates the viewport size used for point sizing.
func (e *SceneEngine) Resize(width, height int) {
	e.width = width
	e.height = height
}

// CreatePointProgram compiles the point shader and uploads the spec's
// geometry. Specs with values and a color table draw through the colormap;
// specs without draw the flat color set per frame.
func (e *SceneEngine) CreatePointProgram(spec pointviz.PointProgramSpec) (pointviz.PointProgram, error) {
	shader, err := createShaderProgram(pointVertexShaderSource, pointFragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("point shader: %w", err)
	}

	p := &pointProgram{
		engine: e,
		shader: shader,
		count:  len(spec.Positions),
		flat:   spec.Values == nil || spec.Table == nil,
	}

	p.viewLoc = gl.GetUniformLocation(shader, gl.Str("view\x00"))
	p.projLoc = gl.GetUniformLocation(shader, gl.Str("projection\x00"))
	p.radiusLoc = gl.GetUniformLocation(shader, gl.Str("pointRadius\x00"))
	p.viewportLoc = gl.GetUniformLocation(shader, gl.Str("viewportHeight\x00"))
	p.cmapLoc = gl.GetUniformLocation(shader, gl.Str("colormap\x00"))
	p.rangeLoLoc = gl.GetUniformLocation(shader, gl.Str("rangeLow\x00"))
	p.rangeHiLoc = gl.GetUniformLocation(shader, gl.Str("rangeHigh\x00"))
	p.flatColorLoc = gl.GetUniformLocation(shader, gl.Str("flatColor\x00"))
	p.useFlatLoc = gl.GetUniformLocation(shader, gl.Str("useFlat\x00"))

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	// Position attribute (vec3, tightly packed)
	gl.GenBuffers(1, &p.posVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.posVBO)
	if p.count > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, p.count*int(unsafe.Sizeof(math32.Vector3{})),
			gl.Ptr(spec.Positions), gl.STATIC_DRAW)
	}
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(0)

	// Value attribute (float, absent for flat programs)
	if !p.flat && len(spec.Values) > 0 {
		vals := make([]float32, len(spec.Values))
		for i, v := range spec.Values {
			vals[i] = float32(v)
		}
		gl.GenBuffers(1, &p.valVBO)
		gl.BindBuffer(gl.ARRAY_BUFFER, p.valVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(vals)*4, gl.Ptr(vals), gl.STATIC_DRAW)
		gl.VertexAttribPointerWithOffset(1, 1, gl.FLOAT, false, 0, 0)
		gl.EnableVertexAttribArray(1)
	}

	gl.BindVertexArray(0)

	if !p.flat {
		p.cmapTex = createColormapTexture(spec.Table)
	}

	return p, nil
}

// pointProgram is one compiled point cloud program with its geometry
// buffers and baked colormap texture. Per-frame uniforms are cached by the
// setters and uploaded in Draw, so GL state changes stay in one place.
type pointProgram struct {
	engine *SceneEngine
	shader uint32
	vao    uint32
	posVBO uint32
	valVBO uint32

	cmapTex uint32
	count   int
	flat    bool

	viewLoc      int32
	projLoc      int32
	radiusLoc    int32
	viewportLoc  int32
	cmapLoc      int32
	rangeLoLoc   int32
	rangeHiLoc   int32
	flatColorLoc int32
	useFlatLoc   int32

	view      math32.Matrix4
	proj      math32.Matrix4
	radius    float32
	rangeLo   float32
	rangeHi   float32
	flatColor [4]float32
}

// SetView sets the view and projection matrices for the next draw.
func (p *pointProgram) SetView(view, proj *math32.Matrix4) {
	p.view = *view
	p.proj = *proj
}

// SetPointRadius sets the world-space point radius.
func (p *pointProgram) SetPointRadius(r float32) {
	p.radius = r
}

// SetRange sets the colormap window. Values at lo sample the low end of
// the map, values at hi the high end; outside values clamp.
func (p *pointProgram) SetRange(lo, hi float32) {
	p.rangeLo = lo
	p.rangeHi = hi
}

// SetFlatColor sets the packed RGBA color used when the program has no
// scalar values.
func (p *pointProgram) SetFlatColor(c uint32) {
	p.flatColor = [4]float32{
		float32(c&0xFF) / 255,
		float32((c>>8)&0xFF) / 255,
		float32((c>>16)&0xFF) / 255,
		float32((c>>24)&0xFF) / 255,
	}
}

// Draw uploads the cached uniforms and renders count points with depth
// testing on.
func (p *pointProgram) Draw(count int) {
	if count <= 0 || p.count == 0 {
		return
	}
	if count > p.count {
		count = p.count
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	gl.UseProgram(p.shader)
	gl.UniformMatrix4fv(p.viewLoc, 1, false, &p.view[0])
	gl.UniformMatrix4fv(p.projLoc, 1, false, &p.proj[0])
	gl.Uniform1f(p.radiusLoc, p.radius)
	gl.Uniform1f(p.viewportLoc, float32(p.engine.height))

	if p.flat {
		gl.Uniform1i(p.useFlatLoc, 1)
		gl.Uniform4f(p.flatColorLoc, p.flatColor[0], p.flatColor[1], p.flatColor[2], p.flatColor[3])
	} else {
		gl.Uniform1i(p.useFlatLoc, 0)
		gl.Uniform1f(p.rangeLoLoc, p.rangeLo)
		gl.Uniform1f(p.rangeHiLoc, p.rangeHi)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, p.cmapTex)
		gl.Uniform1i(p.cmapLoc, 0)
	}

	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.BindVertexArray(0)
}

// Destroy releases the program's GL resources.
func (p *pointProgram) Destroy() {
	if p.cmapTex != 0 {
		gl.DeleteTextures(1, &p.cmapTex)
	}
	if p.valVBO != 0 {
		gl.DeleteBuffers(1, &p.valVBO)
	}
	if p.posVBO != 0 {
		gl.DeleteBuffers(1, &p.posVBO)
	}
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	if p.shader != 0 {
		gl.DeleteProgram(p.shader)
	}
}

// createColormapTexture uploads a baked color table as a one-row RGBA
// texture, linearly filtered and clamped at the ends.
func createColormapTexture(table *pointviz.ColorTable) uint32 {
	px := table.Pixels()
	width := int32(len(px) / 4)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, width, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(px))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex
}
