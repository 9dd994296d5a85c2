// Package renderer owns the GPU side of the scene: the spotlight shader and
// the uploaded surface mesh.
package renderer

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/spotlight/pattern"
)

//go:embed shaders/pattern.vs
var patternVS string

//go:embed shaders/pattern.fs
var patternFS string

// PatternShader compiles the spotlight shader and uploads the parameter
// block as uniforms.
type PatternShader struct {
	shader rl.Shader
	params *pattern.Params

	centerLoc int32
	sizeLoc   int32
	lineLoc   int32
	thetaLoc  int32

	initialized bool
}

// NewPatternShader creates a shader bound to params.
func NewPatternShader(params *pattern.Params) *PatternShader {
	return &PatternShader{params: params}
}

// Init compiles the shader (must be called after raylib window is created).
// A shader that fails to compile or link is returned as an error carrying
// raylib's diagnostic lines from trace.
func (p *PatternShader) Init(trace *TraceLog) error {
	if p.initialized {
		return nil
	}

	trace.Reset()
	p.shader = rl.LoadShaderFromMemory(patternVS, patternFS)
	if p.shader.ID == 0 {
		return compileError("pattern shader did not load", trace)
	}

	p.centerLoc = rl.GetShaderLocation(p.shader, "center")
	p.sizeLoc = rl.GetShaderLocation(p.shader, "size")
	p.lineLoc = rl.GetShaderLocation(p.shader, "lineHalfWidth")
	p.thetaLoc = rl.GetShaderLocation(p.shader, "theta")

	// raylib falls back to its default shader on compile errors, which has
	// none of our uniforms.
	if p.centerLoc < 0 || p.sizeLoc < 0 || p.lineLoc < 0 || p.thetaLoc < 0 {
		rl.UnloadShader(p.shader)
		return compileError("pattern shader is missing uniforms", trace)
	}

	p.initialized = true
	p.Upload()
	return nil
}

// Upload copies the current parameters into the shader's uniforms.
func (p *PatternShader) Upload() {
	if !p.initialized {
		return
	}
	c, s := p.params.Center, p.params.Size
	rl.SetShaderValue(p.shader, p.centerLoc, []float32{c.X, c.Y, c.Z}, rl.ShaderUniformVec3)
	rl.SetShaderValue(p.shader, p.sizeLoc, []float32{s.X, s.Y}, rl.ShaderUniformVec2)
	rl.SetShaderValue(p.shader, p.lineLoc, []float32{p.params.LineHalfWidth}, rl.ShaderUniformFloat)
	rl.SetShaderValue(p.shader, p.thetaLoc, []float32{p.params.Theta}, rl.ShaderUniformFloat)
}

// Shader returns the compiled shader.
func (p *PatternShader) Shader() rl.Shader {
	return p.shader
}

// Unload frees resources.
func (p *PatternShader) Unload() {
	if p.initialized {
		rl.UnloadShader(p.shader)
		p.initialized = false
	}
}

func compileError(msg string, trace *TraceLog) error {
	lines := trace.Recent()
	if len(lines) == 0 {
		return errors.New(msg)
	}
	return fmt.Errorf("%s:\n%s", msg, strings.Join(lines, "\n"))
}
