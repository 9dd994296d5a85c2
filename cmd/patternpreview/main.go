// Pattern preview tool - interactive top-down view of the spotlight pattern
// shaded on the CPU, with sliders for every shader parameter.
//
// Usage: go run ./cmd/patternpreview
package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"github.com/chewxy/math32"
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/soypat/glgl/math/ms2"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/spotlight/config"
	"github.com/pthm-cable/spotlight/pattern"
	"github.com/pthm-cable/spotlight/ui"
)

const (
	windowWidth  = 1000
	windowHeight = 600
	previewSize  = 512
	gridSize     = 256
	panelWidth   = windowWidth - previewSize - 30
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rl.InitWindow(windowWidth, windowHeight, "Pattern Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams(cfg)
	half := float32(cfg.Surface.Width) / 2
	centerRange := pattern.Range{Min: -half, Max: half}
	thetaRange := pattern.Range{Min: -math32.Pi, Max: math32.Pi}

	img := rl.GenImageColor(gridSize, gridSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	pixels := make([]color.RGBA, gridSize*gridSize)
	r := ui.NewRenderer()
	needsRegen := true

	for !rl.WindowShouldClose() {
		if needsRegen {
			shadePreview(pixels, params, half)
			rl.UpdateTexture(texture, pixels)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Draw preview
		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: gridSize, Height: gridSize},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Surface %.0f x %.0f, top-down, -Z up", 2*half, 2*half), 15, previewSize+25, 16, rl.DarkGray)

		// Control panel
		panelX := int32(previewSize + 20)
		panelY := int32(10)
		r.DrawPanel(panelX-5, panelY-5, panelWidth+10, 280)
		panelY = r.DrawSectionHeader(panelX, panelY, "Spotlight Parameters")

		var v float32
		v, panelY = r.DrawSlider(panelX, panelY, panelWidth, "size.x", params.Size.X, params.SizeRange)
		if v != params.Size.X {
			params.SetSizeX(v)
			needsRegen = true
		}
		v, panelY = r.DrawSlider(panelX, panelY, panelWidth, "size.y", params.Size.Y, params.SizeRange)
		if v != params.Size.Y {
			params.SetSizeY(v)
			needsRegen = true
		}
		v, panelY = r.DrawSlider(panelX, panelY, panelWidth, "lineHalfWidth", params.LineHalfWidth, params.LineRange)
		if v != params.LineHalfWidth {
			params.SetLineHalfWidth(v)
			needsRegen = true
		}
		v, panelY = r.DrawSlider(panelX, panelY, panelWidth, "theta", params.Theta, thetaRange)
		if v != params.Theta {
			params.Theta = v
			needsRegen = true
		}
		v, panelY = r.DrawSlider(panelX, panelY, panelWidth, "center.x", params.Center.X, centerRange)
		if v != params.Center.X {
			params.Center.X = v
			needsRegen = true
		}
		v, panelY = r.DrawSlider(panelX, panelY, panelWidth, "center.z", params.Center.Z, centerRange)
		if v != params.Center.Z {
			params.Center.Z = v
			needsRegen = true
		}
		panelY += 10

		if gui.Button(rl.Rectangle{X: float32(panelX), Y: float32(panelY), Width: 120, Height: 30}, "Reset All") {
			params = defaultParams(cfg)
			needsRegen = true
		}
		panelY += 60

		// Output YAML
		rl.DrawText("YAML Config:", panelX, panelY, 16, rl.DarkGray)
		panelY += 25
		snippet := patternYAML(params)
		rl.DrawText(snippet, panelX, panelY, 14, rl.Gray)

		// Instructions
		rl.DrawText("Press C to copy YAML to clipboard", panelX, windowHeight-30, 12, rl.Gray)

		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(snippet)
		}

		rl.EndDrawing()
	}
}

func defaultParams(cfg *config.Config) *pattern.Params {
	return pattern.NewParams(
		ms2.Vec{X: float32(cfg.Pattern.Size[0]), Y: float32(cfg.Pattern.Size[1])},
		float32(cfg.Pattern.LineHalfWidth),
		pattern.Range{Min: float32(cfg.Pattern.SizeRange[0]), Max: float32(cfg.Pattern.SizeRange[1])},
		pattern.Range{Min: float32(cfg.Pattern.LineRange[0]), Max: float32(cfg.Pattern.LineRange[1])},
	)
}

// shadePreview fills pixels with the pattern over a square of the given
// half extent centered on the origin.
func shadePreview(pixels []color.RGBA, params *pattern.Params, half float32) {
	for y := 0; y < gridSize; y++ {
		z := (2*(float32(y)+0.5)/gridSize - 1) * half
		for x := 0; x < gridSize; x++ {
			px := (2*(float32(x)+0.5)/gridSize - 1) * half
			pixels[y*gridSize+x] = pattern.RGBA(pattern.Shade(ms2.Vec{X: px, Y: z}, params))
		}
	}
}

// patternYAML renders the adjustable parameters as a config.yaml snippet.
// Theta and center are runtime state and are not part of the config.
func patternYAML(params *pattern.Params) string {
	snippet := struct {
		Pattern config.PatternConfig `yaml:"pattern"`
	}{
		Pattern: config.PatternConfig{
			Size:          [2]float64{round2(params.Size.X), round2(params.Size.Y)},
			LineHalfWidth: round2(params.LineHalfWidth),
			SizeRange:     [2]float64{float64(params.SizeRange.Min), float64(params.SizeRange.Max)},
			LineRange:     [2]float64{round2(params.LineRange.Min), round2(params.LineRange.Max)},
		},
	}
	out, err := yaml.Marshal(snippet)
	if err != nil {
		return err.Error()
	}
	return string(out)
}

func round2(v float32) float64 {
	return float64(int(v*100+0.5)) / 100
}
