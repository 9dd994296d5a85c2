// Shader debug tool - renders the spotlight pattern over a flat surface to a
// PNG file for inspection, either through the GPU shader or the CPU mirror.
//
// Usage: go run ./cmd/shaderdebug -out debug.png -theta 0.5 -center-x 2
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"math/rand"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"

	"github.com/pthm-cable/spotlight/config"
	"github.com/pthm-cable/spotlight/pattern"
	"github.com/pthm-cable/spotlight/renderer"
	"github.com/pthm-cable/spotlight/surface"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outPath := flag.String("out", "debug.png", "Output PNG path")
	width := flag.Int("width", 512, "Render width")
	height := flag.Int("height", 512, "Render height")
	cpu := flag.Bool("cpu", false, "Shade on the CPU instead of the GPU")
	theta := flag.Float64("theta", 0, "Rectangle rotation in radians")
	centerX := flag.Float64("center-x", 0, "Spotlight center X in surface space")
	centerZ := flag.Float64("center-z", 0, "Spotlight center Z in surface space")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	params := pattern.NewParams(
		ms2.Vec{X: float32(cfg.Pattern.Size[0]), Y: float32(cfg.Pattern.Size[1])},
		float32(cfg.Pattern.LineHalfWidth),
		pattern.Range{Min: float32(cfg.Pattern.SizeRange[0]), Max: float32(cfg.Pattern.SizeRange[1])},
		pattern.Range{Min: float32(cfg.Pattern.LineRange[0]), Max: float32(cfg.Pattern.LineRange[1])},
	)
	params.Theta = float32(*theta)
	params.Center = ms3.Vec{X: float32(*centerX), Z: float32(*centerZ)}

	// View covers the surface depth; width follows the image aspect
	view := viewport{
		halfZ: float32(cfg.Surface.Height) / 2,
	}
	view.halfX = view.halfZ * float32(*width) / float32(*height)

	if *cpu {
		err = renderCPU(*outPath, *width, *height, params, view)
	} else {
		err = renderGPU(*outPath, *width, *height, params, view, cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Pattern rendered to: %s (%dx%d)\n", *outPath, *width, *height)
}

// viewport is the surface-space rectangle shown in the image, centered on
// the origin. Image top is -Z.
type viewport struct {
	halfX, halfZ float32
}

// surfacePoint returns the surface-space position under the center of
// pixel (px, py).
func (v viewport) surfacePoint(px, py, width, height int) ms2.Vec {
	return ms2.Vec{
		X: (2*(float32(px)+0.5)/float32(width) - 1) * v.halfX,
		Y: (2*(float32(py)+0.5)/float32(height) - 1) * v.halfZ,
	}
}

func renderCPU(path string, width, height int, params *pattern.Params, view viewport) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			p := view.surfacePoint(px, py, width, height)
			img.SetRGBA(px, py, pattern.RGBA(pattern.Shade(p, params)))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding png: %w", err)
	}
	return f.Close()
}

func renderGPU(path string, width, height int, params *pattern.Params, view viewport, cfg *config.Config) error {
	trace := renderer.InstallTraceLog(slog.Default(), rl.LogWarning)

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(width), int32(height), "Shader Debug")
	defer rl.CloseWindow()

	shader := renderer.NewPatternShader(params)
	if err := shader.Init(trace); err != nil {
		return fmt.Errorf("compiling pattern shader: %w", err)
	}
	defer shader.Unload()

	// Flat grid large enough to fill the view
	mesh, err := surface.Generate(surface.Options{
		Width:     float64(view.halfX * 2),
		Height:    float64(view.halfZ * 2),
		SegmentsX: cfg.Surface.SegmentsX,
		SegmentsY: cfg.Surface.SegmentsY,
	}, rand.New(rand.NewSource(1)))
	if err != nil {
		return fmt.Errorf("generating surface: %w", err)
	}
	surf := renderer.NewSurface(mesh, ms3.Vec{}, rl.Blank)
	surf.Init(shader.Shader())
	defer surf.Unload()

	cam := rl.Camera3D{
		Position:   rl.NewVector3(0, 50, 0),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 0, -1),
		Fovy:       view.halfZ * 2,
		Projection: rl.CameraOrthographic,
	}

	// Create render texture
	target := rl.LoadRenderTexture(int32(width), int32(height))
	defer rl.UnloadRenderTexture(target)

	rl.BeginTextureMode(target)
	rl.ClearBackground(rl.Black)
	rl.BeginMode3D(cam)
	surf.Draw()
	rl.EndMode3D()
	rl.EndTextureMode()

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(target.Texture)
	rl.ImageFlipVertical(img)
	defer rl.UnloadImage(img)

	if !rl.ExportImage(*img, path) {
		return fmt.Errorf("exporting %s failed", path)
	}
	return nil
}
