// Package ui draws the parameter panel and HUD on top of the 3D scene.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	HUDText        rl.Color
	HUDDim         rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	SliderHeight   int32
	ValueWidth     int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 230},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.White,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.Color{R: 0, G: 220, B: 220, A: 255},
		HUDText:        rl.Color{R: 30, G: 30, B: 30, A: 255},
		HUDDim:         rl.Color{R: 70, G: 70, B: 70, A: 255},
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     90,
		SliderHeight:   16,
		ValueWidth:     40,
		FontSize:       12,
		HeaderFontSize: 16,
	}
}
