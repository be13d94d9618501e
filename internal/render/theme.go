package render

import (
	"fmt"
	"image/color"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare color.RGBA
	DarkSquare  color.RGBA
	AttackColor color.RGBA
	EnPassant   color.RGBA
	WhitePiece  color.RGBA
	BlackPiece  color.RGBA
	Outline     color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare: color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:  color.RGBA{181, 136, 99, 255},  // Brown
		AttackColor: color.RGBA{255, 100, 100, 90},  // Red wash
		EnPassant:   color.RGBA{130, 151, 105, 200}, // Green dot
		WhitePiece:  color.RGBA{250, 250, 250, 255},
		BlackPiece:  color.RGBA{30, 30, 30, 255},
		Outline:     color.RGBA{20, 20, 20, 255},
	}
}

// svgColor formats c as an SVG hex color.
func svgColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// svgOpacity returns c's alpha as an SVG opacity value.
func svgOpacity(c color.RGBA) float64 {
	return float64(c.A) / 255
}
