package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

var (
	boldOnce sync.Once
	boldFont *opentype.Font
	boldErr  error
)

// faceWithSize returns a bold Go font face of the given pixel size.
func faceWithSize(size float64) (font.Face, error) {
	boldOnce.Do(func() {
		boldFont, boldErr = opentype.Parse(gobold.TTF)
	})
	if boldErr != nil {
		return nil, fmt.Errorf("render: load font: %w", boldErr)
	}

	return opentype.NewFace(boldFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
