// Package render draws positions as raster images.
package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/hailam/chesspos/internal/board"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	defaultSquareSize = 64
	minSquareSize     = 16
)

// Options controls how a position is drawn.
type Options struct {
	SquareSize  int  // pixels per square; 0 means the default
	Flip        bool // draw from Black's side
	ShowAttacks bool // wash the squares attacked by the side not to move
	Theme       *Theme
}

func (o Options) withDefaults() (Options, error) {
	if o.SquareSize == 0 {
		o.SquareSize = defaultSquareSize
	}
	if o.SquareSize < minSquareSize {
		return o, fmt.Errorf("render: square size %d below %d", o.SquareSize, minSquareSize)
	}
	if o.Theme == nil {
		o.Theme = DefaultTheme()
	}
	return o, nil
}

// SquareToPixel returns the top-left pixel of sq.
func SquareToPixel(sq board.Square, squareSize int, flip bool) (int, int) {
	file, rank := sq.File(), sq.Rank()
	if flip {
		return (7 - file) * squareSize, rank * squareSize
	}
	return file * squareSize, (7 - rank) * squareSize // Flip so rank 1 is at bottom
}

// PixelToSquare converts image coordinates to a board square.
func PixelToSquare(x, y, squareSize int, flip bool) board.Square {
	size := 8 * squareSize
	if x < 0 || x >= size || y < 0 || y >= size {
		return board.NoSquare
	}
	file, rank := x/squareSize, 7-y/squareSize
	if flip {
		file, rank = 7-file, 7-rank
	}
	return board.NewSquare(file, rank)
}

// Board draws pos into a new image of 8*SquareSize pixels per side.
func Board(pos *board.Position, opts Options) (*image.RGBA, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	size := 8 * opts.SquareSize

	icon, err := oksvg.ReadIconStream(strings.NewReader(boardSVG(pos, opts)))
	if err != nil {
		return nil, fmt.Errorf("render: parse board svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	if err := drawLetters(img, pos, opts); err != nil {
		return nil, err
	}
	return img, nil
}

// WritePNG draws pos and encodes it as PNG.
func WritePNG(w io.Writer, pos *board.Position, opts Options) error {
	img, err := Board(pos, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// boardSVG describes squares, overlays and piece discs as an SVG document.
func boardSVG(pos *board.Position, opts Options) string {
	s := float64(opts.SquareSize)
	theme := opts.Theme

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		8*opts.SquareSize, 8*opts.SquareSize, 8*opts.SquareSize, 8*opts.SquareSize)

	var attacked board.Bitboard
	if opts.ShowAttacks {
		attacked = pos.Attacks(pos.SideToMove().Other())
	}

	for sq := board.A1; sq <= board.H8; sq++ {
		x, y := SquareToPixel(sq, opts.SquareSize, opts.Flip)

		c := theme.LightSquare
		if (sq.File()+sq.Rank())%2 == 0 {
			c = theme.DarkSquare
		}
		fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%g" height="%g" fill="%s"/>`, x, y, s, s, svgColor(c))

		if attacked.IsSet(sq) {
			fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%g" height="%g" fill="%s" fill-opacity="%.3f"/>`,
				x, y, s, s, svgColor(theme.AttackColor), svgOpacity(theme.AttackColor))
		}
	}

	if ep := pos.EnPassant(); ep != board.NoSquare {
		x, y := SquareToPixel(ep, opts.SquareSize, opts.Flip)
		fmt.Fprintf(&sb, `<circle cx="%g" cy="%g" r="%g" fill="%s" fill-opacity="%.3f"/>`,
			float64(x)+s/2, float64(y)+s/2, s/6, svgColor(theme.EnPassant), svgOpacity(theme.EnPassant))
	}

	for sq := board.A1; sq <= board.H8; sq++ {
		p := pos.PieceAt(sq)
		if p == board.NoPiece {
			continue
		}
		x, y := SquareToPixel(sq, opts.SquareSize, opts.Flip)
		fill := theme.WhitePiece
		if p.Color() == board.Black {
			fill = theme.BlackPiece
		}
		fmt.Fprintf(&sb, `<circle cx="%g" cy="%g" r="%g" fill="%s" stroke="%s" stroke-width="%g"/>`,
			float64(x)+s/2, float64(y)+s/2, s*0.4, svgColor(fill), svgColor(theme.Outline), s/32)
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

// drawLetters writes each piece's letter centered on its disc.
func drawLetters(img *image.RGBA, pos *board.Position, opts Options) error {
	face, err := faceWithSize(float64(opts.SquareSize) / 2)
	if err != nil {
		return err
	}
	defer face.Close()

	ascent := face.Metrics().Ascent
	capHeight := face.Metrics().CapHeight
	if capHeight == 0 {
		capHeight = ascent
	}

	for sq := board.A1; sq <= board.H8; sq++ {
		p := pos.PieceAt(sq)
		if p == board.NoPiece {
			continue
		}

		ink := opts.Theme.BlackPiece
		if p.Color() == board.Black {
			ink = opts.Theme.WhitePiece
		}
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(ink),
			Face: face,
		}

		letter := strings.ToUpper(p.String())
		x, y := SquareToPixel(sq, opts.SquareSize, opts.Flip)
		half := fixed.I(opts.SquareSize / 2)
		d.Dot = fixed.Point26_6{
			X: fixed.I(x) + half - d.MeasureString(letter)/2,
			Y: fixed.I(y) + half + capHeight/2,
		}
		d.DrawString(letter)
	}
	return nil
}
