package render

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Palette holds the card colours.
type Palette struct {
	Background colorful.Color
	Border     colorful.Color
	Title      colorful.Color
	Label      colorful.Color
	Ink        colorful.Color
}

// DefaultPalette is a white slip with red accents.
func DefaultPalette() Palette {
	return Palette{
		Background: mustHex("#ffffff"),
		Border:     mustHex("#d9a3a3"),
		Title:      mustHex("#ff0000"),
		Label:      mustHex("#8b1a1a"),
		Ink:        mustHex("#1f1f1f"),
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFace opens a TrueType or OpenType font at the given point size. An
// empty path selects a built-in bitmap face, which only covers ASCII.
func LoadFace(path string, size float64) (font.Face, error) {
	if path == "" {
		return basicfont.Face7x13, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

// Raster draws surfaces onto images.
type Raster struct {
	Face    font.Face
	Palette Palette
	Margin  int // Blank cells around the layout
}

// NewRaster creates a raster renderer using face for every cell.
func NewRaster(face font.Face) *Raster {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &Raster{
		Face:    face,
		Palette: DefaultPalette(),
		Margin:  2,
	}
}

// cellSize is the pixel edge of one square cell.
func (r *Raster) cellSize() int {
	m := r.Face.Metrics()
	size := (m.Ascent + m.Descent).Ceil()
	if adv, ok := r.Face.GlyphAdvance('国'); ok && adv.Ceil() > size {
		size = adv.Ceil()
	}
	return size + size/4
}

// Rasterize draws s at its natural size and then scales the result.
func (r *Raster) Rasterize(s *Surface, scale float64) (image.Image, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("invalid scale: %v", scale)
	}

	cell := r.cellSize()
	w := (s.Width() + 2*r.Margin) * cell
	h := (s.Height() + 2*r.Margin) * cell

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.Palette.Background), image.Point{}, draw.Src)
	r.drawBorder(img, cell/3, max(1, cell/10))

	m := r.Face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.At(x, y)
			if c.Rune == 0 {
				continue
			}

			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(r.colorFor(c.Role)),
				Face: r.Face,
			}
			adv := d.MeasureString(string(c.Rune)).Ceil()
			left := (x+r.Margin)*cell + (cell-adv)/2
			top := (y+r.Margin)*cell + (cell-ascent-descent)/2
			d.Dot = fixed.P(left, top+ascent)
			d.DrawString(string(c.Rune))
		}
	}

	if scale == 1 {
		return img, nil
	}
	return resize.Resize(uint(float64(w)*scale), uint(float64(h)*scale), img, resize.Lanczos3), nil
}

// drawBorder frames the card inset pixels from the edge.
func (r *Raster) drawBorder(img *image.RGBA, inset, thickness int) {
	b := img.Bounds().Inset(inset)
	src := image.NewUniform(r.Palette.Border)
	edges := []image.Rectangle{
		image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+thickness),
		image.Rect(b.Min.X, b.Max.Y-thickness, b.Max.X, b.Max.Y),
		image.Rect(b.Min.X, b.Min.Y, b.Min.X+thickness, b.Max.Y),
		image.Rect(b.Max.X-thickness, b.Min.Y, b.Max.X, b.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(img, e, src, image.Point{}, draw.Src)
	}
}

func (r *Raster) colorFor(role Role) colorful.Color {
	switch role {
	case RoleTitle:
		return r.Palette.Title
	case RoleLabel:
		return r.Palette.Label
	default:
		return r.Palette.Ink
	}
}
