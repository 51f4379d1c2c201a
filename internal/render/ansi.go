package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// ImageToANSI converts an image to truecolor half-block art width cells
// wide. Each cell covers a 2x2 pixel square of the downsampled image: the
// top pair becomes the foreground and the bottom pair the background.
func ImageToANSI(img image.Image, width int) string {
	bounds := img.Bounds()
	if width <= 0 || bounds.Dx() == 0 || bounds.Dy() == 0 {
		return ""
	}

	// Terminal cells are roughly twice as tall as they are wide.
	height := max(1, width*bounds.Dy()/bounds.Dx()/2)
	resized := resize.Resize(uint(width*2), uint(height*4), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*4; y += 4 {
		for x := 0; x < width*2; x += 2 {
			upper := averageColor(
				colorAt(resized, x, y), colorAt(resized, x+1, y),
				colorAt(resized, x, y+1), colorAt(resized, x+1, y+1),
			)
			lower := averageColor(
				colorAt(resized, x, y+2), colorAt(resized, x+1, y+2),
				colorAt(resized, x, y+3), colorAt(resized, x+1, y+3),
			)
			buffer.WriteString(ansiColorString('▀', upper, lower))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

// colorAt returns the colour at a coordinate, black when out of bounds.
func colorAt(img image.Image, x, y int) colorful.Color {
	b := img.Bounds()
	var c color.Color = color.RGBA{0, 0, 0, 255}
	if x >= 0 && x < b.Dx() && y >= 0 && y < b.Dy() {
		c = img.At(b.Min.X+x, b.Min.Y+y)
	}
	col, _ := colorful.MakeColor(c)
	return col
}

// averageColor calculates the average of multiple colors
func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

// ansiColorString formats a character with 24-bit foreground and background
func ansiColorString(char rune, fg, bg colorful.Color) string {
	r1, g1, b1 := fg.Clamped().RGB255()
	r2, g2, b2 := bg.Clamped().RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		r1, g1, b1, r2, g2, b2, char)
}
