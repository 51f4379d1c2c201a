package render

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	colorize "github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/omikuji/internal/deck"
	"github.com/arcanaland/omikuji/internal/fortune"
)

var sample = fortune.Fortune{
	ID:        "7",
	Title:     "大吉",
	LuckyItem: "お守り",
	Love:      "良縁、待て",
	Study:     "励め",
	Details:   []string{"願い事叶う", "旅行よし"},
}

// column collects the runes of column x with the given role, top to bottom.
func column(s *Surface, x int, role Role) string {
	var b strings.Builder
	for y := 0; y < s.Height(); y++ {
		if c := s.At(x, y); c.Role == role {
			b.WriteRune(c.Rune)
		}
	}
	return b.String()
}

// columns returns every non-empty column string for role, left to right.
func columns(s *Surface, role Role) []string {
	var out []string
	for x := 0; x < s.Width(); x++ {
		if col := column(s, x, role); col != "" {
			out = append(out, col)
		}
	}
	return out
}

func TestNewSurface(t *testing.T) {
	s := NewSurface(sample, deck.DefaultLabels())
	require.Greater(t, s.Width(), 0)
	require.Greater(t, s.Height(), 0)

	for y := 0; y < s.Height(); y++ {
		assert.Len(t, s.Row(y), s.Width(), "row %d", y)
	}

	assert.Equal(t, []string{"大吉"}, columns(s, RoleTitle))
	// Vertical lines run right to left, so the second detail line is leftmost.
	assert.Equal(t, []string{"旅行よし", "願い事叶う"}, columns(s, RoleDetail))
	// Study, love, lucky item from left to right; lucky label is two lines.
	assert.Equal(t, []string{"勉学", "恋愛", "アイテム", "ラッキー"}, columns(s, RoleLabel))
	// Love splits on the comma; the lucky item is forced onto two lines.
	assert.Equal(t, []string{"励め", "待て", "良縁", "り", "お守"}, columns(s, RoleValue))
	assert.Equal(t, sample, s.Fortune)
}

func TestNewSurface_Minimal(t *testing.T) {
	s := NewSurface(fortune.Fortune{ID: "1", Title: "凶"}, deck.DefaultLabels())
	assert.Empty(t, columns(s, RoleDetail))
	assert.Empty(t, columns(s, RoleValue))
	assert.Equal(t, []string{"凶"}, columns(s, RoleTitle))
}

func TestVertical(t *testing.T) {
	b := vertical([]string{"ab", "c"}, RoleValue)
	require.Len(t, b, 2)
	assert.Equal(t, 'c', b[0][0].Rune)
	assert.Equal(t, 'a', b[0][1].Rune)
	assert.Equal(t, rune(0), b[1][0].Rune)
	assert.Equal(t, 'b', b[1][1].Rune)
}

func TestTerminal_Render(t *testing.T) {
	prev := colorize.NoColor
	colorize.NoColor = true
	defer func() { colorize.NoColor = prev }()

	s := NewSurface(sample, deck.DefaultLabels())
	var buf bytes.Buffer
	term := NewTerminal(&buf)
	term.Width = 0
	require.NoError(t, term.Render(s))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, s.Height()+4)
	assert.Contains(t, lines[0], "╭")
	assert.Contains(t, lines[len(lines)-1], "╯")

	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	width := cond.StringWidth(lines[0])
	for i, line := range lines {
		assert.Equal(t, width, cond.StringWidth(line), "line %d", i)
	}
	assert.Contains(t, buf.String(), "大")
}

func TestTerminal_HalfWidthPadding(t *testing.T) {
	term := NewTerminal(&bytes.Buffer{})
	prev := colorize.NoColor
	colorize.NoColor = true
	defer func() { colorize.NoColor = prev }()

	assert.Equal(t, "7 ", term.cell(Cell{Rune: '7', Role: RoleValue}))
	assert.Equal(t, "吉", term.cell(Cell{Rune: '吉', Role: RoleValue}))
	assert.Equal(t, "  ", term.cell(Cell{}))
}

func TestRaster_Rasterize(t *testing.T) {
	s := NewSurface(fortune.Fortune{ID: "a", Title: "OK", Love: "yes"}, deck.Labels{
		LuckyItem: "item", Love: "love", Study: "study",
	})
	r := NewRaster(nil)
	cell := r.cellSize()

	img, err := r.Rasterize(s, 1)
	require.NoError(t, err)
	w := (s.Width() + 2*r.Margin) * cell
	h := (s.Height() + 2*r.Margin) * cell
	assert.Equal(t, image.Rect(0, 0, w, h), img.Bounds())

	// Corner is background.
	assert.Equal(t, color.RGBAModel.Convert(color.White), color.RGBAModel.Convert(img.At(0, 0)))

	scaled, err := r.Rasterize(s, 2)
	require.NoError(t, err)
	assert.Equal(t, 2*w, scaled.Bounds().Dx())
	assert.Equal(t, 2*h, scaled.Bounds().Dy())

	_, err = r.Rasterize(s, 0)
	assert.Error(t, err)
}

func TestLoadFace(t *testing.T) {
	face, err := LoadFace("", 24)
	require.NoError(t, err)
	assert.NotNil(t, face)

	_, err = LoadFace("/nonexistent/font.ttf", 24)
	assert.Error(t, err)
}

func TestImageToANSI(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}

	out := ImageToANSI(img, 10)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 5)
	assert.Equal(t, 10, strings.Count(lines[0], "▀"))
	assert.Contains(t, lines[0], "\x1b[38;2;255;0;0m")

	assert.Equal(t, "", ImageToANSI(img, 0))
}
