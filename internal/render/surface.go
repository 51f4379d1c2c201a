// Package render lays out a fortune as a vertical card and draws it to a
// terminal or an image.
//
// Text is written top to bottom, with successive lines of a block running
// right to left, as on a printed omikuji slip. The layout is a grid of
// square cells, each holding at most one rune, so that both renderers agree
// on placement.
package render

import (
	"github.com/arcanaland/omikuji/internal/deck"
	"github.com/arcanaland/omikuji/internal/format"
	"github.com/arcanaland/omikuji/internal/fortune"
)

// Role tells a renderer how to style a cell.
type Role int

const (
	RoleBlank Role = iota
	RoleTitle
	RoleLabel
	RoleValue
	RoleDetail
)

// Cell is one square of the card.
type Cell struct {
	Rune rune
	Role Role
}

// Surface is a laid-out card ready to render.
type Surface struct {
	Fortune fortune.Fortune
	cells   [][]Cell
}

// Width returns the number of cell columns.
func (s *Surface) Width() int {
	if len(s.cells) == 0 {
		return 0
	}
	return len(s.cells[0])
}

// Height returns the number of cell rows.
func (s *Surface) Height() int {
	return len(s.cells)
}

// At returns the cell at column x, row y.
func (s *Surface) At(x, y int) Cell {
	return s.cells[y][x]
}

// Row returns row y.
func (s *Surface) Row(y int) []Cell {
	return s.cells[y]
}

// NewSurface lays out f. The title sits on top, the study, love and lucky
// item columns below it, and detail lines at the bottom.
func NewSurface(f fortune.Fortune, labels deck.Labels) *Surface {
	categories := beside(1,
		category(labels.Study, format.Category(f.Study, false)),
		category(labels.Love, format.Category(f.Love, false)),
		category(labels.LuckyItem, format.Category(f.LuckyItem, true)),
	)

	parts := []block{vertical([]string{f.Title}, RoleTitle), categories}
	if details := format.Details(f.Details); details != "" {
		parts = append(parts, vertical(format.Lines(details), RoleDetail))
	}

	return &Surface{
		Fortune: f,
		cells:   stack(1, parts...),
	}
}

// block is a rectangular run of rows, all of equal width.
type block [][]Cell

func (b block) width() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

func blankRow(width int) []Cell {
	return make([]Cell, width)
}

// category stacks a label above its value.
func category(label, value string) block {
	return stack(1,
		vertical(format.Lines(label), RoleLabel),
		vertical(format.Lines(value), RoleValue),
	)
}

// vertical writes each line as a column, the first line rightmost.
func vertical(lines []string, role Role) block {
	cols := make([][]rune, len(lines))
	height := 0
	for i, line := range lines {
		cols[i] = []rune(line)
		height = max(height, len(cols[i]))
	}

	b := make(block, height)
	width := len(cols)
	for y := range b {
		b[y] = blankRow(width)
		for i, col := range cols {
			if y < len(col) {
				b[y][width-1-i] = Cell{Rune: col[y], Role: role}
			}
		}
	}
	return b
}

// stack places blocks top to bottom, centred horizontally, separated by gap
// blank rows. Empty blocks take no space.
func stack(gap int, blocks ...block) block {
	width := 0
	for _, b := range blocks {
		width = max(width, b.width())
	}

	var out block
	for _, b := range blocks {
		if len(b) == 0 {
			continue
		}
		if len(out) > 0 {
			for i := 0; i < gap; i++ {
				out = append(out, blankRow(width))
			}
		}
		left := (width - b.width()) / 2
		for _, row := range b {
			line := blankRow(width)
			copy(line[left:], row)
			out = append(out, line)
		}
	}
	return out
}

// beside places blocks left to right, top-aligned, separated by gap blank
// columns.
func beside(gap int, blocks ...block) block {
	height := 0
	for _, b := range blocks {
		height = max(height, len(b))
	}

	out := make(block, height)
	for i, b := range blocks {
		w := b.width()
		for y := range out {
			if i > 0 {
				out[y] = append(out[y], blankRow(gap)...)
			}
			if y < len(b) {
				out[y] = append(out[y], b[y]...)
			} else {
				out[y] = append(out[y], blankRow(w)...)
			}
		}
	}
	return out
}
