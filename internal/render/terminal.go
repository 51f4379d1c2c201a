package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// cellWidth is the number of terminal columns a card cell occupies.
const cellWidth = 2

// Terminal prints surfaces as boxed text.
type Terminal struct {
	Out   io.Writer
	Width int // Terminal columns used for centring; 0 disables centring

	styles map[Role]*color.Color
	border *color.Color
}

// NewTerminal creates a renderer writing to out. When out is a terminal its
// width is used to centre the card.
func NewTerminal(out io.Writer) *Terminal {
	t := &Terminal{
		Out: out,
		styles: map[Role]*color.Color{
			RoleTitle:  color.New(color.FgHiRed, color.Bold),
			RoleLabel:  color.New(color.FgCyan, color.Bold),
			RoleValue:  color.New(color.FgHiWhite),
			RoleDetail: color.New(color.FgWhite),
		},
		border: color.New(color.FgRed, color.Faint),
	}

	if f, ok := out.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			t.Width = width
		}
	}
	return t
}

// Render draws the card with a one-cell margin inside a rounded border.
func (t *Terminal) Render(s *Surface) error {
	inner := (s.Width() + 2) * cellWidth
	indent := "  "
	if t.Width > inner+2 {
		indent = strings.Repeat(" ", (t.Width-inner-2)/2)
	}

	var b strings.Builder
	edge := strings.Repeat("─", inner)
	pad := strings.Repeat(" ", cellWidth)
	empty := strings.Repeat(" ", inner)

	b.WriteString(indent + t.border.Sprint("╭"+edge+"╮") + "\n")
	b.WriteString(indent + t.border.Sprint("│") + empty + t.border.Sprint("│") + "\n")
	for y := 0; y < s.Height(); y++ {
		b.WriteString(indent + t.border.Sprint("│") + pad)
		for _, c := range s.Row(y) {
			b.WriteString(t.cell(c))
		}
		b.WriteString(pad + t.border.Sprint("│") + "\n")
	}
	b.WriteString(indent + t.border.Sprint("│") + empty + t.border.Sprint("│") + "\n")
	b.WriteString(indent + t.border.Sprint("╰"+edge+"╯") + "\n")

	_, err := fmt.Fprint(t.Out, b.String())
	return err
}

// cell renders one card cell padded to cellWidth columns.
func (t *Terminal) cell(c Cell) string {
	if c.Rune == 0 {
		return strings.Repeat(" ", cellWidth)
	}

	text := string(c.Rune)
	if w := runewidth.RuneWidth(c.Rune); w < cellWidth {
		text = runewidth.FillLeft(text, (cellWidth+w)/2)
		text = runewidth.FillRight(text, cellWidth)
	}
	if style, ok := t.styles[c.Role]; ok {
		return style.Sprint(text)
	}
	return text
}
