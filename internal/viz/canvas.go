package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a braille pixel grid. Level keeps the brightest colour intensity
// drawn into each character cell since the last Clear.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Level         [][]uint8
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Level:  make([][]uint8, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Level[i] = make([]uint8, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
	return c
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	c.SetLevel(x, y, 0)
}

// SetLevel sets a pixel and raises the cell's intensity to at least level.
func (c *Canvas) SetLevel(x, y int, level uint8) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Level[row][col] = max(c.Level[row][col], level)
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
			c.Level[i][j] = 0
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render colours every non-empty cell by its intensity using the theme's
// speed palette.
func (c *Canvas) Render(theme Theme) string {
	palette := theme.Palette()
	styles := make([]lipgloss.Style, len(palette))
	for i, col := range palette {
		styles[i] = lipgloss.NewStyle().Foreground(col)
	}

	var b strings.Builder
	for row := range c.Grid {
		for col, r := range c.Grid[row] {
			if r == brailleBlank {
				b.WriteRune(r)
				continue
			}
			idx := int(c.Level[row][col]) * len(styles) / 256
			b.WriteString(styles[idx].Render(string(r)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
