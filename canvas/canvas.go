// Package canvas is the immediate-mode rendering backend: a styled cell
// grid that modules draw into directly, clipped to the bounds the layout
// assigned them.
package canvas

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mattn/go-runewidth"

	"github.com/drake/plank/bar"
)

// renderCacheSize bounds the styled-run cache shared by all canvases.
const renderCacheSize = 256

// renderCache memoizes styled ANSI sequences; bars repaint the same short
// runs every frame. Keyed by style pointer identity: each entry pins its
// style, so the address cannot be recycled for a different style while the
// entry is cached.
var renderCache, _ = lru.New[string, renderEntry](renderCacheSize)

type renderEntry struct {
	style *lipgloss.Style
	out   string
}

func renderRun(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	key := fmt.Sprintf("%p\x00%s", style, text)
	if e, ok := renderCache.Get(key); ok && e.style == style {
		return e.out
	}
	out := style.Render(text)
	renderCache.Add(key, renderEntry{style: style, out: out})
	return out
}

type cell struct {
	r     rune
	style *lipgloss.Style
}

// Canvas is a width×height grid of styled cells. The zero cell renders as
// a space. Wide runes occupy two columns; the continuation column holds a
// zero rune and is skipped when flattening.
type Canvas struct {
	width  int
	height int
	cells  [][]cell
}

// New creates a blank canvas.
func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{width: width, height: height}
	c.cells = make([][]cell, height)
	for y := range c.cells {
		c.cells[y] = make([]cell, width)
	}
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in rows.
func (c *Canvas) Height() int { return c.height }

// DrawText writes text starting at (x, y), clipped to the canvas. Returns
// the number of columns written.
func (c *Canvas) DrawText(x, y int, text string, style *lipgloss.Style) int {
	if y < 0 || y >= c.height {
		return 0
	}
	written := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > c.width {
			break
		}
		if x >= 0 {
			c.cells[y][x] = cell{r: r, style: style}
			if w == 2 {
				c.cells[y][x+1] = cell{r: 0, style: style}
			}
			written += w
		}
		x += w
	}
	return written
}

// Fill paints every cell inside bounds with the given rune, clipped to the
// canvas.
func (c *Canvas) Fill(b bar.Bounds, r rune, style *lipgloss.Style) {
	for y := b.Y; y < b.Y+b.Height; y++ {
		if y < 0 || y >= c.height {
			continue
		}
		for x := b.X; x < b.X+b.Width; x++ {
			if x < 0 || x >= c.width {
				continue
			}
			c.cells[y][x] = cell{r: r, style: style}
		}
	}
}

// Rune returns the rune at (x, y), or space when out of range.
func (c *Canvas) Rune(x, y int) rune {
	if y < 0 || y >= c.height || x < 0 || x >= c.width {
		return ' '
	}
	if c.cells[y][x].r == 0 {
		return ' '
	}
	return c.cells[y][x].r
}

// View flattens the canvas to terminal output, one line per row. Runs of
// equally styled cells are rendered together so ANSI sequences are not
// emitted per cell.
func (c *Canvas) View() string {
	lines := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		var sb strings.Builder
		var run strings.Builder
		var runStyle *lipgloss.Style
		flush := func() {
			if run.Len() > 0 {
				sb.WriteString(renderRun(runStyle, run.String()))
				run.Reset()
			}
		}
		for x := 0; x < c.width; x++ {
			cl := c.cells[y][x]
			if cl.r == 0 {
				if cl.style == nil {
					// Blank cell, not a wide-rune continuation.
					if runStyle != nil {
						flush()
						runStyle = nil
					}
					run.WriteRune(' ')
				}
				continue
			}
			if cl.style != runStyle {
				flush()
				runStyle = cl.style
			}
			run.WriteRune(cl.r)
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
