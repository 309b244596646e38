// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/slidepane/slidepane/widget"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0e0e0")).
			Background(lipgloss.Color("#303446"))

	paneColors = []color.NRGBA{
		{R: 0x3b, G: 0x5b, B: 0x7b, A: 0xff},
		{R: 0xe8, G: 0xe4, B: 0xd8, A: 0xff},
	}
	paneText = []string{"list", "detail"}
)

// cell is a rendered terminal cell.
type cell struct {
	bg color.NRGBA
	ch rune
}

// render draws the panes of p into a cols by rows grid of cells.
// Panes are painted in child order, each clipped to its visible
// region and blended with its dim overlay.
func render(p *widget.SlidingPane, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	grid := make([][]cell, rows)
	for y := range grid {
		grid[y] = make([]cell, cols)
		for x := range grid[y] {
			grid[y][x] = cell{ch: ' '}
		}
	}
	for i, r := range p.Rects() {
		if !p.Visible(i) || i >= len(paneColors) {
			continue
		}
		bg := paneColors[i]
		if ov, ok := p.Overlay(i); ok {
			bg = blend(bg, ov)
		}
		cr := toCells(r.Intersect(p.ClipRect(i)))
		label := []rune(fmt.Sprintf(" %s ", paneText[i]))
		for y := max(cr.Min.Y, 0); y < min(cr.Max.Y, rows); y++ {
			for x := max(cr.Min.X, 0); x < min(cr.Max.X, cols); x++ {
				ch := ' '
				// Labels are anchored to the pane, not its clip.
				if y == cr.Min.Y {
					if j := x - r.Min.X/cellWidth; j >= 0 && j < len(label) {
						ch = label[j]
					}
				}
				grid[y][x] = cell{bg: bg, ch: ch}
			}
		}
	}
	lines := make([]string, rows)
	for y, row := range grid {
		lines[y] = renderRow(row)
	}
	return strings.Join(lines, "\n")
}

// renderRow styles runs of cells with the same background.
func renderRow(row []cell) string {
	var b strings.Builder
	for i := 0; i < len(row); {
		j := i
		var run strings.Builder
		for j < len(row) && row[j].bg == row[i].bg {
			run.WriteRune(row[j].ch)
			j++
		}
		if row[i].bg.A == 0 {
			b.WriteString(run.String())
		} else {
			b.WriteString(lipgloss.NewStyle().
				Background(hex(row[i].bg)).
				Foreground(hex(contrast(row[i].bg))).
				Render(run.String()))
		}
		i = j
	}
	return b.String()
}

func toCells(r image.Rectangle) image.Rectangle {
	return image.Rect(
		r.Min.X/cellWidth, r.Min.Y/cellHeight,
		(r.Max.X+cellWidth-1)/cellWidth, (r.Max.Y+cellHeight-1)/cellHeight,
	)
}

// blend composites the non-premultiplied overlay c over opaque dst.
func blend(dst, c color.NRGBA) color.NRGBA {
	a := uint32(c.A)
	mix := func(d, s uint8) uint8 {
		return uint8((uint32(d)*(255-a) + uint32(s)*a + 127) / 255)
	}
	return color.NRGBA{R: mix(dst.R, c.R), G: mix(dst.G, c.G), B: mix(dst.B, c.B), A: 0xff}
}

func contrast(c color.NRGBA) color.NRGBA {
	if int(c.R)*299+int(c.G)*587+int(c.B)*114 > 128*1000 {
		return color.NRGBA{A: 0xff}
	}
	return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}

func hex(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
