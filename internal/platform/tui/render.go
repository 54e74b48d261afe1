package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-1024/internal/engine"
)

// cellWidth is the inner width of a board cell; it fits "8192" with padding.
const cellWidth = 6

var (
	gridStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	// tileColors maps tile values to ANSI 256 background colors.
	tileColors = map[int]string{
		2:    "252",
		4:    "223",
		8:    "215",
		16:   "209",
		32:   "203",
		64:   "196",
		128:  "229",
		256:  "228",
		512:  "227",
		1024: "226",
		2048: "220",
		4096: "135",
		8192: "93",
	}
)

// tileStyle returns the style for a tile value.
func tileStyle(v int) lipgloss.Style {
	bg, ok := tileColors[v]
	if !ok {
		bg = "57"
	}
	fg := lipgloss.Color("235")
	if v >= 4096 {
		fg = lipgloss.Color("231")
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(fg).
		Background(lipgloss.Color(bg)).
		Width(cellWidth).
		Align(lipgloss.Center)
}

// RenderBoard draws the grid with box-drawing borders and colored tiles.
func RenderBoard(g engine.Grid) string {
	n := g.Size()
	if n == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(gridStyle.Render(borderLine(n, '┌', '┬', '┐')))
	b.WriteRune('\n')

	for y := range n {
		b.WriteString(gridStyle.Render("│"))
		for x := range n {
			b.WriteString(renderCell(g[y][x]))
			b.WriteString(gridStyle.Render("│"))
		}
		b.WriteRune('\n')

		if y < n-1 {
			b.WriteString(gridStyle.Render(borderLine(n, '├', '┼', '┤')))
		} else {
			b.WriteString(gridStyle.Render(borderLine(n, '└', '┴', '┘')))
		}
		if y < n-1 {
			b.WriteRune('\n')
		}
	}

	return b.String()
}

func renderCell(v int) string {
	if v == 0 {
		return emptyStyle.Width(cellWidth).Align(lipgloss.Center).Render("·")
	}
	return tileStyle(v).Render(strconv.Itoa(v))
}

// borderLine builds one horizontal rule of the grid.
func borderLine(n int, left, mid, right rune) string {
	seg := strings.Repeat("─", cellWidth)

	var b strings.Builder
	b.WriteRune(left)
	for x := range n {
		b.WriteString(seg)
		if x < n-1 {
			b.WriteRune(mid)
		}
	}
	b.WriteRune(right)
	return b.String()
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// centerBlock centers every line of a multi-line block.
func centerBlock(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
