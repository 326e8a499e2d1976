package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/piston-snake/internal/core"
)

// halfBlock draws its top half in the foreground color and its bottom half
// in the background color.
const halfBlock = '▀'

// ansiCodes maps core.Color to terminal color codes.
var ansiCodes = map[core.Color]string{
	core.ColorBlack:   "0",
	core.ColorRed:     "9",
	core.ColorGreen:   "10",
	core.ColorYellow:  "11",
	core.ColorBlue:    "12",
	core.ColorMagenta: "13",
	core.ColorCyan:    "14",
	core.ColorWhite:   "15",
	core.ColorGray:    "245",
}

// cellStyle returns the lipgloss style for a foreground/background pair.
func cellStyle(fg, bg core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if code, ok := ansiCodes[fg]; ok {
		style = style.Foreground(lipgloss.Color(code))
	}
	if code, ok := ansiCodes[bg]; ok {
		style = style.Background(lipgloss.Color(code))
	}
	return style
}

// FoldRows packs two rows of src into each row of dst using half blocks:
// row 2r becomes the foreground and row 2r+1 the background of dst row r.
// Only cell backgrounds of src are read.
func FoldRows(src, dst *core.Screen) {
	for r := 0; r < dst.Height(); r++ {
		for x := 0; x < dst.Width(); x++ {
			top := src.Get(x, 2*r).BG
			bottom := src.Get(x, 2*r+1).BG
			dst.Set(x, r, core.Cell{Rune: halfBlock, FG: top, BG: bottom})
		}
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.Get(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(start.FG, start.BG).Render(run.String()))
		}
	}
	return sb.String()
}
