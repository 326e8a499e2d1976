package window

import (
	"image/color"

	"github.com/vovakirdan/piston-snake/internal/core"
)

var rgbaColors = map[core.Color]color.RGBA{
	core.ColorDefault: {0, 0, 0, 255},
	core.ColorBlack:   {0, 0, 0, 255},
	core.ColorRed:     {255, 0, 0, 255},
	core.ColorGreen:   {0, 255, 0, 255},
	core.ColorYellow:  {255, 255, 0, 255},
	core.ColorBlue:    {0, 0, 255, 255},
	core.ColorMagenta: {255, 0, 255, 255},
	core.ColorCyan:    {0, 255, 255, 255},
	core.ColorWhite:   {255, 255, 255, 255},
	core.ColorGray:    {128, 128, 128, 255},
}

// rgba converts a palette color to an opaque RGBA value.
func rgba(c core.Color) color.RGBA {
	if v, ok := rgbaColors[c]; ok {
		return v
	}
	return rgbaColors[core.ColorDefault]
}
