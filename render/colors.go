package render

import "github.com/gdamore/tcell/v2"

// Palette shared by the renderers
var (
	RgbBackground    = tcell.NewRGBColor(18, 18, 24)
	RgbSprite        = tcell.NewRGBColor(120, 220, 160)
	RgbSpritePaused  = tcell.NewRGBColor(110, 110, 120)
	RgbStatusText    = tcell.NewRGBColor(230, 230, 230)
	RgbPhaseRunning  = tcell.NewRGBColor(40, 160, 70)
	RgbPhasePaused   = tcell.NewRGBColor(190, 50, 50)
	RgbPhaseFading   = tcell.NewRGBColor(200, 150, 30)
	RgbGaugeFill     = tcell.NewRGBColor(80, 140, 230)
	RgbGaugeEmpty    = tcell.NewRGBColor(50, 50, 60)
	RgbOverlayText   = tcell.NewRGBColor(170, 170, 190)
	RgbOverlayHeader = tcell.NewRGBColor(250, 210, 90)
)

// DrawText writes s starting at (x, y), clipped to the screen width, and returns the next column
func DrawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	width, height := screen.Size()
	if y < 0 || y >= height {
		return x + len([]rune(s))
	}
	for _, r := range s {
		if x >= 0 && x < width {
			screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
	return x
}

// FillRow paints an entire row with spaces in style
func FillRow(screen tcell.Screen, y int, style tcell.Style) {
	width, _ := screen.Size()
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}
