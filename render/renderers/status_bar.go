package renderers

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/timescale/engine"
	"github.com/lixenwraith/timescale/render"
)

const (
	gaugeWidth = 20
	// gaugeMax is the scale shown as a full gauge
	gaugeMax = 2.0
)

// StatusBarRenderer draws controller state on the bottom row
type StatusBarRenderer struct{}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	if ctx.Height < 1 {
		return
	}
	y := ctx.Height - 1
	base := tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbStatusText)
	render.FillRow(screen, y, base)

	snap := ctx.Snapshot
	x := render.DrawText(screen, 0, y, PhaseLabel(snap), base.Foreground(tcell.ColorBlack).Background(phaseColor(snap.Phase)))
	x = render.DrawText(screen, x+1, y, fmt.Sprintf("x%.2f ", snap.Scale), base)

	filled := GaugeCells(snap.Scale)
	for i := 0; i < gaugeWidth; i++ {
		color := render.RgbGaugeEmpty
		if i < filled {
			color = render.RgbGaugeFill
		}
		screen.SetContent(x+i, y, ' ', nil, base.Background(color))
	}
	x += gaugeWidth + 1

	if snap.Fading {
		x = render.DrawText(screen, x, y, fmt.Sprintf("-> %.2f ", snap.FadeTarget), base)
	}
	render.DrawText(screen, x, y, fmt.Sprintf("real %5.1fms game %5.1fms t=%.1fs #%d",
		float64(ctx.RealDelta.Microseconds())/1000,
		float64(ctx.GameDelta.Microseconds())/1000,
		ctx.GameTime.Seconds(),
		ctx.Frame), base)
}

// PhaseLabel returns the fixed-width phase badge
func PhaseLabel(snap engine.Snapshot) string {
	label := strings.ToUpper(snap.Phase.String())
	if snap.WillPause {
		label = "PAUSING"
	}
	return fmt.Sprintf(" %-7s ", label)
}

// GaugeCells returns how many gauge cells a scale fills
func GaugeCells(scale float64) int {
	if scale <= 0 {
		return 0
	}
	n := int(scale / gaugeMax * gaugeWidth)
	if n < 1 {
		n = 1
	}
	return min(n, gaugeWidth)
}

func phaseColor(p engine.Phase) tcell.Color {
	switch p {
	case engine.PhasePaused:
		return render.RgbPhasePaused
	case engine.PhaseFading:
		return render.RgbPhaseFading
	default:
		return render.RgbPhaseRunning
	}
}
