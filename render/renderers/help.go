package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/timescale/render"
)

// HelpText lists the interactive key bindings
const HelpText = "space toggle  p fade-pause  r fade-resume  s slow  f fast  0-9 set  c cancel  d diag  q quit"

// HelpRenderer draws key bindings above the status bar
type HelpRenderer struct{}

// NewHelpRenderer creates a help line renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// Render implements SystemRenderer
func (h *HelpRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	if ctx.Height < 2 {
		return
	}
	render.DrawText(screen, 0, ctx.Height-2, HelpText,
		tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbOverlayText))
}
