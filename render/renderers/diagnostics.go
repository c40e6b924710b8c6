package renderers

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/timescale/render"
	"github.com/lixenwraith/timescale/status"
)

// DiagnosticsRenderer lists the status registry in the top-right corner
type DiagnosticsRenderer struct {
	registry *status.Registry
	visible  atomic.Bool
}

// NewDiagnosticsRenderer creates a visible diagnostics overlay
func NewDiagnosticsRenderer(registry *status.Registry) *DiagnosticsRenderer {
	d := &DiagnosticsRenderer{registry: registry}
	d.visible.Store(true)
	return d
}

// Toggle flips visibility; safe to call from the input goroutine
func (d *DiagnosticsRenderer) Toggle() {
	for {
		v := d.visible.Load()
		if d.visible.CompareAndSwap(v, !v) {
			return
		}
	}
}

// IsVisible implements VisibilityToggle
func (d *DiagnosticsRenderer) IsVisible() bool {
	return d.visible.Load()
}

// Render implements SystemRenderer
func (d *DiagnosticsRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	lines := d.registry.Lines()
	width := len("diagnostics")
	for _, l := range lines {
		width = max(width, len(l))
	}
	x := ctx.Width - width - 1
	if x < 0 {
		x = 0
	}

	bg := tcell.StyleDefault.Background(render.RgbBackground)
	render.DrawText(screen, x, 0, "diagnostics", bg.Foreground(render.RgbOverlayHeader))
	for i, l := range lines {
		y := i + 1
		if y >= ctx.Height-2 {
			break
		}
		render.DrawText(screen, x, y, l, bg.Foreground(render.RgbOverlayText))
	}
}
