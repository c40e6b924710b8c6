package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/timescale/demo"
	"github.com/lixenwraith/timescale/render"
)

// FieldRenderer draws the demo sprites, dimmed while paused
type FieldRenderer struct {
	field *demo.Field
}

// NewFieldRenderer creates a renderer for field
func NewFieldRenderer(field *demo.Field) *FieldRenderer {
	return &FieldRenderer{field: field}
}

// Render implements SystemRenderer
func (r *FieldRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	color := render.RgbSprite
	if ctx.Snapshot.Paused {
		color = render.RgbSpritePaused
	}
	style := tcell.StyleDefault.Background(render.RgbBackground).Foreground(color)

	// Bottom two rows belong to the UI
	maxY := ctx.Height - 2
	r.field.Each(func(x, y int, glyph rune) {
		if x < 0 || x >= ctx.Width || y < 0 || y >= maxY {
			return
		}
		screen.SetContent(x, y, glyph, nil, style)
	})
}
