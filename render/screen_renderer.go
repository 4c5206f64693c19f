package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mlange-42/ark/ecs"

	"github.com/lixenwraith/steer/component"
	"github.com/lixenwraith/steer/engine"
	"github.com/lixenwraith/steer/input"
	"github.com/lixenwraith/steer/vmath"
)

// StatusHeight is the number of rows reserved at the bottom of the screen
const StatusHeight = 1

// Status is the player state shown on the status line
type Status struct {
	Name     string
	Enabled  bool
	Speed    float64
	Position vmath.Vec3F
	Keys     input.Snapshot
	Paused   bool
}

// ScreenRenderer draws glyph entities and the status line onto a tcell screen
type ScreenRenderer struct {
	screen tcell.Screen
	filter *ecs.Filter2[component.TransformComponent, component.GlyphComponent]

	statusStyle tcell.Style
}

func NewScreenRenderer(screen tcell.Screen, world *engine.World) *ScreenRenderer {
	return &ScreenRenderer{
		screen:      screen,
		filter:      ecs.NewFilter2[component.TransformComponent, component.GlyphComponent](&world.ECS),
		statusStyle: tcell.StyleDefault.Reverse(true),
	}
}

// ToScreen maps a world position to a cell of a width x height screen
// World origin sits at the centre of the play area, +Y is up; ok is false
// when the cell falls outside the play area (status rows excluded)
func ToScreen(p vmath.Vec3F, width, height int) (x, y int, ok bool) {
	playHeight := height - StatusHeight
	if width <= 0 || playHeight <= 0 {
		return 0, 0, false
	}
	wx, wy := vmath.V3FRound(p)
	x = width/2 + wx
	y = (playHeight-1)/2 - wy
	ok = x >= 0 && x < width && y >= 0 && y < playHeight
	return x, y, ok
}

// Draw renders one frame
func (r *ScreenRenderer) Draw(status Status) {
	r.screen.Clear()
	width, height := r.screen.Size()

	query := r.filter.Query()
	for query.Next() {
		transform, glyph := query.Get()
		x, y, ok := ToScreen(transform.Position, width, height)
		if !ok {
			continue
		}
		r.screen.SetContent(x, y, glyph.Rune, nil, glyph.Style)
	}

	r.drawStatus(status, width, height)
	r.screen.Show()
}

func (r *ScreenRenderer) drawStatus(status Status, width, height int) {
	if height < StatusHeight || width <= 0 {
		return
	}
	row := height - StatusHeight

	ctrl := "on"
	if !status.Enabled {
		ctrl = "off"
	}
	line := fmt.Sprintf(" %s ctrl:%s speed:%.1f pos:(%.2f,%.2f) keys:%s",
		status.Name, ctrl, status.Speed, status.Position.X, status.Position.Y, status.Keys)
	if status.Paused {
		line += " [paused]"
	}
	line += "  tab:toggle +/-:speed p:pause esc:quit"

	col := 0
	for _, ch := range line {
		if col >= width {
			break
		}
		r.screen.SetContent(col, row, ch, nil, r.statusStyle)
		col++
	}
	for ; col < width; col++ {
		r.screen.SetContent(col, row, ' ', nil, r.statusStyle)
	}
}
