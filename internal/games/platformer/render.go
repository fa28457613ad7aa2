package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/engine"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		if g.err != nil {
			g.drawCenteredMessage(dst, "CANNOT START", g.err.Error())
		}
		return
	}

	field := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	if field.W != g.viewW || field.H != g.viewH {
		g.viewW, g.viewH = field.W, field.H
		g.session.SetViewport(float64(field.W)/cellW, float64(field.H)/cellH)
	}

	view := core.Translate(float64(field.X), float64(field.Y)).
		Mul(g.session.Camera().ViewTransform(cellW, cellH))
	g.session.Draw(&screenSink{dst: dst, clip: field}, view)

	g.renderHUD(dst)

	switch {
	case g.won:
		g.drawCenteredMessage(dst, "YOU WIN!", fmt.Sprintf("Score: %d  |  Press R to play again", g.Score()))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	st := g.State()
	name := g.levels[g.index].Name
	hud := fmt.Sprintf(" %s  Lives: %d  Coins: %d  Score: %d ", name, st.Lives, st.Coins, st.Score)
	dst.DrawRect(core.NewRect(0, 0, dst.Width(), hudHeight), ' ', core.ColorDefault)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := max(len([]rune(title)), len([]rune(subtitle))) + 4
	h := 4
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	box := core.NewRect(x, y, w, h)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextColored(x+(w-len([]rune(title)))/2, y+1, title, core.ColorBrightYellow)
	dst.DrawText(x+(w-len([]rune(subtitle)))/2, y+2, subtitle)
}

// screenSink rasterizes engine draw calls onto a terminal screen. Each call
// fills the cells covered by the transformed unit square.
type screenSink struct {
	dst  *core.Screen
	clip core.Rect
}

// Draw implements engine.Sink.
func (s *screenSink) Draw(m core.Mat3, t *engine.Template, alpha float64) {
	if t == nil {
		return
	}
	a := m.Apply(core.V(-0.5, -0.5))
	b := m.Apply(core.V(0.5, 0.5))
	x0, x1 := int(math.Round(math.Min(a.X, b.X))), int(math.Round(math.Max(a.X, b.X)))
	y0, y1 := int(math.Round(math.Min(a.Y, b.Y))), int(math.Round(math.Max(a.Y, b.Y)))

	// Sprites smaller than a cell still take the cell under their center.
	if x1 <= x0 || y1 <= y0 {
		c := m.Apply(core.V(0, 0))
		x0, y0 = int(math.Floor(c.X)), int(math.Floor(c.Y))
		x1, y1 = x0+1, y0+1
	}

	color := t.Color
	if alpha < 0.4 {
		color = core.ColorDarkGray
	}
	r := core.RectFromCorners(x0, y0, x1, y1).Clip(s.clip)
	s.dst.DrawRect(r, t.Glyph, color)
}
