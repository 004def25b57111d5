package chubbycorn

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/chubbycorn/internal/core"
	"github.com/vovakirdan/chubbycorn/internal/session"
)

// Visual characters for rendering
const (
	PlayerBody     = '█'
	PlayerHorn     = '➚'
	CupcakeChar    = '◉'
	CarrotChar     = '▼'
	PillarChar     = '█'
	PillarCapTop   = '▀'
	PillarCapBelow = '▄'
	CloudChar      = '░'
	HeartFull      = '♥'
	HeartEmpty     = '♡'
)

var groundPattern = []rune("▁▂▁▃▁▂▂▁")

// viewport maps world units to screen cells. Row 0 holds the HUD and the
// last row the ground; the playfield is scaled into the rows between.
type viewport struct {
	sx, sy float64
	top    int
	rows   int
	cols   int
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	rows := max(dst.Height()-2, 1)
	return viewport{
		sx:   float64(dst.Width()) / worldW,
		sy:   float64(rows) / worldH,
		top:  1,
		rows: rows,
		cols: dst.Width(),
	}
}

// rect converts a world box to cells, keeping at least one cell per side.
func (v viewport) rect(x, y, w, h float64) core.Rect {
	cx := int(math.Floor(x * v.sx))
	cy := v.top + int(math.Floor(y*v.sy))
	cw := max(int(math.Round(w*v.sx)), 1)
	ch := max(int(math.Round(h*v.sy)), 1)
	return core.NewRect(cx, cy, cw, ch)
}

// clip trims r to the playfield rows.
func (v viewport) clip(r core.Rect) core.Rect {
	top := max(r.Y, v.top)
	bottom := min(r.Bottom(), v.top+v.rows)
	r.H = max(bottom-top, 0)
	r.Y = top
	return r
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil || dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	worldW, worldH := g.world.Size()
	v := newViewport(dst, worldW, worldH)
	snap := g.session.Snapshot()
	entities := g.session.Entities()

	// Clouds first so everything else draws over them
	for _, e := range entities {
		if e.Kind == session.KindDecoration {
			dst.DrawRect(v.clip(v.rect(e.Bounds())), CloudChar, core.ColorGray)
		}
	}
	for _, e := range entities {
		switch e.Kind {
		case session.KindHazard:
			g.drawPillar(dst, v, e)
		case session.KindGood:
			dst.DrawRect(v.clip(v.rect(e.Bounds())), CupcakeChar, core.ColorPink)
		case session.KindBad:
			dst.DrawRect(v.clip(v.rect(e.Bounds())), CarrotChar, core.ColorOrange)
		}
	}

	g.drawPlayer(dst, v)
	g.drawGround(dst, v)

	for _, f := range g.effects.Floaters() {
		r := v.rect(f.X, f.Y, 0, 0)
		if r.Y >= v.top && r.Y < v.top+v.rows {
			dst.DrawText(r.X, r.Y, f.Text, f.Color)
		}
	}

	g.drawHUD(dst, snap)

	final, over := g.effects.RestartPrompt()
	switch {
	case snap.Phase == session.PhaseIdle:
		drawCenteredMessage(dst, "C H U B B Y C O R N", "Space or Enter to fly", "Collect ◉  avoid ▼ and pillars")
	case over:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  %s", final, endReasonText(snap.EndReason)),
			"R or Enter to restart")
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawPillar renders a hazard with a cap on its open end.
func (g *Game) drawPillar(dst *core.Screen, v viewport, e session.Entity) {
	r := v.clip(v.rect(e.Bounds()))
	if r.H == 0 {
		return
	}
	dst.DrawRect(r, PillarChar, core.ColorGreen)

	switch e.Anchor {
	case session.AnchorTop:
		dst.DrawHLine(r.X, r.Bottom()-1, r.W, PillarCapTop, core.ColorBrightGreen)
	case session.AnchorBottom:
		dst.DrawHLine(r.X, r.Y, r.W, PillarCapBelow, core.ColorBrightGreen)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	p := g.world.Player()
	r := v.clip(v.rect(p.X, p.Y, p.W, p.H))
	if r.H == 0 {
		return
	}
	dst.DrawRect(r, PlayerBody, core.ColorBrightMagenta)
	dst.SetColored(r.Right()-1, r.Y, PlayerHorn, core.ColorBrightYellow)
}

// drawGround scrolls a texture at the background speed.
func (g *Game) drawGround(dst *core.Screen, v viewport) {
	y := dst.Height() - 1
	offset := int(g.scroll * v.sx)
	for x := range dst.Width() {
		ch := groundPattern[(x+offset)%len(groundPattern)]
		dst.SetColored(x, y, ch, core.ColorGreen)
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap session.Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)

	hearts := strings.Repeat(string(HeartFull), snap.Lives) +
		strings.Repeat(string(HeartEmpty), max(snap.MaxLives-snap.Lives, 0))
	dst.DrawText(dst.Width()-len([]rune(hearts))-1, 0, hearts, core.ColorBrightRed)

	if snap.Phase == session.PhaseRunning {
		speed := fmt.Sprintf("Speed %.1f", snap.Difficulty.HazardSpeed)
		dst.DrawTextCentered(0, speed, core.ColorGray)
	}
}

func endReasonText(r session.EndReason) string {
	switch r {
	case session.EndReasonLives:
		return "Too many carrots"
	case session.EndReasonHazard:
		return "Hit a pillar"
	case session.EndReasonBoundary:
		return "Flew off the sky"
	default:
		return "Run ended"
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := 3 + 2*len(lines)
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextCentered(boxY+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+3+2*i, l, core.ColorWhite)
	}
}
