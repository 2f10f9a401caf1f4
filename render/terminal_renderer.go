package render

import (
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/arcade-siege/component"
	"github.com/lixenwraith/arcade-siege/constants"
	"github.com/lixenwraith/arcade-siege/core"
	"github.com/lixenwraith/arcade-siege/engine"
)

// TerminalRenderer draws snapshots onto a tcell screen
// The 600x800 field is scaled onto the cells between the HUD row and the status row
type TerminalRenderer struct {
	screen tcell.Screen
	hud    *HUD

	width, height int
	fieldTop      int
	fieldW        int
	fieldH        int

	bgStyle tcell.Style
}

// NewTerminalRenderer creates a renderer sized to the screen's current dimensions
// hud may be nil, the status line then falls back to the snapshot session
func NewTerminalRenderer(screen tcell.Screen, hud *HUD) *TerminalRenderer {
	r := &TerminalRenderer{
		screen:  screen,
		hud:     hud,
		bgStyle: tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
	}
	w, h := screen.Size()
	r.UpdateDimensions(w, h)
	return r
}

// UpdateDimensions recomputes the field mapping after a resize
func (r *TerminalRenderer) UpdateDimensions(width, height int) {
	r.width = max(width, constants.MinScreenWidth)
	r.height = max(height, constants.MinScreenHeight)
	r.fieldTop = constants.HUDRows
	r.fieldW = r.width
	r.fieldH = r.height - constants.HUDRows - constants.StatusRows
}

// ToCell maps a field coordinate to a screen cell inside the field area
func (r *TerminalRenderer) ToCell(x, y float64) (col, row int) {
	col = clampInt(int(x*float64(r.fieldW)/constants.FieldWidth), 0, r.fieldW-1)
	row = r.fieldTop + clampInt(int(y*float64(r.fieldH)/constants.FieldHeight), 0, r.fieldH-1)
	return col, row
}

// ToFieldX maps a screen column back to the field x at the cell's centre
func (r *TerminalRenderer) ToFieldX(col int) float64 {
	col = clampInt(col, 0, r.fieldW-1)
	return (float64(col) + 0.5) * constants.FieldWidth / float64(r.fieldW)
}

// RenderFrame draws one snapshot and shows it
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot, now time.Time) {
	r.screen.Fill(' ', r.bgStyle)

	r.drawParticles(snap.Particles)
	r.drawEnemies(snap.Enemies)
	if snap.Bonus != nil {
		r.drawBonus(snap.Bonus)
	}
	r.drawProjectiles(snap.PlayerBullets)
	r.drawProjectiles(snap.EnemyBullets)
	r.drawPlayer(&snap.Player)

	r.drawHUD(snap, now)
	r.drawStatus(&snap.Player)
	r.drawOverlay(snap.Session)

	r.screen.Show()
}

func (r *TerminalRenderer) drawParticles(particles []component.Particle) {
	for i := range particles {
		p := &particles[i]
		col, row := r.ToCell(p.X, p.Y)
		style := r.bgStyle.Foreground(fade(p.Color, p.Alpha()))
		r.screen.SetContent(col, row, constants.GlyphParticle, nil, style)
	}
}

func (r *TerminalRenderer) drawEnemies(enemies []component.Enemy) {
	for i := range enemies {
		e := &enemies[i]
		if !e.Alive {
			continue
		}
		glyph := constants.EnemyGlyphs[e.Kind][e.AnimFrame%2]
		style := r.bgStyle.Foreground(rgb(e.Kind.Color()))
		if e.Health < e.Kind.MaxHealth() {
			style = style.Dim(true)
		}
		r.fillArea(e.Area(), glyph, style)
	}
}

func (r *TerminalRenderer) drawBonus(b *component.BonusTarget) {
	style := r.bgStyle.Foreground(rgb(component.BonusColor))
	if b.AnimFrame%2 == 1 {
		style = style.Foreground(rgb(b.Drop.Color()))
	}
	r.fillArea(b.Area(), constants.GlyphBonus, style)
}

func (r *TerminalRenderer) drawProjectiles(projectiles []component.Projectile) {
	for i := range projectiles {
		p := &projectiles[i]
		switch {
		case p.IsLaser():
			style := r.bgStyle.Foreground(rgb(p.Variant.Color())).Bold(true)
			r.fillArea(p.Area(), constants.GlyphLaser, style)
		case p.Owner == component.OwnerEnemy:
			col, row := r.ToCell(p.X, p.Y)
			r.screen.SetContent(col, row, constants.GlyphEnemyBullet, nil, r.bgStyle.Foreground(rgb(p.Source.Color())))
		default:
			col, row := r.ToCell(p.X, p.Y)
			r.screen.SetContent(col, row, constants.GlyphBullet, nil, r.bgStyle.Foreground(rgb(p.Variant.Color())))
		}
	}
}

func (r *TerminalRenderer) drawPlayer(p *component.Player) {
	style := r.bgStyle.Foreground(rgb(component.PlayerColor))
	r.fillArea(p.Area(), constants.GlyphPlayerWing, style)
	col, row := r.ToCell(p.X, p.NoseY())
	r.screen.SetContent(col, row, constants.GlyphPlayer, nil, style.Bold(true))
}

func (r *TerminalRenderer) drawHUD(snap engine.Snapshot, now time.Time) {
	var state HUDState
	if r.hud != nil {
		state = r.hud.State(now)
	} else {
		state = HUDState{Score: snap.Session.Score, Lives: snap.Session.Lives, Level: snap.Session.Level}
	}

	style := tcell.StyleDefault.Background(tcell.ColorDarkBlue).Foreground(tcell.ColorWhite)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}
	r.drawText(0, 0, state.String(), style.Bold(true))

	if state.Banner != "" {
		r.drawCentered(0, state.Banner, style.Foreground(tcell.ColorYellow))
	}
}

func (r *TerminalRenderer) drawStatus(p *component.Player) {
	y := r.height - 1
	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGray)
	r.drawText(0, y, constants.TextControls, style)

	weapon := fmt.Sprintf(" %s ", p.Weapon)
	if p.Weapon != component.WeaponSingle {
		weapon = fmt.Sprintf(" %s %.0fs ", p.Weapon, p.WeaponRemaining.Seconds())
	}
	wStyle := tcell.StyleDefault.Background(rgb(p.Weapon.Color())).Foreground(tcell.ColorBlack)
	r.drawText(r.width-len([]rune(weapon)), y, weapon, wStyle)
}

func (r *TerminalRenderer) drawOverlay(s engine.SessionSnapshot) {
	mid := r.fieldTop + r.fieldH/2
	title := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorYellow).Bold(true)
	hint := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

	switch s.Phase {
	case engine.PhaseMenu:
		r.drawCentered(mid-1, constants.TextMenu, title)
		r.drawCentered(mid+1, constants.TextMenuHint, hint)
	case engine.PhaseLevelComplete:
		r.drawCentered(mid-1, fmt.Sprintf(constants.TextLevelComplete, s.Level-1), title)
		r.drawCentered(mid+1, fmt.Sprintf(constants.TextCountdown, s.CountdownRemaining.Seconds()), hint)
	case engine.PhaseGameOver:
		r.drawCentered(mid-1, constants.TextGameOver, title.Foreground(tcell.ColorRed))
		r.drawCentered(mid, fmt.Sprintf("score %d, level %d", s.Score, s.Level), hint)
		r.drawCentered(mid+1, constants.TextGameOverHint, hint)
	}
}

// fillArea covers every cell the area touches, at least one
func (r *TerminalRenderer) fillArea(a core.Area, ch rune, style tcell.Style) {
	c0, r0 := r.ToCell(a.X, a.Y)
	c1, r1 := r.ToCell(a.Right(), a.Bottom())
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		if x >= r.width {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

func (r *TerminalRenderer) drawCentered(y int, text string, style tcell.Style) {
	r.drawText((r.width-len([]rune(text)))/2, y, text, style)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// fade darkens c toward black by alpha in [0, 1]
func fade(c color.RGBA, alpha float64) tcell.Color {
	return tcell.NewRGBColor(
		int32(float64(c.R)*alpha),
		int32(float64(c.G)*alpha),
		int32(float64(c.B)*alpha),
	)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
