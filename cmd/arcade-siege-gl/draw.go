package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lixenwraith/arcade-siege/component"
	"github.com/lixenwraith/arcade-siege/constants"
	"github.com/lixenwraith/arcade-siege/core"
	"github.com/lixenwraith/arcade-siege/engine"
	"github.com/lixenwraith/arcade-siege/render"
	"golang.org/x/image/font/basicfont"
)

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	hudColor        = color.RGBA{255, 255, 255, 255}
	bannerColor     = color.RGBA{255, 255, 0, 255}
	overlayColor    = color.RGBA{0, 0, 0, 160}
)

// canvas draws snapshots with vector primitives at field resolution
type canvas struct {
	face *text.GoXFace
	opts text.DrawOptions
}

func newCanvas() *canvas {
	return &canvas{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (c *canvas) draw(screen *ebiten.Image, snap engine.Snapshot, hud render.HUDState) {
	screen.Fill(backgroundColor)

	for i := range snap.Particles {
		p := &snap.Particles[i]
		clr := color.NRGBA{p.Color.R, p.Color.G, p.Color.B, uint8(255 * p.Alpha())}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), clr, true)
	}

	for i := range snap.Enemies {
		e := &snap.Enemies[i]
		if !e.Alive {
			continue
		}
		base := e.Kind.Color()
		clr := color.NRGBA{base.R, base.G, base.B, 255}
		if e.Health < e.Kind.MaxHealth() {
			clr.A = 140
		}
		fillArea(screen, e.Area(), clr)
		// Eyes alternate with the animation frame
		eyeY := float32(e.Y + e.Height/3)
		eyeDX := float32(e.Width / 4)
		if e.AnimFrame%2 == 1 {
			eyeY += 2
		}
		vector.DrawFilledCircle(screen, float32(e.X)+eyeDX, eyeY, 3, backgroundColor, true)
		vector.DrawFilledCircle(screen, float32(e.X+e.Width)-eyeDX, eyeY, 3, backgroundColor, true)
	}

	if b := snap.Bonus; b != nil {
		fillArea(screen, b.Area(), component.BonusColor)
		inner := b.Area()
		inset := float64(4 + b.AnimFrame*2)
		inner.X, inner.Y = inner.X+inset, inner.Y+inset
		inner.Width, inner.Height = inner.Width-2*inset, inner.Height-2*inset
		fillArea(screen, inner, b.Drop.Color())
	}

	for i := range snap.PlayerBullets {
		p := &snap.PlayerBullets[i]
		fillArea(screen, p.Area(), p.Variant.Color())
	}
	for i := range snap.EnemyBullets {
		p := &snap.EnemyBullets[i]
		fillArea(screen, p.Area(), p.Source.Color())
	}

	c.drawPlayer(screen, &snap.Player)
	c.drawHUD(screen, &snap.Player, hud)
	c.drawOverlay(screen, snap.Session)
}

func (c *canvas) drawPlayer(screen *ebiten.Image, p *component.Player) {
	a := p.Area()
	body := a
	body.Y += a.Height / 2
	body.Height /= 2
	fillArea(screen, body, component.PlayerColor)

	nose := core.CenteredArea(p.X, a.Y+a.Height/4, a.Width/5, a.Height/2)
	fillArea(screen, nose, component.PlayerColor)
}

func (c *canvas) drawHUD(screen *ebiten.Image, p *component.Player, hud render.HUDState) {
	c.text(screen, hud.String(), 8, 8, hudColor)

	weapon := p.Weapon.String()
	if p.Weapon != component.WeaponSingle {
		weapon = fmt.Sprintf("%s %.0fs", p.Weapon, p.WeaponRemaining.Seconds())
	}
	c.text(screen, weapon, constants.FieldWidth-8-float64(7*len(weapon)), 8, p.Weapon.Color())

	if hud.Banner != "" {
		c.centered(screen, hud.Banner, 28, bannerColor)
	}
}

func (c *canvas) drawOverlay(screen *ebiten.Image, s engine.SessionSnapshot) {
	mid := constants.FieldHeight / 2
	switch s.Phase {
	case engine.PhaseMenu:
		c.dim(screen)
		c.centered(screen, constants.TextMenu, mid-20, bannerColor)
		c.centered(screen, constants.TextMenuHint, mid+10, hudColor)
	case engine.PhaseLevelComplete:
		c.centered(screen, fmt.Sprintf(constants.TextLevelComplete, s.Level-1), mid-20, bannerColor)
		c.centered(screen, fmt.Sprintf(constants.TextCountdown, s.CountdownRemaining.Seconds()), mid+10, hudColor)
	case engine.PhaseGameOver:
		c.dim(screen)
		c.centered(screen, constants.TextGameOver, mid-20, color.RGBA{255, 0, 0, 255})
		c.centered(screen, fmt.Sprintf("score %d, level %d", s.Score, s.Level), mid, hudColor)
		c.centered(screen, constants.TextGameOverHint, mid+20, hudColor)
	}
}

func (c *canvas) dim(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(constants.FieldWidth), float32(constants.FieldHeight), overlayColor, false)
}

func (c *canvas) text(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	c.opts = text.DrawOptions{}
	c.opts.GeoM.Translate(x, y)
	c.opts.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, c.face, &c.opts)
}

func (c *canvas) centered(screen *ebiten.Image, s string, y float64, clr color.Color) {
	w, _ := text.Measure(s, c.face, 0)
	c.text(screen, s, (constants.FieldWidth-w)/2, y, clr)
}

func fillArea(screen *ebiten.Image, a core.Area, clr color.Color) {
	vector.DrawFilledRect(screen, float32(a.X), float32(a.Y), float32(a.Width), float32(a.Height), clr, true)
}
