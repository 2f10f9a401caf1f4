package component

import (
	"image/color"
	"math"
	"time"

	"github.com/lixenwraith/arcade-siege/constants"
	"github.com/lixenwraith/arcade-siege/core"
)

// PlayerColor is the ship and upgrade-burst colour
var PlayerColor = color.RGBA{0, 255, 255, 255}

// Player is the single player ship; it is repositioned and reset, never destroyed
type Player struct {
	X, Y          float64 // Centre
	Width, Height float64
	Speed         float64

	Weapon          WeaponVariant
	WeaponLevel     int
	WeaponRemaining time.Duration // > 0 whenever Weapon != WeaponSingle
	LastShot        time.Time
	Cooldown        time.Duration
}

// NewPlayer creates a player centred on the bottom row with the default weapon
func NewPlayer() Player {
	return Player{
		X:           constants.PlayerStartX,
		Y:           constants.PlayerY,
		Width:       constants.PlayerWidth,
		Height:      constants.PlayerHeight,
		Speed:       constants.PlayerSpeed,
		Weapon:      WeaponSingle,
		WeaponLevel: 1,
		Cooldown:    constants.FireCooldown,
	}
}

// Area returns the ship's hitbox
func (p *Player) Area() core.Area {
	return core.CenteredArea(p.X, p.Y, p.Width, p.Height)
}

// NoseY returns the y coordinate projectiles originate from
func (p *Player) NoseY() float64 {
	return p.Y - p.Height/2
}

// ClampX keeps x within [Width/2, FieldWidth-Width/2]
// NaN leaves the ship where it is; infinities pin to the nearest edge
func (p *Player) ClampX(x float64) float64 {
	if math.IsNaN(x) {
		x = p.X
	}
	lo := p.Width / 2
	hi := constants.FieldWidth - p.Width/2
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ResetWeapon reverts to the default weapon and drops any remaining upgrade time
func (p *Player) ResetWeapon() {
	p.Weapon = WeaponSingle
	p.WeaponLevel = 1
	p.WeaponRemaining = 0
}
