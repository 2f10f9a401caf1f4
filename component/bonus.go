package component

import (
	"image/color"

	"github.com/lixenwraith/arcade-siege/core"
)

// BonusColor is the bonus target's body and explosion colour
var BonusColor = color.RGBA{255, 255, 0, 255}

// BonusTarget is the roaming target carrying a weapon drop
type BonusTarget struct {
	X, Y          float64 // Top-left
	Width, Height float64
	Direction     int // -1 moving left, +1 moving right
	Speed         float64
	Drop          WeaponVariant
	Active        bool
	AnimFrame     int
	AnimCounter   int
}

// Area returns the bonus target's hitbox
func (b *BonusTarget) Area() core.Area {
	return core.Area{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}
