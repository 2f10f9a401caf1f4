package component

import (
	"image/color"

	"github.com/lixenwraith/arcade-siege/constants"
)

// HitSparkColor is the colour of damage sparks
var HitSparkColor = color.RGBA{255, 255, 255, 255}

// Particle is a visual-only effect whose lifetime the simulation owns
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  color.RGBA
	Life   float64 // Frames remaining
}

// Alpha returns the opacity derived from remaining life
func (p *Particle) Alpha() float64 {
	a := p.Life / constants.ParticleAlphaLife
	if a > 1 {
		return 1
	}
	if a < 0 {
		return 0
	}
	return a
}
