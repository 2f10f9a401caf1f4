package systems

import (
	"time"

	"github.com/lixenwraith/arcade-siege/component"
	"github.com/lixenwraith/arcade-siege/constants"
	"github.com/lixenwraith/arcade-siege/core"
	"github.com/lixenwraith/arcade-siege/engine"
)

// ParticleSystem ages visual particles
type ParticleSystem struct {
	ctx *engine.GameContext
}

func NewParticleSystem(ctx *engine.GameContext) *ParticleSystem {
	return &ParticleSystem{ctx: ctx}
}

func (ps *ParticleSystem) Priority() int {
	return constants.PriorityParticle
}

func (ps *ParticleSystem) Update(dt time.Duration) {
	particles := ps.ctx.World.Particles
	particles.Each(func(h core.Handle, p *component.Particle) bool {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life <= 0 {
			particles.Remove(h)
		}
		return true
	})
}
