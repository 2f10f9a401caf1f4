package systems

import (
	"image/color"
	"math"

	"github.com/lixenwraith/arcade-siege/component"
	"github.com/lixenwraith/arcade-siege/constants"
	"github.com/lixenwraith/arcade-siege/engine"
)

// burst describes a radial particle emission; each range is min + rand*span
type burst struct {
	count                 int
	speedMin, speedSpan   float64
	radiusMin, radiusSpan float64
	lifeMin, lifeSpan     float64
	distMin, distSpan     float64 // Spawn offset from the origin along the angle
}

var (
	explosionBurst = burst{
		count:      constants.ExplosionParticles,
		speedMin:   1,
		speedSpan:  3,
		radiusMin:  1,
		radiusSpan: 3,
		lifeMin:    30,
		lifeSpan:   20,
	}
	hitSparkBurst = burst{
		count:      constants.HitSparkParticles,
		speedMin:   0.5,
		speedSpan:  1,
		radiusMin:  1,
		radiusSpan: 2,
		lifeMin:    10,
		lifeSpan:   10,
	}
	upgradeBurst = burst{
		count:      constants.UpgradeBurstParticles,
		speedMin:   1,
		speedSpan:  3,
		radiusMin:  1,
		radiusSpan: 3,
		lifeMin:    30,
		lifeSpan:   20,
		distMin:    30,
		distSpan:   30,
	}
)

func emit(ctx *engine.GameContext, b burst, x, y float64, c color.RGBA) {
	rng := ctx.Rand
	for i := 0; i < b.count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := b.speedMin + rng.Float64()*b.speedSpan
		dist := b.distMin + rng.Float64()*b.distSpan
		cos, sin := math.Cos(angle), math.Sin(angle)

		ctx.World.Particles.Add(component.Particle{
			X:      x + cos*dist,
			Y:      y + sin*dist,
			VX:     cos * speed,
			VY:     sin * speed,
			Radius: b.radiusMin + rng.Float64()*b.radiusSpan,
			Color:  c,
			Life:   b.lifeMin + rng.Float64()*b.lifeSpan,
		})
	}
}

// EmitExplosion spawns a kill explosion at (x, y)
func EmitExplosion(ctx *engine.GameContext, x, y float64, c color.RGBA) {
	emit(ctx, explosionBurst, x, y, c)
}

// EmitHitSpark spawns the small white spark for a non-lethal hit
func EmitHitSpark(ctx *engine.GameContext, x, y float64) {
	emit(ctx, hitSparkBurst, x, y, component.HitSparkColor)
}

// EmitUpgradeBurst rings the player with cyan particles
func EmitUpgradeBurst(ctx *engine.GameContext, x, y float64) {
	emit(ctx, upgradeBurst, x, y, component.PlayerColor)
}

// EmitBonusExplosion stacks explosion bursts for a destroyed bonus target
func EmitBonusExplosion(ctx *engine.GameContext, x, y float64) {
	for i := 0; i < constants.BonusExplosionBursts; i++ {
		emit(ctx, explosionBurst, x, y, component.BonusColor)
	}
}
