package systems

import (
	"time"

	"github.com/lixenwraith/arcade-siege/component"
	"github.com/lixenwraith/arcade-siege/constants"
	"github.com/lixenwraith/arcade-siege/core"
	"github.com/lixenwraith/arcade-siege/engine"
)

// MovementSystem advances projectiles and the enemy formation, and rolls enemy fire
type MovementSystem struct {
	ctx *engine.GameContext
}

func NewMovementSystem(ctx *engine.GameContext) *MovementSystem {
	return &MovementSystem{ctx: ctx}
}

func (ms *MovementSystem) Priority() int {
	return constants.PriorityMovement
}

// Update moves everything by one frame; positions are frame-stepped, dt is unused
func (ms *MovementSystem) Update(dt time.Duration) {
	world := ms.ctx.World

	ms.updatePlayerBullets(world)
	ms.updateFormation(world)
	ms.enemyFire(world)
	ms.updateEnemyBullets(world)
}

func (ms *MovementSystem) updatePlayerBullets(world *engine.World) {
	nose := world.Player.NoseY()

	world.PlayerBullets.Each(func(h core.Handle, b *component.Projectile) bool {
		if b.IsLaser() {
			// Beam is pinned from the top of the field to the nose
			b.Y = 0
			b.Height = nose
			b.LaserLifetime--
			if b.LaserLifetime <= 0 {
				world.PlayerBullets.Remove(h)
			}
			return true
		}

		b.Y -= constants.PlayerBulletSpeed
		b.X += b.VX * constants.PlayerBulletSpeed
		if b.Y < 0 || b.X < 0 || b.X > constants.FieldWidth {
			world.PlayerBullets.Remove(h)
		}
		return true
	})
}

// updateFormation runs one shared edge pass, then moves every alive enemy in lock-step
func (ms *MovementSystem) updateFormation(world *engine.World) {
	hitEdge := false
	world.Enemies.Each(func(_ core.Handle, e *component.Enemy) bool {
		if !e.Alive {
			return true
		}
		if (e.X <= constants.EnemyEdgeMargin && world.FormationDir < 0) ||
			(e.X >= constants.FieldWidth-constants.EnemyEdgeMargin-constants.EnemyWidth && world.FormationDir > 0) {
			hitEdge = true
			return false
		}
		return true
	})

	drop := 0.0
	if hitEdge {
		world.FormationDir = -world.FormationDir
		drop = constants.EnemyDrop
	}

	step := constants.EnemySpeed * world.FormationDir
	world.Enemies.Each(func(_ core.Handle, e *component.Enemy) bool {
		if !e.Alive {
			return true
		}
		e.X += step
		e.Y += drop

		e.AnimCounter++
		if e.AnimCounter > constants.EnemyAnimTicks {
			e.AnimCounter = 0
			e.AnimFrame = (e.AnimFrame + 1) % constants.EnemyAnimFrames
		}
		return true
	})
}

func (ms *MovementSystem) enemyFire(world *engine.World) {
	chance := ms.ctx.Tuning.EnemyFireChance
	if chance <= 0 {
		return
	}

	world.Enemies.Each(func(_ core.Handle, e *component.Enemy) bool {
		if e.Alive && ms.ctx.Rand.Float64() < chance {
			world.EnemyBullets.Add(component.Projectile{
				X:      e.X + e.Width/2,
				Y:      e.Y + e.Height,
				Width:  constants.EnemyBulletWidth,
				Height: constants.EnemyBulletHeight,
				Owner:  component.OwnerEnemy,
				Source: e.Kind,
			})
		}
		return true
	})
}

func (ms *MovementSystem) updateEnemyBullets(world *engine.World) {
	world.EnemyBullets.Each(func(h core.Handle, b *component.Projectile) bool {
		b.Y += constants.EnemyBulletSpeed
		if b.Y > constants.FieldHeight {
			world.EnemyBullets.Remove(h)
		}
		return true
	})
}
