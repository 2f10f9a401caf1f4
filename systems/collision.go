package systems

import (
	"time"

	"github.com/lixenwraith/arcade-siege/component"
	"github.com/lixenwraith/arcade-siege/constants"
	"github.com/lixenwraith/arcade-siege/core"
	"github.com/lixenwraith/arcade-siege/engine"
	"github.com/lixenwraith/arcade-siege/events"
)

// CollisionSystem resolves hits in a fixed order: laser pass, player bullets, enemy bullets
type CollisionSystem struct {
	ctx     *engine.GameContext
	weapons *WeaponSystem

	// Enemies already damaged by a laser during resolvedFrame
	laserResolved map[core.Handle]struct{}
	resolvedFrame int64
}

func NewCollisionSystem(ctx *engine.GameContext, weapons *WeaponSystem) *CollisionSystem {
	return &CollisionSystem{
		ctx:           ctx,
		weapons:       weapons,
		laserResolved: make(map[core.Handle]struct{}),
		resolvedFrame: -1,
	}
}

func (cs *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

func (cs *CollisionSystem) Update(dt time.Duration) {
	cs.Resolve()
}

// Resolve runs all three passes for the current frame
// Running it again within the same frame never re-applies laser damage
func (cs *CollisionSystem) Resolve() {
	cs.laserPass()
	cs.playerBulletPass()
	cs.enemyBulletPass()
}

func (cs *CollisionSystem) laserPass() {
	world := cs.ctx.World

	frame := cs.ctx.FrameNumber.Load()
	if frame != cs.resolvedFrame {
		clear(cs.laserResolved)
		cs.resolvedFrame = frame
	}

	world.PlayerBullets.Each(func(_ core.Handle, laser *component.Projectile) bool {
		if !laser.IsLaser() {
			return true
		}
		left, right := laser.X-laser.Width/2, laser.X+laser.Width/2

		world.Enemies.Each(func(h core.Handle, e *component.Enemy) bool {
			if !e.Alive {
				return true
			}
			if _, done := cs.laserResolved[h]; done {
				return true
			}
			if !e.Area().OverlapsSpanX(left, right) {
				return true
			}
			cs.laserResolved[h] = struct{}{}
			cs.damageEnemy(e)
			return true
		})

		if b := world.Bonus; b != nil && b.Active {
			if b.Area().OverlapsSpanX(left, right) {
				cs.destroyBonus()
			}
		}
		return true
	})
}

func (cs *CollisionSystem) playerBulletPass() {
	world := cs.ctx.World

	world.PlayerBullets.Each(func(h core.Handle, bullet *component.Projectile) bool {
		if bullet.IsLaser() {
			return true
		}

		if b := world.Bonus; b != nil && b.Active {
			if b.Area().ContainsPoint(bullet.X, bullet.Y) {
				cs.destroyBonus()
				world.PlayerBullets.Remove(h)
				return true
			}
		}

		bx, by := bullet.X, bullet.Y
		hit := false
		world.Enemies.Each(func(_ core.Handle, e *component.Enemy) bool {
			if !e.Alive {
				return true
			}
			if !e.Area().ContainsPoint(bx, by) {
				return true
			}
			cs.damageEnemy(e)
			hit = true
			return false // First match wins
		})
		if hit {
			world.PlayerBullets.Remove(h)
		}
		return true
	})
}

func (cs *CollisionSystem) enemyBulletPass() {
	world := cs.ctx.World
	p := &world.Player

	world.EnemyBullets.Each(func(h core.Handle, bullet *component.Projectile) bool {
		if !p.Area().ContainsPoint(bullet.X, bullet.Y) {
			return true
		}
		world.EnemyBullets.Remove(h)

		lives := cs.ctx.State.LoseLife()
		cs.weapons.Revoke()
		EmitExplosion(cs.ctx, p.X, p.Y, component.PlayerColor)

		cs.ctx.PushEvent(events.EventLivesChanged, &events.ValuePayload{Value: lives})
		cs.ctx.PushEvent(events.EventExplosion, &events.ExplosionPayload{
			X:      p.X,
			Y:      p.Y,
			Source: events.ExplosionPlayer,
		})
		return true
	})
}

// damageEnemy applies one unit of damage, scoring and exploding on a kill
func (cs *CollisionSystem) damageEnemy(e *component.Enemy) {
	cx, cy := e.X+e.Width/2, e.Y+e.Height/2

	if !e.Damage() {
		EmitHitSpark(cs.ctx, cx, cy)
		return
	}

	score := cs.ctx.State.AddScore(e.Kind.KillScore())
	EmitExplosion(cs.ctx, cx, cy, e.Kind.Color())

	cs.ctx.PushEvent(events.EventScoreChanged, &events.ValuePayload{Value: score})
	cs.ctx.PushEvent(events.EventExplosion, &events.ExplosionPayload{
		X:      cx,
		Y:      cy,
		Source: events.ExplosionEnemy,
		Kind:   e.Kind,
	})
}

// destroyBonus empties the bonus slot, awards the level-scaled bonus and applies the drop
func (cs *CollisionSystem) destroyBonus() {
	world := cs.ctx.World
	b := world.Bonus
	world.Bonus = nil
	b.Active = false

	cx, cy := b.X+b.Width/2, b.Y+b.Height/2
	award := constants.BonusScore + (cs.ctx.State.GetLevel()-1)*constants.BonusScorePerLevel
	score := cs.ctx.State.AddScore(award)

	EmitBonusExplosion(cs.ctx, cx, cy)
	cs.weapons.Upgrade(b.Drop)

	cs.ctx.PushEvent(events.EventScoreChanged, &events.ValuePayload{Value: score})
	cs.ctx.PushEvent(events.EventBonusDestroyed, &events.BonusPayload{
		Drop:      b.Drop,
		Direction: b.Direction,
		Score:     award,
	})
	cs.ctx.PushEvent(events.EventExplosion, &events.ExplosionPayload{
		X:      cx,
		Y:      cy,
		Source: events.ExplosionBonus,
	})
}
