package systems

import (
	"time"

	"github.com/lixenwraith/arcade-siege/component"
	"github.com/lixenwraith/arcade-siege/constants"
	"github.com/lixenwraith/arcade-siege/engine"
	"github.com/lixenwraith/arcade-siege/events"
)

// patternFunc builds the projectiles one accepted fire command produces
type patternFunc func(p *component.Player) []component.Projectile

// weaponPatterns must cover every component.AllWeaponVariants entry
var weaponPatterns = map[component.WeaponVariant]patternFunc{
	component.WeaponSingle: singlePattern,
	component.WeaponDouble: doublePattern,
	component.WeaponTriple: triplePattern,
	component.WeaponLaser:  laserPattern,
	component.WeaponSpread: spreadPattern,
}

func playerBullet(p *component.Player, dx, vx float64) component.Projectile {
	return component.Projectile{
		X:       p.X + dx,
		Y:       p.NoseY(),
		VX:      vx,
		Width:   constants.PlayerBulletWidth,
		Height:  constants.PlayerBulletHeight,
		Owner:   component.OwnerPlayer,
		Variant: p.Weapon,
	}
}

func singlePattern(p *component.Player) []component.Projectile {
	return []component.Projectile{playerBullet(p, 0, 0)}
}

func doublePattern(p *component.Player) []component.Projectile {
	return []component.Projectile{
		playerBullet(p, -constants.DoubleOffsetX, 0),
		playerBullet(p, constants.DoubleOffsetX, 0),
	}
}

func triplePattern(p *component.Player) []component.Projectile {
	return []component.Projectile{
		playerBullet(p, 0, 0),
		playerBullet(p, -constants.TripleOffsetX, -constants.TripleDrift),
		playerBullet(p, constants.TripleOffsetX, constants.TripleDrift),
	}
}

func laserPattern(p *component.Player) []component.Projectile {
	return []component.Projectile{{
		X:             p.X,
		Y:             0,
		Width:         constants.LaserWidth,
		Height:        p.NoseY(),
		Owner:         component.OwnerPlayer,
		Variant:       component.WeaponLaser,
		LaserLifetime: constants.LaserLifetimeTicks,
	}}
}

func spreadPattern(p *component.Player) []component.Projectile {
	out := make([]component.Projectile, 0, 2*constants.SpreadHalfCount+1)
	for i := -constants.SpreadHalfCount; i <= constants.SpreadHalfCount; i++ {
		out = append(out, playerBullet(p, 0, float64(i)*constants.SpreadDriftStep))
	}
	return out
}

// WeaponSystem owns the player's weapon variant, upgrade countdown and fire cooldown
type WeaponSystem struct {
	ctx *engine.GameContext
}

func NewWeaponSystem(ctx *engine.GameContext) *WeaponSystem {
	return &WeaponSystem{ctx: ctx}
}

func (ws *WeaponSystem) Priority() int {
	return constants.PriorityWeapon
}

// Update decays an active upgrade by the frame's elapsed time
func (ws *WeaponSystem) Update(dt time.Duration) {
	p := &ws.ctx.World.Player
	if p.Weapon == component.WeaponSingle {
		return
	}

	p.WeaponRemaining -= dt
	if p.WeaponRemaining <= 0 {
		p.ResetWeapon()
	}
}

// Fire spawns the current variant's pattern; returns false when rejected by phase or cooldown
// Rejected requests are dropped, not queued
func (ws *WeaponSystem) Fire() bool {
	if ws.ctx.State.GetPhase() != engine.PhasePlaying {
		return false
	}

	now := ws.ctx.Now()
	p := &ws.ctx.World.Player
	if !p.LastShot.IsZero() && now.Sub(p.LastShot) < p.Cooldown {
		return false
	}

	pattern, ok := weaponPatterns[p.Weapon]
	if !ok {
		pattern = singlePattern
	}

	shots := pattern(p)
	for _, shot := range shots {
		ws.ctx.World.PlayerBullets.Add(shot)
	}
	p.LastShot = now

	ws.ctx.PushEvent(events.EventShoot, &events.ShootPayload{
		Variant:     p.Weapon,
		Projectiles: len(shots),
	})
	return true
}

// Upgrade applies a bonus drop: new variant, full duration, cosmetic burst
func (ws *WeaponSystem) Upgrade(variant component.WeaponVariant) {
	if variant == component.WeaponSingle || !variant.Valid() {
		return
	}

	p := &ws.ctx.World.Player
	p.Weapon = variant
	p.WeaponRemaining = constants.WeaponUpgradeDuration

	EmitUpgradeBurst(ws.ctx, p.X, p.Y)
	ws.ctx.PushEvent(events.EventWeaponUpgrade, &events.WeaponPayload{Variant: variant})
}

// Revoke drops any active upgrade immediately
func (ws *WeaponSystem) Revoke() {
	ws.ctx.World.Player.ResetWeapon()
}
