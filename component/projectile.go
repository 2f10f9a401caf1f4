package component

import "github.com/lixenwraith/arcade-siege/core"

// ProjectileOwner identifies who fired a projectile
type ProjectileOwner int

const (
	OwnerPlayer ProjectileOwner = iota
	OwnerEnemy
)

// Projectile is a bullet or laser beam
// (X, Y) is the top-centre point used for point-in-rect hit tests
// A laser spans X±Width/2 from Y to Y+Height
type Projectile struct {
	X, Y          float64
	VX            float64 // Horizontal drift, multiplied by the bullet speed
	Width, Height float64
	Owner         ProjectileOwner
	Variant       WeaponVariant // Player-owned only
	Source        EnemyKind     // Enemy-owned only
	LaserLifetime int           // Remaining ticks, laser only
}

// IsLaser reports whether the projectile is a laser beam
func (p *Projectile) IsLaser() bool {
	return p.Owner == OwnerPlayer && p.Variant == WeaponLaser
}

// Area returns the projectile's drawn box
func (p *Projectile) Area() core.Area {
	return core.Area{X: p.X - p.Width/2, Y: p.Y, Width: p.Width, Height: p.Height}
}
