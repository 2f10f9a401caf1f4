package component

import "image/color"

// WeaponVariant is one of the mutually exclusive firing patterns the player can hold
type WeaponVariant int

const (
	WeaponSingle WeaponVariant = iota // Default, never expires
	WeaponDouble
	WeaponTriple
	WeaponLaser
	WeaponSpread
	weaponVariantCount
)

// AllWeaponVariants lists every variant in declaration order
var AllWeaponVariants = []WeaponVariant{WeaponSingle, WeaponDouble, WeaponTriple, WeaponLaser, WeaponSpread}

// BonusDrops lists the variants a bonus target can carry
var BonusDrops = []WeaponVariant{WeaponDouble, WeaponTriple, WeaponLaser, WeaponSpread}

func (w WeaponVariant) String() string {
	switch w {
	case WeaponSingle:
		return "Single"
	case WeaponDouble:
		return "Double"
	case WeaponTriple:
		return "Triple"
	case WeaponLaser:
		return "Laser"
	case WeaponSpread:
		return "Spread"
	default:
		return "Unknown"
	}
}

// Valid reports whether w is a declared variant
func (w WeaponVariant) Valid() bool {
	return w >= WeaponSingle && w < weaponVariantCount
}

// Color returns the projectile and HUD indicator colour of the variant
func (w WeaponVariant) Color() color.RGBA {
	switch w {
	case WeaponDouble:
		return color.RGBA{0, 255, 255, 255}
	case WeaponTriple:
		return color.RGBA{0, 255, 0, 255}
	case WeaponLaser:
		return color.RGBA{255, 0, 255, 255}
	case WeaponSpread:
		return color.RGBA{255, 136, 0, 255}
	default:
		return color.RGBA{255, 255, 0, 255}
	}
}
