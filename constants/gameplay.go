package constants

import "time"

// Session
const (
	StartingLives = 3
	StartingLevel = 1
)

// Scoring
const (
	ScoreBoss          = 30
	ScoreElite         = 20
	ScoreRegular       = 10
	BonusScore         = 150
	BonusScorePerLevel = 50
	LevelClearBonus    = 100 // Multiplied by the cleared level
)

// Enemy health per kind
const (
	HealthBoss    = 2
	HealthElite   = 1
	HealthRegular = 1
)

// Weapons
const (
	// FireCooldown is the minimum gap between two accepted fire commands
	FireCooldown = 150 * time.Millisecond

	// WeaponUpgradeDuration is how long a bonus weapon stays active
	WeaponUpgradeDuration = 15 * time.Second

	// LaserLifetimeTicks is the beam lifetime in ticks (~0.5s at 60Hz)
	LaserLifetimeTicks = 30
	LaserWidth         = 4.0

	DoubleOffsetX   = 15.0
	TripleOffsetX   = 15.0
	TripleDrift     = 0.5
	SpreadDriftStep = 0.5
	SpreadHalfCount = 2 // Bullets on each side of the centre bullet

	PlayerBulletWidth  = 4.0
	PlayerBulletHeight = 15.0
)

// Level flow
const (
	// LevelCompleteDuration is how long the level-complete screen is shown
	LevelCompleteDuration = 3 * time.Second

	// LevelAdvanceBackupSlack is added to LevelCompleteDuration for the backup timer
	LevelAdvanceBackupSlack = 500 * time.Millisecond
)

// Bonus spawning
const (
	// BonusInterval is the tick-accumulated spawn interval
	BonusInterval = 7 * time.Second

	// BonusRespawnCooldown is the wait after a bonus target leaves the field
	BonusRespawnCooldown = 2 * time.Second

	// BonusPeriodicCheck is the independent timer-driven spawn check
	BonusPeriodicCheck = 5 * time.Second

	// BonusInitialDelay is the one-shot spawn attempt after a game starts
	BonusInitialDelay = 3 * time.Second
)

// Particles
const (
	ExplosionParticles    = 20
	HitSparkParticles     = 5
	UpgradeBurstParticles = 30
	BonusExplosionBursts  = 30

	// ParticleAlphaLife is the life value that maps to full opacity
	ParticleAlphaLife = 50.0
)
