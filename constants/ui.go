package constants

import "time"

// Terminal Layout
const (
	// HUDRows is the number of screen rows reserved above the playfield
	HUDRows = 1

	// StatusRows is the number of screen rows reserved below the playfield
	StatusRows = 1

	// MinScreenWidth and MinScreenHeight are the smallest terminal the renderer draws into
	MinScreenWidth  = 20
	MinScreenHeight = 8
)

// HUD Timing
const (
	// BannerDuration is how long a HUD banner (level, upgrade, bonus) stays visible
	BannerDuration = 2 * time.Second
)

// Terminal Glyphs
const (
	GlyphPlayer      = 'A'
	GlyphPlayerWing  = '^'
	GlyphBullet      = '|'
	GlyphLaser       = '┃'
	GlyphEnemyBullet = '!'
	GlyphBonus       = '◆'
	GlyphParticle    = '·'
	GlyphBorder      = '│'
)

// EnemyGlyphs holds the two animation glyphs per enemy kind, indexed by EnemyKind
var EnemyGlyphs = [3][2]rune{
	{'x', '+'}, // Regular
	{'X', '#'}, // Elite
	{'W', 'M'}, // Boss
}

// Overlay text
const (
	TextMenu          = "ARCADE SIEGE"
	TextMenuHint      = "press Enter to start, q to quit"
	TextGameOver      = "GAME OVER"
	TextGameOverHint  = "press Enter to play again"
	TextLevelComplete = "LEVEL %d COMPLETE"
	TextCountdown     = "next wave in %.1fs"
	TextControls      = "←/→ h/l move  space fire  q quit"
)
