// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06

	DefaultConfigPath = "config.toml"

	TextCharWidth = 7
	TextOffsetY   = 4

	HUDMargin      = 10
	BarWidth       = 160
	BarHeight      = 10
	IndicatorWidth = 120
)

var (
	BackgroundColor   = color.RGBA{10, 10, 24, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	PlayerColor       = color.RGBA{80, 200, 255, 255}
	PlayerIFrameColor = color.RGBA{180, 230, 255, 160}
	ParryRingColor    = color.RGBA{120, 180, 255, 200}
	HealthBarColor    = color.RGBA{220, 60, 60, 255}
	EnergyBarColor    = color.RGBA{90, 160, 255, 255}
	BarBackColor      = color.RGBA{40, 40, 50, 220}
	HitFlashColor     = color.RGBA{255, 255, 255, 255}
	WavePrepColor     = color.RGBA{70, 130, 180, 220}
	WaveActiveColor   = color.RGBA{220, 60, 60, 220}

	// Индексы совпадают с defs.EntityKind
	EnemyColors = []color.RGBA{
		{230, 70, 70, 255},  // BasicFighter
		{240, 200, 60, 255}, // Sniper
		{150, 110, 80, 255}, // Tank
		{200, 60, 220, 255}, // Elite
		{80, 230, 120, 255}, // Healer
		{255, 140, 40, 255}, // Splitter
	}

	// Индексы совпадают с defs.WeaponKind
	WeaponColors = []color.RGBA{
		{255, 255, 120, 255}, // Bullet
		{120, 255, 255, 255}, // Laser
		{255, 150, 60, 255},  // Missile
		{200, 120, 255, 255}, // Plasma
		{255, 70, 40, 255},   // Bombs
	}

	GhostTint = color.RGBA{160, 200, 255, 180}
)
