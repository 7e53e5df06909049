// internal/config/tunables.go
package config

// Config is the full set of gameplay tunables. Every system reads it through
// a shared pointer so a hot reload takes effect on the next tick.
type Config struct {
	Window           WindowConfig           `toml:"window"`
	Player           PlayerConfig           `toml:"player"`
	Dash             DashConfig             `toml:"dash"`
	Energy           EnergyConfig           `toml:"energy"`
	Entities         EntitiesConfig         `toml:"entities"`
	Weapons          WeaponsConfig          `toml:"weapons"`
	Combat           CombatConfig           `toml:"combat"`
	Homing           HomingConfig           `toml:"homing"`
	Spawning         SpawningConfig         `toml:"spawning"`
	Formations       FormationsConfig       `toml:"formations"`
	FormationSpacing FormationSpacingConfig `toml:"formation_spacing"`
	Collision        CollisionConfig        `toml:"collision"`
	GhostBehavior    GhostBehaviorConfig    `toml:"ghost_behavior"`
	EnemyBehavior    EnemyBehaviorConfig    `toml:"enemy_behavior"`
	ProjectileBounds ProjectileBoundsConfig `toml:"projectile_bounds"`
	ScreenShake      ScreenShakeConfig      `toml:"screen_shake"`
	Particles        ParticleConfig         `toml:"particles"`
	Animations       AnimationConfig        `toml:"animations"`
}

type WindowConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Title  string  `toml:"title"`
}

type PlayerConfig struct {
	StartingHealth  float64  `toml:"starting_health"`
	StartingEnergy  float64  `toml:"starting_energy"`
	MaxEnergy       float64  `toml:"max_energy"`
	MovementSpeed   float64  `toml:"movement_speed"`
	Weapons         []string `toml:"weapons"`
	ParryCooldown   float64  `toml:"parry_cooldown"`
	ParryWindow     float64  `toml:"parry_window"`
	ParryEnergyCost float64  `toml:"parry_energy_cost"`
	ParryReach      float64  `toml:"parry_reach"`
}

type DashConfig struct {
	Enabled        bool    `toml:"enabled"`
	Distance       float64 `toml:"distance"`
	Duration       float64 `toml:"duration"`
	IFrameDuration float64 `toml:"i_frame_duration"`
	EnergyCost     float64 `toml:"energy_cost"`
	Cooldown       float64 `toml:"cooldown"`
}

type EnergyConfig struct {
	RegenRateIdle   float64 `toml:"regen_rate_idle"`
	RegenRateActive float64 `toml:"regen_rate_active"`
	GhostDrainRatio float64 `toml:"ghost_drain_ratio"`
}

// EntityStats describes one entity kind. Weapons are weapon kind names.
type EntityStats struct {
	Health       float64  `toml:"health"`
	Damage       float64  `toml:"damage"`
	EnergyCost   float64  `toml:"energy_cost"`
	FireInterval float64  `toml:"fire_interval"`
	Weapons      []string `toml:"weapons"`
}

type HealingConfig struct {
	HealRate   float64 `toml:"heal_rate"`
	HealRadius float64 `toml:"heal_radius"`
}

type SplittingConfig struct {
	SplitCount           int     `toml:"split_count"`
	SplitHealthRatio     float64 `toml:"split_health_ratio"`
	SplitSpacing         float64 `toml:"split_spacing"`
	SplitSpeedMultiplier float64 `toml:"split_speed_multiplier"`
	ChildSpawnDuration   float64 `toml:"child_spawn_duration"`
}

type EntitiesConfig struct {
	BasicFighter EntityStats     `toml:"basic_fighter"`
	Sniper       EntityStats     `toml:"sniper"`
	Tank         EntityStats     `toml:"tank"`
	Elite        EntityStats     `toml:"elite"`
	Healer       EntityStats     `toml:"healer"`
	Splitter     EntityStats     `toml:"splitter"`
	Healing      HealingConfig   `toml:"healing"`
	Splitting    SplittingConfig `toml:"splitting"`
}

// WeaponStats: FireRate is the minimum interval between shots in seconds.
type WeaponStats struct {
	Damage          float64 `toml:"damage"`
	FireRate        float64 `toml:"fire_rate"`
	ProjectileSpeed float64 `toml:"projectile_speed"`
}

type WeaponsConfig struct {
	Bullet  WeaponStats `toml:"bullet"`
	Laser   WeaponStats `toml:"laser"`
	Missile WeaponStats `toml:"missile"`
	Plasma  WeaponStats `toml:"plasma"`
	Bombs   WeaponStats `toml:"bombs"`
}

type CombatConfig struct {
	PlayerDamageMultiplier float64 `toml:"player_damage_multiplier"`
	GhostDamageMultiplier  float64 `toml:"ghost_damage_multiplier"`
	EnemyDamageMultiplier  float64 `toml:"enemy_damage_multiplier"`
	PlayerExplosionRadius  float64 `toml:"player_explosion_radius"`
	GhostExplosionRadius   float64 `toml:"ghost_explosion_radius"`
	EnemyExplosionRadius   float64 `toml:"enemy_explosion_radius"`
	SpreadAngleDegrees     float64 `toml:"spread_angle_degrees"`
}

type HomingConfig struct {
	Speed          float64 `toml:"speed"`
	TurnRate       float64 `toml:"turn_rate"`
	MaxSpeedFactor float64 `toml:"max_speed_factor"`
	MaxLifetime    float64 `toml:"max_lifetime"`
}

type SpawningConfig struct {
	WaveMode           bool    `toml:"wave_mode"`
	WaveCount          int     `toml:"wave_count"`
	EnemySpawnInterval float64 `toml:"enemy_spawn_interval"`
	InitialDelay       float64 `toml:"initial_delay"`
	SpawnMargin        float64 `toml:"spawn_margin"`
	SpawnY             float64 `toml:"spawn_y"`
	TransitionPause    float64 `toml:"transition_pause"`
	ScriptsDir         string  `toml:"scripts_dir"`
}

type FormationsConfig struct {
	VShapeMin     int `toml:"v_shape_min"`
	VShapeOptimal int `toml:"v_shape_optimal"`
	LineMin       int `toml:"line_min"`
	LineOptimal   int `toml:"line_optimal"`
	CircleMin     int `toml:"circle_min"`
	CircleOptimal int `toml:"circle_optimal"`
	ScatteredMax  int `toml:"scattered_max"`
}

type FormationSpacingConfig struct {
	VShapeSpacing        float64 `toml:"v_shape_spacing"`
	VShapeVerticalFactor float64 `toml:"v_shape_vertical_factor"`
	LineSpacing          float64 `toml:"line_spacing"`
	LineHeightOffset     float64 `toml:"line_height_offset"`
	CircleRadius         float64 `toml:"circle_radius"`
	ScreenEdgePadding    float64 `toml:"screen_edge_padding"`
	ScatterHalfWidth     float64 `toml:"scatter_half_width"`
	ScatterMinHeight     float64 `toml:"scatter_min_height"`
	ScatterMaxHeight     float64 `toml:"scatter_max_height"`
}

type CollisionConfig struct {
	ProjectileRadius float64 `toml:"projectile_radius"`
	EnemyRadius      float64 `toml:"enemy_radius"`
	PlayerRadius     float64 `toml:"player_radius"`
	GhostRadius      float64 `toml:"ghost_radius"`
}

type GhostBehaviorConfig struct {
	FireInterval       float64 `toml:"fire_interval"`
	MovementThresholdY float64 `toml:"movement_threshold_y"`
	FastAscentSpeed    float64 `toml:"fast_ascent_speed"`
	SlowHoverSpeed     float64 `toml:"slow_hover_speed"`
	ProjectileSpeed    float64 `toml:"projectile_speed"`
	ScreenBoundaryTop  float64 `toml:"screen_boundary_top"`
}

type EnemyBehaviorConfig struct {
	MovementThresholdY    float64 `toml:"movement_threshold_y"`
	FastDescentSpeed      float64 `toml:"fast_descent_speed"`
	SlowHoverSpeed        float64 `toml:"slow_hover_speed"`
	FireThresholdY        float64 `toml:"fire_threshold_y"`
	ScreenBoundaryBottom  float64 `toml:"screen_boundary_bottom"`
	BasicProjectileSpeedY float64 `toml:"basic_projectile_speed_y"`
	InitialFireDelayMin   float64 `toml:"initial_fire_delay_min"`
	InitialFireDelayMax   float64 `toml:"initial_fire_delay_max"`
}

type ProjectileBoundsConfig struct {
	OffScreenPadding float64 `toml:"off_screen_padding"`
}

type ScreenShakeConfig struct {
	BulletHitIntensity  float64 `toml:"bullet_hit_intensity"`
	LaserHitIntensity   float64 `toml:"laser_hit_intensity"`
	MissileHitIntensity float64 `toml:"missile_hit_intensity"`
	PlasmaHitIntensity  float64 `toml:"plasma_hit_intensity"`
	BombHitIntensity    float64 `toml:"bomb_hit_intensity"`
	WeaponHitDuration   float64 `toml:"weapon_hit_duration"`

	EnemyDeathDuration  float64 `toml:"enemy_death_duration"`
	EnemyDeathIntensity float64 `toml:"enemy_death_intensity"`
	ParryDuration       float64 `toml:"parry_duration"`
	ParryIntensity      float64 `toml:"parry_intensity"`
	PlayerHitDuration   float64 `toml:"player_hit_duration"`
	PlayerHitIntensity  float64 `toml:"player_hit_intensity"`
}

type ParticleConfig struct {
	ExplosionCountMin    int     `toml:"explosion_count_min"`
	ExplosionCountMax    int     `toml:"explosion_count_max"`
	ExplosionLifetimeMin float64 `toml:"explosion_lifetime_min"`
	ExplosionLifetimeMax float64 `toml:"explosion_lifetime_max"`
	ExplosionSizeMin     float64 `toml:"explosion_size_min"`
	ExplosionSizeMax     float64 `toml:"explosion_size_max"`
	ExplosionSpeedMin    float64 `toml:"explosion_speed_min"`
	ExplosionSpeedMax    float64 `toml:"explosion_speed_max"`

	SparkLifetimeMin float64 `toml:"spark_lifetime_min"`
	SparkLifetimeMax float64 `toml:"spark_lifetime_max"`
	SparkSizeMin     float64 `toml:"spark_size_min"`
	SparkSizeMax     float64 `toml:"spark_size_max"`
	SparkSpeedMin    float64 `toml:"spark_speed_min"`
	SparkSpeedMax    float64 `toml:"spark_speed_max"`

	BulletParticleCount  int `toml:"bullet_particle_count"`
	LaserParticleCount   int `toml:"laser_particle_count"`
	MissileParticleCount int `toml:"missile_particle_count"`
	PlasmaParticleCount  int `toml:"plasma_particle_count"`
	BombParticleCount    int `toml:"bomb_particle_count"`

	DeathRedCount    int `toml:"death_red_count"`
	DeathOrangeCount int `toml:"death_orange_count"`
	DeathYellowCount int `toml:"death_yellow_count"`

	ParryBlueCount  int `toml:"parry_blue_count"`
	ParryWhiteCount int `toml:"parry_white_count"`

	Friction  float64 `toml:"friction"`
	SizeDecay float64 `toml:"size_decay"`
	MaxCount  int     `toml:"max_count"`
}

type AnimationConfig struct {
	HitFlashDuration          float64 `toml:"hit_flash_duration"`
	GhostSpawnDuration        float64 `toml:"ghost_spawn_duration"`
	GhostSpawnScaleStart      float64 `toml:"ghost_spawn_scale_start"`
	GhostSpawnRotationSpeed   float64 `toml:"ghost_spawn_rotation_speed"`
	GhostDespawnDuration      float64 `toml:"ghost_despawn_duration"`
	GhostDespawnRotationSpeed float64 `toml:"ghost_despawn_rotation_speed"`
}
