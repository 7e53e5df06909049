// internal/config/defaults.go
package config

// Default returns the compiled-in tunables. A config file only needs to
// override the values it changes.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  ScreenWidth,
			Height: ScreenHeight,
			Title:  "Ghost Shooter",
		},
		Player: PlayerConfig{
			StartingHealth:  100,
			StartingEnergy:  200,
			MaxEnergy:       500,
			MovementSpeed:   250,
			Weapons:         []string{"Bullet", "Missile"},
			ParryCooldown:   1.5,
			ParryWindow:     0.3,
			ParryEnergyCost: 5,
			ParryReach:      20,
		},
		Dash: DashConfig{
			Enabled:        true,
			Distance:       120,
			Duration:       0.15,
			IFrameDuration: 0.3,
			EnergyCost:     15,
			Cooldown:       0.8,
		},
		Energy: EnergyConfig{
			RegenRateIdle:   30,
			RegenRateActive: 1,
			GhostDrainRatio: 0.1,
		},
		Entities: EntitiesConfig{
			BasicFighter: EntityStats{Health: 50, Damage: 10, EnergyCost: 15, FireInterval: 2.0, Weapons: []string{"Bullet"}},
			Sniper:       EntityStats{Health: 30, Damage: 25, EnergyCost: 25, FireInterval: 4.0, Weapons: []string{"Laser"}},
			Tank:         EntityStats{Health: 150, Damage: 15, EnergyCost: 40, FireInterval: 1.5, Weapons: []string{"Missile", "Plasma"}},
			Elite:        EntityStats{Health: 500, Damage: 50, EnergyCost: 80, FireInterval: 0.8, Weapons: []string{"Laser", "Missile", "Plasma"}},
			Healer:       EntityStats{Health: 60, Damage: 5, EnergyCost: 20, FireInterval: 3.0, Weapons: []string{"Bullet"}},
			Splitter:     EntityStats{Health: 80, Damage: 12, EnergyCost: 25, FireInterval: 2.0, Weapons: []string{"Bullet"}},
			Healing: HealingConfig{
				HealRate:   15,
				HealRadius: 150,
			},
			Splitting: SplittingConfig{
				SplitCount:           3,
				SplitHealthRatio:     0.3,
				SplitSpacing:         40,
				SplitSpeedMultiplier: 2.0,
				ChildSpawnDuration:   0.4,
			},
		},
		Weapons: WeaponsConfig{
			Bullet:  WeaponStats{Damage: 10, FireRate: 0.1, ProjectileSpeed: 500},
			Laser:   WeaponStats{Damage: 60, FireRate: 1.5, ProjectileSpeed: 800},
			Missile: WeaponStats{Damage: 30, FireRate: 0.5, ProjectileSpeed: 250},
			Plasma:  WeaponStats{Damage: 25, FireRate: 0.4, ProjectileSpeed: 500},
			Bombs:   WeaponStats{Damage: 80, FireRate: 2.0, ProjectileSpeed: 200},
		},
		Combat: CombatConfig{
			PlayerDamageMultiplier: 1.0,
			GhostDamageMultiplier:  0.75,
			EnemyDamageMultiplier:  0.5,
			PlayerExplosionRadius:  80,
			GhostExplosionRadius:   70,
			EnemyExplosionRadius:   60,
			SpreadAngleDegrees:     15,
		},
		Homing: HomingConfig{
			Speed:          300,
			TurnRate:       8,
			MaxSpeedFactor: 1.5,
			MaxLifetime:    5,
		},
		Spawning: SpawningConfig{
			WaveMode:           true,
			WaveCount:          5,
			EnemySpawnInterval: 2.2,
			InitialDelay:       3.0,
			SpawnMargin:        50,
			SpawnY:             -20,
			TransitionPause:    3.0,
			ScriptsDir:         "scripts",
		},
		Formations: FormationsConfig{
			VShapeMin:     2,
			VShapeOptimal: 6,
			LineMin:       3,
			LineOptimal:   5,
			CircleMin:     4,
			CircleOptimal: 8,
			ScatteredMax:  10,
		},
		FormationSpacing: FormationSpacingConfig{
			VShapeSpacing:        40,
			VShapeVerticalFactor: 0.8,
			LineSpacing:          50,
			LineHeightOffset:     80,
			CircleRadius:         70,
			ScreenEdgePadding:    30,
			ScatterHalfWidth:     120,
			ScatterMinHeight:     40,
			ScatterMaxHeight:     120,
		},
		Collision: CollisionConfig{
			ProjectileRadius: 5,
			EnemyRadius:      15,
			PlayerRadius:     15,
			GhostRadius:      12,
		},
		GhostBehavior: GhostBehaviorConfig{
			FireInterval:       1.0,
			MovementThresholdY: 200,
			FastAscentSpeed:    50,
			SlowHoverSpeed:     100,
			ProjectileSpeed:    350,
			ScreenBoundaryTop:  -50,
		},
		EnemyBehavior: EnemyBehaviorConfig{
			MovementThresholdY:    200,
			FastDescentSpeed:      100,
			SlowHoverSpeed:        50,
			FireThresholdY:        50,
			ScreenBoundaryBottom:  650,
			BasicProjectileSpeedY: 250,
			InitialFireDelayMin:   1,
			InitialFireDelayMax:   2,
		},
		ProjectileBounds: ProjectileBoundsConfig{
			OffScreenPadding: 50,
		},
		ScreenShake: ScreenShakeConfig{
			BulletHitIntensity:  0.8,
			LaserHitIntensity:   4.0,
			MissileHitIntensity: 2.5,
			PlasmaHitIntensity:  1.5,
			BombHitIntensity:    5.0,
			WeaponHitDuration:   0.5,
			EnemyDeathDuration:  1.0,
			EnemyDeathIntensity: 1.5,
			ParryDuration:       0.25,
			ParryIntensity:      5.0,
			PlayerHitDuration:   0.3,
			PlayerHitIntensity:  5.0,
		},
		Particles: ParticleConfig{
			ExplosionCountMin:    20,
			ExplosionCountMax:    50,
			ExplosionLifetimeMin: 0.4,
			ExplosionLifetimeMax: 0.8,
			ExplosionSizeMin:     3,
			ExplosionSizeMax:     6,
			ExplosionSpeedMin:    50,
			ExplosionSpeedMax:    150,
			SparkLifetimeMin:     0.15,
			SparkLifetimeMax:     0.3,
			SparkSizeMin:         2,
			SparkSizeMax:         4,
			SparkSpeedMin:        80,
			SparkSpeedMax:        200,
			BulletParticleCount:  10,
			LaserParticleCount:   18,
			MissileParticleCount: 22,
			PlasmaParticleCount:  16,
			BombParticleCount:    30,
			DeathRedCount:        15,
			DeathOrangeCount:     10,
			DeathYellowCount:     5,
			ParryBlueCount:       22,
			ParryWhiteCount:      18,
			Friction:             0.95,
			SizeDecay:            8,
			MaxCount:             2000,
		},
		Animations: AnimationConfig{
			HitFlashDuration:          0.18,
			GhostSpawnDuration:        0.5,
			GhostSpawnScaleStart:      0.3,
			GhostSpawnRotationSpeed:   8,
			GhostDespawnDuration:      0.4,
			GhostDespawnRotationSpeed: 12,
		},
	}
}
