// internal/event/types.go
package event

import (
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/pkg/geom"
)

const (
	EnemyKilled       EventType = "EnemyKilled"  // враг уничтожен и попал в очередь призраков
	EnemySplit        EventType = "EnemySplit"   // сплиттер распался
	EnemyEscaped      EventType = "EnemyEscaped" // враг ушёл за нижний край
	GhostSummoned     EventType = "GhostSummoned"
	GhostLost         EventType = "GhostLost"
	PlayerHit         EventType = "PlayerHit"
	PlayerDied        EventType = "PlayerDied"
	WeaponHit         EventType = "WeaponHit" // сильнейшее попадание за тик
	ProjectileParried EventType = "ProjectileParried"
	WaveStarted       EventType = "WaveStarted"
	WaveCompleted     EventType = "WaveCompleted"
	CampaignComplete  EventType = "CampaignComplete"
)

type EnemyKilledData struct {
	Kind     defs.EntityKind
	Position geom.Vec2
}

type EnemySplitData struct {
	Position geom.Vec2
	Children int
	Ghost    bool
}

type GhostData struct {
	Kind     defs.EntityKind
	Position geom.Vec2
}

type PositionData struct {
	Position geom.Vec2
}

type WeaponHitData struct {
	Weapon   defs.WeaponKind
	Position geom.Vec2
}

type ParryData struct {
	Position geom.Vec2
	Count    int
}

type WaveData struct {
	Number int
	Name   string
}
