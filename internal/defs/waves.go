// internal/defs/waves.go
package defs

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySpawnList = errors.New("wave has no spawn groups")
	ErrWaveNotFound   = errors.New("wave not found")
)

// Hook is a script callback attached to a wave. The wave manager calls each
// hook at most once.
type Hook func() error

// SpawnSpec is one spawn group as written by a wave script.
type SpawnSpec struct {
	EnemyKind string
	Count     int
	Interval  float64
	Delay     float64
}

// WaveScript is the raw answer of a wave source for one wave number.
type WaveScript struct {
	Number     int
	Name       string
	PrepTime   float64
	Spawns     []SpawnSpec
	OnStart    Hook
	OnComplete Hook
}

// WaveSource provides wave scripts by number.
type WaveSource interface {
	LoadWave(number int) (*WaveScript, error)
}

// SpawnGroup описывает одну группу врагов внутри волны.
type SpawnGroup struct {
	Kind     EntityKind
	Count    int
	Interval float64
	Delay    float64
	Spawned  int
	Timer    float64 // до следующего спавна
}

// Done reports whether the group has spawned its full count.
func (g *SpawnGroup) Done() bool {
	return g.Spawned >= g.Count
}

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Number   int
	Name     string
	PrepTime float64
	Groups   []SpawnGroup
}

// BuildWave validates a script answer and turns it into a WaveDefinition.
// Each group's first spawn happens after its delay.
func BuildWave(ws *WaveScript) (*WaveDefinition, error) {
	if len(ws.Spawns) == 0 {
		return nil, fmt.Errorf("wave %d: %w", ws.Number, ErrEmptySpawnList)
	}
	groups := make([]SpawnGroup, 0, len(ws.Spawns))
	for i, s := range ws.Spawns {
		kind, err := ParseEntityKind(s.EnemyKind)
		if err != nil {
			return nil, fmt.Errorf("wave %d spawn %d: %w", ws.Number, i, err)
		}
		if s.Count < 0 || s.Interval < 0 || s.Delay < 0 {
			return nil, fmt.Errorf("wave %d spawn %d: count, interval and delay must not be negative", ws.Number, i)
		}
		groups = append(groups, SpawnGroup{
			Kind:     kind,
			Count:    s.Count,
			Interval: s.Interval,
			Delay:    s.Delay,
			Timer:    s.Delay,
		})
	}
	prep := ws.PrepTime
	if prep < 0 {
		prep = 0
	}
	return &WaveDefinition{
		Number:   ws.Number,
		Name:     ws.Name,
		PrepTime: prep,
		Groups:   groups,
	}, nil
}

// TotalCount is the number of enemies the wave spawns overall.
func (w *WaveDefinition) TotalCount() int {
	n := 0
	for _, g := range w.Groups {
		n += g.Count
	}
	return n
}

// TotalSpawned is the number of enemies spawned so far.
func (w *WaveDefinition) TotalSpawned() int {
	n := 0
	for _, g := range w.Groups {
		n += g.Spawned
	}
	return n
}

// AllSpawned reports whether every group is exhausted.
func (w *WaveDefinition) AllSpawned() bool {
	for i := range w.Groups {
		if !w.Groups[i].Done() {
			return false
		}
	}
	return true
}

// StaticWaves is a WaveSource backed by a Go map. Hooks are not supported.
type StaticWaves map[int]WaveScript

func (s StaticWaves) LoadWave(number int) (*WaveScript, error) {
	ws, ok := s[number]
	if !ok {
		return nil, fmt.Errorf("wave %d: %w", number, ErrWaveNotFound)
	}
	ws.Number = number
	ws.Spawns = append([]SpawnSpec(nil), ws.Spawns...)
	return &ws, nil
}

// WavePatterns is the built-in campaign, used when no script directory is
// available.
var WavePatterns = StaticWaves{
	1: {Name: "First Contact", PrepTime: 3, Spawns: []SpawnSpec{
		{EnemyKind: "BasicFighter", Count: 5, Interval: 1.5},
	}},
	2: {Name: "Crossfire", PrepTime: 3, Spawns: []SpawnSpec{
		{EnemyKind: "BasicFighter", Count: 6, Interval: 1.2},
		{EnemyKind: "Sniper", Count: 2, Interval: 4, Delay: 2},
	}},
	3: {Name: "Heavy Metal", PrepTime: 4, Spawns: []SpawnSpec{
		{EnemyKind: "Tank", Count: 2, Interval: 5},
		{EnemyKind: "Healer", Count: 1, Interval: 1, Delay: 3},
		{EnemyKind: "BasicFighter", Count: 6, Interval: 1.5, Delay: 1},
	}},
	4: {Name: "Shatter", PrepTime: 4, Spawns: []SpawnSpec{
		{EnemyKind: "Splitter", Count: 4, Interval: 2.5},
		{EnemyKind: "Sniper", Count: 3, Interval: 3, Delay: 2},
	}},
	5: {Name: "The Elite", PrepTime: 5, Spawns: []SpawnSpec{
		{EnemyKind: "Elite", Count: 1, Interval: 1, Delay: 2},
		{EnemyKind: "Healer", Count: 2, Interval: 4, Delay: 4},
		{EnemyKind: "Tank", Count: 2, Interval: 6},
	}},
}
