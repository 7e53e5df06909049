// internal/system/wave.go
package system

import (
	"fmt"
	"log"

	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/event"
	"go-ghost-shooter/internal/interfaces"
	"go-ghost-shooter/internal/utils"
)

// WaveState - состояние волны
type WaveState int

const (
	WaveReady WaveState = iota
	WavePreparing
	WaveActive
	WaveComplete
	WaveTransition
)

func (s WaveState) String() string {
	switch s {
	case WaveReady:
		return "Ready"
	case WavePreparing:
		return "Preparing"
	case WaveActive:
		return "Active"
	case WaveComplete:
		return "Complete"
	case WaveTransition:
		return "Transition"
	}
	return fmt.Sprintf("WaveState(%d)", int(s))
}

// WaveInfo is the read-only status the HUD shows.
type WaveInfo struct {
	Number           int
	Total            int
	Name             string
	State            WaveState
	PrepCountdown    float64
	Spawned          int
	ToSpawn          int
	CampaignComplete bool
	Stalled          bool
}

// WaveManager drives Ready → Preparing → Active → Complete → Transition → Ready.
type WaveManager struct {
	source     defs.WaveSource
	host       interfaces.WaveHost
	cfg        *config.Config
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher

	number  int
	current *defs.WaveDefinition
	state   WaveState

	prepTimer       float64
	transitionTimer float64

	// Hooks are taken and cleared when called, so each runs at most once.
	onStart    defs.Hook
	onComplete defs.Hook

	campaignComplete bool
	stalled          bool
}

func NewWaveManager(source defs.WaveSource, host interfaces.WaveHost, cfg *config.Config, rng *utils.PRNGService, dispatcher *event.Dispatcher) *WaveManager {
	return &WaveManager{
		source:     source,
		host:       host,
		cfg:        cfg,
		rng:        rng,
		dispatcher: dispatcher,
		state:      WaveReady,
	}
}

// StartNextWave loads the next wave and enters Preparing. It returns false
// when the campaign is over, the machine is busy or the wave failed to load.
// A failed load stalls the campaign on the current wave.
func (m *WaveManager) StartNextWave() bool {
	if m.state != WaveReady || m.campaignComplete {
		return false
	}

	next := m.number + 1
	if next > m.cfg.Spawning.WaveCount {
		m.campaignComplete = true
		log.Printf("WaveManager: campaign complete after %d waves", m.number)
		m.dispatcher.Dispatch(event.CampaignComplete, event.WaveData{Number: m.number})
		return false
	}

	ws, err := m.source.LoadWave(next)
	if err != nil {
		log.Printf("WaveManager: failed to load wave %d: %v", next, err)
		m.stalled = true
		return false
	}
	wave, err := defs.BuildWave(ws)
	if err != nil {
		log.Printf("WaveManager: invalid wave %d: %v", next, err)
		m.stalled = true
		return false
	}

	m.number = next
	m.current = wave
	m.onStart = ws.OnStart
	m.onComplete = ws.OnComplete
	m.prepTimer = wave.PrepTime
	m.state = WavePreparing
	m.stalled = false
	log.Printf("WaveManager: wave %d (%s) preparing, %.1fs", next, wave.Name, wave.PrepTime)
	return true
}

// Update advances the state machine by one tick.
func (m *WaveManager) Update(deltaTime float64) {
	switch m.state {
	case WavePreparing:
		m.prepTimer -= deltaTime
		if m.prepTimer <= 0 {
			m.prepTimer = 0
			runHook(&m.onStart, "on_start", m.number)
			m.state = WaveActive
			m.dispatcher.Dispatch(event.WaveStarted, event.WaveData{Number: m.number, Name: m.current.Name})
		}

	case WaveActive:
		m.spawn(deltaTime)
		if m.current.AllSpawned() && m.host.EnemiesAlive() == 0 {
			m.state = WaveComplete
		}

	case WaveComplete:
		runHook(&m.onComplete, "on_complete", m.number)
		log.Printf("WaveManager: wave %d complete", m.number)
		m.dispatcher.Dispatch(event.WaveCompleted, event.WaveData{Number: m.number, Name: m.current.Name})
		m.current = nil
		m.transitionTimer = m.cfg.Spawning.TransitionPause
		m.state = WaveTransition

	case WaveTransition:
		m.transitionTimer -= deltaTime
		if m.transitionTimer <= 0 {
			m.transitionTimer = 0
			m.state = WaveReady
		}
	}
}

// spawn ticks every group's own timer and spawns one enemy per expiry.
func (m *WaveManager) spawn(deltaTime float64) {
	sc := &m.cfg.Spawning
	for i := range m.current.Groups {
		g := &m.current.Groups[i]
		if g.Done() {
			continue
		}
		g.Timer -= deltaTime
		if g.Timer > 0 {
			continue
		}
		x := m.rng.BiasedRange(sc.SpawnMargin, m.cfg.Window.Width-sc.SpawnMargin)
		m.host.SpawnEnemy(g.Kind, x)
		g.Spawned++
		g.Timer = g.Interval
	}
}

func runHook(h *defs.Hook, name string, wave int) {
	fn := *h
	*h = nil
	if fn == nil {
		return
	}
	if err := fn(); err != nil {
		log.Printf("WaveManager: wave %d %s failed: %v", wave, name, err)
	}
}

// Info returns the status for the HUD.
func (m *WaveManager) Info() WaveInfo {
	info := WaveInfo{
		Number:           m.number,
		Total:            m.cfg.Spawning.WaveCount,
		State:            m.state,
		CampaignComplete: m.campaignComplete,
		Stalled:          m.stalled,
	}
	if m.state == WavePreparing {
		info.PrepCountdown = m.prepTimer
	}
	if m.current != nil {
		info.Name = m.current.Name
		info.Spawned = m.current.TotalSpawned()
		info.ToSpawn = m.current.TotalCount()
	}
	return info
}

func (m *WaveManager) State() WaveState { return m.state }

// Ready reports whether StartNextWave may be called.
func (m *WaveManager) Ready() bool {
	return m.state == WaveReady && !m.campaignComplete && !m.stalled
}

func (m *WaveManager) CampaignComplete() bool { return m.campaignComplete }
