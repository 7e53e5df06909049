package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/event"
	"go-ghost-shooter/internal/formation"
	"go-ghost-shooter/pkg/geom"
)

func TestSummonGhostSpendsEnergyAndDequeues(t *testing.T) {
	w, cfg, d := newTestWorld(t)
	rec := record(d, event.GhostSummoned)
	w.Player.AvailableGhosts = []defs.EntityKind{defs.BasicFighter, defs.Sniper, defs.BasicFighter}
	ss := NewSummonSystem(w, cfg, d)

	require.NoError(t, ss.SummonGhost(defs.Sniper))

	assert.Equal(t, []defs.EntityKind{defs.BasicFighter, defs.BasicFighter}, w.Player.AvailableGhosts)
	assert.Equal(t, 200-cfg.Entities.Sniper.EnergyCost, w.Player.Energy)
	require.Len(t, w.Ghosts, 1)
	g := w.Ghosts[0]
	assert.Equal(t, defs.Sniper, g.Kind)
	assert.True(t, g.Anim.Spawning)
	assert.InDelta(t, cfg.Entities.Sniper.EnergyCost*cfg.Energy.GhostDrainRatio, g.EnergyDrain, 1e-9)
	assert.Equal(t, 1, rec.count(event.GhostSummoned))
}

func TestSummonGhostRejections(t *testing.T) {
	w, cfg, d := newTestWorld(t)
	ss := NewSummonSystem(w, cfg, d)

	assert.ErrorIs(t, ss.SummonGhost(defs.Tank), ErrGhostNotQueued)

	w.Player.AvailableGhosts = []defs.EntityKind{defs.Elite}
	w.Player.Energy = 10
	assert.ErrorIs(t, ss.SummonGhost(defs.Elite), ErrInsufficientEnergy)
	assert.Equal(t, []defs.EntityKind{defs.Elite}, w.Player.AvailableGhosts)
	assert.Empty(t, w.Ghosts)
}

func TestDeployCircleWithTwoGhostsFallsBackToScattered(t *testing.T) {
	w, cfg, d := newTestWorld(t)
	w.Formation = formation.Circle
	w.Player.AvailableGhosts = []defs.EntityKind{defs.BasicFighter, defs.BasicFighter}
	anchor := w.Player.Position

	require.NoError(t, NewSummonSystem(w, cfg, d).DeployFormation())

	require.Len(t, w.Ghosts, 2)
	for i, g := range w.Ghosts {
		want := formation.PositionFor(anchor, i, 2, formation.Scattered, &cfg.FormationSpacing, cfg.Window.Width)
		assert.Equal(t, want, g.Position)
	}
	assert.Empty(t, w.Player.AvailableGhosts)
	assert.Equal(t, 200-2*cfg.Entities.BasicFighter.EnergyCost, w.Player.Energy)
}

func TestDeployTakesOptimalCount(t *testing.T) {
	w, cfg, d := newTestWorld(t)
	w.Formation = formation.Line
	w.Player.Energy = 500
	for i := 0; i < 7; i++ {
		w.Player.AvailableGhosts = append(w.Player.AvailableGhosts, defs.BasicFighter)
	}

	require.NoError(t, NewSummonSystem(w, cfg, d).DeployFormation())

	assert.Len(t, w.Ghosts, cfg.Formations.LineOptimal)
	assert.Len(t, w.Player.AvailableGhosts, 7-cfg.Formations.LineOptimal)
	for _, g := range w.Ghosts {
		assert.InDelta(t, w.Player.Position.Y-cfg.FormationSpacing.LineHeightOffset, g.Position.Y, 1e-9)
	}
}

func TestDeployIsAllOrNothing(t *testing.T) {
	w, cfg, d := newTestWorld(t)
	w.Formation = formation.VShape
	w.Player.AvailableGhosts = []defs.EntityKind{defs.Elite, defs.Elite, defs.Elite}
	w.Player.Energy = 200

	err := NewSummonSystem(w, cfg, d).DeployFormation()

	assert.ErrorIs(t, err, ErrInsufficientEnergy)
	assert.Empty(t, w.Ghosts)
	assert.Len(t, w.Player.AvailableGhosts, 3)
	assert.Equal(t, 200.0, w.Player.Energy)
}

func TestDeployWithEmptyQueue(t *testing.T) {
	w, cfg, d := newTestWorld(t)
	assert.ErrorIs(t, NewSummonSystem(w, cfg, d).DeployFormation(), ErrNoGhosts)
}

func TestSwitchFormationNeedsEnoughGhosts(t *testing.T) {
	w, cfg, d := newTestWorld(t)
	ss := NewSummonSystem(w, cfg, d)
	w.Player.AvailableGhosts = []defs.EntityKind{defs.BasicFighter, defs.BasicFighter}

	assert.ErrorIs(t, ss.SwitchFormation(formation.Circle), ErrFormationTooSmall)
	assert.Equal(t, formation.Scattered, w.Formation)

	require.NoError(t, ss.SwitchFormation(formation.VShape))
	assert.Equal(t, formation.VShape, w.Formation)
}

func TestCyclingFormationsNeverSticks(t *testing.T) {
	w, cfg, d := newTestWorld(t)
	ss := NewSummonSystem(w, cfg, d)
	w.Player.AvailableGhosts = []defs.EntityKind{defs.BasicFighter, defs.BasicFighter}

	var visited []formation.Kind
	for i := 0; i < 4; i++ {
		next := formation.Next(w.Formation, len(w.Player.AvailableGhosts), &cfg.Formations)
		require.NoError(t, ss.SwitchFormation(next))
		visited = append(visited, w.Formation)
	}
	assert.Equal(t, []formation.Kind{formation.VShape, formation.Scattered, formation.VShape, formation.Scattered}, visited)
}

func TestCancelSummonReturnsGhostsToQueue(t *testing.T) {
	w, cfg, d := newTestWorld(t)
	ss := NewSummonSystem(w, cfg, d)
	assert.ErrorIs(t, ss.CancelSummon(), ErrNoGhosts)

	addGhost(w, defs.Tank, geom.V(100, 300), 150)
	addGhost(w, defs.Sniper, geom.V(200, 300), 30)
	leaving := addGhost(w, defs.Elite, geom.V(300, 300), 0)
	leaving.Anim.StartDespawn(0.4)

	require.NoError(t, ss.CancelSummon())

	assert.Equal(t, []defs.EntityKind{defs.Tank, defs.Sniper}, w.Player.AvailableGhosts)
	require.Len(t, w.Ghosts, 1)
	assert.Equal(t, defs.Elite, w.Ghosts[0].Kind)
}
