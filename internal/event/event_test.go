package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchReachesSubscribersInOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.Subscribe(ListenerFunc(func(e Event) { got = append(got, "a:"+string(e.Type)) }), WaveStarted, WaveCompleted)
	d.Subscribe(ListenerFunc(func(e Event) { got = append(got, "b:"+string(e.Type)) }), WaveStarted)

	d.Dispatch(WaveStarted, WaveData{Number: 1})
	d.Dispatch(WaveCompleted, WaveData{Number: 1})
	d.Dispatch(PlayerHit, nil)

	assert.Equal(t, []string{"a:WaveStarted", "b:WaveStarted", "a:WaveCompleted"}, got)
}

func TestResetDropsListeners(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(ListenerFunc(func(Event) { calls++ }), PlayerHit)
	d.Reset()
	d.Dispatch(PlayerHit, nil)
	assert.Zero(t, calls)
}
