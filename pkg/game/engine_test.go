package game

import (
	"context"
	"testing"
	"time"

	"github.com/slithergame/slither/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineRunAdvancesState(t *testing.T) {
	cfg := Config{
		GridWidth:    40,
		GridHeight:   10,
		TickInterval: MinTickInterval,
		FruitCount:   1,
	}
	now := time.Now()
	s := NewState(cfg, 42)
	s.Reset(now)
	require.True(t, s.QueueDirection(types.DirectionRight, now))
	startX := s.Snapshot().Snake[0].X

	engine := NewEngine(s)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- engine.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		return s.Snapshot().Snake[0].X > startX
	}, 2*time.Second, 10*time.Millisecond, "engine ticks move the snake")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("engine did not stop after cancellation")
	}
}

func TestEngineRunStopsWithoutTicking(t *testing.T) {
	s := NewState(testConfig(), 42)
	engine := NewEngine(s)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() {
		done <- engine.Run(ctx)
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("engine did not stop after cancellation")
	}

	assert.Equal(t, types.PhaseMenu, s.Phase())
}
