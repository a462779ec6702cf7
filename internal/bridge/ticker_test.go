package bridge_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/bridge"
)

func TestTickerWakes(t *testing.T) {
	wake := make(chan struct{}, 1)
	ticker, err := bridge.NewTicker(bridge.TickerConfig{
		Interval: 10 * time.Millisecond,
		Wake:     wake,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ticker.Run(ctx) }()

	// At least one wake should arrive quickly.
	select {
	case <-wake:
	case <-time.After(time.Second):
		t.Fatal("no wake received")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("ticker did not stop")
	}
}

func TestTickerDropsWhenBusy(t *testing.T) {
	// Unbuffered consumer that never reads: sends must be dropped instead
	// of blocking the ticker.
	wake := make(chan struct{})
	ticker, err := bridge.NewTicker(bridge.TickerConfig{
		Interval: 5 * time.Millisecond,
		Wake:     wake,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- ticker.Run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("ticker blocked on a busy consumer")
	}
}

func TestTickerRequiresWakeChannel(t *testing.T) {
	_, err := bridge.NewTicker(bridge.TickerConfig{Interval: time.Second})
	assert.Error(t, err)
}
