package broadcast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubDeliversToAllSubscribers(t *testing.T) {
	hub := NewHub()

	ch1, cancel1 := hub.Subscribe()
	defer cancel1()
	ch2, cancel2 := hub.Subscribe()
	defer cancel2()

	hub.Notify()

	select {
	case <-ch1:
	default:
		t.Fatal("first subscriber missed the signal")
	}
	select {
	case <-ch2:
	default:
		t.Fatal("second subscriber missed the signal")
	}
}

func TestHubCoalescesPendingSignals(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()
	defer cancel()

	// Rapid mutations collapse into a single pending signal
	hub.Notify()
	hub.Notify()
	hub.Notify()

	<-ch
	select {
	case <-ch:
		t.Fatal("signals were queued instead of coalesced")
	default:
	}

	// After draining, the next mutation signals again
	hub.Notify()
	select {
	case <-ch:
	default:
		t.Fatal("signal after drain was lost")
	}
}

func TestHubNotifyNeverBlocks(t *testing.T) {
	hub := NewHub()
	_, cancel := hub.Subscribe()
	defer cancel()

	// Nobody is draining; repeated notifies must still return
	for i := 0; i < 100; i++ {
		hub.Notify()
	}
}

func TestHubCancel(t *testing.T) {
	hub := NewHub()

	_, cancel1 := hub.Subscribe()
	_, cancel2 := hub.Subscribe()
	require.Equal(t, 2, hub.Len())

	cancel1()
	assert.Equal(t, 1, hub.Len())

	// Cancelling twice is a no-op
	cancel1()
	assert.Equal(t, 1, hub.Len())

	cancel2()
	assert.Equal(t, 0, hub.Len())

	// Notifying an empty hub is fine
	hub.Notify()
}
