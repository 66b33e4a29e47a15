package events

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBusFanout(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var mu sync.Mutex
	var got []string
	record := func(name string) Handler {
		return func(ctx context.Context, payload any) error {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, name+":"+payload.(string))
			return nil
		}
	}

	bus.Subscribe("booking.created", record("first"))
	bus.Subscribe("booking.created", record("second"))
	bus.Subscribe("booking.cancelled", record("other"))

	bus.Emit("booking.created", "b-1")
	bus.Wait()

	assert.ElementsMatch(t, []string{"first:b-1", "second:b-1"}, got)
}

func TestBusHandlerFailureIsolation(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var mu sync.Mutex
	var delivered []string

	bus.Subscribe("payment.succeeded", func(ctx context.Context, payload any) error {
		return errors.New("smtp unreachable")
	})
	bus.Subscribe("payment.succeeded", func(ctx context.Context, payload any) error {
		panic("subscriber bug")
	})
	bus.Subscribe("payment.succeeded", func(ctx context.Context, payload any) error {
		mu.Lock()
		defer mu.Unlock()
		delivered = append(delivered, payload.(string))
		return nil
	})

	// Emit must survive a failing and a panicking sibling and still reach
	// the healthy subscriber.
	assert.NotPanics(t, func() {
		bus.Emit("payment.succeeded", "p-1")
		bus.Wait()
	})
	assert.Equal(t, []string{"p-1"}, delivered)
}

func TestBusEmitWithoutSubscribers(t *testing.T) {
	bus := NewBus(zap.NewNop())
	assert.NotPanics(t, func() {
		bus.Emit("booking.created", "b-1")
		bus.Wait()
	})
}

func TestBusInterleavedEvents(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var mu sync.Mutex
	counts := map[string]int{}
	count := func(event string) Handler {
		return func(ctx context.Context, payload any) error {
			mu.Lock()
			defer mu.Unlock()
			counts[event]++
			return nil
		}
	}

	bus.Subscribe("payment.succeeded", count("payment.succeeded"))
	bus.Subscribe("booking.confirmed", count("booking.confirmed"))

	// Back-to-back emission, as done by the confirmation flow. No ordering
	// between completions is promised, only that both fire exactly once.
	bus.Emit("payment.succeeded", "p-1")
	bus.Emit("booking.confirmed", "b-1")
	bus.Wait()

	assert.Equal(t, 1, counts["payment.succeeded"])
	assert.Equal(t, 1, counts["booking.confirmed"])
}
