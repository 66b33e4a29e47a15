package events

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Event names emitted by the booking and user flows.
const (
	EventBookingCreated   = "booking.created"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
	EventPaymentSucceeded = "payment.succeeded"
	EventUserCreated      = "user.created"
	EventUserLoggedIn     = "user.logged_in"
)

// UserCreatedPayload accompanies EventUserCreated.
type UserCreatedPayload struct {
	UserID string
	Email  string
}

// UserLoggedInPayload accompanies EventUserLoggedIn.
type UserLoggedInPayload struct {
	UserID string
}

// Handler consumes one event. Returned errors are logged by the bus and
// never reach the emitter.
type Handler func(ctx context.Context, payload any) error

// Bus is an in-process publish/subscribe dispatcher decoupling booking and
// payment state changes from their side effects. Dispatch walks handlers in
// registration order, but each handler runs in its own goroutine: one
// handler's failure or panic cannot affect a sibling or the emitting call
// site, and no completion ordering is guaranteed between handlers or across
// back-to-back events.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   *zap.Logger
	wg       sync.WaitGroup
}

// NewBus constructs an empty Bus.
func NewBus(logger *zap.Logger) *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

// Subscribe registers a handler for an event. The registry is meant to be
// written once at startup and read thereafter.
func (b *Bus) Subscribe(event string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[event] = append(b.handlers[event], h)
}

// Emit dispatches the payload to every subscriber of the event. Emit never
// fails: handler errors and panics are caught and logged where they occur.
func (b *Bus) Emit(event string, payload any) {
	b.mu.RLock()
	handlers := b.handlers[event]
	b.mu.RUnlock()

	for _, h := range handlers {
		h := h
		b.wg.Add(1)
		go func() {
			defer b.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("event handler panic",
						zap.String("event", event), zap.Any("panic", r))
				}
			}()
			if err := h(context.Background(), payload); err != nil {
				b.logger.Error("event handler error",
					zap.String("event", event), zap.Error(err))
			}
		}()
	}
}

// Wait blocks until all in-flight handlers finish. Used on shutdown and in
// tests; new Emit calls during Wait are not excluded.
func (b *Bus) Wait() {
	b.wg.Wait()
}
