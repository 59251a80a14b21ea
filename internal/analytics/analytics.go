package analytics

import (
	"context"
	"sync"
	"time"
)

const (
	EventAddToCart      = "add_to_cart"
	EventRemoveFromCart = "remove_from_cart"
	EventLogin          = "login"
	EventSignUp         = "sign_up"
	EventOrderClaimed   = "order_claimed"
)

type Event struct {
	Name       string    `json:"event"`
	SessionID  string    `json:"session_id,omitempty"`
	CustomerID string    `json:"customer_id,omitempty"`
	CartID     string    `json:"cart_id,omitempty"`
	VariantID  string    `json:"variant_id,omitempty"`
	LineID     string    `json:"line_id,omitempty"`
	OrderID    string    `json:"order_id,omitempty"`
	Quantity   int       `json:"quantity,omitempty"`
	At         time.Time `json:"at"`
}

// Publisher is fire-and-forget: failures are logged and counted, never
// returned to the caller.
type Publisher interface {
	Publish(ctx context.Context, e Event)
}

type Noop struct{}

func (Noop) Publish(context.Context, Event) {}

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}
