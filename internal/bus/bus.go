// Package bus carries typed emergency notifications between agents.
// Messages published during step k become visible to drains at step
// k+1 and are dropped if still undelivered when that step ends, so the
// bus never accumulates state across an episode.
package bus

import (
	"github.com/google/uuid"

	"github.com/oreforge/steelmas/internal/plant"
)

// #region message-types

// Type names the kind of notification.
type Type string

const (
	TypeSurgeWarning      Type = "surge_warning"
	TypeEmergencyThrottle Type = "emergency_throttle"
	TypeOverPressure      Type = "over_pressure"
)

// Urgency orders messages by severity. Only messages at or above an
// agent's configured threshold are published by its safety rules.
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyHigh
	UrgencyCritical
)

// String implements fmt.Stringer for log output.
func (u Urgency) String() string {
	switch u {
	case UrgencyLow:
		return "low"
	case UrgencyHigh:
		return "high"
	case UrgencyCritical:
		return "critical"
	}
	return "unknown"
}

// Message is a step-scoped notification. It is owned by the sender
// until published and read-only afterwards.
type Message struct {
	ID        string
	Type      Type
	Sender    plant.AgentID
	Recipient plant.AgentID // plant.Broadcast reaches every agent
	Urgency   Urgency
	Step      int // step index at publish time
	Payload   map[string]float64
}

// #endregion message-types

// #region bus

// Bus is the in-process publish/subscribe queue. It is scoped to one
// environment and must only be touched from the step loop.
type Bus struct {
	queue []Message
	// seen tracks which recipients already drained a broadcast message,
	// so no recipient receives the same message twice.
	seen map[string]map[plant.AgentID]bool
}

// New returns an empty bus.
func New() *Bus {
	return &Bus{seen: make(map[string]map[plant.AgentID]bool)}
}

// Publish enqueues a message. The message must already carry the
// originating step index; an ID is assigned if the sender left it empty.
func (b *Bus) Publish(m Message) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	b.queue = append(b.queue, m)
}

// Drain returns all messages addressed to recipient (or broadcast)
// whose step index is strictly earlier than step. Directed messages are
// removed; broadcast messages stay queued for other recipients until
// EndStep but are never handed to the same recipient twice. Publish
// order is preserved. Same-step messages stay queued so that causality
// within a step is single-directional.
func (b *Bus) Drain(recipient plant.AgentID, step int) []Message {
	var out []Message
	kept := b.queue[:0]
	for _, m := range b.queue {
		if m.Step >= step {
			kept = append(kept, m)
			continue
		}
		switch m.Recipient {
		case recipient:
			out = append(out, m)
		case plant.Broadcast:
			if !b.seen[m.ID][recipient] {
				if b.seen[m.ID] == nil {
					b.seen[m.ID] = make(map[plant.AgentID]bool)
				}
				b.seen[m.ID][recipient] = true
				out = append(out, m)
			}
			kept = append(kept, m)
		default:
			kept = append(kept, m)
		}
	}
	b.queue = kept
	return out
}

// EndStep drops every message that was visible this step but not
// removed by a directed drain, returning the drop count. Messages
// published during the current step survive to the next.
func (b *Bus) EndStep(step int) int {
	dropped := 0
	kept := b.queue[:0]
	for _, m := range b.queue {
		if m.Step < step {
			// Broadcasts that reached at least one recipient were
			// delivered, not dropped.
			if m.Recipient != plant.Broadcast || len(b.seen[m.ID]) == 0 {
				dropped++
			}
			delete(b.seen, m.ID)
			continue
		}
		kept = append(kept, m)
	}
	b.queue = kept
	return dropped
}

// Clone deep-copies the bus so the step loop can roll back drains if
// the rest of the step fails.
func (b *Bus) Clone() *Bus {
	out := &Bus{
		queue: append([]Message(nil), b.queue...),
		seen:  make(map[string]map[plant.AgentID]bool, len(b.seen)),
	}
	for id, recipients := range b.seen {
		m := make(map[plant.AgentID]bool, len(recipients))
		for r, v := range recipients {
			m[r] = v
		}
		out.seen[id] = m
	}
	return out
}

// Pending reports the queue length, for tests and observability.
func (b *Bus) Pending() int {
	return len(b.queue)
}

// Reset discards all queued messages at an episode boundary.
func (b *Bus) Reset() {
	b.queue = nil
	b.seen = make(map[string]map[plant.AgentID]bool)
}

// #endregion bus
