package outbox

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps events in append order. It is not safe for concurrent use.
type MemoryStore struct {
	events []*Event
	index  map[uuid.UUID]*Event
	now    func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		index: make(map[uuid.UUID]*Event),
		now:   time.Now,
	}
}

// Append marshals payload and stores it as a pending event.
func (s *MemoryStore) Append(aggregateType, aggregateID, eventType string, payload any, headers map[string]string, traceparent string) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	ev := &Event{
		ID:            uuid.New(),
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		Type:          eventType,
		Payload:       raw,
		Headers:       headers,
		Traceparent:   traceparent,
		CreatedAt:     s.now().UTC(),
		Status:        StatusPending,
	}
	s.events = append(s.events, ev)
	s.index[ev.ID] = ev
	return *ev, nil
}

// LockBatch moves up to batchSize pending events to in_progress.
func (s *MemoryStore) LockBatch(batchSize int) []Event {
	var out []Event
	for _, ev := range s.events {
		if len(out) == batchSize {
			break
		}
		if ev.Status != StatusPending {
			continue
		}
		ev.Status = StatusInProgress
		out = append(out, *ev)
	}
	return out
}

func (s *MemoryStore) MarkSent(ids []uuid.UUID) {
	for _, id := range ids {
		if ev, ok := s.index[id]; ok {
			ev.Status = StatusSent
		}
	}
}

// MarkRetry puts the event back to pending, or to failed once it has been
// attempted maxRetry times.
func (s *MemoryStore) MarkRetry(id uuid.UUID, errMsg string, maxRetry int) {
	ev, ok := s.index[id]
	if !ok {
		return
	}
	ev.RetryCount++
	ev.LastError = errMsg
	ev.Status = StatusPending
	if ev.RetryCount >= maxRetry {
		ev.Status = StatusFailed
	}
}

func (s *MemoryStore) MarkFailed(id uuid.UUID, errMsg string) {
	if ev, ok := s.index[id]; ok {
		ev.Status = StatusFailed
		ev.LastError = errMsg
		ev.RetryCount++
	}
}

// Events returns a copy of every stored event.
func (s *MemoryStore) Events() []Event {
	out := make([]Event, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, *ev)
	}
	return out
}

func (s *MemoryStore) Pending() int {
	n := 0
	for _, ev := range s.events {
		if ev.Status == StatusPending {
			n++
		}
	}
	return n
}
