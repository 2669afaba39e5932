package outbox

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
)

type Relay struct {
	log       *slog.Logger
	store     *MemoryStore
	dispatch  *Dispatcher
	relayID   string
	batchSize int
	maxRetry  int
}

func NewRelay(log *slog.Logger, store *MemoryStore, dispatch *Dispatcher, relayID string) *Relay {
	return &Relay{
		log:       log,
		store:     store,
		dispatch:  dispatch,
		relayID:   relayID,
		batchSize: 100,
		maxRetry:  3,
	}
}

// Flush dispatches pending events batch by batch until none are pending and
// returns how many were sent. Events failing with ErrPermanent, or failing
// maxRetry times, end up failed.
func (r *Relay) Flush(ctx context.Context) (int, error) {
	sent := 0
	for {
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		events := r.store.LockBatch(r.batchSize)
		if len(events) == 0 {
			return sent, nil
		}

		ids := make([]uuid.UUID, 0, len(events))
		for _, e := range events {
			if err := r.dispatch.Dispatch(ctx, e); err != nil {
				if errors.Is(err, ErrPermanent) {
					r.store.MarkFailed(e.ID, err.Error())
				} else {
					r.store.MarkRetry(e.ID, err.Error(), r.maxRetry)
				}
				continue
			}
			ids = append(ids, e.ID)
		}
		r.store.MarkSent(ids)
		sent += len(ids)
		r.log.Debug("relay batch flushed", "relay_id", r.relayID, "batch", len(events), "sent", len(ids))
	}
}
