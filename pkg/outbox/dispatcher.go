package outbox

import (
	"context"
	"errors"
	"log/slog"
)

var ErrPermanent = errors.New("permanent")

type Sink interface {
	Publish(ctx context.Context, event Event) error
}

type Dispatcher struct {
	log  *slog.Logger
	sink Sink
}

func NewDispatcher(log *slog.Logger, sink Sink) *Dispatcher {
	return &Dispatcher{log: log, sink: sink}
}

func (d *Dispatcher) Dispatch(ctx context.Context, event Event) error {
	if err := d.sink.Publish(ctx, event); err != nil {
		d.log.Error("outbox dispatch failed", "event_id", event.ID, "type", event.Type, "err", err)
		return err
	}
	d.log.Debug("outbox dispatched", "event_id", event.ID, "type", event.Type)
	return nil
}

// LogSink writes every event as a structured log record.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Publish(ctx context.Context, event Event) error {
	s.log.InfoContext(ctx, "domain event",
		"event_id", event.ID,
		"aggregate_type", event.AggregateType,
		"aggregate_id", event.AggregateID,
		"type", event.Type,
		"payload", string(event.Payload),
		"traceparent", event.Traceparent,
	)
	return nil
}
