package application

import "github.com/dmehra2102/retail-shop/pkg/outbox"

type EventRecorder interface {
	Append(aggregateType, aggregateID, eventType string, payload any, headers map[string]string, traceparent string) (outbox.Event, error)
}
