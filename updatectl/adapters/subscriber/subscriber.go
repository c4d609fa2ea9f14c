package subscriber

import (
	"click-updater/updatectl/core"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

const headerEventType = "Click-Event"

// NatsSubscriber connects to the broker only while a Watch is running.
type NatsSubscriber struct {
	address string
	subj    string
	log     *slog.Logger
}

func NewNatsSubscriber(address, subj string, log *slog.Logger) *NatsSubscriber {
	return &NatsSubscriber{address: address, subj: subj, log: log}
}

// DecodeEvent reads the event payload. Messages without a readable payload
// still carry their type in the header.
func DecodeEvent(msg *nats.Msg) (core.Event, error) {
	var event core.Event
	if err := json.Unmarshal(msg.Data, &event); err == nil && event.Type != "" {
		return event, nil
	}
	if eventType := msg.Header.Get(headerEventType); eventType != "" {
		return core.Event{Type: core.EventType(eventType)}, nil
	}
	return core.Event{}, fmt.Errorf("cannot decode event on %s: %w", msg.Subject, core.ErrBadArguments)
}

// Watch delivers events to handler until ctx is done.
func (ns *NatsSubscriber) Watch(ctx context.Context, handler func(core.Event)) error {
	if ns.address == "" {
		return fmt.Errorf("no broker address: %w", core.ErrBadArguments)
	}
	nc, err := nats.Connect(ns.address,
		nats.Name("updatectl"),
		nats.MaxReconnects(10),
		nats.ReconnectWait(time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				ns.log.Warn("disconnected from broker", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			ns.log.Info("reconnected to broker", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return fmt.Errorf("failed connect to broker: %w", core.ErrServiceUnavailable)
	}
	defer nc.Close()

	events := make(chan core.Event, 16)
	sub, err := nc.Subscribe(ns.subj, func(msg *nats.Msg) {
		event, err := DecodeEvent(msg)
		if err != nil {
			ns.log.Warn("skipping message", "error", err)
			return
		}
		select {
		case events <- event:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe on subject %s: %w", ns.subj, err)
	}
	defer func() {
		if err := sub.Unsubscribe(); err != nil {
			ns.log.Warn("failed to unsubscribe", "subject", ns.subj, "error", err)
		}
	}()
	ns.log.Debug("watching updater events", "subject", ns.subj, "url", nc.ConnectedUrl())

	for {
		select {
		case event := <-events:
			handler(event)
		case <-ctx.Done():
			return nil
		}
	}
}
