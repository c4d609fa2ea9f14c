package publisher

import (
	"click-updater/updater/core"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

const HeaderEventType = "Click-Event"

// Message is the payload published for every updater event.
type Message struct {
	Type core.EventType `json:"type"`
	At   time.Time      `json:"at"`
}

// NewMessage builds the broker message for event. The type is also carried in
// a header so subscribers can filter without decoding.
func NewMessage(subj string, event core.EventType, at time.Time) (*nats.Msg, error) {
	data, err := json.Marshal(Message{Type: event, At: at.UTC()})
	if err != nil {
		return nil, fmt.Errorf("cannot encode event: %w", err)
	}
	msg := nats.NewMsg(subj)
	msg.Header.Set(HeaderEventType, string(event))
	msg.Data = data
	return msg, nil
}

type NatsPublisher struct {
	subj string
	conn *nats.Conn
	log  *slog.Logger
}

func NewNatsPublisher(address, subj string, log *slog.Logger) (*NatsPublisher, error) {
	nc, err := nats.Connect(address,
		nats.Name("click-updater"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn("lost broker connection", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("broker connection restored", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed connect to broker: %w", err)
	}
	log.Debug("publishing updater events", "address", address, "subject", subj)
	return &NatsPublisher{subj: subj, conn: nc, log: log}, nil
}

func (np *NatsPublisher) Close() {
	if err := np.conn.Drain(); err != nil {
		np.log.Warn("failed to drain broker connection", "error", err)
	}
}

func (np *NatsPublisher) Publish(event core.EventType) error {
	msg, err := NewMessage(np.subj, event, time.Now())
	if err != nil {
		return err
	}
	if err := np.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event, err)
	}
	np.log.Debug("event published", "subject", np.subj, "event", event)
	return nil
}

// LogPublisher only records events, for setups without a broker.
type LogPublisher struct {
	log *slog.Logger
}

func NewLogPublisher(log *slog.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (lp *LogPublisher) Publish(event core.EventType) error {
	lp.log.Info("updater event", "event", event)
	return nil
}
