//go:build integration

package subscriber_test

import (
	"click-updater/updatectl/adapters/subscriber"
	"click-updater/updatectl/core"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startNats(t *testing.T) string {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "nats:2-alpine",
			ExposedPorts: []string{"4222/tcp"},
			WaitingFor:   wait.ForListeningPort("4222/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "4222/tcp")
	require.NoError(t, err)
	return fmt.Sprintf("nats://%s:%s", host, port.Port())
}

func TestWatch(t *testing.T) {
	address := startNats(t)
	const subj = "click.updater.events"

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	received := make(chan core.Event, 1)
	done := make(chan error, 1)
	go func() {
		done <- subscriber.NewNatsSubscriber(address, subj, slog.Default()).Watch(ctx, func(event core.Event) {
			select {
			case received <- event:
			default:
			}
		})
	}()

	nc, err := nats.Connect(address)
	require.NoError(t, err)
	defer nc.Close()

	require.Eventually(t, func() bool {
		msg := nats.NewMsg(subj)
		msg.Data = []byte(`{"type":"check_started","at":"2026-03-01T12:00:00Z"}`)
		require.NoError(t, nc.PublishMsg(msg))
		select {
		case event := <-received:
			return event.Type == "check_started"
		case <-time.After(100 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 200*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
