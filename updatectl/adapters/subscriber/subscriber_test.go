package subscriber_test

import (
	"click-updater/updatectl/adapters/subscriber"
	"click-updater/updatectl/core"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"
)

func TestDecodeEvent(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		desc     string
		data     string
		header   string
		expected core.Event
		wantErr  bool
	}{
		{
			desc:     "success - json payload",
			data:     `{"type":"check_completed","at":"2026-03-01T12:00:00Z"}`,
			expected: core.Event{Type: "check_completed", At: at},
		},
		{
			desc:     "success - header only",
			data:     `garbage`,
			header:   "store_changed",
			expected: core.Event{Type: "store_changed"},
		},
		{
			desc:    "error - nothing readable",
			data:    `{}`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			msg := nats.NewMsg("click.updater.events")
			msg.Data = []byte(tc.data)
			if tc.header != "" {
				msg.Header.Set("Click-Event", tc.header)
			}

			event, err := subscriber.DecodeEvent(msg)
			if tc.wantErr {
				require.ErrorIs(t, err, core.ErrBadArguments)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected.Type, event.Type)
			require.True(t, tc.expected.At.Equal(event.At))
		})
	}
}

func TestWatchWithoutBroker(t *testing.T) {
	err := subscriber.NewNatsSubscriber("", "click.updater.events", slog.Default()).
		Watch(context.Background(), func(core.Event) {})
	require.ErrorIs(t, err, core.ErrBadArguments)
}
