package commands_test

import (
	"bytes"
	"click-updater/updatectl/commands"
	"click-updater/updatectl/config"
	"click-updater/updatectl/core"
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func run(t *testing.T, updater core.Updater, events core.EventSource, args ...string) (string, error) {
	t.Helper()
	root := commands.NewRootCommand(func(config.Config, *slog.Logger) (core.Updater, core.EventSource) {
		return updater, events
	})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func expectLogin(m *core.MockUpdater) {
	m.EXPECT().Login(gomock.Any(), "admin", "password").Return("token123", nil)
}

func hasToken(ctx context.Context) bool {
	token, _ := ctx.Value(core.JwtTokenContextKey).(string)
	return token == "token123"
}

func TestStatusCommand(t *testing.T) {
	testCases := []struct {
		desc     string
		args     []string
		status   core.CheckStatus
		contains []string
	}{
		{
			desc:     "plain",
			args:     []string{"status"},
			status:   core.CheckStatus{State: "tokens", Checking: true, Authenticated: true},
			contains: []string{"state:          tokens", "checking:       true"},
		},
		{
			desc:     "failed check shows error",
			args:     []string{"status"},
			status:   core.CheckStatus{State: "failed", Error: "network error", CheckRequired: true},
			contains: []string{"network error", "check required: true"},
		},
		{
			desc:     "json",
			args:     []string{"status", "--json"},
			status:   core.CheckStatus{State: "idle"},
			contains: []string{`"state": "idle"`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUpdater := core.NewMockUpdater(ctrl)
			mockUpdater.EXPECT().Status(gomock.Any()).Return(tc.status, nil)

			out, err := run(t, mockUpdater, nil, tc.args...)
			require.NoError(t, err)
			for _, s := range tc.contains {
				require.Contains(t, out, s)
			}
		})
	}
}

func TestListCommand(t *testing.T) {
	testCases := []struct {
		desc     string
		args     []string
		prepare  func(*core.MockUpdater)
		contains []string
		wantErr  error
	}{
		{
			desc: "table",
			args: []string{"list"},
			prepare: func(m *core.MockUpdater) {
				m.EXPECT().Updates(gomock.Any(), core.Kind("")).Return(core.UpdatesResult{
					Updates: []core.Update{{Identifier: "com.example.app", Revision: 7, LocalVersion: "1.0", RemoteVersion: "1.1", State: "available"}},
					Total:   1,
				}, nil)
			},
			contains: []string{"com.example.app", "1.1", "available", "1 update(s)"},
		},
		{
			desc: "empty by kind",
			args: []string{"list", "--kind", "package"},
			prepare: func(m *core.MockUpdater) {
				m.EXPECT().Updates(gomock.Any(), core.KindPackage).Return(core.UpdatesResult{}, nil)
			},
			contains: []string{"no updates"},
		},
		{
			desc:    "unknown kind",
			args:    []string{"list", "--kind", "snap"},
			prepare: func(m *core.MockUpdater) {},
			wantErr: core.ErrBadArguments,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUpdater := core.NewMockUpdater(ctrl)
			tc.prepare(mockUpdater)

			out, err := run(t, mockUpdater, nil, tc.args...)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			for _, s := range tc.contains {
				require.Contains(t, out, s)
			}
		})
	}
}

func TestMutatingCommands(t *testing.T) {
	testCases := []struct {
		desc     string
		args     []string
		prepare  func(*core.MockUpdater)
		contains string
		wantErr  error
	}{
		{
			desc: "check",
			args: []string{"check"},
			prepare: func(m *core.MockUpdater) {
				expectLogin(m)
				m.EXPECT().Check(gomock.Cond(hasToken)).Return(nil)
			},
			contains: "check started",
		},
		{
			desc: "check already running",
			args: []string{"check"},
			prepare: func(m *core.MockUpdater) {
				expectLogin(m)
				m.EXPECT().Check(gomock.Any()).Return(core.ErrAlreadyExists)
			},
			contains: "check already running",
		},
		{
			desc: "cancel",
			args: []string{"cancel"},
			prepare: func(m *core.MockUpdater) {
				expectLogin(m)
				m.EXPECT().Cancel(gomock.Cond(hasToken)).Return(nil)
			},
			contains: "check canceled",
		},
		{
			desc: "retry",
			args: []string{"retry", "com.example.app", "7"},
			prepare: func(m *core.MockUpdater) {
				expectLogin(m)
				m.EXPECT().Retry(gomock.Cond(hasToken), "com.example.app", int64(7)).Return(nil)
			},
			contains: "retrying com.example.app revision 7",
		},
		{
			desc:    "retry with bad revision",
			args:    []string{"retry", "com.example.app", "seven"},
			prepare: func(m *core.MockUpdater) {},
			wantErr: core.ErrBadArguments,
		},
		{
			desc: "retry unknown update",
			args: []string{"retry", "com.example.app", "7"},
			prepare: func(m *core.MockUpdater) {
				expectLogin(m)
				m.EXPECT().Retry(gomock.Any(), "com.example.app", int64(7)).Return(core.ErrNotFound)
			},
			wantErr: core.ErrNotFound,
		},
		{
			desc: "drop",
			args: []string{"drop"},
			prepare: func(m *core.MockUpdater) {
				expectLogin(m)
				m.EXPECT().Drop(gomock.Cond(hasToken)).Return(nil)
			},
			contains: "store dropped",
		},
		{
			desc: "login rejected",
			args: []string{"drop", "--password", "wrong"},
			prepare: func(m *core.MockUpdater) {
				m.EXPECT().Login(gomock.Any(), "admin", "wrong").Return("", core.ErrInvalidCredentials)
			},
			wantErr: core.ErrInvalidCredentials,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUpdater := core.NewMockUpdater(ctrl)
			tc.prepare(mockUpdater)

			out, err := run(t, mockUpdater, nil, tc.args...)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Contains(t, out, tc.contains)
		})
	}
}

func TestWatchCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mockEvents := core.NewMockEventSource(ctrl)
	mockEvents.EXPECT().Watch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, handler func(core.Event)) error {
		handler(core.Event{Type: "check_started", At: at})
		handler(core.Event{Type: "check_completed", At: at})
		return nil
	})

	out, err := run(t, core.NewMockUpdater(ctrl), mockEvents, "watch")
	require.NoError(t, err)
	require.Contains(t, out, "check_started")
	require.Contains(t, out, "check_completed")
}
