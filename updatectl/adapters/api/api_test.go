package api_test

import (
	"click-updater/updatectl/adapters/api"
	"click-updater/updatectl/core"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	testCases := []struct {
		desc         string
		serverStatus int
		wantToken    string
		expectedErr  error
	}{
		{
			desc:         "success",
			serverStatus: http.StatusOK,
			wantToken:    "token123",
		},
		{
			desc:         "error - wrong password",
			serverStatus: http.StatusUnauthorized,
			expectedErr:  core.ErrInvalidCredentials,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/api/login", r.URL.Path)
				var login map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&login))
				require.Equal(t, map[string]string{"name": "admin", "password": "password"}, login)

				w.WriteHeader(tc.serverStatus)
				if tc.serverStatus == http.StatusOK {
					_, _ = w.Write([]byte("token123"))
				}
			}))
			defer server.Close()

			client := api.NewClient(server.URL, time.Second, slog.Default())
			token, err := client.Login(context.Background(), "admin", "password")
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantToken, token)
		})
	}
}

func TestStatus(t *testing.T) {
	testCases := []struct {
		desc         string
		serverStatus int
		serverReply  core.CheckStatus
		expectedErr  error
	}{
		{
			desc:         "success",
			serverStatus: http.StatusOK,
			serverReply:  core.CheckStatus{State: "metadata", Checking: true, Authenticated: true},
		},
		{
			desc:         "error - updater not running",
			serverStatus: http.StatusServiceUnavailable,
			expectedErr:  core.ErrServiceUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/api/status", r.URL.Path)
				w.WriteHeader(tc.serverStatus)
				if tc.serverStatus == http.StatusOK {
					_ = json.NewEncoder(w).Encode(tc.serverReply)
				}
			}))
			defer server.Close()

			client := api.NewClient(server.URL, time.Second, slog.Default())
			status, err := client.Status(context.Background())
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.serverReply, status)
		})
	}
}

func TestUpdates(t *testing.T) {
	testCases := []struct {
		desc      string
		kind      core.Kind
		wantQuery string
	}{
		{
			desc: "all kinds",
		},
		{
			desc:      "packages",
			kind:      core.KindPackage,
			wantQuery: "kind=package",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			reply := core.UpdatesResult{
				Updates: []core.Update{{Identifier: "com.example.app", Revision: 4, RemoteVersion: "1.1"}},
				Total:   1,
			}
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/api/updates", r.URL.Path)
				require.Equal(t, tc.wantQuery, r.URL.RawQuery)
				_ = json.NewEncoder(w).Encode(reply)
			}))
			defer server.Close()

			client := api.NewClient(server.URL, time.Second, slog.Default())
			result, err := client.Updates(context.Background(), tc.kind)
			require.NoError(t, err)
			require.Equal(t, reply, result)
		})
	}
}

func TestMutations(t *testing.T) {
	testCases := []struct {
		desc         string
		call         func(context.Context, *api.Client) error
		wantMethod   string
		wantPath     string
		serverStatus int
		expectedErr  error
	}{
		{
			desc:         "check",
			call:         func(ctx context.Context, c *api.Client) error { return c.Check(ctx) },
			wantMethod:   http.MethodPost,
			wantPath:     "/api/check",
			serverStatus: http.StatusOK,
		},
		{
			desc:         "check already running",
			call:         func(ctx context.Context, c *api.Client) error { return c.Check(ctx) },
			wantMethod:   http.MethodPost,
			wantPath:     "/api/check",
			serverStatus: http.StatusAccepted,
			expectedErr:  core.ErrAlreadyExists,
		},
		{
			desc:         "cancel",
			call:         func(ctx context.Context, c *api.Client) error { return c.Cancel(ctx) },
			wantMethod:   http.MethodPost,
			wantPath:     "/api/cancel",
			serverStatus: http.StatusOK,
		},
		{
			desc:         "retry",
			call:         func(ctx context.Context, c *api.Client) error { return c.Retry(ctx, "com.example.app", 12) },
			wantMethod:   http.MethodPost,
			wantPath:     "/api/updates/com.example.app/12/retry",
			serverStatus: http.StatusOK,
		},
		{
			desc:         "retry unknown update",
			call:         func(ctx context.Context, c *api.Client) error { return c.Retry(ctx, "com.example.app", 12) },
			wantMethod:   http.MethodPost,
			wantPath:     "/api/updates/com.example.app/12/retry",
			serverStatus: http.StatusNotFound,
			expectedErr:  core.ErrNotFound,
		},
		{
			desc:         "drop while checking",
			call:         func(ctx context.Context, c *api.Client) error { return c.Drop(ctx) },
			wantMethod:   http.MethodDelete,
			wantPath:     "/api/updates",
			serverStatus: http.StatusConflict,
			expectedErr:  core.ErrAlreadyExists,
		},
		{
			desc:         "unauthorized",
			call:         func(ctx context.Context, c *api.Client) error { return c.Drop(ctx) },
			wantMethod:   http.MethodDelete,
			wantPath:     "/api/updates",
			serverStatus: http.StatusUnauthorized,
			expectedErr:  core.ErrInvalidCredentials,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, tc.wantMethod, r.Method)
				require.Equal(t, tc.wantPath, r.URL.Path)
				require.Equal(t, "Token secret", r.Header.Get("Authorization"))
				w.WriteHeader(tc.serverStatus)
			}))
			defer server.Close()

			client := api.NewClient(server.URL, time.Second, slog.Default())
			ctx := context.WithValue(context.Background(), core.JwtTokenContextKey, "secret")
			err := tc.call(ctx, client)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
