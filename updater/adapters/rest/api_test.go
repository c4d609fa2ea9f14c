package rest_test

import (
	"click-updater/updater/adapters/rest"
	"click-updater/updater/core"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPingHandler(t *testing.T) {
	w := httptest.NewRecorder()
	rest.NewPingHandler(slog.Default())(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var reply rest.PingResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&reply))
	require.Equal(t, "ok", reply.Status)
}

func TestLoginHandler(t *testing.T) {
	testCases := []struct {
		desc           string
		body           string
		prepare        func(*core.MockAuthenticator)
		expectedStatus int
		wantBody       string
	}{
		{
			desc: "success - valid credentials",
			body: `{"name":"admin","password":"password"}`,
			prepare: func(auth *core.MockAuthenticator) {
				auth.EXPECT().CreateToken("admin", "password").Return("token123", nil)
			},
			expectedStatus: http.StatusOK,
			wantBody:       "token123",
		},
		{
			desc:           "error - invalid json",
			body:           `{invalid}`,
			prepare:        func(auth *core.MockAuthenticator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			desc: "error - invalid password",
			body: `{"name":"admin","password":"wrong"}`,
			prepare: func(auth *core.MockAuthenticator) {
				auth.EXPECT().CreateToken("admin", "wrong").Return("", core.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			desc: "error - token creation failed",
			body: `{"name":"admin","password":"password"}`,
			prepare: func(auth *core.MockAuthenticator) {
				auth.EXPECT().CreateToken("admin", "password").Return("", errors.New("internal error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAuth := core.NewMockAuthenticator(ctrl)
			tc.prepare(mockAuth)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(tc.body))
			rest.NewLoginHandler(slog.Default(), mockAuth)(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)
			if tc.wantBody != "" {
				require.Equal(t, tc.wantBody, w.Body.String())
				require.Equal(t, "text/plain", w.Header().Get("Content-Type"))
			}
		})
	}
}

func TestStatusHandler(t *testing.T) {
	testCases := []struct {
		desc           string
		prepare        func(*core.MockUpdater)
		expectedStatus int
		expectedReply  map[string]any
	}{
		{
			desc: "success - checking",
			prepare: func(m *core.MockUpdater) {
				m.EXPECT().Status(gomock.Any()).Return(core.CheckStatus{
					State:         core.StateTokens,
					Checking:      true,
					Authenticated: true,
				})
				m.EXPECT().IsCheckRequired(gomock.Any()).Return(false, nil)
			},
			expectedStatus: http.StatusOK,
			expectedReply: map[string]any{
				"state":          "tokens",
				"checking":       true,
				"authenticated":  true,
				"check_required": false,
			},
		},
		{
			desc: "success - failed check is due",
			prepare: func(m *core.MockUpdater) {
				m.EXPECT().Status(gomock.Any()).Return(core.CheckStatus{
					State: core.StateFailed,
					Error: "network error",
				})
				m.EXPECT().IsCheckRequired(gomock.Any()).Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedReply: map[string]any{
				"state":          "failed",
				"checking":       false,
				"authenticated":  false,
				"error":          "network error",
				"check_required": true,
			},
		},
		{
			desc: "error - store failure",
			prepare: func(m *core.MockUpdater) {
				m.EXPECT().Status(gomock.Any()).Return(core.CheckStatus{})
				m.EXPECT().IsCheckRequired(gomock.Any()).Return(false, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUpdater := core.NewMockUpdater(ctrl)
			tc.prepare(mockUpdater)

			w := httptest.NewRecorder()
			rest.NewStatusHandler(slog.Default(), mockUpdater)(w, httptest.NewRequest(http.MethodGet, "/api/status", nil))

			require.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedReply != nil {
				var reply map[string]any
				require.NoError(t, json.NewDecoder(w.Body).Decode(&reply))
				require.Equal(t, tc.expectedReply, reply)
			}
		})
	}
}

func TestUpdatesHandler(t *testing.T) {
	testCases := []struct {
		desc           string
		query          string
		prepare        func(*core.MockUpdater)
		expectedStatus int
		expectedTotal  int
	}{
		{
			desc:  "success - all kinds",
			query: "",
			prepare: func(m *core.MockUpdater) {
				m.EXPECT().Updates(gomock.Any(), core.Kind("")).Return([]core.Update{
					{Identifier: "com.example.a", Revision: 3},
					{Identifier: "com.example.b", Revision: 1},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  2,
		},
		{
			desc:  "success - packages only, empty",
			query: "?kind=package",
			prepare: func(m *core.MockUpdater) {
				m.EXPECT().Updates(gomock.Any(), core.KindPackage).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			desc:           "error - unknown kind",
			query:          "?kind=snap",
			prepare:        func(m *core.MockUpdater) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			desc:  "error - store failure",
			query: "?kind=image",
			prepare: func(m *core.MockUpdater) {
				m.EXPECT().Updates(gomock.Any(), core.KindImage).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUpdater := core.NewMockUpdater(ctrl)
			tc.prepare(mockUpdater)

			w := httptest.NewRecorder()
			rest.NewUpdatesHandler(slog.Default(), mockUpdater)(w, httptest.NewRequest(http.MethodGet, "/api/updates"+tc.query, nil))

			require.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedStatus != http.StatusOK {
				return
			}
			var reply rest.UpdatesResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&reply))
			require.Equal(t, tc.expectedTotal, reply.Total)
			require.Len(t, reply.Updates, tc.expectedTotal)
		})
	}
}

func TestCheckHandler(t *testing.T) {
	testCases := []struct {
		desc           string
		err            error
		expectedStatus int
	}{
		{
			desc:           "success - check started",
			expectedStatus: http.StatusOK,
		},
		{
			desc:           "success - already checking",
			err:            core.ErrAlreadyExists,
			expectedStatus: http.StatusAccepted,
		},
		{
			desc:           "error - updater not running",
			err:            core.ErrServiceUnavailable,
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			desc:           "error - internal",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUpdater := core.NewMockUpdater(ctrl)
			mockUpdater.EXPECT().Check(gomock.Any()).Return(tc.err)

			w := httptest.NewRecorder()
			rest.NewCheckHandler(slog.Default(), mockUpdater)(w, httptest.NewRequest(http.MethodPost, "/api/check", nil))
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

func TestCancelHandler(t *testing.T) {
	testCases := []struct {
		desc           string
		err            error
		expectedStatus int
	}{
		{
			desc:           "success",
			expectedStatus: http.StatusOK,
		},
		{
			desc:           "error - updater not running",
			err:            core.ErrServiceUnavailable,
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUpdater := core.NewMockUpdater(ctrl)
			mockUpdater.EXPECT().Cancel(gomock.Any()).Return(tc.err)

			w := httptest.NewRecorder()
			rest.NewCancelHandler(slog.Default(), mockUpdater)(w, httptest.NewRequest(http.MethodPost, "/api/cancel", nil))
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

func TestRetryHandler(t *testing.T) {
	testCases := []struct {
		desc           string
		path           string
		prepare        func(*core.MockUpdater)
		expectedStatus int
	}{
		{
			desc: "success",
			path: "/api/updates/com.example.app/7/retry",
			prepare: func(m *core.MockUpdater) {
				m.EXPECT().Retry(gomock.Any(), "com.example.app", int64(7)).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			desc:           "error - revision is not a number",
			path:           "/api/updates/com.example.app/seven/retry",
			prepare:        func(m *core.MockUpdater) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			desc:           "error - negative revision",
			path:           "/api/updates/com.example.app/-1/retry",
			prepare:        func(m *core.MockUpdater) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			desc: "error - unknown update",
			path: "/api/updates/com.example.app/7/retry",
			prepare: func(m *core.MockUpdater) {
				m.EXPECT().Retry(gomock.Any(), "com.example.app", int64(7)).Return(core.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			desc: "error - invalid credentials",
			path: "/api/updates/com.example.app/7/retry",
			prepare: func(m *core.MockUpdater) {
				m.EXPECT().Retry(gomock.Any(), "com.example.app", int64(7)).Return(core.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUpdater := core.NewMockUpdater(ctrl)
			tc.prepare(mockUpdater)

			mux := http.NewServeMux()
			mux.Handle("POST /api/updates/{id}/{revision}/retry", rest.NewRetryHandler(slog.Default(), mockUpdater))

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, tc.path, nil))
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

func TestDropHandler(t *testing.T) {
	testCases := []struct {
		desc           string
		err            error
		expectedStatus int
	}{
		{
			desc:           "success",
			expectedStatus: http.StatusOK,
		},
		{
			desc:           "error - check running",
			err:            core.ErrAlreadyExists,
			expectedStatus: http.StatusConflict,
		},
		{
			desc:           "error - internal",
			err:            errors.New("db error"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUpdater := core.NewMockUpdater(ctrl)
			mockUpdater.EXPECT().Drop(gomock.Any()).Return(tc.err)

			w := httptest.NewRecorder()
			rest.NewDropHandler(slog.Default(), mockUpdater)(w, httptest.NewRequest(http.MethodDelete, "/api/updates", nil))
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}
