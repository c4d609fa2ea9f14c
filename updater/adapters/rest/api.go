package rest

import (
	"click-updater/updater/core"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
)

const (
	paramKind     = "kind"
	paramID       = "id"
	paramRevision = "revision"
)

type PingResponse struct {
	Status string `json:"status"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type UpdatesResponse struct {
	Updates []core.Update `json:"updates"`
	Total   int           `json:"total"`
}

func encodeReply(w io.Writer, reply any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(reply); err != nil {
		return fmt.Errorf("could not encode reply: %v", err)
	}
	return nil
}

// writeError maps updater errors onto HTTP statuses.
func writeError(log *slog.Logger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrBadArguments):
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
	case errors.Is(err, core.ErrNotFound):
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	case errors.Is(err, core.ErrInvalidCredentials):
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	case errors.Is(err, core.ErrAlreadyExists):
		http.Error(w, http.StatusText(http.StatusConflict), http.StatusConflict)
	case errors.Is(err, core.ErrServiceUnavailable):
		log.Debug("updater unavailable")
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
	default:
		log.Warn("updater request failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func NewPingHandler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := encodeReply(w, PingResponse{Status: "ok"}); err != nil {
			log.Error("cannot encode reply", "error", err)
		}
	}
}

func NewLoginHandler(log *slog.Logger, auth core.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var login LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&login); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		tokenString, err := auth.CreateToken(login.Name, login.Password)
		if err != nil {
			if errors.Is(err, core.ErrInvalidCredentials) {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			} else {
				log.Error("failed to create token", "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(tokenString))
	}
}

func NewStatusHandler(log *slog.Logger, updater core.Updater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := updater.Status(r.Context())
		required, err := updater.IsCheckRequired(r.Context())
		if err != nil {
			writeError(log, w, err)
			return
		}
		status.CheckRequired = required
		w.Header().Set("Content-Type", "application/json")
		if err := encodeReply(w, status); err != nil {
			log.Error("failed to encode", "error", err)
		}
	}
}

func NewUpdatesHandler(log *slog.Logger, updater core.Updater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := core.Kind(r.URL.Query().Get(paramKind))
		switch kind {
		case "", core.KindPackage, core.KindImage:
		default:
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		updates, err := updater.Updates(r.Context(), kind)
		if err != nil {
			writeError(log, w, err)
			return
		}
		if updates == nil {
			updates = []core.Update{}
		}
		w.Header().Set("Content-Type", "application/json")
		if err := encodeReply(w, UpdatesResponse{Updates: updates, Total: len(updates)}); err != nil {
			log.Error("failed to encode", "error", err)
		}
	}
}

// NewCheckHandler starts a check. A check that is already running is
// reported as accepted since the caller gets the result it asked for.
func NewCheckHandler(log *slog.Logger, updater core.Updater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := updater.Check(r.Context())
		switch {
		case err == nil:
			w.WriteHeader(http.StatusOK)
		case errors.Is(err, core.ErrAlreadyExists):
			w.WriteHeader(http.StatusAccepted)
		default:
			writeError(log, w, err)
		}
	}
}

func NewCancelHandler(log *slog.Logger, updater core.Updater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := updater.Cancel(r.Context()); err != nil {
			writeError(log, w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func NewRetryHandler(log *slog.Logger, updater core.Updater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identifier := r.PathValue(paramID)
		revision, err := strconv.ParseInt(r.PathValue(paramRevision), 10, 64)
		if identifier == "" || err != nil || revision < 0 {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if err := updater.Retry(r.Context(), identifier, revision); err != nil {
			writeError(log, w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func NewDropHandler(log *slog.Logger, updater core.Updater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := updater.Drop(r.Context()); err != nil {
			writeError(log, w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
