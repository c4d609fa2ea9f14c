package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

type errorReply struct {
	Error string `json:"error"`
}

// Recover turns a handler panic into a 500 reply with a JSON body.
// http.ErrAbortHandler is re-raised so the server can drop the connection.
func Recover(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}
				log.Error("handler panicked",
					slog.Group("request", "method", r.Method, "path", r.URL.Path),
					"panic", fmt.Sprint(v),
					"stack", string(debug.Stack()),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(errorReply{Error: "internal error"})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
