package handlers

import (
	"net/http"

	"github.com/moscowmix/sitesync/internal/httpserver/deps"
	"github.com/moscowmix/sitesync/internal/logger"
)

// Refresh asks the reconciler for an immediate pass. The trigger channel
// holds a single pending pass, so a refresh already waiting turns into
// 429 rather than a queue of redundant fetches.
func Refresh(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case d.RefreshTrigger <- struct{}{}:
			d.Logger.Info("manual refresh triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusAccepted)
			if _, err := w.Write([]byte("refresh triggered\n")); err != nil {
				d.Logger.Debug("failed to write response", logger.Error(err))
			}
		default:
			d.Logger.Warn("refresh already pending",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := w.Write([]byte("refresh already pending, please wait\n")); err != nil {
				d.Logger.Debug("failed to write response", logger.Error(err))
			}
		}
	}
}

// ForceSync pushes the entire current snapshot to the remote store,
// bypassing the cooldown. Synchronous: the response reports whether the
// push and its verification succeeded.
func ForceSync(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Store.ForceSync(r.Context()); err != nil {
			d.Logger.Error("force sync failed", logger.Error(err))
			writeMutationError(w, err, http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, struct{}{})
	}
}
