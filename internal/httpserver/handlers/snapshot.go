package handlers

import (
	"net/http"

	"github.com/moscowmix/sitesync/internal/httpserver/deps"
)

// Snapshot serves the full current site snapshot.
func Snapshot(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Store.Snapshot())
	}
}

// VisiblePosts serves the publicly visible blog posts, including
// scheduled posts whose publication instant has passed.
func VisiblePosts(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Store.VisiblePosts())
	}
}
