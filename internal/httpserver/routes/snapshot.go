package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/moscowmix/sitesync/internal/httpserver/deps"
	"github.com/moscowmix/sitesync/internal/httpserver/handlers"
)

func init() { Register(registerSnapshot) }

func registerSnapshot(r chi.Router, d deps.Deps) {
	r.Get("/api/snapshot", handlers.Snapshot(d))
	r.Get("/api/posts/visible", handlers.VisiblePosts(d))
}
