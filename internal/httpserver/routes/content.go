package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/moscowmix/sitesync/internal/httpserver/deps"
	"github.com/moscowmix/sitesync/internal/httpserver/handlers"
)

func init() { Register(registerContent) }

func registerContent(r chi.Router, d deps.Deps) {
	r.Post("/api/hero", handlers.UpdateHero(d))
	r.Post("/api/assets", handlers.UpdateAssets(d))
	r.Post("/api/story", handlers.UpdateStory(d))
}
