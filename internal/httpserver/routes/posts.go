package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/moscowmix/sitesync/internal/httpserver/deps"
	"github.com/moscowmix/sitesync/internal/httpserver/handlers"
)

func init() { Register(registerPosts) }

func registerPosts(r chi.Router, d deps.Deps) {
	r.Post("/api/posts", handlers.CreatePost(d))
	r.Put("/api/posts/{id}", handlers.UpdatePost(d))
	r.Delete("/api/posts/{id}", handlers.DeletePost(d))
}
