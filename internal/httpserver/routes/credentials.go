package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/moscowmix/sitesync/internal/httpserver/deps"
	"github.com/moscowmix/sitesync/internal/httpserver/handlers"
)

func init() { Register(registerCredentials) }

func registerCredentials(r chi.Router, d deps.Deps) {
	r.Post("/api/credentials/password", handlers.ChangePassword(d))
	r.Post("/api/credentials/verify", handlers.VerifyPassword(d))
	r.Post("/api/credentials/users", handlers.CreateAdminUser(d))
	r.Delete("/api/credentials/users/{id}", handlers.DeleteAdminUser(d))
}
