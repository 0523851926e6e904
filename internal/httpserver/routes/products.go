package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/moscowmix/sitesync/internal/httpserver/deps"
	"github.com/moscowmix/sitesync/internal/httpserver/handlers"
)

func init() { Register(registerProducts) }

func registerProducts(r chi.Router, d deps.Deps) {
	r.Post("/api/products", handlers.CreateProduct(d))
	r.Put("/api/products/{id}", handlers.UpdateProduct(d))
	r.Delete("/api/products/{id}", handlers.DeleteProduct(d))
	r.Post("/api/products/{id}/reorder", handlers.ReorderProduct(d))
}
