package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moscowmix/sitesync/internal/domain"
	"github.com/moscowmix/sitesync/internal/engine"
	"github.com/moscowmix/sitesync/internal/httpserver/deps"
)

// CreateProduct adds a product at the head of the storefront ordering.
// The id is derived from the name when the payload omits it.
func CreateProduct(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p domain.Product
		if err := decode(r, &p); err != nil {
			badRequest(w, "invalid product payload")
			return
		}
		if p.Name == "" {
			badRequest(w, "product needs a name")
			return
		}
		if err := d.Store.AddProduct(p); err != nil {
			writeMutationError(w, err, http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusAccepted, d.Store.Snapshot())
	}
}

// UpdateProduct replaces the product identified by the URL id.
func UpdateProduct(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p domain.Product
		if err := decode(r, &p); err != nil {
			badRequest(w, "invalid product payload")
			return
		}
		p.ID = chi.URLParam(r, "id")
		if err := d.Store.UpdateProduct(p); err != nil {
			writeMutationError(w, err, http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusAccepted, d.Store.Snapshot())
	}
}

// DeleteProduct removes a product; deleting an absent id is a no-op.
func DeleteProduct(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Store.DeleteProduct(chi.URLParam(r, "id")); err != nil {
			writeMutationError(w, err, http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusAccepted, d.Store.Snapshot())
	}
}

type reorderRequest struct {
	Direction string `json:"direction"` // "up" | "down"
}

// ReorderProduct moves a product one slot up or down. Moves off either
// end are accepted and do nothing.
func ReorderProduct(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reorderRequest
		if err := decode(r, &req); err != nil {
			badRequest(w, "invalid reorder payload")
			return
		}
		dir := engine.Direction(req.Direction)
		if dir != engine.DirectionUp && dir != engine.DirectionDown {
			badRequest(w, `direction must be "up" or "down"`)
			return
		}
		if err := d.Store.ReorderProduct(chi.URLParam(r, "id"), dir); err != nil {
			writeMutationError(w, err, http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusAccepted, d.Store.Snapshot())
	}
}
