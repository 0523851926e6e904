package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moscowmix/sitesync/internal/domain"
	"github.com/moscowmix/sitesync/internal/httpserver/deps"
)

// CreatePost adds a blog post at the top of the list. Post creation is a
// confirmed write: the remote save happens before the local state moves,
// so a failure here means nothing changed.
func CreatePost(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p domain.BlogPost
		if err := decode(r, &p); err != nil {
			badRequest(w, "invalid post payload")
			return
		}
		if p.Title == "" {
			badRequest(w, "post needs a title")
			return
		}
		if err := d.Store.AddBlogPost(r.Context(), p); err != nil {
			writeMutationError(w, err, http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, d.Store.Snapshot())
	}
}

// UpdatePost replaces the post identified by the URL id. Confirmed write,
// same contract as CreatePost.
func UpdatePost(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p domain.BlogPost
		if err := decode(r, &p); err != nil {
			badRequest(w, "invalid post payload")
			return
		}
		p.ID = chi.URLParam(r, "id")
		if err := d.Store.UpdateBlogPost(r.Context(), p); err != nil {
			writeMutationError(w, err, http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, d.Store.Snapshot())
	}
}

// DeletePost removes a post; deleting an absent id is a no-op.
func DeletePost(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Store.DeleteBlogPost(chi.URLParam(r, "id")); err != nil {
			writeMutationError(w, err, http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusAccepted, d.Store.Snapshot())
	}
}
