package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moscowmix/sitesync/internal/httpserver/deps"
)

type passwordRequest struct {
	Password string `json:"password"`
	Hint     string `json:"hint"`
}

// ChangePassword replaces the legacy admin password. An empty hint keeps
// the previous one.
func ChangePassword(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req passwordRequest
		if err := decode(r, &req); err != nil {
			badRequest(w, "invalid password payload")
			return
		}
		if err := d.Store.ChangeAdminPassword(req.Password, req.Hint); err != nil {
			writeMutationError(w, err, http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusAccepted, struct{}{})
	}
}

type verifyRequest struct {
	Password string `json:"password"`
}

type verifyResponse struct {
	Valid bool `json:"valid"`
}

// VerifyPassword checks a password attempt against the legacy password
// and every admin account.
func VerifyPassword(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req verifyRequest
		if err := decode(r, &req); err != nil {
			badRequest(w, "invalid verify payload")
			return
		}
		writeJSON(w, http.StatusOK, verifyResponse{
			Valid: d.Store.VerifyAdminPassword(req.Password),
		})
	}
}

type adminUserRequest struct {
	Name     string `json:"name"`
	Login    string `json:"login"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateAdminUser adds a named admin account and returns it, id included.
func CreateAdminUser(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adminUserRequest
		if err := decode(r, &req); err != nil {
			badRequest(w, "invalid admin user payload")
			return
		}
		user, err := d.Store.AddAdminUser(req.Name, req.Login, req.Password, req.Role)
		if err != nil {
			writeMutationError(w, err, http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, user)
	}
}

// DeleteAdminUser removes an admin account; absent ids are a no-op.
func DeleteAdminUser(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Store.RemoveAdminUser(chi.URLParam(r, "id")); err != nil {
			writeMutationError(w, err, http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusAccepted, struct{}{})
	}
}
