package handlers

import (
	"net/http"

	"github.com/moscowmix/sitesync/internal/domain"
	"github.com/moscowmix/sitesync/internal/httpserver/deps"
)

type heroRequest struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
}

// UpdateHero replaces the hero headline and subheadline.
func UpdateHero(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req heroRequest
		if err := decode(r, &req); err != nil {
			badRequest(w, "invalid hero payload")
			return
		}
		if err := d.Store.UpdateHeroText(req.Headline, req.Subheadline); err != nil {
			writeMutationError(w, err, http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusAccepted, d.Store.Snapshot())
	}
}

// UpdateAssets merges the posted slots into the asset map; slots not in
// the payload are untouched.
func UpdateAssets(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var partial domain.Assets
		if err := decode(r, &partial); err != nil {
			badRequest(w, "invalid assets payload")
			return
		}
		if err := d.Store.UpdateAssets(partial); err != nil {
			writeMutationError(w, err, http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusAccepted, d.Store.Snapshot())
	}
}

// UpdateStory replaces the brand story section.
func UpdateStory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var story domain.Story
		if err := decode(r, &story); err != nil {
			badRequest(w, "invalid story payload")
			return
		}
		if err := d.Store.UpdateStory(story); err != nil {
			writeMutationError(w, err, http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusAccepted, d.Store.Snapshot())
	}
}
