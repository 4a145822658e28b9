package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"causes/internal/domain"
)

type causeRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageURL"`
}

func (c causeRequest) input() domain.CauseInput {
	return domain.CauseInput{Title: c.Title, Description: c.Description, ImageURL: c.ImageURL}
}

// pathID returns the canonical {id} URL parameter or writes a 400.
func (a *App) pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := domain.CanonicalID(chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return "", false
	}
	return id, true
}

func (a *App) CausesList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Causes.List(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) CausesCreate(w http.ResponseWriter, r *http.Request) {
	var req causeRequest
	if !a.decode(w, r, &req) {
		return
	}
	in, err := domain.NormalizeCauseInput(req.input())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	res, err := a.Causes.Create(r.Context(), in)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, res)
}

func (a *App) CausesGet(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	cause, err := a.Causes.GetByID(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, cause)
}

func (a *App) CausesUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	var req causeRequest
	if !a.decode(w, r, &req) {
		return
	}
	in, err := domain.NormalizeCauseInput(req.input())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	res, err := a.Causes.Replace(r.Context(), id, in)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if res.MatchedCount == 0 {
		a.fail(w, r, domain.ErrNotFound)
		return
	}
	a.json(w, http.StatusOK, res)
}

func (a *App) CausesDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	res, err := a.Causes.Delete(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if res.DeletedCount == 0 {
		a.fail(w, r, domain.ErrNotFound)
		return
	}
	a.json(w, http.StatusOK, res)
}
