package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nstore-core/server/internal/catalog"
	errx "github.com/nstore-core/server/internal/core/error"
	"github.com/nstore-core/server/internal/store"
	logx "github.com/nstore-core/server/pkg/logger"
)

// AuthHandler implements the mocked account flow: login toggles the single
// canned profile into the store, logout removes it. There is no credential
// check and no security model.
type AuthHandler struct {
	Store store.Store
}

func (h *AuthHandler) Register(r *chi.Mux) {
	r.Post("/login", h.login)
	r.Post("/logout", h.logout)
	r.Get("/profile", h.profile)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	user := catalog.SeedUser()
	if err := h.Store.SaveUser(r.Context(), user); err != nil {
		logx.Error().Err(err).Msg("failed to persist login")
		writeError(w, errx.StatusOf(err), "login failed")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.ClearUser(r.Context()); err != nil {
		logx.Error().Err(err).Msg("failed to clear login")
		writeError(w, errx.StatusOf(err), "logout failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.Store.LoadUser(r.Context())
	if err != nil {
		writeError(w, errx.StatusOf(err), "profile load failed")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "not logged in")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
