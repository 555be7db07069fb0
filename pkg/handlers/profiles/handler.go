package profiles

import (
	"net/http"

	"github.com/de-tools/astro-atlas/pkg/adapters"
	"github.com/de-tools/astro-atlas/pkg/handlers"
	"github.com/de-tools/astro-atlas/pkg/models/api"
	"github.com/de-tools/astro-atlas/pkg/services/profiles"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	registry profiles.Registry
}

func NewHandler(registry profiles.Registry) *Handler {
	return &Handler{registry: registry}
}

func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if h.registry == nil {
		handlers.WriteJSON(w, r, http.StatusOK, []api.Profile{})
		return
	}

	list, err := h.registry.GetProfiles(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list profiles")
		http.Error(w, "failed to list profiles", http.StatusInternalServerError)
		return
	}

	response := make([]api.Profile, 0, len(list))
	for _, p := range list {
		response = append(response, adapters.MapProfileDomainToApi(p))
	}
	handlers.WriteJSON(w, r, http.StatusOK, response)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if h.registry == nil {
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	}

	p, err := h.registry.GetProfile(r.Context(), name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	handlers.WriteJSON(w, r, http.StatusOK, adapters.MapProfileDomainToApi(p))
}
