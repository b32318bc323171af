package customer

import "github.com/go-chi/chi/v5"

// MountRoutes registers customer endpoints on the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.register)
	r.Get("/{id}", h.show)
}
