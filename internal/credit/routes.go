package credit

import "github.com/go-chi/chi/v5"

// MountRoutes registers credit endpoints on the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.issue)
	r.Get("/", h.list)
	r.Get("/{creditCode}", h.show)
}
