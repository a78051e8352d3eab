package videojuegos

import "github.com/go-chi/chi/v5"

// RegisterRoutes registra las rutas de videojuegos en el router.
// Las formas con barra final (/videojuegos/, /videojuegos/{id}/) las resuelve
// StripSlashes a nivel router.
func RegisterRoutes(route chi.Router, handler *Handler) {
	route.Route("/videojuegos", func(route chi.Router) {
		route.Get("/", handler.List)
		route.Post("/", handler.Create)
		route.Get("/{id}", handler.GetByID)
		route.Put("/{id}", handler.Update)
		route.Delete("/{id}", handler.Delete)
	})
}
