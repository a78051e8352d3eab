package docs

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta las rutas de documentación (Swagger UI + OpenAPI YAML).
// StripSlashes a nivel router hace que /docs y /docs/ sirvan lo mismo.
func RegisterRoutes(r chi.Router) {
	r.Route("/docs", func(r chi.Router) {
		// Swagger UI
		r.Get("/", SwaggerUIHandler())

		// Spec OpenAPI embebida (para que swagger.html la consuma por URL).
		r.Get("/openapi.yaml", OpenAPIHandler())
	})
}
