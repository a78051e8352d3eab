package health

import (
	"context"
	"net/http"
	"time"

	"github.com/Lelo88/videojuegos-api-golang/internal/httpx"
)

// Pinger es lo que el ready check necesita del pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler encapsula los endpoints de health.
type Handler struct {
	database Pinger
}

// New crea un handler de health.
func New(database Pinger) *Handler {
	return &Handler{database: database}
}

// Health indica si el proceso está vivo.
// NO chequea base de datos; eso es /ready.
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready indica si la aplicación puede atender tráfico: pinguea la DB.
func (handler *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := handler.database.Ping(ctx); err != nil {
		httpx.JSON(w, http.StatusServiceUnavailable, map[string]any{
			"status": "unavailable",
		})
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"status": "ready",
	})
}
