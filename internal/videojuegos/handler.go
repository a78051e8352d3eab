package videojuegos

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Lelo88/videojuegos-api-golang/internal/httpx"
	"github.com/go-chi/chi/v5"
)

// Mensajes fijos del wire.
const (
	mensajeJSONInvalido = "cuerpo JSON invalido"
	mensajeNoEncontrado = "Videojuego no encontrado"
	mensajeEliminado    = "Videojuego eliminado correctamente"
	mensajeErrorInterno = "error inesperado"
)

// ServiceAPI define lo que el handler necesita.
// Permite testear handlers con stubs sin tocar DB.
type ServiceAPI interface {
	List(ctx context.Context) ([]Videojuego, error)
	Get(ctx context.Context, id int64) (Videojuego, error)
	Create(ctx context.Context, input CrearVideojuegoInput) (Videojuego, error)
	Update(ctx context.Context, id int64, input ActualizarVideojuegoInput) (Videojuego, error)
	Delete(ctx context.Context, id int64) error
}

// Handler HTTP para videojuegos.
// Solo traduce HTTP <-> dominio (service).
type Handler struct {
	service ServiceAPI
}

// NewHandler crea un handler de videojuegos.
func NewHandler(service ServiceAPI) *Handler {
	return &Handler{service: service}
}

// List maneja GET /videojuegos/. Devuelve el array pelado, sin envoltorio.
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	juegos, err := handler.service.List(request.Context())
	if err != nil {
		handler.responderError(writer, request, err)
		return
	}

	httpx.JSON(writer, http.StatusOK, juegos)
}

// GetByID maneja GET /videojuegos/{id}/.
func (handler *Handler) GetByID(writer http.ResponseWriter, request *http.Request) {
	id, ok := parseID(writer, request)
	if !ok {
		return
	}

	juego, err := handler.service.Get(request.Context(), id)
	if err != nil {
		handler.responderError(writer, request, err)
		return
	}

	httpx.JSON(writer, http.StatusOK, juego)
}

// Create maneja POST /videojuegos/.
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	var input CrearVideojuegoInput
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		httpx.Error(writer, http.StatusBadRequest, mensajeJSONInvalido)
		return
	}

	juego, err := handler.service.Create(request.Context(), input)
	if err != nil {
		handler.responderError(writer, request, err)
		return
	}

	httpx.JSON(writer, http.StatusCreated, juego)
}

// Update maneja PUT /videojuegos/{id}/.
func (handler *Handler) Update(writer http.ResponseWriter, request *http.Request) {
	id, ok := parseID(writer, request)
	if !ok {
		return
	}

	// Primero leemos raw para saber qué claves vinieron.
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(request.Body).Decode(&raw); err != nil {
		httpx.Error(writer, http.StatusBadRequest, mensajeJSONInvalido)
		return
	}

	// Re-encode y decode al struct para reutilizar tags y tipos.
	byteJSON, _ := json.Marshal(raw)

	var input ActualizarVideojuegoInput
	if err := json.Unmarshal(byteJSON, &input); err != nil {
		httpx.Error(writer, http.StatusBadRequest, mensajeJSONInvalido)
		return
	}

	// Manejo explícito de fecha_lanzamiento:
	// - "fecha_lanzamiento": null (o "") => limpiar la fecha.
	// - clave ausente => no tocar.
	_, fechaPresente := raw["fecha_lanzamiento"]
	input.FechaLanzamientoPresente = fechaPresente

	juego, err := handler.service.Update(request.Context(), id, input)
	if err != nil {
		handler.responderError(writer, request, err)
		return
	}

	httpx.JSON(writer, http.StatusOK, juego)
}

// Delete maneja DELETE /videojuegos/{id}/.
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	id, ok := parseID(writer, request)
	if !ok {
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		handler.responderError(writer, request, err)
		return
	}

	httpx.Message(writer, http.StatusOK, mensajeEliminado)
}

// responderError traduce errores de dominio a status codes del wire.
func (handler *Handler) responderError(writer http.ResponseWriter, request *http.Request, err error) {
	var validationError *ValidationError
	switch {
	case errors.As(err, &validationError):
		httpx.Error(writer, http.StatusBadRequest, validationError.Error())
	case errors.Is(err, ErrorNotFound):
		httpx.Error(writer, http.StatusNotFound, mensajeNoEncontrado)
	default:
		// No filtramos detalles internos; quedan solo en el log del servidor.
		log.Printf("error interno [request_id=%s]: %v", httpx.RequestIDFrom(request), err)
		httpx.Error(writer, http.StatusInternalServerError, mensajeErrorInterno)
	}
}

// parseID lee {id} de la URL. Un id no numérico es 404, igual que una ruta
// que nunca matchea: el recurso no existe.
func parseID(writer http.ResponseWriter, request *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(request, "id"), 10, 64)
	if err != nil {
		httpx.Error(writer, http.StatusNotFound, mensajeNoEncontrado)
		return 0, false
	}
	return id, true
}
