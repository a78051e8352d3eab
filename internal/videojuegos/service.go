package videojuegos

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
)

// ErrorNotFound es el error de dominio para ids inexistentes (no HTTP).
// El handler lo traduce a 404.
var ErrorNotFound = errors.New("videojuego no encontrado")

// ValidationError junta todas las violaciones de un payload en un solo error.
// Las violaciones son datos: el handler decide cómo presentarlas.
type ValidationError struct {
	Violaciones []string
}

// Error implementa error uniendo las violaciones con "; ".
func (validationError *ValidationError) Error() string {
	return strings.Join(validationError.Violaciones, "; ")
}

// RepositoryAPI define lo que el service necesita de la persistencia.
// Permite testear el service con fakes sin tocar DB.
type RepositoryAPI interface {
	List(ctx context.Context) ([]Videojuego, error)
	GetByID(ctx context.Context, id int64) (Videojuego, error)
	Insert(ctx context.Context, input CrearVideojuegoInput) (Videojuego, error)
	Update(ctx context.Context, id int64, input ActualizarVideojuegoInput) (Videojuego, error)
	Delete(ctx context.Context, id int64) error
}

// Service contiene las reglas de negocio de videojuegos.
type Service struct {
	repository RepositoryAPI
}

// NewService crea un service de videojuegos.
func NewService(repository RepositoryAPI) *Service {
	return &Service{repository: repository}
}

// List devuelve el catálogo completo, los más nuevos primero.
func (service *Service) List(ctx context.Context) ([]Videojuego, error) {
	return service.repository.List(ctx)
}

// Get obtiene un videojuego por ID.
func (service *Service) Get(ctx context.Context, id int64) (Videojuego, error) {
	juego, err := service.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Videojuego{}, ErrorNotFound
		}
		return Videojuego{}, err
	}
	return juego, nil
}

// Create valida el payload completo y crea el videojuego en DB.
func (service *Service) Create(ctx context.Context, input CrearVideojuegoInput) (Videojuego, error) {
	// Normalización mínima.
	input.Titulo = strings.TrimSpace(input.Titulo)

	if violaciones := ValidarCreacion(input); len(violaciones) > 0 {
		return Videojuego{}, &ValidationError{Violaciones: violaciones}
	}

	return service.repository.Insert(ctx, input)
}

// Update valida solo los campos que vinieron y actualiza parcialmente.
// Un payload vacío es válido: no toca campos pero refresca updated_at.
func (service *Service) Update(ctx context.Context, id int64, input ActualizarVideojuegoInput) (Videojuego, error) {
	if violaciones := ValidarActualizacion(input); len(violaciones) > 0 {
		return Videojuego{}, &ValidationError{Violaciones: violaciones}
	}

	return service.repository.Update(ctx, id, input)
}

// Delete elimina un videojuego por ID.
func (service *Service) Delete(ctx context.Context, id int64) error {
	return service.repository.Delete(ctx, id)
}
