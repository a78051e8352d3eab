package videojuegos

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Database es lo mínimo que el repositorio necesita de pgx.
// *pgxpool.Pool lo satisface; en tests se reemplaza por un fake.
type Database interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Repository accede a la tabla videojuegos.
// Contiene SQL y mapeo DB → modelo. Cada operación es una sola sentencia,
// así la atomicidad queda garantizada por Postgres sin transacción explícita.
type Repository struct {
	database Database
}

// NewRepository crea un repositorio de videojuegos.
func NewRepository(database Database) *Repository {
	return &Repository{database: database}
}

// columnasVideojuego es la proyección estándar con la forma del wire:
// precio y fecha_lanzamiento salen como texto para no perder precisión ni formato.
const columnasVideojuego = `id, titulo, descripcion, precio::text, stock, plataforma, genero, desarrollador, fecha_lanzamiento::text, created_at, updated_at`

// List devuelve todos los videojuegos, los creados más recientemente primero.
func (repository *Repository) List(ctx context.Context) ([]Videojuego, error) {
	const query = `
		SELECT ` + columnasVideojuego + `
		FROM videojuegos
		ORDER BY created_at DESC, id DESC;
	`

	rows, err := repository.database.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Slice vacío (no nil) para que el wire serialice [] y no null.
	juegos := make([]Videojuego, 0)
	for rows.Next() {
		var juego Videojuego
		if err := rows.Scan(&juego.ID, &juego.Titulo, &juego.Descripcion, &juego.Precio, &juego.Stock,
			&juego.Plataforma, &juego.Genero, &juego.Desarrollador, &juego.FechaLanzamiento,
			&juego.CreatedAt, &juego.UpdatedAt); err != nil {
			return nil, err
		}
		juegos = append(juegos, juego)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return juegos, nil
}

// GetByID devuelve un videojuego por id.
// Propaga pgx.ErrNoRows tal cual; el service lo traduce a error de dominio.
func (repository *Repository) GetByID(ctx context.Context, id int64) (Videojuego, error) {
	const query = `
		SELECT ` + columnasVideojuego + `
		FROM videojuegos
		WHERE id = $1;
	`

	return escanearVideojuego(repository.database.QueryRow(ctx, query, id))
}

// Insert crea un videojuego aplicando los defaults de los campos ausentes.
// Usamos RETURNING para obtener id y timestamps generados por DB.
func (repository *Repository) Insert(ctx context.Context, input CrearVideojuegoInput) (Videojuego, error) {
	descripcion := ""
	if input.Descripcion != nil {
		descripcion = *input.Descripcion
	}

	// El validador ya exigió precio presente y bien formado.
	precio := strings.TrimSpace(string(*input.Precio))

	stock := 0
	if input.Stock != nil {
		stock = *input.Stock
	}

	plataforma := PlataformaPC
	if input.Plataforma != "" {
		plataforma = Plataforma(input.Plataforma)
	}

	genero := GeneroAccion
	if input.Genero != "" {
		genero = Genero(input.Genero)
	}

	desarrollador := ""
	if input.Desarrollador != nil {
		desarrollador = *input.Desarrollador
	}

	// Fecha ausente o vacía se guarda como NULL.
	var fecha *string
	if input.FechaLanzamiento != nil && *input.FechaLanzamiento != "" {
		fecha = input.FechaLanzamiento
	}

	const query = `
		INSERT INTO videojuegos (titulo, descripcion, precio, stock, plataforma, genero, desarrollador, fecha_lanzamiento)
		VALUES ($1, $2, $3::numeric, $4, $5, $6, $7, $8::date)
		RETURNING ` + columnasVideojuego + `;
	`

	return escanearVideojuego(repository.database.QueryRow(ctx, query,
		input.Titulo, descripcion, precio, stock, plataforma, genero, desarrollador, fecha))
}

// Update arma dinámicamente el SET con solo los campos que vinieron.
// La fecha de lanzamiento se limpia con NULL literal cuando la clave vino explícita y vacía.
// updated_at se refresca siempre, aunque no haya cambiado ningún campo.
func (repository *Repository) Update(ctx context.Context, id int64, input ActualizarVideojuegoInput) (Videojuego, error) {
	fijar := make([]string, 0, 9)
	args := make([]any, 0, 9)

	agregar := func(asignacion string, valor any) {
		args = append(args, valor)
		fijar = append(fijar, fmt.Sprintf(asignacion, len(args)))
	}

	if input.Titulo != nil {
		agregar("titulo = $%d", strings.TrimSpace(*input.Titulo))
	}
	if input.Descripcion != nil {
		agregar("descripcion = $%d", *input.Descripcion)
	}
	if input.Precio != nil {
		agregar("precio = $%d::numeric", strings.TrimSpace(string(*input.Precio)))
	}
	if input.Stock != nil {
		agregar("stock = $%d", *input.Stock)
	}
	// El string vacío en los enums significa "no tocar", nunca se persiste.
	if input.Plataforma != nil && *input.Plataforma != "" {
		agregar("plataforma = $%d", *input.Plataforma)
	}
	if input.Genero != nil && *input.Genero != "" {
		agregar("genero = $%d", *input.Genero)
	}
	if input.Desarrollador != nil {
		agregar("desarrollador = $%d", *input.Desarrollador)
	}
	if input.FechaLanzamientoPresente {
		if input.FechaLanzamiento == nil || *input.FechaLanzamiento == "" {
			fijar = append(fijar, "fecha_lanzamiento = NULL")
		} else {
			agregar("fecha_lanzamiento = $%d::date", *input.FechaLanzamiento)
		}
	}
	fijar = append(fijar, "updated_at = now()")

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE videojuegos
		SET %s
		WHERE id = $%d
		RETURNING %s;
	`, strings.Join(fijar, ", "), len(args), columnasVideojuego)

	juego, err := escanearVideojuego(repository.database.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Videojuego{}, ErrorNotFound
		}
		return Videojuego{}, err
	}

	return juego, nil
}

// Delete elimina definitivamente un videojuego.
// RETURNING id permite distinguir "no existía" sin consulta previa.
func (repository *Repository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM videojuegos WHERE id = $1 RETURNING id;`

	var eliminado int64
	if err := repository.database.QueryRow(ctx, query, id).Scan(&eliminado); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrorNotFound
		}
		return err
	}

	return nil
}

func escanearVideojuego(row pgx.Row) (Videojuego, error) {
	var juego Videojuego
	err := row.Scan(&juego.ID, &juego.Titulo, &juego.Descripcion, &juego.Precio, &juego.Stock,
		&juego.Plataforma, &juego.Genero, &juego.Desarrollador, &juego.FechaLanzamiento,
		&juego.CreatedAt, &juego.UpdatedAt)
	if err != nil {
		return Videojuego{}, err
	}
	return juego, nil
}
