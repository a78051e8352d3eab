package videojuegos

import (
	"encoding/json"
	"strconv"
	"time"
)

// Videojuego representa un registro persistido en DB, con la forma exacta del wire.
// Precio se modela como string para evitar errores de precisión con float (DB: numeric(10,2)).
// FechaLanzamiento viaja como "YYYY-MM-DD" o null.
type Videojuego struct {
	ID               int64      `json:"id"`
	Titulo           string     `json:"titulo"`
	Descripcion      *string    `json:"descripcion"`
	Precio           string     `json:"precio"`
	Stock            int        `json:"stock"`
	Plataforma       Plataforma `json:"plataforma"`
	Genero           Genero     `json:"genero"`
	Desarrollador    *string    `json:"desarrollador"`
	FechaLanzamiento *string    `json:"fecha_lanzamiento"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Decimal es un string decimal que acepta tanto número como string en JSON.
// Los clientes mandan {"precio": 59.99} o {"precio": "59.99"}; ambos valen.
type Decimal string

// UnmarshalJSON implementa json.Unmarshaler.
func (decimal *Decimal) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*decimal = Decimal(value)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	*decimal = Decimal(number.String())
	return nil
}

// MarshalJSON serializa siempre como string, igual que el wire de salida.
func (decimal Decimal) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(decimal))), nil
}

// CrearVideojuegoInput representa el payload de POST /videojuegos/.
// Los punteros distinguen "no vino" de "vino vacío"; los ausentes toman default al insertar.
type CrearVideojuegoInput struct {
	Titulo           string   `json:"titulo"`
	Descripcion      *string  `json:"descripcion,omitempty"`
	Precio           *Decimal `json:"precio,omitempty"`
	Stock            *int     `json:"stock,omitempty"`
	Plataforma       string   `json:"plataforma,omitempty"`
	Genero           string   `json:"genero,omitempty"`
	Desarrollador    *string  `json:"desarrollador,omitempty"`
	FechaLanzamiento *string  `json:"fecha_lanzamiento,omitempty"`
}

// ActualizarVideojuegoInput representa el payload de PUT /videojuegos/{id}/.
// Todo es opcional: nil significa "no tocar".
// FechaLanzamientoPresente lo setea el handler mirando el JSON crudo:
// la clave presente con null/"" limpia la fecha, la clave ausente la deja igual.
type ActualizarVideojuegoInput struct {
	Titulo           *string  `json:"titulo,omitempty"`
	Descripcion      *string  `json:"descripcion,omitempty"`
	Precio           *Decimal `json:"precio,omitempty"`
	Stock            *int     `json:"stock,omitempty"`
	Plataforma       *string  `json:"plataforma,omitempty"`
	Genero           *string  `json:"genero,omitempty"`
	Desarrollador    *string  `json:"desarrollador,omitempty"`
	FechaLanzamiento *string  `json:"fecha_lanzamiento,omitempty"`

	FechaLanzamientoPresente bool `json:"-"`
}
