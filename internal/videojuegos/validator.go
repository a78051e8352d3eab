package videojuegos

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Mensajes de validación. El wire los junta con "; " en un solo error.
const (
	mensajeTituloObligatorio = "el titulo es obligatorio"
	mensajePrecioObligatorio = "el precio es obligatorio"
	mensajePrecioInvalido    = "el precio debe ser un numero mayor o igual a 0"
	mensajeStockInvalido     = "el stock debe ser un entero mayor o igual a 0"
	mensajeFechaInvalida     = "la fecha de lanzamiento debe tener formato YYYY-MM-DD"
)

// precioRegex acepta enteros o decimales con hasta dos dígitos (DB: numeric(10,2)).
// Sin signo: los negativos no matchean.
var precioRegex = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)

// ValidarCreacion chequea el payload de creación.
// Devuelve la lista ordenada de violaciones; vacía significa válido.
// Acumula todas las violaciones en vez de cortar en la primera.
func ValidarCreacion(input CrearVideojuegoInput) []string {
	var violaciones []string

	if strings.TrimSpace(input.Titulo) == "" {
		violaciones = append(violaciones, mensajeTituloObligatorio)
	}

	if input.Precio == nil {
		violaciones = append(violaciones, mensajePrecioObligatorio)
	} else if !precioValido(string(*input.Precio)) {
		violaciones = append(violaciones, mensajePrecioInvalido)
	}

	if input.Stock != nil && *input.Stock < 0 {
		violaciones = append(violaciones, mensajeStockInvalido)
	}

	violaciones = append(violaciones, validarEnums(input.Plataforma, input.Genero)...)

	if input.FechaLanzamiento != nil && *input.FechaLanzamiento != "" && !fechaValida(*input.FechaLanzamiento) {
		violaciones = append(violaciones, mensajeFechaInvalida)
	}

	return violaciones
}

// ValidarActualizacion chequea el payload de actualización parcial.
// Nada es obligatorio: solo se validan los campos que vinieron.
func ValidarActualizacion(input ActualizarVideojuegoInput) []string {
	var violaciones []string

	if input.Titulo != nil && strings.TrimSpace(*input.Titulo) == "" {
		violaciones = append(violaciones, mensajeTituloObligatorio)
	}

	if input.Precio != nil && !precioValido(string(*input.Precio)) {
		violaciones = append(violaciones, mensajePrecioInvalido)
	}

	if input.Stock != nil && *input.Stock < 0 {
		violaciones = append(violaciones, mensajeStockInvalido)
	}

	var plataforma, genero string
	if input.Plataforma != nil {
		plataforma = *input.Plataforma
	}
	if input.Genero != nil {
		genero = *input.Genero
	}
	violaciones = append(violaciones, validarEnums(plataforma, genero)...)

	// La limpieza explícita (null o "") es válida; solo se valida una fecha real.
	if input.FechaLanzamiento != nil && *input.FechaLanzamiento != "" && !fechaValida(*input.FechaLanzamiento) {
		violaciones = append(violaciones, mensajeFechaInvalida)
	}

	return violaciones
}

// validarEnums chequea pertenencia a los conjuntos cerrados.
// El string vacío no es violación: significa "usar default" en creación y "no tocar" en update.
func validarEnums(plataforma, genero string) []string {
	var violaciones []string

	if plataforma != "" && !Plataforma(plataforma).EsValida() {
		violaciones = append(violaciones, fmt.Sprintf("plataforma invalida: %s", plataforma))
	}
	if genero != "" && !Genero(genero).EsValido() {
		violaciones = append(violaciones, fmt.Sprintf("genero invalido: %s", genero))
	}

	return violaciones
}

func precioValido(precio string) bool {
	return precioRegex.MatchString(strings.TrimSpace(precio))
}

// fechaValida exige el formato estricto YYYY-MM-DD (el que guarda la columna date).
func fechaValida(fecha string) bool {
	_, err := time.Parse("2006-01-02", fecha)
	return err == nil
}
