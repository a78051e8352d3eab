package videojuegos

// Plataforma es el conjunto cerrado de plataformas permitidas.
// Se modela como tipo propio para que el chequeo de pertenencia viva en un solo lugar.
type Plataforma string

const (
	PlataformaPC         Plataforma = "PC"
	PlataformaPS5        Plataforma = "PS5"
	PlataformaPS4        Plataforma = "PS4"
	PlataformaXboxSeries Plataforma = "XBOX_SERIES"
	PlataformaXboxOne    Plataforma = "XBOX_ONE"
	PlataformaSwitch     Plataforma = "SWITCH"
	PlataformaMulti      Plataforma = "MULTI"
)

var plataformas = map[Plataforma]struct{}{
	PlataformaPC:         {},
	PlataformaPS5:        {},
	PlataformaPS4:        {},
	PlataformaXboxSeries: {},
	PlataformaXboxOne:    {},
	PlataformaSwitch:     {},
	PlataformaMulti:      {},
}

// EsValida indica si el valor pertenece al conjunto de plataformas.
func (plataforma Plataforma) EsValida() bool {
	_, ok := plataformas[plataforma]
	return ok
}

// Genero es el conjunto cerrado de géneros permitidos.
type Genero string

const (
	GeneroAccion     Genero = "ACCION"
	GeneroAventura   Genero = "AVENTURA"
	GeneroRPG        Genero = "RPG"
	GeneroDeportes   Genero = "DEPORTES"
	GeneroEstrategia Genero = "ESTRATEGIA"
	GeneroSimulacion Genero = "SIMULACION"
	GeneroCarreras   Genero = "CARRERAS"
	GeneroShooter    Genero = "SHOOTER"
	GeneroTerror     Genero = "TERROR"
	GeneroPuzzle     Genero = "PUZZLE"
)

var generos = map[Genero]struct{}{
	GeneroAccion:     {},
	GeneroAventura:   {},
	GeneroRPG:        {},
	GeneroDeportes:   {},
	GeneroEstrategia: {},
	GeneroSimulacion: {},
	GeneroCarreras:   {},
	GeneroShooter:    {},
	GeneroTerror:     {},
	GeneroPuzzle:     {},
}

// EsValido indica si el valor pertenece al conjunto de géneros.
func (genero Genero) EsValido() bool {
	_, ok := generos[genero]
	return ok
}
