package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Lelo88/videojuegos-api-golang/internal/config"
	"github.com/Lelo88/videojuegos-api-golang/internal/db"
	"github.com/Lelo88/videojuegos-api-golang/internal/docs"
	"github.com/Lelo88/videojuegos-api-golang/internal/health"
	"github.com/Lelo88/videojuegos-api-golang/internal/httpx"
	"github.com/Lelo88/videojuegos-api-golang/internal/videojuegos"
)

// appPool es lo que el armado de la app necesita del pool de pgx.
// Se define como interfaz para poder levantar el router en tests sin DB.
type appPool interface {
	videojuegos.Database
	Ping(ctx context.Context) error
	Close()
}

// appDeps agrupa los colaboradores externos de run().
// En producción vienen de defaultDeps(); en tests se reemplazan.
type appDeps struct {
	loadConfig     func() (config.Config, error)
	newPool        func(ctx context.Context, databaseURL string) (appPool, error)
	listenAndServe func(addr string, handler http.Handler) error
	logf           func(format string, args ...any)
}

func defaultDeps() appDeps {
	return appDeps{
		loadConfig: config.Load,
		newPool: func(ctx context.Context, databaseURL string) (appPool, error) {
			return db.NewPool(ctx, databaseURL)
		},
		listenAndServe: http.ListenAndServe,
		logf:           log.Printf,
	}
}

func main() {
	if err := run(context.Background(), defaultDeps()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, deps appDeps) error {
	cfg, err := deps.loadConfig()
	if err != nil {
		return err
	}

	pool, err := deps.newPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	router := newRouter(cfg, pool)

	addr := ":" + cfg.Port
	deps.logf("listening on %s", addr)
	return deps.listenAndServe(addr, router)
}

// newRouter arma el router completo: middlewares base, CORS, health, docs y la API.
func newRouter(cfg config.Config, pool appPool) chi.Router {
	r := chi.NewRouter()

	// Middlewares base para trazabilidad y estabilidad.
	r.Use(httpx.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	// El wire usa rutas con barra final (/videojuegos/, /videojuegos/{id}/).
	r.Use(middleware.StripSlashes)

	// Preflight OPTIONS de los endpoints mutantes incluido.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	// Errores de routing se manejan a nivel router.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.Error(w, http.StatusNotFound, "recurso no encontrado")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.Error(w, http.StatusMethodNotAllowed, "metodo no permitido")
	})

	healthHandler := health.New(pool)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	docs.RegisterRoutes(r)

	repository := videojuegos.NewRepository(pool)
	service := videojuegos.NewService(repository)
	videojuegos.RegisterRoutes(r, videojuegos.NewHandler(service))

	return r
}
