package videojuegos_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Lelo88/videojuegos-api-golang/internal/videojuegos"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	listFn   func(ctx context.Context) ([]videojuegos.Videojuego, error)
	getFn    func(ctx context.Context, id int64) (videojuegos.Videojuego, error)
	createFn func(ctx context.Context, input videojuegos.CrearVideojuegoInput) (videojuegos.Videojuego, error)
	updateFn func(ctx context.Context, id int64, input videojuegos.ActualizarVideojuegoInput) (videojuegos.Videojuego, error)
	deleteFn func(ctx context.Context, id int64) error

	listCalled bool

	getCalled bool
	getID     int64

	createCalled bool
	createInput  videojuegos.CrearVideojuegoInput

	updateCalled bool
	updateID     int64
	updateInput  videojuegos.ActualizarVideojuegoInput

	deleteCalled bool
	deleteID     int64
}

func (service *stubService) List(ctx context.Context) ([]videojuegos.Videojuego, error) {
	service.listCalled = true
	if service.listFn != nil {
		return service.listFn(ctx)
	}
	return nil, nil
}

func (service *stubService) Get(ctx context.Context, id int64) (videojuegos.Videojuego, error) {
	service.getCalled = true
	service.getID = id
	if service.getFn != nil {
		return service.getFn(ctx, id)
	}
	return videojuegos.Videojuego{}, nil
}

func (service *stubService) Create(ctx context.Context, input videojuegos.CrearVideojuegoInput) (videojuegos.Videojuego, error) {
	service.createCalled = true
	service.createInput = input
	if service.createFn != nil {
		return service.createFn(ctx, input)
	}
	return videojuegos.Videojuego{}, nil
}

func (service *stubService) Update(ctx context.Context, id int64, input videojuegos.ActualizarVideojuegoInput) (videojuegos.Videojuego, error) {
	service.updateCalled = true
	service.updateID = id
	service.updateInput = input
	if service.updateFn != nil {
		return service.updateFn(ctx, id, input)
	}
	return videojuegos.Videojuego{}, nil
}

func (service *stubService) Delete(ctx context.Context, id int64) error {
	service.deleteCalled = true
	service.deleteID = id
	if service.deleteFn != nil {
		return service.deleteFn(ctx, id)
	}
	return nil
}

// requestConID agrega el route param {id} como lo haría chi al rutear.
func requestConID(request *http.Request, id string) *http.Request {
	routeContext := chi.NewRouteContext()
	routeContext.URLParams.Add("id", id)
	return request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeContext))
}

func decodeWireError(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body.Error
}

func TestHandler_List(t *testing.T) {
	t.Run("devuelve el array pelado", func(t *testing.T) {
		service := &stubService{
			listFn: func(ctx context.Context) ([]videojuegos.Videojuego, error) {
				return []videojuegos.Videojuego{{ID: 2, Titulo: "Zelda", Precio: "69.99"}, {ID: 1, Titulo: "Halo", Precio: "59.99"}}, nil
			},
		}
		handler := videojuegos.NewHandler(service)

		req := httptest.NewRequest(http.MethodGet, "/videojuegos", nil)
		rec := httptest.NewRecorder()

		handler.List(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

		var juegos []videojuegos.Videojuego
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &juegos))
		require.Len(t, juegos, 2)
		require.Equal(t, int64(2), juegos[0].ID)
	})

	t.Run("catalogo vacio serializa []", func(t *testing.T) {
		service := &stubService{
			listFn: func(ctx context.Context) ([]videojuegos.Videojuego, error) {
				return []videojuegos.Videojuego{}, nil
			},
		}
		handler := videojuegos.NewHandler(service)

		req := httptest.NewRequest(http.MethodGet, "/videojuegos", nil)
		rec := httptest.NewRecorder()

		handler.List(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("error inesperado es 500 generico", func(t *testing.T) {
		service := &stubService{
			listFn: func(ctx context.Context) ([]videojuegos.Videojuego, error) {
				return nil, errors.New("db down")
			},
		}
		handler := videojuegos.NewHandler(service)

		req := httptest.NewRequest(http.MethodGet, "/videojuegos", nil)
		rec := httptest.NewRecorder()

		handler.List(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, "error inesperado", decodeWireError(t, rec))
	})
}

func TestHandler_GetByID(t *testing.T) {
	t.Run("encontrado", func(t *testing.T) {
		service := &stubService{
			getFn: func(ctx context.Context, id int64) (videojuegos.Videojuego, error) {
				return videojuegos.Videojuego{ID: id, Titulo: "Halo", Precio: "59.99"}, nil
			},
		}
		handler := videojuegos.NewHandler(service)

		req := requestConID(httptest.NewRequest(http.MethodGet, "/videojuegos/7", nil), "7")
		rec := httptest.NewRecorder()

		handler.GetByID(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, int64(7), service.getID)

		var juego videojuegos.Videojuego
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &juego))
		require.Equal(t, "Halo", juego.Titulo)
	})

	t.Run("id no numerico es 404 sin tocar el service", func(t *testing.T) {
		service := &stubService{}
		handler := videojuegos.NewHandler(service)

		req := requestConID(httptest.NewRequest(http.MethodGet, "/videojuegos/abc", nil), "abc")
		rec := httptest.NewRecorder()

		handler.GetByID(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "Videojuego no encontrado", decodeWireError(t, rec))
		require.False(t, service.getCalled)
	})

	t.Run("inexistente es 404", func(t *testing.T) {
		service := &stubService{
			getFn: func(ctx context.Context, id int64) (videojuegos.Videojuego, error) {
				return videojuegos.Videojuego{}, videojuegos.ErrorNotFound
			},
		}
		handler := videojuegos.NewHandler(service)

		req := requestConID(httptest.NewRequest(http.MethodGet, "/videojuegos/99", nil), "99")
		rec := httptest.NewRecorder()

		handler.GetByID(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "Videojuego no encontrado", decodeWireError(t, rec))
	})
}

func TestHandler_Create(t *testing.T) {
	t.Run("json invalido", func(t *testing.T) {
		service := &stubService{}
		handler := videojuegos.NewHandler(service)

		req := httptest.NewRequest(http.MethodPost, "/videojuegos", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "cuerpo JSON invalido", decodeWireError(t, rec))
		require.False(t, service.createCalled)
	})

	t.Run("violaciones de validacion van juntas en el error", func(t *testing.T) {
		service := &stubService{
			createFn: func(ctx context.Context, input videojuegos.CrearVideojuegoInput) (videojuegos.Videojuego, error) {
				return videojuegos.Videojuego{}, &videojuegos.ValidationError{Violaciones: []string{
					"el titulo es obligatorio",
					"el precio es obligatorio",
				}}
			},
		}
		handler := videojuegos.NewHandler(service)

		req := httptest.NewRequest(http.MethodPost, "/videojuegos", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "el titulo es obligatorio; el precio es obligatorio", decodeWireError(t, rec))
	})

	t.Run("creado con precio numerico", func(t *testing.T) {
		service := &stubService{
			createFn: func(ctx context.Context, input videojuegos.CrearVideojuegoInput) (videojuegos.Videojuego, error) {
				return videojuegos.Videojuego{
					ID:         1,
					Titulo:     input.Titulo,
					Precio:     "59.99",
					Plataforma: videojuegos.PlataformaPC,
					Genero:     videojuegos.GeneroAccion,
				}, nil
			},
		}
		handler := videojuegos.NewHandler(service)

		req := httptest.NewRequest(http.MethodPost, "/videojuegos", strings.NewReader(`{"titulo":"Halo","precio":59.99}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.True(t, service.createCalled)
		require.NotNil(t, service.createInput.Precio)
		require.Equal(t, videojuegos.Decimal("59.99"), *service.createInput.Precio)

		var wire map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wire))
		require.Equal(t, "Halo", wire["titulo"])
		require.Equal(t, "59.99", wire["precio"])
		require.Equal(t, "PC", wire["plataforma"])
		require.Equal(t, "ACCION", wire["genero"])
	})

	t.Run("error inesperado es 500 generico", func(t *testing.T) {
		service := &stubService{
			createFn: func(ctx context.Context, input videojuegos.CrearVideojuegoInput) (videojuegos.Videojuego, error) {
				return videojuegos.Videojuego{}, errors.New("db down")
			},
		}
		handler := videojuegos.NewHandler(service)

		req := httptest.NewRequest(http.MethodPost, "/videojuegos", strings.NewReader(`{"titulo":"Halo","precio":"59.99"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, "error inesperado", decodeWireError(t, rec))
	})
}

func TestHandler_Update(t *testing.T) {
	t.Run("json invalido", func(t *testing.T) {
		service := &stubService{}
		handler := videojuegos.NewHandler(service)

		req := requestConID(httptest.NewRequest(http.MethodPut, "/videojuegos/1", strings.NewReader("no-json")), "1")
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "cuerpo JSON invalido", decodeWireError(t, rec))
		require.False(t, service.updateCalled)
	})

	t.Run("clave de fecha ausente no la toca", func(t *testing.T) {
		service := &stubService{}
		handler := videojuegos.NewHandler(service)

		req := requestConID(httptest.NewRequest(http.MethodPut, "/videojuegos/1", strings.NewReader(`{"precio":"49.99"}`)), "1")
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, service.updateCalled)
		require.Equal(t, int64(1), service.updateID)
		require.False(t, service.updateInput.FechaLanzamientoPresente)
		require.Nil(t, service.updateInput.FechaLanzamiento)
		require.NotNil(t, service.updateInput.Precio)
		require.Equal(t, videojuegos.Decimal("49.99"), *service.updateInput.Precio)
	})

	t.Run("fecha null limpia", func(t *testing.T) {
		service := &stubService{}
		handler := videojuegos.NewHandler(service)

		req := requestConID(httptest.NewRequest(http.MethodPut, "/videojuegos/1", strings.NewReader(`{"fecha_lanzamiento":null}`)), "1")
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, service.updateInput.FechaLanzamientoPresente)
		require.Nil(t, service.updateInput.FechaLanzamiento)
	})

	t.Run("fecha nueva viaja como puntero", func(t *testing.T) {
		service := &stubService{}
		handler := videojuegos.NewHandler(service)

		req := requestConID(httptest.NewRequest(http.MethodPut, "/videojuegos/1", strings.NewReader(`{"fecha_lanzamiento":"2021-12-08"}`)), "1")
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, service.updateInput.FechaLanzamientoPresente)
		require.NotNil(t, service.updateInput.FechaLanzamiento)
		require.Equal(t, "2021-12-08", *service.updateInput.FechaLanzamiento)
	})

	t.Run("id no numerico es 404", func(t *testing.T) {
		service := &stubService{}
		handler := videojuegos.NewHandler(service)

		req := requestConID(httptest.NewRequest(http.MethodPut, "/videojuegos/abc", strings.NewReader(`{}`)), "abc")
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		require.False(t, service.updateCalled)
	})

	t.Run("inexistente es 404", func(t *testing.T) {
		service := &stubService{
			updateFn: func(ctx context.Context, id int64, input videojuegos.ActualizarVideojuegoInput) (videojuegos.Videojuego, error) {
				return videojuegos.Videojuego{}, videojuegos.ErrorNotFound
			},
		}
		handler := videojuegos.NewHandler(service)

		req := requestConID(httptest.NewRequest(http.MethodPut, "/videojuegos/99", strings.NewReader(`{"precio":"49.99"}`)), "99")
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "Videojuego no encontrado", decodeWireError(t, rec))
	})

	t.Run("violacion de validacion es 400", func(t *testing.T) {
		service := &stubService{
			updateFn: func(ctx context.Context, id int64, input videojuegos.ActualizarVideojuegoInput) (videojuegos.Videojuego, error) {
				return videojuegos.Videojuego{}, &videojuegos.ValidationError{Violaciones: []string{"el stock debe ser un entero mayor o igual a 0"}}
			},
		}
		handler := videojuegos.NewHandler(service)

		req := requestConID(httptest.NewRequest(http.MethodPut, "/videojuegos/1", strings.NewReader(`{"stock":-1}`)), "1")
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "el stock debe ser un entero mayor o igual a 0", decodeWireError(t, rec))
	})
}

func TestHandler_Delete(t *testing.T) {
	t.Run("eliminado", func(t *testing.T) {
		service := &stubService{}
		handler := videojuegos.NewHandler(service)

		req := requestConID(httptest.NewRequest(http.MethodDelete, "/videojuegos/7", nil), "7")
		rec := httptest.NewRecorder()

		handler.Delete(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, int64(7), service.deleteID)

		var body struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "Videojuego eliminado correctamente", body.Message)
	})

	t.Run("inexistente es 404", func(t *testing.T) {
		service := &stubService{
			deleteFn: func(ctx context.Context, id int64) error {
				return videojuegos.ErrorNotFound
			},
		}
		handler := videojuegos.NewHandler(service)

		req := requestConID(httptest.NewRequest(http.MethodDelete, "/videojuegos/99", nil), "99")
		rec := httptest.NewRecorder()

		handler.Delete(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "Videojuego no encontrado", decodeWireError(t, rec))
	})

	t.Run("error inesperado es 500 generico", func(t *testing.T) {
		service := &stubService{
			deleteFn: func(ctx context.Context, id int64) error {
				return errors.New("db down")
			},
		}
		handler := videojuegos.NewHandler(service)

		req := requestConID(httptest.NewRequest(http.MethodDelete, "/videojuegos/7", nil), "7")
		rec := httptest.NewRecorder()

		handler.Delete(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
