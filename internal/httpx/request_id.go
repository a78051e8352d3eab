package httpx

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const headerRequestID = "X-Request-Id"

// RequestID es un middleware que garantiza un X-Request-Id por request.
// Si el cliente no manda uno, se genera un UUID; siempre se repite en la respuesta.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		id := strings.TrimSpace(request.Header.Get(headerRequestID))
		if id == "" {
			id = uuid.NewString()
			request.Header.Set(headerRequestID, id)
		}

		writer.Header().Set(headerRequestID, id)
		next.ServeHTTP(writer, request)
	})
}

// RequestIDFrom lee el request id para incluirlo en logs del lado servidor.
func RequestIDFrom(request *http.Request) string {
	if request == nil {
		return ""
	}
	return request.Header.Get(headerRequestID)
}
