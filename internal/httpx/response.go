package httpx

import (
	"encoding/json"
	"net/http"
)

// errorBody es la forma de error del wire: {"error": "..."}.
// No exponer detalles internos (SQL, stacktrace, etc.) en producción.
type errorBody struct {
	Error string `json:"error"`
}

// messageBody es la forma de confirmación del wire: {"message": "..."}.
type messageBody struct {
	Message string `json:"message"`
}

// JSON escribe el payload tal cual al wire con headers correctos.
// Nota: en caso de error de encodeo, responde 500 de forma segura.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)

	if err := enc.Encode(payload); err != nil {
		// Último recurso: no se pudo serializar JSON.
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
	}
}

// Error escribe un error con la forma {"error": message}.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorBody{Error: message})
}

// Message escribe una confirmación con la forma {"message": message}.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, messageBody{Message: message})
}
