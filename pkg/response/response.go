package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the shape of every JSON API response.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// JSON writes v wrapped in a success envelope.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	write(w, status, Envelope{Success: status < 400, Data: v})
}

// Error writes a failure envelope with a single message.
func Error(w http.ResponseWriter, status int, msg string) {
	write(w, status, Envelope{Success: false, Error: msg})
}

// ValidationError writes a failure envelope carrying per-field messages.
func ValidationError(w http.ResponseWriter, errs interface{}) {
	write(w, http.StatusUnprocessableEntity, Envelope{Success: false, Error: "validation failed", Errors: errs})
}

func write(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}
