package handlers

import (
	"errors"
	"net/http"

	"ItemGateway/internal/supabase"

	"github.com/go-chi/render"
)

// ErrorResponse: тело любой ошибки. Details содержит ответ бэкенда без изменений.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// backendDetails достаёт исходный payload бэкенда; для прочих драйверов текст ошибки.
func backendDetails(err error) any {
	var se *supabase.Error
	if errors.As(err, &se) {
		return se.Payload
	}
	return map[string]string{"message": err.Error()}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: msg})
}

func writeBackendError(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: msg, Details: backendDetails(err)})
}

type MessageResponse struct {
	Message string `json:"message"`
}
