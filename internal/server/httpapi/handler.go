package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/albertopena123/evaluacion-enla/internal/server/users"
	"github.com/albertopena123/evaluacion-enla/internal/shared"
)

// Client-visible message vocabulary. Internal detail never leaves the
// process; these fixed strings are everything a caller can observe.
const (
	msgInvalidInput       = "Datos inválidos"
	msgInvalidCredentials = "Credenciales inválidas"
	msgTimeout            = "El servidor tardó demasiado en responder. Por favor, intenta de nuevo."
	msgInternalError      = "Error interno del servidor"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userDTO struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

type loginResponse struct {
	User  userDTO `json:"user"`
	Token string  `json:"token"`
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {

	var in loginRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		errorJSON(w, http.StatusBadRequest, msgInvalidInput)
		return
	}
	defer r.Body.Close()

	result, err := s.users.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrorValidation):
			errorJSON(w, http.StatusBadRequest, msgInvalidInput)
		case errors.Is(err, shared.ErrorInvalidCredentials):
			errorJSON(w, http.StatusUnauthorized, msgInvalidCredentials)
		case errors.Is(err, shared.ErrorTimeout):
			errorJSON(w, http.StatusGatewayTimeout, msgTimeout)
		default:
			s.logger.Error(r.Context(), "login failed", "error", err)
			errorJSON(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	s.logger.Info(r.Context(), "login succeeded", "user_id", result.User.ID)

	writeJSON(w, http.StatusOK, loginResponse{
		User:  toDTO(result.User),
		Token: result.Token,
	})
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func toDTO(u *users.User) userDTO {
	return userDTO{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role, Active: u.Active}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
