package http

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"github.com/pillyapp/accountd/internal/shared"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type changePasswordRequest struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type messageResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId,omitempty"`
	Token   string `json:"token,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body messageResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return false
	}
	return true
}

// remoteIP extracts the client address; chi's RealIP middleware has already
// rewritten RemoteAddr when a forwarding header was present.
func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "ok"})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Email == "" || req.Password == "" || req.Name == "" {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "email, password and name are required"})
		return
	}

	account, err := s.accounts.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrorValidation):
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "email, password and name are required"})
		case errors.Is(err, shared.ErrorEmailTaken):
			writeJSON(w, http.StatusConflict, messageResponse{Message: "email address is already registered"})
		default:
			s.logger.Error(r.Context(), "registration failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "server error"})
		}
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "registration successful", UserID: account.ID})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "email and password are required"})
		return
	}

	account, token, err := s.accounts.Verify(r.Context(), req.Email, req.Password, remoteIP(r))
	if err != nil {
		switch {
		// one message for unknown email and wrong password alike
		case errors.Is(err, shared.ErrorInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, messageResponse{Message: "invalid email or password"})
		case errors.Is(err, shared.ErrorTooManyAttempts):
			writeJSON(w, http.StatusTooManyRequests, messageResponse{Message: "too many login attempts, try again later"})
		default:
			s.logger.Error(r.Context(), "login failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "server error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "login successful", UserID: account.ID, Token: token})
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := s.accounts.UpdateName(r.Context(), req.Email, req.Name); err != nil {
		switch {
		case errors.Is(err, shared.ErrorValidation):
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "email and name are required"})
		case errors.Is(err, shared.ErrorNotFound):
			writeJSON(w, http.StatusNotFound, messageResponse{Message: "user not found"})
		default:
			s.logger.Error(r.Context(), "name update failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "server error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "user updated successfully"})
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := s.accounts.ChangePassword(r.Context(), req.Email, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrorValidation):
			writeJSON(w, http.StatusBadRequest, messageResponse{
				Message: "new password must be at least 8 characters with an uppercase letter and a special character",
			})
		case errors.Is(err, shared.ErrorInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, messageResponse{Message: "current password is incorrect"})
		case errors.Is(err, shared.ErrorNotFound):
			writeJSON(w, http.StatusNotFound, messageResponse{Message: "user not found"})
		default:
			s.logger.Error(r.Context(), "password change failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "server error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "password changed successfully"})
}
