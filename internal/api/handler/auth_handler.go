package handler

import (
	"encoding/json"
	"net/http"

	"taskboard/internal/api/middleware"
	"taskboard/internal/apperror"
	"taskboard/internal/core/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type registerResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Name    string `json:"name"`
	// Password echoes the stored hash; an artifact of the existing
	// client contract.
	Password string `json:"password"`
	Success  bool   `json:"success"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.NewValidation("Invalid request body"))
		return
	}

	result, err := h.authService.Register(req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, registerResponse{
		Message:  "User registered successfully",
		Token:    result.Token,
		Name:     result.Name,
		Password: result.PasswordHash,
		Success:  true,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Name    string `json:"name"`
	Success bool   `json:"success"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.NewValidation("Invalid request body"))
		return
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Message: "User login successfully",
		Token:   result.Token,
		Name:    result.Name,
		Success: true,
	})
}

// Profile echoes the identity the session verification step attached;
// no further lookup is performed.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Profile accessed successfully",
		"user":    middleware.SubjectFromContext(r.Context()),
	})
}

type updatePasswordRequest struct {
	Name        string `json:"name"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req updatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.NewValidation("Invalid request body"))
		return
	}

	if err := h.authService.UpdatePassword(req.Name, req.OldPassword, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Password updated successfully",
	})
}
