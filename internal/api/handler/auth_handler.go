package handler

import (
	"encoding/json"
	"net/http"

	"mergington_api/internal/api/middleware"
	"mergington_api/internal/app/service"
	"mergington_api/internal/common"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/login", h.login)
	r.Get("/verify", h.verify)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

type verifyResponse struct {
	Authenticated bool   `json:"authenticated"`
	TeacherName   string `json:"teacher_name,omitempty"`
}

// verify reports whether the caller holds a valid teacher token. It
// answers 200 for anonymous callers too; the frontend polls it on load.
func (h *AuthHandler) verify(w http.ResponseWriter, r *http.Request) {
	teacher, ok := middleware.GetTeacherFromContext(r.Context())
	if !ok {
		common.RespondWithJSON(w, http.StatusOK, verifyResponse{Authenticated: false})
		return
	}
	common.RespondWithJSON(w, http.StatusOK, verifyResponse{
		Authenticated: true,
		TeacherName:   teacher.DisplayName,
	})
}
