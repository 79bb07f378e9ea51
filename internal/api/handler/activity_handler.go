package handler

import (
	"encoding/json"
	"net/http"

	"mergington_api/internal/api/middleware"
	"mergington_api/internal/app/service"
	"mergington_api/internal/common"

	"github.com/go-chi/chi/v5"
)

type ActivityHandler struct {
	activityService *service.ActivityService
}

func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

func (h *ActivityHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listActivities) // GET /activities

	r.Group(func(teacherRouter chi.Router) {
		teacherRouter.Use(middleware.RequireTeacher)
		teacherRouter.Post("/{activityName}/signup", h.signup)
		teacherRouter.Delete("/{activityName}/unregister", h.unregister)
	})
}

func (h *ActivityHandler) listActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activityService.List(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, activities)
}

type signupRequest struct {
	Email string `json:"email"`
}

func (h *ActivityHandler) signup(w http.ResponseWriter, r *http.Request) {
	teacher, ok := middleware.GetTeacherFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing teacher context")
		return
	}

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	activityName := chi.URLParam(r, "activityName")
	message, err := h.activityService.Signup(r.Context(), activityName, req.Email, teacher.Username)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: message})
}

func (h *ActivityHandler) unregister(w http.ResponseWriter, r *http.Request) {
	teacher, ok := middleware.GetTeacherFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing teacher context")
		return
	}

	activityName := chi.URLParam(r, "activityName")
	email := r.URL.Query().Get("email")
	message, err := h.activityService.Unregister(r.Context(), activityName, email, teacher.Username)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: message})
}
