package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
	"github.com/timewatch/timewatch-backend-go/internal/handler/http/middleware"
	"github.com/timewatch/timewatch-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Reactivate(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &userHandlerImpl{
		userService: userService,
	}
}

// Create handles POST /users
func (h *userHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq user.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	profile, err := h.userService.Create(r.Context(), actor, createReq)
	if err != nil {
		slog.Error("Create user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created successfully", profile)
}

// Update handles PUT /users/{email}
func (h *userHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	email := chi.URLParam(r, "email")

	var updateReq user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	profile, err := h.userService.Update(r.Context(), actor, email, updateReq)
	if err != nil {
		slog.Error("Update user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User updated successfully", profile)
}

// Delete handles DELETE /users/{email}
func (h *userHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	email := chi.URLParam(r, "email")

	if err := h.userService.Delete(r.Context(), actor, email); err != nil {
		slog.Error("Delete user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User deactivated successfully", nil)
}

// Reactivate handles POST /users/{email}/reactivate
func (h *userHandlerImpl) Reactivate(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	email := chi.URLParam(r, "email")

	profile, err := h.userService.Reactivate(r.Context(), actor, email)
	if err != nil {
		slog.Error("Reactivate user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User reactivated successfully", profile)
}

// ChangePassword handles PUT /users/{email}/password
func (h *userHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	email := chi.URLParam(r, "email")

	var changeReq user.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&changeReq); err != nil {
		slog.Error("Change password decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.userService.ChangePassword(r.Context(), actor, email, changeReq); err != nil {
		slog.Error("Change password service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password changed successfully", nil)
}

// Get handles GET /users/{email}
func (h *userHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	email := chi.URLParam(r, "email")

	profile, err := h.userService.Get(r.Context(), actor, email)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// List handles GET /users?scope=active|inactive|all
func (h *userHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	scope, ok := user.ParseListScope(r.URL.Query().Get("scope"))
	if !ok {
		response.BadRequest(w, "scope must be active, inactive or all", nil)
		return
	}

	profiles, err := h.userService.List(r.Context(), actor, scope)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profiles)
}
