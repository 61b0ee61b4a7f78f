package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/timewatch/timewatch-backend-go/internal/domain/company"
	"github.com/timewatch/timewatch-backend-go/internal/handler/http/middleware"
	"github.com/timewatch/timewatch-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetName(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetUsers(w http.ResponseWriter, r *http.Request)
	GetAdmins(w http.ResponseWriter, r *http.Request)
}

type companyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &companyHandlerImpl{
		companyService: companyService,
	}
}

// Create handles POST /companies
func (h *companyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq company.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create company decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	details, err := h.companyService.Create(r.Context(), actor, createReq)
	if err != nil {
		slog.Error("Create company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Company created successfully", details)
}

// Update handles PUT /companies/{id}
func (h *companyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	var updateReq company.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update company decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	details, err := h.companyService.Update(r.Context(), actor, id, updateReq)
	if err != nil {
		slog.Error("Update company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company updated successfully", details)
}

// Delete handles DELETE /companies/{id}
func (h *companyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.companyService.Delete(r.Context(), actor, id); err != nil {
		slog.Error("Delete company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company deactivated successfully", nil)
}

// Get handles GET /companies/{id}
func (h *companyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	details, err := h.companyService.Get(r.Context(), actor, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, details)
}

// GetName handles GET /companies/{id}/name
func (h *companyHandlerImpl) GetName(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	name, err := h.companyService.GetName(r.Context(), actor, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"company_name": name})
}

// List handles GET /companies?include_inactive=true
func (h *companyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	includeInactive := r.URL.Query().Get("include_inactive") == "true"

	companies, err := h.companyService.List(r.Context(), actor, includeInactive)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, companies)
}

// GetUsers handles GET /companies/{id}/users
func (h *companyHandlerImpl) GetUsers(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	users, err := h.companyService.GetUsers(r.Context(), actor, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// GetAdmins handles GET /companies/{id}/admins
func (h *companyHandlerImpl) GetAdmins(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	admins, err := h.companyService.GetAdmins(r.Context(), actor, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, admins)
}
