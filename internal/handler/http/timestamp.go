package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/timewatch/timewatch-backend-go/internal/domain/timestamp"
	"github.com/timewatch/timewatch-backend-go/internal/handler/http/middleware"
	"github.com/timewatch/timewatch-backend-go/internal/handler/http/response"
)

type TimeStampHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetRange(w http.ResponseWriter, r *http.Request)
	PunchInStatus(w http.ResponseWriter, r *http.Request)
	GetAll(w http.ResponseWriter, r *http.Request)
}

type timeStampHandlerImpl struct {
	timeStampService timestamp.TimeStampService
}

func NewTimeStampHandler(timeStampService timestamp.TimeStampService) TimeStampHandler {
	return &timeStampHandlerImpl{
		timeStampService: timeStampService,
	}
}

// Create handles POST /timestamps
func (h *timeStampHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq timestamp.CreateTimeStampRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create time stamp decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.timeStampService.Create(r.Context(), actor, createReq)
	if err != nil {
		slog.Error("Create time stamp service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time stamp created successfully", record)
}

// PunchOut handles POST /timestamps/punch-out
func (h *timeStampHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var punchOutReq timestamp.PunchOutRequest
	if err := json.NewDecoder(r.Body).Decode(&punchOutReq); err != nil {
		slog.Error("Punch out decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.timeStampService.PunchOut(r.Context(), actor, punchOutReq)
	if err != nil {
		slog.Error("Punch out service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punched out successfully", record)
}

// Update handles PUT /timestamps/{uuid}
func (h *timeStampHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	recordUUID := chi.URLParam(r, "uuid")

	var updateReq timestamp.UpdateTimeStampRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update time stamp decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.timeStampService.Update(r.Context(), actor, recordUUID, updateReq)
	if err != nil {
		slog.Error("Update time stamp service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time stamp updated successfully", record)
}

// Delete handles DELETE /timestamps/{uuid}
func (h *timeStampHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	recordUUID := chi.URLParam(r, "uuid")

	if err := h.timeStampService.Delete(r.Context(), actor, recordUUID); err != nil {
		slog.Error("Delete time stamp service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time stamp deleted successfully", nil)
}

// GetRange handles GET /timestamps?user_email=&start_date=&end_date=
func (h *timeStampHandlerImpl) GetRange(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rangeReq := timestamp.RangeRequest{
		UserEmail: r.URL.Query().Get("user_email"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	records, err := h.timeStampService.GetRange(r.Context(), actor, rangeReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// PunchInStatus handles GET /timestamps/status?user_email=
func (h *timeStampHandlerImpl) PunchInStatus(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	userEmail := r.URL.Query().Get("user_email")
	if userEmail == "" {
		userEmail = actor.Email
	}

	status, err := h.timeStampService.PunchInStatus(r.Context(), actor, userEmail)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

// GetAll handles GET /timestamps/all
func (h *timeStampHandlerImpl) GetAll(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.timeStampService.GetAll(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
