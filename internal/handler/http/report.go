package http

import (
	"net/http"
	"strconv"

	"github.com/timewatch/timewatch-backend-go/internal/domain/report"
	"github.com/timewatch/timewatch-backend-go/internal/handler/http/middleware"
	"github.com/timewatch/timewatch-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Single employee report with daily breakdown
	GetUserReport(w http.ResponseWriter, r *http.Request)

	// Per-employee summary for one company
	GetCompanyReport(w http.ResponseWriter, r *http.Request)

	// Cross-company overview
	GetCompanyOverview(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// rangeParams reads the shared date range query parameters. Year and
// month only matter for monthly ranges, missing values stay zero and
// fail range resolution downstream.
func rangeParams(r *http.Request) (rangeType string, year, month int, startDate, endDate string, err error) {
	q := r.URL.Query()
	rangeType = q.Get("dateRangeType")
	startDate = q.Get("start_date")
	endDate = q.Get("end_date")

	if yearStr := q.Get("year"); yearStr != "" {
		year, err = strconv.Atoi(yearStr)
		if err != nil {
			return
		}
	}
	if monthStr := q.Get("month"); monthStr != "" {
		month, err = strconv.Atoi(monthStr)
		if err != nil {
			return
		}
	}
	return
}

// GetUserReport handles GET /reports/user
func (h *reportHandlerImpl) GetUserReport(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rangeType, year, month, startDate, endDate, err := rangeParams(r)
	if err != nil {
		response.BadRequest(w, "year and month must be integers", nil)
		return
	}

	req := report.UserReportRequest{
		UserEmail:     r.URL.Query().Get("user_email"),
		DateRangeType: rangeType,
		Year:          year,
		Month:         month,
		StartDate:     startDate,
		EndDate:       endDate,
	}

	result, err := h.reportService.GenerateUserReport(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetCompanyReport handles GET /reports/company
func (h *reportHandlerImpl) GetCompanyReport(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rangeType, year, month, startDate, endDate, err := rangeParams(r)
	if err != nil {
		response.BadRequest(w, "year and month must be integers", nil)
		return
	}

	req := report.CompanyReportRequest{
		CompanyID:     r.URL.Query().Get("company_id"),
		DateRangeType: rangeType,
		Year:          year,
		Month:         month,
		StartDate:     startDate,
		EndDate:       endDate,
	}

	result, err := h.reportService.GenerateCompanySummary(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetCompanyOverview handles GET /reports/overview
func (h *reportHandlerImpl) GetCompanyOverview(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rangeType, year, month, startDate, endDate, err := rangeParams(r)
	if err != nil {
		response.BadRequest(w, "year and month must be integers", nil)
		return
	}

	req := report.OverviewRequest{
		DateRangeType: rangeType,
		Year:          year,
		Month:         month,
		StartDate:     startDate,
		EndDate:       endDate,
	}

	result, err := h.reportService.GenerateCompanyOverview(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
