package report

import (
	"context"

	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
)

type ReportService interface {
	GenerateUserReport(ctx context.Context, actor user.Actor, req UserReportRequest) (Entry, error)
	GenerateCompanySummary(ctx context.Context, actor user.Actor, req CompanyReportRequest) ([]Entry, error)
	GenerateCompanyOverview(ctx context.Context, actor user.Actor, req OverviewRequest) ([]OverviewRow, error)
}
