package timestamp

import (
	"context"

	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
)

type TimeStampService interface {
	Create(ctx context.Context, actor user.Actor, req CreateTimeStampRequest) (Record, error)
	PunchOut(ctx context.Context, actor user.Actor, req PunchOutRequest) (Record, error)
	Update(ctx context.Context, actor user.Actor, uuid string, req UpdateTimeStampRequest) (Record, error)
	Delete(ctx context.Context, actor user.Actor, uuid string) error
	GetRange(ctx context.Context, actor user.Actor, req RangeRequest) ([]Record, error)
	PunchInStatus(ctx context.Context, actor user.Actor, userEmail string) (StatusResponse, error)
	GetAll(ctx context.Context, actor user.Actor) ([]Record, error)
}
