package timestamp

import (
	"context"
	"time"
)

type TimeStampRepository interface {
	Create(ctx context.Context, stamp TimeStamp) (TimeStamp, error)
	Update(ctx context.Context, stamp TimeStamp) (TimeStamp, error)
	Delete(ctx context.Context, uuid string) error
	GetByUUID(ctx context.Context, uuid string) (TimeStamp, error)
	// GetOpenOnDate returns the open record whose punch-in falls on the
	// given UTC calendar day, or ErrTimeStampNotFound.
	GetOpenOnDate(ctx context.Context, userEmail string, day time.Time) (TimeStamp, error)
	// GetRange returns records with punch-in inside [start, end], ordered
	// by punch-in ascending.
	GetRange(ctx context.Context, userEmail string, start, end time.Time) ([]TimeStamp, error)
	GetAll(ctx context.Context) ([]TimeStamp, error)
	// GetStaleOpen returns open records whose punch-in is older than the cutoff.
	GetStaleOpen(ctx context.Context, cutoff time.Time) ([]TimeStamp, error)
}
