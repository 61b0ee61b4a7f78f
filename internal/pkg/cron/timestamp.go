package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/timewatch/timewatch-backend-go/internal/domain/timestamp"
	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
)

// TimeStampJobs closes punch-ins that were left open. An open record
// older than 24 hours is closed at punch-in plus the user's daily work
// capacity, so the forgotten day still counts as a normal shift.
type TimeStampJobs struct {
	timeStampRepo timestamp.TimeStampRepository
	userRepo      user.UserRepository
}

func NewTimeStampJobs(timeStampRepo timestamp.TimeStampRepository, userRepo user.UserRepository) *TimeStampJobs {
	return &TimeStampJobs{
		timeStampRepo: timeStampRepo,
		userRepo:      userRepo,
	}
}

func (j *TimeStampJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_punch_ins", 1*time.Hour, j.AutoCloseStalePunchIns)
}

func (j *TimeStampJobs) AutoCloseStalePunchIns(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-24 * time.Hour)

	stale, err := j.timeStampRepo.GetStaleOpen(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to get stale punch-ins: %w", err)
	}

	if len(stale) == 0 {
		return nil
	}

	closedCount := 0
	for _, stamp := range stale {
		owner, err := j.userRepo.GetByEmail(ctx, stamp.UserEmail)
		if err != nil {
			slog.Error("Cron: Failed to load punch-in owner",
				"uuid", stamp.UUID,
				"user_email", stamp.UserEmail,
				"error", err)
			continue
		}

		capacity := time.Duration(owner.WorkCapacity * float64(time.Hour))
		punchOut := stamp.PunchIn.Add(capacity)
		stamp.PunchOut = &punchOut
		stamp.PunchType = timestamp.PunchTypeSystem
		if stamp.Detail != "" {
			stamp.Detail += "; "
		}
		stamp.Detail += "auto-closed: no punch-out recorded within 24 hours"

		if _, err := j.timeStampRepo.Update(ctx, stamp); err != nil {
			slog.Error("Cron: Failed to auto-close punch-in",
				"uuid", stamp.UUID,
				"user_email", stamp.UserEmail,
				"error", err)
			continue
		}
		closedCount++
	}

	slog.Info("Cron: Auto-closed stale punch-ins", "count", closedCount)
	return nil
}
