package timestamp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/timewatch/timewatch-backend-go/internal/domain/timestamp"
	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/validator"
)

type TimeStampServiceImpl struct {
	timeStampRepo timestamp.TimeStampRepository
	userRepo      user.UserRepository
}

func NewTimeStampService(timeStampRepo timestamp.TimeStampRepository, userRepo user.UserRepository) timestamp.TimeStampService {
	return &TimeStampServiceImpl{
		timeStampRepo: timeStampRepo,
		userRepo:      userRepo,
	}
}

// authorizeTarget loads the owner of a record and checks the actor may
// write records on their behalf.
func (s *TimeStampServiceImpl) authorizeTarget(ctx context.Context, actor user.Actor, userEmail string) (user.User, error) {
	target, err := s.userRepo.GetByEmail(ctx, userEmail)
	if err != nil {
		return user.User{}, err
	}
	if !actor.CanAccessUser(target) {
		return user.User{}, timestamp.ErrUnauthorizedAccess
	}
	return target, nil
}

// Create implements timestamp.TimeStampService. A missing punch-in
// defaults to now, a missing reporting type to a work entry.
func (s *TimeStampServiceImpl) Create(ctx context.Context, actor user.Actor, req timestamp.CreateTimeStampRequest) (timestamp.Record, error) {
	if err := req.Validate(); err != nil {
		return timestamp.Record{}, err
	}

	target, err := s.authorizeTarget(ctx, actor, req.UserEmail)
	if err != nil {
		return timestamp.Record{}, err
	}
	if !target.IsActive {
		return timestamp.Record{}, user.ErrUserInactive
	}

	punchIn := time.Now().UTC()
	if req.PunchIn != nil {
		punchIn, _ = validator.IsValidDateTime(*req.PunchIn)
		punchIn = punchIn.UTC()
	}

	var punchOut *time.Time
	if req.PunchOut != nil {
		parsed, _ := validator.IsValidDateTime(*req.PunchOut)
		parsed = parsed.UTC()
		punchOut = &parsed
	}

	if punchOut == nil {
		_, err := s.timeStampRepo.GetOpenOnDate(ctx, req.UserEmail, punchIn)
		if err == nil {
			return timestamp.Record{}, timestamp.ErrAlreadyPunchedIn
		}
		if !errors.Is(err, timestamp.ErrTimeStampNotFound) {
			return timestamp.Record{}, fmt.Errorf("failed to check open punch-in: %w", err)
		}
	}

	reportingType := timestamp.ReportingWork
	if req.ReportingType != "" {
		reportingType = timestamp.ReportingType(req.ReportingType)
	}

	created, err := s.timeStampRepo.Create(ctx, timestamp.TimeStamp{
		UUID:          uuid.NewString(),
		UserEmail:     req.UserEmail,
		EnteredBy:     actor.Email,
		PunchType:     timestamp.PunchType(req.PunchType),
		PunchIn:       punchIn,
		PunchOut:      punchOut,
		ReportingType: reportingType,
		Detail:        req.Detail,
	})
	if err != nil {
		return timestamp.Record{}, fmt.Errorf("failed to create time stamp: %w", err)
	}
	return timestamp.NewRecord(created), nil
}

// PunchOut implements timestamp.TimeStampService. It closes today's open
// punch-in for the user.
func (s *TimeStampServiceImpl) PunchOut(ctx context.Context, actor user.Actor, req timestamp.PunchOutRequest) (timestamp.Record, error) {
	if err := req.Validate(); err != nil {
		return timestamp.Record{}, err
	}

	if _, err := s.authorizeTarget(ctx, actor, req.UserEmail); err != nil {
		return timestamp.Record{}, err
	}

	now := time.Now().UTC()
	open, err := s.timeStampRepo.GetOpenOnDate(ctx, req.UserEmail, now)
	if err != nil {
		if errors.Is(err, timestamp.ErrTimeStampNotFound) {
			return timestamp.Record{}, timestamp.ErrNoOpenPunchIn
		}
		return timestamp.Record{}, fmt.Errorf("failed to find open punch-in: %w", err)
	}

	open.PunchOut = &now
	open.EnteredBy = actor.Email
	if req.Detail != "" {
		open.Detail = req.Detail
	}

	closed, err := s.timeStampRepo.Update(ctx, open)
	if err != nil {
		return timestamp.Record{}, fmt.Errorf("failed to close punch-in: %w", err)
	}
	return timestamp.NewRecord(closed), nil
}

// Update implements timestamp.TimeStampService.
func (s *TimeStampServiceImpl) Update(ctx context.Context, actor user.Actor, recordUUID string, req timestamp.UpdateTimeStampRequest) (timestamp.Record, error) {
	if err := req.Validate(); err != nil {
		return timestamp.Record{}, err
	}

	stamp, err := s.timeStampRepo.GetByUUID(ctx, recordUUID)
	if err != nil {
		return timestamp.Record{}, err
	}
	if _, err := s.authorizeTarget(ctx, actor, stamp.UserEmail); err != nil {
		return timestamp.Record{}, err
	}

	if req.PunchType != nil {
		stamp.PunchType = timestamp.PunchType(*req.PunchType)
	}
	if req.PunchIn != nil {
		punchIn, _ := validator.IsValidDateTime(*req.PunchIn)
		stamp.PunchIn = punchIn.UTC()
	}
	if req.PunchOut != nil {
		punchOut, _ := validator.IsValidDateTime(*req.PunchOut)
		punchOut = punchOut.UTC()
		stamp.PunchOut = &punchOut
	}
	if req.ReportingType != nil {
		stamp.ReportingType = timestamp.ReportingType(*req.ReportingType)
	}
	if req.Detail != nil {
		stamp.Detail = *req.Detail
	}

	if stamp.PunchOut != nil && stamp.PunchOut.Before(stamp.PunchIn) {
		return timestamp.Record{}, timestamp.ErrPunchOutBeforePunchIn
	}

	stamp.EnteredBy = actor.Email
	updated, err := s.timeStampRepo.Update(ctx, stamp)
	if err != nil {
		return timestamp.Record{}, fmt.Errorf("failed to update time stamp: %w", err)
	}
	return timestamp.NewRecord(updated), nil
}

// Delete implements timestamp.TimeStampService.
func (s *TimeStampServiceImpl) Delete(ctx context.Context, actor user.Actor, recordUUID string) error {
	stamp, err := s.timeStampRepo.GetByUUID(ctx, recordUUID)
	if err != nil {
		return err
	}
	if _, err := s.authorizeTarget(ctx, actor, stamp.UserEmail); err != nil {
		return err
	}

	return s.timeStampRepo.Delete(ctx, recordUUID)
}

// GetRange implements timestamp.TimeStampService.
func (s *TimeStampServiceImpl) GetRange(ctx context.Context, actor user.Actor, req timestamp.RangeRequest) ([]timestamp.Record, error) {
	start, end, err := req.Validate()
	if err != nil {
		return nil, err
	}

	if _, err := s.authorizeTarget(ctx, actor, req.UserEmail); err != nil {
		return nil, err
	}

	stamps, err := s.timeStampRepo.GetRange(ctx, req.UserEmail, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list time stamps: %w", err)
	}
	return timestamp.NewRecords(stamps), nil
}

// PunchInStatus implements timestamp.TimeStampService.
func (s *TimeStampServiceImpl) PunchInStatus(ctx context.Context, actor user.Actor, userEmail string) (timestamp.StatusResponse, error) {
	if _, err := s.authorizeTarget(ctx, actor, userEmail); err != nil {
		return timestamp.StatusResponse{}, err
	}

	open, err := s.timeStampRepo.GetOpenOnDate(ctx, userEmail, time.Now().UTC())
	if err != nil {
		if errors.Is(err, timestamp.ErrTimeStampNotFound) {
			return timestamp.StatusResponse{PunchedIn: false}, nil
		}
		return timestamp.StatusResponse{}, fmt.Errorf("failed to check open punch-in: %w", err)
	}

	return timestamp.StatusResponse{
		PunchedIn: true,
		PunchIn:   &open.PunchIn,
	}, nil
}

// GetAll implements timestamp.TimeStampService. Net admins only.
func (s *TimeStampServiceImpl) GetAll(ctx context.Context, actor user.Actor) ([]timestamp.Record, error) {
	if !actor.Permission.IsNetAdmin() {
		return nil, timestamp.ErrUnauthorizedAccess
	}

	stamps, err := s.timeStampRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list time stamps: %w", err)
	}
	return timestamp.NewRecords(stamps), nil
}
