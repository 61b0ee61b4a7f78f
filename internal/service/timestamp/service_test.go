package timestamp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timewatch/timewatch-backend-go/internal/domain/timestamp"
	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
)

type stubUserRepo struct {
	users map[string]user.User
}

func (s *stubUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	s.users[u.Email] = u
	return u, nil
}

func (s *stubUserRepo) Update(_ context.Context, u user.User) (user.User, error) {
	s.users[u.Email] = u
	return u, nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := s.users[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := s.users[email]
	return ok, nil
}

func (s *stubUserRepo) SetPassword(context.Context, string, string) error { return nil }
func (s *stubUserRepo) Deactivate(context.Context, string) error { return nil }
func (s *stubUserRepo) Reactivate(context.Context, string) error { return nil }

func (s *stubUserRepo) ListByCompany(context.Context, string, user.ListScope) ([]user.User, error) {
	return nil, nil
}

func (s *stubUserRepo) List(context.Context, user.ListScope) ([]user.User, error) {
	return nil, nil
}

func (s *stubUserRepo) GetActiveByCompany(context.Context, string) ([]user.User, error) {
	return nil, nil
}

func (s *stubUserRepo) GetCompanyAdmins(context.Context, string) ([]user.User, error) {
	return nil, nil
}

type stubTimeStampRepo struct {
	stamps map[string]timestamp.TimeStamp
}

func (s *stubTimeStampRepo) Create(_ context.Context, t timestamp.TimeStamp) (timestamp.TimeStamp, error) {
	s.stamps[t.UUID] = t
	return t, nil
}

func (s *stubTimeStampRepo) Update(_ context.Context, t timestamp.TimeStamp) (timestamp.TimeStamp, error) {
	if _, ok := s.stamps[t.UUID]; !ok {
		return timestamp.TimeStamp{}, timestamp.ErrTimeStampNotFound
	}
	s.stamps[t.UUID] = t
	return t, nil
}

func (s *stubTimeStampRepo) Delete(_ context.Context, uuid string) error {
	if _, ok := s.stamps[uuid]; !ok {
		return timestamp.ErrTimeStampNotFound
	}
	delete(s.stamps, uuid)
	return nil
}

func (s *stubTimeStampRepo) GetByUUID(_ context.Context, uuid string) (timestamp.TimeStamp, error) {
	t, ok := s.stamps[uuid]
	if !ok {
		return timestamp.TimeStamp{}, timestamp.ErrTimeStampNotFound
	}
	return t, nil
}

func (s *stubTimeStampRepo) GetOpenOnDate(_ context.Context, userEmail string, day time.Time) (timestamp.TimeStamp, error) {
	for _, t := range s.stamps {
		if t.UserEmail == userEmail && t.IsOpen() && t.OnDate(day) {
			return t, nil
		}
	}
	return timestamp.TimeStamp{}, timestamp.ErrTimeStampNotFound
}

func (s *stubTimeStampRepo) GetRange(_ context.Context, userEmail string, start, end time.Time) ([]timestamp.TimeStamp, error) {
	limit := end.AddDate(0, 0, 1)
	var out []timestamp.TimeStamp
	for _, t := range s.stamps {
		if t.UserEmail == userEmail && !t.PunchIn.Before(start) && t.PunchIn.Before(limit) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *stubTimeStampRepo) GetAll(_ context.Context) ([]timestamp.TimeStamp, error) {
	var out []timestamp.TimeStamp
	for _, t := range s.stamps {
		out = append(out, t)
	}
	return out, nil
}

func (s *stubTimeStampRepo) GetStaleOpen(_ context.Context, cutoff time.Time) ([]timestamp.TimeStamp, error) {
	var out []timestamp.TimeStamp
	for _, t := range s.stamps {
		if t.IsOpen() && t.PunchIn.Before(cutoff) {
			out = append(out, t)
		}
	}
	return out, nil
}

func newFixture() (*stubUserRepo, *stubTimeStampRepo, timestamp.TimeStampService) {
	users := &stubUserRepo{users: map[string]user.User{
		"worker@acme.example": {
			Email:      "worker@acme.example",
			CompanyID:  "company-acme",
			Permission: user.PermissionEmployee,
			IsActive:   true,
		},
		"other@acme.example": {
			Email:      "other@acme.example",
			CompanyID:  "company-acme",
			Permission: user.PermissionEmployee,
			IsActive:   true,
		},
	}}
	stamps := &stubTimeStampRepo{stamps: map[string]timestamp.TimeStamp{}}
	return users, stamps, NewTimeStampService(stamps, users)
}

func workerActor() user.Actor {
	return user.Actor{
		Email:      "worker@acme.example",
		Permission: user.PermissionEmployee,
		CompanyID:  "company-acme",
	}
}

func TestCreateDefaultsToOpenWorkEntry(t *testing.T) {
	_, stamps, svc := newFixture()

	record, err := svc.Create(context.Background(), workerActor(), timestamp.CreateTimeStampRequest{
		UserEmail: "worker@acme.example",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, record.UUID)
	assert.Equal(t, "work", record.ReportingType)
	assert.Nil(t, record.PunchOut)
	assert.Equal(t, int64(0), record.WorkSeconds)
	assert.Equal(t, "worker@acme.example", record.EnteredBy)
	assert.Len(t, stamps.stamps, 1)
}

func TestCreateRejectsSecondOpenPunchIn(t *testing.T) {
	_, _, svc := newFixture()

	_, err := svc.Create(context.Background(), workerActor(), timestamp.CreateTimeStampRequest{
		UserEmail: "worker@acme.example",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), workerActor(), timestamp.CreateTimeStampRequest{
		UserEmail: "worker@acme.example",
	})
	assert.ErrorIs(t, err, timestamp.ErrAlreadyPunchedIn)
}

func TestCreateEmployeeCannotRecordForColleague(t *testing.T) {
	_, _, svc := newFixture()

	_, err := svc.Create(context.Background(), workerActor(), timestamp.CreateTimeStampRequest{
		UserEmail: "other@acme.example",
	})
	assert.ErrorIs(t, err, timestamp.ErrUnauthorizedAccess)
}

func TestPunchOutClosesTodaysEntry(t *testing.T) {
	_, _, svc := newFixture()

	_, err := svc.Create(context.Background(), workerActor(), timestamp.CreateTimeStampRequest{
		UserEmail: "worker@acme.example",
	})
	require.NoError(t, err)

	record, err := svc.PunchOut(context.Background(), workerActor(), timestamp.PunchOutRequest{
		UserEmail: "worker@acme.example",
	})
	require.NoError(t, err)
	assert.NotNil(t, record.PunchOut)
}

func TestPunchOutWithoutOpenEntry(t *testing.T) {
	_, _, svc := newFixture()

	_, err := svc.PunchOut(context.Background(), workerActor(), timestamp.PunchOutRequest{
		UserEmail: "worker@acme.example",
	})
	assert.ErrorIs(t, err, timestamp.ErrNoOpenPunchIn)
}

func TestUpdateRejectsPunchOutBeforePunchIn(t *testing.T) {
	_, stamps, svc := newFixture()

	in := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	stamps.stamps["rec-1"] = timestamp.TimeStamp{
		UUID:          "rec-1",
		UserEmail:     "worker@acme.example",
		PunchIn:       in,
		ReportingType: timestamp.ReportingWork,
	}

	badOut := "2024-03-04T08:00:00Z"
	_, err := svc.Update(context.Background(), workerActor(), "rec-1", timestamp.UpdateTimeStampRequest{
		PunchOut: &badOut,
	})
	assert.ErrorIs(t, err, timestamp.ErrPunchOutBeforePunchIn)
}

func TestGetAllRequiresNetAdmin(t *testing.T) {
	_, _, svc := newFixture()

	_, err := svc.GetAll(context.Background(), workerActor())
	assert.ErrorIs(t, err, timestamp.ErrUnauthorizedAccess)
}

func TestPunchInStatus(t *testing.T) {
	_, _, svc := newFixture()

	status, err := svc.PunchInStatus(context.Background(), workerActor(), "worker@acme.example")
	require.NoError(t, err)
	assert.False(t, status.PunchedIn)

	_, err = svc.Create(context.Background(), workerActor(), timestamp.CreateTimeStampRequest{
		UserEmail: "worker@acme.example",
	})
	require.NoError(t, err)

	status, err = svc.PunchInStatus(context.Background(), workerActor(), "worker@acme.example")
	require.NoError(t, err)
	assert.True(t, status.PunchedIn)
	assert.NotNil(t, status.PunchIn)
}
