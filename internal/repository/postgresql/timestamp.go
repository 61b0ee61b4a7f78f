package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/timewatch/timewatch-backend-go/internal/domain/timestamp"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/database"
)

const timeStampColumns = `uuid, user_email, entered_by, punch_type, punch_in_timestamp,
	   punch_out_timestamp, reporting_type, COALESCE(detail, ''), last_update`

type timeStampRepositoryImpl struct {
	db *database.DB
}

func NewTimeStampRepository(db *database.DB) timestamp.TimeStampRepository {
	return &timeStampRepositoryImpl{db: db}
}

func scanTimeStamp(row rowScanner) (timestamp.TimeStamp, error) {
	var t timestamp.TimeStamp
	var punchType int
	var reportingType string

	err := row.Scan(
		&t.UUID,
		&t.UserEmail,
		&t.EnteredBy,
		&punchType,
		&t.PunchIn,
		&t.PunchOut,
		&reportingType,
		&t.Detail,
		&t.LastUpdate,
	)
	if err != nil {
		return timestamp.TimeStamp{}, err
	}

	t.PunchType = timestamp.PunchType(punchType)
	t.ReportingType = timestamp.ReportingType(reportingType)
	return t, nil
}

func scanTimeStamps(rows pgx.Rows) ([]timestamp.TimeStamp, error) {
	defer rows.Close()

	var stamps []timestamp.TimeStamp
	for rows.Next() {
		t, err := scanTimeStamp(rows)
		if err != nil {
			return nil, err
		}
		stamps = append(stamps, t)
	}
	return stamps, rows.Err()
}

// Create implements timestamp.TimeStampRepository.
func (r *timeStampRepositoryImpl) Create(ctx context.Context, stamp timestamp.TimeStamp) (timestamp.TimeStamp, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_stamps (
			uuid, user_email, entered_by, punch_type, punch_in_timestamp,
			punch_out_timestamp, reporting_type, detail, last_update
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING ` + timeStampColumns

	row := q.QueryRow(ctx, query,
		stamp.UUID,
		stamp.UserEmail,
		stamp.EnteredBy,
		int(stamp.PunchType),
		stamp.PunchIn,
		stamp.PunchOut,
		string(stamp.ReportingType),
		stamp.Detail,
	)
	return scanTimeStamp(row)
}

// Update implements timestamp.TimeStampRepository.
func (r *timeStampRepositoryImpl) Update(ctx context.Context, stamp timestamp.TimeStamp) (timestamp.TimeStamp, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_stamps
		SET punch_type = $1, punch_in_timestamp = $2, punch_out_timestamp = $3,
			reporting_type = $4, detail = $5, entered_by = $6, last_update = NOW()
		WHERE uuid = $7
		RETURNING ` + timeStampColumns

	row := q.QueryRow(ctx, query,
		int(stamp.PunchType),
		stamp.PunchIn,
		stamp.PunchOut,
		string(stamp.ReportingType),
		stamp.Detail,
		stamp.EnteredBy,
		stamp.UUID,
	)
	t, err := scanTimeStamp(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timestamp.TimeStamp{}, timestamp.ErrTimeStampNotFound
		}
		return timestamp.TimeStamp{}, err
	}
	return t, nil
}

// Delete implements timestamp.TimeStampRepository.
func (r *timeStampRepositoryImpl) Delete(ctx context.Context, uuid string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM time_stamps WHERE uuid = $1`, uuid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timestamp.ErrTimeStampNotFound
	}
	return nil
}

// GetByUUID implements timestamp.TimeStampRepository.
func (r *timeStampRepositoryImpl) GetByUUID(ctx context.Context, uuid string) (timestamp.TimeStamp, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeStampColumns + ` FROM time_stamps WHERE uuid = $1`

	t, err := scanTimeStamp(q.QueryRow(ctx, query, uuid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timestamp.TimeStamp{}, timestamp.ErrTimeStampNotFound
		}
		return timestamp.TimeStamp{}, err
	}
	return t, nil
}

// GetOpenOnDate implements timestamp.TimeStampRepository.
func (r *timeStampRepositoryImpl) GetOpenOnDate(ctx context.Context, userEmail string, day time.Time) (timestamp.TimeStamp, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeStampColumns + ` FROM time_stamps
		WHERE user_email = $1
		  AND punch_out_timestamp IS NULL
		  AND (punch_in_timestamp AT TIME ZONE 'UTC')::date = $2::date
		ORDER BY punch_in_timestamp
		LIMIT 1`

	t, err := scanTimeStamp(q.QueryRow(ctx, query, userEmail, day.UTC()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timestamp.TimeStamp{}, timestamp.ErrTimeStampNotFound
		}
		return timestamp.TimeStamp{}, err
	}
	return t, nil
}

// GetRange implements timestamp.TimeStampRepository.
func (r *timeStampRepositoryImpl) GetRange(ctx context.Context, userEmail string, start, end time.Time) ([]timestamp.TimeStamp, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeStampColumns + ` FROM time_stamps
		WHERE user_email = $1
		  AND punch_in_timestamp >= $2
		  AND punch_in_timestamp < $3
		ORDER BY punch_in_timestamp`

	// end is an inclusive calendar day, extend to its midnight boundary
	rows, err := q.Query(ctx, query, userEmail, start.UTC(), end.UTC().AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	return scanTimeStamps(rows)
}

// GetAll implements timestamp.TimeStampRepository.
func (r *timeStampRepositoryImpl) GetAll(ctx context.Context) ([]timestamp.TimeStamp, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+timeStampColumns+` FROM time_stamps
		ORDER BY punch_in_timestamp`)
	if err != nil {
		return nil, err
	}
	return scanTimeStamps(rows)
}

// GetStaleOpen implements timestamp.TimeStampRepository.
func (r *timeStampRepositoryImpl) GetStaleOpen(ctx context.Context, cutoff time.Time) ([]timestamp.TimeStamp, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+timeStampColumns+` FROM time_stamps
		WHERE punch_out_timestamp IS NULL
		  AND punch_in_timestamp < $1
		ORDER BY punch_in_timestamp`, cutoff.UTC())
	if err != nil {
		return nil, err
	}
	return scanTimeStamps(rows)
}
