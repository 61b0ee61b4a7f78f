package timestamp

import (
	"time"

	"github.com/timewatch/timewatch-backend-go/internal/pkg/validator"
)

type CreateTimeStampRequest struct {
	UserEmail     string  `json:"user_email"`
	PunchType     int     `json:"punch_type"`
	PunchIn       *string `json:"punch_in_timestamp,omitempty"`
	PunchOut      *string `json:"punch_out_timestamp,omitempty"`
	ReportingType string  `json:"reporting_type"`
	Detail        string  `json:"detail"`
}

func (r *CreateTimeStampRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.UserEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_email",
			Message: "invalid email format",
		})
	}
	if r.ReportingType != "" && !ValidReportingType(r.ReportingType) {
		errs = append(errs, validator.ValidationError{
			Field:   "reporting_type",
			Message: "reporting_type must be work, paidoff or unpaidoff",
		})
	}

	var punchIn time.Time
	if r.PunchIn != nil {
		var ok bool
		punchIn, ok = validator.IsValidDateTime(*r.PunchIn)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "punch_in_timestamp",
				Message: "punch_in_timestamp must be an ISO8601 timestamp",
			})
		}
	}
	if r.PunchOut != nil {
		punchOut, ok := validator.IsValidDateTime(*r.PunchOut)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "punch_out_timestamp",
				Message: "punch_out_timestamp must be an ISO8601 timestamp",
			})
		} else if r.PunchIn == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "punch_in_timestamp",
				Message: "punch_in_timestamp is required when punch_out_timestamp is set",
			})
		} else if punchOut.Before(punchIn) {
			errs = append(errs, validator.ValidationError{
				Field:   "punch_out_timestamp",
				Message: "punch_out_timestamp must not precede punch_in_timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchOutRequest struct {
	UserEmail string `json:"user_email"`
	Detail    string `json:"detail"`
}

func (r *PunchOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.UserEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_email",
			Message: "invalid email format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTimeStampRequest struct {
	PunchType     *int    `json:"punch_type,omitempty"`
	PunchIn       *string `json:"punch_in_timestamp,omitempty"`
	PunchOut      *string `json:"punch_out_timestamp,omitempty"`
	ReportingType *string `json:"reporting_type,omitempty"`
	Detail        *string `json:"detail,omitempty"`
}

func (r *UpdateTimeStampRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ReportingType != nil && !ValidReportingType(*r.ReportingType) {
		errs = append(errs, validator.ValidationError{
			Field:   "reporting_type",
			Message: "reporting_type must be work, paidoff or unpaidoff",
		})
	}
	if r.PunchIn != nil {
		if _, ok := validator.IsValidDateTime(*r.PunchIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "punch_in_timestamp",
				Message: "punch_in_timestamp must be an ISO8601 timestamp",
			})
		}
	}
	if r.PunchOut != nil {
		if _, ok := validator.IsValidDateTime(*r.PunchOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "punch_out_timestamp",
				Message: "punch_out_timestamp must be an ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RangeRequest struct {
	UserEmail string
	StartDate string
	EndDate   string
}

func (r *RangeRequest) Validate() (start, end time.Time, err error) {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.UserEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_email",
			Message: "invalid email format",
		})
	}
	start, okStart := validator.IsValidDateTime(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be an ISO8601 timestamp",
		})
	}
	end, okEnd := validator.IsValidDateTime(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be an ISO8601 timestamp",
		})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not precede start_date",
		})
	}

	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}
	return start.UTC(), end.UTC(), nil
}

// Record is the timestamp shape returned over HTTP.
type Record struct {
	UUID          string     `json:"uuid"`
	UserEmail     string     `json:"user_email"`
	EnteredBy     string     `json:"entered_by"`
	PunchType     int        `json:"punch_type"`
	PunchIn       time.Time  `json:"punch_in_timestamp"`
	PunchOut      *time.Time `json:"punch_out_timestamp"`
	ReportingType string     `json:"reporting_type"`
	Detail        string     `json:"detail"`
	WorkSeconds   int64      `json:"total_work_time"`
	LastUpdate    time.Time  `json:"last_update"`
}

func NewRecord(t TimeStamp) Record {
	return Record{
		UUID:          t.UUID,
		UserEmail:     t.UserEmail,
		EnteredBy:     t.EnteredBy,
		PunchType:     int(t.PunchType),
		PunchIn:       t.PunchIn,
		PunchOut:      t.PunchOut,
		ReportingType: string(t.ReportingType),
		Detail:        t.Detail,
		WorkSeconds:   t.WorkSeconds(),
		LastUpdate:    t.LastUpdate,
	}
}

func NewRecords(stamps []TimeStamp) []Record {
	records := make([]Record, 0, len(stamps))
	for _, t := range stamps {
		records = append(records, NewRecord(t))
	}
	return records
}

// StatusResponse reports whether the user has an open punch-in today.
type StatusResponse struct {
	PunchedIn bool       `json:"has_open_entry"`
	PunchIn   *time.Time `json:"punch_in_timestamp,omitempty"`
}
