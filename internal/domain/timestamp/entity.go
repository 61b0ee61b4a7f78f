package timestamp

import "time"

// PunchType classifies how a record was produced.
type PunchType int

const (
	PunchTypeClock  PunchType = 0 // live punch in/out
	PunchTypeManual PunchType = 1 // entered after the fact
	PunchTypeSystem PunchType = 2 // created by a background job
)

// ReportingType tags what a day's record means for payroll.
type ReportingType string

const (
	ReportingWork      ReportingType = "work"
	ReportingPaidOff   ReportingType = "paidoff"
	ReportingUnpaidOff ReportingType = "unpaidoff"
)

func ValidReportingType(s string) bool {
	switch ReportingType(s) {
	case ReportingWork, ReportingPaidOff, ReportingUnpaidOff:
		return true
	}
	return false
}

type TimeStamp struct {
	UUID          string
	UserEmail     string
	EnteredBy     string
	PunchType     PunchType
	PunchIn       time.Time
	PunchOut      *time.Time
	ReportingType ReportingType
	Detail        string
	LastUpdate    time.Time
}

// IsOpen reports whether the record has no punch-out yet.
func (t *TimeStamp) IsOpen() bool {
	return t.PunchOut == nil
}

// WorkSeconds returns the recorded span in whole seconds, zero while
// the record is still open.
func (t *TimeStamp) WorkSeconds() int64 {
	if t.PunchOut == nil {
		return 0
	}
	return int64(t.PunchOut.Sub(t.PunchIn).Seconds())
}

// OnDate reports whether the punch-in falls on the given UTC calendar day.
func (t *TimeStamp) OnDate(day time.Time) bool {
	y1, m1, d1 := t.PunchIn.UTC().Date()
	y2, m2, d2 := day.UTC().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
