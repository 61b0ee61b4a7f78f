package timestamp

import "errors"

var (
	ErrTimeStampNotFound     = errors.New("time stamp not found")
	ErrNoOpenPunchIn         = errors.New("no punch-in found")
	ErrAlreadyPunchedIn      = errors.New("an open punch-in already exists for today")
	ErrPunchOutBeforePunchIn = errors.New("punch-out must not precede punch-in")
	ErrUnauthorizedAccess    = errors.New("unauthorized access")
)
