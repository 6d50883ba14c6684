package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Date marshals as a plain calendar day. The service has no notion of time
// of day or timezone beyond whole days.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("date must be a %q string", time.DateOnly)
	}
	t, err := time.Parse(time.DateOnly, s[1:len(s)-1])
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusRejected  Status = "REJECTED"
)

// Terminal reports whether no further transition is allowed from s.
func (s Status) Terminal() bool {
	return s == StatusConfirmed || s == StatusRejected
}

// Window is an operator-declared open date range of a unit. Windows are
// never edited in place; changes are delete-and-recreate.
type Window struct {
	ID        int64  `json:"id" db:"id"`
	UnitUid   string `json:"unitUid" db:"unit_uid"`
	StartDate Date   `json:"startDate" db:"start_date"`
	EndDate   Date   `json:"endDate" db:"end_date"`
}

// Booking is a requester's reservation attempt against a unit.
type Booking struct {
	ID         int64  `json:"-" db:"id"`
	BookingUid string `json:"bookingUid" db:"booking_uid"`
	UnitUid    string `json:"unitUid" db:"unit_uid"`
	Requester  string `json:"requester" db:"requester"`
	StartDate  Date   `json:"startDate" db:"start_date"`
	EndDate    Date   `json:"endDate" db:"end_date"`
	Status     Status `json:"status" db:"status"`
}

type CreateWindowRequest struct {
	StartDate Date `json:"startDate" validate:"required"`
	EndDate   Date `json:"endDate" validate:"required"`
}

type CreateBookingRequest struct {
	UnitUid   string `json:"unitUid" validate:"required,uuid"`
	StartDate Date   `json:"startDate" validate:"required"`
	EndDate   Date   `json:"endDate" validate:"required"`
	Requester string `json:"-"`
}

type SetBookingStatusRequest struct {
	Status Status `json:"status" validate:"required,oneof=CONFIRMED REJECTED"`
}

// BookingEvent is published on admission and on every status change.
type BookingEvent struct {
	BookingUid string `json:"bookingUid"`
	UnitUid    string `json:"unitUid"`
	Requester  string `json:"requester"`
	Status     Status `json:"status"`
	StartDate  Date   `json:"startDate"`
	EndDate    Date   `json:"endDate"`
}
