package daterange

import (
	"fmt"
	"time"

	"lodge/shared/constant"
	"lodge/shared/failure"
)

// Range is a half-open stay interval [CheckIn, CheckOut): the check-out day is
// not occupied, so a new stay may check in on another stay's check-out date.
// Both endpoints are calendar dates; any time component is ignored.
type Range struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// OverlapCondition is the SQL form of Overlaps for named-parameter queries.
// Bind :check_in and :check_out to the candidate range.
const OverlapCondition = "check_in_date < :check_out AND check_out_date > :check_in"

// Parse builds a Range from two YYYY-MM-DD strings and validates ordering.
func Parse(checkIn, checkOut string) (Range, error) {
	in, err := time.Parse(constant.CalendarDateFormat, checkIn)
	if err != nil {
		return Range{}, failure.BadRequestFromString(fmt.Sprintf("invalid check-in date %q, expected YYYY-MM-DD", checkIn)) //nolint:wrapcheck
	}

	out, err := time.Parse(constant.CalendarDateFormat, checkOut)
	if err != nil {
		return Range{}, failure.BadRequestFromString(fmt.Sprintf("invalid check-out date %q, expected YYYY-MM-DD", checkOut)) //nolint:wrapcheck
	}

	r := Range{CheckIn: truncate(in), CheckOut: truncate(out)}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}

	return r, nil
}

// New builds a Range from two times, truncating to calendar dates.
func New(checkIn, checkOut time.Time) Range {
	return Range{CheckIn: truncate(checkIn), CheckOut: truncate(checkOut)}
}

// Validate requires at least one night: check-out strictly after check-in.
func (r Range) Validate() error {
	if !r.CheckOut.After(r.CheckIn) {
		return failure.BadRequestFromString("invalid date range: check-out must be after check-in") //nolint:wrapcheck
	}

	return nil
}

// Overlaps reports whether two half-open ranges intersect. Touching at a
// boundary (one range's check-out equals the other's check-in) is not overlap.
func (r Range) Overlaps(other Range) bool {
	return r.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(r.CheckOut)
}

// Nights returns the number of occupied nights in the range.
func (r Range) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
