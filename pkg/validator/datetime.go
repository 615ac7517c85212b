package validator

import (
	"context"
	"fmt"
	"time"
)

// ISO-8601 offset timestamp layouts accepted by DateTimeValidator.
// time.Parse accepts a fractional second after the seconds field even when
// the layout has none.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

// DateTimeValidator parses ISO-8601 timestamps with a UTC offset,
// e.g. 2007-12-03T10:15:30+01:00.
//
// Unlike the numeric validators, coercion is applied before the hard limits:
// a value pulled into range by CoerceMin/CoerceMax is then checked against
// Min/Max.
type DateTimeValidator struct {
	min       *time.Time
	max       *time.Time
	coerceMin *time.Time
	coerceMax *time.Time
}

// DateTime returns a timestamp validator.
func DateTime() *DateTimeValidator {
	return &DateTimeValidator{}
}

// Min rejects timestamps before t.
func (v *DateTimeValidator) Min(t time.Time) *DateTimeValidator {
	v.min = &t
	return v
}

// Max rejects timestamps after t.
func (v *DateTimeValidator) Max(t time.Time) *DateTimeValidator {
	v.max = &t
	return v
}

// CoerceMin replaces timestamps before t with t.
func (v *DateTimeValidator) CoerceMin(t time.Time) *DateTimeValidator {
	v.coerceMin = &t
	return v
}

// CoerceMax replaces timestamps after t with t.
func (v *DateTimeValidator) CoerceMax(t time.Time) *DateTimeValidator {
	v.coerceMax = &t
	return v
}

func (v *DateTimeValidator) Validate(_ context.Context, p Param) Result {
	t, ok := parseDateTime(p.Value)
	if !ok {
		return Invalid(KindInvalidDate, "The provided value does not represent an ISO date string")
	}

	if v.coerceMin != nil && t.Before(*v.coerceMin) {
		t = *v.coerceMin
	}
	if v.coerceMax != nil && t.After(*v.coerceMax) {
		t = *v.coerceMax
	}
	if v.min != nil && t.Before(*v.min) {
		return Invalid(KindInvalidTime, fmt.Sprintf("The provided time is before the minimum allowed time (%s)", v.min.Format(time.RFC3339Nano)))
	}
	if v.max != nil && t.After(*v.max) {
		return Invalid(KindInvalidTime, fmt.Sprintf("The provided time is after the maximum allowed time (%s)", v.max.Format(time.RFC3339Nano)))
	}

	return Valid(t)
}

func parseDateTime(s string) (time.Time, bool) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
