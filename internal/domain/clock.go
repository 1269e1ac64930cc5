package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// Wall-clock time of day expressed as minutes since local midnight.
//
// Projected schedules may run past midnight, so values above 23:59 are legal;
// String wraps them for display while comparisons always use the raw value.
type ClockTime int

// ParseClock parses a strict "HH:MM" string (hours 00-23, minutes 00-59).
func ParseClock(s string) (ClockTime, error) {
	s = strings.TrimSpace(s)
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || !twoDigits(hh) || !twoDigits(mm) {
		return 0, fmt.Errorf("parse clock %q: want HH:MM: %w", s, ErrInvalidInput)
	}

	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("parse clock %q: hour out of range: %w", s, ErrInvalidInput)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("parse clock %q: minute out of range: %w", s, ErrInvalidInput)
	}

	return ClockTime(h*60 + m), nil
}

// twoDigits rejects signs and anything else strconv.Atoi would accept.
func twoDigits(s string) bool {
	return len(s) == 2 && s[0] >= '0' && s[0] <= '9' && s[1] >= '0' && s[1] <= '9'
}

// MustParseClock is ParseClock for compile-time constants; it panics on bad input.
func MustParseClock(s string) ClockTime {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Add returns the clock advanced by the given number of minutes.
func (c ClockTime) Add(minutes int) ClockTime { return c + ClockTime(minutes) }

// Minutes returns the raw minutes since midnight.
func (c ClockTime) Minutes() int { return int(c) }

func (c ClockTime) String() string {
	m := int(c) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func (c ClockTime) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ClockTime) UnmarshalText(b []byte) error {
	parsed, err := ParseClock(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Inclusive range of clock times.
type TimeWindow struct {
	Start ClockTime `json:"start" yaml:"start"`
	End   ClockTime `json:"end" yaml:"end"`
}

// Contains reports whether t lies in [Start, End].
func (w TimeWindow) Contains(t ClockTime) bool {
	return t >= w.Start && t <= w.End
}

func (w TimeWindow) Validate() error {
	if w.Start > w.End {
		return fmt.Errorf("window %s-%s starts after it ends: %w", w.Start, w.End, ErrInvalidInput)
	}
	return nil
}

func (w TimeWindow) String() string {
	return w.Start.String() + "-" + w.End.String()
}

// ParseTimeWindow parses "HH:MM-HH:MM".
func ParseTimeWindow(s string) (TimeWindow, error) {
	start, end, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return TimeWindow{}, fmt.Errorf("parse window %q: want HH:MM-HH:MM: %w", s, ErrInvalidInput)
	}

	var (
		w   TimeWindow
		err error
	)
	if w.Start, err = ParseClock(start); err != nil {
		return TimeWindow{}, fmt.Errorf("parse window %q: %w", s, err)
	}
	if w.End, err = ParseClock(end); err != nil {
		return TimeWindow{}, fmt.Errorf("parse window %q: %w", s, err)
	}
	return w, w.Validate()
}
