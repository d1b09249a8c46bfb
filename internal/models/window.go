package models

import (
	"fmt"
	"time"
)

// Window selects the time range bounding which articles are fetched.
type Window string

const (
	WindowToday Window = "today"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

// ParseWindow converts caller input into a Window.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case WindowToday, WindowWeek, WindowMonth:
		return Window(s), nil
	}
	return "", fmt.Errorf("%w: unknown window %q", ErrInvalidRequest, s)
}

// Boundary resolves the window to the start date articles are fetched from.
// The boundary is never after now: today maps to the start of the current
// calendar day, week to now minus 7 days, month to now minus 30 days.
func (w Window) Boundary(now time.Time) time.Time {
	switch w {
	case WindowWeek:
		return now.AddDate(0, 0, -7)
	case WindowMonth:
		return now.AddDate(0, 0, -30)
	default:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
}
