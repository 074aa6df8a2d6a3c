package model

import (
	"math"
	"time"
)

type Urgency string

const (
	UrgencyNone     Urgency = "none"
	UrgencyOverdue  Urgency = "overdue"
	UrgencyDueToday Urgency = "due_today"
	UrgencyDueSoon  Urgency = "due_soon"
	UrgencyUpcoming Urgency = "upcoming"
	UrgencyLater    Urgency = "later"
)

const (
	Day = 24 * time.Hour

	// AlertWindow bounds how far ahead a deadline is still worth alerting on.
	AlertWindow = 7 * Day
)

type DeadlineAlert struct {
	Task          AlertTask `json:"task"`
	Urgency       Urgency   `json:"urgency"`
	DaysRemaining int       `json:"days_remaining"`
}

// AlertTask is the slice of a task shown next to an alert.
type AlertTask struct {
	Task
	Project *ProjectRef `json:"project,omitempty"`
}

// DaysRemaining rounds the time left until deadline up to whole days.
// Past deadlines give zero or negative values.
func DaysRemaining(deadline, now time.Time) int {
	return int(math.Ceil(float64(deadline.Sub(now)) / float64(Day)))
}

// ClassifyDeadline derives the urgency of a deadline at now. Done tasks are
// never urgent.
func ClassifyDeadline(deadline, now time.Time, status TaskStatus) (Urgency, int) {
	days := DaysRemaining(deadline, now)
	if status == StatusDone {
		return UrgencyNone, days
	}
	switch {
	case deadline.Before(now):
		return UrgencyOverdue, days
	case days <= 1:
		return UrgencyDueToday, days
	case days <= 3:
		return UrgencyDueSoon, days
	case days <= 7:
		return UrgencyUpcoming, days
	}
	return UrgencyLater, days
}

// IsOverdue reports whether an open task missed its deadline.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.Deadline != nil && t.Status != StatusDone && t.Deadline.Before(now)
}

// IsDueSoon reports whether an open task is due within the alert window.
func (t *Task) IsDueSoon(now time.Time) bool {
	if t.Deadline == nil || t.Status == StatusDone {
		return false
	}
	return !t.Deadline.Before(now) && !t.Deadline.After(now.Add(AlertWindow))
}
