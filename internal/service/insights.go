package service

import (
	"context"
	"sort"

	"taskboard/internal/model"
)

// GetTaskStats aggregates every task in a single pass.
func (s *TaskService) GetTaskStats(ctx context.Context) (model.TaskStats, error) {
	stats := model.NewTaskStats()
	if s.store == nil {
		s.degraded("task stats")
		return stats, nil
	}
	tasks, err := s.store.Tasks.ListForStats(ctx)
	if err != nil {
		return model.TaskStats{}, s.fail("task stats", err)
	}

	now := s.now()
	weekAgo := now.Add(-7 * model.Day)
	for i := range tasks {
		t := &tasks[i]
		stats.Total++
		stats.ByStatus[t.Status]++
		stats.ByPriority[t.Priority]++
		if t.IsOverdue(now) {
			stats.Overdue++
		}
		if t.IsDueSoon(now) {
			stats.DueSoon++
		}
		if t.CompletedAt != nil && !t.CompletedAt.Before(weekAgo) {
			stats.CompletedThisWeek++
		}
	}
	return stats, nil
}

// GetDeadlineAlerts lists open tasks due within the alert window. Overdue
// tasks come first, then the rest by days remaining.
func (s *TaskService) GetDeadlineAlerts(ctx context.Context) ([]model.DeadlineAlert, error) {
	if s.store == nil {
		s.degraded("deadline alerts")
		return []model.DeadlineAlert{}, nil
	}
	tasks, err := s.store.Tasks.ListOpenWithDeadline(ctx)
	if err != nil {
		return nil, s.fail("deadline alerts", err)
	}

	now := s.now()
	horizon := now.Add(model.AlertWindow)
	alerts := make([]model.DeadlineAlert, 0, len(tasks))
	for i := range tasks {
		t := tasks[i]
		if t.Deadline == nil || t.Status == model.StatusDone || t.Deadline.After(horizon) {
			continue
		}
		urgency, days := model.ClassifyDeadline(*t.Deadline, now, t.Status)

		project := t.Project.Ref()
		t.Project = nil
		t.Normalize()
		alerts = append(alerts, model.DeadlineAlert{
			Task:          model.AlertTask{Task: t, Project: project},
			Urgency:       urgency,
			DaysRemaining: days,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		oi := alerts[i].Urgency == model.UrgencyOverdue
		oj := alerts[j].Urgency == model.UrgencyOverdue
		if oi != oj {
			return oi
		}
		return alerts[i].DaysRemaining < alerts[j].DaysRemaining
	})
	return alerts, nil
}
