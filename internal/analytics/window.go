package analytics

import (
	"fmt"
	"strings"
	"time"

	"teamboard/internal/entities"
)

var windows = map[string]time.Duration{
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
	"90d": 90 * 24 * time.Hour,
	"1y":  365 * 24 * time.Hour,
}

// ParseWindow parses a look-back window such as "30d". Blank means no window.
func ParseWindow(s string) (time.Duration, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "all" {
		return 0, nil
	}
	d, ok := windows[s]
	if !ok {
		return 0, fmt.Errorf("%w: unknown range %q", entities.ErrInvalidArgument, s)
	}
	return d, nil
}

// CreatedWithin keeps tasks created during the window ending at now.
// A zero window keeps everything.
func CreatedWithin(tasks []entities.Task, window time.Duration, now time.Time) []entities.Task {
	if window <= 0 {
		return tasks
	}
	since := now.Add(-window)
	res := make([]entities.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.CreatedAt.Before(since) {
			res = append(res, t)
		}
	}
	return res
}
