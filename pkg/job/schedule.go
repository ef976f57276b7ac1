package job

import (
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"github.com/robfig/cron/v3"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

type cronSchedule struct {
	schedule cron.Schedule
}

func (s *cronSchedule) Next(current time.Time) time.Time {
	return s.schedule.Next(current)
}

// ParseSchedule parses a five field cron expression into a River schedule.
func ParseSchedule(expr string) (river.PeriodicSchedule, error) {
	schedule, err := cronParser.Parse(expr)
	if err != nil {
		return nil, errors.Join(ErrInvalidSchedule, fmt.Errorf("%q: %w", expr, err))
	}
	return &cronSchedule{schedule: schedule}, nil
}

// ValidateSchedule reports whether expr is a valid five field cron expression.
func ValidateSchedule(expr string) error {
	_, err := ParseSchedule(expr)
	return err
}
