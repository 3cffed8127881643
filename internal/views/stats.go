package views

import (
	"math"
	"time"

	"github.com/sandeepkv93/focusflow/internal/model"
)

type Stats struct {
	CompletedToday  int
	Pending         int
	HabitsDoneToday int
	HabitsTotal     int
}

// DashboardStats counts tasks completed with today's date, all pending tasks,
// and habits marked for today.
func DashboardStats(tasks []model.Task, habits []model.Habit, today string) Stats {
	var s Stats
	for _, t := range tasks {
		switch {
		case !t.Completed:
			s.Pending++
		case t.Date == today:
			s.CompletedToday++
		}
	}
	s.HabitsTotal = len(habits)
	for _, h := range habits {
		if h.DoneOn(today) {
			s.HabitsDoneToday++
		}
	}
	return s
}

// NextPending returns up to n incomplete tasks in list order.
func NextPending(tasks []model.Task, n int) []model.Task {
	out := make([]model.Task, 0, n)
	for _, t := range tasks {
		if len(out) == n {
			break
		}
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// GoalPercent is round(min(1, current/target) * 100). Non-positive targets
// report 0.
func GoalPercent(g model.Goal) int {
	if g.Target <= 0 {
		return 0
	}
	ratio := math.Min(1, g.Current/g.Target)
	if ratio < 0 {
		ratio = 0
	}
	return int(math.Round(ratio * 100))
}

type Day struct {
	Date  string
	Label string
}

// LastSevenDays lists the seven calendar days ending on now's date, oldest
// first.
func LastSevenDays(now time.Time) []Day {
	days := make([]Day, 0, 7)
	for i := 6; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		days = append(days, Day{Date: model.DateOf(d), Label: d.Format("Mon")})
	}
	return days
}
