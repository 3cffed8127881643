package views

import (
	"testing"
	"time"

	"github.com/sandeepkv93/focusflow/internal/model"
)

func TestGoalPercent(t *testing.T) {
	cases := []struct {
		goal model.Goal
		want int
	}{
		{goal: model.Goal{Target: 10, Current: 4}, want: 40},
		{goal: model.Goal{Target: 20, Current: 12}, want: 60},
		{goal: model.Goal{Target: 10, Current: 15}, want: 100},
		{goal: model.Goal{Target: 3, Current: 1}, want: 33},
		{goal: model.Goal{Target: 3, Current: 2}, want: 67},
		{goal: model.Goal{Target: 0, Current: 5}, want: 0},
		{goal: model.Goal{Target: -4, Current: 1}, want: 0},
	}
	for _, tc := range cases {
		if got := GoalPercent(tc.goal); got != tc.want {
			t.Fatalf("goal %v/%v: expected %d, got %d", tc.goal.Current, tc.goal.Target, tc.want, got)
		}
	}
}

func TestLastSevenDaysEndsToday(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 30, 0, 0, time.Local)
	days := LastSevenDays(now)
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[6].Date != "2026-03-02" || days[6].Label != "Mon" {
		t.Fatalf("expected last entry to be today, got %+v", days[6])
	}
	if days[0].Date != "2026-02-24" {
		t.Fatalf("expected window to cross the month boundary, got %s", days[0].Date)
	}
	for i := 1; i < len(days); i++ {
		if days[i-1].Date >= days[i].Date {
			t.Fatalf("expected oldest first: %s then %s", days[i-1].Date, days[i].Date)
		}
	}
}

func TestDashboardStats(t *testing.T) {
	today := "2026-02-09"
	tasks := []model.Task{
		{ID: "1", Completed: true, Date: today},
		{ID: "2", Completed: true, Date: "2026-02-08"},
		{ID: "3", Date: today},
		{ID: "4", Date: "2026-01-01"},
	}
	habits := []model.Habit{
		{ID: "h1", CompletedDates: []string{today}},
		{ID: "h2", CompletedDates: []string{"2026-02-08"}},
	}
	got := DashboardStats(tasks, habits, today)
	want := Stats{CompletedToday: 1, Pending: 2, HabitsDoneToday: 1, HabitsTotal: 2}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestNextPendingKeepsOrderAndLimit(t *testing.T) {
	tasks := []model.Task{{ID: "a"}, {ID: "b", Completed: true}, {ID: "c"}, {ID: "d"}, {ID: "e"}}
	got := NextPending(tasks, 3)
	if len(got) != 3 || got[0].ID != "a" || got[1].ID != "c" || got[2].ID != "d" {
		t.Fatalf("unexpected next tasks: %+v", got)
	}
}
