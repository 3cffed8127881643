package state

import "github.com/sandeepkv93/focusflow/internal/model"

// DefaultPrimaryGoalID is the goal moved by task completion toggles.
const DefaultPrimaryGoalID = "g1"

func seedTasks(today string) []model.Task {
	return []model.Task{
		{
			ID:       "1",
			Title:    "Plan Q4 project",
			Category: model.CategoryWork,
			Priority: model.PriorityHigh,
			Date:     today,
			Subtasks: []model.Subtask{
				{ID: "s1", Title: "Review Q3 metrics", Completed: true},
				{ID: "s2", Title: "Define OKRs"},
			},
		},
		{
			ID:        "2",
			Title:     "Read for 30 minutes",
			Category:  model.CategoryStudy,
			Priority:  model.PriorityMedium,
			Completed: true,
			Date:      today,
			Subtasks:  []model.Subtask{},
		},
	}
}

func seedHabits() []model.Habit {
	return []model.Habit{
		{ID: "h1", Title: "Drink 2L of water", Streak: 5, CompletedDates: []string{}, Color: "blue"},
		{ID: "h2", Title: "Meditate", Streak: 12, CompletedDates: []string{}, Color: "purple"},
		{ID: "h3", Title: "Exercise", Streak: 3, CompletedDates: []string{}, Color: "orange"},
	}
}

func seedGoals() []model.Goal {
	return []model.Goal{
		{ID: "g1", Title: "Completed tasks", Target: 20, Current: 12, Unit: "tasks"},
		{ID: "g2", Title: "Study hours", Target: 10, Current: 4, Unit: "h"},
	}
}
