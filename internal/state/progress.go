package state

import "github.com/sandeepkv93/focusflow/internal/model"

// Counts feed the AI motivation and weekly summary prompts.
type Counts struct {
	Pending           int
	Completed         int
	CompletedThisWeek int
	HabitsThisWeek    int
}

// Counts tallies all tasks by completion plus activity over the last seven
// calendar days ending today.
func (c *Controller) Counts() Counts {
	week := make(map[string]bool, 7)
	now := c.now()
	for i := 0; i < 7; i++ {
		week[model.DateOf(now.AddDate(0, 0, -i))] = true
	}

	var out Counts
	for _, t := range c.tasks {
		if !t.Completed {
			out.Pending++
			continue
		}
		out.Completed++
		if week[t.Date] {
			out.CompletedThisWeek++
		}
	}
	for _, h := range c.habits {
		for _, d := range h.CompletedDates {
			if week[d] {
				out.HabitsThisWeek++
				break
			}
		}
	}
	return out
}
