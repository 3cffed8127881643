package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

type Habit struct {
	ID             string   `json:"id" validate:"required"`
	Title          string   `json:"title" validate:"required"`
	Streak         int      `json:"streak" validate:"gte=0"`
	CompletedDates []string `json:"completedDates" validate:"dive,datetime=2006-01-02"`
	Color          string   `json:"color"`
}

func (h Habit) Validate() error {
	if strings.TrimSpace(h.Title) == "" {
		return errors.New("model: habit title is required")
	}
	if err := validate.Struct(h); err != nil {
		return fmt.Errorf("model: habit %q: %w", h.ID, err)
	}
	return nil
}

// DoneOn reports whether the habit was completed on the given ISO date.
func (h Habit) DoneOn(date string) bool {
	return slices.Contains(h.CompletedDates, date)
}

func (h Habit) Clone() Habit {
	out := h
	out.CompletedDates = slices.Clone(h.CompletedDates)
	if out.CompletedDates == nil {
		out.CompletedDates = []string{}
	}
	return out
}
