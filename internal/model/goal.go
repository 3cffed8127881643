package model

import (
	"errors"
	"fmt"
	"strings"
)

type Goal struct {
	ID      string  `json:"id" validate:"required"`
	Title   string  `json:"title" validate:"required"`
	Target  float64 `json:"target"`
	Current float64 `json:"current" validate:"gte=0"`
	Unit    string  `json:"unit"`
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return errors.New("model: goal title is required")
	}
	if err := validate.Struct(g); err != nil {
		return fmt.Errorf("model: goal %q: %w", g.ID, err)
	}
	return nil
}

// Step moves Current by delta, clamped to [0, Target].
func (g Goal) Step(delta float64) Goal {
	next := g.Current + delta
	if next > g.Target {
		next = g.Target
	}
	if next < 0 {
		next = 0
	}
	g.Current = next
	return g
}
