package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPriority = errors.New("model: invalid task priority")
	ErrInvalidCategory = errors.New("model: invalid task category")
)

type Priority uint8

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh

	NumPriorities = iota
)

var priorityLabels = [...]string{
	PriorityLow:    "Low",
	PriorityMedium: "Medium",
	PriorityHigh:   "High",
}

// Fails to compile when a priority is added without a label.
var _ [NumPriorities]string = priorityLabels

// Priorities lists every priority in ascending order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

func (p Priority) IsValid() bool {
	return int(p) < NumPriorities
}

func (p Priority) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("Priority(%d)", uint8(p))
	}
	return priorityLabels[p]
}

func ParsePriority(s string) (Priority, error) {
	for _, p := range Priorities() {
		if strings.EqualFold(strings.TrimSpace(s), priorityLabels[p]) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPriority, s)
}

func (p Priority) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPriority, uint8(p))
	}
	return []byte(priorityLabels[p]), nil
}

func (p *Priority) UnmarshalText(text []byte) error {
	parsed, err := ParsePriority(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

type Category uint8

const (
	CategoryWork Category = iota
	CategoryPersonal
	CategoryHealth
	CategoryStudy

	NumCategories = iota
)

var categoryLabels = [...]string{
	CategoryWork:     "Work",
	CategoryPersonal: "Personal",
	CategoryHealth:   "Health",
	CategoryStudy:    "Study",
}

var _ [NumCategories]string = categoryLabels

func Categories() []Category {
	return []Category{CategoryWork, CategoryPersonal, CategoryHealth, CategoryStudy}
}

func (c Category) IsValid() bool {
	return int(c) < NumCategories
}

func (c Category) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return categoryLabels[c]
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(strings.TrimSpace(s), categoryLabels[c]) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCategory, uint8(c))
	}
	return []byte(categoryLabels[c]), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
