package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sandeepkv93/focusflow/internal/model"
)

// Store encodes the three collections as JSON over a Backend.
type Store struct {
	backend Backend
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) LoadTasks(ctx context.Context) ([]model.Task, error) {
	return load(ctx, s.backend, CollectionTasks, func(tasks []model.Task) error {
		for _, t := range tasks {
			if err := t.Validate(); err != nil {
				return err
			}
		}
		return model.ValidateUniqueIDs(tasks, func(t model.Task) string { return t.ID })
	})
}

func (s *Store) SaveTasks(ctx context.Context, tasks []model.Task) error {
	return save(ctx, s.backend, CollectionTasks, tasks)
}

func (s *Store) LoadHabits(ctx context.Context) ([]model.Habit, error) {
	return load(ctx, s.backend, CollectionHabits, func(habits []model.Habit) error {
		for _, h := range habits {
			if err := h.Validate(); err != nil {
				return err
			}
		}
		return model.ValidateUniqueIDs(habits, func(h model.Habit) string { return h.ID })
	})
}

func (s *Store) SaveHabits(ctx context.Context, habits []model.Habit) error {
	return save(ctx, s.backend, CollectionHabits, habits)
}

func (s *Store) LoadGoals(ctx context.Context) ([]model.Goal, error) {
	return load(ctx, s.backend, CollectionGoals, func(goals []model.Goal) error {
		for _, g := range goals {
			if err := g.Validate(); err != nil {
				return err
			}
		}
		return model.ValidateUniqueIDs(goals, func(g model.Goal) string { return g.ID })
	})
}

func (s *Store) SaveGoals(ctx context.Context, goals []model.Goal) error {
	return save(ctx, s.backend, CollectionGoals, goals)
}

func load[T any](ctx context.Context, b Backend, c Collection, check func([]T) error) ([]T, error) {
	payload, err := b.Get(ctx, c)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c, err)
	}
	if out == nil {
		return nil, fmt.Errorf("decode %s: payload is not an array", c)
	}
	if err := check(out); err != nil {
		return nil, fmt.Errorf("validate %s: %w", c, err)
	}
	return out, nil
}

func save[T any](ctx context.Context, b Backend, c Collection, records []T) error {
	if records == nil {
		records = []T{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c, err)
	}
	return b.Put(ctx, c, string(payload))
}
