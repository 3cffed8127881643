package state

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sandeepkv93/focusflow/internal/ai"
	"github.com/sandeepkv93/focusflow/internal/model"
	"github.com/sandeepkv93/focusflow/internal/storage"
)

// Store persists whole collections. storage.Store satisfies it.
type Store interface {
	LoadTasks(ctx context.Context) ([]model.Task, error)
	SaveTasks(ctx context.Context, tasks []model.Task) error
	LoadHabits(ctx context.Context) ([]model.Habit, error)
	SaveHabits(ctx context.Context, habits []model.Habit) error
	LoadGoals(ctx context.Context) ([]model.Goal, error)
	SaveGoals(ctx context.Context, goals []model.Goal) error
}

var _ Store = (*storage.Store)(nil)

// Controller owns the task, habit and goal collections. It is not safe for
// concurrent use; the TUI update loop is its only caller.
type Controller struct {
	store     Store
	assistant ai.Assistant
	logger    *zap.Logger
	now       func() time.Time
	newID     func() string

	primaryGoalID string

	tasks    []model.Task
	habits   []model.Habit
	goals    []model.Goal
	inFlight bool
}

type Option func(*Controller)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(c *Controller) { c.newID = newID }
}

func WithPrimaryGoal(id string) Option {
	return func(c *Controller) {
		if strings.TrimSpace(id) != "" {
			c.primaryGoalID = strings.TrimSpace(id)
		}
	}
}

func New(store Store, assistant ai.Assistant, opts ...Option) *Controller {
	if assistant == nil {
		assistant = ai.Offline{}
	}
	c := &Controller{
		store:         store,
		assistant:     assistant,
		logger:        zap.NewNop(),
		now:           time.Now,
		newID:         uuid.NewString,
		primaryGoalID: DefaultPrimaryGoalID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load reads every collection, falling back to seed data for any collection
// that is missing or cannot be decoded.
func (c *Controller) Load(ctx context.Context) {
	today := c.Today()

	tasks, err := c.store.LoadTasks(ctx)
	if err != nil {
		c.logLoadFallback(storage.CollectionTasks, err)
		tasks = seedTasks(today)
	}
	habits, err := c.store.LoadHabits(ctx)
	if err != nil {
		c.logLoadFallback(storage.CollectionHabits, err)
		habits = seedHabits()
	}
	goals, err := c.store.LoadGoals(ctx)
	if err != nil {
		c.logLoadFallback(storage.CollectionGoals, err)
		goals = seedGoals()
	}
	c.tasks, c.habits, c.goals = tasks, habits, goals
}

func (c *Controller) logLoadFallback(collection storage.Collection, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		c.logger.Info("seeding collection", zap.String("collection", string(collection)))
		return
	}
	c.logger.Warn("stored collection unreadable, using seed data",
		zap.String("collection", string(collection)), zap.Error(err))
}

// Today is the local calendar date in ISO form.
func (c *Controller) Today() string {
	return model.DateOf(c.now())
}

func (c *Controller) Now() time.Time { return c.now() }

func (c *Controller) Tasks() []model.Task {
	out := make([]model.Task, len(c.tasks))
	for i, t := range c.tasks {
		out[i] = t.Clone()
	}
	return out
}

func (c *Controller) Habits() []model.Habit {
	out := make([]model.Habit, len(c.habits))
	for i, h := range c.habits {
		out[i] = h.Clone()
	}
	return out
}

func (c *Controller) Goals() []model.Goal {
	return slices.Clone(c.goals)
}

func (c *Controller) InFlight() bool { return c.inFlight }

func (c *Controller) Assistant() ai.Assistant { return c.assistant }

func (c *Controller) taskIndex(id string) int {
	return slices.IndexFunc(c.tasks, func(t model.Task) bool { return t.ID == id })
}

// ToggleTask flips a task's completion and moves the primary goal by one in
// the same direction. Unknown ids are ignored.
func (c *Controller) ToggleTask(ctx context.Context, taskID string) bool {
	i := c.taskIndex(taskID)
	if i < 0 {
		return false
	}
	tasks := c.Tasks()
	tasks[i].Completed = !tasks[i].Completed
	delta := -1.0
	if tasks[i].Completed {
		delta = 1
	}
	c.tasks = tasks
	c.persistTasks(ctx)

	if g := slices.IndexFunc(c.goals, func(g model.Goal) bool { return g.ID == c.primaryGoalID }); g >= 0 {
		goals := slices.Clone(c.goals)
		goals[g] = goals[g].Step(delta)
		c.goals = goals
		c.persistGoals(ctx)
	}
	return true
}

func (c *Controller) ToggleSubtask(ctx context.Context, taskID, subtaskID string) bool {
	i := c.taskIndex(taskID)
	if i < 0 {
		return false
	}
	j := slices.IndexFunc(c.tasks[i].Subtasks, func(s model.Subtask) bool { return s.ID == subtaskID })
	if j < 0 {
		return false
	}
	tasks := c.Tasks()
	tasks[i].Subtasks[j].Completed = !tasks[i].Subtasks[j].Completed
	c.tasks = tasks
	c.persistTasks(ctx)
	return true
}

// DeleteTask removes the task. Goal progress it contributed is kept.
func (c *Controller) DeleteTask(ctx context.Context, taskID string) bool {
	i := c.taskIndex(taskID)
	if i < 0 {
		return false
	}
	c.tasks = slices.Delete(c.Tasks(), i, i+1)
	c.persistTasks(ctx)
	return true
}

// BeginAddTask marks an add as in flight. It refuses blank titles and a
// second add while one is pending.
func (c *Controller) BeginAddTask(title string) (string, bool) {
	title = strings.TrimSpace(title)
	if title == "" || c.inFlight {
		return "", false
	}
	c.inFlight = true
	return title, true
}

// FinishAddTask prepends the new task built from the suggested subtask titles
// and clears the in-flight flag.
func (c *Controller) FinishAddTask(ctx context.Context, title string, category model.Category, priority model.Priority, subtaskTitles []string) model.Task {
	defer func() { c.inFlight = false }()

	subtasks := make([]model.Subtask, 0, len(subtaskTitles))
	for _, st := range subtaskTitles {
		subtasks = append(subtasks, model.Subtask{ID: c.newID(), Title: st})
	}
	task := model.Task{
		ID:       c.newID(),
		Title:    strings.TrimSpace(title),
		Category: category,
		Priority: priority,
		Date:     c.Today(),
		Subtasks: subtasks,
	}
	c.tasks = append([]model.Task{task}, c.Tasks()...)
	c.persistTasks(ctx)
	return task.Clone()
}

// AddTask runs the whole add flow synchronously, including the AI call.
func (c *Controller) AddTask(ctx context.Context, title string, category model.Category, priority model.Priority) (model.Task, bool) {
	title, ok := c.BeginAddTask(title)
	if !ok {
		return model.Task{}, false
	}
	suggestions := c.assistant.DecomposeTitle(ctx, title)
	return c.FinishAddTask(ctx, title, category, priority, suggestions), true
}

// ToggleHabitToday marks or unmarks the habit for today, moving its streak
// with it.
func (c *Controller) ToggleHabitToday(ctx context.Context, habitID string) bool {
	i := slices.IndexFunc(c.habits, func(h model.Habit) bool { return h.ID == habitID })
	if i < 0 {
		return false
	}
	today := c.Today()
	habits := c.Habits()
	h := &habits[i]
	if h.DoneOn(today) {
		h.CompletedDates = slices.DeleteFunc(h.CompletedDates, func(d string) bool { return d == today })
		h.Streak = max(0, h.Streak-1)
	} else {
		h.CompletedDates = append(h.CompletedDates, today)
		h.Streak++
	}
	c.habits = habits
	c.persistHabits(ctx)
	return true
}

func (c *Controller) persistTasks(ctx context.Context) {
	if err := c.store.SaveTasks(ctx, c.tasks); err != nil {
		c.logger.Warn("persist failed", zap.String("collection", string(storage.CollectionTasks)), zap.Error(err))
	}
}

func (c *Controller) persistHabits(ctx context.Context) {
	if err := c.store.SaveHabits(ctx, c.habits); err != nil {
		c.logger.Warn("persist failed", zap.String("collection", string(storage.CollectionHabits)), zap.Error(err))
	}
}

func (c *Controller) persistGoals(ctx context.Context) {
	if err := c.store.SaveGoals(ctx, c.goals); err != nil {
		c.logger.Warn("persist failed", zap.String("collection", string(storage.CollectionGoals)), zap.Error(err))
	}
}
