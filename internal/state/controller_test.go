package state

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/sandeepkv93/focusflow/internal/ai"
	"github.com/sandeepkv93/focusflow/internal/model"
	"github.com/sandeepkv93/focusflow/internal/storage"
)

type fakeAssistant struct {
	subtasks []string
	calls    int
}

func (f *fakeAssistant) DecomposeTitle(context.Context, string) []string {
	f.calls++
	return f.subtasks
}

func (f *fakeAssistant) Motivation(context.Context, int, int) string { return "go" }

func (f *fakeAssistant) WeeklySummary(context.Context, int, int) string { return "fine" }

type failingStore struct {
	*storage.Store
	saves int
}

func (f *failingStore) SaveTasks(context.Context, []model.Task) error {
	f.saves++
	return errors.New("disk full")
}

var fixedNow = time.Date(2026, 2, 9, 10, 0, 0, 0, time.Local)

func newController(t *testing.T, assistant ai.Assistant) (*Controller, *storage.Store) {
	t.Helper()
	store := storage.NewStore(storage.NewMemoryBackend())
	seq := 0
	c := New(store, assistant,
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	)
	c.Load(context.Background())
	return c, store
}

func goalCurrent(t *testing.T, c *Controller, id string) float64 {
	t.Helper()
	for _, g := range c.Goals() {
		if g.ID == id {
			return g.Current
		}
	}
	t.Fatalf("goal %s not found", id)
	return 0
}

func TestLoadSeedsMissingCollections(t *testing.T) {
	c, _ := newController(t, &fakeAssistant{})

	tasks := c.Tasks()
	if len(tasks) != 2 || tasks[0].ID != "1" || tasks[1].ID != "2" {
		t.Fatalf("unexpected seed tasks: %+v", tasks)
	}
	if tasks[0].Date != "2026-02-09" {
		t.Fatalf("expected seed tasks dated today, got %s", tasks[0].Date)
	}
	if len(c.Habits()) != 3 || len(c.Goals()) != 2 {
		t.Fatalf("unexpected seed sizes: %d habits %d goals", len(c.Habits()), len(c.Goals()))
	}
	if goalCurrent(t, c, "g1") != 12 {
		t.Fatalf("unexpected seed goal progress")
	}
}

func TestLoadUsesStoredAndFallsBackPerCollection(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	store := storage.NewStore(backend)
	if err := store.SaveGoals(ctx, []model.Goal{{ID: "g9", Title: "Custom", Target: 5, Current: 1, Unit: "x"}}); err != nil {
		t.Fatalf("save goals: %v", err)
	}
	_ = backend.Put(ctx, storage.CollectionHabits, "{broken")

	c := New(store, nil)
	c.Load(ctx)

	if goals := c.Goals(); len(goals) != 1 || goals[0].ID != "g9" {
		t.Fatalf("expected stored goals, got %+v", goals)
	}
	if habits := c.Habits(); len(habits) != 3 || habits[0].ID != "h1" {
		t.Fatalf("expected seed habits for unreadable payload, got %+v", habits)
	}
}

func TestToggleTaskTwiceRestoresStateWithinBounds(t *testing.T) {
	c, store := newController(t, &fakeAssistant{})
	ctx := context.Background()

	if !c.ToggleTask(ctx, "1") {
		t.Fatal("expected toggle to find task")
	}
	if !c.Tasks()[0].Completed || goalCurrent(t, c, "g1") != 13 {
		t.Fatalf("expected completion and goal increment")
	}
	c.ToggleTask(ctx, "1")
	if c.Tasks()[0].Completed || goalCurrent(t, c, "g1") != 12 {
		t.Fatalf("expected double toggle to restore state")
	}

	stored, err := store.LoadGoals(ctx)
	if err != nil || stored[0].Current != 12 {
		t.Fatalf("expected goal write-through, got %+v err %v", stored, err)
	}
}

func TestToggleTaskClampsGoal(t *testing.T) {
	ctx := context.Background()
	store := storage.NewStore(storage.NewMemoryBackend())
	_ = store.SaveTasks(ctx, []model.Task{
		{ID: "a", Title: "A", Date: "2026-02-09", Subtasks: []model.Subtask{}},
		{ID: "b", Title: "B", Date: "2026-02-09", Completed: true, Subtasks: []model.Subtask{}},
	})
	_ = store.SaveGoals(ctx, []model.Goal{{ID: "g1", Title: "Done", Target: 1, Current: 1, Unit: "tasks"}, {ID: "g2", Title: "Other", Target: 3}})
	c := New(store, nil)
	c.Load(ctx)

	c.ToggleTask(ctx, "a")
	if goalCurrent(t, c, "g1") != 1 {
		t.Fatalf("expected goal capped at target, got %v", goalCurrent(t, c, "g1"))
	}
	c.ToggleTask(ctx, "a")
	c.ToggleTask(ctx, "b")
	c.ToggleTask(ctx, "b")
	c.ToggleTask(ctx, "b")
	if goalCurrent(t, c, "g1") != 0 {
		t.Fatalf("expected goal floored at 0, got %v", goalCurrent(t, c, "g1"))
	}
	if goalCurrent(t, c, "g2") != 0 {
		t.Fatal("expected other goals untouched")
	}
}

func TestToggleTaskUnknownIsNoop(t *testing.T) {
	c, _ := newController(t, &fakeAssistant{})
	before := c.Tasks()
	if c.ToggleTask(context.Background(), "missing") {
		t.Fatal("expected unknown id to report false")
	}
	if !reflect.DeepEqual(before, c.Tasks()) || goalCurrent(t, c, "g1") != 12 {
		t.Fatal("expected no change for unknown id")
	}
}

func TestToggleSubtaskOnlyTouchesThatSubtask(t *testing.T) {
	c, _ := newController(t, &fakeAssistant{})
	ctx := context.Background()

	if !c.ToggleSubtask(ctx, "1", "s2") {
		t.Fatal("expected subtask toggle")
	}
	task := c.Tasks()[0]
	if !task.Subtasks[1].Completed || !task.Subtasks[0].Completed || task.Completed {
		t.Fatalf("unexpected task after subtask toggle: %+v", task)
	}
	if goalCurrent(t, c, "g1") != 12 {
		t.Fatal("subtask toggles must not move the goal")
	}
	if c.ToggleSubtask(ctx, "1", "nope") || c.ToggleSubtask(ctx, "nope", "s1") {
		t.Fatal("expected unknown ids to report false")
	}
}

func TestDeleteTaskRemovesExactlyOne(t *testing.T) {
	c, _ := newController(t, &fakeAssistant{})
	ctx := context.Background()
	c.ToggleTask(ctx, "1")
	survivor := c.Tasks()[1]

	if !c.DeleteTask(ctx, "1") {
		t.Fatal("expected delete to find task")
	}
	tasks := c.Tasks()
	if len(tasks) != 1 || !reflect.DeepEqual(tasks[0], survivor) {
		t.Fatalf("expected only %+v to remain unchanged, got %+v", survivor, tasks)
	}
	if goalCurrent(t, c, "g1") != 13 {
		t.Fatal("expected goal progress to survive deletion")
	}
	if c.DeleteTask(ctx, "1") {
		t.Fatal("expected second delete to be a no-op")
	}
}

func TestAddTaskBlankTitleSkipsAssistant(t *testing.T) {
	cases := []string{"", "   ", "\t\n"}
	for _, title := range cases {
		fake := &fakeAssistant{subtasks: []string{"x"}}
		c, _ := newController(t, fake)

		if _, ok := c.AddTask(context.Background(), title, model.CategoryWork, model.PriorityLow); ok {
			t.Fatalf("expected blank add %q to be rejected", title)
		}
		if fake.calls != 0 || len(c.Tasks()) != 2 || c.InFlight() {
			t.Fatalf("expected no side effects for %q, calls=%d tasks=%d", title, fake.calls, len(c.Tasks()))
		}
	}
}

func TestAddTaskPrependsWithSubtasks(t *testing.T) {
	fake := &fakeAssistant{subtasks: []string{"Outline", "Draft"}}
	c, store := newController(t, fake)
	ctx := context.Background()

	task, ok := c.AddTask(ctx, "  Write report ", model.CategoryStudy, model.PriorityHigh)
	if !ok {
		t.Fatal("expected add to succeed")
	}
	if task.Title != "Write report" || task.Completed || task.Date != "2026-02-09" {
		t.Fatalf("unexpected task: %+v", task)
	}
	if len(task.Subtasks) != 2 || task.Subtasks[0].Title != "Outline" || task.Subtasks[0].Completed {
		t.Fatalf("unexpected subtasks: %+v", task.Subtasks)
	}
	if task.Subtasks[0].ID == task.Subtasks[1].ID {
		t.Fatal("expected unique subtask ids")
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task: %v", err)
	}
	if c.Tasks()[0].ID != task.ID || c.InFlight() {
		t.Fatalf("expected task prepended and flag cleared")
	}
	stored, _ := store.LoadTasks(ctx)
	if len(stored) != 3 || stored[0].ID != task.ID {
		t.Fatalf("expected write-through, got %d tasks", len(stored))
	}
}

func TestAddTaskWithFallbackSubtasks(t *testing.T) {
	c, _ := newController(t, ai.Offline{})
	task, ok := c.AddTask(context.Background(), "Plan trip", model.CategoryPersonal, model.PriorityMedium)
	if !ok {
		t.Fatal("expected add to succeed")
	}
	got := make([]string, 0, len(task.Subtasks))
	for _, s := range task.Subtasks {
		got = append(got, s.Title)
	}
	if !reflect.DeepEqual(got, ai.FallbackSubtasks()) {
		t.Fatalf("expected fallback subtasks, got %v", got)
	}
}

func TestAddTaskEmptySuggestionsStillAdds(t *testing.T) {
	c, _ := newController(t, &fakeAssistant{subtasks: []string{}})
	task, ok := c.AddTask(context.Background(), "Solo", model.CategoryHealth, model.PriorityLow)
	if !ok || len(task.Subtasks) != 0 {
		t.Fatalf("expected task without subtasks, got %+v ok=%v", task, ok)
	}
}

func TestBeginAddTaskIsSingleFlight(t *testing.T) {
	c, _ := newController(t, &fakeAssistant{})
	if _, ok := c.BeginAddTask("first"); !ok {
		t.Fatal("expected first add to start")
	}
	if _, ok := c.BeginAddTask("second"); ok {
		t.Fatal("expected second add to be rejected while in flight")
	}
	c.FinishAddTask(context.Background(), "first", model.CategoryWork, model.PriorityLow, nil)
	if c.InFlight() {
		t.Fatal("expected flag cleared")
	}
	if _, ok := c.BeginAddTask("third"); !ok {
		t.Fatal("expected add to start again")
	}
}

func TestToggleHabitTodayTwice(t *testing.T) {
	c, _ := newController(t, &fakeAssistant{})
	ctx := context.Background()
	before := c.Habits()[0]

	c.ToggleHabitToday(ctx, "h1")
	h := c.Habits()[0]
	if !h.DoneOn("2026-02-09") || h.Streak != before.Streak+1 {
		t.Fatalf("unexpected habit after first toggle: %+v", h)
	}
	c.ToggleHabitToday(ctx, "h1")
	if !reflect.DeepEqual(c.Habits()[0], before) {
		t.Fatalf("expected double toggle to restore habit, got %+v want %+v", c.Habits()[0], before)
	}
}

func TestToggleHabitStreakFloorsAtZero(t *testing.T) {
	ctx := context.Background()
	store := storage.NewStore(storage.NewMemoryBackend())
	_ = store.SaveHabits(ctx, []model.Habit{{ID: "h", Title: "Walk", Streak: 0, CompletedDates: []string{"2026-02-09"}}})
	c := New(store, nil, WithClock(func() time.Time { return fixedNow }))
	c.Load(ctx)

	c.ToggleHabitToday(ctx, "h")
	h := c.Habits()[0]
	if h.Streak != 0 || h.DoneOn("2026-02-09") {
		t.Fatalf("unexpected habit: %+v", h)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c, _ := newController(t, &fakeAssistant{})
	tasks := c.Tasks()
	tasks[0].Subtasks[0].Title = "mutated"
	habits := c.Habits()
	habits[0].Streak = 99
	if c.Tasks()[0].Subtasks[0].Title == "mutated" || c.Habits()[0].Streak == 99 {
		t.Fatal("expected accessors to return independent copies")
	}
}

func TestPersistFailureIsSwallowed(t *testing.T) {
	store := &failingStore{Store: storage.NewStore(storage.NewMemoryBackend())}
	c := New(store, nil)
	c.Load(context.Background())

	if !c.DeleteTask(context.Background(), "2") {
		t.Fatal("expected delete to succeed in memory")
	}
	if store.saves != 1 || len(c.Tasks()) != 1 {
		t.Fatalf("expected one failed save and in-memory change, saves=%d", store.saves)
	}
}

func TestCounts(t *testing.T) {
	c, _ := newController(t, &fakeAssistant{})
	ctx := context.Background()
	c.ToggleHabitToday(ctx, "h2")

	got := c.Counts()
	want := Counts{Pending: 1, Completed: 1, CompletedThisWeek: 1, HabitsThisWeek: 1}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
