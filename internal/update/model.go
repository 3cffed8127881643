package update

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/huh"
	"go.uber.org/zap"

	"github.com/sandeepkv93/focusflow/internal/model"
	"github.com/sandeepkv93/focusflow/internal/state"
)

type View string

const (
	ViewDashboard View = "Dashboard"
	ViewTasks     View = "Tasks"
	ViewHabits    View = "Habits"
	ViewGoals     View = "Goals"
)

var allViews = []View{ViewDashboard, ViewTasks, ViewHabits, ViewGoals}

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Dashboard string
	Tasks     string
	Habits    string
	Goals     string
	NewTask   string
	Help      string
	Quit      string
}

type TaskViewState struct {
	Cursor        int
	SubtaskCursor int
	Expanded      map[string]bool
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type taskDraft struct {
	Title    string
	Category model.Category
	Priority model.Priority
}

type Model struct {
	CurrentView       View
	Status            StatusBar
	Keys              GlobalKeyMap
	HelpVisible       bool
	Palette           CommandPaletteState
	Tasks             TaskViewState
	HabitCursor       int
	Motivation        string
	MotivationLoading bool
	Summary           string
	SummaryLoading    bool
	summaryView       string
	Width             int
	Quitting          bool
	LastError         error

	ctrl   *state.Controller
	ctx    context.Context
	logger *zap.Logger

	form  *huh.Form
	draft *taskDraft

	spinner      spinner.Model
	commandInput textinput.Model
	helpModel    help.Model
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// SubmitTaskMsg starts the add-task flow.
type SubmitTaskMsg struct {
	Title    string
	Category model.Category
	Priority model.Priority
}

// SubtasksSuggestedMsg carries the decomposition back into the update loop.
type SubtasksSuggestedMsg struct {
	Title    string
	Category model.Category
	Priority model.Priority
	Subtasks []string
}

type MotivationMsg struct {
	Text string
}

type SummaryMsg struct {
	Text string
}

type Option func(*Model)

func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewModel wraps a loaded controller.
func NewModel(ctrl *state.Controller, opts ...Option) Model {
	m := Model{
		CurrentView:       ViewDashboard,
		MotivationLoading: true,
		Keys: GlobalKeyMap{
			Dashboard: "1",
			Tasks:     "2",
			Habits:    "3",
			Goals:     "4",
			NewTask:   "n",
			Help:      "?",
			Quit:      "q",
		},
		Tasks:  TaskViewState{Expanded: make(map[string]bool)},
		ctrl:   ctrl,
		ctx:    context.Background(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	m.spinner = spinner.New(spinner.WithSpinner(spinner.Dot))
	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.Placeholder = "add <title> cat:<category> prio:<priority>"
	m.commandInput.CharLimit = 200
	m.helpModel = help.New()
	m.helpModel.ShowAll = true
}

func isKnownView(v View) bool {
	for _, known := range allViews {
		if v == known {
			return true
		}
	}
	return false
}
