package ai

import "context"

const (
	MotivationNoKey  = "Stay focused and keep moving forward!"
	MotivationEmpty  = "Let's go, you can do it!"
	MotivationFailed = "Every step counts toward your success."

	SummaryNoKey  = "Good work this week!"
	SummaryEmpty  = "Great progress!"
	SummaryFailed = "Keep it up!"
)

// FallbackSubtasks is the generic checklist used when decomposition is
// unavailable.
func FallbackSubtasks() []string {
	return []string{"Review requirements", "Do the work", "Review the result"}
}

// Offline answers every call with the fallback values and never touches the
// network.
type Offline struct{}

var _ Assistant = Offline{}

func (Offline) DecomposeTitle(context.Context, string) []string { return FallbackSubtasks() }

func (Offline) Motivation(context.Context, int, int) string { return MotivationNoKey }

func (Offline) WeeklySummary(context.Context, int, int) string { return SummaryNoKey }
