package domain

// StepStatus is the status of a single loading step.
type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepLoading   StepStatus = "loading"
	StepCompleted StepStatus = "completed"
)

// Step identifiers, in pipeline order.
const (
	StepStrategy   = "strategy"
	StepTagline    = "tagline"
	StepColors     = "colors"
	StepTypography = "typography"
	StepLogo       = "logo"
	StepSocial     = "social"
)

// LoadingStep is one UI-facing progress entry.
type LoadingStep struct {
	ID     string     `json:"id"`
	Label  string     `json:"label"`
	Status StepStatus `json:"status"`
}

// NewLoadingSteps returns the fixed step sequence for a generation run,
// with the strategy step already loading.
func NewLoadingSteps() []LoadingStep {
	return []LoadingStep{
		{ID: StepStrategy, Label: "Developing brand strategy...", Status: StepLoading},
		{ID: StepTagline, Label: "Crafting tagline...", Status: StepPending},
		{ID: StepColors, Label: "Selecting color palette...", Status: StepPending},
		{ID: StepTypography, Label: "Choosing typography...", Status: StepPending},
		{ID: StepLogo, Label: "Designing logo...", Status: StepPending},
		{ID: StepSocial, Label: "Creating social media assets...", Status: StepPending},
	}
}

// StepTracker tracks the fixed step sequence of one run. It is not
// safe for concurrent use; callers serialize access.
type StepTracker struct {
	steps []LoadingStep
}

// NewStepTracker creates a tracker with the standard step sequence.
func NewStepTracker() *StepTracker {
	return &StepTracker{steps: NewLoadingSteps()}
}

// Set transitions the named step to the given status. Unknown step IDs
// are ignored.
func (t *StepTracker) Set(stepID string, status StepStatus) {
	for i := range t.steps {
		if t.steps[i].ID == stepID {
			t.steps[i].Status = status
			return
		}
	}
}

// Snapshot returns a copy of the current step states.
func (t *StepTracker) Snapshot() []LoadingStep {
	return append([]LoadingStep(nil), t.steps...)
}
