package present

import "time"

// StaggerStep is the reveal delay added per animatable element.
const StaggerStep = 100 * time.Millisecond

// Delays of the post-transition callbacks.
const (
	// ScrollEnterDelay lets a smooth scroll settle before the slide animates.
	ScrollEnterDelay = 300 * time.Millisecond
	// ActiveEnterDelay separates deactivating all slides from activating the target.
	ActiveEnterDelay = 50 * time.Millisecond
	// PresentEnterDelay runs after entering presentation mode, before the
	// current slide is shown in the single-slide layout.
	PresentEnterDelay = 100 * time.Millisecond
	// FirstSlideDelay plays the first slide's animation after startup.
	FirstSlideDelay = 500 * time.Millisecond
)

// Reveal is the scheduled appearance of one animatable element.
type Reveal struct {
	Ordinal int           `json:"ordinal"`
	Delay   time.Duration `json:"delay"`
}

// StaggerPlan returns the cascading reveal for n elements in document order:
// element i appears after i × StaggerStep.
func StaggerPlan(n int) []Reveal {
	if n <= 0 {
		return nil
	}
	plan := make([]Reveal, n)
	for i := range plan {
		plan[i] = Reveal{Ordinal: i, Delay: time.Duration(i) * StaggerStep}
	}
	return plan
}

// Revealed counts the elements of plan visible after elapsed.
func Revealed(plan []Reveal, elapsed time.Duration) int {
	n := 0
	for _, r := range plan {
		if r.Delay <= elapsed {
			n++
		}
	}
	return n
}
