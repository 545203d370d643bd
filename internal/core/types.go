package core

import "context"

const (
	AppName    = "fakenews"
	AppVersion = "0.1.0"
)

// Rand abstracts random number generation for deterministic testing.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	// IntN returns a non-negative random int in [0, n).
	IntN(n int) int
}

// Console is the line-oriented terminal the activities talk to.
type Console interface {
	// Ask shows prompt and blocks until the user submits a line.
	Ask(ctx context.Context, prompt string) (string, error)
	// Print writes text as is.
	Print(text string)
}

// Activity is one entry of the main menu.
type Activity interface {
	Name() string
	Description() string
	Play(ctx context.Context, console Console) error
}

type Menu interface {
	Resolve(input string) (Activity, error)
	Activities() []Activity
}
