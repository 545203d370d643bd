package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandevgo/fakenews/internal/core"
)

// Router maps main menu input to activities. Entries are numbered from 1
// in registration order and the number after the last one means exit.
type Router struct {
	activities []core.Activity
	byName     map[string]core.Activity
}

func New(activities []core.Activity) *Router {
	r := &Router{
		activities: activities,
		byName:     make(map[string]core.Activity, len(activities)),
	}
	for _, a := range activities {
		r.byName[a.Name()] = a
	}
	return r
}

// Resolve accepts a menu number, an activity name or "exit".
func (r *Router) Resolve(input string) (core.Activity, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "exit" || input == "quit" {
		return nil, core.ErrExit
	}

	if a, ok := r.byName[input]; ok {
		return a, nil
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		return nil, fmt.Errorf("menu option %q: %w", input, core.ErrInvalidSelection)
	}
	switch {
	case n >= 1 && n <= len(r.activities):
		return r.activities[n-1], nil
	case n == len(r.activities)+1:
		return nil, core.ErrExit
	}
	return nil, fmt.Errorf("menu option %d: %w", n, core.ErrInvalidSelection)
}

func (r *Router) Activities() []core.Activity {
	res := make([]core.Activity, len(r.activities))
	copy(res, r.activities)
	return res
}
