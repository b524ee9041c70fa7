package planner

import (
	"context"

	"github.com/Vivek13121/TripWeave/internal/types"
)

// ActivitySource supplies candidate activities for a destination.
// Returned names must be unique; order carries no meaning.
type ActivitySource interface {
	Fetch(ctx context.Context, destination string) ([]types.Activity, error)
}

// ActivitySourceFunc adapts a function to ActivitySource.
type ActivitySourceFunc func(ctx context.Context, destination string) ([]types.Activity, error)

func (f ActivitySourceFunc) Fetch(ctx context.Context, destination string) ([]types.Activity, error) {
	return f(ctx, destination)
}

// RandomSource is the subset of *math/rand.Rand the assigner draws from.
// Implementations are not required to be safe for concurrent use.
type RandomSource interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}
