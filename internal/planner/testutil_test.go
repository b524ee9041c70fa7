package planner

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Vivek13121/TripWeave/internal/types"
)

// stubRand never shuffles and returns scripted Intn values, clamped to n-1.
type stubRand struct {
	ints []int
	pos  int
}

func (s *stubRand) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.pos%len(s.ints)]
	s.pos++
	if v >= n {
		return n - 1
	}
	return v
}

func (s *stubRand) Shuffle(int, func(i, j int)) {}

func makePool(n int) []types.Activity {
	cats := []types.ActivityCategory{types.CategoryCultural, types.CategoryLeisure, types.CategorySightseeing, types.CategoryFood}
	pool := make([]types.Activity, n)
	for i := range pool {
		pool[i] = types.Activity{Name: fmt.Sprintf("Activity %02d", i), Category: cats[i%len(cats)]}
	}
	return pool
}

func staticSource(pool []types.Activity) ActivitySource {
	return ActivitySourceFunc(func(_ context.Context, _ string) ([]types.Activity, error) {
		return pool, nil
	})
}

func act(name string) types.Activity {
	return types.Activity{Name: name, Category: types.CategorySightseeing}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func names(acts []types.Activity) []string {
	out := make([]string, len(acts))
	for i, a := range acts {
		out[i] = a.Name
	}
	return out
}
