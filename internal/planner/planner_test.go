package planner

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vivek13121/TripWeave/internal/types"
)

func trip(days int, style types.TravelStyle) types.TripParameters {
	return types.TripParameters{
		Days:        days,
		Destination: "Lisbon",
		TravelStyle: style,
		BudgetLevel: types.BudgetLevelMedium,
	}
}

func assertNoDuplicates(t *testing.T, days []types.DayAssignment) {
	t.Helper()
	seen := map[string]bool{}
	for _, day := range days {
		for _, slot := range types.SlotOrder {
			for _, a := range day.Slots.Get(slot) {
				if a.Name == types.RestActivityName {
					continue
				}
				assert.False(t, seen[a.Name], "activity %q placed twice", a.Name)
				seen[a.Name] = true
			}
		}
	}
}

func TestPlan_AmplePoolCompletesFirstPass(t *testing.T) {
	p := NewPlanner(discardLogger())
	styles := []types.TravelStyle{types.TravelStyleRelaxed, types.TravelStyleBalanced, types.TravelStylePacked}

	for seed := int64(1); seed <= 120; seed++ {
		rng := rand.New(rand.NewSource(seed))
		style := styles[seed%3]
		days := 1 + rng.Intn(types.MaxTripDays)
		_, maxA, _ := Density(style)
		pool := makePool(days * maxA)

		result, err := p.Plan(context.Background(), trip(days, style), staticSource(pool), rng, 3)
		require.NoError(t, err)
		require.True(t, result.Complete(), "seed %d: %v", seed, result.Report.Errors)
		assert.Equal(t, 1, result.Attempts)
		require.Len(t, result.Itinerary, days)

		for i, day := range result.Itinerary {
			sk := result.Skeleton[i]
			assert.Equal(t, sk.Day, day.Day)
			assert.GreaterOrEqual(t, day.Total(), sk.MinActivities)
			assert.LessOrEqual(t, day.Total(), sk.MaxActivities)
			if style == types.TravelStyleRelaxed {
				assert.LessOrEqual(t, day.Total(), 2)
			}
		}
		assertNoDuplicates(t, result.Itinerary)
	}
}

func TestPlan_RelaxedNeverExceedsTwo(t *testing.T) {
	p := NewPlanner(discardLogger())
	for seed := int64(1); seed <= 40; seed++ {
		pool := makePool(int(seed % 7))
		result, err := p.Plan(context.Background(), trip(5, types.TravelStyleRelaxed), staticSource(pool), rand.New(rand.NewSource(seed)), 2)
		require.NoError(t, err)
		for _, day := range result.Itinerary {
			assert.LessOrEqual(t, day.Total(), 2)
			assert.GreaterOrEqual(t, day.Total(), 1)
		}
	}
}

func TestPlan_SmallPoolTerminatesWithFiller(t *testing.T) {
	p := NewPlanner(discardLogger())
	pool := makePool(4) // balanced minimum for 5 days is 10

	result, err := p.Plan(context.Background(), trip(5, types.TravelStyleBalanced), staticSource(pool), rand.New(rand.NewSource(11)), 4)
	require.NoError(t, err)
	assert.False(t, result.Complete())
	assert.Equal(t, 5, result.Attempts)
	assert.NotEmpty(t, result.Report.Errors)

	for i, day := range result.Itinerary {
		sk := result.Skeleton[i]
		assert.GreaterOrEqual(t, day.Total(), sk.MinActivities, "day %d", day.Day)
		assert.LessOrEqual(t, day.Total(), sk.MaxActivities, "day %d", day.Day)
	}
	assertNoDuplicates(t, result.Itinerary)

	rest := 0
	for _, day := range result.Itinerary {
		for _, slot := range types.SlotOrder {
			for _, a := range day.Slots.Get(slot) {
				if a.Name == types.RestActivityName {
					rest++
				}
			}
		}
	}
	assert.GreaterOrEqual(t, rest, 10-4)
}

func TestPlan_SingleActivityPackedTrip(t *testing.T) {
	p := NewPlanner(discardLogger())
	pool := []types.Activity{{Name: "Lisbon Museum", Category: types.CategoryCultural}}

	result, err := p.Plan(context.Background(), trip(5, types.TravelStylePacked), staticSource(pool), rand.New(rand.NewSource(3)), 3)
	require.NoError(t, err)

	assert.False(t, result.Complete())
	assert.Equal(t, 4, result.Attempts)
	require.Len(t, result.Itinerary, 5)

	// Day 1 holds the only real activity; padding restarts at morning.
	assert.Equal(t, []string{"Lisbon Museum", "Rest"}, names(result.Itinerary[0].Slots.Morning))
	assert.Equal(t, []string{"Rest"}, names(result.Itinerary[0].Slots.Afternoon))
	assert.Empty(t, result.Itinerary[0].Slots.Evening)
	for _, day := range result.Itinerary[1:] {
		assert.Equal(t, 3, day.Total())
		for _, slot := range types.SlotOrder {
			assert.Equal(t, []string{"Rest"}, names(day.Slots.Get(slot)))
		}
	}

	assert.Equal(t, "Day 1 has too few activities.", result.Report.Errors[0])
	assert.Len(t, result.Report.Errors, 1+4*2)
}

func TestPlan_NegativeRetriesUsesDefault(t *testing.T) {
	p := NewPlanner(discardLogger())
	result, err := p.Plan(context.Background(), trip(2, types.TravelStyleRelaxed), staticSource(nil), rand.New(rand.NewSource(1)), -1)
	require.NoError(t, err)
	assert.False(t, result.Complete())
	assert.Equal(t, DefaultMaxRetries+1, result.Attempts)
}

func TestPlan_ZeroRetriesRunsOnce(t *testing.T) {
	p := NewPlanner(discardLogger())
	result, err := p.Plan(context.Background(), trip(2, types.TravelStylePacked), staticSource(makePool(2)), rand.New(rand.NewSource(1)), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Attempts)
	assert.False(t, result.Complete())
}

func TestPlan_SameSeedSamePlan(t *testing.T) {
	p := NewPlanner(discardLogger())
	pool := makePool(30)

	a, err := p.Plan(context.Background(), trip(7, types.TravelStyleBalanced), staticSource(pool), rand.New(rand.NewSource(42)), 3)
	require.NoError(t, err)
	b, err := p.Plan(context.Background(), trip(7, types.TravelStyleBalanced), staticSource(pool), rand.New(rand.NewSource(42)), 3)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPlan_Errors(t *testing.T) {
	p := NewPlanner(discardLogger())
	ctx := context.Background()

	t.Run("invalid trip", func(t *testing.T) {
		_, err := p.Plan(ctx, trip(0, types.TravelStyleRelaxed), staticSource(nil), rand.New(rand.NewSource(1)), 1)
		assert.ErrorIs(t, err, types.ErrInvalidInput)

		bad := trip(2, types.TravelStyleRelaxed)
		bad.BudgetLevel = "lavish"
		_, err = p.Plan(ctx, bad, staticSource(nil), rand.New(rand.NewSource(1)), 1)
		assert.ErrorIs(t, err, types.ErrInvalidInput)
	})

	t.Run("nil random source", func(t *testing.T) {
		_, err := p.Plan(ctx, trip(2, types.TravelStyleRelaxed), staticSource(nil), nil, 1)
		assert.ErrorIs(t, err, ErrNilRandomSource)
	})

	t.Run("nil activity source", func(t *testing.T) {
		_, err := p.Plan(ctx, trip(2, types.TravelStyleRelaxed), nil, rand.New(rand.NewSource(1)), 1)
		assert.ErrorIs(t, err, ErrNilActivitySource)
	})

	t.Run("source failure", func(t *testing.T) {
		boom := errors.New("catalog unavailable")
		source := ActivitySourceFunc(func(context.Context, string) ([]types.Activity, error) {
			return nil, boom
		})
		_, err := p.Plan(ctx, trip(2, types.TravelStyleRelaxed), source, rand.New(rand.NewSource(1)), 1)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("cancelled before assignment", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		source := ActivitySourceFunc(func(context.Context, string) ([]types.Activity, error) {
			cancel()
			return makePool(10), nil
		})
		_, err := p.Plan(cctx, trip(2, types.TravelStyleRelaxed), source, rand.New(rand.NewSource(1)), 1)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "planning", StatePlanning.String())
	assert.Equal(t, "researching", StateResearching.String())
	assert.Equal(t, "assigning", StateAssigning.String())
	assert.Equal(t, "validating", StateValidating.String())
	assert.Equal(t, "done", StateDone.String())
	assert.Equal(t, "unknown", State(42).String())
}

func BenchmarkPlan(b *testing.B) {
	p := NewPlanner(discardLogger())
	pool := makePool(240)
	tp := trip(60, types.TravelStylePacked)
	rng := rand.New(rand.NewSource(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Plan(context.Background(), tp, staticSource(pool), rng, 3); err != nil {
			b.Fatal(err)
		}
	}
}
