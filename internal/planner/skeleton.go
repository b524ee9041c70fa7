package planner

import (
	"fmt"

	"github.com/Vivek13121/TripWeave/internal/types"
)

type density struct {
	min, max int
}

var densityByStyle = map[types.TravelStyle]density{
	types.TravelStyleRelaxed:  {min: 1, max: 2},
	types.TravelStyleBalanced: {min: 2, max: 3},
	types.TravelStylePacked:   {min: 3, max: 4},
}

// Density returns the (min, max) activities per day for style.
func Density(style types.TravelStyle) (minActivities, maxActivities int, ok bool) {
	d, ok := densityByStyle[style]
	return d.min, d.max, ok
}

// BuildSkeleton returns one envelope per day, numbered from 1.
func BuildSkeleton(days int, style types.TravelStyle) ([]types.DaySkeleton, error) {
	if days < types.MinTripDays || days > types.MaxTripDays {
		return nil, fmt.Errorf("%w: number of days must be between %d and %d (got %d)", types.ErrInvalidInput, types.MinTripDays, types.MaxTripDays, days)
	}
	d, ok := densityByStyle[style]
	if !ok {
		return nil, fmt.Errorf("%w: unknown travel style %q", types.ErrInvalidInput, style)
	}

	skeleton := make([]types.DaySkeleton, days)
	for i := range skeleton {
		skeleton[i] = types.DaySkeleton{
			Day:           i + 1,
			MinActivities: d.min,
			MaxActivities: d.max,
		}
	}
	return skeleton, nil
}
