package planner

import "github.com/Vivek13121/TripWeave/internal/types"

// Assign distributes a random subset of pool over the skeleton.
//
// The pool is permuted once per pass. For every day a quota is drawn
// uniformly from the day's envelope and filled first-fit from the
// permutation, skipping names already placed on any day. Selected activities
// go round-robin into morning, afternoon and evening. A day can come back
// short, or empty, once the pool runs out; repair deals with it.
//
// Neither skeleton nor pool is modified.
func Assign(skeleton []types.DaySkeleton, pool []types.Activity, rng RandomSource) []types.DayAssignment {
	order := make([]types.Activity, len(pool))
	copy(order, pool)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	used := make(map[string]struct{}, len(order))
	days := make([]types.DayAssignment, 0, len(skeleton))

	for _, sk := range skeleton {
		quota := sk.MinActivities
		if span := sk.MaxActivities - sk.MinActivities + 1; span > 1 {
			quota += rng.Intn(span)
		}

		selected := make([]types.Activity, 0, quota)
		for _, act := range order {
			if len(selected) == quota {
				break
			}
			if _, taken := used[act.Name]; taken {
				continue
			}
			used[act.Name] = struct{}{}
			selected = append(selected, act)
		}

		day := types.NewDayAssignment(sk.Day)
		for i, act := range selected {
			day.Slots.Add(types.SlotOrder[i%len(types.SlotOrder)], act)
		}
		days = append(days, day)
	}
	return days
}
