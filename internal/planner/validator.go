package planner

import (
	"fmt"

	"github.com/Vivek13121/TripWeave/internal/types"
)

// relaxedDailyCap applies to relaxed trips on top of the skeleton envelope.
const relaxedDailyCap = 2

// Validate checks every day against its envelope and the style rules.
// All violations are collected; none short-circuits the others.
func Validate(skeleton []types.DaySkeleton, days []types.DayAssignment, style types.TravelStyle) types.ValidationReport {
	report := types.ValidationReport{Passed: true, Errors: []string{}}
	fail := func(format string, args ...any) {
		report.Passed = false
		report.Errors = append(report.Errors, fmt.Sprintf(format, args...))
	}

	for i, sk := range skeleton {
		total := 0
		if i < len(days) {
			total = days[i].Total()
		}
		if total < sk.MinActivities {
			fail("Day %d has too few activities.", sk.Day)
		}
		if total > sk.MaxActivities {
			fail("Day %d has too many activities.", sk.Day)
		}
		if total == 0 {
			fail("Day %d is empty.", sk.Day)
		}
		if style == types.TravelStyleRelaxed && total > relaxedDailyCap {
			fail("Day %d is too busy for relaxed style.", sk.Day)
		}
	}
	return report
}

// trimOrder is the order slots are drained from when a day is over its max.
var trimOrder = [...]types.Slot{types.Evening, types.Afternoon, types.Morning}

// Repair brings every day inside its envelope, in place. Overflow is removed
// from the tail of evening, then afternoon, then morning. Underflow is
// padded with Rest cycling morning, afternoon, evening. Days already inside
// their envelope are left untouched.
func Repair(skeleton []types.DaySkeleton, days []types.DayAssignment) {
	for i := range days {
		if i >= len(skeleton) {
			break
		}
		sk := skeleton[i]
		day := &days[i]

		total := day.Total()
		for _, slot := range trimOrder {
			for total > sk.MaxActivities && day.Slots.PopLast(slot) {
				total--
			}
		}

		for n := 0; total < sk.MinActivities; n++ {
			day.Slots.Add(types.SlotOrder[n%len(types.SlotOrder)], types.RestActivity())
			total++
		}
	}
}

// ValidateAndRepair validates days and repairs them when validation failed.
// The report describes the state before repair, so a failed report can come
// back with assignments that are already patched.
func ValidateAndRepair(skeleton []types.DaySkeleton, days []types.DayAssignment, style types.TravelStyle) ([]types.DayAssignment, types.ValidationReport) {
	report := Validate(skeleton, days, style)
	if !report.Passed {
		Repair(skeleton, days)
	}
	return days, report
}
