package activity

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Vivek13121/TripWeave/internal/planner"
	"github.com/Vivek13121/TripWeave/internal/types"
)

var _ planner.ActivitySource = (*StaticSource)(nil)

type template struct {
	suffix   string
	category types.ActivityCategory
}

var staticTemplates = []template{
	{"Museum", types.CategoryCultural},
	{"Park", types.CategoryLeisure},
	{"Landmark", types.CategorySightseeing},
	{"Food Market", types.CategoryFood},
	{"Art Gallery", types.CategoryCultural},
	{"River Walk", types.CategoryLeisure},
	{"Historic Site", types.CategorySightseeing},
	{"Local Eatery", types.CategoryFood},
	{"Festival", types.CategoryCultural},
	{"Botanical Garden", types.CategoryLeisure},
}

// StaticSource generates the same ten activities for any destination.
type StaticSource struct{}

func NewStaticSource() *StaticSource {
	return &StaticSource{}
}

func (s *StaticSource) Fetch(_ context.Context, destination string) ([]types.Activity, error) {
	// A Caser keeps state between calls, so each fetch gets its own.
	name := cases.Title(language.English).String(strings.Join(strings.Fields(destination), " "))

	activities := make([]types.Activity, 0, len(staticTemplates))
	for _, t := range staticTemplates {
		activities = append(activities, types.Activity{
			Name:     name + " " + t.suffix,
			Category: t.category,
		})
	}
	return activities, nil
}
