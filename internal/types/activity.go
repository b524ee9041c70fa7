package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ActivityCategory string

const (
	CategoryCultural    ActivityCategory = "cultural"
	CategoryLeisure     ActivityCategory = "leisure"
	CategorySightseeing ActivityCategory = "sightseeing"
	CategoryFood        ActivityCategory = "food"
)

func ParseActivityCategory(s string) (ActivityCategory, error) {
	switch c := ActivityCategory(s); c {
	case CategoryCultural, CategoryLeisure, CategorySightseeing, CategoryFood:
		return c, nil
	}
	return "", fmt.Errorf("%w: activity type must be one of cultural, leisure, sightseeing, food (got %q)", ErrInvalidInput, s)
}

// Activity is a candidate item that can be placed into a slot.
// Name is unique within one planning run.
type Activity struct {
	Name     string           `json:"name"`
	Category ActivityCategory `json:"type"`
}

// RestActivity returns the synthetic filler activity.
func RestActivity() Activity {
	return Activity{Name: RestActivityName, Category: CategoryLeisure}
}

// CatalogActivity is an activity stored in the destination catalog.
type CatalogActivity struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	Activity
	CreatedAt time.Time `json:"created_at"`
}

// DestinationKey normalizes a destination for lookups and cache keys.
func DestinationKey(destination string) string {
	return strings.ToLower(strings.Join(strings.Fields(destination), " "))
}
