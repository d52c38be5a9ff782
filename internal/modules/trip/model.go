// README: Trip aggregate and its owned value objects.
package trip

import (
	"time"

	"github.com/google/uuid"
)

// ItemType records which list a checklist item conceptually belongs to.
// It is set at creation time and never re-derived.
type ItemType string

const (
	ItemTypePreTrip ItemType = "preTrip"
	ItemTypeInTrip  ItemType = "inTrip"
)

// ListTarget names the list a mutation applies to.
type ListTarget string

const (
	TargetChecklist ListTarget = "checklist"
	TargetMustSee   ListTarget = "mustSee"
)

// BookingSuggestion is a flight or hotel proposal attached to a trip.
// Price and URL are free text straight from the model.
type BookingSuggestion struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	PriceEstimate string    `json:"priceEstimate"`
	URL           string    `json:"url"`
}

// ChecklistItem lives in exactly one of Trip.Checklist or Trip.MustSeeList;
// its Type tag and the containing list agree by construction.
type ChecklistItem struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Notes  *string   `json:"notes,omitempty"`
	Link   *string   `json:"link,omitempty"`
	IsDone bool      `json:"isDone"`
	Type   ItemType  `json:"type"`
}

// DayPlan is one itinerary day. Ordering within Trip.DayByDayPlan is the
// calendar order emitted by the model and is preserved as insertion order.
type DayPlan struct {
	ID        uuid.UUID `json:"id"`
	DateLabel string    `json:"dateLabel"`
	Morning   string    `json:"morning"`
	Afternoon string    `json:"afternoon"`
	Evening   string    `json:"evening"`
}

// Trip is the root aggregate for one planned journey. It is born fully formed
// from a single successful generation call and owns all contained items.
type Trip struct {
	ID             uuid.UUID          `json:"id"`
	Destination    string             `json:"destination"`
	StartDate      time.Time          `json:"startDate"`
	EndDate        time.Time          `json:"endDate"`
	FlightInfo     *BookingSuggestion `json:"flightInfo,omitempty"`
	HotelInfo      *BookingSuggestion `json:"hotelInfo,omitempty"`
	Checklist      []ChecklistItem    `json:"checklist"`
	MustSeeList    []ChecklistItem    `json:"mustSeeList"`
	DayByDayPlan   []DayPlan          `json:"dayByDayPlan"`
	RemoteObjectID *string            `json:"remoteObjectId,omitempty"` // reserved for remote sync
}
