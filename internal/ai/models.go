package ai

import "time"

// TripRequest carries the inputs for one trip-generation call.
type TripRequest struct {
	Destination   string
	Origin        string
	StartDate     time.Time
	EndDate       time.Time
	RequesterName string
}

// Message is one turn of a chat conversation in provider-neutral form.
type Message struct {
	Role    string `json:"role"` // "system", "user" or "assistant"
	Content string `json:"content"`
}

// TripPlan is the schema-level result of a successful generation call,
// decoded from the model's JSON but not yet mapped to domain entities.
type TripPlan struct {
	Destination string
	Flight      Suggestion
	Hotel       Suggestion
	Checklist   []PlanItem
	MustSee     []PlanItem
	Days        []PlanDay
}

// Suggestion is a flight or hotel proposal. Price and URL are free text as
// emitted by the model; neither is validated.
type Suggestion struct {
	Title string
	Price string
	URL   string
}

// PlanItem is a checklist or must-see entry. Notes is nil when the model
// omitted the field.
type PlanItem struct {
	Title string
	Notes *string
}

// PlanDay is one day of the itinerary. Label is an advisory display string;
// it is not validated against the requested date range.
type PlanDay struct {
	Label     string
	Morning   string
	Afternoon string
	Evening   string
}
