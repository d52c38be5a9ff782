// README: Trip prompt construction and strict decoding of the model's trip JSON.
package ai

import (
	"encoding/json"
	"fmt"
)

// tripSystemPrompt mandates the exact JSON object shape the model must emit.
// The shape is reproduced verbatim so the model has a schema to target.
const tripSystemPrompt = `You are a travel planning assistant. You produce trip plans in structured JSON.

Respond ONLY with valid JSON. Do not include any commentary or markdown.

JSON format:
{
  "destination": String,
  "flight": {
    "title": String,
    "price": String,
    "url": String
  },
  "hotel": {
    "title": String,
    "price": String,
    "url": String
  },
  "checklist": [
    {
      "title": String,
      "notes": String
    }
  ],
  "mustSee": [
    {
      "title": String,
      "notes": String
    }
  ],
  "days": [
    {
      "label": String,
      "morning": String,
      "afternoon": String,
      "evening": String
    }
  ]
}`

const dateLayout = "2006-01-02"

// BuildTripPrompt returns the fixed system instruction and the per-request user
// instruction for one generation call.
func BuildTripPrompt(req TripRequest) (system, user string) {
	name := req.RequesterName
	if name == "" {
		name = "Traveler"
	}

	user = fmt.Sprintf(`Plan a trip for %s.
Origin: %s
Destination: %s
Dates: %s to %s

Include:
- flight suggestion (airline or site + rough price + link or site)
- hotel suggestion (hotel name or area + rough price/night + link or site)
- a pre-trip checklist (buy tickets, book hotel, etc.)
- must-see places list
- day-by-day plan morning/afternoon/evening between %s and %s

IMPORTANT: respond with pure JSON exactly in the format described above.`,
		name,
		req.Origin,
		req.Destination,
		req.StartDate.Format(dateLayout),
		req.EndDate.Format(dateLayout),
		req.StartDate.Format(dateLayout),
		req.EndDate.Format(dateLayout),
	)

	return tripSystemPrompt, user
}

// Intermediate decode targets. Pointers distinguish "absent" from "zero" so a
// missing required field fails the same way a wrong type does.
type suggestionJSON struct {
	Title *string `json:"title"`
	Price *string `json:"price"`
	URL   *string `json:"url"`
}

type planItemJSON struct {
	Title *string `json:"title"`
	Notes *string `json:"notes"`
}

type planDayJSON struct {
	Label     *string `json:"label"`
	Morning   *string `json:"morning"`
	Afternoon *string `json:"afternoon"`
	Evening   *string `json:"evening"`
}

type tripPlanJSON struct {
	Destination *string         `json:"destination"`
	Flight      *suggestionJSON `json:"flight"`
	Hotel       *suggestionJSON `json:"hotel"`
	Checklist   []planItemJSON  `json:"checklist"`
	MustSee     []planItemJSON  `json:"mustSee"`
	Days        []planDayJSON   `json:"days"`
}

// DecodeTripPlan parses raw as exactly one JSON object matching the required
// trip shape. There is no fallback extraction: surrounding prose or markdown
// fences fail the parse. Every field except item notes is required.
func DecodeTripPlan(raw string) (*TripPlan, error) {
	var parsed tripPlanJSON
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, &SchemaError{Raw: raw, Err: err}
	}

	fail := func(field string) (*TripPlan, error) {
		return nil, &SchemaError{Raw: raw, Err: fmt.Errorf("missing required field %q", field)}
	}

	if parsed.Destination == nil {
		return fail("destination")
	}
	if parsed.Flight == nil {
		return fail("flight")
	}
	if parsed.Hotel == nil {
		return fail("hotel")
	}
	if parsed.Checklist == nil {
		return fail("checklist")
	}
	if parsed.MustSee == nil {
		return fail("mustSee")
	}
	if parsed.Days == nil {
		return fail("days")
	}

	flight, err := decodeSuggestion("flight", parsed.Flight)
	if err != nil {
		return nil, &SchemaError{Raw: raw, Err: err}
	}
	hotel, err := decodeSuggestion("hotel", parsed.Hotel)
	if err != nil {
		return nil, &SchemaError{Raw: raw, Err: err}
	}

	plan := &TripPlan{
		Destination: *parsed.Destination,
		Flight:      flight,
		Hotel:       hotel,
		Checklist:   make([]PlanItem, 0, len(parsed.Checklist)),
		MustSee:     make([]PlanItem, 0, len(parsed.MustSee)),
		Days:        make([]PlanDay, 0, len(parsed.Days)),
	}

	for i, item := range parsed.Checklist {
		if item.Title == nil {
			return nil, &SchemaError{Raw: raw, Err: fmt.Errorf("checklist[%d]: missing title", i)}
		}
		plan.Checklist = append(plan.Checklist, PlanItem{Title: *item.Title, Notes: item.Notes})
	}
	for i, item := range parsed.MustSee {
		if item.Title == nil {
			return nil, &SchemaError{Raw: raw, Err: fmt.Errorf("mustSee[%d]: missing title", i)}
		}
		plan.MustSee = append(plan.MustSee, PlanItem{Title: *item.Title, Notes: item.Notes})
	}
	for i, d := range parsed.Days {
		if d.Label == nil || d.Morning == nil || d.Afternoon == nil || d.Evening == nil {
			return nil, &SchemaError{Raw: raw, Err: fmt.Errorf("days[%d]: missing label/morning/afternoon/evening", i)}
		}
		plan.Days = append(plan.Days, PlanDay{
			Label:     *d.Label,
			Morning:   *d.Morning,
			Afternoon: *d.Afternoon,
			Evening:   *d.Evening,
		})
	}

	return plan, nil
}

func decodeSuggestion(field string, s *suggestionJSON) (Suggestion, error) {
	if s.Title == nil || s.Price == nil || s.URL == nil {
		return Suggestion{}, fmt.Errorf("%s: missing title/price/url", field)
	}
	return Suggestion{Title: *s.Title, Price: *s.Price, URL: *s.URL}, nil
}
