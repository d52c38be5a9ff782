// README: Trip generation service: one model call, all-or-nothing append.
package trip

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"travelgenie/internal/ai"
)

// ErrInvalidDateRange is returned when the requested end date precedes the start date.
var ErrInvalidDateRange = errors.New("end date is before start date")

// Service turns generation requests into fully populated Trips.
type Service struct {
	provider ai.Provider
	store    *Store
}

func NewService(provider ai.Provider, store *Store) *Service {
	return &Service{provider: provider, store: store}
}

type GenerateCommand struct {
	Destination   string
	Origin        string
	StartDate     time.Time
	EndDate       time.Time
	RequesterName string
}

// Generate performs a single generation attempt. On success the new Trip is
// appended to the store and selected; on any failure the store is untouched
// and no partial Trip exists. Every call is a fresh network round trip with
// fresh identities.
func (s *Service) Generate(ctx context.Context, cmd GenerateCommand) (*Trip, error) {
	if cmd.EndDate.Before(cmd.StartDate) {
		return nil, ErrInvalidDateRange
	}

	plan, err := s.provider.GenerateTrip(ctx, ai.TripRequest{
		Destination:   cmd.Destination,
		Origin:        cmd.Origin,
		StartDate:     cmd.StartDate,
		EndDate:       cmd.EndDate,
		RequesterName: cmd.RequesterName,
	})
	if err != nil {
		return nil, err
	}

	t := FromPlan(plan, cmd.StartDate, cmd.EndDate)
	s.store.Append(t)
	return &t, nil
}

// FromPlan manufactures a domain Trip from a decoded plan. Every entity gets a
// fresh identity. The supplied dates, not anything from the model, are written
// onto the Trip; the model's day labels stay advisory display strings.
func FromPlan(plan *ai.TripPlan, startDate, endDate time.Time) Trip {
	t := Trip{
		ID:          uuid.New(),
		Destination: plan.Destination,
		StartDate:   startDate,
		EndDate:     endDate,
		FlightInfo: &BookingSuggestion{
			ID:            uuid.New(),
			Title:         plan.Flight.Title,
			PriceEstimate: plan.Flight.Price,
			URL:           plan.Flight.URL,
		},
		HotelInfo: &BookingSuggestion{
			ID:            uuid.New(),
			Title:         plan.Hotel.Title,
			PriceEstimate: plan.Hotel.Price,
			URL:           plan.Hotel.URL,
		},
		Checklist:    make([]ChecklistItem, 0, len(plan.Checklist)),
		MustSeeList:  make([]ChecklistItem, 0, len(plan.MustSee)),
		DayByDayPlan: make([]DayPlan, 0, len(plan.Days)),
	}

	for _, item := range plan.Checklist {
		t.Checklist = append(t.Checklist, ChecklistItem{
			ID:    uuid.New(),
			Title: item.Title,
			Notes: item.Notes,
			Type:  ItemTypePreTrip,
		})
	}
	for _, item := range plan.MustSee {
		t.MustSeeList = append(t.MustSeeList, ChecklistItem{
			ID:    uuid.New(),
			Title: item.Title,
			Notes: item.Notes,
			Type:  ItemTypeInTrip,
		})
	}
	for _, d := range plan.Days {
		t.DayByDayPlan = append(t.DayByDayPlan, DayPlan{
			ID:        uuid.New(),
			DateLabel: d.Label,
			Morning:   d.Morning,
			Afternoon: d.Afternoon,
			Evening:   d.Evening,
		})
	}
	return t
}
