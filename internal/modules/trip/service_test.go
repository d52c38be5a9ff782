// README: Tests for the generation service (mapping, identities, all-or-nothing).
package trip

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"travelgenie/internal/ai"
	"travelgenie/internal/infra"
)

// stubProvider returns a canned plan or error and records the request.
type stubProvider struct {
	plan   *ai.TripPlan
	err    error
	calls  int
	gotReq ai.TripRequest
}

func (p *stubProvider) GenerateTrip(_ context.Context, req ai.TripRequest) (*ai.TripPlan, error) {
	p.calls++
	p.gotReq = req
	return p.plan, p.err
}

func (p *stubProvider) Chat(context.Context, []ai.Message) (string, error) {
	return "", errors.New("not used")
}

func parisPlan() *ai.TripPlan {
	louvre := "book skip-the-line"
	return &ai.TripPlan{
		Destination: "Paris",
		Flight:      ai.Suggestion{Title: "ITA Airways", Price: "~120 EUR", URL: "https://ita.com"},
		Hotel:       ai.Suggestion{Title: "Le Marais area", Price: "~150 EUR/night", URL: "https://booking.com"},
		Checklist: []ai.PlanItem{
			{Title: "Buy tickets"},
			{Title: "Book hotel"},
			{Title: "Pack umbrella"},
		},
		MustSee: []ai.PlanItem{
			{Title: "Louvre", Notes: &louvre},
			{Title: "Montmartre"},
		},
		Days: []ai.PlanDay{
			{Label: "Day 1", Morning: "Arrive", Afternoon: "Seine", Evening: "Dinner"},
			{Label: "Day 2", Morning: "Louvre", Afternoon: "Tuileries", Evening: "Cruise"},
			{Label: "Day 3", Morning: "Montmartre", Afternoon: "Sacre-Coeur", Evening: "Show"},
			{Label: "Day 4", Morning: "Versailles", Afternoon: "Gardens", Evening: "Return"},
			{Label: "Day 5", Morning: "Pack", Afternoon: "Fly", Evening: "Home"},
		},
	}
}

func parisCommand() GenerateCommand {
	return GenerateCommand{
		Destination:   "Paris",
		Origin:        "Rome",
		StartDate:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		RequesterName: "Alice",
	}
}

func TestService_Generate(t *testing.T) {
	provider := &stubProvider{plan: parisPlan()}
	store := newTestStore(t)
	svc := NewService(provider, store)

	got, err := svc.Generate(context.Background(), parisCommand())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if provider.gotReq.Destination != "Paris" || provider.gotReq.RequesterName != "Alice" {
		t.Errorf("provider request = %+v", provider.gotReq)
	}

	if got.ID == uuid.Nil {
		t.Fatal("trip got no identity")
	}
	if got.Destination != "Paris" {
		t.Errorf("destination = %q", got.Destination)
	}
	if len(got.Checklist) != 3 || len(got.MustSeeList) != 2 || len(got.DayByDayPlan) != 5 {
		t.Fatalf("counts = %d/%d/%d, want 3/2/5",
			len(got.Checklist), len(got.MustSeeList), len(got.DayByDayPlan))
	}
	if !got.StartDate.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) ||
		!got.EndDate.Equal(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("dates came from somewhere other than the command: %v to %v", got.StartDate, got.EndDate)
	}

	for _, item := range got.Checklist {
		if item.Type != ItemTypePreTrip {
			t.Errorf("checklist item %q tagged %q", item.Title, item.Type)
		}
		if item.ID == uuid.Nil {
			t.Errorf("checklist item %q got no identity", item.Title)
		}
	}
	for _, item := range got.MustSeeList {
		if item.Type != ItemTypeInTrip {
			t.Errorf("must-see item %q tagged %q", item.Title, item.Type)
		}
	}
	if got.MustSeeList[0].Notes == nil || *got.MustSeeList[0].Notes != "book skip-the-line" {
		t.Errorf("notes not carried over: %v", got.MustSeeList[0].Notes)
	}
	if got.FlightInfo == nil || got.FlightInfo.PriceEstimate != "~120 EUR" {
		t.Errorf("flight = %+v", got.FlightInfo)
	}
	if got.HotelInfo == nil || got.HotelInfo.Title != "Le Marais area" {
		t.Errorf("hotel = %+v", got.HotelInfo)
	}

	// The new trip is appended and selected.
	cur, ok := store.Current()
	if !ok || cur.ID != got.ID {
		t.Errorf("store selection = %v/%v, want %v", cur.ID, ok, got.ID)
	}
}

func TestService_Generate_FreshIdentities(t *testing.T) {
	provider := &stubProvider{plan: parisPlan()}
	store := newTestStore(t)
	svc := NewService(provider, store)

	first, err := svc.Generate(context.Background(), parisCommand())
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Generate(context.Background(), parisCommand())
	if err != nil {
		t.Fatal(err)
	}

	if provider.calls != 2 {
		t.Errorf("provider called %d times, want 2", provider.calls)
	}
	if first.ID == second.ID {
		t.Error("two generations shared a trip identity")
	}
	if first.Checklist[0].ID == second.Checklist[0].ID {
		t.Error("two generations shared an item identity")
	}
	if first.FlightInfo.ID == second.FlightInfo.ID {
		t.Error("two generations shared a suggestion identity")
	}
	if len(store.Trips()) != 2 {
		t.Errorf("store holds %d trips, want 2", len(store.Trips()))
	}
}

func TestService_Generate_InvalidDateRange(t *testing.T) {
	provider := &stubProvider{plan: parisPlan()}
	store := newTestStore(t)
	svc := NewService(provider, store)

	cmd := parisCommand()
	cmd.StartDate, cmd.EndDate = cmd.EndDate, cmd.StartDate

	_, err := svc.Generate(context.Background(), cmd)
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
	if provider.calls != 0 {
		t.Error("provider was called despite invalid dates")
	}
	if len(store.Trips()) != 0 {
		t.Error("store changed despite invalid dates")
	}
}

func TestService_Generate_ProviderFailure(t *testing.T) {
	wantErr := &ai.RemoteError{StatusCode: 500, Body: "boom"}
	provider := &stubProvider{err: wantErr}
	store := NewStore(infra.NewBlobStore(t.TempDir()))
	svc := NewService(provider, store)

	_, err := svc.Generate(context.Background(), parisCommand())
	var re *ai.RemoteError
	if !errors.As(err, &re) || re.StatusCode != 500 {
		t.Fatalf("expected the provider error back, got %v", err)
	}
	if len(store.Trips()) != 0 {
		t.Error("failed generation left a partial trip in the store")
	}
	if _, ok := store.CurrentID(); ok {
		t.Error("failed generation changed the selection")
	}
}
