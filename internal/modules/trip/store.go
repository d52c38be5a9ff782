// README: Trip store: owns the trip collection and selection, write-through persisted.
package trip

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"travelgenie/internal/infra"
)

const (
	tripsBlob       = "trips"
	currentTripBlob = "current_trip"
)

// Store owns the ordered trip collection (insertion order, never re-sorted) and
// the current-selection id. Every mutation durably serializes the affected blob
// immediately; persistence failures are logged, never raised, trading data-loss
// risk for availability.
type Store struct {
	mu      sync.Mutex
	blobs   *infra.BlobStore
	trips   []Trip
	current *uuid.UUID
}

// NewStore restores the collection and selection from their blobs. A missing or
// corrupted blob yields the empty default. A persisted selection that matches
// no trip falls back to the first trip, or none when the collection is empty.
func NewStore(blobs *infra.BlobStore) *Store {
	s := &Store{blobs: blobs}

	if !blobs.Load(tripsBlob, &s.trips) {
		s.trips = nil
	}

	var rawID string
	if blobs.Load(currentTripBlob, &rawID) {
		if id, err := uuid.Parse(rawID); err == nil {
			s.current = &id
		}
	}
	if s.current == nil || s.indexOf(*s.current) < 0 {
		s.current = nil
		if len(s.trips) > 0 {
			id := s.trips[0].ID
			s.current = &id
		}
	}
	return s
}

// Trips returns a snapshot of the collection in insertion order. Snapshots are
// deep copies of the mutable lists; later toggles and item mutations under the
// lock never show through.
func (s *Store) Trips() []Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Trip, len(s.trips))
	for i, t := range s.trips {
		out[i] = cloneTrip(t)
	}
	return out
}

// CurrentID reports the selected trip id, if any.
func (s *Store) CurrentID() (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return uuid.Nil, false
	}
	return *s.current, true
}

// Current resolves the selection lazily against the collection: a selection id
// that no longer matches a trip behaves as no selection, never as dangling.
func (s *Store) Current() (Trip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Trip{}, false
	}
	i := s.indexOf(*s.current)
	if i < 0 {
		return Trip{}, false
	}
	return cloneTrip(s.trips[i]), true
}

// Append adds the trip to the end of the collection and selects it.
// Used only by successful generation.
func (s *Store) Append(t Trip) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trips = append(s.trips, t)
	id := t.ID
	s.current = &id
	s.persistTrips()
	s.persistCurrent()
}

// Select sets the selection id. It does not verify the id exists; Current
// validates lazily on each access.
func (s *Store) Select(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &id
	s.persistCurrent()
}

// Delete removes the matching trip; contained items go with it. If the deleted
// trip was selected, selection moves to the first remaining trip or clears.
func (s *Store) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.trips = append(s.trips[:i], s.trips[i+1:]...)
	if s.current != nil && *s.current == id {
		s.current = nil
		if len(s.trips) > 0 {
			first := s.trips[0].ID
			s.current = &first
		}
	}
	s.persistTrips()
	s.persistCurrent()
	return true
}

// ToggleDone flips the completion flag of the matching item on the currently
// selected trip, searching the checklist first, then the must-see list. It is
// a no-op when no trip is selected or neither list has the id.
func (s *Store) ToggleDone(itemID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.selectedLocked()
	if t == nil {
		return false
	}
	for _, list := range [][]ChecklistItem{t.Checklist, t.MustSeeList} {
		for i := range list {
			if list[i].ID == itemID {
				list[i].IsDone = !list[i].IsDone
				s.persistTrips()
				return true
			}
		}
	}
	return false
}

// AddItem manufactures a new item on the selected trip's target list. The type
// tag is derived from the target so tag and containing list always agree.
// There is no de-duplication by title.
func (s *Store) AddItem(title string, notes *string, target ListTarget) (ChecklistItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.selectedLocked()
	if t == nil {
		return ChecklistItem{}, false
	}

	itemType := ItemTypePreTrip
	if target == TargetMustSee {
		itemType = ItemTypeInTrip
	}
	item := ChecklistItem{
		ID:    uuid.New(),
		Title: title,
		Notes: notes,
		Type:  itemType,
	}

	switch target {
	case TargetMustSee:
		t.MustSeeList = append(t.MustSeeList, item)
	default:
		t.Checklist = append(t.Checklist, item)
	}
	s.persistTrips()
	return item, true
}

// RemoveItem removes the matching item from the specified list on the selected
// trip. If the target list does not contain the id, nothing happens.
func (s *Store) RemoveItem(itemID uuid.UUID, target ListTarget) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.selectedLocked()
	if t == nil {
		return false
	}

	list := &t.Checklist
	if target == TargetMustSee {
		list = &t.MustSeeList
	}
	for i := range *list {
		if (*list)[i].ID == itemID {
			*list = append((*list)[:i], (*list)[i+1:]...)
			s.persistTrips()
			return true
		}
	}
	return false
}

// cloneTrip copies the lists ToggleDone, AddItem, and RemoveItem mutate in
// place. The booking suggestions are written once at creation and never
// mutated, so sharing their pointers is safe.
func cloneTrip(t Trip) Trip {
	t.Checklist = append([]ChecklistItem(nil), t.Checklist...)
	t.MustSeeList = append([]ChecklistItem(nil), t.MustSeeList...)
	t.DayByDayPlan = append([]DayPlan(nil), t.DayByDayPlan...)
	return t
}

func (s *Store) indexOf(id uuid.UUID) int {
	for i := range s.trips {
		if s.trips[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) selectedLocked() *Trip {
	if s.current == nil {
		return nil
	}
	i := s.indexOf(*s.current)
	if i < 0 {
		return nil
	}
	return &s.trips[i]
}

func (s *Store) persistTrips() {
	if err := s.blobs.Save(tripsBlob, s.trips); err != nil {
		log.Printf("trip store: persist trips: %v", err)
	}
}

func (s *Store) persistCurrent() {
	if s.current == nil {
		if err := s.blobs.Delete(currentTripBlob); err != nil {
			log.Printf("trip store: clear selection: %v", err)
		}
		return
	}
	if err := s.blobs.Save(currentTripBlob, s.current.String()); err != nil {
		log.Printf("trip store: persist selection: %v", err)
	}
}
