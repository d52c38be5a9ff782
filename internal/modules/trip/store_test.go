// README: Tests for the persisted trip store (collection, selection, items).
package trip

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"travelgenie/internal/infra"
)

func makeTrip(destination string) Trip {
	notes := "notes"
	return Trip{
		ID:          uuid.New(),
		Destination: destination,
		StartDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Checklist: []ChecklistItem{
			{ID: uuid.New(), Title: "Buy tickets", Notes: &notes, Type: ItemTypePreTrip},
			{ID: uuid.New(), Title: "Book hotel", Type: ItemTypePreTrip},
		},
		MustSeeList: []ChecklistItem{
			{ID: uuid.New(), Title: "Old town", Type: ItemTypeInTrip},
		},
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(infra.NewBlobStore(t.TempDir()))
}

func TestStore_AppendSelects(t *testing.T) {
	s := newTestStore(t)

	a := makeTrip("Paris")
	b := makeTrip("Oslo")
	s.Append(a)
	s.Append(b)

	trips := s.Trips()
	if len(trips) != 2 || trips[0].ID != a.ID || trips[1].ID != b.ID {
		t.Fatalf("trips out of order: %+v", trips)
	}
	cur, ok := s.Current()
	if !ok || cur.ID != b.ID {
		t.Errorf("current = %v/%v, want last appended", cur.ID, ok)
	}
}

func TestStore_SelectUnknownID(t *testing.T) {
	s := newTestStore(t)
	s.Append(makeTrip("Paris"))

	ghost := uuid.New()
	s.Select(ghost)

	// The raw selection id is stored as-is.
	id, ok := s.CurrentID()
	if !ok || id != ghost {
		t.Fatalf("CurrentID = %v/%v", id, ok)
	}
	// But resolving it against the collection yields no trip.
	if _, ok := s.Current(); ok {
		t.Error("Current resolved a trip for an unknown selection id")
	}
}

func TestStore_Delete(t *testing.T) {
	s := newTestStore(t)
	a := makeTrip("Paris")
	b := makeTrip("Oslo")
	c := makeTrip("Lima")
	s.Append(a)
	s.Append(b)
	s.Append(c) // selected

	// Deleting a non-selected trip keeps the selection.
	if !s.Delete(a.ID) {
		t.Fatal("delete a failed")
	}
	if cur, ok := s.Current(); !ok || cur.ID != c.ID {
		t.Errorf("selection moved unexpectedly: %v/%v", cur.ID, ok)
	}

	// Deleting the selected trip falls back to the first remaining.
	if !s.Delete(c.ID) {
		t.Fatal("delete c failed")
	}
	if cur, ok := s.Current(); !ok || cur.ID != b.ID {
		t.Errorf("selection did not fall back to first remaining: %v/%v", cur.ID, ok)
	}

	// Deleting the last trip clears the selection.
	if !s.Delete(b.ID) {
		t.Fatal("delete b failed")
	}
	if _, ok := s.CurrentID(); ok {
		t.Error("selection survived an empty collection")
	}

	if s.Delete(uuid.New()) {
		t.Error("delete of unknown id reported success")
	}
}

func TestStore_ToggleDone(t *testing.T) {
	s := newTestStore(t)
	tr := makeTrip("Paris")
	s.Append(tr)

	target := tr.Checklist[1].ID
	if !s.ToggleDone(target) {
		t.Fatal("toggle failed")
	}

	cur, _ := s.Current()
	if !cur.Checklist[1].IsDone {
		t.Error("item not flipped")
	}
	if cur.Checklist[0].IsDone || cur.MustSeeList[0].IsDone {
		t.Error("toggle leaked onto other items")
	}

	// Toggling again flips back.
	if !s.ToggleDone(target) {
		t.Fatal("second toggle failed")
	}
	cur, _ = s.Current()
	if cur.Checklist[1].IsDone {
		t.Error("item not flipped back")
	}

	// Must-see items toggle too.
	if !s.ToggleDone(tr.MustSeeList[0].ID) {
		t.Fatal("must-see toggle failed")
	}
	cur, _ = s.Current()
	if !cur.MustSeeList[0].IsDone {
		t.Error("must-see item not flipped")
	}

	if s.ToggleDone(uuid.New()) {
		t.Error("toggle of unknown id reported success")
	}
}

func TestStore_ToggleDone_NoSelection(t *testing.T) {
	s := newTestStore(t)
	if s.ToggleDone(uuid.New()) {
		t.Error("toggle without a selected trip reported success")
	}
}

func TestStore_AddItem(t *testing.T) {
	s := newTestStore(t)
	s.Append(makeTrip("Paris"))

	notes := "from the chat"
	item, ok := s.AddItem("Eiffel Tower", &notes, TargetMustSee)
	if !ok {
		t.Fatal("add failed")
	}
	if item.ID == uuid.Nil {
		t.Error("item got no identity")
	}
	if item.Type != ItemTypeInTrip {
		t.Errorf("type = %q, want %q", item.Type, ItemTypeInTrip)
	}

	cur, _ := s.Current()
	last := cur.MustSeeList[len(cur.MustSeeList)-1]
	if last.ID != item.ID || last.Notes == nil || *last.Notes != notes {
		t.Errorf("item not appended to must-see list: %+v", last)
	}

	item2, _ := s.AddItem("Travel insurance", nil, TargetChecklist)
	if item2.Type != ItemTypePreTrip {
		t.Errorf("type = %q, want %q", item2.Type, ItemTypePreTrip)
	}
	cur, _ = s.Current()
	if cur.Checklist[len(cur.Checklist)-1].ID != item2.ID {
		t.Error("item not appended to checklist")
	}
}

func TestStore_AddItem_NoSelection(t *testing.T) {
	s := newTestStore(t)
	if _, ok := s.AddItem("orphan", nil, TargetChecklist); ok {
		t.Error("add without a selected trip reported success")
	}
}

func TestStore_RemoveItem(t *testing.T) {
	s := newTestStore(t)
	tr := makeTrip("Paris")
	s.Append(tr)

	victim := tr.Checklist[0].ID

	// Wrong target list leaves the item alone.
	if s.RemoveItem(victim, TargetMustSee) {
		t.Error("remove from wrong list reported success")
	}
	cur, _ := s.Current()
	if len(cur.Checklist) != 2 {
		t.Fatalf("checklist len = %d after no-op", len(cur.Checklist))
	}

	if !s.RemoveItem(victim, TargetChecklist) {
		t.Fatal("remove failed")
	}
	cur, _ = s.Current()
	if len(cur.Checklist) != 1 || cur.Checklist[0].ID == victim {
		t.Errorf("item still present: %+v", cur.Checklist)
	}
}

func TestStore_SnapshotsDoNotAliasStore(t *testing.T) {
	s := newTestStore(t)
	tr := makeTrip("Paris")
	s.Append(tr)

	snapTrips := s.Trips()
	snapCur, ok := s.Current()
	if !ok {
		t.Fatal("no current trip")
	}

	// Mutate the store after taking the snapshots.
	if !s.ToggleDone(tr.Checklist[0].ID) {
		t.Fatal("toggle failed")
	}
	if _, ok := s.AddItem("late addition", nil, TargetChecklist); !ok {
		t.Fatal("add failed")
	}

	if snapTrips[0].Checklist[0].IsDone {
		t.Error("Trips snapshot observed a later toggle")
	}
	if snapCur.Checklist[0].IsDone {
		t.Error("Current snapshot observed a later toggle")
	}
	if len(snapTrips[0].Checklist) != 2 || len(snapCur.Checklist) != 2 {
		t.Errorf("snapshots observed a later add: %d/%d items",
			len(snapTrips[0].Checklist), len(snapCur.Checklist))
	}

	cur, _ := s.Current()
	if !cur.Checklist[0].IsDone || len(cur.Checklist) != 3 {
		t.Errorf("store itself missed the mutations: %+v", cur.Checklist)
	}
}

// Run with -race: snapshot reads must never touch the arrays ToggleDone
// writes in place.
func TestStore_ConcurrentReadsAndToggles(t *testing.T) {
	s := newTestStore(t)
	tr := makeTrip("Paris")
	s.Append(tr)
	itemID := tr.Checklist[0].ID

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			s.ToggleDone(itemID)
		}
	}()
	for i := 0; i < 200; i++ {
		_ = s.Trips()[0].Checklist[0].IsDone
		if cur, ok := s.Current(); ok {
			_ = cur.Checklist[0].IsDone
		}
	}
	<-done
}

func TestStore_PersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s1 := NewStore(infra.NewBlobStore(dir))
	a := makeTrip("Paris")
	b := makeTrip("Oslo")
	s1.Append(a)
	s1.Append(b)
	s1.Select(a.ID)
	s1.ToggleDone(a.Checklist[0].ID)

	// A fresh store on the same directory sees the same state.
	s2 := NewStore(infra.NewBlobStore(dir))
	trips := s2.Trips()
	if len(trips) != 2 || trips[0].ID != a.ID || trips[1].ID != b.ID {
		t.Fatalf("restored trips = %+v", trips)
	}
	cur, ok := s2.Current()
	if !ok || cur.ID != a.ID {
		t.Fatalf("restored selection = %v/%v, want %v", cur.ID, ok, a.ID)
	}
	if !cur.Checklist[0].IsDone {
		t.Error("toggled item not persisted")
	}
}

func TestStore_StaleSelectionFallsBack(t *testing.T) {
	dir := t.TempDir()
	bs := infra.NewBlobStore(dir)

	a := makeTrip("Paris")
	if err := bs.Save("trips", []Trip{a}); err != nil {
		t.Fatal(err)
	}
	if err := bs.Save("current_trip", uuid.New().String()); err != nil {
		t.Fatal(err)
	}

	s := NewStore(bs)
	cur, ok := s.Current()
	if !ok || cur.ID != a.ID {
		t.Errorf("stale selection did not fall back to first trip: %v/%v", cur.ID, ok)
	}
}

func TestStore_CorruptedBlobRestoresEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "trips.json"), []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(infra.NewBlobStore(dir))
	if len(s.Trips()) != 0 {
		t.Errorf("corrupted blob restored %d trips", len(s.Trips()))
	}
	if _, ok := s.CurrentID(); ok {
		t.Error("corrupted blob produced a selection")
	}
}
