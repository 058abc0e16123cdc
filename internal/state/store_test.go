package state

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/moodfood/restaurant-floor/internal/catalog"
	"github.com/moodfood/restaurant-floor/internal/snapshot"
)

var testNow = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

// newTestStore builds a store over the embedded catalog, an in-memory
// snapshot backend, a frozen clock and sequential ids (g-1, it-2, ...).
func newTestStore(t *testing.T) *Store {
	t.Helper()
	cat, err := catalog.Load("")
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	n := 0
	s := New(cat, snapshot.NewMemoryStore(),
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(func(prefix string) string {
			n++
			return fmt.Sprintf("%s-%d", prefix, n)
		}),
	)
	s.Load(context.Background())
	return s
}

func TestLoadStartsFromDefaults(t *testing.T) {
	s := newTestStore(t)
	st := s.Snapshot()
	if len(st.Tables) != 10 {
		t.Fatalf("expected 10 tables, got %d", len(st.Tables))
	}
	if len(st.Orders) != 0 {
		t.Errorf("fresh state should have no orders, got %d", len(st.Orders))
	}
	if len(st.LoyaltyMembers) != 2 {
		t.Errorf("expected 2 seeded loyalty members, got %d", len(st.LoyaltyMembers))
	}
	if st.Session.Authenticated {
		t.Error("fresh session should not be authenticated")
	}
}

func TestMutationsSurviveReload(t *testing.T) {
	cat, err := catalog.Load("")
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	mem := snapshot.NewMemoryStore()
	clock := WithClock(func() time.Time { return testNow })

	s := New(cat, mem, clock)
	s.Load(context.Background())
	g, ok := s.SeatGuest("t-3")
	if !ok {
		t.Fatal("SeatGuest failed on a known table")
	}
	if err := s.AddItem("t-3", g.ID, "d1"); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	// A second store over the same backend sees the persisted tree.
	s2 := New(cat, mem, clock)
	s2.Load(context.Background())
	if got := s2.ComputeTotals("t-3").Sum; got != 590 {
		t.Errorf("reloaded total = %d, want 590", got)
	}
	table := s2.Snapshot().TableByID("t-3")
	if len(table.Guests) != 1 || table.Guests[0].ID != g.ID {
		t.Errorf("reloaded guests = %+v, want the seated guest", table.Guests)
	}
}

func TestFailedMutationLeavesStateUntouched(t *testing.T) {
	s := newTestStore(t)
	g, _ := s.SeatGuest("t-1")
	before := s.Snapshot()

	if err := s.AddItem("t-1", g.ID, "d2"); err == nil {
		t.Fatal("expected error adding a stop-listed dish")
	}
	after := s.Snapshot()
	if len(after.Orders["t-1"].Guests[g.ID].Items) != len(before.Orders["t-1"].Guests[g.ID].Items) {
		t.Error("rejected mutation must not change the tree")
	}
}
