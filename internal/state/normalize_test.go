package state

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"

	"github.com/moodfood/restaurant-floor/internal/catalog"
	"github.com/moodfood/restaurant-floor/internal/model"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load("")
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	return cat
}

func seqID() func(string) string {
	n := 0
	return func(prefix string) string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func TestNormalizeEmptyAndMalformedBlobs(t *testing.T) {
	cat := testCatalog(t)
	for _, blob := range [][]byte{nil, {}, []byte("not json"), []byte(`[1,2,3]`)} {
		st := Normalize(blob, cat, testNow, seqID())
		if len(st.Tables) != 10 {
			t.Errorf("blob %q: tables = %d, want 10 defaults", blob, len(st.Tables))
		}
		if st.Version != model.SchemaVersion {
			t.Errorf("blob %q: version = %d, want %d", blob, st.Version, model.SchemaVersion)
		}
		if len(st.Orders) != 0 || len(st.Reservations) != 0 {
			t.Errorf("blob %q: expected no orders or reservations", blob)
		}
	}
}

func TestNormalizeDropsOrphans(t *testing.T) {
	cat := testCatalog(t)
	blob := []byte(`{
		"tables": [{"id": "t-1", "number": 1, "guests": [{"id": "g-1", "number": 1}]}],
		"orders": {
			"t-1": {"guests": {"g-1": {"items": []}, "g-ghost": {"items": []}}},
			"t-gone": {"guests": {}}
		}
	}`)
	st := Normalize(blob, cat, testNow, seqID())

	if _, exists := st.Orders["t-gone"]; exists {
		t.Error("order for an unknown table must be dropped")
	}
	o, exists := st.Orders["t-1"]
	if !exists {
		t.Fatal("order for a known table must survive")
	}
	if _, exists := o.Guests["g-ghost"]; exists {
		t.Error("guest order for an unseated guest must be dropped")
	}
	if _, exists := o.Guests["g-1"]; !exists {
		t.Error("guest order for a seated guest must survive")
	}
}

func TestNormalizeItemCoercions(t *testing.T) {
	cat := testCatalog(t)
	blob := []byte(`{
		"tables": [{"id": "t-1", "number": 1, "guests": [{"id": "g-1", "number": 1}]}],
		"orders": {
			"t-1": {
				"sentAt": "2026-01-31T18:00:00Z",
				"guests": {"g-1": {"items": [
					{"dishId": "d1", "qty": 0, "course": 0, "status": "exploded"}
				]}}
			}
		}
	}`)
	st := Normalize(blob, cat, testNow, seqID())

	it := st.Orders["t-1"].Guests["g-1"].Items[0]
	if it.ID == "" {
		t.Error("missing item id must be backfilled")
	}
	if it.Qty != 1 {
		t.Errorf("qty = %d, want coerced to 1", it.Qty)
	}
	if it.Course != 1 {
		t.Errorf("course = %d, want coerced to 1", it.Course)
	}
	// Invalid status on a sent order coerces to cooking.
	if it.Status != model.ItemStatusCooking {
		t.Errorf("status = %s, want cooking", it.Status)
	}
	if it.CreatedAt.IsZero() {
		t.Error("missing createdAt must fall back to the order's openedAt")
	}
}

func TestNormalizeOrderDefaults(t *testing.T) {
	cat := testCatalog(t)
	blob := []byte(`{
		"tables": [{"id": "t-2", "number": 2, "guests": []}],
		"orders": {"t-2": {"payment": {"status": "weird", "splitMode": "thirds"}}}
	}`)
	st := Normalize(blob, cat, testNow, seqID())

	o := st.Orders["t-2"]
	if o.OpenedAt != testNow {
		t.Errorf("openedAt = %v, want the normalization time", o.OpenedAt)
	}
	if o.RestaurantID != cat.User.RestaurantID || o.UserID != cat.User.ID {
		t.Errorf("order identity = %s/%s, want catalog defaults", o.RestaurantID, o.UserID)
	}
	if o.TableNumber != 2 {
		t.Errorf("tableNumber = %d, want 2 from the table", o.TableNumber)
	}
	if o.Payment.Status != model.PaymentStatusNone || o.Payment.SplitMode != model.SplitByGuests {
		t.Errorf("payment = %+v, want none/byGuests", o.Payment)
	}
}

func TestNormalizeSession(t *testing.T) {
	cat := testCatalog(t)

	st := Normalize([]byte(`{"session": {"authenticated": true}}`), cat, testNow, seqID())
	if st.Session.User == nil || st.Session.User.ID != cat.User.ID {
		t.Error("authenticated session without a user must pick up the catalog user")
	}

	st = Normalize([]byte(`{"session": {"authenticated": false, "user": {"id": "u-x"}}}`), cat, testNow, seqID())
	if st.Session.User != nil {
		t.Error("unauthenticated session must not carry a user")
	}
}

func TestNormalizeReservations(t *testing.T) {
	cat := testCatalog(t)
	blob := []byte(`{"reservations": [
		{"id": "rsv-1", "tableId": "t-1", "date": "2026-02-10", "time": "19:00", "status": "active"},
		{"id": "", "tableId": "t-1"},
		{"id": "rsv-2", "tableId": ""},
		{"id": "rsv-3", "tableId": "t-2", "status": "what"}
	]}`)
	st := Normalize(blob, cat, testNow, seqID())

	if len(st.Reservations) != 2 {
		t.Fatalf("reservations = %d, want 2 (broken entries skipped)", len(st.Reservations))
	}
	if st.Reservations[1].Status != model.ReservationCancelled {
		t.Errorf("unknown status = %s, want coerced to cancelled", st.Reservations[1].Status)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	cat := testCatalog(t)
	blob := []byte(`{
		"session": {"authenticated": true},
		"tables": [{"id": "t-1", "number": 1, "guests": [{"id": "g-1", "number": 1}]}],
		"orders": {"t-1": {"guests": {"g-1": {"items": [{"dishId": "d1", "qty": 2}]}}}},
		"reservations": [{"id": "rsv-1", "tableId": "t-1", "date": "2026-02-10", "time": "19:00", "status": "active"}]
	}`)
	ids := seqID()
	first := Normalize(blob, cat, testNow, ids)

	encoded, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second := Normalize(encoded, cat, testNow.Add(1), ids)
	if !reflect.DeepEqual(first, second) {
		t.Error("normalizing a normalized tree must not change it")
	}
}
