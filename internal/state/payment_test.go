package state

import (
	"errors"
	"testing"

	"github.com/moodfood/restaurant-floor/internal/model"
)

func TestBillLifecycle(t *testing.T) {
	s := newTestStore(t)
	g, _ := s.SeatGuest("t-1")
	_ = s.AddItem("t-1", g.ID, "d1")

	if err := s.MakeBill("t-1"); err != nil {
		t.Fatalf("MakeBill: %v", err)
	}
	p := s.Snapshot().Orders["t-1"].Payment
	if p.Status != model.PaymentStatusAwaiting || p.CreatedAt == nil {
		t.Fatalf("payment after bill = %+v, want awaiting with createdAt", p)
	}

	if err := s.MarkPaid("t-1"); err != nil {
		t.Fatalf("MarkPaid: %v", err)
	}
	p = s.Snapshot().Orders["t-1"].Payment
	if p.Status != model.PaymentStatusPaid || p.PaidAt == nil {
		t.Fatalf("payment after paid = %+v, want paid with paidAt", p)
	}

	// Paying twice fails: the bill is no longer awaiting.
	if err := s.MarkPaid("t-1"); !errors.Is(err, ErrNotAwaiting) {
		t.Errorf("second MarkPaid: err = %v, want ErrNotAwaiting", err)
	}
}

func TestMakeBillRequiresNonEmptyOrder(t *testing.T) {
	s := newTestStore(t)

	if err := s.MakeBill("t-1"); !errors.Is(err, ErrEmptyBill) {
		t.Errorf("no order: err = %v, want ErrEmptyBill", err)
	}
	_, _ = s.SeatGuest("t-1")
	if err := s.MakeBill("t-1"); !errors.Is(err, ErrEmptyBill) {
		t.Errorf("empty order: err = %v, want ErrEmptyBill", err)
	}
}

func TestMarkPaidWithoutBill(t *testing.T) {
	s := newTestStore(t)
	g, _ := s.SeatGuest("t-1")
	_ = s.AddItem("t-1", g.ID, "d1")

	if err := s.MarkPaid("t-1"); !errors.Is(err, ErrNotAwaiting) {
		t.Errorf("unbilled order: err = %v, want ErrNotAwaiting", err)
	}
	if err := s.MarkPaid("t-9"); !errors.Is(err, ErrNotAwaiting) {
		t.Errorf("no order: err = %v, want ErrNotAwaiting", err)
	}
}

func TestSetSplitMode(t *testing.T) {
	s := newTestStore(t)
	_, _ = s.SeatGuest("t-1")

	if err := s.SetSplitMode("t-1", model.SplitEvenly); err != nil {
		t.Fatalf("SetSplitMode: %v", err)
	}
	if got := s.Snapshot().Orders["t-1"].Payment.SplitMode; got != model.SplitEvenly {
		t.Errorf("split mode = %s, want evenly", got)
	}
	// Unknown mode and missing order are silent no-ops.
	if err := s.SetSplitMode("t-1", "thirds"); err != nil {
		t.Errorf("bad mode: %v", err)
	}
	if got := s.Snapshot().Orders["t-1"].Payment.SplitMode; got != model.SplitEvenly {
		t.Errorf("split mode after bad value = %s, want evenly", got)
	}
	if err := s.SetSplitMode("t-8", model.SplitEvenly); err != nil {
		t.Errorf("no order: %v", err)
	}
}
