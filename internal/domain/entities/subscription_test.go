package entities

import (
	"testing"
	"time"
)

func TestPlanType_Days(t *testing.T) {
	if got := PlanTypeDaily.Days(); got != 1 {
		t.Fatalf("expected 1 got %d", got)
	}
	if got := PlanTypeHalfMonthly.Days(); got != 15 {
		t.Fatalf("expected 15 got %d", got)
	}
	if got := PlanTypeMonthly.Days(); got != 30 {
		t.Fatalf("expected 30 got %d", got)
	}
	if got := PlanType("weekly").Days(); got != 1 {
		t.Fatalf("unknown plan should bill as daily, got %d", got)
	}
}

func TestPlanType_Valid(t *testing.T) {
	for _, p := range []PlanType{PlanTypeDaily, PlanTypeHalfMonthly, PlanTypeMonthly} {
		if !p.Valid() {
			t.Fatalf("expected %s to be valid", p)
		}
	}
	if PlanType("weekly").Valid() {
		t.Fatal("expected weekly to be invalid")
	}
	if PlanType("").Valid() {
		t.Fatal("expected empty plan to be invalid")
	}
}

func TestSellerSubscription_FreePeriodDaysLeft(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	end := now.AddDate(0, 0, 10)

	sub := &SellerSubscription{IsInFreePeriod: true, FreePeriodEnd: &end}
	if got := sub.FreePeriodDaysLeft(now); got != 10 {
		t.Fatalf("expected 10 got %d", got)
	}

	// Partial days round up.
	if got := sub.FreePeriodDaysLeft(now.Add(-time.Hour)); got != 11 {
		t.Fatalf("expected 11 got %d", got)
	}

	// Exactly at the end, and beyond it.
	if got := sub.FreePeriodDaysLeft(end); got != 0 {
		t.Fatalf("expected 0 at end got %d", got)
	}
	if got := sub.FreePeriodDaysLeft(end.Add(time.Hour)); got != 0 {
		t.Fatalf("expected 0 past end got %d", got)
	}

	inactive := &SellerSubscription{IsInFreePeriod: false, FreePeriodEnd: &end}
	if got := inactive.FreePeriodDaysLeft(now); got != 0 {
		t.Fatalf("expected 0 when not in free period got %d", got)
	}

	unbounded := &SellerSubscription{IsInFreePeriod: true}
	if got := unbounded.FreePeriodDaysLeft(now); got != 0 {
		t.Fatalf("expected 0 without an end date got %d", got)
	}
}
