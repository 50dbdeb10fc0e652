package models

import (
	"sync"
	"testing"
	"time"
)

func TestBeforeCreateAssignsIDAndDate(t *testing.T) {
	b := Booking{Name: "Alice", Destination: "Paris"}
	before := time.Now().UTC()

	if err := b.BeforeCreate(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ID == "" {
		t.Fatalf("expected id to be assigned")
	}
	if b.Date.Before(before) {
		t.Fatalf("date %v is older than %v", b.Date, before)
	}
}

func TestBeforeCreateKeepsAssignedValues(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	b := Booking{ID: "c0ffee00-0000-4000-8000-000000000000", Date: fixed}

	if err := b.BeforeCreate(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ID != "c0ffee00-0000-4000-8000-000000000000" || !b.Date.Equal(fixed) {
		t.Fatalf("hook overwrote existing values: %+v", b)
	}
}

func TestBeforeCreateUniqueUnderConcurrency(t *testing.T) {
	const n = 200
	ids := make([]string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b := Booking{Name: "Same", Email: "same@x.com", Phone: "1", Destination: "Rome"}
			_ = b.BeforeCreate(nil)
			ids[i] = b.ID
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestBeforeCreateDateFitsStoragePrecision(t *testing.T) {
	for i := 0; i < 20; i++ {
		var b Booking
		if err := b.BeforeCreate(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Date.Nanosecond()%1000 != 0 {
			t.Fatalf("date %v has sub-microsecond digits", b.Date)
		}
	}
}
