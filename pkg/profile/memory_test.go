package profile

import (
	"context"
	"testing"
	"time"
)

var epoch = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func TestMemoryStoreOrdering(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(
		Detail{Item: Item{ID: "c", Name: "Cee", CreatedAt: epoch.Add(2 * time.Hour)}},
		Detail{Item: Item{ID: "a", Name: "Ay", CreatedAt: epoch}},
		Detail{Item: Item{ID: "b", Name: "Bee", CreatedAt: epoch.Add(time.Hour)}},
	)

	items, err := s.Items(ctx)
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	var ids []string
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	if got := ids; len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("Items() order = %v, want [a b c]", got)
	}

	n, _ := s.Count(ctx)
	if n != 3 {
		t.Errorf("Count() = %d, want 3", n)
	}
}

func TestMemoryStoreDetail(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(Synthetic(5, 1, epoch)...)
	items, _ := s.Items(ctx)

	d, err := s.Detail(ctx, items[2].ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if d == nil || d.Name != items[2].Name {
		t.Fatalf("Detail() = %+v, want %q", d, items[2].Name)
	}

	missing, err := s.Detail(ctx, "nope")
	if err != nil || missing != nil {
		t.Errorf("Detail(missing) = %v, %v, want nil, nil", missing, err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := s.Detail(cancelled, items[0].ID); err == nil {
		t.Error("Detail with cancelled context should fail")
	}
}

func TestMemoryStoreInsertAndTruncate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(Synthetic(3, 7, epoch)...)

	more := Synthetic(5, 7, epoch)
	more[0].Bio = "updated"
	if err := s.Insert(ctx, more); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if n, _ := s.Count(ctx); n != 5 {
		t.Errorf("Count() after overlapping insert = %d, want 5", n)
	}
	if d, _ := s.Detail(ctx, more[0].ID); d == nil || d.Bio != "updated" {
		t.Errorf("Insert should replace existing record, got %+v", d)
	}

	s.Truncate(2)
	if n, _ := s.Count(ctx); n != 3 {
		t.Errorf("Count() after Truncate(2) = %d, want 3", n)
	}
	if d, _ := s.Detail(ctx, more[4].ID); d != nil {
		t.Error("truncated profile should be gone")
	}

	s.Truncate(10)
	if n, _ := s.Count(ctx); n != 0 {
		t.Errorf("Count() after over-truncate = %d, want 0", n)
	}
}

func TestSynthetic(t *testing.T) {
	a := Synthetic(10, 42, epoch)
	b := Synthetic(10, 42, epoch)
	c := Synthetic(10, 43, epoch)

	if len(a) != 10 {
		t.Fatalf("len = %d, want 10", len(a))
	}
	seen := make(map[string]bool)
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Name != b[i].Name {
			t.Errorf("profile %d differs between runs with the same seed", i)
		}
		if a[i].ID == c[i].ID {
			t.Errorf("profile %d has the same id under a different seed", i)
		}
		if seen[a[i].ID] {
			t.Errorf("duplicate id %s", a[i].ID)
		}
		seen[a[i].ID] = true
		if i > 0 && !a[i].CreatedAt.After(a[i-1].CreatedAt) {
			t.Errorf("profile %d not created after profile %d", i, i-1)
		}
	}

	if got := Synthetic(0, 1, epoch); got != nil {
		t.Errorf("Synthetic(0) = %v, want nil", got)
	}
}
