package platform

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// scriptPages builds a PageFunc serving total items in pages of size,
// counting how many fetches were made.
func scriptPages(total, size int, calls *int) PageFunc[int] {
	return func(_ context.Context, cursor string) ([]int, string, error) {
		*calls++
		start := 0
		if cursor != "" {
			fmt.Sscanf(cursor, "%d", &start)
		}
		end := min(start+size, total)
		items := make([]int, 0, end-start)
		for i := start; i < end; i++ {
			items = append(items, i)
		}
		next := ""
		if end < total {
			next = fmt.Sprintf("%d", end)
		}
		return items, next, nil
	}
}

func TestCollectExhaustsListing(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		pageSize  int
		ceiling   int
		wantItems int
		wantCalls int
	}{
		{"empty listing", 0, 25, 1000, 0, 1},
		{"single partial page", 10, 25, 1000, 10, 1},
		{"exact page boundary", 100, 25, 1000, 100, 4},
		{"uneven last page", 110, 25, 1000, 110, 5},
		{"ceiling cuts walk short", 5000, 100, 1000, 1000, 10},
		{"ceiling equals total", 500, 100, 500, 500, 5},
		{"ceiling mid page", 130, 100, 150, 130, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			items, err := Collect(context.Background(), scriptPages(tt.total, tt.pageSize, &calls), tt.ceiling)
			if err != nil {
				t.Fatalf("Collect: %v", err)
			}
			if len(items) != tt.wantItems {
				t.Errorf("items = %d, want %d", len(items), tt.wantItems)
			}
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
		})
	}
}

func TestCollectPreservesCrossPageOrder(t *testing.T) {
	calls := 0
	items, err := Collect(context.Background(), scriptPages(75, 30, &calls), 1000)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	for i, v := range items {
		if v != i {
			t.Fatalf("items[%d] = %d, order not preserved", i, v)
		}
	}
}

func TestCollectCeilingTrimsOverfullPage(t *testing.T) {
	// A ceiling that lands inside a page must trim the page, never
	// return more than the ceiling.
	calls := 0
	items, err := Collect(context.Background(), scriptPages(1000, 100, &calls), 250)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(items) != 250 {
		t.Errorf("items = %d, want exactly 250", len(items))
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestCollectErrorDiscardsPartials(t *testing.T) {
	boom := errors.New("page fetch failed")
	calls := 0
	fetch := func(_ context.Context, cursor string) ([]int, string, error) {
		calls++
		if cursor != "" {
			return nil, "", boom
		}
		return []int{1, 2, 3}, "more", nil
	}

	items, err := Collect(context.Background(), PageFunc[int](fetch), 1000)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the fetch error", err)
	}
	if items != nil {
		t.Errorf("items = %v, want nil: partial results must not leak", items)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestCollectFirstCallError(t *testing.T) {
	boom := errors.New("unreachable")
	fetch := func(_ context.Context, _ string) ([]int, string, error) {
		return nil, "", boom
	}
	items, err := Collect(context.Background(), PageFunc[int](fetch), 1000)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the fetch error", err)
	}
	if len(items) != 0 {
		t.Errorf("items = %v, want none", items)
	}
}

func TestNextCursor(t *testing.T) {
	tests := []struct {
		name string
		href string
		want string
	}{
		{"no next page", "", ""},
		{"token in query", "https://acme.lumina.cloud/api/v1/spaces?limit=100&next=abc123", "abc123"},
		{"no token parameter", "https://acme.lumina.cloud/api/v1/spaces?page=2", "https://acme.lumina.cloud/api/v1/spaces?page=2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextCursor(tt.href); got != tt.want {
				t.Errorf("nextCursor(%q) = %q, want %q", tt.href, got, tt.want)
			}
		})
	}
}
