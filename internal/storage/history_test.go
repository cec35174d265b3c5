package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/hammamikhairi/ottocalc/internal/domain"
	"github.com/hammamikhairi/ottocalc/internal/logger"
)

func TestMemoryHistoryAppendList(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	h := NewMemoryHistory(log)
	ctx := context.Background()

	if entries, err := h.List(ctx); err != nil || len(entries) != 0 {
		t.Fatalf("expected empty history, got %d entries (%v)", len(entries), err)
	}

	for _, expr := range []string{"1+1", "2*3", "2*3", "sqrt(16)"} {
		if err := h.Append(ctx, domain.HistoryEntry{Expr: expr, SubmittedAt: time.Now()}); err != nil {
			t.Fatalf("append %s: %v", expr, err)
		}
	}

	entries, err := h.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries (duplicate collapsed), got %d", len(entries))
	}
	if entries[0].Expr != "1+1" || entries[2].Expr != "sqrt(16)" {
		t.Fatalf("unexpected order: %+v", entries)
	}

	// List returns a copy.
	entries[0].Expr = "mutated"
	again, _ := h.List(ctx)
	if again[0].Expr != "1+1" {
		t.Fatal("List leaked internal storage")
	}

	// Clear.
	if err := h.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if entries, _ := h.List(ctx); len(entries) != 0 {
		t.Fatalf("expected empty after clear, got %d", len(entries))
	}
}

func TestMemoryHistoryCapacity(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	h := NewMemoryHistory(log, WithCapacity(3))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := h.Append(ctx, domain.HistoryEntry{Expr: fmt.Sprintf("%d+1", i)}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	entries, _ := h.List(ctx)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Expr != "2+1" || entries[2].Expr != "4+1" {
		t.Fatalf("expected oldest evicted, got %+v", entries)
	}
}
