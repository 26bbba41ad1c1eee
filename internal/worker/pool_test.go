package worker

import (
	"context"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// rootItems returns one work item per legal move of the initial position.
func rootItems(depth int) []WorkItem {
	state := engine.NewGame()
	var items []WorkItem
	for i, m := range engine.AllLegalMoves(&state) {
		items = append(items, WorkItem{State: state, Move: m, Depth: depth, Index: i})
	}
	return items
}

// collect drains the result channel, keyed by index.
func collect(pool *Pool) map[int]ProcessResult {
	results := make(map[int]ProcessResult)
	for res := range pool.Results() {
		results[res.Index] = res
	}
	return results
}

func TestPool_ProcessesEveryItem(t *testing.T) {
	items := rootItems(1)
	pool := NewPool(context.Background(), 4, len(items), PerftItem)
	pool.Start()

	for _, it := range items {
		testutil.AssertTrue(t, pool.Submit(it), "Submit(%d)", it.Index)
	}
	go pool.Close()

	results := collect(pool)
	testutil.AssertEqual(t, len(results), 20)

	var total uint64
	for i, it := range items {
		testutil.AssertEqual(t, results[i].Move, it.Move, "index %d", i)
		total += results[i].Nodes
	}
	testutil.AssertEqual(t, total, uint64(400))
	testutil.AssertEqual(t, pool.Processed(), int64(20))
}

func TestPool_CancelledBeforeSubmit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := NewPool(ctx, 2, 4, PerftItem)
	pool.Start()
	testutil.AssertFalse(t, pool.Submit(rootItems(0)[0]), "Submit after cancel")
	go pool.Close()

	testutil.AssertEqual(t, len(collect(pool)), 0)
	testutil.AssertEqual(t, pool.Processed(), int64(0))
}

func TestPool_CancelDrainsQueue(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cancelling := func(item WorkItem) ProcessResult {
		cancel()
		return ProcessResult{Move: item.Move, Index: item.Index}
	}

	items := rootItems(0)
	pool := NewPool(ctx, 1, len(items), cancelling)
	for _, it := range items {
		pool.Submit(it)
	}

	// One worker: the first item cancels, the rest are drained unprocessed.
	pool.Start()
	go pool.Close()

	results := collect(pool)
	testutil.AssertEqual(t, len(results), 1)
	testutil.AssertEqual(t, pool.Processed(), int64(1))
	testutil.AssertFalse(t, pool.Submit(items[0]), "Submit after cancel")
}

func TestPool_NumWorkers(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"valid workers", 4, 4},
		{"minimum workers", 1, 1},
		{"zero defaults to 1", 0, 1},
		{"negative defaults to 1", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(context.Background(), tt.input, 10, PerftItem)
			if got := pool.NumWorkers(); got != tt.expected {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.expected)
			}
		})
	}
}

// TestPool_NoRace is designed to be run with -race flag.
func TestPool_NoRace(t *testing.T) {
	items := rootItems(1)
	pool := NewPool(context.Background(), 8, 1, PerftItem)
	pool.Start()

	go func() {
		for _, it := range items {
			pool.Submit(it)
		}
		pool.Close()
	}()

	results := collect(pool)
	testutil.AssertEqual(t, len(results), len(items))
	for i := range items {
		testutil.AssertEqual(t, results[i].Nodes, uint64(20), "index %d", i)
	}
}
