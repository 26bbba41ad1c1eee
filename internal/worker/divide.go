package worker

import (
	"context"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// PerftItem counts the leaves below a work item's root move.
func PerftItem(item WorkItem) ProcessResult {
	return ProcessResult{
		Move:  item.Move,
		Index: item.Index,
		Nodes: engine.PerftAfter(&item.State, item.Move, item.Depth),
	}
}

// Divide is engine.Divide with the root moves shared across workers.
// Entries come back in the same order engine.Divide produces. If ctx is
// cancelled, remaining moves are skipped and ctx.Err() is returned.
func Divide(ctx context.Context, state *engine.GameState, depth, workers int) ([]engine.DivideEntry, error) {
	if depth <= 0 {
		return nil, nil
	}

	moves := engine.AllLegalMoves(state)
	pool := NewPool(ctx, workers, len(moves), PerftItem)
	pool.Start()

	go func() {
		for i, m := range moves {
			if !pool.Submit(WorkItem{State: *state, Move: m, Depth: depth - 1, Index: i}) {
				break
			}
		}
		pool.Close()
	}()

	entries := make([]engine.DivideEntry, len(moves))
	for res := range pool.Results() {
		entries[res.Index] = engine.DivideEntry{Move: res.Move, Nodes: res.Nodes}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Total sums the node counts of a divide.
func Total(entries []engine.DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}
