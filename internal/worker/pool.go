// Package worker spreads perft work over a fixed set of goroutines.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// WorkItem is one root move to count below.
type WorkItem struct {
	State engine.GameState // position before Move; each item owns its copy
	Move  chess.Move
	Depth int // plies remaining after Move
	Index int // original index for tracking
}

// ProcessResult is the outcome of one WorkItem.
type ProcessResult struct {
	Move  chess.Move
	Index int
	Nodes uint64
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items on a fixed number of
// goroutines. Once its context is done, queued items are drained
// without being processed and Submit refuses new ones.
type Pool struct {
	ctx         context.Context
	numWorkers  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	processed   atomic.Int64
}

// NewPool creates a new worker pool with the specified number of workers and buffer size.
func NewPool(ctx context.Context, numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Pool{
		ctx:         ctx,
		numWorkers:  numWorkers,
		workChan:    make(chan WorkItem, bufferSize),
		resultChan:  make(chan ProcessResult, bufferSize),
		processFunc: processFunc,
	}
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.ctx.Err() != nil {
			continue // drain without processing
		}
		p.resultChan <- p.processFunc(item)
		p.processed.Add(1)
	}
}

// Submit queues a work item, blocking while the buffer is full.
// It returns false, without queueing, once the pool's context is done.
func (p *Pool) Submit(item WorkItem) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once every worker is done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Processed returns how many items have been processed so far.
func (p *Pool) Processed() int64 {
	return p.processed.Load()
}
