// Package worker provides a worker pool for evaluating positions in parallel.
//
// Each work item carries its own input text, so every worker builds a private
// board: the rules engine mutates boards while it searches for legal moves
// and boards are never shared between goroutines.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// maxBuffer caps the channel buffers of a pool.
const maxBuffer = 100

// WorkItem represents one input line to be evaluated.
type WorkItem struct {
	Input string // FEN, optionally followed by moves
	Line  int    // 1-based line number in the input
	Index int    // Position in the submitted batch
}

// ProcessResult represents the result of evaluating a position.
type ProcessResult struct {
	Item     WorkItem
	Board    *chess.Board // Final position (nil when the input could not be parsed)
	Analysis interface{}  // Opaque analysis payload; typed by consumer
	Err      error
}

// ProcessFunc evaluates one work item. It must not share state with other
// calls.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc on a fixed number of goroutines. Cancelling the
// pool's context, or calling Stop, makes workers abandon the remaining
// items.
type Pool struct {
	numWorkers int
	items      chan WorkItem
	results    chan ProcessResult
	process    ProcessFunc

	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	processed atomic.Int64
}

// NewPool creates a pool of numWorkers goroutines whose channels hold
// bufferSize entries, at most 100. Values below 1 are raised to 1.
func NewPool(ctx context.Context, numWorkers, bufferSize int, process ProcessFunc) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	if bufferSize > maxBuffer {
		bufferSize = maxBuffer
	}
	inner, cancel := context.WithCancel(ctx)
	return &Pool{
		numWorkers: numWorkers,
		items:      make(chan WorkItem, bufferSize),
		results:    make(chan ProcessResult, bufferSize),
		process:    process,
		parent:     ctx,
		ctx:        inner,
		cancel:     cancel,
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.numWorkers)
	for i := 0; i < p.numWorkers; i++ {
		go p.work()
	}
}

func (p *Pool) work() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case item, ok := <-p.items:
			if !ok {
				return
			}
			res := p.process(item)
			p.processed.Add(1)
			select {
			case p.results <- res:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues an item, blocking while the buffer is full. It returns
// false, without queueing, once the pool has been stopped.
func (p *Pool) Submit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.items <- item:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// Stop tells the workers to abandon the remaining items.
func (p *Pool) Stop() {
	p.cancel()
}

// IsStopped reports whether Stop was called or the context was cancelled.
func (p *Pool) IsStopped() bool {
	return p.ctx.Err() != nil
}

// Close marks the end of submission, waits for the workers, and closes the
// result channel. No Submit may run concurrently with or after Close.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
	p.Stop()
}

// Results returns the channel of processed items, closed by Close.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Processed returns how many items the workers have evaluated so far.
func (p *Pool) Processed() int64 {
	return p.processed.Load()
}

// Run starts the pool, evaluates items and closes the pool, returning the
// results indexed like items; each item's Index must be its position in
// the slice. A pool runs at most once. When the pool is stopped or its
// context cancelled before every item is back, the missing entries are
// left zero and the cancellation error is returned.
func (p *Pool) Run(items []WorkItem) ([]ProcessResult, error) {
	p.Start()

	go func() {
		defer p.Close()
		for _, item := range items {
			if !p.Submit(item) {
				return
			}
		}
	}()

	results := make([]ProcessResult, len(items))
	received := 0
	for res := range p.Results() {
		results[res.Item.Index] = res
		received++
	}
	if received < len(items) {
		if err := p.parent.Err(); err != nil {
			return results, err
		}
		return results, context.Canceled
	}
	return results, nil
}
