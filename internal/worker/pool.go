// Package worker evaluates batches of FEN positions on a fixed set of
// goroutines.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/Tubbz-alt/ChessGame-3/internal/engine"
)

// Position is one FEN of a batch.
type Position struct {
	FEN   string
	Index int // slot in the batch, used to restore input order
}

// Result is the game loaded from a Position. Game is nil and Err set when
// the FEN was rejected.
type Result struct {
	FEN   string
	Index int
	Game  *engine.Game
	Err   error
}

// EvalFunc turns a position into its result. It must be safe to call from
// several goroutines at once.
type EvalFunc func(pos Position) Result

// Pool feeds submitted positions to an EvalFunc running on numWorkers
// goroutines. Results arrive in completion order, not submission order.
type Pool struct {
	numWorkers int
	bufferSize int
	positions  chan Position
	results    chan Result
	eval       EvalFunc
	wg         sync.WaitGroup
	stopped    atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets how many positions are evaluated concurrently. Values
// below one are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets how many positions and results may be queued.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool returns an idle pool around eval. The defaults are one worker and
// room for 10 queued positions.
func NewPool(eval EvalFunc, opts ...PoolOption) *Pool {
	p := &Pool{numWorkers: 1, bufferSize: 10, eval: eval}
	for _, opt := range opts {
		opt(p)
	}
	p.positions = make(chan Position, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.numWorkers)
	for i := 0; i < p.numWorkers; i++ {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for pos := range p.positions {
		// Keep receiving after Stop so Submit never blocks forever.
		if p.stopped.Load() {
			continue
		}
		p.results <- p.eval(pos)
	}
}

// Submit queues a position, blocking while the queue is full.
func (p *Pool) Submit(pos Position) {
	p.positions <- pos
}

// Stop abandons the batch: positions still queued are dropped unevaluated.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether the batch was abandoned.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends the batch. It waits for in-flight evaluations and then closes
// the Results channel, so a reader ranging over Results terminates.
func (p *Pool) Close() {
	close(p.positions)
	p.wg.Wait()
	close(p.results)
}

// Results delivers one Result per evaluated position.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of concurrent evaluations.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
