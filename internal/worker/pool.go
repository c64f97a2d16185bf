// Package worker provides a worker pool for parallel position analysis.
package worker

import (
	"sync"
	"sync/atomic"

	"chessd/internal/chess"
)

// Task is one unit of analysis: a position to explore, the move that led
// to it, and how deep to search below it.
type Task struct {
	Board *chess.Board
	Move  chess.Move
	Depth int
	Index int // Original index for tracking
}

// TaskResult carries the node count for one completed task.
type TaskResult struct {
	Move  chess.Move
	Index int
	Nodes uint64
	Error error
}

// ProcessFunc is the function signature for processing a task.
type ProcessFunc func(task Task) TaskResult

// Pool manages a pool of workers for parallel position analysis.
type Pool struct {
	numWorkers  int
	bufferSize  int
	taskChan    chan Task
	resultChan  chan TaskResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool with the specified number of workers and buffer size.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Pool{
		numWorkers:  numWorkers,
		bufferSize:  bufferSize,
		taskChan:    make(chan Task, bufferSize),
		resultChan:  make(chan TaskResult, bufferSize),
		processFunc: processFunc,
	}
}

// NewPoolWithOptions creates a new worker pool using functional options.
// processFunc is required; other settings have sensible defaults.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.taskChan = make(chan Task, p.bufferSize)
	p.resultChan = make(chan TaskResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes tasks from the task channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for task := range p.taskChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(task)
	}
}

// Submit submits a task for processing.
// This may block if the task channel buffer is full.
func (p *Pool) Submit(task Task) {
	p.taskChan <- task
}

// TrySubmit attempts to submit a task without blocking.
// Returns false if the task channel is full or the pool is stopped.
func (p *Pool) TrySubmit(task Task) bool {
	if atomic.LoadInt32(&p.stopFlag) != 0 {
		return false
	}
	select {
	case p.taskChan <- task:
		return true
	default:
		return false
	}
}

// Stop signals workers to stop processing new tasks.
// Tasks already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the task channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.taskChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading completed tasks.
func (p *Pool) Results() <-chan TaskResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
