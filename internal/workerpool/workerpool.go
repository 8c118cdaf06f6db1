/*
 * MIT License
 *
 * Copyright (c) 2024-2026 Janus Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package workerpool provides the fixed-size execution substrate the actor
// system runs every mailbox processing burst on.
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/Workiva/go-datastructures/queue"
	"go.uber.org/atomic"

	"github.com/janus-actors/janus/errors"
)

// drainInterval is how often Stop polls the task queue while draining.
const drainInterval = 10 * time.Millisecond

// Option is the interface that applies a Pool option.
type Option interface {
	// Apply sets the Option value of a Pool.
	Apply(pool *Pool)
}

// enforce compilation error
var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(pool *Pool)

// Apply applies the Pool's option
func (f OptionFunc) Apply(pool *Pool) {
	f(pool)
}

// WithPoolSize sets the number of workers
func WithPoolSize(size int) Option {
	return OptionFunc(func(pool *Pool) {
		if size > 0 {
			pool.size = size
		}
	})
}

// Pool runs submitted tasks on a fixed set of workers.
//
// Submit never blocks: tasks are buffered on an unbounded queue and picked up
// by the next free worker. A task that blocks (e.g. a handler awaiting a
// nested Ask) occupies its worker for the duration, so the pool size bounds
// the number of simultaneously blocked handlers.
type Pool struct {
	size    int
	tasks   *queue.Queue
	wg      sync.WaitGroup
	started *atomic.Bool
	stopped *atomic.Bool
}

// New creates a worker pool. The default size is the number of usable CPUs.
func New(opts ...Option) *Pool {
	pool := &Pool{
		size:    runtime.GOMAXPROCS(0),
		tasks:   queue.New(64),
		started: atomic.NewBool(false),
		stopped: atomic.NewBool(false),
	}

	for _, opt := range opts {
		opt.Apply(pool)
	}

	return pool
}

// Size returns the number of workers
func (p *Pool) Size() int {
	return p.size
}

// Start spins up the workers. It is safe to call Start multiple times.
func (p *Pool) Start() {
	if !p.started.CompareAndSwap(false, true) {
		return
	}

	p.wg.Add(p.size)
	for range p.size {
		go p.work()
	}
}

// Submit adds a task for execution by the next free worker.
func (p *Pool) Submit(task func()) error {
	if !p.started.Load() || p.stopped.Load() {
		return errors.ErrSystemShuttingDown
	}
	return p.tasks.Put(task)
}

// Stop prevents new submissions, waits for the queued work to drain within
// the bounds of the given context, then tears the workers down.
func (p *Pool) Stop(ctx context.Context) error {
	if !p.started.Load() || p.stopped.Swap(true) {
		return nil
	}

	// cooperative drain
	ticker := time.NewTicker(drainInterval)
	defer ticker.Stop()
drain:
	for p.tasks.Len() > 0 {
		select {
		case <-ctx.Done():
			break drain
		case <-ticker.C:
		}
	}

	// unblock the workers waiting on the queue
	p.tasks.Dispose()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// work is the main worker loop.
func (p *Pool) work() {
	defer p.wg.Done()
	for {
		items, err := p.tasks.Get(1)
		if err != nil {
			// queue disposed, worker exits
			return
		}
		for _, item := range items {
			if task, ok := item.(func()); ok {
				task()
			}
		}
	}
}
