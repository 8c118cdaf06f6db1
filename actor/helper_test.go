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

package actor

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/atomic"

	"github.com/janus-actors/janus/log"
)

// replyTimeout bounds every Ask in the tests.
const replyTimeout = time.Second

var errSimulated = errors.New("simulated failure")

type greet struct {
	name string
}

type greeted struct {
	message string
}

// greeter counts greetings across messages. Its counter lives on the
// instance, so a restart resets it.
type greeter struct {
	count int
}

func (g *greeter) PreStart(ctx *Context) error {
	On(ctx, func(message *greet, _ *Context) (*greeted, error) {
		g.count++
		return &greeted{message: fmt.Sprintf("Hello, %s! (count: %d)", message.name, g.count)}, nil
	})
	return nil
}

type ping struct{}

type pong struct{}

type boom struct{}

// faultyActor answers ping and fails on boom. Lifecycle transitions are
// recorded on shared counters so tests can observe restarts and stops.
type faultyActor struct {
	starts   *atomic.Int64
	stops    *atomic.Int64
	panicked bool
}

func newFaultyActor(starts, stops *atomic.Int64) Factory {
	return func() Actor {
		return &faultyActor{starts: starts, stops: stops}
	}
}

func (f *faultyActor) PreStart(ctx *Context) error {
	f.starts.Inc()
	On(ctx, func(*ping, *Context) (*pong, error) {
		return new(pong), nil
	})
	On(ctx, func(*boom, *Context) (*pong, error) {
		if f.panicked {
			panic("simulated panic")
		}
		return nil, errSimulated
	})
	return nil
}

func (f *faultyActor) PostStop(*Context) {
	f.stops.Inc()
}

// discardActor handles nothing.
type discardActor struct{}

func (*discardActor) PreStart(*Context) error {
	return nil
}

func newTestSystem(name string, opts ...Option) (ActorSystem, error) {
	opts = append([]Option{WithLogger(log.DiscardLogger)}, opts...)
	return NewActorSystem(name, opts...)
}

// eventually polls the condition until it holds or the timeout elapses.
func eventually(timeout time.Duration, condition func() bool) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return condition()
}
