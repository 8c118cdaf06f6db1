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
	"context"
	"reflect"
)

// ActorID uniquely identifies a live actor cell within its system. IDs are
// allocated from a monotonically increasing counter and never reused, so two
// successive actors at the same path are still distinguishable.
type ActorID uint64

// Factory produces a fresh actor instance. The same factory that spawned an
// actor is invoked again on every restart, which is what guarantees restarts
// discard all accumulated state.
type Factory func() Actor

// Actor is the contract every actor must implement.
//
// PreStart runs before the actor processes any message. It is where the actor
// registers its message handlers with On and spawns its initial children. A
// PreStart failure aborts the spawn (or degrades a restart to a stop).
//
// Actors that need teardown hooks additionally implement PreStopper and/or
// PostStopper.
type Actor interface {
	// PreStart is the pre-starting hook of the actor.
	PreStart(ctx *Context) error
}

// PreStopper is implemented by actors that need to run logic right before
// shutdown begins, while the actor is still registered.
type PreStopper interface {
	PreStop(ctx *Context)
}

// PostStopper is implemented by actors that need to run logic after the actor
// has fully stopped and its children are gone.
type PostStopper interface {
	PostStop(ctx *Context)
}

// handlerFunc is the untyped form every registered handler is adapted to.
type handlerFunc func(message any, ctx *Context) (any, error)

// On registers a typed message handler on the given actor context. It is
// meant to be called from PreStart. The last registration for a given message
// type wins.
//
// The handler runs on the actor's processing loop with the exclusivity
// guarantee: no two handlers of the same actor ever run concurrently.
func On[M any, R any](ctx *Context, handler func(message M, ctx *Context) (R, error)) {
	var zero M
	msgType := reflect.TypeOf(zero)
	if msgType == nil {
		// M is an interface type; key by its interface descriptor
		msgType = reflect.TypeOf((*M)(nil)).Elem()
	}
	ctx.setHandler(msgType, func(message any, ctx *Context) (any, error) {
		typed, ok := message.(M)
		if !ok {
			var zeroR R
			return zeroR, nil
		}
		return handler(typed, ctx)
	})
}

// Ask sends a request to the given actor and awaits a response of type R
// within the bounds of the given context. It is the typed counterpart of
// PID.Ask.
func Ask[R any](ctx context.Context, to *PID, message any) (R, error) {
	var zero R
	result, err := to.Ask(ctx, message)
	if err != nil {
		return zero, err
	}
	typed, ok := result.(R)
	if !ok {
		return zero, nil
	}
	return typed, nil
}

// rootGuardian sits at the root of the actor tree. It handles no user
// messages; its only job is to parent the top-level actors and absorb
// escalated failures that reached the top of the tree.
type rootGuardian struct{}

// enforce compilation error
var _ Actor = (*rootGuardian)(nil)

func (*rootGuardian) PreStart(*Context) error {
	return nil
}
