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
	"sync"
	"time"

	"github.com/janus-actors/janus/log"
)

// Context is the actor's window into the runtime. It is handed to PreStart,
// to every message handler and to the stop hooks. A Context is bound to one
// actor cell for that cell's whole life, across restarts.
//
// Handler registrations and spawned children are wiped on restart; the fresh
// instance's PreStart rebuilds them.
type Context struct {
	pid    *PID
	system *actorSystem

	handlersMu sync.RWMutex
	handlers   map[reflect.Type]handlerFunc

	childrenMu sync.RWMutex
	children   map[string]*PID

	extensionsMu sync.RWMutex
	extensions   map[string]any
}

// newContext creates a Context bound to the given cell.
func newContext(pid *PID, system *actorSystem) *Context {
	return &Context{
		pid:      pid,
		system:   system,
		handlers:   make(map[reflect.Type]handlerFunc),
		children:   make(map[string]*PID),
		extensions: make(map[string]any),
	}
}

// Self returns the reference of the actor the context is bound to.
func (c *Context) Self() *PID {
	return c.pid
}

// Parent returns the reference of the actor's parent, nil for the root
// guardian.
func (c *Context) Parent() *PID {
	return c.pid.parent
}

// ActorSystem returns the actor system the actor belongs to.
func (c *Context) ActorSystem() ActorSystem {
	return c.system
}

// Logger returns the system logger.
func (c *Context) Logger() log.Logger {
	return c.system.logger
}

// Spawn creates a child actor under the actor the context is bound to.
// Spawning an actor under a name already taken by a live child stops the
// previous actor and replaces it.
func (c *Context) Spawn(name string, factory Factory, opts ...SpawnOption) (*PID, error) {
	return c.system.spawnAt(context.Background(), c.pid, name, factory, opts...)
}

// Child returns the live child with the given name.
func (c *Context) Child(name string) (*PID, bool) {
	c.childrenMu.RLock()
	child, ok := c.children[name]
	c.childrenMu.RUnlock()
	return child, ok
}

// Children returns a snapshot of the actor's live children.
func (c *Context) Children() []*PID {
	c.childrenMu.RLock()
	children := make([]*PID, 0, len(c.children))
	for _, child := range c.children {
		children = append(children, child)
	}
	c.childrenMu.RUnlock()
	return children
}

// Stop asks the actor to stop itself. The stop is processed as an ordinary
// mailbox message, so messages already enqueued ahead of it are still
// handled.
func (c *Context) Stop() {
	c.pid.tellSystem(new(poisonPill))
}

// Schedule runs the given task on the actor after the given delay. The task
// is re-injected through the actor's own mailbox, so it runs with the same
// exclusivity guarantee as a message handler and is silently dropped when the
// actor is no longer running by then.
func (c *Context) Schedule(delay time.Duration, task func(ctx *Context)) error {
	return c.system.scheduler.scheduleOnce(c.pid, delay, task)
}

// SetExtension stores a keyed dependency on the context. Extensions survive
// restarts, which makes them the place for injected collaborators the fresh
// instance needs again.
func (c *Context) SetExtension(key string, value any) {
	c.extensionsMu.Lock()
	c.extensions[key] = value
	c.extensionsMu.Unlock()
}

// Extension returns the dependency stored under the given key.
func (c *Context) Extension(key string) (any, bool) {
	c.extensionsMu.RLock()
	value, ok := c.extensions[key]
	c.extensionsMu.RUnlock()
	return value, ok
}

// setHandler registers the handler for the given message type.
func (c *Context) setHandler(msgType reflect.Type, handler handlerFunc) {
	c.handlersMu.Lock()
	c.handlers[msgType] = handler
	c.handlersMu.Unlock()
}

// handler returns the handler registered for the given message type.
func (c *Context) handler(msgType reflect.Type) (handlerFunc, bool) {
	c.handlersMu.RLock()
	handler, ok := c.handlers[msgType]
	c.handlersMu.RUnlock()
	return handler, ok
}

// canHandle reports whether a handler is registered for the given message
// type.
func (c *Context) canHandle(msgType reflect.Type) bool {
	_, ok := c.handler(msgType)
	return ok
}

// addChild records a spawned child.
func (c *Context) addChild(child *PID) {
	c.childrenMu.Lock()
	c.children[child.Name()] = child
	c.childrenMu.Unlock()
}

// removeChild forgets a terminated child, but only when the recorded child
// carries the given identity. A replacement spawned under the same name has a
// different ID and must survive the late termination notice of its
// predecessor.
func (c *Context) removeChild(name string, id ActorID) {
	c.childrenMu.Lock()
	if child, ok := c.children[name]; ok && child.ID() == id {
		delete(c.children, name)
	}
	c.childrenMu.Unlock()
}

// reset wipes handler registrations and children bookkeeping ahead of a
// restart.
func (c *Context) reset() {
	c.handlersMu.Lock()
	c.handlers = make(map[reflect.Type]handlerFunc)
	c.handlersMu.Unlock()

	c.childrenMu.Lock()
	c.children = make(map[string]*PID)
	c.childrenMu.Unlock()
}
