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
	"fmt"
	"reflect"
	"time"

	"github.com/flowchartsman/retry"
	"go.uber.org/atomic"

	gerrors "github.com/janus-actors/janus/errors"
	"github.com/janus-actors/janus/future"
	"github.com/janus-actors/janus/log"
	"github.com/janus-actors/janus/supervisor"
)

// processing loop states
const (
	idle int32 = iota
	busy
)

// stoppedPollInterval is how often awaitStopped checks the actor state.
const stoppedPollInterval = 5 * time.Millisecond

// PID is the reference to a live actor cell. It is the only handle other
// code ever holds on an actor: all interaction goes through Tell and Ask and
// lands in the actor's mailbox.
//
// A PID stays valid across restarts of its actor. Once the actor stops, the
// PID is permanently dead and every send returns ErrMailboxClosed.
type PID struct {
	id      ActorID
	path    *Path
	system  *actorSystem
	parent  *PID
	factory Factory
	// actor is the current instance. Only the processing loop touches it.
	actor Actor
	ctx   *Context

	mailbox    Mailbox
	supervisor *supervisor.Supervisor
	logger     log.Logger

	// state holds the lifecycle State value
	state *atomic.Int32
	// processing flips between idle and busy to guarantee at most one
	// processing burst at a time
	processing *atomic.Int32

	initMaxRetries int
	initTimeout    time.Duration

	startedAt      *atomic.Int64
	restartCount   *atomic.Int64
	processedCount *atomic.Int64
	failuresTotal  *atomic.Int64

	// restart budget bookkeeping, owned by the parent's supervision engine
	failureCount  *atomic.Uint32
	lastFailureAt *atomic.Int64
}

// newPID creates an actor cell and its reference. The actor instance is
// produced from the factory but not initialized yet; the caller runs init.
func newPID(system *actorSystem, parent *PID, id ActorID, path *Path, factory Factory, cfg *spawnConfig) *PID {
	pid := &PID{
		id:             id,
		path:           path,
		system:         system,
		parent:         parent,
		factory:        factory,
		mailbox:        cfg.mailbox,
		supervisor:     cfg.supervisor,
		logger:         system.logger,
		initMaxRetries: cfg.initMaxRetries,
		initTimeout:    cfg.initTimeout,
		state:          atomic.NewInt32(int32(InitializingState)),
		processing:     atomic.NewInt32(idle),
		startedAt:      atomic.NewInt64(0),
		restartCount:   atomic.NewInt64(0),
		processedCount: atomic.NewInt64(0),
		failuresTotal:  atomic.NewInt64(0),
		failureCount:   atomic.NewUint32(0),
		lastFailureAt:  atomic.NewInt64(0),
	}
	pid.ctx = newContext(pid, system)
	pid.actor = factory()
	return pid
}

// ID returns the unique identity of the actor cell.
func (pid *PID) ID() ActorID {
	return pid.id
}

// Name returns the name of the actor, i.e. the last segment of its path.
func (pid *PID) Name() string {
	return pid.path.Name()
}

// Path returns the hierarchical address of the actor.
func (pid *PID) Path() *Path {
	return pid.path
}

// Parent returns the reference of the actor's parent, nil for the root
// guardian.
func (pid *PID) Parent() *PID {
	return pid.parent
}

// Children returns a snapshot of the actor's live children.
func (pid *PID) Children() []*PID {
	return pid.ctx.Children()
}

// Child returns the live child with the given name.
func (pid *PID) Child(name string) (*PID, bool) {
	return pid.ctx.Child(name)
}

// State returns the current lifecycle state of the actor.
func (pid *PID) State() State {
	return State(pid.state.Load())
}

// IsRunning returns true when the actor is processing messages.
func (pid *PID) IsRunning() bool {
	return pid.State() == RunningState
}

// Equals returns true when both references point at the same actor cell.
func (pid *PID) Equals(other *PID) bool {
	if other == nil {
		return false
	}
	return pid.id == other.id && pid.path.Equals(other.path)
}

// RestartCount returns the number of times the actor has been restarted.
func (pid *PID) RestartCount() int64 {
	return pid.restartCount.Load()
}

// ProcessedCount returns the number of user messages the actor handled
// successfully.
func (pid *PID) ProcessedCount() int64 {
	return pid.processedCount.Load()
}

// FailuresTotal returns the number of handler failures over the actor's
// lifetime, across restarts.
func (pid *PID) FailuresTotal() int64 {
	return pid.failuresTotal.Load()
}

// Tell sends the given message to the actor without waiting for a response.
// Delivery into the mailbox is confirmed; processing is not.
func (pid *PID) Tell(_ context.Context, message any) error {
	if err := pid.canReceive(); err != nil {
		return err
	}
	return pid.push(newEnvelope(message, nil))
}

// Ask sends the given message to the actor and blocks until the response is
// available or the context expires.
func (pid *PID) Ask(ctx context.Context, message any) (any, error) {
	if err := pid.canReceive(); err != nil {
		return nil, err
	}
	receiver := future.New()
	if err := pid.push(newEnvelope(message, receiver)); err != nil {
		return nil, err
	}
	return receiver.Future().Await(ctx)
}

// Shutdown stops the actor and waits for the stop to complete within the
// bounds of the given context. The stop travels through the mailbox, so
// already-enqueued messages are still processed first.
func (pid *PID) Shutdown(ctx context.Context) error {
	if pid.State() == StoppedState {
		return nil
	}
	pid.tellSystem(new(poisonPill))
	return pid.awaitStopped(ctx)
}

// canReceive returns nil when the actor can accept new messages.
func (pid *PID) canReceive() error {
	if pid.system.isShuttingDown() {
		return gerrors.ErrMailboxClosed
	}
	switch pid.State() {
	case StoppingState, StoppedState:
		return gerrors.ErrMailboxClosed
	default:
		return nil
	}
}

// push enqueues the envelope and wakes the processing loop.
func (pid *PID) push(envelope *Envelope) error {
	if err := pid.mailbox.Enqueue(envelope); err != nil {
		if reply := envelope.Reply(); reply != nil {
			reply.Failure(err)
		}
		releaseEnvelope(envelope)
		return err
	}
	pid.schedule()
	return nil
}

// tellSystem enqueues a runtime-internal message, bypassing the receive
// checks so stop and supervision directives reach even a closing actor.
func (pid *PID) tellSystem(message any) {
	_ = pid.push(newEnvelope(message, nil))
}

// schedule submits a processing burst to the worker pool unless one is
// already active. The idle/busy flip is what guarantees that at most one
// handler of this actor runs at any time.
func (pid *PID) schedule() {
	if pid.processing.CompareAndSwap(idle, busy) {
		if err := pid.system.workerPool.Submit(pid.burst); err != nil {
			// the pool is gone during shutdown; run inline so stop
			// directives still land
			pid.burst()
		}
	}
}

// burst drains the mailbox on a pool worker. Before going idle it re-checks
// the mailbox and reschedules itself when a concurrent enqueue raced with the
// idle flip.
func (pid *PID) burst() {
	for {
		if envelope := pid.mailbox.Dequeue(); envelope != nil {
			pid.handleEnvelope(envelope)
			releaseEnvelope(envelope)
			continue
		}

		pid.processing.Store(idle)
		if !pid.mailbox.IsEmpty() && pid.processing.CompareAndSwap(idle, busy) {
			continue
		}
		return
	}
}

// handleEnvelope routes one dequeued envelope.
func (pid *PID) handleEnvelope(envelope *Envelope) {
	switch message := envelope.Message().(type) {
	case *poisonPill:
		pid.doStop()
	case *resumeDirective:
		pid.doResume()
	case *restartDirective:
		pid.doRestart()
	case *supervisionSignal:
		pid.superviseChild(message)
	case *childTerminated:
		pid.ctx.removeChild(message.name, message.id)
	case *scheduledTask:
		pid.runScheduled(message)
	default:
		pid.dispatch(envelope)
	}
}

// dispatch runs the registered handler for a user message. An actor in the
// Failed state keeps processing its queue while awaiting the supervision
// directive, which arrives through the same mailbox.
func (pid *PID) dispatch(envelope *Envelope) {
	message := envelope.Message()
	reply := envelope.Reply()

	switch pid.State() {
	case RunningState, FailedState:
	default:
		if reply != nil {
			reply.Failure(gerrors.ErrRequestCanceled)
			return
		}
		pid.system.publishDeadletter(pid.path, message, gerrors.ErrMailboxClosed)
		return
	}

	handler, ok := pid.ctx.handler(reflect.TypeOf(message))
	if !ok {
		if reply != nil {
			reply.Failure(gerrors.ErrNoMessageHandler)
			return
		}
		pid.system.publishDeadletter(pid.path, message, gerrors.ErrNoMessageHandler)
		return
	}

	result, err := pid.invoke(handler, message)
	if err != nil {
		// the sender never observes the handler error itself
		if reply != nil {
			reply.Failure(gerrors.ErrRequestCanceled)
		}
		pid.escalateFailure(err, message)
		return
	}

	if reply != nil {
		reply.Success(result)
	}
	pid.processedCount.Inc()
}

// invoke runs a handler with panic isolation. A panicking handler never
// takes down the worker; the panic is converted into a PanicError and fed to
// supervision.
func (pid *PID) invoke(handler handlerFunc, message any) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case error:
				err = gerrors.NewPanicError(v)
			default:
				err = gerrors.NewPanicError(fmt.Errorf("%v", v))
			}
		}
	}()
	return handler(message, pid.ctx)
}

// runScheduled executes a delayed task with the same isolation as a message
// handler. Tasks scheduled by an actor that meanwhile failed or stopped are
// dropped.
func (pid *PID) runScheduled(message *scheduledTask) {
	if pid.State() != RunningState {
		return
	}
	_, err := pid.invoke(func(_ any, ctx *Context) (any, error) {
		message.task(ctx)
		return nil, nil
	}, nil)
	if err != nil {
		pid.escalateFailure(err, message)
	}
}

// init runs the actor's PreStart hook, retrying within the configured budget,
// and transitions the actor to Running.
func (pid *PID) init(ctx context.Context) error {
	pid.setState(InitializingState)

	cctx, cancel := context.WithTimeout(ctx, pid.initTimeout)
	defer cancel()

	retrier := retry.NewRetrier(pid.initMaxRetries, 100*time.Millisecond, pid.initTimeout)
	if err := retrier.RunContext(cctx, func(context.Context) error {
		return pid.runPreStart()
	}); err != nil {
		return gerrors.NewInitError(err)
	}

	pid.setState(RunningState)
	pid.startedAt.Store(time.Now().UnixNano())
	return nil
}

// runPreStart runs the PreStart hook with panic isolation. A panicking hook
// surfaces as a PanicError to the retrier instead of unwinding a pool worker,
// so both the spawn path and the restart path stay contained.
func (pid *PID) runPreStart() (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case error:
				err = gerrors.NewPanicError(v)
			default:
				err = gerrors.NewPanicError(fmt.Errorf("%v", v))
			}
		}
	}()
	return pid.actor.PreStart(pid.ctx)
}

// doStop tears the actor down: children are stopped, pending envelopes are
// canceled or deadlettered and the cell is unregistered. Terminal.
func (pid *PID) doStop() {
	switch pid.State() {
	case StoppingState, StoppedState:
		return
	}
	pid.setState(StoppingState)
	pid.logger.Debugf("Actor %s is stopping...", pid.path)

	if hook, ok := pid.actor.(PreStopper); ok {
		pid.safeHook(hook.PreStop)
	}

	for _, child := range pid.ctx.Children() {
		child.tellSystem(new(poisonPill))
	}

	// close the mailbox first so that concurrent senders are refused, then
	// drain what made it in
	pid.mailbox.Dispose()
	for envelope := pid.mailbox.Dequeue(); envelope != nil; envelope = pid.mailbox.Dequeue() {
		if reply := envelope.Reply(); reply != nil {
			reply.Failure(gerrors.ErrRequestCanceled)
		} else if !isSystemMessage(envelope.Message()) {
			pid.system.publishDeadletter(pid.path, envelope.Message(), gerrors.ErrMailboxClosed)
		}
		releaseEnvelope(envelope)
	}

	pid.system.unregister(pid)
	if pid.parent != nil {
		pid.parent.tellSystem(&childTerminated{name: pid.Name(), id: pid.id})
	}

	pid.setState(StoppedState)
	if hook, ok := pid.actor.(PostStopper); ok {
		pid.safeHook(hook.PostStop)
	}
	pid.system.publishActorEvent(&ActorStopped{ID: pid.id, Path: pid.path, At: time.Now()})
	pid.logger.Debugf("Actor %s stopped", pid.path)
}

// doResume clears the failed state, keeping the instance and its state as
// they are.
func (pid *PID) doResume() {
	if pid.State() == FailedState {
		pid.setState(RunningState)
	}
}

// doRestart replaces the actor instance with a fresh one from the original
// factory, at the same path and identity. The stop hooks do not run: the
// actor is being replaced, not terminated. Children of the old instance are
// stopped, not resurrected; the new PreStart re-spawns what it needs. A
// failing PreStart degrades the restart to a stop.
func (pid *PID) doRestart() {
	switch pid.State() {
	case StoppingState, StoppedState:
		return
	}
	pid.setState(RestartingState)
	pid.logger.Debugf("Actor %s is restarting...", pid.path)

	for _, child := range pid.ctx.Children() {
		child.tellSystem(new(poisonPill))
	}

	pid.ctx.reset()
	pid.actor = pid.factory()
	if err := pid.init(context.Background()); err != nil {
		pid.logger.Errorf("Actor %s failed to restart: %v", pid.path, err)
		pid.doStop()
		return
	}

	pid.restartCount.Inc()
	pid.system.publishActorEvent(&ActorRestarted{ID: pid.id, Path: pid.path, At: time.Now()})
	pid.logger.Debugf("Actor %s restarted", pid.path)
}

// safeHook runs a lifecycle hook with panic isolation. A panicking hook is
// logged and otherwise ignored.
func (pid *PID) safeHook(hook func(ctx *Context)) {
	defer func() {
		if r := recover(); r != nil {
			pid.logger.Errorf("Actor %s lifecycle hook panicked: %v", pid.path, r)
		}
	}()
	hook(pid.ctx)
}

// setState records the lifecycle state transition.
func (pid *PID) setState(state State) {
	pid.state.Store(int32(state))
}

// awaitStopped blocks until the actor reaches the Stopped state or the
// context expires.
func (pid *PID) awaitStopped(ctx context.Context) error {
	ticker := time.NewTicker(stoppedPollInterval)
	defer ticker.Stop()
	for {
		if pid.State() == StoppedState {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
