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
	"time"

	gerrors "github.com/janus-actors/janus/errors"
	"github.com/janus-actors/janus/supervisor"
)

// poisonPill asks the receiving actor to stop. Because it travels through the
// mailbox like any other message, messages enqueued ahead of it are still
// processed.
type poisonPill struct{}

// resumeDirective tells a failed actor to keep going with its state intact.
type resumeDirective struct{}

// restartDirective tells a failed actor to discard its instance and start a
// fresh one from the original factory.
type restartDirective struct{}

// supervisionSignal notifies a parent that one of its children failed while
// processing a message.
type supervisionSignal struct {
	child   *PID
	err     error
	message any
	at      time.Time
}

// childTerminated notifies a parent that one of its children stopped.
type childTerminated struct {
	name string
	id   ActorID
}

// scheduledTask is the mailbox form of a delayed task. Routing it through the
// mailbox gives scheduled work the same exclusivity guarantee as handlers.
type scheduledTask struct {
	task func(ctx *Context)
}

// isSystemMessage reports whether the given message is internal to the
// runtime.
func isSystemMessage(message any) bool {
	switch message.(type) {
	case *poisonPill, *resumeDirective, *restartDirective,
		*supervisionSignal, *childTerminated, *scheduledTask:
		return true
	default:
		return false
	}
}

// escalateFailure records the failure on the cell and hands the supervision
// decision to the parent. The failed message is dropped and surfaced as a
// deadletter. A failing root guardian has no parent and stops.
func (pid *PID) escalateFailure(err error, message any) {
	pid.failuresTotal.Inc()
	pid.setState(FailedState)
	pid.logger.Warnf("Actor %s failed while processing %T: %v", pid.Name(), message, err)
	pid.system.publishDeadletter(pid.path, message, err)

	if pid.parent == nil {
		pid.doStop()
		return
	}
	pid.parent.tellSystem(&supervisionSignal{
		child:   pid,
		err:     err,
		message: message,
		at:      time.Now(),
	})
}

// superviseChild applies the failing child's supervision strategy. It runs on
// the parent's processing loop.
func (pid *PID) superviseChild(signal *supervisionSignal) {
	child := signal.child
	if child.State() == StoppedState {
		return
	}

	directive := child.supervisor.Directive(signal.err)
	pid.logger.Debugf("Actor %s applying %s directive to child %s", pid.Name(), directive, child.Name())
	pid.system.publishSupervisionEvent(child, signal, directive)

	switch directive {
	case supervisor.ResumeDirective:
		child.tellSystem(new(resumeDirective))
	case supervisor.RestartDirective:
		if child.withinRestartBudget() {
			child.tellSystem(new(restartDirective))
			return
		}
		pid.logger.Warnf("Actor %s exhausted its restart budget, stopping", child.Name())
		child.tellSystem(new(poisonPill))
	case supervisor.EscalateDirective:
		if pid.parent == nil {
			// the buck stops at the root guardian
			child.tellSystem(new(poisonPill))
			return
		}
		// the child resumes while the decision travels up; the ancestor's
		// directive then lands on this whole subtree
		child.tellSystem(new(resumeDirective))
		pid.setState(FailedState)
		pid.parent.tellSystem(&supervisionSignal{
			child:   pid,
			err:     gerrors.NewSupervisionError(signal.err),
			message: signal.message,
			at:      signal.at,
		})
	default:
		child.tellSystem(new(poisonPill))
	}
}

// withinRestartBudget accounts one more failure against the cell's restart
// budget and reports whether a restart is still allowed. When the time since
// the previous failure exceeds the supervisor's reset window the counter
// starts over.
func (pid *PID) withinRestartBudget() bool {
	now := time.Now().UnixNano()
	window := pid.supervisor.ResetWindow()
	last := pid.lastFailureAt.Load()
	if window > 0 && last > 0 && now-last > int64(window) {
		pid.failureCount.Store(0)
	}
	pid.lastFailureAt.Store(now)
	return pid.failureCount.Inc() <= pid.supervisor.MaxRetries()
}
