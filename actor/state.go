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

// State represents the lifecycle state of an actor cell.
//
// Transitions:
//
//	Initializing -> Running
//	Running      -> Stopping  -> Stopped
//	Running      -> Failed    -> Restarting -> Running
//	Failed       -> Stopping  -> Stopped
//	Failed       -> Running   (resume)
type State int32

const (
	// InitializingState means the actor has been spawned but PreStart has not
	// completed yet.
	InitializingState State = iota
	// RunningState means the actor is processing messages.
	RunningState
	// StoppingState means the actor is tearing down; its mailbox no longer
	// accepts messages.
	StoppingState
	// StoppedState is terminal.
	StoppedState
	// FailedState means a message handler returned an error or panicked and
	// the actor is awaiting its parent's supervision directive. Queued
	// messages keep being processed in the meantime.
	FailedState
	// RestartingState means the actor is being replaced by a fresh instance
	// at the same path and identity.
	RestartingState
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case InitializingState:
		return "Initializing"
	case RunningState:
		return "Running"
	case StoppingState:
		return "Stopping"
	case StoppedState:
		return "Stopped"
	case FailedState:
		return "Failed"
	case RestartingState:
		return "Restarting"
	default:
		return "Unknown"
	}
}
