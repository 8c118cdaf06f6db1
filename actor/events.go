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

	"github.com/janus-actors/janus/supervisor"
)

// event stream topics
const (
	// EventsTopic carries actor lifecycle events: ActorStarted, ActorStopped
	// and ActorRestarted.
	EventsTopic = "topic.events"
	// DeadlettersTopic carries Deadletter notifications for messages that
	// could not be handled or delivered.
	DeadlettersTopic = "topic.deadletters"
	// SupervisionTopic carries SupervisionEvent notifications emitted every
	// time a supervision directive is applied.
	SupervisionTopic = "topic.supervision"
)

// ActorStarted is published when an actor completes its PreStart hook and
// begins processing messages.
type ActorStarted struct {
	ID   ActorID
	Path *Path
	At   time.Time
}

// ActorStopped is published when an actor reaches its terminal state.
type ActorStopped struct {
	ID   ActorID
	Path *Path
	At   time.Time
}

// ActorRestarted is published when a fresh actor instance replaces a failed
// one at the same path and identity.
type ActorRestarted struct {
	ID   ActorID
	Path *Path
	At   time.Time
}

// Deadletter is published when a message is dropped: no handler for its type,
// target mailbox closed, or the handler failed while processing it.
type Deadletter struct {
	Path    *Path
	Message any
	Reason  error
	At      time.Time
}

// SupervisionEvent is published when a parent applies a supervision directive
// to a failing child.
type SupervisionEvent struct {
	Path      *Path
	Err       error
	Directive supervisor.Directive
	At        time.Time
}
