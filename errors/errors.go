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

// Package errors defines the error surface of the janus actor runtime.
//
// Two families of errors exist:
//
//   - send errors: returned to callers of Tell/Ask and ActorSelection
//     operations. They are always recoverable by the caller.
//   - actor errors: produced by a failing message handler and consumed only by
//     the supervision machinery. A sender whose Ask target failed observes
//     ErrRequestCanceled instead.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidActorSystemName is returned when the actor system name contains invalid characters.
	// A valid name must consist of only alphanumeric characters ([a-zA-Z0-9]), with optional
	// hyphens or underscores that are not leading.
	ErrInvalidActorSystemName = errors.New("invalid ActorSystem name, must contain only word characters (i.e. [a-zA-Z0-9] plus non-leading '-' or '_')")

	// ErrNameRequired is returned when an actor system name is required but not provided.
	ErrNameRequired = errors.New("actor system name is required")

	// ErrInvalidActorName is returned when an actor name contains invalid characters.
	ErrInvalidActorName = errors.New("invalid actor name, must contain only word characters (i.e. [a-zA-Z0-9] plus non-leading '-' or '_')")

	// ErrMailboxClosed is returned when a message is sent to an actor whose
	// mailbox no longer accepts messages, either because the actor stopped or
	// because the actor system has been shut down.
	ErrMailboxClosed = errors.New("mailbox is closed")

	// ErrRequestCanceled is returned by Ask when the response slot was dropped
	// before being filled. This happens when the target actor stops, restarts
	// or fails with the request still pending.
	ErrRequestCanceled = errors.New("request canceled")

	// ErrNoMessageHandler is returned when no actor at the addressed path can
	// handle the given message type.
	ErrNoMessageHandler = errors.New("no message handler")

	// ErrSystemShuttingDown is returned when an operation is attempted on an
	// actor system that is shutting down or already stopped.
	ErrSystemShuttingDown = errors.New("actor system is shutting down")

	// ErrActorNotFound indicates that no actor is registered at the given path.
	ErrActorNotFound = errors.New("actor not found")

	// ErrSchedulerNotStarted is returned when a delayed task is scheduled
	// before the scheduler has started or after it stopped.
	ErrSchedulerNotStarted = errors.New("scheduler has not started")
)

// PanicError is the actor error produced when a message handler panics.
// The panic is caught by the mailbox processing loop and converted into this
// error before the supervision decision is taken.
type PanicError struct {
	err error
}

// enforce compilation error
var _ error = (*PanicError)(nil)

// NewPanicError creates a PanicError from the recovered panic value.
func NewPanicError(err error) *PanicError {
	return &PanicError{err: err}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("message handler panicked: %v", e.err)
}

func (e *PanicError) Unwrap() error {
	return e.err
}

// InitError is returned when an actor's PreStart hook fails. The actor never
// starts processing messages.
type InitError struct {
	err error
}

// enforce compilation error
var _ error = (*InitError)(nil)

// NewInitError creates an InitError
func NewInitError(err error) *InitError {
	return &InitError{err: err}
}

func (e *InitError) Error() string {
	return fmt.Sprintf("preStart failed: %v", e.err)
}

func (e *InitError) Unwrap() error {
	return e.err
}

// SystemError is an actor error raised by the runtime itself rather than by
// user handler code.
type SystemError struct {
	err error
}

// enforce compilation error
var _ error = (*SystemError)(nil)

// NewSystemError creates a SystemError
func NewSystemError(err error) *SystemError {
	return &SystemError{err: err}
}

func (e *SystemError) Error() string {
	return fmt.Sprintf("system error: %v", e.err)
}

func (e *SystemError) Unwrap() error {
	return e.err
}

// SupervisionError wraps a child failure that was escalated up the actor tree.
// The ancestor receiving it consults its own directive rules for this type.
type SupervisionError struct {
	err error
}

// enforce compilation error
var _ error = (*SupervisionError)(nil)

// NewSupervisionError creates a SupervisionError
func NewSupervisionError(err error) *SupervisionError {
	return &SupervisionError{err: err}
}

func (e *SupervisionError) Error() string {
	return fmt.Sprintf("escalated child failure: %v", e.err)
}

func (e *SupervisionError) Unwrap() error {
	return e.err
}

// AnyError matches any error type when used in a supervisor directive rule.
type AnyError struct{}

// enforce compilation error
var _ error = (*AnyError)(nil)

func (*AnyError) Error() string {
	return "any error"
}
