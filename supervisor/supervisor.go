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

// Package supervisor defines how a parent actor reacts when one of its
// children fails while processing a message.
package supervisor

import (
	"reflect"
	"sync"
	"time"

	"github.com/janus-actors/janus/errors"
)

// Directive represents the action taken when a child actor fails or panics
// during message processing.
type Directive int

const (
	// StopDirective instructs the supervisor to stop the failing actor. The
	// actor recursively stops its own children, notifies its parent and
	// transitions to the stopped state. This is the default when no rule
	// matches the error.
	StopDirective Directive = iota

	// ResumeDirective instructs the supervisor to let the failing actor
	// continue as if nothing happened. The failed message is dropped and the
	// next queued message is processed. Used for transient, recoverable
	// errors that do not corrupt actor state.
	ResumeDirective

	// RestartDirective instructs the supervisor to restart the failing actor:
	// the current instance is discarded and a fresh one is created from the
	// original factory at the same path and identity. Restarts are bounded by
	// the retry budget configured with WithRetry.
	RestartDirective

	// EscalateDirective instructs the supervisor to push the failure one
	// level up the actor tree. The failure is wrapped in a supervision event
	// and forwarded to the grandparent, which applies its own rules.
	EscalateDirective
)

// String returns the string representation of the directive
func (d Directive) String() string {
	switch d {
	case StopDirective:
		return "Stop"
	case ResumeDirective:
		return "Resume"
	case RestartDirective:
		return "Restart"
	case EscalateDirective:
		return "Escalate"
	default:
		return ""
	}
}

// Option defines the various options to apply to a given Supervisor
type Option func(*Supervisor)

// WithDirective maps the concrete type of err to the given directive.
func WithDirective(err error, directive Directive) Option {
	return func(s *Supervisor) {
		s.mu.Lock()
		s.directives[errorType(err)] = directive
		s.mu.Unlock()
	}
}

// WithAnyErrorDirective sets the directive to apply to any error. It becomes
// the sole rule and overrides any error-specific directives.
func WithAnyErrorDirective(directive Directive) Option {
	return func(s *Supervisor) {
		s.mu.Lock()
		s.directives[errorType(new(errors.AnyError))] = directive
		s.mu.Unlock()
	}
}

// WithRetry configures the restart budget used with RestartDirective.
//
// Parameters:
//   - maxRetries: maximum number of restarts within the reset window.
//     Exceeding this count degrades the restart to a stop.
//   - resetWindow: when the gap between two consecutive failures exceeds
//     this duration the failure counter starts over.
func WithRetry(maxRetries uint32, resetWindow time.Duration) Option {
	return func(s *Supervisor) {
		s.mu.Lock()
		s.maxRetries = maxRetries
		s.resetWindow = resetWindow
		s.mu.Unlock()
	}
}

// Supervisor declares how the parent of the actor it is attached to must
// handle that actor's failures.
//
// Rules are keyed by the error's concrete type name as provided by
// WithDirective. An "any error" rule set via WithAnyErrorDirective overrides
// every error-specific rule. When no rule matches, the failure degrades
// deterministically to StopDirective.
//
// Defaults:
//   - Directives: PanicError -> Stop.
//   - Retries: 0 (a RestartDirective without WithRetry stops on the second
//     failure within the window).
//
// Supervisor methods are safe for concurrent use.
type Supervisor struct {
	mu sync.Mutex
	// maps an error type name to the directive to apply
	directives map[string]Directive
	// maximum number of restarts before the faulty actor is stopped
	maxRetries uint32
	// time window after which the failure counter resets
	resetWindow time.Duration
}

// New creates a Supervisor with the default rules and applies the given
// options.
func New(opts ...Option) *Supervisor {
	s := &Supervisor{
		directives:  make(map[string]Directive),
		maxRetries:  0,
		resetWindow: -1,
	}

	// default directives
	s.directives[errorType(new(errors.PanicError))] = StopDirective

	for _, opt := range opts {
		opt(s)
	}

	// an any-error rule overrides all error-specific rules
	if directive, ok := s.directives[errorType(new(errors.AnyError))]; ok {
		s.directives = map[string]Directive{
			errorType(new(errors.AnyError)): directive,
		}
	}

	return s
}

// Directive returns the directive configured for the concrete type of err,
// falling back to the "any error" rule and finally to StopDirective.
func (s *Supervisor) Directive(err error) Directive {
	s.mu.Lock()
	defer s.mu.Unlock()
	if directive, ok := s.directives[errorType(err)]; ok {
		return directive
	}
	if directive, ok := s.directives[errorType(new(errors.AnyError))]; ok {
		return directive
	}
	return StopDirective
}

// MaxRetries returns the restart retry budget used with RestartDirective.
func (s *Supervisor) MaxRetries() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxRetries
}

// ResetWindow returns the failure counter reset window used with
// RestartDirective.
func (s *Supervisor) ResetWindow() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resetWindow
}

// Reset restores the supervisor to its default rules.
func (s *Supervisor) Reset() {
	s.mu.Lock()
	s.directives = map[string]Directive{
		errorType(new(errors.PanicError)): StopDirective,
	}
	s.maxRetries = 0
	s.resetWindow = -1
	s.mu.Unlock()
}

// errorType returns the fully-qualified type name of err.
func errorType(err error) string {
	return reflect.TypeOf(err).String()
}
