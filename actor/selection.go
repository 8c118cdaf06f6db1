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

	gerrors "github.com/janus-actors/janus/errors"
)

// ActorSelection addresses an actor by path instead of by reference. The
// path is resolved against the registry on every send, so a selection stays
// usable across restarts and replacements of the actor behind it.
type ActorSelection struct {
	system *actorSystem
	path   *Path
}

// newActorSelection creates an ActorSelection for the given path.
func newActorSelection(system *actorSystem, path *Path) *ActorSelection {
	return &ActorSelection{
		system: system,
		path:   path,
	}
}

// Path returns the path the selection addresses.
func (s *ActorSelection) Path() *Path {
	return s.path
}

// Ref resolves the selection to the live actor reference currently
// registered at the path.
func (s *ActorSelection) Ref() (*PID, error) {
	pid, ok := s.system.lookup(s.path.String())
	if !ok {
		return nil, gerrors.ErrActorNotFound
	}
	return pid, nil
}

// Tell resolves the path and sends the given message without waiting for a
// response. It returns ErrActorNotFound when no actor lives at the path and
// ErrNoMessageHandler when the resolved actor has no handler for the message
// type.
func (s *ActorSelection) Tell(ctx context.Context, message any) error {
	pid, err := s.resolve(message)
	if err != nil {
		return err
	}
	return pid.Tell(ctx, message)
}

// Ask resolves the path, sends the given message and blocks until the
// response is available or the context expires.
func (s *ActorSelection) Ask(ctx context.Context, message any) (any, error) {
	pid, err := s.resolve(message)
	if err != nil {
		return nil, err
	}
	return pid.Ask(ctx, message)
}

// resolve looks up the path and checks the target can handle the message
// type.
func (s *ActorSelection) resolve(message any) (*PID, error) {
	pid, err := s.Ref()
	if err != nil {
		return nil, err
	}
	if !pid.ctx.canHandle(reflect.TypeOf(message)) {
		return nil, gerrors.ErrNoMessageHandler
	}
	return pid, nil
}
