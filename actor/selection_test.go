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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/janus-actors/janus/errors"
)

func TestActorSelection(t *testing.T) {
	t.Run("With ask through a selection", func(t *testing.T) {
		system, err := newTestSystem("janus")
		require.NoError(t, err)

		_, err = system.Spawn(context.TODO(), "greeter", func() Actor { return new(greeter) })
		require.NoError(t, err)

		selection := system.Select(RootPath("janus").Child("greeter"))
		assert.Equal(t, "/janus/greeter", selection.Path().String())

		ctx, cancel := context.WithTimeout(context.TODO(), replyTimeout)
		defer cancel()
		reply, err := selection.Ask(ctx, &greet{name: "World"})
		require.NoError(t, err)
		assert.Equal(t, "Hello, World! (count: 1)", reply.(*greeted).message)

		require.NoError(t, system.Shutdown(context.TODO()))
	})
	t.Run("With unknown path", func(t *testing.T) {
		system, err := newTestSystem("janus")
		require.NoError(t, err)

		selection := system.Select(RootPath("janus").Child("nobody"))
		err = selection.Tell(context.TODO(), &greet{name: "World"})
		assert.ErrorIs(t, err, gerrors.ErrActorNotFound)

		_, err = selection.Ask(context.TODO(), &greet{name: "World"})
		assert.ErrorIs(t, err, gerrors.ErrActorNotFound)

		_, err = selection.Ref()
		assert.ErrorIs(t, err, gerrors.ErrActorNotFound)

		require.NoError(t, system.Shutdown(context.TODO()))
	})
	t.Run("With unhandled message type", func(t *testing.T) {
		system, err := newTestSystem("janus")
		require.NoError(t, err)

		_, err = system.Spawn(context.TODO(), "greeter", func() Actor { return new(greeter) })
		require.NoError(t, err)

		selection := system.Select(RootPath("janus").Child("greeter"))
		err = selection.Tell(context.TODO(), new(ping))
		assert.ErrorIs(t, err, gerrors.ErrNoMessageHandler)

		_, err = selection.Ask(context.TODO(), new(ping))
		assert.ErrorIs(t, err, gerrors.ErrNoMessageHandler)

		require.NoError(t, system.Shutdown(context.TODO()))
	})
	t.Run("With resolution across a replacement", func(t *testing.T) {
		system, err := newTestSystem("janus")
		require.NoError(t, err)

		first, err := system.Spawn(context.TODO(), "greeter", func() Actor { return new(greeter) })
		require.NoError(t, err)

		selection := system.Select(RootPath("janus").Child("greeter"))
		resolved, err := selection.Ref()
		require.NoError(t, err)
		assert.True(t, resolved.Equals(first))

		second, err := system.Spawn(context.TODO(), "greeter", func() Actor { return new(greeter) })
		require.NoError(t, err)

		// the same selection now reaches the replacement
		resolved, err = selection.Ref()
		require.NoError(t, err)
		assert.True(t, resolved.Equals(second))

		require.NoError(t, system.Shutdown(context.TODO()))
	})
}
