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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janus-actors/janus/supervisor"
)

func TestContextAccessors(t *testing.T) {
	system, err := newTestSystem("janus")
	require.NoError(t, err)

	pid, err := system.Spawn(context.TODO(), "introspective", func() Actor { return new(introspectiveActor) })
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.TODO(), replyTimeout)
	defer cancel()
	seen, err := Ask[*selfSeen](ctx, pid, new(ping))
	require.NoError(t, err)
	assert.Equal(t, "/janus/introspective", seen.path)
	assert.Equal(t, "/janus", seen.parentPath)
	assert.Equal(t, "janus", seen.systemName)

	require.NoError(t, system.Shutdown(context.TODO()))
}

func TestContextExtensions(t *testing.T) {
	system, err := newTestSystem("janus")
	require.NoError(t, err)

	pid, err := system.Spawn(context.TODO(), "extended", func() Actor { return new(extensionActor) },
		WithSupervisor(supervisor.New(
			supervisor.WithDirective(errSimulated, supervisor.RestartDirective),
			supervisor.WithRetry(3, time.Minute),
		)))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.TODO(), replyTimeout)
	defer cancel()

	stamp, err := Ask[*extensionStamp](ctx, pid, new(ping))
	require.NoError(t, err)
	first := stamp.value

	require.NoError(t, pid.Tell(ctx, new(boom)))
	require.True(t, eventually(replyTimeout, func() bool {
		return pid.RestartCount() == 1 && pid.IsRunning()
	}))

	// extensions survive the restart: the fresh instance sees the value its
	// predecessor stored
	stamp, err = Ask[*extensionStamp](ctx, pid, new(ping))
	require.NoError(t, err)
	assert.Equal(t, first, stamp.value)

	require.NoError(t, system.Shutdown(context.TODO()))
}

type selfSeen struct {
	path       string
	parentPath string
	systemName string
}

// introspectiveActor reports what its context exposes.
type introspectiveActor struct{}

func (*introspectiveActor) PreStart(ctx *Context) error {
	On(ctx, func(_ *ping, ctx *Context) (*selfSeen, error) {
		return &selfSeen{
			path:       ctx.Self().Path().String(),
			parentPath: ctx.Parent().Path().String(),
			systemName: ctx.ActorSystem().Name(),
		}, nil
	})
	return nil
}

type extensionStamp struct {
	value time.Time
}

// extensionActor stamps the context once and always answers with the stored
// stamp, failing on boom to exercise restarts.
type extensionActor struct{}

func (*extensionActor) PreStart(ctx *Context) error {
	if _, ok := ctx.Extension("stamp"); !ok {
		ctx.SetExtension("stamp", time.Now())
	}
	On(ctx, func(_ *ping, ctx *Context) (*extensionStamp, error) {
		value, _ := ctx.Extension("stamp")
		return &extensionStamp{value: value.(time.Time)}, nil
	})
	On(ctx, func(*boom, *Context) (*pong, error) {
		return nil, errSimulated
	})
	return nil
}
