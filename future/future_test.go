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

package future

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCompletion(t *testing.T) {
	t.Run("With success", func(t *testing.T) {
		completable := New()
		go func() {
			completable.Success("hello")
		}()

		value, err := completable.Future().Await(context.TODO())
		require.NoError(t, err)
		assert.Equal(t, "hello", value)
	})
	t.Run("With failure", func(t *testing.T) {
		completable := New()
		go func() {
			completable.Failure(assert.AnError)
		}()

		value, err := completable.Future().Await(context.TODO())
		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, value)
	})
	t.Run("With completion before await", func(t *testing.T) {
		completable := New()
		completable.Success(42)

		value, err := completable.Future().Await(context.TODO())
		require.NoError(t, err)
		assert.Equal(t, 42, value)
	})
	t.Run("With error-typed success value", func(t *testing.T) {
		// a handler may legitimately answer with an error value; that is a
		// successful result, not a failure of the future
		completable := New()
		completable.Success(assert.AnError)

		value, err := completable.Future().Await(context.TODO())
		require.NoError(t, err)
		assert.Equal(t, assert.AnError, value)
	})
}

func TestSingleAssignment(t *testing.T) {
	t.Run("With success then failure", func(t *testing.T) {
		completable := New()
		completable.Success("first")
		completable.Failure(assert.AnError)

		value, err := completable.Future().Await(context.TODO())
		require.NoError(t, err)
		assert.Equal(t, "first", value)
	})
	t.Run("With failure then success", func(t *testing.T) {
		completable := New()
		completable.Failure(assert.AnError)
		completable.Success("late")

		value, err := completable.Future().Await(context.TODO())
		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, value)
	})
}

func TestAwaitCancellation(t *testing.T) {
	completable := New()

	ctx, cancel := context.WithTimeout(context.TODO(), 20*time.Millisecond)
	defer cancel()
	value, err := completable.Future().Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, value)

	// the result is pinned after a canceled await
	completable.Success("late")
	value, err = completable.Future().Await(context.TODO())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, value)
}
