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

package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrors(t *testing.T) {
	t.Run("With PanicError", func(t *testing.T) {
		err := NewPanicError(assert.AnError)
		assert.EqualError(t, err, "message handler panicked: "+assert.AnError.Error())
		assert.ErrorIs(t, err, assert.AnError)
	})
	t.Run("With InitError", func(t *testing.T) {
		err := NewInitError(assert.AnError)
		assert.EqualError(t, err, "preStart failed: "+assert.AnError.Error())
		assert.ErrorIs(t, err, assert.AnError)
	})
	t.Run("With SystemError", func(t *testing.T) {
		err := NewSystemError(assert.AnError)
		assert.EqualError(t, err, "system error: "+assert.AnError.Error())
		assert.ErrorIs(t, err, assert.AnError)
	})
	t.Run("With SupervisionError", func(t *testing.T) {
		err := NewSupervisionError(assert.AnError)
		assert.EqualError(t, err, "escalated child failure: "+assert.AnError.Error())
		assert.ErrorIs(t, err, assert.AnError)
	})
	t.Run("With nested unwrapping", func(t *testing.T) {
		inner := NewPanicError(assert.AnError)
		outer := NewSupervisionError(inner)
		var panicErr *PanicError
		assert.ErrorAs(t, outer, &panicErr)
		assert.ErrorIs(t, outer, assert.AnError)
	})
	t.Run("With AnyError", func(t *testing.T) {
		assert.EqualError(t, new(AnyError), "any error")
	})
}

func TestSentinels(t *testing.T) {
	sentinels := []error{
		ErrInvalidActorSystemName,
		ErrNameRequired,
		ErrInvalidActorName,
		ErrMailboxClosed,
		ErrRequestCanceled,
		ErrNoMessageHandler,
		ErrSystemShuttingDown,
		ErrActorNotFound,
		ErrSchedulerNotStarted,
	}
	for _, sentinel := range sentinels {
		assert.NotEmpty(t, sentinel.Error())
		assert.True(t, errors.Is(sentinel, sentinel))
	}
}
