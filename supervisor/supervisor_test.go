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

package supervisor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/janus-actors/janus/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDirectiveResolution(t *testing.T) {
	t.Run("With defaults", func(t *testing.T) {
		strategy := New()
		assert.Equal(t, StopDirective, strategy.Directive(errors.NewPanicError(assert.AnError)))
		assert.Equal(t, StopDirective, strategy.Directive(assert.AnError))
		assert.Zero(t, strategy.MaxRetries())
	})
	t.Run("With an error-specific rule", func(t *testing.T) {
		strategy := New(
			WithDirective(new(errors.PanicError), RestartDirective),
			WithDirective(new(errors.InitError), ResumeDirective),
		)
		assert.Equal(t, RestartDirective, strategy.Directive(errors.NewPanicError(assert.AnError)))
		assert.Equal(t, ResumeDirective, strategy.Directive(errors.NewInitError(assert.AnError)))
		// unmatched errors degrade to a stop
		assert.Equal(t, StopDirective, strategy.Directive(assert.AnError))
	})
	t.Run("With an any-error rule", func(t *testing.T) {
		strategy := New(
			WithDirective(new(errors.PanicError), StopDirective),
			WithAnyErrorDirective(RestartDirective),
		)
		// the any-error rule overrides every error-specific rule
		assert.Equal(t, RestartDirective, strategy.Directive(errors.NewPanicError(assert.AnError)))
		assert.Equal(t, RestartDirective, strategy.Directive(assert.AnError))
	})
}

func TestRetryBudget(t *testing.T) {
	strategy := New(WithRetry(3, time.Minute))
	assert.EqualValues(t, 3, strategy.MaxRetries())
	assert.Equal(t, time.Minute, strategy.ResetWindow())
}

func TestReset(t *testing.T) {
	strategy := New(
		WithAnyErrorDirective(RestartDirective),
		WithRetry(3, time.Minute),
	)
	strategy.Reset()
	assert.Equal(t, StopDirective, strategy.Directive(assert.AnError))
	assert.Equal(t, StopDirective, strategy.Directive(errors.NewPanicError(assert.AnError)))
	assert.Zero(t, strategy.MaxRetries())
}

func TestDirectiveString(t *testing.T) {
	assert.Equal(t, "Stop", StopDirective.String())
	assert.Equal(t, "Resume", ResumeDirective.String())
	assert.Equal(t, "Restart", RestartDirective.String())
	assert.Equal(t, "Escalate", EscalateDirective.String())
	assert.Empty(t, Directive(42).String())
}
