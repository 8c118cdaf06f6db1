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

// spawn defaults
const (
	// DefaultInitMaxRetries is the default number of PreStart attempts.
	DefaultInitMaxRetries = 1
	// DefaultInitTimeout is the default time budget for PreStart.
	DefaultInitTimeout = time.Second
)

// spawnConfig collects the per-actor settings applied at spawn time.
type spawnConfig struct {
	supervisor     *supervisor.Supervisor
	mailbox        Mailbox
	initMaxRetries int
	initTimeout    time.Duration
}

// newSpawnConfig creates a spawnConfig with the defaults and applies the
// given options.
func newSpawnConfig(opts ...SpawnOption) *spawnConfig {
	config := &spawnConfig{
		supervisor:     supervisor.New(),
		mailbox:        NewDefaultMailbox(),
		initMaxRetries: DefaultInitMaxRetries,
		initTimeout:    DefaultInitTimeout,
	}
	for _, opt := range opts {
		opt.Apply(config)
	}
	return config
}

// SpawnOption is the interface that applies a spawn option.
type SpawnOption interface {
	// Apply sets the Option value of a spawnConfig.
	Apply(config *spawnConfig)
}

// enforce compilation error
var _ SpawnOption = spawnOption(nil)

// spawnOption implements the SpawnOption interface.
type spawnOption func(config *spawnConfig)

// Apply applies the spawn option
func (f spawnOption) Apply(config *spawnConfig) {
	f(config)
}

// WithSupervisor sets the supervision strategy the actor's parent applies
// when this actor fails. The default strategy stops the actor on any
// failure.
func WithSupervisor(strategy *supervisor.Supervisor) SpawnOption {
	return spawnOption(func(config *spawnConfig) {
		if strategy != nil {
			config.supervisor = strategy
		}
	})
}

// WithMailbox sets the mailbox of the actor. The default is the unbounded
// MPSC DefaultMailbox.
func WithMailbox(mailbox Mailbox) SpawnOption {
	return spawnOption(func(config *spawnConfig) {
		if mailbox != nil {
			config.mailbox = mailbox
		}
	})
}

// WithInitMaxRetries sets the number of PreStart attempts before the spawn is
// aborted.
func WithInitMaxRetries(retries int) SpawnOption {
	return spawnOption(func(config *spawnConfig) {
		if retries > 0 {
			config.initMaxRetries = retries
		}
	})
}

// WithInitTimeout sets the time budget for PreStart.
func WithInitTimeout(timeout time.Duration) SpawnOption {
	return spawnOption(func(config *spawnConfig) {
		if timeout > 0 {
			config.initTimeout = timeout
		}
	})
}
