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
	"regexp"
	"sync"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	gerrors "github.com/janus-actors/janus/errors"
	"github.com/janus-actors/janus/eventstream"
	"github.com/janus-actors/janus/internal/workerpool"
	"github.com/janus-actors/janus/log"
	"github.com/janus-actors/janus/supervisor"
)

// DefaultShutdownTimeout is the default shutdown grace period.
const DefaultShutdownTimeout = 10 * time.Second

// nameRegex matches valid actor and actor system names.
var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-_]*$`)

// ActorSystem is the root of an actor tree and the registry of every live
// actor in it. All actors of a system share one worker pool and one task
// scheduler.
type ActorSystem interface {
	// Name returns the actor system name.
	Name() string
	// Logger returns the logger used in the actor system.
	Logger() log.Logger
	// Running returns true when the actor system is up and not shutting down.
	Running() bool
	// Spawn creates a top-level actor under the root guardian. Spawning under
	// a name already taken stops the previous actor and replaces it.
	Spawn(ctx context.Context, name string, factory Factory, opts ...SpawnOption) (*PID, error)
	// ActorOf returns the live actor reference registered at the given path.
	ActorOf(path *Path) (*PID, error)
	// Select returns a path-based selection that resolves against the
	// registry on every send.
	Select(path *Path) *ActorSelection
	// Actors returns the references of all live actors, the root guardian
	// excluded.
	Actors() []*PID
	// NumActors returns the number of live actors, the root guardian
	// excluded.
	NumActors() uint64
	// Subscribe returns an event stream subscriber listening on the
	// lifecycle, deadletters and supervision topics.
	Subscribe() eventstream.Subscriber
	// Unsubscribe removes the given subscriber from the event stream.
	Unsubscribe(subscriber eventstream.Subscriber)
	// Shutdown stops all actors, the scheduler and the worker pool within
	// the shutdown grace period.
	Shutdown(ctx context.Context) error
}

// actorSystem is the ActorSystem implementation.
type actorSystem struct {
	name   string
	logger log.Logger

	started      *atomic.Bool
	shuttingDown *atomic.Bool

	poolSize        int
	shutdownTimeout time.Duration

	workerPool   *workerpool.Pool
	scheduler    *scheduler
	eventsStream eventstream.Stream

	registryMu sync.RWMutex
	registry   map[string]*PID

	actorCounter *atomic.Uint64
	root         *PID
}

// enforce compilation error
var _ ActorSystem = (*actorSystem)(nil)

// NewActorSystem creates an actor system, starts its execution substrate and
// spawns the root guardian at "/name".
func NewActorSystem(name string, opts ...Option) (ActorSystem, error) {
	if name == "" {
		return nil, gerrors.ErrNameRequired
	}
	if !nameRegex.MatchString(name) {
		return nil, gerrors.ErrInvalidActorSystemName
	}

	system := &actorSystem{
		name:            name,
		logger:          log.DefaultLogger,
		started:         atomic.NewBool(false),
		shuttingDown:    atomic.NewBool(false),
		shutdownTimeout: DefaultShutdownTimeout,
		registry:        make(map[string]*PID),
		actorCounter:    atomic.NewUint64(0),
	}

	for _, opt := range opts {
		opt.Apply(system)
	}

	system.workerPool = workerpool.New(workerpool.WithPoolSize(system.poolSize))
	system.scheduler = newScheduler(system.logger, system.shutdownTimeout)
	system.eventsStream = eventstream.New()

	system.workerPool.Start()
	system.scheduler.Start(context.Background())

	root := newPID(system, nil, ActorID(system.actorCounter.Inc()), RootPath(name), func() Actor { return new(rootGuardian) }, newSpawnConfig())
	if err := root.init(context.Background()); err != nil {
		system.scheduler.Stop(context.Background())
		_ = system.workerPool.Stop(context.Background())
		return nil, err
	}
	system.root = root
	system.register(root)

	system.started.Store(true)
	system.logger.Infof("ActorSystem %s started", name)
	return system, nil
}

// Name returns the actor system name
func (x *actorSystem) Name() string {
	return x.name
}

// Logger returns the logger used in the actor system
func (x *actorSystem) Logger() log.Logger {
	return x.logger
}

// Running returns true when the actor system is up and not shutting down
func (x *actorSystem) Running() bool {
	return x.started.Load() && !x.shuttingDown.Load()
}

// Spawn creates a top-level actor under the root guardian
func (x *actorSystem) Spawn(ctx context.Context, name string, factory Factory, opts ...SpawnOption) (*PID, error) {
	return x.spawnAt(ctx, x.root, name, factory, opts...)
}

// spawnAt creates an actor as a child of the given parent. A live actor
// already registered under the same name is stopped and replaced.
func (x *actorSystem) spawnAt(ctx context.Context, parent *PID, name string, factory Factory, opts ...SpawnOption) (*PID, error) {
	if !x.Running() {
		return nil, gerrors.ErrSystemShuttingDown
	}
	if !nameRegex.MatchString(name) {
		return nil, gerrors.ErrInvalidActorName
	}

	path := parent.path.Child(name)
	if existing, ok := x.lookup(path.String()); ok {
		existing.tellSystem(new(poisonPill))
	}

	pid := newPID(x, parent, ActorID(x.actorCounter.Inc()), path, factory, newSpawnConfig(opts...))
	x.register(pid)
	parent.ctx.addChild(pid)

	if err := pid.init(ctx); err != nil {
		pid.setState(StoppedState)
		pid.mailbox.Dispose()
		x.unregister(pid)
		parent.ctx.removeChild(name, pid.id)
		return nil, err
	}

	x.publishActorEvent(&ActorStarted{ID: pid.id, Path: path, At: time.Now()})
	return pid, nil
}

// ActorOf returns the live actor reference registered at the given path
func (x *actorSystem) ActorOf(path *Path) (*PID, error) {
	pid, ok := x.lookup(path.String())
	if !ok {
		return nil, gerrors.ErrActorNotFound
	}
	return pid, nil
}

// Select returns a path-based selection
func (x *actorSystem) Select(path *Path) *ActorSelection {
	return newActorSelection(x, path)
}

// Actors returns the references of all live actors, the root guardian
// excluded
func (x *actorSystem) Actors() []*PID {
	x.registryMu.RLock()
	actors := make([]*PID, 0, len(x.registry))
	for _, pid := range x.registry {
		if pid.Equals(x.root) {
			continue
		}
		actors = append(actors, pid)
	}
	x.registryMu.RUnlock()
	return actors
}

// NumActors returns the number of live actors, the root guardian excluded
func (x *actorSystem) NumActors() uint64 {
	x.registryMu.RLock()
	count := len(x.registry)
	x.registryMu.RUnlock()
	if count == 0 {
		return 0
	}
	return uint64(count - 1)
}

// Subscribe returns an event stream subscriber listening on all the system
// topics
func (x *actorSystem) Subscribe() eventstream.Subscriber {
	subscriber := x.eventsStream.AddSubscriber()
	x.eventsStream.Subscribe(subscriber, EventsTopic)
	x.eventsStream.Subscribe(subscriber, DeadlettersTopic)
	x.eventsStream.Subscribe(subscriber, SupervisionTopic)
	return subscriber
}

// Unsubscribe removes the given subscriber from the event stream
func (x *actorSystem) Unsubscribe(subscriber eventstream.Subscriber) {
	x.eventsStream.RemoveSubscriber(subscriber)
}

// Shutdown stops all actors, the scheduler and the worker pool. Every send
// attempted after Shutdown begins fails with ErrMailboxClosed.
func (x *actorSystem) Shutdown(ctx context.Context) error {
	if !x.started.Load() || x.shuttingDown.Swap(true) {
		return gerrors.ErrSystemShuttingDown
	}
	x.logger.Infof("ActorSystem %s is shutting down...", x.name)

	ctx, cancel := context.WithTimeout(ctx, x.shutdownTimeout)
	defer cancel()

	// no more delayed tasks fire past this point
	x.scheduler.Stop(ctx)

	// stop the top-level actors in parallel; each recursively stops its
	// own subtree
	eg := new(errgroup.Group)
	for _, child := range x.root.Children() {
		eg.Go(func() error {
			return child.Shutdown(ctx)
		})
	}
	err := eg.Wait()
	err = multierr.Append(err, x.root.Shutdown(ctx))
	err = multierr.Append(err, x.workerPool.Stop(ctx))

	x.eventsStream.Close()
	x.started.Store(false)
	x.logger.Infof("ActorSystem %s shut down", x.name)
	return err
}

// isShuttingDown returns true once Shutdown has begun.
func (x *actorSystem) isShuttingDown() bool {
	return x.shuttingDown.Load()
}

// register records a live actor in the registry.
func (x *actorSystem) register(pid *PID) {
	x.registryMu.Lock()
	x.registry[pid.path.String()] = pid
	x.registryMu.Unlock()
}

// unregister forgets a stopped actor, but only when the registry still holds
// that exact cell. A replacement under the same path has a different ID and
// must not be evicted by its predecessor's teardown.
func (x *actorSystem) unregister(pid *PID) {
	x.registryMu.Lock()
	if registered, ok := x.registry[pid.path.String()]; ok && registered.ID() == pid.ID() {
		delete(x.registry, pid.path.String())
	}
	x.registryMu.Unlock()
}

// lookup resolves a path string to the live actor registered at it.
func (x *actorSystem) lookup(path string) (*PID, bool) {
	x.registryMu.RLock()
	pid, ok := x.registry[path]
	x.registryMu.RUnlock()
	return pid, ok
}

// publishActorEvent publishes a lifecycle event.
func (x *actorSystem) publishActorEvent(event any) {
	x.eventsStream.Publish(EventsTopic, event)
}

// publishDeadletter publishes a dropped message notification.
func (x *actorSystem) publishDeadletter(path *Path, message any, reason error) {
	x.eventsStream.Publish(DeadlettersTopic, &Deadletter{
		Path:    path,
		Message: message,
		Reason:  reason,
		At:      time.Now(),
	})
}

// publishSupervisionEvent publishes the directive applied to a failing
// actor.
func (x *actorSystem) publishSupervisionEvent(child *PID, signal *supervisionSignal, directive supervisor.Directive) {
	x.eventsStream.Publish(SupervisionTopic, &SupervisionEvent{
		Path:      child.path,
		Err:       signal.err,
		Directive: directive,
		At:        signal.at,
	})
}
