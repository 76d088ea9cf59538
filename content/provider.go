package content

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/sleeklegal-backend/errs"
)

// ErrClosed is returned by operations on a provider after Close
var ErrClosed = errors.New("provider closed")

// Phase is the lifecycle of a provider's list
type Phase string

const (
	PhaseLoading  Phase = "loading"
	PhaseReady    Phase = "ready"
	PhaseDegraded Phase = "degraded"
)

// State is a snapshot of a provider
type State[T any] struct {
	Items   []T    `json:"items"`
	Phase   Phase  `json:"phase"`
	Loading bool   `json:"loading"`
	Err     string `json:"error,omitempty"`
	Local   bool   `json:"local"`
}

// SeedResult reports what Seed did
type SeedResult struct {
	Skipped  bool   `json:"skipped"`
	Inserted int    `json:"inserted"`
	Message  string `json:"message"`
}

type options struct {
	notifier    Notifier
	logger      *zerolog.Logger
	emptyPolicy EmptyPolicy
	now         func() time.Time
}

type Option func(*options)

func WithNotifier(n Notifier) Option {
	return func(o *options) {
		if n != nil {
			o.notifier = n
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &l
	}
}

func WithEmptyPolicy(p EmptyPolicy) Option {
	return func(o *options) {
		o.emptyPolicy = p
	}
}

// WithClock replaces time.Now for stamping local entries
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// Provider holds the current list of one collection and performs every
// change against the backend, or in memory when no backend is configured.
// The mutex guards state only and is never held during I/O.
type Provider[T any, P any] struct {
	coll     Collection[T, P]
	strategy Strategy[T, P]
	notifier Notifier
	logger   zerolog.Logger
	empty    EmptyPolicy
	now      func() time.Time

	mu      sync.RWMutex
	items   []T
	phase   Phase
	loading bool
	lastErr string
	gen     uint64
	closed  bool
}

// NewProvider builds a provider for coll. The strategy is chosen here, once:
// a nil or unconfigured gateway means the provider runs in memory.
func NewProvider[T any, P any, R any](coll Collection[T, P], gateway Gateway[R], wire Wire[T, P, R], opts ...Option) *Provider[T, P] {
	p := newProvider(coll, opts...)
	if gateway != nil && gateway.IsAvailable() {
		p.strategy = RemoteStrategy(gateway, wire)
	} else {
		p.strategy = p.localStrategy()
	}
	return p
}

// NewLocalProvider builds a provider that never talks to a backend
func NewLocalProvider[T any, P any](coll Collection[T, P], opts ...Option) *Provider[T, P] {
	p := newProvider(coll, opts...)
	p.strategy = p.localStrategy()
	return p
}

func newProvider[T any, P any](coll Collection[T, P], opts ...Option) *Provider[T, P] {
	o := options{
		notifier: nopNotifier{},
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(&o)
	}

	logger := log.With().Str("collection", coll.Name).Logger()
	if o.logger != nil {
		logger = o.logger.With().Str("collection", coll.Name).Logger()
	}

	return &Provider[T, P]{
		coll:     coll,
		notifier: o.notifier,
		logger:   logger,
		empty:    o.emptyPolicy,
		now:      o.now,
		phase:    PhaseLoading,
		loading:  true,
	}
}

func (p *Provider[T, P]) localStrategy() Strategy[T, P] {
	return &localStrategy[T, P]{coll: p.coll, lookup: p.Get, now: p.now}
}

// Name returns the collection name
func (p *Provider[T, P]) Name() string {
	return p.coll.Name
}

// Remote reports whether changes are sent to a backend
func (p *Provider[T, P]) Remote() bool {
	return p.strategy.Remote()
}

// Refresh reloads the list. Without a backend the seed list is published
// and nothing is fetched. When refreshes overlap only the most recently
// started one publishes. The returned error is also recorded in State.
func (p *Provider[T, P]) Refresh(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	p.gen++
	gen := p.gen
	p.loading = true
	p.mu.Unlock()

	if !p.strategy.Remote() {
		p.publish(gen, p.coll.Seed(), PhaseDegraded, "")
		p.logger.Info().Msg("backend not configured, serving bundled data")
		return nil
	}

	items, err := p.strategy.List(ctx)
	if err != nil {
		reason := errs.Reason(err)
		if p.publish(gen, p.coll.Seed(), PhaseDegraded, reason) {
			p.logger.Error().Err(err).Msg("failed to load from backend, serving bundled data")
			p.notify("refresh", LevelError, fmt.Sprintf("Failed to load %s: %s. Using local data instead.", p.coll.Name, reason), false)
		}
		return err
	}

	if len(items) == 0 {
		if p.empty == EmptyIsEmpty {
			p.publish(gen, []T{}, PhaseReady, "")
			return nil
		}
		if p.publish(gen, p.coll.Seed(), PhaseDegraded, "") {
			p.logger.Info().Msg("backend table is empty, serving bundled data")
		}
		return nil
	}

	if p.publish(gen, dedupe(items, p.coll.ID), PhaseReady, "") {
		p.logger.Debug().Int("count", len(items)).Msg("loaded from backend")
	}
	return nil
}

// publish installs a refresh result unless a newer refresh has started
// or the provider was closed. It reports whether the result was kept.
func (p *Provider[T, P]) publish(gen uint64, items []T, phase Phase, reason string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || gen != p.gen {
		return false
	}
	p.items = items
	p.phase = phase
	p.lastErr = reason
	p.loading = false
	return true
}

// apply runs a reducer over the current list. Results that arrive after
// Close are dropped.
func (p *Provider[T, P]) apply(reduce func([]T) []T) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return false
	}
	p.items = reduce(p.items)
	return true
}

// Add validates item and creates it. On failure the list is unchanged.
func (p *Provider[T, P]) Add(ctx context.Context, item T) (T, error) {
	var zero T
	if p.isClosed() {
		return zero, ErrClosed
	}

	item = p.coll.prepare(item, p.now())
	if err := p.coll.Validate(item); err != nil {
		p.fail("add", err)
		return zero, err
	}

	created, err := p.strategy.Insert(ctx, item)
	if err != nil {
		p.fail("add", err)
		return zero, err
	}

	if !p.apply(func(items []T) []T {
		return reduceInsert(items, created, p.coll.ID, p.coll.Placement)
	}) {
		return zero, ErrClosed
	}
	p.succeed("add", "added")
	return created, nil
}

// Update merges patch into the entry with the given id. The returned entry
// is what the backend stored.
func (p *Provider[T, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	var zero T
	if p.isClosed() {
		return zero, ErrClosed
	}

	if err := p.coll.validatePatch(patch); err != nil {
		p.fail("update", err)
		return zero, err
	}

	updated, err := p.strategy.Update(ctx, id, patch)
	if err != nil {
		p.fail("update", err)
		return zero, err
	}

	if !p.apply(func(items []T) []T {
		return reduceUpdate(items, updated, p.coll.ID)
	}) {
		return zero, ErrClosed
	}
	p.succeed("update", "updated")
	return updated, nil
}

// Delete removes the entry once the backend has confirmed it. Deleting an
// unknown id fails with errs.ErrNotFound.
func (p *Provider[T, P]) Delete(ctx context.Context, id string) error {
	if p.isClosed() {
		return ErrClosed
	}

	if err := p.strategy.Delete(ctx, id); err != nil {
		p.fail("delete", err)
		return err
	}

	if !p.apply(func(items []T) []T {
		return reduceDelete(items, id, p.coll.ID)
	}) {
		return ErrClosed
	}
	p.succeed("delete", "deleted")
	return nil
}

// Seed fills an empty backend table with the bundled list. A table that
// already has rows is left alone.
func (p *Provider[T, P]) Seed(ctx context.Context) (SeedResult, error) {
	if p.isClosed() {
		return SeedResult{}, ErrClosed
	}

	if !p.strategy.Remote() {
		err := errs.NewConfigMissingError("database")
		p.notify("seed", LevelError, "Backend is not configured. Cannot seed data.", false)
		return SeedResult{}, err
	}

	count, err := p.strategy.Count(ctx)
	if err != nil {
		p.fail("seed", err)
		return SeedResult{}, err
	}
	if count > 0 {
		msg := fmt.Sprintf("%s data already exists, skipping seed operation", p.coll.Label)
		p.notify("seed", LevelInfo, msg, false)
		return SeedResult{Skipped: true, Message: msg}, nil
	}

	seed := p.coll.Seed()
	for i := range seed {
		seed[i] = p.coll.Strip(seed[i])
	}
	inserted, err := p.strategy.InsertMany(ctx, seed)
	if err != nil {
		p.fail("seed", err)
		return SeedResult{}, err
	}

	msg := fmt.Sprintf("Initial %s data has been created", p.coll.Entity)
	p.logger.Info().Int("inserted", inserted).Msg("seeded backend table")
	p.notify("seed", LevelSuccess, msg, false)

	if err := p.Refresh(ctx); err != nil && !errors.Is(err, ErrClosed) {
		return SeedResult{Inserted: inserted, Message: msg}, err
	}
	return SeedResult{Inserted: inserted, Message: msg}, nil
}

// Get returns the entry with the given id from the current list
func (p *Provider[T, P]) Get(id string) (T, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return find(p.items, id, p.coll.ID)
}

// List returns a copy of the current list
func (p *Provider[T, P]) List() []T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]T{}, p.items...)
}

func (p *Provider[T, P]) State() State[T] {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return State[T]{
		Items:   append([]T{}, p.items...),
		Phase:   p.phase,
		Loading: p.loading,
		Err:     p.lastErr,
		Local:   !p.strategy.Remote(),
	}
}

// Summary is State without the items
type Summary struct {
	Phase   Phase  `json:"phase"`
	Count   int    `json:"count"`
	Loading bool   `json:"loading"`
	Remote  bool   `json:"remote"`
	Err     string `json:"error,omitempty"`
}

func (p *Provider[T, P]) Summary() Summary {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Summary{
		Phase:   p.phase,
		Count:   len(p.items),
		Loading: p.loading,
		Remote:  p.strategy.Remote(),
		Err:     p.lastErr,
	}
}

// Close stops the provider from publishing. Operations still in flight
// complete but their results are discarded.
func (p *Provider[T, P]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
}

func (p *Provider[T, P]) isClosed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.closed
}

func (p *Provider[T, P]) succeed(op, verb string) {
	local := !p.strategy.Remote()
	msg := fmt.Sprintf("%s %s successfully!", p.coll.Label, verb)
	if local {
		msg = fmt.Sprintf("%s %s successfully! (Local mode)", p.coll.Label, verb)
	}
	p.logger.Info().Str("operation", op).Bool("local", local).Msg(msg)
	p.notify(op, LevelSuccess, msg, local)
}

func (p *Provider[T, P]) fail(op string, err error) {
	reason := errs.Reason(err)
	p.logger.Error().Err(err).Str("operation", op).Msg("operation failed")
	p.notify(op, LevelError, fmt.Sprintf("Failed to %s %s: %s", op, p.coll.Entity, reason), !p.strategy.Remote())
}

func (p *Provider[T, P]) notify(op string, level Level, msg string, local bool) {
	p.notifier.Notify(Notification{
		Collection: p.coll.Name,
		Operation:  op,
		Level:      level,
		Message:    msg,
		Local:      local,
	})
}
