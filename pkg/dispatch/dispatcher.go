// Package dispatch routes inbound interactions to their handlers: pings
// are acknowledged, command invocations resolve through the command
// registry, and modal submissions are matched to pending modals by
// custom ID, refreshed, and called back.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/roost-chat/roost/internal/logging"
	"github.com/roost-chat/roost/pkg/adapters/memory"
	"github.com/roost-chat/roost/pkg/command"
	"github.com/roost-chat/roost/pkg/component"
	"github.com/roost-chat/roost/pkg/interaction"
	"github.com/roost-chat/roost/pkg/ports"
	"github.com/roost-chat/roost/pkg/ui"
)

// ErrUnknownComponent is returned for submissions whose custom ID has no
// pending registration, typically because the modal expired.
var ErrUnknownComponent = errors.New("no pending component for custom id")

// ErrUnsupportedInteraction is returned for interaction kinds the
// dispatcher cannot route.
var ErrUnsupportedInteraction = errors.New("unsupported interaction kind")

// ErrNoHandler is returned when a matched command has no handler attached.
var ErrNoHandler = errors.New("command has no handler")

// Dispatcher connects the pieces of the SDK: a component store holding
// pending registrations, a command registry, and the live modals whose
// handlers run in this process.
//
// Dispatch is safe to call concurrently for distinct interactions. For a
// given modal the refresh-then-callback sequence runs within a single
// Dispatch call, and non-persistent modals are claimed before their
// callback so it fires at most once even under duplicate submissions.
type Dispatcher struct {
	store    ports.ComponentStore
	commands *command.Registry
	logger   *slog.Logger
	hooks    LifecycleHooks
	now      func() time.Time

	mu   sync.Mutex
	live map[string]liveModal
}

// liveModal pairs an in-process modal with the moment its submission
// window closes. A zero deadline never expires.
type liveModal struct {
	modal    *ui.Modal
	deadline time.Time
}

// Option configures the Dispatcher.
type Option func(*Dispatcher)

// WithStore sets the pending-component store. Defaults to the in-memory
// adapter.
func WithStore(store ports.ComponentStore) Option {
	return func(d *Dispatcher) { d.store = store }
}

// WithCommands sets the command registry. Defaults to an empty one.
func WithCommands(registry *command.Registry) Option {
	return func(d *Dispatcher) { d.commands = registry }
}

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger }
}

// WithHooks registers observability hooks.
func WithHooks(hooks LifecycleHooks) Option {
	return func(d *Dispatcher) { d.hooks = hooks }
}

// New creates a Dispatcher.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		live:   make(map[string]liveModal),
		logger: logging.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.store == nil {
		d.store = memory.NewStore()
	}
	if d.commands == nil {
		d.commands = command.NewRegistry()
	}
	return d
}

// Commands exposes the command registry.
func (d *Dispatcher) Commands() *command.Registry { return d.commands }

// Present registers a modal as pending and returns the response that
// makes the platform show it. The modal's timeout becomes the store TTL;
// persistent modals are saved without one.
func (d *Dispatcher) Present(ctx context.Context, m *ui.Modal) (*component.InteractionResponse, error) {
	data := m.CallbackData()

	var ttl time.Duration
	if timeout, ok := m.Timeout(); ok {
		ttl = timeout
	}

	record := ports.PendingModal{
		CustomID:   data.CustomID,
		Data:       data,
		Persistent: m.IsPersistent(),
		CreatedAt:  time.Now().UTC(),
	}
	if err := d.store.Save(ctx, data.CustomID, record, ttl); err != nil {
		return nil, fmt.Errorf("registering modal %q: %w", data.CustomID, err)
	}

	entry := liveModal{modal: m}
	if ttl > 0 {
		entry.deadline = d.now().Add(ttl)
	}

	d.mu.Lock()
	d.sweepLocked()
	d.live[data.CustomID] = entry
	d.mu.Unlock()

	d.logger.Debug("modal presented", "custom_id", data.CustomID, "persistent", record.Persistent, "ttl", ttl)
	return component.NewModalResponse(data), nil
}

// Drop discards a pending modal before it is submitted.
func (d *Dispatcher) Drop(ctx context.Context, customID string) error {
	d.mu.Lock()
	delete(d.live, customID)
	d.sweepLocked()
	d.mu.Unlock()
	return d.store.Delete(ctx, customID)
}

// sweepLocked evicts live modals whose submission window closed without
// a submission, keeping the map aligned with store-side TTL expiry.
// Callers hold d.mu.
func (d *Dispatcher) sweepLocked() {
	now := d.now()
	for id, entry := range d.live {
		if !entry.deadline.IsZero() && now.After(entry.deadline) {
			delete(d.live, id)
		}
	}
}

// Pending lists the custom IDs with a registered modal.
func (d *Dispatcher) Pending(ctx context.Context) ([]string, error) {
	return d.store.List(ctx)
}

// Dispatch routes one inbound interaction and produces the response to
// send back.
func (d *Dispatcher) Dispatch(ctx context.Context, ic *interaction.Interaction) (*component.InteractionResponse, error) {
	d.hooks.emitInteraction(ctx, ic)
	start := time.Now()

	resp, err := d.route(ctx, ic)
	d.hooks.emitDispatchDone(ctx, ic, time.Since(start))
	if err != nil {
		d.hooks.emitError(ctx, ic, err)
		d.logger.Warn("dispatch failed", "interaction_id", ic.ID, "kind", int(ic.Kind), "err", err)
		return nil, err
	}
	return resp, nil
}

func (d *Dispatcher) route(ctx context.Context, ic *interaction.Interaction) (*component.InteractionResponse, error) {
	switch ic.Kind {
	case interaction.KindPing:
		return component.NewPongResponse(), nil
	case interaction.KindCommand:
		return d.dispatchCommand(ctx, ic)
	case interaction.KindModalSubmit:
		return d.dispatchModalSubmit(ctx, ic)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedInteraction, ic.Kind)
	}
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, ic *interaction.Interaction) (*component.InteractionResponse, error) {
	if ic.Command == nil {
		return nil, fmt.Errorf("%w: command interaction without data", ErrUnsupportedInteraction)
	}

	cmd, err := d.commands.Lookup(ic.Command.Name, command.Kind(ic.Command.Type))
	if err != nil {
		return nil, err
	}
	if cmd.Handler == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoHandler, cmd.Name)
	}

	d.hooks.emitCommandInvoke(ctx, ic, cmd)
	d.logger.Debug("command invoked", "name", cmd.Name, "interaction_id", ic.ID)
	return cmd.Handler(ctx, ic)
}

func (d *Dispatcher) dispatchModalSubmit(ctx context.Context, ic *interaction.Interaction) (*component.InteractionResponse, error) {
	if ic.ModalSubmit == nil {
		return nil, fmt.Errorf("%w: modal submit without data", ErrUnsupportedInteraction)
	}
	customID := ic.ModalSubmit.CustomID

	// The store is authoritative for expiry: an elapsed TTL means the
	// submission window closed even if the modal object is still around.
	record, err := d.store.Load(ctx, customID)
	if err != nil {
		if errors.Is(err, ports.ErrComponentNotFound) {
			// The window closed; the live entry is dead weight now.
			d.mu.Lock()
			delete(d.live, customID)
			d.mu.Unlock()
			return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, customID)
		}
		return nil, fmt.Errorf("loading component %q: %w", customID, err)
	}

	d.mu.Lock()
	entry, ok := d.live[customID]
	if ok && !record.Persistent {
		// Claim the one-shot modal before running its callback.
		delete(d.live, customID)
	}
	d.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q has no live handler", ErrUnknownComponent, customID)
	}

	if !record.Persistent {
		if err := d.store.Delete(ctx, customID); err != nil {
			d.logger.Warn("failed to drop submitted modal", "custom_id", customID, "err", err)
		}
	}

	m := entry.modal
	m.RefreshState(ic)
	d.hooks.emitModalSubmit(ctx, ic, m)
	d.logger.Debug("modal submitted", "custom_id", customID, "interaction_id", ic.ID)

	if err := m.Callback(ctx, ic); err != nil {
		return nil, fmt.Errorf("modal %q callback: %w", customID, err)
	}
	return &component.InteractionResponse{Type: component.ResponseDeferred}, nil
}
