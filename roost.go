package roost

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/roost-chat/roost/internal/logging"
	httpadapter "github.com/roost-chat/roost/pkg/adapters/http"
	"github.com/roost-chat/roost/pkg/command"
	"github.com/roost-chat/roost/pkg/component"
	"github.com/roost-chat/roost/pkg/dispatch"
	"github.com/roost-chat/roost/pkg/interaction"
	"github.com/roost-chat/roost/pkg/manifest"
	"github.com/roost-chat/roost/pkg/observability"
	"github.com/roost-chat/roost/pkg/ports"
	"github.com/roost-chat/roost/pkg/ui"
)

// Client is the high-level entry point for the Roost SDK.
// It wraps the dispatcher and provides a simplified API for bots.
type Client struct {
	dispatcher *dispatch.Dispatcher
	commands   *command.Registry
	store      ports.ComponentStore
	logger     *slog.Logger
	hooks      dispatch.LifecycleHooks
	metrics    *observability.Metrics
	registerer prometheus.Registerer
}

// Option defines a functional option for configuring the Client.
type Option func(*Client)

// WithStore injects a pending-component store, such as the Redis
// adapter. Defaults to the in-memory store.
func WithStore(store ports.ComponentStore) Option {
	return func(c *Client) {
		c.store = store
	}
}

// WithLogger sets a custom structured logger for the client.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithCommands injects a pre-populated command registry.
func WithCommands(registry *command.Registry) Option {
	return func(c *Client) {
		c.commands = registry
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks dispatch.LifecycleHooks) Option {
	return func(c *Client) {
		c.hooks = hooks
	}
}

// WithMetrics wires a Prometheus metric bundle into the dispatch
// lifecycle and exposes it on the HTTP gateway's /metrics endpoint.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(c *Client) {
		c.metrics = metrics
	}
}

// WithRegisterer sets the Prometheus registerer used by WithMetrics.
// Defaults to prometheus.DefaultRegisterer.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Client) {
		c.registerer = reg
	}
}

// New initializes a Roost client.
func New(opts ...Option) (*Client, error) {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = logging.NewNop()
	}
	if c.commands == nil {
		c.commands = command.NewRegistry()
	}

	hooks := c.hooks
	if c.metrics != nil {
		reg := c.registerer
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		if err := c.metrics.Register(reg); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		hooks = c.metrics.Hooks().Join(hooks)
	}

	dispatchOpts := []dispatch.Option{
		dispatch.WithCommands(c.commands),
		dispatch.WithLogger(c.logger),
		dispatch.WithHooks(hooks),
	}
	if c.store != nil {
		dispatchOpts = append(dispatchOpts, dispatch.WithStore(c.store))
	}
	c.dispatcher = dispatch.New(dispatchOpts...)

	return c, nil
}

// RegisterCommand validates and registers application commands.
func (c *Client) RegisterCommand(cmds ...*command.Command) error {
	for _, cmd := range cmds {
		if err := cmd.Validate(); err != nil {
			return err
		}
		if err := c.commands.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}

// LoadManifest reads a YAML command manifest and registers every
// command in it, binding handlers by command name. Manifest entries
// without a matching handler are registered without one and will fail
// at dispatch time.
func (c *Client) LoadManifest(path string, handlers map[string]command.Handler) error {
	cmds, err := manifest.Load(path)
	if err != nil {
		return err
	}
	for _, cmd := range cmds {
		cmd.Handler = handlers[cmd.Name]
	}
	return c.RegisterCommand(cmds...)
}

// PresentModal registers a modal as pending and returns the interaction
// response that makes the platform display it.
func (c *Client) PresentModal(ctx context.Context, m *ui.Modal) (*component.InteractionResponse, error) {
	return c.dispatcher.Present(ctx, m)
}

// DismissModal removes a pending modal before it is submitted.
func (c *Client) DismissModal(ctx context.Context, customID string) error {
	return c.dispatcher.Drop(ctx, customID)
}

// HandleInteraction routes one decoded interaction.
func (c *Client) HandleInteraction(ctx context.Context, ic *interaction.Interaction) (*component.InteractionResponse, error) {
	return c.dispatcher.Dispatch(ctx, ic)
}

// Handler returns the HTTP gateway for the platform's webhook. The
// handler serves POST /interactions plus GET /healthz, and GET /metrics
// when WithMetrics was used.
func (c *Client) Handler() http.Handler {
	serverOpts := []httpadapter.ServerOption{httpadapter.WithLogger(c.logger)}
	if c.metrics != nil {
		serverOpts = append(serverOpts, httpadapter.WithDefaultMetrics())
	}
	return httpadapter.NewHandler(c.dispatcher, serverOpts...)
}

// Commands exposes the command registry.
func (c *Client) Commands() *command.Registry {
	return c.commands
}

// CommandPayloads returns the registration payloads for every command,
// in registration order, ready to sync with the platform.
func (c *Client) CommandPayloads() []command.Payload {
	return c.commands.Payloads()
}

// PendingModals lists the custom IDs of modals awaiting submission.
func (c *Client) PendingModals(ctx context.Context) ([]string, error) {
	return c.dispatcher.Pending(ctx)
}
