// Package observability provides a Prometheus metrics bundle that plugs
// into the dispatcher's lifecycle hooks.
package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/roost-chat/roost/pkg/command"
	"github.com/roost-chat/roost/pkg/dispatch"
	"github.com/roost-chat/roost/pkg/interaction"
	"github.com/roost-chat/roost/pkg/ui"
)

// Metrics collects dispatch counters. Register it on a
// prometheus.Registerer and wire Hooks() into the dispatcher.
type Metrics struct {
	interactions *prometheus.CounterVec
	commands     *prometheus.CounterVec
	submissions  prometheus.Counter
	errors       prometheus.Counter
	durations    *prometheus.HistogramVec
}

// NewMetrics creates the metric bundle with the given namespace
// (e.g. "roost").
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		interactions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "interactions_total",
				Help:      "Inbound interactions by kind.",
			},
			[]string{"kind"},
		),
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "command_invocations_total",
				Help:      "Command invocations by command name.",
			},
			[]string{"command"},
		),
		submissions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "modal_submissions_total",
				Help:      "Modal submissions that reached a live modal.",
			},
		),
		errors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dispatch_errors_total",
				Help:      "Interactions that failed to dispatch.",
			},
		),
		durations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "dispatch_duration_seconds",
				Help:      "Time spent routing an interaction, by kind.",
			},
			[]string{"kind"},
		),
	}
}

// Register registers all collectors.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.interactions, m.commands, m.submissions, m.errors, m.durations} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// MustRegister registers all collectors, panicking on collision.
func (m *Metrics) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(m.interactions, m.commands, m.submissions, m.errors, m.durations)
}

// Hooks adapts the metrics to dispatch.LifecycleHooks.
func (m *Metrics) Hooks() dispatch.LifecycleHooks {
	return dispatch.LifecycleHooks{
		OnInteraction: func(ctx context.Context, ic *interaction.Interaction) {
			m.interactions.WithLabelValues(strconv.Itoa(int(ic.Kind))).Inc()
		},
		OnCommandInvoke: func(ctx context.Context, ic *interaction.Interaction, cmd *command.Command) {
			m.commands.WithLabelValues(cmd.Name).Inc()
		},
		OnModalSubmit: func(ctx context.Context, ic *interaction.Interaction, modal *ui.Modal) {
			m.submissions.Inc()
		},
		OnError: func(ctx context.Context, ic *interaction.Interaction, err error) {
			m.errors.Inc()
		},
		OnDispatchDone: func(ctx context.Context, ic *interaction.Interaction, elapsed time.Duration) {
			m.durations.WithLabelValues(strconv.Itoa(int(ic.Kind))).Observe(elapsed.Seconds())
		},
	}
}
