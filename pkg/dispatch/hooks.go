package dispatch

import (
	"context"
	"time"

	"github.com/roost-chat/roost/pkg/command"
	"github.com/roost-chat/roost/pkg/interaction"
	"github.com/roost-chat/roost/pkg/ui"
)

// LifecycleHooks defines callbacks for dispatch observability.
// All fields are optional.
type LifecycleHooks struct {
	// OnInteraction fires for every inbound interaction before routing.
	OnInteraction func(context.Context, *interaction.Interaction)
	// OnCommandInvoke fires after a command is resolved, before its handler.
	OnCommandInvoke func(context.Context, *interaction.Interaction, *command.Command)
	// OnModalSubmit fires after a modal's state is refreshed, before its callback.
	OnModalSubmit func(context.Context, *interaction.Interaction, *ui.Modal)
	// OnError fires whenever routing or a handler fails.
	OnError func(context.Context, *interaction.Interaction, error)
	// OnDispatchDone fires after routing finishes, successful or not,
	// with the time the interaction spent in Dispatch.
	OnDispatchDone func(context.Context, *interaction.Interaction, time.Duration)
}

// Join combines two hook sets. For each event h fires first, then other.
func (h LifecycleHooks) Join(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnInteraction: func(ctx context.Context, ic *interaction.Interaction) {
			h.emitInteraction(ctx, ic)
			other.emitInteraction(ctx, ic)
		},
		OnCommandInvoke: func(ctx context.Context, ic *interaction.Interaction, cmd *command.Command) {
			h.emitCommandInvoke(ctx, ic, cmd)
			other.emitCommandInvoke(ctx, ic, cmd)
		},
		OnModalSubmit: func(ctx context.Context, ic *interaction.Interaction, m *ui.Modal) {
			h.emitModalSubmit(ctx, ic, m)
			other.emitModalSubmit(ctx, ic, m)
		},
		OnError: func(ctx context.Context, ic *interaction.Interaction, err error) {
			h.emitError(ctx, ic, err)
			other.emitError(ctx, ic, err)
		},
		OnDispatchDone: func(ctx context.Context, ic *interaction.Interaction, elapsed time.Duration) {
			h.emitDispatchDone(ctx, ic, elapsed)
			other.emitDispatchDone(ctx, ic, elapsed)
		},
	}
}

func (h LifecycleHooks) emitInteraction(ctx context.Context, ic *interaction.Interaction) {
	if h.OnInteraction != nil {
		h.OnInteraction(ctx, ic)
	}
}

func (h LifecycleHooks) emitCommandInvoke(ctx context.Context, ic *interaction.Interaction, cmd *command.Command) {
	if h.OnCommandInvoke != nil {
		h.OnCommandInvoke(ctx, ic, cmd)
	}
}

func (h LifecycleHooks) emitModalSubmit(ctx context.Context, ic *interaction.Interaction, m *ui.Modal) {
	if h.OnModalSubmit != nil {
		h.OnModalSubmit(ctx, ic, m)
	}
}

func (h LifecycleHooks) emitError(ctx context.Context, ic *interaction.Interaction, err error) {
	if h.OnError != nil {
		h.OnError(ctx, ic, err)
	}
}

func (h LifecycleHooks) emitDispatchDone(ctx context.Context, ic *interaction.Interaction, elapsed time.Duration) {
	if h.OnDispatchDone != nil {
		h.OnDispatchDone(ctx, ic, elapsed)
	}
}
