package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/roost-chat/roost/pkg/component"
	"github.com/roost-chat/roost/pkg/interaction"
)

// Kind is the application command type discriminator.
type Kind int

const (
	// KindSlash is invoked by typing /name in the chat box.
	KindSlash Kind = 1
	// KindUser appears in the context menu of a user.
	KindUser Kind = 2
	// KindMessage appears in the context menu of a message.
	KindMessage Kind = 3
)

// ErrInvalidCommand is returned for commands that fail definition validation.
var ErrInvalidCommand = errors.New("invalid command definition")

// Handler resolves an invocation into an interaction response.
type Handler func(ctx context.Context, ic *interaction.Interaction) (*component.InteractionResponse, error)

// Command is one application command definition.
type Command struct {
	Name        string
	Description string
	Kind        Kind
	GuildIDs    []string
	Options     []Option
	Handler     Handler
}

// Validate checks the definition against the platform's registration
// rules.
func (c *Command) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCommand)
	}
	switch c.Kind {
	case KindSlash:
		if c.Name != strings.ToLower(c.Name) || strings.ContainsRune(c.Name, ' ') {
			return fmt.Errorf("%w: name %q must be lowercase without spaces", ErrInvalidCommand, c.Name)
		}
		if c.Description == "" {
			return fmt.Errorf("%w: slash command %q needs a description", ErrInvalidCommand, c.Name)
		}
	case KindUser, KindMessage:
		if len(c.Options) > 0 {
			return fmt.Errorf("%w: %q context menu commands cannot take options", ErrInvalidCommand, c.Name)
		}
		if c.Description != "" {
			return fmt.Errorf("%w: %q context menu commands cannot have a description", ErrInvalidCommand, c.Name)
		}
	default:
		return fmt.Errorf("%w: unknown command kind %d", ErrInvalidCommand, c.Kind)
	}

	for i := range c.Options {
		if err := c.Options[i].validate(); err != nil {
			return fmt.Errorf("command %q: %w", c.Name, err)
		}
	}
	return nil
}

// Payload is the registration payload of one command.
type Payload struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Type        Kind            `json:"type"`
	Options     []OptionPayload `json:"options,omitempty"`
}

// ToPayload builds the registration payload.
func (c *Command) ToPayload() Payload {
	p := Payload{
		Name:        c.Name,
		Description: c.Description,
		Type:        c.Kind,
	}
	for i := range c.Options {
		p.Options = append(p.Options, c.Options[i].toPayload())
	}
	return p
}
