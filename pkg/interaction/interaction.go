// Package interaction models inbound interaction payloads received from
// the platform gateway: pings, application command invocations and modal
// submissions. It only decodes; routing lives in pkg/dispatch.
package interaction

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/roost-chat/roost/pkg/component"
)

// Kind is the wire discriminator of an inbound interaction.
type Kind int

const (
	// KindPing is the gateway liveness probe.
	KindPing Kind = 1
	// KindCommand is an application command invocation.
	KindCommand Kind = 2
	// KindModalSubmit is a submitted modal form.
	KindModalSubmit Kind = 5
)

// User identifies the account that triggered the interaction.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// OptionValue is one supplied command option.
type OptionValue struct {
	Name  string `json:"name"`
	Type  int    `json:"type"`
	Value any    `json:"value"`
}

// CommandData carries the payload of a command invocation.
type CommandData struct {
	Name    string        `json:"name"`
	Type    int           `json:"type"`
	Options []OptionValue `json:"options,omitempty"`
}

// ModalSubmitData carries the payload of a submitted modal, with the
// user-entered values nested in the same row structure the modal was
// presented with.
type ModalSubmitData struct {
	CustomID   string                `json:"custom_id"`
	Components []component.ActionRow `json:"components"`
}

// Interaction is one inbound event from the platform. Exactly one of
// Command or ModalSubmit is populated, matching Kind.
type Interaction struct {
	ID            string
	ApplicationID string
	Kind          Kind
	Token         string
	GuildID       string
	ChannelID     string
	User          *User
	Command       *CommandData
	ModalSubmit   *ModalSubmitData
}

// Option reads a supplied command option by name.
func (i *Interaction) Option(name string) (OptionValue, bool) {
	if i.Command == nil {
		return OptionValue{}, false
	}
	for _, opt := range i.Command.Options {
		if opt.Name == name {
			return opt, true
		}
	}
	return OptionValue{}, false
}

// FieldValue reads a submitted text-input value by custom ID.
func (i *Interaction) FieldValue(customID string) (string, bool) {
	if i.ModalSubmit == nil {
		return "", false
	}
	for _, row := range i.ModalSubmit.Components {
		for _, child := range row.Components {
			ti, ok := child.(component.TextInput)
			if !ok {
				continue
			}
			if ti.CustomID == customID {
				return ti.Value, true
			}
		}
	}
	return "", false
}

// UnmarshalJSON resolves the data payload against the interaction kind.
func (i *Interaction) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID            string          `json:"id"`
		ApplicationID string          `json:"application_id"`
		Type          Kind            `json:"type"`
		Token         string          `json:"token"`
		GuildID       string          `json:"guild_id"`
		ChannelID     string          `json:"channel_id"`
		User          *User           `json:"user"`
		Data          json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	i.ID = raw.ID
	i.ApplicationID = raw.ApplicationID
	i.Kind = raw.Type
	i.Token = raw.Token
	i.GuildID = raw.GuildID
	i.ChannelID = raw.ChannelID
	i.User = raw.User

	switch raw.Type {
	case KindPing:
		// No data payload.
	case KindCommand:
		var cmd CommandData
		if err := json.Unmarshal(raw.Data, &cmd); err != nil {
			return fmt.Errorf("decoding command data: %w", err)
		}
		i.Command = &cmd
	case KindModalSubmit:
		var submit ModalSubmitData
		if err := json.Unmarshal(raw.Data, &submit); err != nil {
			return fmt.Errorf("decoding modal submit data: %w", err)
		}
		i.ModalSubmit = &submit
	default:
		return fmt.Errorf("unsupported interaction type %d", raw.Type)
	}
	return nil
}

// Decode reads one interaction from r.
func Decode(r io.Reader) (*Interaction, error) {
	var ic Interaction
	if err := json.NewDecoder(r).Decode(&ic); err != nil {
		return nil, fmt.Errorf("decoding interaction: %w", err)
	}
	return &ic, nil
}
