package command

import "fmt"

// OptionType is the wire type of a command option.
type OptionType int

const (
	OptionSubCommand      OptionType = 1
	OptionSubCommandGroup OptionType = 2
	OptionString          OptionType = 3
	OptionInteger         OptionType = 4
	OptionBoolean         OptionType = 5
	OptionUser            OptionType = 6
	OptionChannel         OptionType = 7
	OptionNumber          OptionType = 10
)

// Choice is one fixed value a user can pick for an option.
type Choice struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Option declares one parameter of a slash command. Subcommands nest
// further options.
type Option struct {
	Name        string
	Description string
	Type        OptionType
	Required    bool
	Choices     []Choice
	Options     []Option
}

func (o *Option) validate() error {
	if o.Name == "" {
		return fmt.Errorf("%w: option name is required", ErrInvalidCommand)
	}
	if o.Description == "" {
		return fmt.Errorf("%w: option %q needs a description", ErrInvalidCommand, o.Name)
	}
	nested := o.Type == OptionSubCommand || o.Type == OptionSubCommandGroup
	if !nested && len(o.Options) > 0 {
		return fmt.Errorf("%w: option %q cannot nest options", ErrInvalidCommand, o.Name)
	}
	if nested && o.Required {
		return fmt.Errorf("%w: subcommand %q cannot be required", ErrInvalidCommand, o.Name)
	}
	for i := range o.Options {
		if err := o.Options[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

// OptionPayload is the wire form of an option.
type OptionPayload struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Type        OptionType      `json:"type"`
	Required    bool            `json:"required,omitempty"`
	Choices     []Choice        `json:"choices,omitempty"`
	Options     []OptionPayload `json:"options,omitempty"`
}

func (o *Option) toPayload() OptionPayload {
	p := OptionPayload{
		Name:        o.Name,
		Description: o.Description,
		Type:        o.Type,
		Required:    o.Required,
		Choices:     o.Choices,
	}
	for i := range o.Options {
		p.Options = append(p.Options, o.Options[i].toPayload())
	}
	return p
}
