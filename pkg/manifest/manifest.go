// Package manifest loads application command declarations from YAML
// files, so a bot's command surface can be reviewed and versioned
// outside of Go code. Handlers are bound after loading by name.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/roost-chat/roost/pkg/command"
)

// ErrUnknownKind is returned for a command kind the manifest schema
// does not recognize.
var ErrUnknownKind = errors.New("unknown command kind")

// ErrUnknownOptionType is returned for an option type the manifest
// schema does not recognize.
var ErrUnknownOptionType = errors.New("unknown option type")

// File is the top-level manifest document.
type File struct {
	Commands []Entry `mapstructure:"commands"`
}

// Entry declares one application command.
type Entry struct {
	Name        string        `mapstructure:"name"`
	Description string        `mapstructure:"description"`
	Kind        command.Kind  `mapstructure:"kind"`
	GuildIDs    []string      `mapstructure:"guild_ids"`
	Options     []OptionEntry `mapstructure:"options"`
}

// OptionEntry declares one command option. Subcommands nest options.
type OptionEntry struct {
	Name        string             `mapstructure:"name"`
	Description string             `mapstructure:"description"`
	Type        command.OptionType `mapstructure:"type"`
	Required    bool               `mapstructure:"required"`
	Choices     []ChoiceEntry      `mapstructure:"choices"`
	Options     []OptionEntry      `mapstructure:"options"`
}

// ChoiceEntry is one fixed value a user can pick.
type ChoiceEntry struct {
	Name  string `mapstructure:"name"`
	Value any    `mapstructure:"value"`
}

var commandKinds = map[string]command.Kind{
	"slash":   command.KindSlash,
	"user":    command.KindUser,
	"message": command.KindMessage,
}

var optionTypes = map[string]command.OptionType{
	"subcommand":       command.OptionSubCommand,
	"subcommand_group": command.OptionSubCommandGroup,
	"string":           command.OptionString,
	"integer":          command.OptionInteger,
	"boolean":          command.OptionBoolean,
	"user":             command.OptionUser,
	"channel":          command.OptionChannel,
	"number":           command.OptionNumber,
}

// enumHook translates the manifest's string enums ("slash", "string")
// into their numeric wire values during decoding.
func enumHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	name := strings.ToLower(data.(string))
	switch to {
	case reflect.TypeOf(command.Kind(0)):
		kind, ok := commandKinds[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, name)
		}
		return kind, nil
	case reflect.TypeOf(command.OptionType(0)):
		typ, ok := optionTypes[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOptionType, name)
		}
		return typ, nil
	}
	return data, nil
}

// Parse decodes a YAML manifest and validates every declared command.
// Entries without an explicit kind default to slash commands.
func Parse(data []byte) ([]*command.Command, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	var file File
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  enumHook,
		ErrorUnused: true,
		Result:      &file,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}

	cmds := make([]*command.Command, 0, len(file.Commands))
	for _, entry := range file.Commands {
		cmd := entry.toCommand()
		if err := cmd.Validate(); err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// Load reads and parses the manifest at path.
func Load(path string) ([]*command.Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

func (e Entry) toCommand() *command.Command {
	cmd := &command.Command{
		Name:        e.Name,
		Description: e.Description,
		Kind:        e.Kind,
		GuildIDs:    e.GuildIDs,
	}
	if cmd.Kind == 0 {
		cmd.Kind = command.KindSlash
	}
	for _, opt := range e.Options {
		cmd.Options = append(cmd.Options, opt.toOption())
	}
	return cmd
}

func (o OptionEntry) toOption() command.Option {
	opt := command.Option{
		Name:        o.Name,
		Description: o.Description,
		Type:        o.Type,
		Required:    o.Required,
	}
	if opt.Type == 0 {
		opt.Type = command.OptionString
	}
	for _, c := range o.Choices {
		opt.Choices = append(opt.Choices, command.Choice{Name: c.Name, Value: c.Value})
	}
	for _, nested := range o.Options {
		opt.Options = append(opt.Options, nested.toOption())
	}
	return opt
}
