package command

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Command
		wantErr bool
	}{
		{
			name: "valid slash command",
			cmd:  Command{Name: "ask", Description: "Ask a question", Kind: KindSlash},
		},
		{
			name:    "missing name",
			cmd:     Command{Description: "x", Kind: KindSlash},
			wantErr: true,
		},
		{
			name:    "uppercase name",
			cmd:     Command{Name: "Ask", Description: "x", Kind: KindSlash},
			wantErr: true,
		},
		{
			name:    "slash without description",
			cmd:     Command{Name: "ask", Kind: KindSlash},
			wantErr: true,
		},
		{
			name: "valid user command",
			cmd:  Command{Name: "profile", Kind: KindUser},
		},
		{
			// Context menu names keep their display casing.
			name: "mixed-case message command",
			cmd:  Command{Name: "Report Message", Kind: KindMessage},
		},
		{
			name:    "user command with options",
			cmd:     Command{Name: "profile", Kind: KindUser, Options: []Option{{Name: "x", Description: "x", Type: OptionString}}},
			wantErr: true,
		},
		{
			name:    "message command with description",
			cmd:     Command{Name: "report", Description: "nope", Kind: KindMessage},
			wantErr: true,
		},
		{
			name:    "unknown kind",
			cmd:     Command{Name: "x", Kind: Kind(9)},
			wantErr: true,
		},
		{
			name: "slash with nested subcommands",
			cmd: Command{Name: "config", Description: "Configure", Kind: KindSlash, Options: []Option{
				{Name: "set", Description: "Set a value", Type: OptionSubCommand, Options: []Option{
					{Name: "key", Description: "The key", Type: OptionString, Required: true},
				}},
			}},
		},
		{
			name: "required subcommand",
			cmd: Command{Name: "config", Description: "Configure", Kind: KindSlash, Options: []Option{
				{Name: "set", Description: "Set", Type: OptionSubCommand, Required: true},
			}},
			wantErr: true,
		},
		{
			name: "plain option nesting options",
			cmd: Command{Name: "bad", Description: "Bad", Kind: KindSlash, Options: []Option{
				{Name: "s", Description: "s", Type: OptionString, Options: []Option{{Name: "n", Description: "n", Type: OptionString}}},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidCommand) {
				t.Errorf("Validate() error = %v, should wrap ErrInvalidCommand", err)
			}
		})
	}
}

func TestCommand_ToPayload(t *testing.T) {
	cmd := Command{
		Name:        "weather",
		Description: "Look up the weather",
		Kind:        KindSlash,
		Options: []Option{
			{
				Name:        "city",
				Description: "City name",
				Type:        OptionString,
				Required:    true,
				Choices:     []Choice{{Name: "London", Value: "london"}},
			},
		},
	}

	raw, err := json.Marshal(cmd.ToPayload())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	for _, want := range []string{`"name":"weather"`, `"type":1`, `"required":true`, `"London"`} {
		if !strings.Contains(string(raw), want) {
			t.Errorf("payload missing %s: %s", want, raw)
		}
	}
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()

	ask := &Command{Name: "ask", Description: "Ask", Kind: KindSlash}
	if err := r.Register(ask); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// Same name under another kind is a distinct command.
	if err := r.Register(&Command{Name: "ask", Kind: KindUser}); err != nil {
		t.Fatalf("Register() same name, other kind error = %v", err)
	}

	err := r.Register(&Command{Name: "ask", Description: "Dup", Kind: KindSlash})
	if !errors.Is(err, ErrDuplicateCommand) {
		t.Errorf("Register() duplicate error = %v, want ErrDuplicateCommand", err)
	}

	got, err := r.Lookup("ask", KindSlash)
	if err != nil || got != ask {
		t.Errorf("Lookup() = %v, %v; want the registered command", got, err)
	}

	if _, err := r.Lookup("missing", KindSlash); !errors.Is(err, ErrCommandNotFound) {
		t.Errorf("Lookup(missing) error = %v, want ErrCommandNotFound", err)
	}
}

func TestRegistry_PayloadsInOrder(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := r.Register(&Command{Name: name, Description: "d", Kind: KindSlash}); err != nil {
			t.Fatal(err)
		}
	}

	payloads := r.Payloads()
	if len(payloads) != 3 {
		t.Fatalf("Payloads() len = %d, want 3", len(payloads))
	}
	wantOrder := []string{"zeta", "alpha", "mid"}
	for i, want := range wantOrder {
		if payloads[i].Name != want {
			t.Errorf("payload %d = %q, want %q (registration order)", i, payloads[i].Name, want)
		}
	}
}
