package component

import "encoding/json"

// Type identifies a component kind on the wire.
type Type int

const (
	// TypeActionRow is a layout row grouping up to five child components.
	TypeActionRow Type = 1
	// TypeTextInput is a text field shown inside a modal.
	TypeTextInput Type = 4
)

// TextInputStyle controls the rendering of a text input.
type TextInputStyle int

const (
	// TextInputShort renders a single-line field.
	TextInputShort TextInputStyle = 1
	// TextInputParagraph renders a multi-line field.
	TextInputParagraph TextInputStyle = 2
)

// Component is implemented by every wire-level component payload.
type Component interface {
	// ComponentType returns the wire type discriminator.
	ComponentType() Type
}

// ActionRow groups child components into one horizontal layout slot.
// The platform accepts at most five rows per container and at most five
// width units per row.
type ActionRow struct {
	Type       Type        `json:"type"`
	Components []Component `json:"components"`
}

// ComponentType implements Component.
func (r ActionRow) ComponentType() Type { return TypeActionRow }

// NewActionRow builds a row payload around the given children.
func NewActionRow(children ...Component) ActionRow {
	return ActionRow{Type: TypeActionRow, Components: children}
}

// TextInput is the payload for a modal text field.
// Optional fields use pointers so "absent" survives round-trips; the
// platform treats a missing field and a zero value differently.
type TextInput struct {
	Type        Type           `json:"type"`
	CustomID    string         `json:"custom_id"`
	Style       TextInputStyle `json:"style"`
	Label       string         `json:"label"`
	Placeholder string         `json:"placeholder,omitempty"`
	MinLength   *int           `json:"min_length,omitempty"`
	MaxLength   *int           `json:"max_length,omitempty"`
	Required    bool           `json:"required,omitempty"`
	Value       string         `json:"value,omitempty"`
}

// ComponentType implements Component.
func (t TextInput) ComponentType() Type { return TypeTextInput }

// UnmarshalJSON decodes a row, resolving child payloads by their type
// discriminator. Unknown child types are preserved as RawComponent so a
// newer platform schema does not break decoding.
func (r *ActionRow) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type       Type              `json:"type"`
		Components []json.RawMessage `json:"components"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Type = raw.Type
	r.Components = make([]Component, 0, len(raw.Components))
	for _, rc := range raw.Components {
		child, err := decodeComponent(rc)
		if err != nil {
			return err
		}
		r.Components = append(r.Components, child)
	}
	return nil
}

// RawComponent holds a component whose type is not known to this SDK
// version. The original JSON is kept verbatim.
type RawComponent struct {
	Raw json.RawMessage
}

// ComponentType implements Component. The discriminator is re-read from
// the raw payload; zero on malformed input.
func (c RawComponent) ComponentType() Type {
	var probe struct {
		Type Type `json:"type"`
	}
	_ = json.Unmarshal(c.Raw, &probe)
	return probe.Type
}

// MarshalJSON emits the original payload untouched.
func (c RawComponent) MarshalJSON() ([]byte, error) {
	return c.Raw, nil
}

func decodeComponent(data json.RawMessage) (Component, error) {
	var probe struct {
		Type Type `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	switch probe.Type {
	case TypeTextInput:
		var ti TextInput
		if err := json.Unmarshal(data, &ti); err != nil {
			return nil, err
		}
		return ti, nil
	case TypeActionRow:
		var row ActionRow
		if err := json.Unmarshal(data, &row); err != nil {
			return nil, err
		}
		return row, nil
	default:
		return RawComponent{Raw: append(json.RawMessage(nil), data...)}, nil
	}
}
