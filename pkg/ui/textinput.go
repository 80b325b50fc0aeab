package ui

import (
	"crypto/rand"

	"github.com/roost-chat/roost/pkg/component"
)

// TextInput is a modal text field. A text input occupies a full layout
// row, so a modal holds at most five of them.
type TextInput struct {
	BaseItem

	label            string
	style            component.TextInputStyle
	customID         string
	providedCustomID bool
	placeholder      string
	minLength        *int
	maxLength        *int
	required         bool
	value            string
}

// TextInputOption configures a TextInput during construction.
type TextInputOption func(*TextInput)

// WithInputCustomID sets a caller-supplied identifier, making the input
// persistent.
func WithInputCustomID(id string) TextInputOption {
	return func(t *TextInput) {
		t.customID = id
		t.providedCustomID = true
	}
}

// WithPlaceholder sets the hint text shown while the field is empty.
func WithPlaceholder(text string) TextInputOption {
	return func(t *TextInput) { t.placeholder = text }
}

// WithMinLength sets the minimum accepted input length.
func WithMinLength(n int) TextInputOption {
	return func(t *TextInput) { t.minLength = &n }
}

// WithMaxLength sets the maximum accepted input length.
func WithMaxLength(n int) TextInputOption {
	return func(t *TextInput) { t.maxLength = &n }
}

// WithRequired marks the field as mandatory on submission.
func WithRequired() TextInputOption {
	return func(t *TextInput) { t.required = true }
}

// WithInputRow requests a specific layout row. Out-of-range values are
// rejected later, by AddItem.
func WithInputRow(row int) TextInputOption {
	return func(t *TextInput) { t.row = row }
}

// WithValue pre-fills the field.
func WithValue(value string) TextInputOption {
	return func(t *TextInput) { t.value = value }
}

// NewTextInput builds a text field with the given label and style.
// When no custom ID is supplied a random 32-character hex one is
// generated, which leaves the input non-persistent.
func NewTextInput(label string, style component.TextInputStyle, opts ...TextInputOption) *TextInput {
	t := &TextInput{
		BaseItem: NewBaseItem(),
		label:    label,
		style:    style,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.customID == "" {
		id, err := newCustomID(rand.Reader)
		if err != nil {
			// rand.Reader does not fail on supported platforms; an
			// empty custom ID would silently break submission matching.
			panic("ui: generating text input custom id: " + err.Error())
		}
		t.customID = id
	}
	return t
}

// CustomID implements Item.
func (t *TextInput) CustomID() string { return t.customID }

// Width implements Item. Text inputs span the whole row.
func (t *TextInput) Width() int { return rowCapacity }

// IsPersistent implements Item.
func (t *TextInput) IsPersistent() bool { return t.providedCustomID }

// Label returns the field label.
func (t *TextInput) Label() string { return t.label }

// Style returns the rendering style.
func (t *TextInput) Style() component.TextInputStyle { return t.style }

// Value returns the current field value. After a submission has been
// dispatched it holds what the user entered.
func (t *TextInput) Value() string { return t.value }

// SetValue pre-fills or overwrites the field value.
func (t *TextInput) SetValue(value string) { t.value = value }

// Component implements Item.
func (t *TextInput) Component() component.Component {
	return component.TextInput{
		Type:        component.TypeTextInput,
		CustomID:    t.customID,
		Style:       t.style,
		Label:       t.label,
		Placeholder: t.placeholder,
		MinLength:   t.minLength,
		MaxLength:   t.maxLength,
		Required:    t.required,
		Value:       t.value,
	}
}

// RefreshComponent implements StateRefresher: submitted payloads matching
// this input's custom ID update its value.
func (t *TextInput) RefreshComponent(c component.Component) {
	payload, ok := c.(component.TextInput)
	if !ok || payload.CustomID != t.customID {
		return
	}
	t.value = payload.Value
}
