package component

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestModalCallbackData_TitleOmitted(t *testing.T) {
	data := ModalCallbackData{
		CustomID:   "abc123",
		Components: []ActionRow{},
	}

	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(raw), "title") {
		t.Errorf("payload should omit empty title, got %s", raw)
	}

	data.Title = "Form"
	raw, err = json.Marshal(data)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(raw), `"title":"Form"`) {
		t.Errorf("payload should include title, got %s", raw)
	}
}

func TestTextInput_OptionalFields(t *testing.T) {
	min := 2
	ti := TextInput{
		Type:     TypeTextInput,
		CustomID: "name",
		Style:    TextInputShort,
		Label:    "Name",
	}

	raw, err := json.Marshal(ti)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, absent := range []string{"min_length", "max_length", "placeholder", "value"} {
		if strings.Contains(string(raw), absent) {
			t.Errorf("payload should omit %s when unset, got %s", absent, raw)
		}
	}

	ti.MinLength = &min
	raw, err = json.Marshal(ti)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(raw), `"min_length":2`) {
		t.Errorf("payload should carry min_length, got %s", raw)
	}
}

func TestActionRow_RoundTrip(t *testing.T) {
	row := NewActionRow(TextInput{
		Type:     TypeTextInput,
		CustomID: "colour",
		Style:    TextInputShort,
		Label:    "Favourite colour?",
	})

	raw, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded ActionRow
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if decoded.Type != TypeActionRow {
		t.Errorf("row type = %d, want %d", decoded.Type, TypeActionRow)
	}
	if len(decoded.Components) != 1 {
		t.Fatalf("decoded %d children, want 1", len(decoded.Components))
	}
	ti, ok := decoded.Components[0].(TextInput)
	if !ok {
		t.Fatalf("child should decode as TextInput, got %T", decoded.Components[0])
	}
	if ti.CustomID != "colour" {
		t.Errorf("custom_id = %q, want %q", ti.CustomID, "colour")
	}
}

func TestActionRow_UnknownChildPreserved(t *testing.T) {
	raw := []byte(`{"type":1,"components":[{"type":99,"weird":true}]}`)

	var row ActionRow
	if err := json.Unmarshal(raw, &row); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(row.Components) != 1 {
		t.Fatalf("decoded %d children, want 1", len(row.Components))
	}
	rc, ok := row.Components[0].(RawComponent)
	if !ok {
		t.Fatalf("unknown child should decode as RawComponent, got %T", row.Components[0])
	}
	if rc.ComponentType() != Type(99) {
		t.Errorf("raw type = %d, want 99", rc.ComponentType())
	}

	out, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(out), `"weird":true`) {
		t.Errorf("unknown child should round-trip verbatim, got %s", out)
	}
}

func TestInteractionResponse_Marshal(t *testing.T) {
	resp := NewModalResponse(ModalCallbackData{CustomID: "m1"})
	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(raw), `"type":9`) || !strings.Contains(string(raw), `"custom_id":"m1"`) {
		t.Errorf("modal response payload wrong: %s", raw)
	}

	pong, err := json.Marshal(NewPongResponse())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(pong), "data") {
		t.Errorf("pong should omit data, got %s", pong)
	}
}
