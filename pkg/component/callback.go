package component

import "encoding/json"

// ResponseType is the numeric discriminator of an interaction response.
type ResponseType int

const (
	// ResponsePong acknowledges a ping.
	ResponsePong ResponseType = 1
	// ResponseMessage replies with a channel message.
	ResponseMessage ResponseType = 4
	// ResponseDeferred acknowledges now and edits the reply later.
	ResponseDeferred ResponseType = 5
	// ResponseModal presents a modal to the invoking user.
	ResponseModal ResponseType = 9
)

// ModalCallbackData is the payload describing a modal to present.
// Title is omitted from the wire format when empty.
type ModalCallbackData struct {
	CustomID   string      `json:"custom_id"`
	Components []ActionRow `json:"components"`
	Title      string      `json:"title,omitempty"`
}

// MessageData is the payload of a plain message response.
type MessageData struct {
	Content   string `json:"content"`
	Ephemeral bool   `json:"ephemeral,omitempty"`
}

// InteractionResponse is the envelope answering an inbound interaction.
// Exactly one of Modal or Message is set for the response types that
// carry data.
type InteractionResponse struct {
	Type    ResponseType
	Modal   *ModalCallbackData
	Message *MessageData
}

// MarshalJSON emits {"type": n, "data": {...}} with the data object taken
// from whichever payload is set.
func (r InteractionResponse) MarshalJSON() ([]byte, error) {
	envelope := struct {
		Type ResponseType `json:"type"`
		Data any          `json:"data,omitempty"`
	}{Type: r.Type}

	switch {
	case r.Modal != nil:
		envelope.Data = r.Modal
	case r.Message != nil:
		envelope.Data = r.Message
	}
	return json.Marshal(envelope)
}

// NewModalResponse wraps callback data in a modal-presenting response.
func NewModalResponse(data ModalCallbackData) *InteractionResponse {
	return &InteractionResponse{Type: ResponseModal, Modal: &data}
}

// NewMessageResponse builds a plain message reply.
func NewMessageResponse(content string, ephemeral bool) *InteractionResponse {
	return &InteractionResponse{
		Type:    ResponseMessage,
		Message: &MessageData{Content: content, Ephemeral: ephemeral},
	}
}

// NewPongResponse acknowledges a ping interaction.
func NewPongResponse() *InteractionResponse {
	return &InteractionResponse{Type: ResponsePong}
}
