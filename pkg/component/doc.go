/*
Package component defines the wire-level payload types exchanged with the
chat platform.

These structs mirror the platform's component schema one-to-one and carry
no behavior beyond JSON serialization. Higher-level construction, layout
and lifecycle live in pkg/ui.

# Key Types

  - ActionRow: A horizontal layout slot holding up to five child components.
  - TextInput: A single-line or multi-line text field inside a modal.
  - ModalCallbackData: The payload sent when a modal is presented.
  - InteractionResponse: The envelope answering an inbound interaction.
*/
package component
