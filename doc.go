/*
Package roost is an SDK for building chat-platform bots around modal
forms and application commands.

It separates the UI model (modals built from items placed on weighted
rows) from interaction routing (the dispatcher) and from storage of
pending components (ports and adapters). This hexagonal layout lets the
same bot run against the in-memory store in tests and against Redis in
production, behind any transport.

# Concept

A bot declares commands, and command handlers respond with modals. Each
modal carries up to five items arranged on five rows by a weight
allocator, owns a custom ID, and expires after a timeout unless it is
persistent. When the platform posts the submitted form back, the
dispatcher matches it to the pending modal by custom ID, refreshes the
items with the submitted values, and runs the modal's handler exactly
once for non-persistent modals.

# Key Features

  - Declarative modals: items report their width; rows fill
    automatically or by explicit placement.
  - At-most-once submission: non-persistent modals are claimed before
    their handler runs, so duplicate deliveries are dropped.
  - Pluggable persistence: pending modals live in memory or Redis,
    with the modal timeout as the storage TTL.
  - Command manifests: the command surface can be declared in YAML and
    bound to handlers by name.

# Usage

	package main

	import (
		"context"
		"log"
		"net/http"

		"github.com/roost-chat/roost"
		"github.com/roost-chat/roost/pkg/command"
		"github.com/roost-chat/roost/pkg/component"
		"github.com/roost-chat/roost/pkg/interaction"
		"github.com/roost-chat/roost/pkg/ui"
	)

	func main() {
		client, err := roost.New()
		if err != nil {
			log.Fatal(err)
		}

		err = client.RegisterCommand(&command.Command{
			Name:        "feedback",
			Description: "Open the feedback form",
			Kind:        command.KindSlash,
			Handler: func(ctx context.Context, ic *interaction.Interaction) (*component.InteractionResponse, error) {
				modal, err := ui.New(
					ui.WithTitle("Feedback"),
					ui.WithItems(
						ui.NewTextInput("What should we improve?", component.TextInputParagraph,
							ui.WithInputCustomID("suggestion"),
						),
					),
					ui.WithHandler(func(ctx context.Context, m *ui.Modal, ic *interaction.Interaction) error {
						if text, ok := ic.FieldValue("suggestion"); ok {
							log.Println("suggestion:", text)
						}
						return nil
					}),
				)
				if err != nil {
					return nil, err
				}
				return client.PresentModal(ctx, modal)
			},
		})
		if err != nil {
			log.Fatal(err)
		}

		log.Fatal(http.ListenAndServe(":8080", client.Handler()))
	}
*/
package roost
