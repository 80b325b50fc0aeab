package roost_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/roost-chat/roost"
	"github.com/roost-chat/roost/pkg/component"
	"github.com/roost-chat/roost/pkg/interaction"
	"github.com/roost-chat/roost/pkg/ui"
)

// ExampleNew demonstrates presenting a modal and handling its
// submission without any transport, which is how tests and embedded
// bots drive the SDK.
func ExampleNew() {
	client, err := roost.New()
	if err != nil {
		log.Fatal(err)
	}

	// A fixed custom ID makes the modal persistent-friendly and the
	// example deterministic; omit it to get a random one.
	modal, err := ui.New(
		ui.WithTitle("Tell us about yourself"),
		ui.WithCustomID("onboarding"),
		ui.WithItems(
			ui.NewTextInput("Name", component.TextInputShort, ui.WithInputCustomID("name")),
			ui.NewTextInput("Bio", component.TextInputParagraph, ui.WithInputCustomID("bio")),
		),
		ui.WithHandler(func(ctx context.Context, m *ui.Modal, ic *interaction.Interaction) error {
			name, _ := ic.FieldValue("name")
			fmt.Println("Name:", name)
			return nil
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	resp, err := client.PresentModal(ctx, modal)
	if err != nil {
		log.Fatal(err)
	}

	raw, _ := json.Marshal(resp.Modal.Components[0])
	fmt.Println("First row:", string(raw))

	// The platform would POST this back after the user submits.
	_, err = client.HandleInteraction(ctx, &interaction.Interaction{
		Kind: interaction.KindModalSubmit,
		ModalSubmit: &interaction.ModalSubmitData{
			CustomID: "onboarding",
			Components: []component.ActionRow{{
				Components: []component.Component{
					component.TextInput{CustomID: "name", Value: "Sam"},
				},
			}},
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	// Output:
	// First row: {"type":1,"components":[{"type":4,"custom_id":"name","style":1,"label":"Name"}]}
	// Name: Sam
}
