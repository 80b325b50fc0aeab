package roost_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roost-chat/roost"
	"github.com/roost-chat/roost/pkg/command"
	"github.com/roost-chat/roost/pkg/component"
	"github.com/roost-chat/roost/pkg/interaction"
	"github.com/roost-chat/roost/pkg/observability"
	"github.com/roost-chat/roost/pkg/ui"
)

func TestClient_CommandToModalRoundTrip(t *testing.T) {
	client, err := roost.New()
	require.NoError(t, err)

	var submitted string
	modal, err := ui.New(
		ui.WithTitle("Feedback"),
		ui.WithItems(
			ui.NewTextInput("Suggestion", component.TextInputParagraph, ui.WithInputCustomID("suggestion")),
		),
		ui.WithHandler(func(ctx context.Context, m *ui.Modal, ic *interaction.Interaction) error {
			submitted, _ = ic.FieldValue("suggestion")
			return nil
		}),
	)
	require.NoError(t, err)

	require.NoError(t, client.RegisterCommand(&command.Command{
		Name:        "feedback",
		Description: "Open the feedback form",
		Kind:        command.KindSlash,
		Handler: func(ctx context.Context, ic *interaction.Interaction) (*component.InteractionResponse, error) {
			return client.PresentModal(ctx, modal)
		},
	}))

	ctx := context.Background()
	resp, err := client.HandleInteraction(ctx, &interaction.Interaction{
		Kind:    interaction.KindCommand,
		Command: &interaction.CommandData{Name: "feedback", Type: int(command.KindSlash)},
	})
	require.NoError(t, err)
	require.Equal(t, component.ResponseModal, resp.Type)
	require.NotNil(t, resp.Modal)

	_, err = client.HandleInteraction(ctx, &interaction.Interaction{
		Kind: interaction.KindModalSubmit,
		ModalSubmit: &interaction.ModalSubmitData{
			CustomID: resp.Modal.CustomID,
			Components: []component.ActionRow{{
				Components: []component.Component{
					component.TextInput{CustomID: "suggestion", Value: "dark mode please"},
				},
			}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "dark mode please", submitted)
}

func TestClient_LoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "commands.yaml")
	doc := "commands:\n  - name: ping\n    description: Liveness check\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	client, err := roost.New()
	require.NoError(t, err)

	called := false
	handlers := map[string]command.Handler{
		"ping": func(ctx context.Context, ic *interaction.Interaction) (*component.InteractionResponse, error) {
			called = true
			return component.NewMessageResponse("pong", false), nil
		},
	}
	require.NoError(t, client.LoadManifest(path, handlers))

	_, err = client.HandleInteraction(context.Background(), &interaction.Interaction{
		Kind:    interaction.KindCommand,
		Command: &interaction.CommandData{Name: "ping", Type: int(command.KindSlash)},
	})
	require.NoError(t, err)
	assert.True(t, called)

	payloads := client.CommandPayloads()
	require.Len(t, payloads, 1)
	assert.Equal(t, "ping", payloads[0].Name)
}

func TestClient_HandlerServesWebhook(t *testing.T) {
	client, err := roost.New(
		roost.WithMetrics(observability.NewMetrics("roost")),
		roost.WithRegisterer(prometheus.NewRegistry()),
	)
	require.NoError(t, err)

	srv := httptest.NewServer(client.Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/interactions", "application/json", bytes.NewBufferString(`{"type":1}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pong struct {
		Type int `json:"type"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pong))
	assert.Equal(t, int(component.ResponsePong), pong.Type)
}

func TestClient_DismissModal(t *testing.T) {
	client, err := roost.New()
	require.NoError(t, err)
	ctx := context.Background()

	modal, err := ui.New(ui.WithCustomID("survey"))
	require.NoError(t, err)
	_, err = client.PresentModal(ctx, modal)
	require.NoError(t, err)

	pending, err := client.PendingModals(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"survey"}, pending)

	require.NoError(t, client.DismissModal(ctx, "survey"))
	pending, err = client.PendingModals(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func ExampleClient_CommandPayloads() {
	client, _ := roost.New()
	_ = client.RegisterCommand(&command.Command{
		Name:        "weather",
		Description: "Look up the weather",
		Kind:        command.KindSlash,
		Handler: func(ctx context.Context, ic *interaction.Interaction) (*component.InteractionResponse, error) {
			return component.NewMessageResponse("sunny", false), nil
		},
	})
	raw, _ := json.Marshal(client.CommandPayloads())
	fmt.Println(string(raw))
	// Output:
	// [{"name":"weather","description":"Look up the weather","type":1}]
}
