package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/roost-chat/roost/pkg/adapters/http"
	"github.com/roost-chat/roost/pkg/component"
	"github.com/roost-chat/roost/pkg/dispatch"
	"github.com/roost-chat/roost/pkg/interaction"
	"github.com/roost-chat/roost/pkg/ui"
)

func newServer(t *testing.T, d *dispatch.Dispatcher) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(httpAdapter.NewHandler(d))
	t.Cleanup(srv.Close)
	return srv
}

func TestHandler_Ping(t *testing.T) {
	srv := newServer(t, dispatch.New())

	resp, err := http.Post(srv.URL+"/interactions", "application/json",
		strings.NewReader(`{"id":"1","type":1}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var body struct {
		Type int `json:"type"`
	}
	require.NoError(t, decodeJSON(resp, &body))
	assert.Equal(t, int(component.ResponsePong), body.Type)
}

func TestHandler_ModalSubmit(t *testing.T) {
	d := dispatch.New()
	m, err := ui.New(ui.WithCustomID("quiz"), ui.WithHandler(
		func(ctx context.Context, m *ui.Modal, ic *interaction.Interaction) error { return nil },
	))
	require.NoError(t, err)
	_, err = d.Present(context.Background(), m)
	require.NoError(t, err)

	srv := newServer(t, d)

	resp, err := http.Post(srv.URL+"/interactions", "application/json",
		strings.NewReader(`{"id":"2","type":5,"data":{"custom_id":"quiz","components":[]}}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_UnknownComponentIs404(t *testing.T) {
	srv := newServer(t, dispatch.New())

	resp, err := http.Post(srv.URL+"/interactions", "application/json",
		strings.NewReader(`{"id":"3","type":5,"data":{"custom_id":"ghost","components":[]}}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_MalformedBodyIs400(t *testing.T) {
	srv := newServer(t, dispatch.New())

	resp, err := http.Post(srv.URL+"/interactions", "application/json", strings.NewReader(`{`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Healthz(t *testing.T) {
	srv := newServer(t, dispatch.New())

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_RequestIDPropagated(t *testing.T) {
	srv := newServer(t, dispatch.New())

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/interactions",
		strings.NewReader(`{"id":"1","type":1}`))
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "trace-me")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "trace-me", resp.Header.Get("X-Request-ID"))
}

func decodeJSON(resp *http.Response, v any) error {
	return json.NewDecoder(resp.Body).Decode(v)
}
