package mock

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	towerbridge "github.com/openappintel/tower-bridge"
)

func TestTransportServesQueueInOrder(t *testing.T) {
	m := &Transport{}
	m.ScriptJSON(503, `{"error":"down"}`)
	m.ScriptJSON(200, `{"ok":true}`)

	ctx := context.Background()
	req := &towerbridge.APIRequest{Endpoint: "/v1/test"}

	resp, err := m.RoundTrip(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)

	resp, err = m.RoundTrip(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []byte(`{"ok":true}`), resp.Body)

	// Queue exhausted, fallback success.
	resp, err = m.RoundTrip(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []byte(`{"success":true}`), resp.Body)

	assert.Equal(t, 3, m.Calls())
}

func TestTransportAlwaysStatus(t *testing.T) {
	m := &Transport{AlwaysStatus: 429}
	m.ScriptJSON(200, `{"ignored":true}`)

	for i := 0; i < 3; i++ {
		resp, err := m.RoundTrip(context.Background(), &towerbridge.APIRequest{Endpoint: "/v1/test"})
		require.NoError(t, err)
		assert.Equal(t, 429, resp.StatusCode)
	}
	assert.Equal(t, 3, m.Calls())
}

func TestTransportScriptError(t *testing.T) {
	m := &Transport{}
	cause := errors.New("connection reset")
	m.ScriptError(cause)

	_, err := m.RoundTrip(context.Background(), &towerbridge.APIRequest{Endpoint: "/v1/test"})
	assert.ErrorIs(t, err, cause)
}

func TestTransportRecordsRequests(t *testing.T) {
	m := &Transport{}
	_, err := m.RoundTrip(context.Background(), &towerbridge.APIRequest{
		Endpoint: "/v1/ios/apps",
		Query:    towerbridge.Params{"app_ids": "1"},
	})
	require.NoError(t, err)
	_, err = m.RoundTrip(context.Background(), &towerbridge.APIRequest{Endpoint: "/v1/ios/search_entities"})
	require.NoError(t, err)

	reqs := m.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "/v1/ios/apps", reqs[0].Endpoint)
	assert.Equal(t, "/v1/ios/search_entities", m.LastRequest().Endpoint)
}
