package feed

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialFeed(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", WSHandler(hub))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })
	return ws
}

func readJSON(t *testing.T, ws *websocket.Conn, v any) {
	t.Helper()
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, b, err := ws.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, v))
}

func TestHubDeliversEvents(t *testing.T) {
	hub := NewHub(0)
	ws := dialFeed(t, hub)

	var welcome map[string]string
	readJSON(t, ws, &welcome)
	assert.Equal(t, "welcome", welcome["type"])

	require.Eventually(t, func() bool { return hub.Stats().WSClients == 1 }, 2*time.Second, 10*time.Millisecond)

	out := true
	hub.Publish(Event{Type: TypeOverrideUpdate, ProductID: "drstuning_abc", OutOfStock: &out})

	var ev Event
	readJSON(t, ws, &ev)
	assert.Equal(t, TypeOverrideUpdate, ev.Type)
	assert.Equal(t, "drstuning_abc", ev.ProductID)
	require.NotNil(t, ev.OutOfStock)
	assert.True(t, *ev.OutOfStock)
	assert.False(t, ev.At.IsZero())
}

func TestHubDropsClosedClients(t *testing.T) {
	hub := NewHub(0)
	ws := dialFeed(t, hub)
	require.Eventually(t, func() bool { return hub.Stats().WSClients == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, ws.Close())
	require.Eventually(t, func() bool { return hub.Stats().WSClients == 0 }, 2*time.Second, 10*time.Millisecond)

	// publishing with nobody connected is a no-op
	hub.Publish(Event{Type: TypeSourceAdd})
}

func TestHubReplaysRecentEvents(t *testing.T) {
	hub := NewHub(2)
	hub.Publish(Event{Type: TypeSourceAdd, SourceID: "1"})
	hub.Publish(Event{Type: TypeSourceAdd, SourceID: "2"})
	hub.Publish(Event{Type: TypeSourceDelete, SourceID: "1"})

	ws := dialFeed(t, hub)

	var welcome map[string]string
	readJSON(t, ws, &welcome)
	assert.Equal(t, "welcome", welcome["type"])

	var first, second Event
	readJSON(t, ws, &first)
	readJSON(t, ws, &second)
	assert.Equal(t, "2", first.SourceID)
	assert.Equal(t, TypeSourceDelete, second.Type)
}
