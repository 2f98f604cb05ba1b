package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatchup implements CatchupQuerier for tests.
type fakeCatchup struct {
	events []CatchupEvent
	err    error
}

func (f *fakeCatchup) EventsSince(_ context.Context, _ string, _ int, limit int) ([]CatchupEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > 0 && len(f.events) > limit {
		return f.events[:limit], nil
	}
	return f.events, nil
}

func setupTestManager(t *testing.T, catchup CatchupQuerier) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	manager := NewConnectionManager(catchup, 5*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("websocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))

	t.Cleanup(func() { server.Close() })
	return manager, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeJSON(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t, &fakeCatchup{})
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManager_SubscribeConfirmed(t *testing.T) {
	manager, server := setupTestManager(t, &fakeCatchup{})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: ChatChannel("web")})

	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, "chat:web", msg["channel"])

	require.Eventually(t, func() bool {
		return manager.subscriberCount("chat:web") == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, manager.ActiveConnections())
}

func TestConnectionManager_SubscribeRequiresChannel(t *testing.T) {
	_, server := setupTestManager(t, &fakeCatchup{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe"})

	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
}

func TestConnectionManager_BroadcastReachesAllSubscribers(t *testing.T) {
	manager, server := setupTestManager(t, &fakeCatchup{})

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1)
	readJSON(t, conn2)

	writeJSON(t, conn1, ClientMessage{Action: "subscribe", Channel: ChatChannel("web")})
	writeJSON(t, conn2, ClientMessage{Action: "subscribe", Channel: ChatChannel("web")})
	readJSON(t, conn1) // subscription.confirmed
	readJSON(t, conn2)

	require.Eventually(t, func() bool {
		return manager.subscriberCount("chat:web") == 2
	}, 2*time.Second, 10*time.Millisecond)

	event, _ := json.Marshal(map[string]string{"type": EventTypeTyping, "channel": "web"})
	manager.Broadcast(ChatChannel("web"), event)

	for _, conn := range []*websocket.Conn{conn1, conn2} {
		msg := readJSON(t, conn)
		assert.Equal(t, EventTypeTyping, msg["type"])
		assert.Equal(t, "web", msg["channel"])
	}
}

func TestConnectionManager_BroadcastSkipsOtherChannels(t *testing.T) {
	manager, server := setupTestManager(t, &fakeCatchup{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: ChatChannel("web")})
	readJSON(t, conn)

	require.Eventually(t, func() bool {
		return manager.subscriberCount("chat:web") == 1
	}, 2*time.Second, 10*time.Millisecond)

	manager.Broadcast(ChatChannel("telegram"), []byte(`{"type":"typing"}`))
	event, _ := json.Marshal(map[string]string{"type": EventTypeTyping, "channel": "web"})
	manager.Broadcast(ChatChannel("web"), event)

	// The first message through must be the chat:web one.
	msg := readJSON(t, conn)
	assert.Equal(t, "web", msg["channel"])
}

func TestConnectionManager_SubscribeDeliversCatchup(t *testing.T) {
	catchup := &fakeCatchup{events: []CatchupEvent{
		{ID: 1, Payload: map[string]any{"type": EventTypeMessageCreated, "content": "hello"}},
		{ID: 2, Payload: map[string]any{"type": EventTypeMessageCreated, "content": "world"}},
	}}
	_, server := setupTestManager(t, catchup)
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: ChatChannel("web")})
	readJSON(t, conn) // subscription.confirmed

	first := readJSON(t, conn)
	assert.Equal(t, "hello", first["content"])
	assert.EqualValues(t, 1, first["db_event_id"])

	second := readJSON(t, conn)
	assert.Equal(t, "world", second["content"])
	assert.EqualValues(t, 2, second["db_event_id"])
}

func TestConnectionManager_CatchupOverflow(t *testing.T) {
	events := make([]CatchupEvent, catchupLimit+1)
	for i := range events {
		events[i] = CatchupEvent{ID: i + 1, Payload: map[string]any{
			"type":    EventTypeMessageCreated,
			"content": fmt.Sprintf("msg-%d", i+1),
		}}
	}
	_, server := setupTestManager(t, &fakeCatchup{events: events})
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: ChatChannel("web")})
	readJSON(t, conn)

	for i := 0; i < catchupLimit; i++ {
		readJSON(t, conn)
	}
	overflow := readJSON(t, conn)
	assert.Equal(t, "catchup.overflow", overflow["type"])
	assert.Equal(t, true, overflow["has_more"])
}

func TestConnectionManager_Ping(t *testing.T) {
	_, server := setupTestManager(t, &fakeCatchup{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "ping"})
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_UnsubscribeStopsDelivery(t *testing.T) {
	manager, server := setupTestManager(t, &fakeCatchup{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: ChatChannel("web")})
	readJSON(t, conn)
	require.Eventually(t, func() bool {
		return manager.subscriberCount("chat:web") == 1
	}, 2*time.Second, 10*time.Millisecond)

	writeJSON(t, conn, ClientMessage{Action: "unsubscribe", Channel: ChatChannel("web")})
	require.Eventually(t, func() bool {
		return manager.subscriberCount("chat:web") == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestConnectionManager_DisconnectCleansUp(t *testing.T) {
	manager, server := setupTestManager(t, &fakeCatchup{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: ChatChannel("web")})
	readJSON(t, conn)
	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 1
	}, 2*time.Second, 10*time.Millisecond)

	conn.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 0 && manager.subscriberCount("chat:web") == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestConnectionManager_MessageAction(t *testing.T) {
	manager, server := setupTestManager(t, nil)

	received := make(chan string, 1)
	manager.SetMessageHandler(func(_ context.Context, text string) {
		received <- text
	})

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeJSON(t, conn, ClientMessage{Action: "message", Text: "hello ellie"})

	msg := readJSON(t, conn)
	assert.Equal(t, "message.accepted", msg["type"])

	select {
	case text := <-received:
		assert.Equal(t, "hello ellie", text)
	case <-time.After(2 * time.Second):
		t.Fatal("message handler was not invoked")
	}
}

func TestConnectionManager_MessageActionWithoutHandler(t *testing.T) {
	_, server := setupTestManager(t, nil)

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeJSON(t, conn, ClientMessage{Action: "message", Text: "hello"})

	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
}
