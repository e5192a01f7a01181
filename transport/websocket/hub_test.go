package websocket

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wricardo/ludo-race-game/game/engine"
)

func newTestClient(hub *Hub, sessionID string) *Client {
	return &Client{
		hub:       hub,
		sessionID: sessionID,
		send:      make(chan []byte, sendBufferSize),
	}
}

func testState() *engine.GameState {
	state := engine.InitGameStateFromConfig(engine.DefaultGameConfig())
	state.Tokens[engine.Red] = engine.Tokens{6, 0, 0, 0}
	state.Active = engine.Green
	return state
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Failed to read WebSocket message: %v", err)
	}
	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		t.Fatalf("Failed to unmarshal message: %v", err)
	}
	return message
}

func waitForCount(t *testing.T, hub *Hub, sessionID string, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount(sessionID) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Expected %d clients in %s, got %d", want, sessionID, hub.ClientCount(sessionID))
}

func TestNewHub(t *testing.T) {
	hub := NewHub()

	if hub == nil {
		t.Fatal("NewHub() returned nil")
	}
	if hub.sessions == nil {
		t.Error("Hub sessions map is nil")
	}
	if hub.broadcast == nil || hub.register == nil || hub.unregister == nil {
		t.Error("Hub channels not initialized")
	}
}

func TestHubRegisterClient(t *testing.T) {
	hub := NewHub()
	client := newTestClient(hub, "test-session")

	hub.registerClient(client)

	if !hub.sessions["test-session"][client] {
		t.Error("Client was not registered in session")
	}
	if hub.ClientCount("test-session") != 1 {
		t.Errorf("Expected 1 client, got %d", hub.ClientCount("test-session"))
	}
}

func TestHubRegisterSendsSnapshotFirst(t *testing.T) {
	hub := NewHub()
	calls := 0
	client := newTestClient(hub, "snap")
	client.snapshot = func() (*engine.GameState, error) {
		calls++
		if hub.ClientCount("snap") != 0 {
			t.Error("Snapshot should be taken before the client is subscribed")
		}
		return testState(), nil
	}

	hub.registerClient(client)
	hub.broadcastMessage(&Message{SessionID: "snap", Event: EventStateUpdate, GameState: testState()})

	if calls != 1 {
		t.Fatalf("Expected one snapshot call, got %d", calls)
	}
	if len(client.send) != 2 {
		t.Fatalf("Expected snapshot and update, got %d messages", len(client.send))
	}

	var first, second Message
	if err := json.Unmarshal(<-client.send, &first); err != nil {
		t.Fatalf("Failed to unmarshal snapshot: %v", err)
	}
	if err := json.Unmarshal(<-client.send, &second); err != nil {
		t.Fatalf("Failed to unmarshal update: %v", err)
	}
	if first.Event != EventSnapshot || second.Event != EventStateUpdate {
		t.Errorf("Expected snapshot then update, got %s then %s", first.Event, second.Event)
	}
}

func TestHubRegisterSnapshotError(t *testing.T) {
	hub := NewHub()
	client := newTestClient(hub, "gone")
	client.snapshot = func() (*engine.GameState, error) {
		return nil, errors.New("session not found")
	}

	hub.registerClient(client)

	if len(client.send) != 0 {
		t.Errorf("Expected no snapshot, got %d messages", len(client.send))
	}
	if hub.ClientCount("gone") != 1 {
		t.Errorf("Expected the client to stay registered, got %d", hub.ClientCount("gone"))
	}
}

func TestHubUnregisterClient(t *testing.T) {
	hub := NewHub()
	client := newTestClient(hub, "test-session")

	hub.registerClient(client)
	hub.unregisterClient(client)

	if _, exists := hub.sessions["test-session"]; exists {
		t.Error("Empty session should be removed")
	}
	if _, ok := <-client.send; ok {
		t.Error("Send channel should be closed")
	}

	// A second unregister is a no-op.
	hub.unregisterClient(client)
}

func TestHubMultipleClients(t *testing.T) {
	hub := NewHub()
	client1 := newTestClient(hub, "ab12")
	client2 := newTestClient(hub, "ab12")
	other := newTestClient(hub, "cd34")

	hub.registerClient(client1)
	hub.registerClient(client2)
	hub.registerClient(other)

	if hub.ClientCount("ab12") != 2 || hub.ClientCount("cd34") != 1 {
		t.Fatalf("Unexpected counts: ab12=%d cd34=%d", hub.ClientCount("ab12"), hub.ClientCount("cd34"))
	}

	hub.unregisterClient(client1)

	if hub.ClientCount("ab12") != 1 {
		t.Errorf("Expected 1 client after unregister, got %d", hub.ClientCount("ab12"))
	}
	if !hub.sessions["ab12"][client2] {
		t.Error("client2 should still be registered")
	}
}

func TestHubBroadcastMessage(t *testing.T) {
	hub := NewHub()
	client := newTestClient(hub, "ab12")
	bystander := newTestClient(hub, "cd34")
	hub.registerClient(client)
	hub.registerClient(bystander)

	events := []engine.Event{
		{Type: engine.EventRolled, Color: engine.Red, Dice: 6},
		{Type: engine.EventMoved, Color: engine.Red, Token: 0, From: 0, To: 6, Cell: "r6"},
	}
	hub.broadcastMessage(&Message{SessionID: "ab12", Event: EventStateUpdate, GameState: testState(), Events: events})

	select {
	case data := <-client.send:
		var message Message
		if err := json.Unmarshal(data, &message); err != nil {
			t.Fatalf("Failed to unmarshal message: %v", err)
		}
		if message.SessionID != "ab12" || message.Event != EventStateUpdate {
			t.Errorf("Unexpected envelope %+v", message)
		}
		if message.GameState.Tokens[engine.Red][0] != 6 || message.GameState.Active != engine.Green {
			t.Errorf("GameState not correctly transmitted: %+v", message.GameState)
		}
		if len(message.Events) != 2 || message.Events[1].Cell != "r6" {
			t.Errorf("Events not correctly transmitted: %+v", message.Events)
		}
	default:
		t.Error("No message queued for client")
	}

	select {
	case <-bystander.send:
		t.Error("Client of another session received the message")
	default:
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub()
	client := &Client{hub: hub, sessionID: "ab12", send: make(chan []byte, 1)}
	hub.registerClient(client)

	hub.broadcastMessage(&Message{SessionID: "ab12", Event: "one"})
	hub.broadcastMessage(&Message{SessionID: "ab12", Event: "two"})

	if hub.ClientCount("ab12") != 0 {
		t.Error("Client with a full buffer should be unregistered")
	}
}

func TestHubBroadcastEvent(t *testing.T) {
	hub := NewHub()

	hub.BroadcastEvent("event-test", "custom-event", "test-data")

	select {
	case message := <-hub.broadcast:
		if message.SessionID != "event-test" {
			t.Errorf("Expected sessionID 'event-test', got %s", message.SessionID)
		}
		if message.Event != "custom-event" {
			t.Errorf("Expected event 'custom-event', got %s", message.Event)
		}
		if message.Data != "test-data" {
			t.Errorf("Expected data 'test-data', got %v", message.Data)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("No broadcast message queued")
	}
}

func TestHubBroadcastNeverBlocks(t *testing.T) {
	hub := NewHub()

	done := make(chan struct{})
	go func() {
		for i := 0; i < broadcastBufferSize+10; i++ {
			hub.BroadcastToSession("ab12", testState(), nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("BroadcastToSession blocked without a running hub")
	}
	if len(hub.broadcast) != broadcastBufferSize {
		t.Errorf("Expected a full queue of %d, got %d", broadcastBufferSize, len(hub.broadcast))
	}
}

func newWSServer(hub *Hub, snapshot SnapshotFunc) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("session")
		if sessionID == "" {
			sessionID = "default"
		}
		hub.ServeWS(w, r, sessionID, snapshot)
	}))
}

func staticSnapshot(state *engine.GameState) SnapshotFunc {
	return func() (*engine.GameState, error) { return state, nil }
}

func dial(t *testing.T, server *httptest.Server, sessionID string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "?session=" + sessionID
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect to WebSocket: %v", err)
	}
	return conn
}

func TestWebSocketLifecycle(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	server := newWSServer(hub, nil)
	defer server.Close()

	conn := dial(t, server, "ws-test")
	waitForCount(t, hub, "ws-test", 1)

	conn.Close()
	waitForCount(t, hub, "ws-test", 0)
}

func TestWebSocketSnapshotAndUpdates(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	server := newWSServer(hub, staticSnapshot(testState()))
	defer server.Close()

	conn := dial(t, server, "msg-test")
	defer conn.Close()

	snapshot := readMessage(t, conn)
	if snapshot.Event != EventSnapshot || snapshot.GameState == nil {
		t.Fatalf("Expected snapshot first, got %+v", snapshot)
	}
	if snapshot.GameState.Tokens[engine.Red][0] != 6 {
		t.Errorf("Snapshot state not transmitted: %+v", snapshot.GameState.Tokens)
	}

	waitForCount(t, hub, "msg-test", 1)

	state := testState()
	state.Won = true
	state.Winner = engine.Red
	state.Phase = engine.PhaseWon
	hub.BroadcastToSession("msg-test", state, []engine.Event{{Type: engine.EventWon, Color: engine.Red}})
	hub.BroadcastToSession("msg-test", state, []engine.Event{{Type: engine.EventReset}})

	first := readMessage(t, conn)
	if first.Event != EventStateUpdate || !first.GameState.Won || first.GameState.Winner != engine.Red {
		t.Errorf("Unexpected update %+v", first)
	}
	if len(first.Events) != 1 || first.Events[0].Type != engine.EventWon {
		t.Errorf("Expected won event, got %+v", first.Events)
	}

	second := readMessage(t, conn)
	if len(second.Events) != 1 || second.Events[0].Type != engine.EventReset {
		t.Errorf("Expected a separate frame for the reset, got %+v", second.Events)
	}
}

func TestHubStopClosesClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	server := newWSServer(hub, nil)
	defer server.Close()

	conn := dial(t, server, "stop-test")
	defer conn.Close()
	waitForCount(t, hub, "stop-test", 1)

	hub.Stop()
	waitForCount(t, hub, "stop-test", 0)

	conn.SetReadDeadline(time.Now().Add(time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("Expected the connection to be closed after Stop")
	}
}
