package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, hub *Hub, userID uuid.UUID) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, userID)
	}))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func waitForConnections(t *testing.T, hub *Hub, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for hub.ConnectionCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d connections, have %d", want, hub.ConnectionCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_SendToUser(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()
	conn := dialHub(t, hub, userID)
	waitForConnections(t, hub, 1)

	hub.SendToUser(userID, Event{Type: EventSubmissionJudged, Data: map[string]string{"status": "Accepted"}})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event Event
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, EventSubmissionJudged, event.Type)
}

func TestHub_SendToOtherUserNotDelivered(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub, uuid.New())
	waitForConnections(t, hub, 1)

	hub.SendToUser(uuid.New(), Event{Type: EventSubmissionJudged})

	conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	var event Event
	assert.Error(t, conn.ReadJSON(&event))
}

func TestHub_Broadcast(t *testing.T) {
	hub := NewHub()
	first := dialHub(t, hub, uuid.New())
	second := dialHub(t, hub, uuid.New())
	waitForConnections(t, hub, 2)

	hub.Broadcast(Event{Type: EventContestUpdate, Data: map[string]int{"participants_count": 3}})

	for _, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var event Event
		require.NoError(t, conn.ReadJSON(&event))
		assert.Equal(t, EventContestUpdate, event.Type)
	}
}

func TestHub_ConcurrentWritersToSameConnection(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()
	conn := dialHub(t, hub, userID)
	waitForConnections(t, hub, 1)

	const writers = 8
	const eventsPerWriter = 20

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < eventsPerWriter; j++ {
				if i%2 == 0 {
					hub.SendToUser(userID, Event{Type: EventSubmissionJudged})
				} else {
					hub.Broadcast(Event{Type: EventContestUpdate})
				}
			}
		}(i)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	received := 0
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for received < writers*eventsPerWriter {
		var event Event
		require.NoError(t, conn.ReadJSON(&event))
		received++
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("writers did not finish")
	}
	assert.Equal(t, 1, hub.ConnectionCount())
}

func TestHub_EvictsClosedConnections(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()
	conn := dialHub(t, hub, userID)
	waitForConnections(t, hub, 1)

	conn.Close()
	waitForConnections(t, hub, 0)
}
