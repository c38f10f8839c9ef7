package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/recruitment-backend/internal/domain/event"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	hub := NewHub(ctx)
	go hub.Run()
	return hub
}

// Клиент без соединения: хаб работает только с каналом send.
func testClient(hub *Hub, userID uuid.UUID) *Client {
	return &Client{hub: hub, userID: userID, send: make(chan []byte, 4)}
}

func TestHub_DeliversOnlyToAddressee(t *testing.T) {
	hub := startHub(t)
	candidate := uuid.New()
	other := uuid.New()

	c1 := testClient(hub, candidate)
	c2 := testClient(hub, other)
	hub.Register(c1)
	hub.Register(c2)

	pub := NewEventPublisher(hub)
	e := event.ApplicationEvent{Type: event.ApplicationEvaluated, CandidateID: candidate, Status: "APPROVED"}
	require.NoError(t, pub.Publish(context.Background(), e))

	select {
	case raw := <-c1.send:
		var msg struct {
			Type string                 `json:"type"`
			Data event.ApplicationEvent `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, "application.evaluated", msg.Type)
		assert.Equal(t, "APPROVED", msg.Data.Status)
	case <-time.After(time.Second):
		t.Fatal("сообщение не доставлено")
	}

	assert.Empty(t, c2.send)
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	hub := startHub(t)
	userID := uuid.New()
	c := testClient(hub, userID)

	hub.Register(c)
	assert.Eventually(t, func() bool { return hub.ConnectedClients(userID) == 1 }, time.Second, 10*time.Millisecond)

	hub.Unregister(c)
	assert.Eventually(t, func() bool { return hub.ConnectedClients(userID) == 0 }, time.Second, 10*time.Millisecond)

	_, open := <-c.send
	assert.False(t, open)
}

func TestHub_BroadcastAfterStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(ctx)
	cancel()

	// Буфер заполнен, хаб остановлен: отправка не должна зависнуть.
	for i := 0; i < cap(hub.broadcast); i++ {
		hub.broadcast <- message{}
	}
	err := hub.BroadcastToUser(context.Background(), uuid.New(), "x", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
