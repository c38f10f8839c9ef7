package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/recruitment-backend/internal/domain/event"
)

type fakeWriter struct {
	mu   sync.Mutex
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	p := &KafkaPublisher{writer: writer, timeout: time.Second}

	e := event.ApplicationEvent{
		Type:          event.ApplicationCreated,
		ApplicationID: uuid.New(),
		CandidateID:   uuid.New(),
		FacultyCode:   "EDU",
		SpecialtyCode: "EDU-PRIM",
		Status:        "PENDING",
		OccurredAt:    time.Now(),
	}

	require.NoError(t, p.Publish(context.Background(), e))
	require.Len(t, writer.msgs, 1)

	msg := writer.msgs[0]
	assert.Equal(t, e.CandidateID.String(), string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "application.created", string(msg.Headers[0].Value))

	var decoded event.ApplicationEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, e.ApplicationID, decoded.ApplicationID)
	assert.Equal(t, "EDU-PRIM", decoded.SpecialtyCode)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	p := &KafkaPublisher{writer: &fakeWriter{err: errors.New("broker down")}, timeout: time.Second}

	err := p.Publish(context.Background(), event.ApplicationEvent{Type: event.ApplicationEvaluated})
	assert.ErrorContains(t, err, "broker down")
}

func TestParseBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, ParseBrokers(" a:9092, ,b:9092 "))
	assert.Empty(t, ParseBrokers(""))
}

type chanPublisher chan event.ApplicationEvent

func (c chanPublisher) Publish(_ context.Context, e event.ApplicationEvent) error {
	c <- e
	return nil
}

func TestAsyncPublisher_DeliversInBackground(t *testing.T) {
	ch := make(chanPublisher, 1)
	p := NewAsyncPublisher(ch)

	ctx, cancel := context.WithCancel(context.Background())
	e := event.ApplicationEvent{Type: event.ApplicationCreated, ApplicationID: uuid.New()}
	require.NoError(t, p.Publish(ctx, e))
	cancel()

	select {
	case got := <-ch:
		assert.Equal(t, e.ApplicationID, got.ApplicationID)
	case <-time.After(2 * time.Second):
		t.Fatal("событие не доставлено")
	}
}
