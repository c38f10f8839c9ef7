package ws

import (
	"context"

	"github.com/ignatzorin/recruitment-backend/internal/domain/event"
)

// EventPublisher доставляет события заявок кандидату через хаб.
type EventPublisher struct {
	hub *Hub
}

func NewEventPublisher(hub *Hub) *EventPublisher {
	return &EventPublisher{hub: hub}
}

func (p *EventPublisher) Publish(ctx context.Context, e event.ApplicationEvent) error {
	return p.hub.BroadcastToUser(ctx, e.CandidateID, string(e.Type), e)
}
