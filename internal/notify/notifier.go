package notify

import (
	"context"

	"github.com/google/uuid"
	"github.com/streamhive/streamhive/internal/models"
)

// Notifier pushes processing events to the owning user's channel.
// Delivery is best-effort: callers must never treat a failed publish as a
// job failure.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, event string, data interface{}) error
}

// Subscriber attaches a client to a user's event channel. The returned
// cancel func must be called to release the subscription.
type Subscriber interface {
	Subscribe(ctx context.Context, userID uuid.UUID) (<-chan *models.EventEnvelope, func(), error)
}
