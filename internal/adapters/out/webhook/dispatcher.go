// Package webhook implements the WebhookDispatcher port: persisted audit
// events are fanned out as JSON POSTs to a fixed list of subscriber URLs.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"shopfloor/internal/core/domain/model/audit"
)

const defaultTimeout = 5 * time.Second

// Dispatcher delivers audit events to subscriber endpoints. Delivery is
// best-effort: failures are logged with the subscriber URL and swallowed,
// and no retry is scheduled. The audit trail in the database remains the
// source of truth regardless of delivery outcome.
type Dispatcher struct {
	subscribers []string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewDispatcher creates a dispatcher for the given subscriber URLs.
// An empty subscriber list yields a dispatcher that does nothing.
func NewDispatcher(subscribers []string, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		subscribers: subscribers,
		httpClient:  &http.Client{Timeout: defaultTimeout},
		logger:      logger.With("component", "webhook_dispatcher"),
	}
}

type eventPayload struct {
	OrderType   string    `json:"orderType"`
	OrderID     string    `json:"orderId"`
	EventType   string    `json:"eventType"`
	Description string    `json:"description"`
	UserID      *int64    `json:"userId,omitempty"`
	UserRole    *string   `json:"userRole,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Dispatch sends the event to every subscriber sequentially.
func (d *Dispatcher) Dispatch(ctx context.Context, event *audit.Event) {
	if len(d.subscribers) == 0 {
		return
	}

	body, err := json.Marshal(eventPayload{
		OrderType:   event.OrderType().String(),
		OrderID:     event.OrderID().String(),
		EventType:   event.EventType(),
		Description: event.Description(),
		UserID:      event.Actor().UserID(),
		UserRole:    event.Actor().UserRole(),
		CreatedAt:   event.CreatedAt(),
	})
	if err != nil {
		d.logger.ErrorContext(ctx, "webhook payload marshal failed", "error", err)
		return
	}

	for _, subscriber := range d.subscribers {
		if err := d.post(ctx, subscriber, body); err != nil {
			d.logger.ErrorContext(ctx, "webhook delivery failed",
				"subscriber", subscriber,
				"eventType", event.EventType(),
				"error", err)
		}
	}
}

func (d *Dispatcher) post(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return nil
}
