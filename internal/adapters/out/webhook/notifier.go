// Package webhook dispatches order events to an external automation
// endpoint as JSON POST requests. With no endpoint configured the notifier
// degrades to a no-op so the rest of the application never has to care
// whether notifications are enabled.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cakery/internal/core/ports"
)

const requestTimeout = 5 * time.Second

// Notifier implements ports.EventNotifier over HTTP.
type Notifier struct {
	url    string
	client *http.Client
}

// NewNotifier creates a webhook notifier. An empty url disables dispatching.
func NewNotifier(url string) *Notifier {
	return &Notifier{
		url:    url,
		client: &http.Client{Timeout: requestTimeout},
	}
}

// Notify posts the event to the configured endpoint. The body is the event
// payload flattened alongside the event name, event id and order id. A non-2xx
// response is an error; the caller decides whether that matters.
func (n *Notifier) Notify(ctx context.Context, event ports.NotificationEvent) error {
	if n.url == "" {
		return nil
	}

	body := map[string]any{
		"event":   event.Name,
		"eventId": event.ID.String(),
		"orderId": event.OrderID,
	}
	for key, value := range event.Payload {
		body[key] = value
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event.Name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("build %s request: %w", event.Name, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("dispatch %s event: %w", event.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("dispatch %s event: endpoint responded %d", event.Name, resp.StatusCode)
	}

	return nil
}
