package handler

import (
	"io"
	"time"

	"github.com/chaatcart/kiosk-api/pkg/broadcast"
	"github.com/gin-gonic/gin"
)

// heartbeatInterval keeps idle SSE connections alive through proxies
const heartbeatInterval = 25 * time.Second

// EventsHandler streams order-change notifications to admin sessions
type EventsHandler struct {
	hub *broadcast.Hub
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(hub *broadcast.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Stream handles the server-sent events subscription. Each notification is a
// payload-free invalidation signal; the client re-fetches the order list.
func (h *EventsHandler) Stream(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	ch, cancel := h.hub.Subscribe()
	defer cancel()

	// Tell the client the subscription is live before any mutation happens
	c.SSEvent("connected", "ok")
	c.Writer.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case <-ch:
			c.SSEvent("orders", "changed")
			return true
		case <-heartbeat.C:
			c.SSEvent("heartbeat", "ping")
			return true
		}
	})
}
