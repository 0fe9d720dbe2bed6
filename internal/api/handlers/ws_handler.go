package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/grant-tracker/internal/api/middleware"
	"github.com/linskybing/grant-tracker/internal/config"
	"github.com/linskybing/grant-tracker/internal/events"
	"github.com/linskybing/grant-tracker/internal/metrics"
	"github.com/linskybing/grant-tracker/pkg/logger"
	"go.uber.org/zap"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum number of events to buffer before forcing a send.
	batchSize = 50

	// Maximum time to wait before sending buffered events.
	flushFrequency = 100 * time.Millisecond
)

type EventsHandler struct {
	hub      *events.Hub
	upgrader websocket.Upgrader
}

func NewEventsHandler(hub *events.Hub) *EventsHandler {
	h := &EventsHandler{hub: hub}
	h.upgrader.CheckOrigin = checkOrigin(middleware.OriginAllowed(config.AllowedOrigins))
	return h
}

// checkOrigin accepts clients that send no Origin (non-browser), same-host
// pages and the configured origins.
func checkOrigin(allowed func(string) bool) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if u, err := url.Parse(origin); err == nil && strings.EqualFold(u.Host, r.Host) {
			return true
		}
		if allowed(origin) {
			return true
		}
		logger.L().Warn("websocket origin rejected", zap.String("origin", origin), zap.String("host", r.Host))
		return false
	}
}

// Stream godoc
// @Summary Live tracker activity
// @Description Upgrades to a websocket that receives JSON arrays of events.
// @Tags events
// @Router /ws/events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	log := logger.FromContext(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written an HTTP error to the client.
		log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed, unsubscribe := h.hub.Subscribe()
	defer unsubscribe()
	metrics.EventSubscribers.Inc()
	defer metrics.EventSubscribers.Dec()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	go writeBatches(ctx, cancel, conn, feed)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Info("websocket closed", zap.Error(err))
			}
			break
		}
	}
}

// writeBatches forwards feed to conn as JSON arrays, flushing when the batch
// fills up or flushFrequency passes, and keeps the connection alive with pings.
func writeBatches(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, feed <-chan []byte) {
	defer func() { _ = conn.Close() }()

	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()
	flushTicker := time.NewTicker(flushFrequency)
	defer flushTicker.Stop()

	var buffer []json.RawMessage
	flush := func() error {
		if len(buffer) == 0 {
			return nil
		}
		batch, err := json.Marshal(buffer)
		if err != nil {
			return err
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, batch); err != nil {
			return err
		}
		buffer = buffer[:0]
		return nil
	}

	for {
		select {
		case msg, ok := <-feed:
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			buffer = append(buffer, json.RawMessage(msg))
			if len(buffer) >= batchSize {
				if err := flush(); err != nil {
					cancel()
					return
				}
			}

		case <-flushTicker.C:
			if err := flush(); err != nil {
				cancel()
				return
			}

		case <-pingTicker.C:
			if err := flush(); err != nil {
				cancel()
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				cancel()
				return
			}

		case <-ctx.Done():
			return
		}
	}
}
