package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// StreamOrder pushes status changes of an order as server-sent events. The
// current status is sent first, the stream ends after a terminal status.
// @Summary      Order status stream
// @Description  text/event-stream of "status" events carrying StatusUpdate payloads
// @Tags         orders
// @Produce      text/event-stream
// @Param        order_id  path      string  true  "Order ID"
// @Success      200       {object}  StatusUpdate
// @Failure      403       {object}  utils.ErrorResponse
// @Failure      404       {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/stream [get]
func (h *OrderHandler) StreamOrder(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(w, r)
	if !ok {
		return
	}
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	sub, err := h.tracker.Subscribe(ctx, p, orderID)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to subscribe to order")
		return
	}
	defer sub.Cancel()

	streamsOpen.Inc()
	defer streamsOpen.Dec()

	rc := http.NewResponseController(w)
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if err := h.writeEvent(w, rc, StatusUpdateFromOrder(sub.Current)); err != nil {
		return
	}
	if sub.Current.Status.IsTerminal() {
		return
	}

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		case change, ok := <-sub.Updates:
			if !ok {
				return
			}
			if err := h.writeEvent(w, rc, StatusUpdateFromChange(change)); err != nil {
				return
			}
			if change.To.IsTerminal() {
				return
			}
		}
	}
}

func (h *OrderHandler) writeEvent(w http.ResponseWriter, rc *http.ResponseController, update StatusUpdate) error {
	data, err := json.Marshal(update)
	if err != nil {
		h.logger.Error("failed to marshal status update", slog.Any("error", err))
		return err
	}
	if _, err := fmt.Fprintf(w, "id: %d\nevent: status\ndata: %s\n\n", update.StatusVersion, data); err != nil {
		return err
	}
	if err := rc.Flush(); err != nil {
		h.logger.Warn("failed to flush stream", slog.String("order_id", update.OrderID), slog.Any("error", err))
		return err
	}
	streamEventsSent.WithLabelValues(update.Status).Inc()
	return nil
}
