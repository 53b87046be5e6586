package queries

import (
	"context"
	"encoding/json"
	"time"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
)

// trackingCacheTTL bounds how stale a public tracking view can get.
const trackingCacheTTL = 5 * time.Minute

// TrackOrderQueryHandler serves public tracking lookups through a
// read-through cache keyed by tracking code. A cache failure degrades to a
// repository read instead of failing the lookup.
type TrackOrderQueryHandler struct {
	orderRepo ports.OrderRepository
	cache     ports.TrackingCache
}

// NewTrackOrderQueryHandler creates a handler for tracking lookups.
func NewTrackOrderQueryHandler(orderRepo ports.OrderRepository, cache ports.TrackingCache) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{orderRepo: orderRepo, cache: cache}
}

// Handle returns the public tracking view for the code, from cache when
// fresh enough.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	if payload, ok, err := h.cache.Get(ctx, query.TrackingCode()); err == nil && ok {
		var cached TrackOrderQueryResponse
		if err = json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
	}

	o, err := h.orderRepo.GetByTrackingCode(ctx, query.TrackingCode())
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	response := renderTracking(o)
	if payload, err := json.Marshal(response); err == nil {
		_ = h.cache.Set(ctx, query.TrackingCode(), payload, trackingCacheTTL)
	}
	return response, nil
}

func renderTracking(o *order.Order) TrackOrderQueryResponse {
	history := make([]TrackOrderEventResponse, 0, len(o.History()))
	for _, entry := range o.History() {
		history = append(history, TrackOrderEventResponse{
			At:          entry.At(),
			Status:      entry.Status().String(),
			Location:    entry.Location(),
			Description: entry.Description(),
		})
	}

	return TrackOrderQueryResponse{
		TrackingCode: o.TrackingCode(),
		Status:       o.Status().String(),
		Sender:       o.Sender().Name(),
		Recipient:    o.Recipient().Name(),
		Origin:       o.Sender().Place().String(),
		Destination:  o.Recipient().Place().String(),
		History:      history,
	}
}
