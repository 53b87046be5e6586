package queries

import (
	"errors"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery looks an order up by its public tracking code. This is
// the one anonymous read in the system, so its result is cached.
type TrackOrderQuery struct {
	trackingCode string

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query for public order tracking.
func NewTrackOrderQuery(trackingCode string) (TrackOrderQuery, error) {
	if trackingCode == "" {
		return TrackOrderQuery{}, errs.NewValueIsRequiredError("trackingCode")
	}
	return TrackOrderQuery{
		trackingCode: trackingCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// TrackingCode returns the public code to look up.
func (q TrackOrderQuery) TrackingCode() string {
	return q.trackingCode
}

// TrackOrderEventResponse is one tracking history entry, newest first.
type TrackOrderEventResponse struct {
	At          time.Time `json:"at"`
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
}

// TrackOrderQueryResponse is the public tracking view of an order. It is
// what gets cached, so it deliberately exposes no party documents or costs.
type TrackOrderQueryResponse struct {
	TrackingCode string                    `json:"trackingCode"`
	Status       string                    `json:"status"`
	Sender       string                    `json:"sender"`
	Recipient    string                    `json:"recipient"`
	Origin       string                    `json:"origin"`
	Destination  string                    `json:"destination"`
	History      []TrackOrderEventResponse `json:"history"`
}
