package http

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	openapitypes "github.com/oapi-codegen/runtime/types"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FlexFloat is a float64 that also accepts its JSON value as a string.
// Agency front desks submit forms where numeric fields arrive quoted or
// empty; anything unparseable coerces to zero instead of failing the bind.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		*f = FlexFloat(number)
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		*f = 0
		return nil
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(parsed)
	return nil
}

// FlexInt is an int that also accepts its JSON value as a string, with the
// same zero-coercion rules as FlexFloat.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var number int
	if err := json.Unmarshal(data, &number); err == nil {
		*f = FlexInt(number)
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		*f = 0
		return nil
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(parsed)
	return nil
}

// PartyPayload carries sender or recipient data on order creation.
type PartyPayload struct {
	Name     string `json:"name" validate:"required"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city" validate:"required"`
	Province string `json:"province" validate:"required"`
}

// PackagePayload carries package data on order creation.
type PackagePayload struct {
	WeightKg      FlexFloat `json:"weightKg"`
	Quantity      FlexInt   `json:"quantity"`
	DeclaredValue FlexFloat `json:"declaredValue"`
	ServiceType   string    `json:"serviceType" validate:"required"`
	Description   string    `json:"description"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	Sender     PartyPayload   `json:"sender" validate:"required"`
	Recipient  PartyPayload   `json:"recipient" validate:"required"`
	Package    PackagePayload `json:"package" validate:"required"`
	Thermoseal FlexFloat      `json:"thermoseal"`
}

// CreateOrderResponse returns the identifier assigned to a new order.
type CreateOrderResponse struct {
	OrderID openapitypes.UUID `json:"orderId"`
}

// AdvanceOrderStatusRequest is the body of POST /api/v1/orders/{orderId}/status.
type AdvanceOrderStatusRequest struct {
	Status      string `json:"status" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Description string `json:"description"`
}

// AdjustCreditRequest is the body of POST /api/v1/agencies/{agencyId}/credit.
type AdjustCreditRequest struct {
	Delta FlexFloat `json:"delta"`
}

// CreditCheckResponse reports the advisory credit check for an agency.
type CreditCheckResponse struct {
	AgencyID      openapitypes.UUID `json:"agencyId"`
	WithinLimit   bool              `json:"withinLimit"`
	CreditLimit   float64           `json:"creditLimit"`
	CurrentCredit float64           `json:"currentCredit"`
	Available     float64           `json:"available"`
}

// RouteSheetResponse is one route sheet created by a dispatch run.
type RouteSheetResponse struct {
	RouteSheetID openapitypes.UUID  `json:"routeSheetId"`
	Code         string             `json:"code"`
	Destination  string             `json:"destination"`
	Status       string             `json:"status"`
	Orders       int                `json:"orders"`
	CarrierID    *openapitypes.UUID `json:"carrierId,omitempty"`
}

// GenerateRouteSheetsResponse lists the sheets a dispatch run created.
type GenerateRouteSheetsResponse struct {
	RouteSheets []RouteSheetResponse `json:"routeSheets"`
}

// RouteResponse is one interprovincial route created by a build run.
type RouteResponse struct {
	RouteID     openapitypes.UUID `json:"routeId"`
	Code        string            `json:"code"`
	Name        string            `json:"name"`
	Origin      string            `json:"origin"`
	Destination string            `json:"destination"`
	Stops       []string          `json:"stops"`
	Orders      int               `json:"orders"`
}

// BuildRoutesResponse lists the routes a build run created.
type BuildRoutesResponse struct {
	Routes []RouteResponse `json:"routes"`
}

// SettlementResponse is one generated settlement.
type SettlementResponse struct {
	SettlementID     openapitypes.UUID `json:"settlementId"`
	Number           string            `json:"number"`
	PeriodStart      time.Time         `json:"periodStart"`
	PeriodEnd        time.Time         `json:"periodEnd"`
	TotalSales       float64           `json:"totalSales"`
	TotalCommissions float64           `json:"totalCommissions"`
	NetAmount        float64           `json:"netAmount"`
	Status           string            `json:"status"`
	DueDate          time.Time         `json:"dueDate"`
	Orders           int               `json:"orders"`
}

// ProcessSettlementsResponse lists the settlements a weekly pass generated.
type ProcessSettlementsResponse struct {
	Settlements []SettlementResponse `json:"settlements"`
}

// AttachPaymentProofResponse returns where the uploaded proof was stored.
type AttachPaymentProofResponse struct {
	Locator string `json:"locator"`
}

// PaymentLineResponse is one weight-scale line of a carrier payment.
type PaymentLineResponse struct {
	ScaleLabel string  `json:"scaleLabel"`
	UnitPrice  float64 `json:"unitPrice"`
	Packages   int     `json:"packages"`
	Amount     float64 `json:"amount"`
}

// CarrierPaymentResponse is the body of GET /api/v1/carriers/{carrierId}/payment.
type CarrierPaymentResponse struct {
	CarrierID   openapitypes.UUID     `json:"carrierId"`
	CarrierName string                `json:"carrierName"`
	Lines       []PaymentLineResponse `json:"lines"`
	Bonus       float64               `json:"bonus"`
	Total       float64               `json:"total"`
}

// PaymentRecordResponse is one settled route sheet in a carrier's history.
type PaymentRecordResponse struct {
	RouteSheetCode string                `json:"routeSheetCode"`
	Destination    string                `json:"destination"`
	CompletedAt    *time.Time            `json:"completedAt,omitempty"`
	Orders         int                   `json:"orders"`
	Lines          []PaymentLineResponse `json:"lines"`
	Bonus          float64               `json:"bonus"`
	Amount         float64               `json:"amount"`
}

// PaymentHistoryResponse is the body of GET /api/v1/carriers/{carrierId}/payments.
type PaymentHistoryResponse struct {
	CarrierID openapitypes.UUID       `json:"carrierId"`
	Records   []PaymentRecordResponse `json:"records"`
	Total     float64                 `json:"total"`
}
