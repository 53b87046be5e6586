package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/settlement"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the application's use cases over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	advanceOrderStatusHandler  commands.AdvanceOrderStatusCommandHandler
	generateRouteSheetsHandler commands.GenerateRouteSheetsCommandHandler
	buildRoutesHandler         commands.BuildRoutesCommandHandler
	generateSettlementHandler  commands.GenerateSettlementCommandHandler
	processSettlementsHandler  commands.ProcessSettlementsCommandHandler
	attachPaymentProofHandler  commands.AttachPaymentProofCommandHandler
	adjustCreditHandler        commands.AdjustCreditCommandHandler

	// Query handlers
	trackOrderHandler        queries.TrackOrderQueryHandler
	getCarrierPaymentHandler queries.GetCarrierPaymentQueryHandler
	getPaymentHistoryHandler queries.GetPaymentHistoryQueryHandler
	checkCreditHandler       queries.CheckCreditQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler,
	generateRouteSheetsHandler commands.GenerateRouteSheetsCommandHandler,
	buildRoutesHandler commands.BuildRoutesCommandHandler,
	generateSettlementHandler commands.GenerateSettlementCommandHandler,
	processSettlementsHandler commands.ProcessSettlementsCommandHandler,
	attachPaymentProofHandler commands.AttachPaymentProofCommandHandler,
	adjustCreditHandler commands.AdjustCreditCommandHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	getCarrierPaymentHandler queries.GetCarrierPaymentQueryHandler,
	getPaymentHistoryHandler queries.GetPaymentHistoryQueryHandler,
	checkCreditHandler queries.CheckCreditQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		advanceOrderStatusHandler:  advanceOrderStatusHandler,
		generateRouteSheetsHandler: generateRouteSheetsHandler,
		buildRoutesHandler:         buildRoutesHandler,
		generateSettlementHandler:  generateSettlementHandler,
		processSettlementsHandler:  processSettlementsHandler,
		attachPaymentProofHandler:  attachPaymentProofHandler,
		adjustCreditHandler:        adjustCreditHandler,
		trackOrderHandler:          trackOrderHandler,
		getCarrierPaymentHandler:   getCarrierPaymentHandler,
		getPaymentHistoryHandler:   getPaymentHistoryHandler,
		checkCreditHandler:         checkCreditHandler,
	}
}

// RegisterRoutes wires every endpoint into the echo router.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:orderId/status", s.AdvanceOrderStatus)
	api.GET("/tracking/:trackingCode", s.TrackOrder)

	api.POST("/agencies/:agencyId/route-sheets", s.GenerateRouteSheets)
	api.POST("/agencies/:agencyId/settlements", s.GenerateSettlement)
	api.POST("/agencies/:agencyId/credit", s.AdjustCredit)
	api.GET("/agencies/:agencyId/credit-check", s.CheckCredit)

	api.POST("/carriers/:carrierId/routes", s.BuildRoutes)
	api.GET("/carriers/:carrierId/payment", s.GetCarrierPayment)
	api.GET("/carriers/:carrierId/payments", s.GetPaymentHistory)

	api.POST("/settlements/process", s.ProcessSettlements)
	api.POST("/settlements/:settlementId/proof", s.AttachPaymentProof)
}

// CreateOrder handles POST /api/v1/orders - registers and prices a new shipment.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		toPartyInput(request.Sender),
		toPartyInput(request.Recipient),
		commands.PackageInput{
			Weight:        float64(request.Package.WeightKg),
			Quantity:      int(request.Package.Quantity),
			DeclaredValue: float64(request.Package.DeclaredValue),
			ServiceType:   request.Package.ServiceType,
			Description:   request.Package.Description,
		},
		float64(request.Thermoseal),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{OrderID: orderID.Bytes()})
}

// AdvanceOrderStatus handles POST /api/v1/orders/{orderId}/status - moves an
// order along its lifecycle.
func (s *Server) AdvanceOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var request AdvanceOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	next, err := order.StatusFromString(request.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + err.Error(),
		})
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, next, request.Location, request.Description)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid transition data: " + err.Error(),
		})
	}

	if handleErr := s.advanceOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr, "Failed to advance order status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TrackOrder handles GET /api/v1/tracking/{trackingCode} - the public
// tracking view. Unauthenticated; the response exposes no documents or costs.
func (s *Server) TrackOrder(ctx echo.Context) error {
	query, err := queries.NewTrackOrderQuery(ctx.Param("trackingCode"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid tracking code",
		})
	}

	response, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to track order")
	}

	return ctx.JSON(http.StatusOK, response)
}

// GenerateRouteSheets handles POST /api/v1/agencies/{agencyId}/route-sheets -
// batches the agency's pending orders into dispatch sheets.
func (s *Server) GenerateRouteSheets(ctx echo.Context) error {
	agencyID, err := kernel.UUIDFromString(ctx.Param("agencyId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid agency id",
		})
	}

	cmd, err := commands.NewGenerateRouteSheetsCommand(agencyID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
	}

	sheets, handleErr := s.generateRouteSheetsHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return errorResponse(ctx, handleErr, "Failed to generate route sheets")
	}

	response := GenerateRouteSheetsResponse{RouteSheets: make([]RouteSheetResponse, len(sheets))}
	for i, sheet := range sheets {
		response.RouteSheets[i] = RouteSheetResponse{
			RouteSheetID: sheet.ID().Bytes(),
			Code:         sheet.Code(),
			Destination:  sheet.Destination().String(),
			Status:       sheet.Status().String(),
			Orders:       len(sheet.Orders()),
		}
		if carrierID := sheet.Carrier(); carrierID != nil {
			raw := carrierID.Bytes()
			response.RouteSheets[i].CarrierID = &raw
		}
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GenerateSettlement handles POST /api/v1/agencies/{agencyId}/settlements -
// closes the agency's current settlement period.
func (s *Server) GenerateSettlement(ctx echo.Context) error {
	agencyID, err := kernel.UUIDFromString(ctx.Param("agencyId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid agency id",
		})
	}

	cmd, err := commands.NewGenerateSettlementCommand(agencyID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
	}

	generated, handleErr := s.generateSettlementHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return errorResponse(ctx, handleErr, "Failed to generate settlement")
	}

	if generated == nil {
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSON(http.StatusCreated, toSettlementResponse(generated))
}

// AdjustCredit handles POST /api/v1/agencies/{agencyId}/credit - applies a
// manual credit adjustment.
func (s *Server) AdjustCredit(ctx echo.Context) error {
	agencyID, err := kernel.UUIDFromString(ctx.Param("agencyId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid agency id",
		})
	}

	var request AdjustCreditRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAdjustCreditCommand(agencyID, float64(request.Delta))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid adjustment: " + err.Error(),
		})
	}

	if handleErr := s.adjustCreditHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr, "Failed to adjust credit")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CheckCredit handles GET /api/v1/agencies/{agencyId}/credit-check - the
// advisory check used before accepting a charge at the counter. The amount
// query parameter coerces to zero when absent or unparseable.
func (s *Server) CheckCredit(ctx echo.Context) error {
	agencyID, err := kernel.UUIDFromString(ctx.Param("agencyId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid agency id",
		})
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(ctx.QueryParam("amount")), 64)
	if err != nil {
		amount = 0
	}

	query, err := queries.NewCheckCreditQuery(agencyID, amount)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
	}

	response, err := s.checkCreditHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to check credit")
	}

	return ctx.JSON(http.StatusOK, CreditCheckResponse{
		AgencyID:      response.AgencyID.Bytes(),
		WithinLimit:   response.WithinLimit,
		CreditLimit:   response.CreditLimit,
		CurrentCredit: response.CurrentCredit,
		Available:     response.Available,
	})
}

// BuildRoutes handles POST /api/v1/carriers/{carrierId}/routes - groups the
// carrier's interprovincial orders into routes.
func (s *Server) BuildRoutes(ctx echo.Context) error {
	carrierID, err := kernel.UUIDFromString(ctx.Param("carrierId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid carrier id",
		})
	}

	cmd, err := commands.NewBuildRoutesCommand(carrierID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
	}

	routes, handleErr := s.buildRoutesHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return errorResponse(ctx, handleErr, "Failed to build routes")
	}

	response := BuildRoutesResponse{Routes: make([]RouteResponse, len(routes))}
	for i, built := range routes {
		response.Routes[i] = RouteResponse{
			RouteID:     built.ID().Bytes(),
			Code:        built.Code(),
			Name:        built.Name(),
			Origin:      built.Origin(),
			Destination: built.Destination(),
			Stops:       built.Stops(),
			Orders:      len(built.Orders()),
		}
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetCarrierPayment handles GET /api/v1/carriers/{carrierId}/payment -
// the carrier's current payment broken down by weight scale.
func (s *Server) GetCarrierPayment(ctx echo.Context) error {
	carrierID, err := kernel.UUIDFromString(ctx.Param("carrierId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid carrier id",
		})
	}

	query, err := queries.NewGetCarrierPaymentQuery(carrierID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
	}

	payment, err := s.getCarrierPaymentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to calculate carrier payment")
	}

	return ctx.JSON(http.StatusOK, CarrierPaymentResponse{
		CarrierID:   payment.CarrierID.Bytes(),
		CarrierName: payment.CarrierName,
		Lines:       toPaymentLines(payment.Lines),
		Bonus:       payment.Bonus,
		Total:       payment.Total,
	})
}

// GetPaymentHistory handles GET /api/v1/carriers/{carrierId}/payments - one
// priced record per completed route sheet.
func (s *Server) GetPaymentHistory(ctx echo.Context) error {
	carrierID, err := kernel.UUIDFromString(ctx.Param("carrierId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid carrier id",
		})
	}

	query, err := queries.NewGetPaymentHistoryQuery(carrierID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
	}

	history, err := s.getPaymentHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to load payment history")
	}

	records := make([]PaymentRecordResponse, len(history.Records))
	for i, record := range history.Records {
		records[i] = PaymentRecordResponse{
			RouteSheetCode: record.RouteSheetCode,
			Destination:    record.Destination,
			CompletedAt:    record.CompletedAt,
			Orders:         record.Orders,
			Lines:          toPaymentLines(record.Lines),
			Bonus:          record.Bonus,
			Amount:         record.Amount,
		}
	}

	return ctx.JSON(http.StatusOK, PaymentHistoryResponse{
		CarrierID: history.CarrierID.Bytes(),
		Records:   records,
		Total:     history.Total,
	})
}

// ProcessSettlements handles POST /api/v1/settlements/process - runs the
// weekly settlement pass over every agency whose day is due.
func (s *Server) ProcessSettlements(ctx echo.Context) error {
	cmd := commands.NewProcessSettlementsCommand()

	settlements, handleErr := s.processSettlementsHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return errorResponse(ctx, handleErr, "Failed to process settlements")
	}

	response := ProcessSettlementsResponse{Settlements: make([]SettlementResponse, len(settlements))}
	for i, generated := range settlements {
		response.Settlements[i] = toSettlementResponse(generated)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AttachPaymentProof handles POST /api/v1/settlements/{settlementId}/proof -
// accepts the multipart payment proof and marks the settlement paid.
func (s *Server) AttachPaymentProof(ctx echo.Context) error {
	settlementID, err := kernel.UUIDFromString(ctx.Param("settlementId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid settlement id",
		})
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Missing proof file",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Unreadable proof file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Unreadable proof file",
		})
	}

	cmd, err := commands.NewAttachPaymentProofCommand(settlementID, fileHeader.Filename, data)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid proof: " + err.Error(),
		})
	}

	locator, handleErr := s.attachPaymentProofHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return errorResponse(ctx, handleErr, "Failed to attach payment proof")
	}

	return ctx.JSON(http.StatusOK, AttachPaymentProofResponse{Locator: locator})
}

func toSettlementResponse(generated *settlement.Settlement) SettlementResponse {
	return SettlementResponse{
		SettlementID:     generated.ID().Bytes(),
		Number:           generated.Number(),
		PeriodStart:      generated.PeriodStart(),
		PeriodEnd:        generated.PeriodEnd(),
		TotalSales:       generated.TotalSales(),
		TotalCommissions: generated.TotalCommissions(),
		NetAmount:        generated.NetAmount(),
		Status:           generated.Status().String(),
		DueDate:          generated.DueDate(),
		Orders:           len(generated.Orders()),
	}
}

func toPartyInput(payload PartyPayload) commands.PartyInput {
	return commands.PartyInput{
		Name:     payload.Name,
		Document: payload.Document,
		Phone:    payload.Phone,
		Address:  payload.Address,
		City:     payload.City,
		Province: payload.Province,
	}
}

// errorResponse maps application errors onto HTTP statuses. Domain value
// errors surface their message so the caller can fix the request; anything
// else stays behind the generic message.
func errorResponse(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}

func toPaymentLines(lines []services.PaymentLine) []PaymentLineResponse {
	out := make([]PaymentLineResponse, len(lines))
	for i, line := range lines {
		out[i] = PaymentLineResponse{
			ScaleLabel: line.ScaleLabel,
			UnitPrice:  line.UnitPrice,
			Packages:   line.Packages,
			Amount:     line.Amount,
		}
	}
	return out
}
