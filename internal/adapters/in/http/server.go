// Package http exposes the interactive depot actions over HTTP.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"depot/internal/core/application/depot"
	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/application/usecases/queries"
	"depot/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const defaultReportLimit = 50

// Server implements ServerInterface on top of the depot use cases.
type Server struct {
	// Command handlers
	addCustomerHandler   commands.AddCustomerCommandHandler
	addParcelHandler     commands.AddParcelCommandHandler
	collectParcelHandler commands.CollectParcelCommandHandler
	processNextHandler   commands.ProcessNextCustomerCommandHandler

	// Query handlers
	pendingCustomersHandler queries.GetPendingCustomersQueryHandler
	parcelsHandler          queries.GetParcelsQueryHandler
	parcelHandler           queries.GetParcelQueryHandler
	processedHandler        queries.GetProcessedRecordsQueryHandler
	reportHandler           *queries.GetReportEntriesQueryHandler

	logger *slog.Logger
}

// Handlers groups the use cases the server dispatches to. Report is nil when
// no report archive is configured.
type Handlers struct {
	AddCustomer      commands.AddCustomerCommandHandler
	AddParcel        commands.AddParcelCommandHandler
	CollectParcel    commands.CollectParcelCommandHandler
	ProcessNext      commands.ProcessNextCustomerCommandHandler
	PendingCustomers queries.GetPendingCustomersQueryHandler
	Parcels          queries.GetParcelsQueryHandler
	Parcel           queries.GetParcelQueryHandler
	Processed        queries.GetProcessedRecordsQueryHandler
	Report           *queries.GetReportEntriesQueryHandler
}

// NewServer creates a Server dispatching to handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		addCustomerHandler:      handlers.AddCustomer,
		addParcelHandler:        handlers.AddParcel,
		collectParcelHandler:    handlers.CollectParcel,
		processNextHandler:      handlers.ProcessNext,
		pendingCustomersHandler: handlers.PendingCustomers,
		parcelsHandler:          handlers.Parcels,
		parcelHandler:           handlers.Parcel,
		processedHandler:        handlers.Processed,
		reportHandler:           handlers.Report,
		logger:                  logger.With("component", "http_server"),
	}
}

// GetCustomers handles GET /api/v1/customers.
func (s *Server) GetCustomers(ctx echo.Context, params ListParams) error {
	resp, err := s.pendingCustomersHandler.Handle(ctx.Request().Context(), queries.NewGetPendingCustomersQuery())
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve customers", err)
	}

	if wantsText(params.Format) {
		return ctx.String(http.StatusOK, resp.Listing)
	}

	customers := make([]Customer, len(resp.Customers))
	for i, c := range resp.Customers {
		customers[i] = Customer{Seq: c.Seq, Name: c.Name, ParcelID: c.ParcelID}
	}
	return ctx.JSON(http.StatusOK, customers)
}

// AddCustomer handles POST /api/v1/customers.
func (s *Server) AddCustomer(ctx echo.Context) error {
	var body NewCustomer
	if e := bindBody(ctx, &body); e != nil {
		return ctx.JSON(e.Code, e)
	}

	cmd, err := commands.NewAddCustomerCommand(body.Name, body.ParcelID)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	c, err := s.addCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return notFound(ctx, err)
	}
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	return ctx.JSON(http.StatusCreated, Customer{Seq: c.Seq(), Name: c.Name(), ParcelID: c.ParcelID().String()})
}

// ProcessNextCustomer handles POST /api/v1/customers/next.
func (s *Server) ProcessNextCustomer(ctx echo.Context) error {
	result, err := s.processNextHandler.Handle(ctx.Request().Context(), commands.NewProcessNextCustomerCommand())
	if errors.Is(err, commands.ErrQueueIsEmpty) {
		return ctx.JSON(http.StatusConflict, Error{Code: http.StatusConflict, Message: "No customer left in queue"})
	}
	if err != nil {
		return s.internalError(ctx, "Failed to process customer", err)
	}

	resp := ProcessResult{
		Outcome: result.Outcome.String(),
		Customer: Customer{
			Seq:      result.Customer.Seq(),
			Name:     result.Customer.Name(),
			ParcelID: result.Customer.ParcelID().String(),
		},
	}
	if result.Outcome == depot.Processed {
		resp.Record = &ProcessedRecord{
			ID:           result.Record.ID().String(),
			Kind:         result.Record.Kind().String(),
			ParcelID:     result.Record.ParcelID().String(),
			CustomerName: result.Record.CustomerName(),
			Fee:          result.Record.Fee(),
			Text:         result.Record.Text(),
		}
	}
	return ctx.JSON(http.StatusOK, resp)
}

// GetParcels handles GET /api/v1/parcels.
func (s *Server) GetParcels(ctx echo.Context, params ListParams) error {
	resp, err := s.parcelsHandler.Handle(ctx.Request().Context(), queries.NewGetParcelsQuery())
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve parcels", err)
	}

	if wantsText(params.Format) {
		return ctx.String(http.StatusOK, resp.Listing)
	}

	parcels := make([]Parcel, len(resp.Parcels))
	for i, p := range resp.Parcels {
		parcels[i] = toParcel(p)
	}
	return ctx.JSON(http.StatusOK, parcels)
}

// AddParcel handles POST /api/v1/parcels.
func (s *Server) AddParcel(ctx echo.Context) error {
	var body NewParcel
	if e := bindBody(ctx, &body); e != nil {
		return ctx.JSON(e.Code, e)
	}

	cmd, err := commands.NewAddParcelCommand(body.ID, *body.Length, *body.Width, *body.Height, *body.Weight, *body.Days)
	if err != nil {
		return badRequest(ctx, "Invalid parcel data: "+err.Error())
	}

	p, err := s.addParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return badRequest(ctx, "Invalid parcel data: "+err.Error())
	}

	return ctx.JSON(http.StatusCreated, Parcel{
		ID:      p.ID().String(),
		Length:  p.Length(),
		Width:   p.Width(),
		Height:  p.Height(),
		Weight:  p.Weight(),
		Days:    p.DaysInDepot(),
		Display: p.DisplayString(),
	})
}

// GetParcel handles GET /api/v1/parcels/{id}.
func (s *Server) GetParcel(ctx echo.Context, id string) error {
	query, err := queries.NewGetParcelQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid parcel ID: "+err.Error())
	}

	resp, err := s.parcelHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return notFound(ctx, err)
	}
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve parcel", err)
	}

	return ctx.JSON(http.StatusOK, ParcelQuote{
		Parcel:     toParcel(resp.Parcel),
		Fee:        resp.Fee,
		Discounted: resp.Discounted,
		WellFormed: resp.WellFormed,
	})
}

// CollectParcel handles POST /api/v1/collections.
func (s *Server) CollectParcel(ctx echo.Context) error {
	var body Collection
	if e := bindBody(ctx, &body); e != nil {
		return ctx.JSON(e.Code, e)
	}

	cmd, err := commands.NewCollectParcelCommand(body.Name, body.ParcelID)
	if err != nil {
		return badRequest(ctx, "Invalid collection data: "+err.Error())
	}

	if err = s.collectParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, err)
		}
		return s.internalError(ctx, "Failed to collect parcel", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProcessed handles GET /api/v1/processed.
func (s *Server) GetProcessed(ctx echo.Context, params ListParams) error {
	resp, err := s.processedHandler.Handle(ctx.Request().Context(), queries.NewGetProcessedRecordsQuery())
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve processed records", err)
	}

	if wantsText(params.Format) {
		return ctx.String(http.StatusOK, resp.Listing)
	}

	records := make([]ProcessedRecord, len(resp.Records))
	for i, r := range resp.Records {
		records[i] = ProcessedRecord{
			ID:           r.ID,
			Kind:         r.Kind,
			ParcelID:     r.ParcelID,
			CustomerName: r.CustomerName,
			Fee:          r.Fee,
			Text:         r.Text,
		}
	}
	return ctx.JSON(http.StatusOK, records)
}

// GetReport handles GET /api/v1/report.
func (s *Server) GetReport(ctx echo.Context, params GetReportParams) error {
	if s.reportHandler == nil {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Report database mirror is not configured",
		})
	}

	limit := defaultReportLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetReportEntriesQuery(limit)
	if err != nil {
		return badRequest(ctx, "Invalid limit: "+err.Error())
	}

	resp, err := s.reportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve report", err)
	}

	page := ReportPage{Total: resp.Total, Entries: make([]ReportLine, len(resp.Entries))}
	for i, e := range resp.Entries {
		page.Entries[i] = ReportLine{ID: e.ID, Line: e.Line}
	}
	return ctx.JSON(http.StatusOK, page)
}

// bindBody decodes and validates the JSON body. It returns the error to send
// back, or nil.
func bindBody(ctx echo.Context, body any) *Error {
	if err := ctx.Bind(body); err != nil {
		return &Error{Code: http.StatusBadRequest, Message: "Invalid request body"}
	}
	if err := ctx.Validate(body); err != nil {
		return &Error{Code: http.StatusBadRequest, Message: err.Error()}
	}
	return nil
}

func (s *Server) internalError(ctx echo.Context, message string, err error) error {
	s.logger.ErrorContext(ctx.Request().Context(), message, "error", err)
	return ctx.JSON(http.StatusInternalServerError, Error{Code: http.StatusInternalServerError, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func notFound(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: err.Error()})
}

func wantsText(format *Format) bool {
	return format != nil && *format == FormatText
}

func toParcel(p queries.ParcelResponse) Parcel {
	return Parcel{
		ID:      p.ID,
		Length:  p.Length,
		Width:   p.Width,
		Height:  p.Height,
		Weight:  p.Weight,
		Days:    p.DaysInDepot,
		Display: p.Display,
	}
}
