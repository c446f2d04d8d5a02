package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"transport/internal/core/application/usecases/commands"
	"transport/internal/core/application/usecases/queries"
	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/route"
)

// GetRoutes handles GET /routes - lists routes with optional filters.
func (s *Server) GetRoutes(ctx echo.Context) error {
	var status *route.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := route.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &parsed
	}

	minPrice, err := priceParam(ctx, "minPrice")
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}
	maxPrice, err := priceParam(ctx, "maxPrice")
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	page, limit, err := pagination(ctx)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	query, err := queries.NewGetRoutesQuery(status, minPrice, maxPrice, page, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getRoutesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := PagedResponse[RouteResponse]{
		Data:  make([]RouteResponse, len(result.Data)),
		Total: result.Total,
	}
	for i, model := range result.Data {
		response.Data[i] = routeFromReadModel(model)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRoute handles GET /routes/:id - retrieves a route with its assigned
// carrier, when one is bound.
func (s *Server) GetRoute(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid route id")
	}

	query, err := queries.NewGetRouteQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	model, err := s.getRouteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, routeDetailFromReadModel(model))
}

// CreateRoute handles POST /routes - opens a new transport order.
func (s *Server) CreateRoute(ctx echo.Context) error {
	var request CreateRouteRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	startPoint, err := kernel.GeoPointFromString(request.StartPoint)
	if err != nil {
		return respondError(ctx, err)
	}
	endPoint, err := kernel.GeoPointFromString(request.EndPoint)
	if err != nil {
		return respondError(ctx, err)
	}

	carrierType, err := carrier.TypeFromString(request.RequiredCarrierType)
	if err != nil {
		return respondError(ctx, err)
	}

	currency, err := kernel.CurrencyCodeFromString(request.Currency)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateRouteCommand(
		startPoint,
		endPoint,
		request.DepartureDate,
		request.CompletionDate,
		carrierType,
		request.Price,
		currency,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, routeFromDomain(created))
}

// UpdateRoute handles PUT /routes/:id - updates basic info of an awaiting route.
func (s *Server) UpdateRoute(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid route id")
	}

	var request UpdateRouteRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	var carrierType *carrier.Type
	if request.RequiredCarrierType != nil {
		parsed, err := carrier.TypeFromString(*request.RequiredCarrierType)
		if err != nil {
			return respondError(ctx, err)
		}
		carrierType = &parsed
	}

	var currency *kernel.CurrencyCode
	if request.Currency != nil {
		parsed, err := kernel.CurrencyCodeFromString(*request.Currency)
		if err != nil {
			return respondError(ctx, err)
		}
		currency = &parsed
	}

	cmd, err := commands.NewUpdateRouteCommand(
		id,
		request.DepartureDate,
		request.CompletionDate,
		carrierType,
		request.Price,
		currency,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, routeFromDomain(updated))
}

// DeleteRoute handles DELETE /routes/:id - removes a route and releases its
// carrier if one was dispatched.
func (s *Server) DeleteRoute(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid route id")
	}

	cmd, err := commands.NewDeleteRouteCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignCarrier handles PUT /routes/:id/carrier - dispatches a carrier to a route.
func (s *Server) AssignCarrier(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid route id")
	}

	var request AssignCarrierRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	carrierID, err := kernel.UUIDFromString(request.CarrierID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignCarrierCommand(id, carrierID)
	if err != nil {
		return respondError(ctx, err)
	}

	dispatched, err := s.assignCarrierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, routeFromDomain(dispatched))
}

// UpdateRouteStatus handles PUT /routes/:id/status - advances the route
// lifecycle and records actual timestamps.
func (s *Server) UpdateRouteStatus(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid route id")
	}

	var request UpdateRouteStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	target, err := route.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateRouteStatusCommand(
		id,
		target,
		request.DepartureDateActual,
		request.CompletionDateActual,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateRouteStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, routeFromDomain(updated))
}

func priceParam(ctx echo.Context, name string) (*float64, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.New(name + " must be a number")
	}

	return &value, nil
}
