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
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// GetCarriers handles GET /carriers - lists carriers with optional filters.
func (s *Server) GetCarriers(ctx echo.Context) error {
	var status *carrier.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := carrier.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &parsed
	}

	var search *string
	if raw := ctx.QueryParam("search"); raw != "" {
		search = &raw
	}

	page, limit, err := pagination(ctx)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	query, err := queries.NewGetCarriersQuery(status, search, page, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getCarriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := PagedResponse[CarrierResponse]{
		Data:  make([]CarrierResponse, len(result.Data)),
		Total: result.Total,
	}
	for i, model := range result.Data {
		response.Data[i] = carrierFromReadModel(model)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCarrier handles GET /carriers/:id - retrieves a single carrier.
func (s *Server) GetCarrier(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid carrier id")
	}

	query, err := queries.NewGetCarrierQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	model, err := s.getCarrierHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, carrierFromReadModel(model))
}

// CreateCarrier handles POST /carriers - registers a new carrier.
func (s *Server) CreateCarrier(ctx echo.Context) error {
	var request CreateCarrierRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	carrierType, err := carrier.TypeFromString(request.Type)
	if err != nil {
		return respondError(ctx, err)
	}

	status := carrier.StatusAvailable
	if request.Status != "" {
		if status, err = carrier.StatusFromString(request.Status); err != nil {
			return respondError(ctx, err)
		}
	}

	currency, err := kernel.CurrencyCodeFromString(request.Currency)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateCarrierCommand(
		request.LicensePlate,
		request.Model,
		carrierType,
		request.RegistrationDate,
		status,
		request.Rate,
		currency,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createCarrierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, carrierFromDomain(created))
}

// UpdateCarrier handles PUT /carriers/:id - partially updates a carrier.
func (s *Server) UpdateCarrier(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid carrier id")
	}

	var request UpdateCarrierRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	var carrierType *carrier.Type
	if request.Type != nil {
		parsed, err := carrier.TypeFromString(*request.Type)
		if err != nil {
			return respondError(ctx, err)
		}
		carrierType = &parsed
	}

	var status *carrier.Status
	if request.Status != nil {
		parsed, err := carrier.StatusFromString(*request.Status)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &parsed
	}

	var currency *kernel.CurrencyCode
	if request.Currency != nil {
		parsed, err := kernel.CurrencyCodeFromString(*request.Currency)
		if err != nil {
			return respondError(ctx, err)
		}
		currency = &parsed
	}

	cmd, err := commands.NewUpdateCarrierCommand(
		id,
		request.LicensePlate,
		request.Model,
		carrierType,
		request.RegistrationDate,
		status,
		request.Rate,
		currency,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateCarrierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, carrierFromDomain(updated))
}

// DeleteCarrier handles DELETE /carriers/:id - removes a carrier that is not
// fulfilling a route.
func (s *Server) DeleteCarrier(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid carrier id")
	}

	cmd, err := commands.NewDeleteCarrierCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteCarrierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func pagination(ctx echo.Context) (page, limit int, err error) {
	page, limit = defaultPage, defaultLimit

	if raw := ctx.QueryParam("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil {
			return 0, 0, errors.New("page must be an integer")
		}
	}
	if raw := ctx.QueryParam("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			return 0, 0, errors.New("limit must be an integer")
		}
	}

	return page, limit, nil
}
