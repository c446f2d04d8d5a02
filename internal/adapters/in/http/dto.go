package http

import (
	"time"

	"transport/internal/core/application/usecases/queries"
	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/route"
)

// CreateCarrierRequest is the payload for registering a vehicle. Status
// defaults to AVAILABLE when omitted, which lets fleet imports register
// vehicles already out on the road by sending BUSY explicitly.
type CreateCarrierRequest struct {
	LicensePlate     string    `json:"licensePlate"`
	Model            string    `json:"model"`
	Type             string    `json:"type"`
	RegistrationDate time.Time `json:"registrationDate"`
	Status           string    `json:"status,omitempty"`
	Rate             float64   `json:"rate"`
	Currency         string    `json:"currency"`
}

// UpdateCarrierRequest is the partial-update payload. Absent fields keep
// their stored values.
type UpdateCarrierRequest struct {
	LicensePlate     *string    `json:"licensePlate,omitempty"`
	Model            *string    `json:"model,omitempty"`
	Type             *string    `json:"type,omitempty"`
	RegistrationDate *time.Time `json:"registrationDate,omitempty"`
	Status           *string    `json:"status,omitempty"`
	Rate             *float64   `json:"rate,omitempty"`
	Currency         *string    `json:"currency,omitempty"`
}

// CarrierResponse is the carrier representation returned by the API.
// Timestamps are present only on read paths, which project them straight
// from storage.
type CarrierResponse struct {
	ID               string     `json:"id"`
	LicensePlate     string     `json:"licensePlate"`
	Model            string     `json:"model"`
	Type             string     `json:"type"`
	RegistrationDate time.Time  `json:"registrationDate,omitzero"`
	Status           string     `json:"status"`
	Rate             float64    `json:"rate"`
	CreatedAt        *time.Time `json:"createdAt,omitempty"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

// CreateRouteRequest is the payload for opening a transport order.
// Coordinates travel as "latitude,longitude" strings; distance is never
// accepted from clients.
type CreateRouteRequest struct {
	StartPoint          string    `json:"startPoint"`
	EndPoint            string    `json:"endPoint"`
	DepartureDate       time.Time `json:"departureDate"`
	CompletionDate      time.Time `json:"completionDate"`
	RequiredCarrierType string    `json:"requiredCarrierType"`
	Price               float64   `json:"price"`
	Currency            string    `json:"currency"`
}

// UpdateRouteRequest is the partial-update payload for an awaiting route.
type UpdateRouteRequest struct {
	DepartureDate       *time.Time `json:"departureDate,omitempty"`
	CompletionDate      *time.Time `json:"completionDate,omitempty"`
	RequiredCarrierType *string    `json:"requiredCarrierType,omitempty"`
	Price               *float64   `json:"price,omitempty"`
	Currency            *string    `json:"currency,omitempty"`
}

// AssignCarrierRequest binds a carrier to a route.
type AssignCarrierRequest struct {
	CarrierID string `json:"carrierId"`
}

// UpdateRouteStatusRequest advances a route's lifecycle and records actual
// timestamps.
type UpdateRouteStatusRequest struct {
	Status               string     `json:"status"`
	DepartureDateActual  *time.Time `json:"departureDateActual,omitempty"`
	CompletionDateActual *time.Time `json:"completionDateActual,omitempty"`
}

// RouteResponse is the route representation returned by the API. CarrierFee
// and CarrierID are null until dispatch; Carrier is populated only on the
// detail endpoint.
type RouteResponse struct {
	ID                   string           `json:"id"`
	StartPoint           string           `json:"startPoint"`
	EndPoint             string           `json:"endPoint"`
	DistanceMeters       float64          `json:"distanceMeters"`
	DepartureDate        time.Time        `json:"departureDate"`
	CompletionDate       time.Time        `json:"completionDate"`
	DepartureDateActual  *time.Time       `json:"departureDateActual"`
	CompletionDateActual *time.Time       `json:"completionDateActual"`
	RequiredCarrierType  string           `json:"requiredCarrierType"`
	Price                float64          `json:"price"`
	CarrierFee           *float64         `json:"carrierFee"`
	Status               string           `json:"status"`
	CarrierID            *string          `json:"carrierId"`
	CreatedAt            *time.Time       `json:"createdAt,omitempty"`
	UpdatedAt            *time.Time       `json:"updatedAt,omitempty"`
	Carrier              *CarrierResponse `json:"carrier,omitempty"`
}

// PagedResponse wraps a page of results with the total number of rows the
// filters match.
type PagedResponse[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func carrierFromDomain(c *carrier.Carrier) CarrierResponse {
	return CarrierResponse{
		ID:               c.ID().String(),
		LicensePlate:     c.LicensePlate(),
		Model:            c.Model(),
		Type:             c.Type().String(),
		RegistrationDate: c.RegistrationDate(),
		Status:           c.Status().String(),
		Rate:             c.Rate(),
	}
}

func carrierFromReadModel(m queries.CarrierReadModel) CarrierResponse {
	createdAt := m.CreatedAt
	updatedAt := m.UpdatedAt
	return CarrierResponse{
		ID:               m.ID.String(),
		LicensePlate:     m.LicensePlate,
		Model:            m.Model,
		Type:             m.Type.String(),
		RegistrationDate: m.RegistrationDate,
		Status:           m.Status.String(),
		Rate:             m.Rate,
		CreatedAt:        &createdAt,
		UpdatedAt:        &updatedAt,
	}
}

func routeFromDomain(r *route.Route) RouteResponse {
	var carrierID *string
	if id := r.CarrierID(); id != nil {
		s := id.String()
		carrierID = &s
	}

	return RouteResponse{
		ID:                   r.ID().String(),
		StartPoint:           r.StartPoint().String(),
		EndPoint:             r.EndPoint().String(),
		DistanceMeters:       r.DistanceMeters(),
		DepartureDate:        r.DepartureDate(),
		CompletionDate:       r.CompletionDate(),
		DepartureDateActual:  r.DepartureDateActual(),
		CompletionDateActual: r.CompletionDateActual(),
		RequiredCarrierType:  r.RequiredCarrierType().String(),
		Price:                r.Price(),
		CarrierFee:           r.CarrierFee(),
		Status:               r.Status().String(),
		CarrierID:            carrierID,
	}
}

func routeFromReadModel(m queries.RouteReadModel) RouteResponse {
	var carrierID *string
	if m.CarrierID != nil {
		s := m.CarrierID.String()
		carrierID = &s
	}

	createdAt := m.CreatedAt
	updatedAt := m.UpdatedAt
	return RouteResponse{
		ID:                   m.ID.String(),
		StartPoint:           m.StartPoint.String(),
		EndPoint:             m.EndPoint.String(),
		DistanceMeters:       m.DistanceMeters,
		DepartureDate:        m.DepartureDate,
		CompletionDate:       m.CompletionDate,
		DepartureDateActual:  m.DepartureDateActual,
		CompletionDateActual: m.CompletionDateActual,
		RequiredCarrierType:  m.RequiredCarrierType.String(),
		Price:                m.Price,
		CarrierFee:           m.CarrierFee,
		Status:               m.Status.String(),
		CarrierID:            carrierID,
		CreatedAt:            &createdAt,
		UpdatedAt:            &updatedAt,
	}
}

func routeDetailFromReadModel(m queries.GetRouteQueryResponse) RouteResponse {
	response := routeFromReadModel(m.RouteReadModel)
	if m.Carrier != nil {
		response.Carrier = &CarrierResponse{
			ID:           m.Carrier.ID.String(),
			LicensePlate: m.Carrier.LicensePlate,
			Model:        m.Carrier.Model,
			Type:         m.Carrier.Type.String(),
			Status:       m.Carrier.Status.String(),
			Rate:         m.Carrier.Rate,
		}
	}
	return response
}
