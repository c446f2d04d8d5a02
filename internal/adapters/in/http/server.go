// Package http exposes the transport coordination API over HTTP.
// It translates JSON requests into application commands and queries and
// maps domain errors onto HTTP status codes.
package http

import (
	"github.com/labstack/echo/v4"

	"transport/internal/core/application/usecases/commands"
	"transport/internal/core/application/usecases/queries"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCarrierHandler     commands.CreateCarrierCommandHandler
	updateCarrierHandler     commands.UpdateCarrierCommandHandler
	deleteCarrierHandler     commands.DeleteCarrierCommandHandler
	createRouteHandler       commands.CreateRouteCommandHandler
	updateRouteHandler       commands.UpdateRouteCommandHandler
	deleteRouteHandler       commands.DeleteRouteCommandHandler
	assignCarrierHandler     commands.AssignCarrierCommandHandler
	updateRouteStatusHandler commands.UpdateRouteStatusCommandHandler

	// Query handlers
	getCarriersHandler queries.GetCarriersQueryHandler
	getCarrierHandler  queries.GetCarrierQueryHandler
	getRoutesHandler   queries.GetRoutesQueryHandler
	getRouteHandler    queries.GetRouteQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCarrierHandler commands.CreateCarrierCommandHandler,
	updateCarrierHandler commands.UpdateCarrierCommandHandler,
	deleteCarrierHandler commands.DeleteCarrierCommandHandler,
	createRouteHandler commands.CreateRouteCommandHandler,
	updateRouteHandler commands.UpdateRouteCommandHandler,
	deleteRouteHandler commands.DeleteRouteCommandHandler,
	assignCarrierHandler commands.AssignCarrierCommandHandler,
	updateRouteStatusHandler commands.UpdateRouteStatusCommandHandler,
	getCarriersHandler queries.GetCarriersQueryHandler,
	getCarrierHandler queries.GetCarrierQueryHandler,
	getRoutesHandler queries.GetRoutesQueryHandler,
	getRouteHandler queries.GetRouteQueryHandler,
) *Server {
	return &Server{
		createCarrierHandler:     createCarrierHandler,
		updateCarrierHandler:     updateCarrierHandler,
		deleteCarrierHandler:     deleteCarrierHandler,
		createRouteHandler:       createRouteHandler,
		updateRouteHandler:       updateRouteHandler,
		deleteRouteHandler:       deleteRouteHandler,
		assignCarrierHandler:     assignCarrierHandler,
		updateRouteStatusHandler: updateRouteStatusHandler,
		getCarriersHandler:       getCarriersHandler,
		getCarrierHandler:        getCarrierHandler,
		getRoutesHandler:         getRoutesHandler,
		getRouteHandler:          getRouteHandler,
	}
}

// RegisterRoutes attaches all API endpoints to the echo group.
func (s *Server) RegisterRoutes(g *echo.Group) {
	g.GET("/carriers", s.GetCarriers)
	g.POST("/carriers", s.CreateCarrier)
	g.GET("/carriers/:id", s.GetCarrier)
	g.PUT("/carriers/:id", s.UpdateCarrier)
	g.DELETE("/carriers/:id", s.DeleteCarrier)

	g.GET("/routes", s.GetRoutes)
	g.POST("/routes", s.CreateRoute)
	g.GET("/routes/:id", s.GetRoute)
	g.PUT("/routes/:id", s.UpdateRoute)
	g.DELETE("/routes/:id", s.DeleteRoute)
	g.PUT("/routes/:id/carrier", s.AssignCarrier)
	g.PUT("/routes/:id/status", s.UpdateRouteStatus)
}
