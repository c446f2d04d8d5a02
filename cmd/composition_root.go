package cmd

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	httpin "transport/internal/adapters/in/http"
	"transport/internal/adapters/out/fixer"
	"transport/internal/adapters/out/osrm"
	"transport/internal/adapters/out/postgres"
	"transport/internal/core/application/usecases/commands"
	"transport/internal/core/application/usecases/queries"
	"transport/internal/jobs"
)

const defaultOutboundTimeout = 5 * time.Second

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	converter  *fixer.Client
	estimator  *osrm.Client
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	timeout := defaultOutboundTimeout
	if config.OutboundTimeoutMS != "" {
		if ms, err := strconv.Atoi(config.OutboundTimeoutMS); err == nil && ms > 0 {
			timeout = time.Duration(ms) * time.Millisecond
		}
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		converter:  fixer.NewClient(config.CurrencyAPIHost, config.CurrencyAPIKey, timeout),
		estimator:  osrm.NewClient(config.RoutingAPIHost, timeout),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) CreateCreateCarrierCommandHandler() commands.CreateCarrierCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCarrierCommandHandler(f, c.converter)
}

func (c *CompositionRoot) CreateUpdateCarrierCommandHandler() commands.UpdateCarrierCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCarrierCommandHandler(f, c.converter)
}

func (c *CompositionRoot) CreateDeleteCarrierCommandHandler() commands.DeleteCarrierCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCarrierCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() commands.CreateRouteCommandHandler {
	var f commands.RouteUoWFactory = FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRouteCommandHandler(f, c.converter, c.estimator)
}

func (c *CompositionRoot) CreateUpdateRouteCommandHandler() commands.UpdateRouteCommandHandler {
	var f commands.RouteUoWFactory = FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateRouteCommandHandler(f, c.converter)
}

func (c *CompositionRoot) CreateDeleteRouteCommandHandler() commands.DeleteRouteCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCarrierCommandHandler() commands.AssignCarrierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCarrierCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateRouteStatusCommandHandler() commands.UpdateRouteStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateRouteStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCarriersQueryHandler() queries.GetCarriersQueryHandler {
	return queries.NewGetCarriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCarrierQueryHandler() queries.GetCarrierQueryHandler {
	return queries.NewGetCarrierQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRoutesQueryHandler() queries.GetRoutesQueryHandler {
	return queries.NewGetRoutesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRouteQueryHandler() queries.GetRouteQueryHandler {
	return queries.NewGetRouteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueRoutesQueryHandler() queries.GetOverdueRoutesQueryHandler {
	return queries.NewGetOverdueRoutesQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every command and query handler into the API server.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateCarrierCommandHandler(),
		c.CreateUpdateCarrierCommandHandler(),
		c.CreateDeleteCarrierCommandHandler(),
		c.CreateCreateRouteCommandHandler(),
		c.CreateUpdateRouteCommandHandler(),
		c.CreateDeleteRouteCommandHandler(),
		c.CreateAssignCarrierCommandHandler(),
		c.CreateUpdateRouteStatusCommandHandler(),
		c.CreateGetCarriersQueryHandler(),
		c.CreateGetCarrierQueryHandler(),
		c.CreateGetRoutesQueryHandler(),
		c.CreateGetRouteQueryHandler(),
	)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOverdueRoutesQueryHandler(), c.logger)
}

type FuncCarrierUoWFactory func() commands.CarrierUoW

func (f FuncCarrierUoWFactory) Create() commands.CarrierUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
