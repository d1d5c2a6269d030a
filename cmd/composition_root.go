package cmd

import (
	"log/slog"

	"restaurant/internal/adapters/out/inmemory"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/jobs"
)

type CompositionRoot struct {
	config   Config
	sessions *inmemory.SerializedSystem
}

func NewCompositionRoot(config Config) CompositionRoot {
	return CompositionRoot{
		config:   config,
		sessions: inmemory.NewSerializedSystem(services.NewOrderingSystem()),
	}
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	return commands.NewRegisterCustomerCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateRemoveCustomerCommandHandler() commands.RemoveCustomerCommandHandler {
	return commands.NewRemoveCustomerCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateAddMenuItemCommandHandler() commands.AddMenuItemCommandHandler {
	return commands.NewAddMenuItemCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateProcessNextOrderCommandHandler() commands.ProcessNextOrderCommandHandler {
	return commands.NewProcessNextOrderCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateSetPaymentMethodCommandHandler() commands.SetPaymentMethodCommandHandler {
	return commands.NewSetPaymentMethodCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateSearchCustomersQueryHandler() queries.SearchCustomersQueryHandler {
	return queries.NewSearchCustomersQueryHandler(c.sessions)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.sessions)
}

func (c *CompositionRoot) CreateListOpenOrdersQueryHandler() queries.ListOpenOrdersQueryHandler {
	return queries.NewListOpenOrdersQueryHandler(c.sessions)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAdvanceOrderStatusCommandHandler(),
		c.CreateListOpenOrdersQueryHandler(),
		c.config.KitchenTickCron,
		logger,
	)
}
