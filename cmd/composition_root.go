package cmd

import (
	"log/slog"
	"time"

	httpadapter "cakery/internal/adapters/in/http"
	"cakery/internal/adapters/out/postgres/orderrepo"
	"cakery/internal/adapters/out/postgres/staffrepo"
	"cakery/internal/adapters/out/webhook"
	"cakery/internal/core/application/usecases/commands"
	"cakery/internal/core/application/usecases/queries"
	"cakery/internal/core/ports"
	"cakery/internal/jobs"
	"cakery/internal/pkg/token"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config   Config
	gormDB   *gorm.DB
	notifier ports.EventNotifier
	tokens   *token.Service
	logger   *slog.Logger
}

func NewCompositionRoot(
	config Config, gormDB *gorm.DB, tokenTTL time.Duration, logger *slog.Logger,
) (CompositionRoot, error) {
	tokens, err := token.NewService(config.JWTSecret, tokenTTL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:   config,
		gormDB:   gormDB,
		notifier: webhook.NewNotifier(config.WebhookURL),
		tokens:   tokens,
		logger:   logger,
	}, nil
}

func (c *CompositionRoot) TokenService() *token.Service {
	return c.tokens
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(staffrepo.NewGormStaffRepository(c.gormDB), c.tokens)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderRepository(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderRepository(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTodayOrdersQueryHandler() queries.GetTodayOrdersQueryHandler {
	return queries.NewGetTodayOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTomorrowConfirmedOrdersQueryHandler() queries.GetTomorrowConfirmedOrdersQueryHandler {
	return queries.NewGetTomorrowConfirmedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMonthlyIncomeQueryHandler() queries.GetMonthlyIncomeQueryHandler {
	return queries.NewGetMonthlyIncomeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateLoginCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetTodayOrdersQueryHandler(),
		c.CreateGetTomorrowConfirmedOrdersQueryHandler(),
		c.CreateGetOrderByIDQueryHandler(),
		c.CreateGetMonthlyIncomeQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetTomorrowConfirmedOrdersQueryHandler(),
		c.notifier,
		c.config.ReminderCron,
		c.logger,
	)
}

func (c *CompositionRoot) orderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB)
}
