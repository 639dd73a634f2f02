package cmd

import (
	"log/slog"
	"os"

	"shopfloor/internal/adapters/out/inventory"
	"shopfloor/internal/adapters/out/postgres"
	"shopfloor/internal/adapters/out/webhook"
	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/application/usecases/queries"
	"shopfloor/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateRecordAuditEventCommandHandler() commands.RecordAuditEventCommandHandler {
	var f commands.AuditUoWFactory = FuncAuditUoWFactory(func() commands.AuditUoW {
		return c.uowFactory.Create()
	})
	dispatcher := webhook.NewDispatcher(c.config.WebhookSubscribers, c.logger)
	return commands.NewRecordAuditEventCommandHandler(f, dispatcher)
}

func (c *CompositionRoot) CreateNotifyChildCompletedCommandHandler() commands.NotifyChildCompletedCommandHandler {
	var f commands.AggregationUoWFactory = FuncAggregationUoWFactory(func() commands.AggregationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewNotifyChildCompletedCommandHandler(f, c.CreateRecordAuditEventCommandHandler())
}

func (c *CompositionRoot) CreateStartWorkOrderCommandHandler() commands.StartWorkOrderCommandHandler {
	return commands.NewStartWorkOrderCommandHandler(
		c.createWorkOrderUoWFactory(), c.CreateRecordAuditEventCommandHandler())
}

func (c *CompositionRoot) CreateCompleteWorkOrderCommandHandler() commands.CompleteWorkOrderCommandHandler {
	return commands.NewCompleteWorkOrderCommandHandler(
		c.createWorkOrderUoWFactory(),
		inventory.NewClient(c.config.InventoryBaseURL),
		c.CreateNotifyChildCompletedCommandHandler(),
		c.CreateRecordAuditEventCommandHandler(),
		c.config.SupermarketLocationID,
		c.logger,
	)
}

func (c *CompositionRoot) CreateHaltWorkOrderCommandHandler() commands.HaltWorkOrderCommandHandler {
	return commands.NewHaltWorkOrderCommandHandler(
		c.createWorkOrderUoWFactory(), c.CreateRecordAuditEventCommandHandler())
}

func (c *CompositionRoot) CreateResumeWorkOrderCommandHandler() commands.ResumeWorkOrderCommandHandler {
	return commands.NewResumeWorkOrderCommandHandler(
		c.createWorkOrderUoWFactory(), c.CreateRecordAuditEventCommandHandler())
}

func (c *CompositionRoot) CreateMarkWaitingForPartsCommandHandler() commands.MarkWaitingForPartsCommandHandler {
	return commands.NewMarkWaitingForPartsCommandHandler(
		c.createWorkOrderUoWFactory(), c.CreateRecordAuditEventCommandHandler())
}

func (c *CompositionRoot) CreateGetWorkOrderQueryHandler() queries.GetWorkOrderQueryHandler {
	return queries.NewGetWorkOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetControlOrderProgressQueryHandler() queries.GetControlOrderProgressQueryHandler {
	return queries.NewGetControlOrderProgressQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkOrderStatusSummaryQueryHandler() queries.GetWorkOrderStatusSummaryQueryHandler {
	return queries.NewGetWorkOrderStatusSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetWorkOrderStatusSummaryQueryHandler(),
		c.config.StatusReportSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) createWorkOrderUoWFactory() commands.WorkOrderUoWFactory {
	return FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f FuncWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}

type FuncAggregationUoWFactory func() commands.AggregationUoW

func (f FuncAggregationUoWFactory) Create() commands.AggregationUoW {
	return f()
}

type FuncAuditUoWFactory func() commands.AuditUoW

func (f FuncAuditUoWFactory) Create() commands.AuditUoW {
	return f()
}
