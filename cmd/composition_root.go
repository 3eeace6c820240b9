package cmd

import (
	"context"
	"io"
	"log/slog"

	"depot/internal/adapters/in/console"
	httpin "depot/internal/adapters/in/http"
	"depot/internal/adapters/out/eventlog"
	"depot/internal/adapters/out/memory"
	"depot/internal/adapters/out/metrics"
	"depot/internal/adapters/out/multireport"
	"depot/internal/adapters/out/postgres"
	"depot/internal/adapters/out/postgres/reportrepo"
	"depot/internal/adapters/out/reportfile"
	"depot/internal/core/application/depot"
	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/application/usecases/queries"
	"depot/internal/core/domain/services"
	"depot/internal/core/ports"
	"depot/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CompositionRoot owns the depot and builds every adapter and use case around it.
type CompositionRoot struct {
	config   Config
	logger   *slog.Logger
	events   *eventlog.Log
	metrics  *metrics.Recorder
	reportDB *gorm.DB
	archive  *reportrepo.GormReportRepository
	depot    *depot.Guarded
}

// NewCompositionRoot wires one depot. When config.ReportDBDSN is set the
// report is mirrored into Postgres next to the report file.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		config:  config,
		logger:  logger,
		events:  eventlog.New(),
		metrics: metrics.NewRecorder(),
	}

	var reports ports.ReportWriter = reportfile.NewWriter(config.ReportFile)
	if config.ReportDBDSN != "" {
		db, err := postgres.Open(ctx, config.ReportDBDSN)
		if err != nil {
			return nil, err
		}
		root.reportDB = db
		root.archive = reportrepo.NewGormReportRepository(db)
		reports = multireport.NewWriter(reports, root.archive)
	}

	svc := depot.NewService(
		memory.NewParcelStore(),
		memory.NewCustomerQueue(),
		root.events,
		reports,
		depot.WithLogger(logger),
		depot.WithFeeCalculator(services.NewFeeCalculator()),
		depot.WithMetrics(root.metrics),
	)
	root.depot = depot.NewGuarded(svc)
	return root, nil
}

// Depot returns the shared, lock-guarded depot.
func (c *CompositionRoot) Depot() *depot.Guarded {
	return c.depot
}

// CreateAddCustomerCommandHandler creates a handler for queueing new customers.
func (c *CompositionRoot) CreateAddCustomerCommandHandler() commands.AddCustomerCommandHandler {
	return commands.NewAddCustomerCommandHandler(c.depot)
}

// CreateAddParcelCommandHandler creates a handler for storing new parcels.
func (c *CompositionRoot) CreateAddParcelCommandHandler() commands.AddParcelCommandHandler {
	return commands.NewAddParcelCommandHandler(c.depot)
}

// CreateCollectParcelCommandHandler creates a handler for walk-in collections.
func (c *CompositionRoot) CreateCollectParcelCommandHandler() commands.CollectParcelCommandHandler {
	return commands.NewCollectParcelCommandHandler(c.depot)
}

// CreateProcessNextCustomerCommandHandler creates a handler that serves the head of the queue.
func (c *CompositionRoot) CreateProcessNextCustomerCommandHandler() commands.ProcessNextCustomerCommandHandler {
	return commands.NewProcessNextCustomerCommandHandler(c.depot)
}

// CreateGetPendingCustomersQueryHandler creates a handler listing queued customers.
func (c *CompositionRoot) CreateGetPendingCustomersQueryHandler() queries.GetPendingCustomersQueryHandler {
	return queries.NewGetPendingCustomersQueryHandler(c.depot)
}

// CreateGetParcelsQueryHandler creates a handler listing stored parcels.
func (c *CompositionRoot) CreateGetParcelsQueryHandler() queries.GetParcelsQueryHandler {
	return queries.NewGetParcelsQueryHandler(c.depot)
}

// CreateGetParcelQueryHandler creates a handler looking up one parcel and its fee.
func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.depot)
}

// CreateGetProcessedRecordsQueryHandler creates a handler listing released parcels.
func (c *CompositionRoot) CreateGetProcessedRecordsQueryHandler() queries.GetProcessedRecordsQueryHandler {
	return queries.NewGetProcessedRecordsQueryHandler(c.depot)
}

// CreateGetReportEntriesQueryHandler returns nil when no report database is
// configured.
func (c *CompositionRoot) CreateGetReportEntriesQueryHandler() *queries.GetReportEntriesQueryHandler {
	if c.archive == nil {
		return nil
	}
	h := queries.NewGetReportEntriesQueryHandler(c.archive)
	return &h
}

// CreateRouter builds the HTTP router with every command and query handler mounted.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		AddCustomer:      c.CreateAddCustomerCommandHandler(),
		AddParcel:        c.CreateAddParcelCommandHandler(),
		CollectParcel:    c.CreateCollectParcelCommandHandler(),
		ProcessNext:      c.CreateProcessNextCustomerCommandHandler(),
		PendingCustomers: c.CreateGetPendingCustomersQueryHandler(),
		Parcels:          c.CreateGetParcelsQueryHandler(),
		Parcel:           c.CreateGetParcelQueryHandler(),
		Processed:        c.CreateGetProcessedRecordsQueryHandler(),
		Report:           c.CreateGetReportEntriesQueryHandler(),
	}, c.logger)
	return httpin.NewRouter(ctx, server, c.metrics, c.logger)
}

// CreateQueueProcessingJob returns nil when no process schedule is configured.
func (c *CompositionRoot) CreateQueueProcessingJob() *jobs.QueueProcessingJob {
	if c.config.ProcessSchedule == "" {
		return nil
	}
	return jobs.NewQueueProcessingJob(c.depot, c.config.ProcessSchedule, c.logger)
}

// CreateConsoleRunner creates the batch runner writing its summary to out.
func (c *CompositionRoot) CreateConsoleRunner(out io.Writer) *console.Runner {
	return console.NewRunner(c.depot, c.events, console.Paths{
		Customers: c.config.CustomersFile,
		Parcels:   c.config.ParcelsFile,
		EventLog:  c.config.EventLogFile,
	}, out, c.logger)
}

// LoadInputs loads the configured customer and parcel files. An unreadable
// file is logged and skipped.
func (c *CompositionRoot) LoadInputs(ctx context.Context) {
	if _, err := c.depot.LoadCustomers(ctx, c.config.CustomersFile); err != nil {
		c.logger.WarnContext(ctx, "Customers not loaded", "path", c.config.CustomersFile, "error", err)
	}
	if _, err := c.depot.LoadParcels(ctx, c.config.ParcelsFile); err != nil {
		c.logger.WarnContext(ctx, "Parcels not loaded", "path", c.config.ParcelsFile, "error", err)
	}
}

// FlushEventLog writes the event log to the configured file, replacing its contents.
func (c *CompositionRoot) FlushEventLog() error {
	return c.events.FlushToFile(c.config.EventLogFile)
}

// Close releases the report database, if any.
func (c *CompositionRoot) Close() error {
	if c.reportDB == nil {
		return nil
	}
	return postgres.Close(c.reportDB)
}
